// Package timeutil centraliza datas no fuso de negócio (America/Sao_Paulo).
// Todos os timestamps de negócio persistidos — pedidos, pagamentos, caixa —
// usam NowBrasil para que a leitura posterior reproduza o horário de parede
// original, requisito para rastreabilidade legal de horário de pedidos.
package timeutil

import "time"

var saoPaulo *time.Location

func init() {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// UTC-3 fixo; a região não tem horário de verão desde 2019.
		loc = time.FixedZone("America/Sao_Paulo", -3*60*60)
	}
	saoPaulo = loc
}

// Location returns the business timezone.
func Location() *time.Location { return saoPaulo }

// NowBrasil returns the current instant in the business timezone.
func NowBrasil() time.Time { return time.Now().In(saoPaulo) }

// StartOfDay trunca t para 00:00:00 no fuso de negócio. Usado na derivação
// de status PENDENTE/ATRASADO das contas financeiras.
func StartOfDay(t time.Time) time.Time {
	t = t.In(saoPaulo)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, saoPaulo)
}

// FormatBrasil renders a timestamp as "DD/MM/YYYY HH:mm:ss" in business time.
func FormatBrasil(t time.Time) string {
	return t.In(saoPaulo).Format("02/01/2006 15:04:05")
}
