package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/repository"
	"github.com/jeffersonaandrade/pousada-backend/internal/timeutil"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// RelatorioPayload descreve um job de exportação de pedidos.
// Datas no formato YYYY-MM-DD, interpretadas no fuso de negócio.
type RelatorioPayload struct {
	JobID      string `json:"job_id"`
	DataInicio string `json:"data_inicio"`
	DataFim    string `json:"data_fim"`
	Arquivo    string `json:"arquivo"`
}

// RelatorioWorker materializa planilhas de pedidos fora do caminho de escrita
// da API: consome jobs da fila e grava o .xlsx no diretório de relatórios.
type RelatorioWorker struct {
	pedidos     repository.PedidoRepository
	storagePath string
}

func NewRelatorioWorker(pedidos repository.PedidoRepository, storagePath string) *RelatorioWorker {
	return &RelatorioWorker{pedidos: pedidos, storagePath: storagePath}
}

func (w *RelatorioWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload RelatorioPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("payload de relatório inválido: %w", err)
	}

	inicio, err := time.ParseInLocation("2006-01-02", payload.DataInicio, timeutil.Location())
	if err != nil {
		return fmt.Errorf("data_inicio inválida: %w", err)
	}
	fim, err := time.ParseInLocation("2006-01-02", payload.DataFim, timeutil.Location())
	if err != nil {
		return fmt.Errorf("data_fim inválida: %w", err)
	}
	fim = fim.AddDate(0, 0, 1) // intervalo fechado no pedido, aberto na query

	pedidos, err := w.pedidos.ListPorPeriodo(ctx, inicio, fim)
	if err != nil {
		return fmt.Errorf("falha ao consultar pedidos: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("falha ao fechar planilha")
		}
	}()

	sheet := "Pedidos"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Data", "Hóspede", "Produto", "Setor", "Valor (R$)", "Status", "Método"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	total := decimal.Zero
	for i := range pedidos {
		p := &pedidos[i]
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), timeutil.FormatBrasil(p.Data))
		if p.Hospede != nil {
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Hospede.Nome)
		}
		if p.Produto != nil {
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Produto.Nome)
			if p.Produto.Setor != nil {
				f.SetCellValue(sheet, fmt.Sprintf("D%d", row), *p.Produto.Setor)
			}
		}
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.Valor.StringFixed(2))
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), string(p.Status))
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), string(p.Metodo))
		total = total.Add(p.Valor)
	}

	totalRow := len(pedidos) + 2
	f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), total.StringFixed(2))

	if err := os.MkdirAll(w.storagePath, 0o755); err != nil {
		return fmt.Errorf("falha ao criar diretório de relatórios: %w", err)
	}
	destino := filepath.Join(w.storagePath, payload.Arquivo)
	if err := f.SaveAs(destino); err != nil {
		return fmt.Errorf("falha ao salvar planilha: %w", err)
	}

	log.Info().
		Str("job_id", payload.JobID).
		Str("arquivo", destino).
		Int("pedidos", len(pedidos)).
		Msg("relatório gerado")
	return nil
}
