package service_test

import (
	"context"
	"testing"

	"github.com/jeffersonaandrade/pousada-backend/internal/apperr"
	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"
	"github.com/jeffersonaandrade/pousada-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quartoFixture struct {
	svc      service.QuartoService
	quartos  *stubQuartoRepo
	hospedes *stubHospedeRepo
}

func buildQuartoSvc() *quartoFixture {
	hospedes := newStubHospedeRepo()
	f := &quartoFixture{
		hospedes: hospedes,
		quartos:  newStubQuartoRepo(hospedes),
	}
	f.svc = service.NewQuartoService(f.quartos)
	return f
}

func TestCriarQuartoNumeroDuplicado(t *testing.T) {
	f := buildQuartoSvc()
	ctx := context.Background()

	_, err := f.svc.Criar(ctx, dto.CriarQuartoRequest{Numero: "101", Andar: 1, Categoria: "STANDARD"})
	require.NoError(t, err)

	_, err = f.svc.Criar(ctx, dto.CriarQuartoRequest{Numero: "101", Andar: 1, Categoria: "LUXO"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestAtualizarStatusOcupadoParaLivre(t *testing.T) {
	f := buildQuartoSvc()

	q := seedQuarto(f.quartos, "201", model.QuartoOcupado)

	_, err := f.svc.AtualizarStatus(context.Background(), q.ID, model.QuartoLivre)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))
	assert.Contains(t, err.Error(), "passe por limpeza")
}

func TestAtualizarStatusComHospedesAtivos(t *testing.T) {
	f := buildQuartoSvc()
	ctx := context.Background()

	q := seedQuarto(f.quartos, "202", model.QuartoLimpeza)
	h := seedHospede(f.hospedes, "Ocupante", "PULSEIRA30", model.TipoHospedeResidente)
	h.QuartoID = &q.ID

	// LIVRE e OCUPADO são decididos pelo check-in/checkout, não manualmente.
	_, err := f.svc.AtualizarStatus(ctx, q.ID, model.QuartoLivre)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))

	// MANUTENCAO pode ser forçada mesmo com hóspede vinculado.
	resp, err := f.svc.AtualizarStatus(ctx, q.ID, model.QuartoManutencao)
	require.NoError(t, err)
	assert.Equal(t, string(model.QuartoManutencao), resp.Status)
}

func TestAtualizarStatusInvalido(t *testing.T) {
	f := buildQuartoSvc()
	q := seedQuarto(f.quartos, "203", model.QuartoLivre)

	_, err := f.svc.AtualizarStatus(context.Background(), q.ID, model.StatusQuarto("FECHADO"))
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestRemoverQuarto(t *testing.T) {
	f := buildQuartoSvc()
	ctx := context.Background()

	ocupado := seedQuarto(f.quartos, "301", model.QuartoOcupado)
	err := f.svc.Remover(ctx, ocupado.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))

	livre := seedQuarto(f.quartos, "302", model.QuartoLivre)
	require.NoError(t, f.svc.Remover(ctx, livre.ID))
	assert.NotContains(t, f.quartos.quartos, livre.ID)
}

func TestListarDecoraHospedeAtual(t *testing.T) {
	f := buildQuartoSvc()

	q := seedQuarto(f.quartos, "401", model.QuartoOcupado)
	h := seedHospede(f.hospedes, "Visível", "PULSEIRA31", model.TipoHospedeVIP)
	h.QuartoID = &q.ID

	lista, err := f.svc.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, lista, 1)
	require.NotNil(t, lista[0].HospedeAtual)
	assert.Equal(t, "Visível", lista[0].HospedeAtual.Nome)
	assert.Equal(t, string(model.TipoHospedeVIP), lista[0].HospedeAtual.Tipo)
}
