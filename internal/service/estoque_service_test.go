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

type estoqueFixture struct {
	svc      service.EstoqueService
	perdas   *stubPerdaRepo
	produtos *stubProdutoRepo
	usuarios *stubUsuarioRepo
}

func buildEstoqueSvc() *estoqueFixture {
	f := &estoqueFixture{
		perdas:   newStubPerdaRepo(),
		produtos: newStubProdutoRepo(),
		usuarios: newStubUsuarioRepo(),
	}
	f.svc = service.NewEstoqueService(f.perdas, f.produtos)
	return f
}

func TestRegistrarPerda(t *testing.T) {
	f := buildEstoqueSvc()
	ctx := context.Background()

	operador := seedUsuario(f.usuarios, "Estoquista", "2468", model.CargoGerente)
	p := seedProduto(f.produtos, "Cerveja Long Neck", 9.00, 10)

	resp, err := f.svc.RegistrarPerda(ctx, dto.BaixaEstoqueRequest{
		ProdutoID:  p.ID.String(),
		Quantidade: 4,
		Motivo:     "Garrafas quebradas no transporte",
		UsuarioID:  operador.ID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Quantidade)
	assert.Equal(t, "Cerveja Long Neck", resp.ProdutoNome)
	assert.Equal(t, 6, f.produtos.produtos[p.ID].Estoque)
	require.Len(t, f.perdas.perdas, 1)
	assert.Equal(t, operador.ID, f.perdas.perdas[0].UsuarioID)
}

func TestRegistrarPerdaExcedeEstoque(t *testing.T) {
	f := buildEstoqueSvc()
	ctx := context.Background()

	operador := seedUsuario(f.usuarios, "Estoquista", "2468", model.CargoGerente)
	p := seedProduto(f.produtos, "Vinho", 60.00, 2)

	_, err := f.svc.RegistrarPerda(ctx, dto.BaixaEstoqueRequest{
		ProdutoID:  p.ID.String(),
		Quantidade: 5,
		Motivo:     "Vencimento",
		UsuarioID:  operador.ID.String(),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindBusiness))
	assert.Equal(t, 2, f.produtos.produtos[p.ID].Estoque)
	assert.Empty(t, f.perdas.perdas)
}

func TestRegistrarPerdaUsuarioInvalido(t *testing.T) {
	f := buildEstoqueSvc()
	p := seedProduto(f.produtos, "Suco", 7.00, 5)

	_, err := f.svc.RegistrarPerda(context.Background(), dto.BaixaEstoqueRequest{
		ProdutoID:  p.ID.String(),
		Quantidade: 1,
		Motivo:     "Teste",
		UsuarioID:  "",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
