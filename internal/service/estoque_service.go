package service

import (
	"context"
	"fmt"

	"github.com/jeffersonaandrade/pousada-backend/internal/apperr"
	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"
	"github.com/jeffersonaandrade/pousada-backend/internal/repository"
	"github.com/jeffersonaandrade/pousada-backend/internal/timeutil"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EstoqueService interface {
	// RegistrarPerda dá baixa técnica (quebra, vencimento, erro de lançamento):
	// decrementa o estoque e grava a linha de perda na mesma transação.
	RegistrarPerda(ctx context.Context, req dto.BaixaEstoqueRequest) (*dto.PerdaResponse, error)
	ListarPerdas(ctx context.Context, filter dto.PerdaFilter) (*dto.PerdaListResponse, error)
}

type estoqueService struct {
	repo        repository.PerdaRepository
	produtoRepo repository.ProdutoRepository
}

func NewEstoqueService(repo repository.PerdaRepository, produtoRepo repository.ProdutoRepository) EstoqueService {
	return &estoqueService{repo: repo, produtoRepo: produtoRepo}
}

func (s *estoqueService) RegistrarPerda(ctx context.Context, req dto.BaixaEstoqueRequest) (*dto.PerdaResponse, error) {
	produtoID, err := uuid.Parse(req.ProdutoID)
	if err != nil {
		return nil, apperr.Validation("produto_id inválido")
	}
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, apperr.Validation("usuario_id inválido")
	}
	if req.Quantidade <= 0 {
		return nil, apperr.Validation("quantidade deve ser maior que zero")
	}

	produto, err := s.produtoRepo.FindByID(ctx, produtoID)
	if err != nil {
		return nil, apperr.NotFound("produto")
	}

	perda := &model.PerdaEstoque{
		ProdutoID:  produtoID,
		Quantidade: req.Quantidade,
		Motivo:     req.Motivo,
		Observacao: req.Observacao,
		UsuarioID:  usuarioID,
		Data:       timeutil.NowBrasil(),
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		atual, err := s.produtoRepo.FindByIDTx(tx, produtoID)
		if err != nil {
			return apperr.NotFound("produto")
		}
		if atual.Estoque < req.Quantidade {
			return apperr.Business(fmt.Sprintf(
				"perda de %d excede o estoque de %s (%d em estoque)",
				req.Quantidade, atual.Nome, atual.Estoque))
		}
		if err := s.produtoRepo.AjustarEstoqueTx(tx, produtoID, -req.Quantidade); err != nil {
			return apperr.Internal("falha ao baixar estoque", err)
		}
		return s.repo.CreateTx(tx, perda)
	})
	if txErr != nil {
		return nil, txErr
	}

	perda.Produto = produto
	return perdaToResponse(perda), nil
}

func (s *estoqueService) ListarPerdas(ctx context.Context, filter dto.PerdaFilter) (*dto.PerdaListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	perdas, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("falha ao listar perdas", err)
	}
	items := make([]dto.PerdaResponse, 0, len(perdas))
	for i := range perdas {
		items = append(items, *perdaToResponse(&perdas[i]))
	}
	return &dto.PerdaListResponse{
		Data:       items,
		Pagination: dto.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

func perdaToResponse(p *model.PerdaEstoque) *dto.PerdaResponse {
	resp := &dto.PerdaResponse{
		ID:         p.ID.String(),
		ProdutoID:  p.ProdutoID.String(),
		Quantidade: p.Quantidade,
		Motivo:     p.Motivo,
		Observacao: p.Observacao,
		UsuarioID:  p.UsuarioID.String(),
		Data:       timeutil.FormatBrasil(p.Data),
	}
	if p.Produto != nil {
		resp.ProdutoNome = p.Produto.Nome
	}
	return resp
}
