package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/apperr"
	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"
	"github.com/jeffersonaandrade/pousada-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	cardapioCacheKey = "cache:cardapio"
	cardapioCacheTTL = 60 * time.Second
)

type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error)
	BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error)
	Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error)
	// Cardapio devolve os produtos disponíveis para venda, servidos de um
	// cache Redis curto quando possível.
	Cardapio(ctx context.Context) ([]dto.ProdutoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error)
	AdicionarEstoque(ctx context.Context, id uuid.UUID, quantidade int) (*dto.ProdutoResponse, error)
	Remover(ctx context.Context, id uuid.UUID) error
}

type produtoService struct {
	repo repository.ProdutoRepository
	rdb  *redis.Client
}

func NewProdutoService(repo repository.ProdutoRepository, rdb *redis.Client) ProdutoService {
	return &produtoService{repo: repo, rdb: rdb}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	p := &model.Produto{
		Nome:            req.Nome,
		Preco:           req.Preco,
		Estoque:         req.Estoque,
		Categoria:       req.Categoria,
		Descricao:       req.Descricao,
		Foto:            req.Foto,
		Setor:           req.Setor,
		VisivelCardapio: true,
	}
	if req.VisivelCardapio != nil {
		p.VisivelCardapio = *req.VisivelCardapio
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, apperr.Internal("falha ao criar produto", err)
	}
	s.invalidarCardapio(ctx)
	return produtoToResponse(p), nil
}

func (s *produtoService) BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("produto")
	}
	return produtoToResponse(p), nil
}

func (s *produtoService) Listar(ctx context.Context, filter dto.ProdutoFilter) (*dto.ProdutoListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	produtos, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("falha ao listar produtos", err)
	}
	items := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		items = append(items, *produtoToResponse(&produtos[i]))
	}
	return &dto.ProdutoListResponse{
		Data:       items,
		Pagination: dto.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

func (s *produtoService) Cardapio(ctx context.Context) ([]dto.ProdutoResponse, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, cardapioCacheKey).Result(); err == nil {
			var cached []dto.ProdutoResponse
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	produtos, _, err := s.repo.List(ctx, dto.ProdutoFilter{
		ApenasDisponiveis: true,
		Page:              1,
		Limit:             500,
	})
	if err != nil {
		return nil, apperr.Internal("falha ao montar cardápio", err)
	}
	items := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		items = append(items, *produtoToResponse(&produtos[i]))
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(items); err == nil {
			if err := s.rdb.Set(ctx, cardapioCacheKey, raw, cardapioCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("falha ao gravar cache do cardápio")
			}
		}
	}
	return items, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("produto")
	}
	if req.Nome != nil {
		p.Nome = *req.Nome
	}
	if req.Preco != nil {
		p.Preco = *req.Preco
	}
	if req.Estoque != nil {
		p.Estoque = *req.Estoque
	}
	if req.Categoria != nil {
		p.Categoria = req.Categoria
	}
	if req.Descricao != nil {
		p.Descricao = req.Descricao
	}
	if req.Foto != nil {
		p.Foto = req.Foto
	}
	if req.Setor != nil {
		p.Setor = req.Setor
	}
	if req.VisivelCardapio != nil {
		p.VisivelCardapio = *req.VisivelCardapio
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, apperr.Internal("falha ao atualizar produto", err)
	}
	s.invalidarCardapio(ctx)
	return produtoToResponse(p), nil
}

func (s *produtoService) AdicionarEstoque(ctx context.Context, id uuid.UUID, quantidade int) (*dto.ProdutoResponse, error) {
	if quantidade <= 0 {
		return nil, apperr.Validation("quantidade deve ser maior que zero")
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, apperr.NotFound("produto")
	}
	if err := s.repo.AjustarEstoque(ctx, id, quantidade); err != nil {
		return nil, apperr.Internal("falha ao ajustar estoque", err)
	}
	s.invalidarCardapio(ctx)
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("falha ao recarregar produto", err)
	}
	return produtoToResponse(p), nil
}

// Remover é permanente. Produtos com pedidos ou perdas registradas não podem
// ser removidos para não quebrar o histórico.
func (s *produtoService) Remover(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apperr.NotFound("produto")
	}
	pedidos, err := s.repo.CountPedidos(ctx, id)
	if err != nil {
		return apperr.Internal("falha ao verificar pedidos do produto", err)
	}
	if pedidos > 0 {
		return apperr.Business("produto possui pedidos registrados e não pode ser removido")
	}
	perdas, err := s.repo.CountPerdas(ctx, id)
	if err != nil {
		return apperr.Internal("falha ao verificar perdas do produto", err)
	}
	if perdas > 0 {
		return apperr.Business("produto possui perdas de estoque registradas e não pode ser removido")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperr.Internal("falha ao remover produto", err)
	}
	s.invalidarCardapio(ctx)
	return nil
}

func (s *produtoService) invalidarCardapio(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cardapioCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("falha ao invalidar cache do cardápio")
	}
}

func produtoToResponse(p *model.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:              p.ID.String(),
		Nome:            p.Nome,
		Preco:           p.Preco,
		Estoque:         p.Estoque,
		Categoria:       p.Categoria,
		Descricao:       p.Descricao,
		Foto:            p.Foto,
		Setor:           p.Setor,
		VisivelCardapio: p.VisivelCardapio,
	}
}
