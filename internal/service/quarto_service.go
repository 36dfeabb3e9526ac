package service

import (
	"context"
	"fmt"

	"github.com/jeffersonaandrade/pousada-backend/internal/apperr"
	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"
	"github.com/jeffersonaandrade/pousada-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuartoService interface {
	Criar(ctx context.Context, req dto.CriarQuartoRequest) (*dto.QuartoResponse, error)
	BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.QuartoResponse, error)
	Listar(ctx context.Context) ([]dto.QuartoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarQuartoRequest) (*dto.QuartoResponse, error)
	AtualizarStatus(ctx context.Context, id uuid.UUID, novoStatus model.StatusQuarto) (*dto.QuartoResponse, error)
	Remover(ctx context.Context, id uuid.UUID) error
}

type quartoService struct {
	repo repository.QuartoRepository
}

func NewQuartoService(repo repository.QuartoRepository) QuartoService {
	return &quartoService{repo: repo}
}

// ── Criar / Atualizar ─────────────────────────────────────────────────────────

func (s *quartoService) Criar(ctx context.Context, req dto.CriarQuartoRequest) (*dto.QuartoResponse, error) {
	if existente, err := s.repo.FindByNumero(ctx, req.Numero); err == nil && existente != nil {
		return nil, apperr.Conflict(fmt.Sprintf("já existe um quarto com número %s", req.Numero))
	}

	q := &model.Quarto{
		Numero:    req.Numero,
		Andar:     req.Andar,
		Categoria: req.Categoria,
		Status:    model.QuartoLivre,
	}
	if err := s.repo.Create(ctx, q); err != nil {
		return nil, apperr.Internal("falha ao criar quarto", err)
	}
	return s.decorar(ctx, q), nil
}

func (s *quartoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarQuartoRequest) (*dto.QuartoResponse, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("quarto")
	}
	if req.Numero != nil && *req.Numero != q.Numero {
		if existente, err := s.repo.FindByNumero(ctx, *req.Numero); err == nil && existente != nil {
			return nil, apperr.Conflict(fmt.Sprintf("já existe um quarto com número %s", *req.Numero))
		}
		q.Numero = *req.Numero
	}
	if req.Andar != nil {
		q.Andar = *req.Andar
	}
	if req.Categoria != nil {
		q.Categoria = *req.Categoria
	}
	if err := s.repo.Update(ctx, q); err != nil {
		return nil, apperr.Internal("falha ao atualizar quarto", err)
	}
	return s.decorar(ctx, q), nil
}

// ── AtualizarStatus ───────────────────────────────────────────────────────────
// Transições restritas: OCUPADO nunca vai direto para LIVRE (passa por
// LIMPEZA no checkout), e LIVRE/OCUPADO não podem ser forçados enquanto
// houver hóspedes ativos vinculados — ocupação é decidida pelo check-in e
// pelo checkout, não por ajuste manual.

func (s *quartoService) AtualizarStatus(ctx context.Context, id uuid.UUID, novoStatus model.StatusQuarto) (*dto.QuartoResponse, error) {
	if !novoStatus.Valid() {
		return nil, apperr.Validation("status de quarto inválido")
	}

	// A contagem de hóspedes e a gravação do status acontecem na mesma
	// transação: um check-in concorrente não pode entrar entre elas.
	var q *model.Quarto
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		var err error
		q, err = s.repo.FindByIDTx(tx, id)
		if err != nil {
			return apperr.NotFound("quarto")
		}

		if q.Status == model.QuartoOcupado && novoStatus == model.QuartoLivre {
			return apperr.Business("quarto ocupado não pode ser liberado diretamente; passe por limpeza")
		}

		if novoStatus == model.QuartoLivre || novoStatus == model.QuartoOcupado {
			ativos, err := s.repo.CountHospedesAtivosTx(tx, id, nil)
			if err != nil {
				return apperr.Internal("falha ao contar hóspedes do quarto", err)
			}
			if ativos > 0 {
				return apperr.Business(fmt.Sprintf(
					"quarto possui %d hóspede(s) ativo(s); o status é controlado pelo check-in/checkout", ativos))
			}
		}

		if err := s.repo.UpdateStatusTx(tx, id, novoStatus); err != nil {
			return apperr.Internal("falha ao atualizar status do quarto", err)
		}
		q.Status = novoStatus
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.decorar(ctx, q), nil
}

// ── Remover ───────────────────────────────────────────────────────────────────
// Remoção é permanente: só quartos LIVRES e sem hóspedes ativos.

func (s *quartoService) Remover(ctx context.Context, id uuid.UUID) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		q, err := s.repo.FindByIDTx(tx, id)
		if err != nil {
			return apperr.NotFound("quarto")
		}
		if q.Status != model.QuartoLivre {
			return apperr.Business("apenas quartos livres podem ser removidos")
		}
		ativos, err := s.repo.CountHospedesAtivosTx(tx, id, nil)
		if err != nil {
			return apperr.Internal("falha ao contar hóspedes do quarto", err)
		}
		if ativos > 0 {
			return apperr.Business("quarto possui hóspedes ativos e não pode ser removido")
		}
		if err := s.repo.DeleteTx(tx, id); err != nil {
			return apperr.Internal("falha ao remover quarto", err)
		}
		return nil
	})
}

// ── Consultas ─────────────────────────────────────────────────────────────────

func (s *quartoService) BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.QuartoResponse, error) {
	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("quarto")
	}
	return s.decorar(ctx, q), nil
}

func (s *quartoService) Listar(ctx context.Context) ([]dto.QuartoResponse, error) {
	quartos, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internal("falha ao listar quartos", err)
	}
	out := make([]dto.QuartoResponse, 0, len(quartos))
	for i := range quartos {
		out = append(out, *s.decorar(ctx, &quartos[i]))
	}
	return out, nil
}

// decorar anexa o resumo de até um hóspede ativo.
func (s *quartoService) decorar(ctx context.Context, q *model.Quarto) *dto.QuartoResponse {
	resp := &dto.QuartoResponse{
		ID:        q.ID.String(),
		Numero:    q.Numero,
		Andar:     q.Andar,
		Categoria: q.Categoria,
		Status:    string(q.Status),
	}
	if h, err := s.repo.HospedeAtivo(ctx, q.ID); err == nil && h != nil {
		resp.HospedeAtual = &dto.HospedeResumo{
			ID:   h.ID.String(),
			Nome: h.Nome,
			Tipo: string(h.Tipo),
		}
	}
	return resp
}
