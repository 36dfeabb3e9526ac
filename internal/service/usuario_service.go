package service

import (
	"context"

	"github.com/jeffersonaandrade/pousada-backend/internal/apperr"
	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"
	"github.com/jeffersonaandrade/pousada-backend/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UsuarioService interface {
	Criar(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error)
	Listar(ctx context.Context, incluirInativos bool) ([]dto.UsuarioResponse, error)
	BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	Desativar(ctx context.Context, id uuid.UUID) error
	// ResolverPin resolve um PIN para o funcionário ativo dono dele.
	// O PIN é comparado via bcrypt contra cada hash ativo; nunca há
	// comparação em texto claro.
	ResolverPin(ctx context.Context, pin string) (*model.Usuario, error)
	// ResolverPinAutorizador exige adicionalmente cargo MANAGER ou ADMIN.
	ResolverPinAutorizador(ctx context.Context, pin string) (*model.Usuario, error)
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

// ── Criar ─────────────────────────────────────────────────────────────────────
// O PIN precisa ser único entre funcionários. Se o PIN pertencer a um
// funcionário inativo, o cadastro o reativa com o novo nome e cargo em vez de
// criar uma linha duplicada.

func (s *usuarioService) Criar(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	cargo := model.Cargo(req.Cargo)
	if !cargo.Valid() {
		return nil, apperr.Validation("cargo inválido")
	}

	todos, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, apperr.Internal("falha ao listar funcionários", err)
	}
	for i := range todos {
		if bcrypt.CompareHashAndPassword([]byte(todos[i].PinHash), []byte(req.Pin)) != nil {
			continue
		}
		if todos[i].Ativo {
			return nil, apperr.Conflict("PIN já está em uso por outro funcionário")
		}
		// Reativa o funcionário inativo dono do PIN.
		todos[i].Nome = req.Nome
		todos[i].Cargo = cargo
		todos[i].Ativo = true
		if err := s.repo.Update(ctx, &todos[i]); err != nil {
			return nil, apperr.Internal("falha ao reativar funcionário", err)
		}
		return usuarioToResponse(&todos[i]), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("falha ao gerar hash do PIN", err)
	}

	u := &model.Usuario{
		Nome:    req.Nome,
		PinHash: string(hash),
		Cargo:   cargo,
		Ativo:   true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, apperr.Internal("falha ao criar funcionário", err)
	}
	return usuarioToResponse(u), nil
}

func (s *usuarioService) Listar(ctx context.Context, incluirInativos bool) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.List(ctx, incluirInativos)
	if err != nil {
		return nil, apperr.Internal("falha ao listar funcionários", err)
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		out = append(out, *usuarioToResponse(&usuarios[i]))
	}
	return out, nil
}

func (s *usuarioService) BuscarPorID(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("funcionário")
	}
	return usuarioToResponse(u), nil
}

func (s *usuarioService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.NotFound("funcionário")
	}
	if req.Nome != nil {
		u.Nome = *req.Nome
	}
	if req.Cargo != nil {
		cargo := model.Cargo(*req.Cargo)
		if !cargo.Valid() {
			return nil, apperr.Validation("cargo inválido")
		}
		u.Cargo = cargo
	}
	if req.Pin != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Pin), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Internal("falha ao gerar hash do PIN", err)
		}
		u.PinHash = string(hash)
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, apperr.Internal("falha ao atualizar funcionário", err)
	}
	return usuarioToResponse(u), nil
}

func (s *usuarioService) Desativar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return apperr.NotFound("funcionário")
	}
	if err := s.repo.Desativar(ctx, id); err != nil {
		return apperr.Internal("falha ao desativar funcionário", err)
	}
	return nil
}

func (s *usuarioService) ResolverPin(ctx context.Context, pin string) (*model.Usuario, error) {
	ativos, err := s.repo.ListAtivos(ctx)
	if err != nil {
		return nil, apperr.Internal("falha ao listar funcionários", err)
	}
	return resolverPinEntre(ativos, pin)
}

func (s *usuarioService) ResolverPinAutorizador(ctx context.Context, pin string) (*model.Usuario, error) {
	u, err := s.ResolverPin(ctx, pin)
	if err != nil {
		return nil, err
	}
	if !u.Cargo.PodeAutorizar() {
		return nil, apperr.Forbidden("PIN não pertence a um gerente ou administrador")
	}
	return u, nil
}

// resolverPinEntre faz a comparação bcrypt contra cada hash ativo.
func resolverPinEntre(ativos []model.Usuario, pin string) (*model.Usuario, error) {
	for i := range ativos {
		if bcrypt.CompareHashAndPassword([]byte(ativos[i].PinHash), []byte(pin)) == nil {
			return &ativos[i], nil
		}
	}
	return nil, apperr.Forbidden("PIN inválido")
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:    u.ID.String(),
		Nome:  u.Nome,
		Cargo: string(u.Cargo),
		Ativo: u.Ativo,
	}
}
