package repository

import (
	"context"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FinanceiroRepository interface {
	CreateCategoria(ctx context.Context, c *model.CategoriaFinanceira) error
	FindCategoriaByID(ctx context.Context, id uuid.UUID) (*model.CategoriaFinanceira, error)
	ListCategorias(ctx context.Context, tipo model.TipoCategoria) ([]model.CategoriaFinanceira, error)
	UpdateCategoria(ctx context.Context, c *model.CategoriaFinanceira) error
	DeleteCategoria(ctx context.Context, id uuid.UUID) error
	// CountContasPorCategoria conta contas (dos dois lados) ligadas à
	// categoria, para bloquear a remoção de categorias em uso.
	CountContasPorCategoria(ctx context.Context, categoriaID uuid.UUID) (int64, error)

	CreateContaPagar(ctx context.Context, c *model.ContaPagar) error
	FindContaPagarByID(ctx context.Context, id uuid.UUID) (*model.ContaPagar, error)
	ListContasPagar(ctx context.Context, filter dto.ContaFilter) ([]model.ContaPagar, error)
	UpdateContaPagar(ctx context.Context, c *model.ContaPagar) error
	DeleteContaPagar(ctx context.Context, id uuid.UUID) error

	CreateContaReceber(ctx context.Context, c *model.ContaReceber) error
	FindContaReceberByID(ctx context.Context, id uuid.UUID) (*model.ContaReceber, error)
	ListContasReceber(ctx context.Context, filter dto.ContaFilter) ([]model.ContaReceber, error)
	UpdateContaReceber(ctx context.Context, c *model.ContaReceber) error
	DeleteContaReceber(ctx context.Context, id uuid.UUID) error

	// AtualizarStatusVencidas promove PENDENTE para ATRASADO em lote para
	// contas com vencimento anterior à data-limite.
	AtualizarStatusVencidas(ctx context.Context, limite time.Time) error

	DB() *gorm.DB
}

type financeiroRepo struct{ db *gorm.DB }

func NewFinanceiroRepository(db *gorm.DB) FinanceiroRepository { return &financeiroRepo{db: db} }

func (r *financeiroRepo) CreateCategoria(ctx context.Context, c *model.CategoriaFinanceira) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *financeiroRepo) FindCategoriaByID(ctx context.Context, id uuid.UUID) (*model.CategoriaFinanceira, error) {
	var c model.CategoriaFinanceira
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *financeiroRepo) ListCategorias(ctx context.Context, tipo model.TipoCategoria) ([]model.CategoriaFinanceira, error) {
	var categorias []model.CategoriaFinanceira
	q := r.db.WithContext(ctx).Order("nome ASC")
	if tipo != "" {
		q = q.Where("tipo = ?", tipo)
	}
	err := q.Find(&categorias).Error
	return categorias, err
}

func (r *financeiroRepo) UpdateCategoria(ctx context.Context, c *model.CategoriaFinanceira) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *financeiroRepo) DeleteCategoria(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CategoriaFinanceira{}, "id = ?", id).Error
}

func (r *financeiroRepo) CountContasPorCategoria(ctx context.Context, categoriaID uuid.UUID) (int64, error) {
	var pagar, receber int64
	if err := r.db.WithContext(ctx).Model(&model.ContaPagar{}).
		Where("categoria_id = ?", categoriaID).Count(&pagar).Error; err != nil {
		return 0, err
	}
	if err := r.db.WithContext(ctx).Model(&model.ContaReceber{}).
		Where("categoria_id = ?", categoriaID).Count(&receber).Error; err != nil {
		return 0, err
	}
	return pagar + receber, nil
}

func (r *financeiroRepo) CreateContaPagar(ctx context.Context, c *model.ContaPagar) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *financeiroRepo) FindContaPagarByID(ctx context.Context, id uuid.UUID) (*model.ContaPagar, error) {
	var c model.ContaPagar
	err := r.db.WithContext(ctx).Preload("Categoria").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *financeiroRepo) ListContasPagar(ctx context.Context, filter dto.ContaFilter) ([]model.ContaPagar, error) {
	var contas []model.ContaPagar
	q := r.db.WithContext(ctx).Preload("Categoria").Order("data_vencimento ASC")
	q = applyContaFilter(q, filter)
	err := q.Find(&contas).Error
	return contas, err
}

func (r *financeiroRepo) UpdateContaPagar(ctx context.Context, c *model.ContaPagar) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *financeiroRepo) DeleteContaPagar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ContaPagar{}, "id = ?", id).Error
}

func (r *financeiroRepo) CreateContaReceber(ctx context.Context, c *model.ContaReceber) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *financeiroRepo) FindContaReceberByID(ctx context.Context, id uuid.UUID) (*model.ContaReceber, error) {
	var c model.ContaReceber
	err := r.db.WithContext(ctx).Preload("Categoria").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *financeiroRepo) ListContasReceber(ctx context.Context, filter dto.ContaFilter) ([]model.ContaReceber, error) {
	var contas []model.ContaReceber
	q := r.db.WithContext(ctx).Preload("Categoria").Order("data_vencimento ASC")
	q = applyContaFilter(q, filter)
	if filter.Origem != "" {
		q = q.Where("origem = ?", filter.Origem)
	}
	err := q.Find(&contas).Error
	return contas, err
}

func (r *financeiroRepo) UpdateContaReceber(ctx context.Context, c *model.ContaReceber) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *financeiroRepo) DeleteContaReceber(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ContaReceber{}, "id = ?", id).Error
}

func (r *financeiroRepo) AtualizarStatusVencidas(ctx context.Context, limite time.Time) error {
	if err := r.db.WithContext(ctx).Model(&model.ContaPagar{}).
		Where("status = ? AND data_vencimento < ?", model.ContaPendente, limite).
		Update("status", model.ContaAtrasada).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Model(&model.ContaReceber{}).
		Where("status = ? AND data_vencimento < ?", model.ContaPendente, limite).
		Update("status", model.ContaAtrasada).Error
}

func applyContaFilter(q *gorm.DB, filter dto.ContaFilter) *gorm.DB {
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CategoriaID != "" {
		q = q.Where("categoria_id = ?", filter.CategoriaID)
	}
	if filter.DataInicio != nil {
		q = q.Where("data_vencimento >= ?", *filter.DataInicio)
	}
	if filter.DataFim != nil {
		q = q.Where("data_vencimento <= ?", *filter.DataFim)
	}
	return q
}

func (r *financeiroRepo) DB() *gorm.DB { return r.db }
