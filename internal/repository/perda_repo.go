package repository

import (
	"context"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"

	"gorm.io/gorm"
)

type PerdaRepository interface {
	List(ctx context.Context, filter dto.PerdaFilter) ([]model.PerdaEstoque, int64, error)

	CreateTx(tx *gorm.DB, p *model.PerdaEstoque) error

	DB() *gorm.DB
}

type perdaRepo struct{ db *gorm.DB }

func NewPerdaRepository(db *gorm.DB) PerdaRepository { return &perdaRepo{db: db} }

func (r *perdaRepo) List(ctx context.Context, filter dto.PerdaFilter) ([]model.PerdaEstoque, int64, error) {
	var perdas []model.PerdaEstoque
	var total int64

	q := r.db.WithContext(ctx).Model(&model.PerdaEstoque{})

	if filter.ProdutoID != "" {
		q = q.Where("produto_id = ?", filter.ProdutoID)
	}
	if filter.DataInicio != "" {
		if inicio, err := time.Parse("2006-01-02", filter.DataInicio); err == nil {
			q = q.Where("data >= ?", inicio)
		}
	}
	if filter.DataFim != "" {
		if fim, err := time.Parse("2006-01-02", filter.DataFim); err == nil {
			q = q.Where("data < ?", fim.AddDate(0, 0, 1))
		}
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Produto").Preload("Usuario").
		Order("data DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&perdas).Error
	return perdas, total, err
}

func (r *perdaRepo) CreateTx(tx *gorm.DB, p *model.PerdaEstoque) error {
	return tx.Create(p).Error
}

func (r *perdaRepo) DB() *gorm.DB { return r.db }
