package repository

import (
	"context"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PedidoRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error)
	List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, int64, error)
	// ListPorPeriodo feeds spreadsheet exports: every order in [inicio, fim).
	ListPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.Pedido, error)
	Update(ctx context.Context, p *model.Pedido) error

	CreateTx(tx *gorm.DB, p *model.Pedido) error
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Pedido, error)
	UpdateTx(tx *gorm.DB, p *model.Pedido) error

	DB() *gorm.DB
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Hospede").Preload("Produto").
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *pedidoRepo) List(ctx context.Context, filter dto.PedidoFilter) ([]model.Pedido, int64, error) {
	var pedidos []model.Pedido
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Pedido{})

	if filter.Status != "" {
		q = q.Where("pedidos.status = ?", filter.Status)
	}
	if filter.HospedeID != "" {
		q = q.Where("pedidos.hospede_id = ?", filter.HospedeID)
	}
	if filter.Metodo != "" {
		q = q.Where("pedidos.metodo = ?", filter.Metodo)
	}
	if filter.UsuarioID != "" {
		q = q.Where("pedidos.usuario_id = ?", filter.UsuarioID)
	}
	if filter.Recente {
		q = q.Where("pedidos.data >= ?", time.Now().Add(-24*time.Hour))
	}
	if filter.Busca != "" {
		like := "%" + filter.Busca + "%"
		q = q.Joins("JOIN hospedes ON hospedes.id = pedidos.hospede_id").
			Joins("JOIN produtos ON produtos.id = pedidos.produto_id").
			Where("hospedes.nome ILIKE ? OR produtos.nome ILIKE ?", like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Hospede").Preload("Produto").
		Order("pedidos.data DESC").
		Limit(filter.Limit).Offset(offset).
		Find(&pedidos).Error
	return pedidos, total, err
}

func (r *pedidoRepo) ListPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Hospede").Preload("Produto").
		Where("data >= ? AND data < ?", inicio, fim).
		Order("data ASC").
		Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) Update(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *pedidoRepo) CreateTx(tx *gorm.DB, p *model.Pedido) error {
	return tx.Create(p).Error
}

func (r *pedidoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Pedido, error) {
	var p model.Pedido
	err := tx.Preload("Produto").First(&p, "id = ?", id).Error
	return &p, err
}

func (r *pedidoRepo) UpdateTx(tx *gorm.DB, p *model.Pedido) error {
	return tx.Save(p).Error
}

func (r *pedidoRepo) DB() *gorm.DB { return r.db }
