package repository

import (
	"context"

	"github.com/jeffersonaandrade/pousada-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuartoRepository is the data access contract for rooms. Services depend on
// this interface, not on the concrete GORM implementation, enabling unit
// testing via in-memory stubs.
type QuartoRepository interface {
	Create(ctx context.Context, q *model.Quarto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Quarto, error)
	FindByNumero(ctx context.Context, numero string) (*model.Quarto, error)
	List(ctx context.Context) ([]model.Quarto, error)
	Update(ctx context.Context, q *model.Quarto) error

	// HospedeAtivo returns up to one active guest for list decoration.
	HospedeAtivo(ctx context.Context, quartoID uuid.UUID) (*model.Hospede, error)

	// Used inside transactions — callers must pass the tx instance.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Quarto, error)
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status model.StatusQuarto) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	// CountHospedesAtivosTx counts active guests linked to the room, optionally
	// excluding one guest (the one being checked out).
	CountHospedesAtivosTx(tx *gorm.DB, quartoID uuid.UUID, excetoHospede *uuid.UUID) (int64, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type quartoRepo struct{ db *gorm.DB }

func NewQuartoRepository(db *gorm.DB) QuartoRepository { return &quartoRepo{db: db} }

func (r *quartoRepo) Create(ctx context.Context, q *model.Quarto) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *quartoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Quarto, error) {
	var q model.Quarto
	err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error
	return &q, err
}

func (r *quartoRepo) FindByNumero(ctx context.Context, numero string) (*model.Quarto, error) {
	var q model.Quarto
	err := r.db.WithContext(ctx).Where("numero = ?", numero).First(&q).Error
	return &q, err
}

func (r *quartoRepo) List(ctx context.Context) ([]model.Quarto, error) {
	var quartos []model.Quarto
	err := r.db.WithContext(ctx).Order("andar ASC, numero ASC").Find(&quartos).Error
	return quartos, err
}

func (r *quartoRepo) Update(ctx context.Context, q *model.Quarto) error {
	return r.db.WithContext(ctx).Save(q).Error
}

func (r *quartoRepo) HospedeAtivo(ctx context.Context, quartoID uuid.UUID) (*model.Hospede, error) {
	var h model.Hospede
	err := r.db.WithContext(ctx).
		Where("quarto_id = ? AND ativo = true", quartoID).
		First(&h).Error
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *quartoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Quarto, error) {
	var q model.Quarto
	err := tx.First(&q, "id = ?", id).Error
	return &q, err
}

func (r *quartoRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status model.StatusQuarto) error {
	return tx.Model(&model.Quarto{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *quartoRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Quarto{}, "id = ?", id).Error
}

func (r *quartoRepo) CountHospedesAtivosTx(tx *gorm.DB, quartoID uuid.UUID, excetoHospede *uuid.UUID) (int64, error) {
	q := tx.Model(&model.Hospede{}).Where("quarto_id = ? AND ativo = true", quartoID)
	if excetoHospede != nil {
		q = q.Where("id <> ?", *excetoHospede)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func (r *quartoRepo) DB() *gorm.DB { return r.db }
