package repository

import (
	"context"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type HospedeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Hospede, error)
	FindAtivoPorPulseira(ctx context.Context, uid string) (*model.Hospede, error)
	List(ctx context.Context, filter dto.HospedeFilter) ([]model.Hospede, int64, error)
	Update(ctx context.Context, h *model.Hospede) error
	Desativar(ctx context.Context, id uuid.UUID) error
	ZerarDivida(ctx context.Context, id uuid.UUID) error

	// Used inside transactions — callers must pass the tx instance.
	CreateTx(tx *gorm.DB, h *model.Hospede) error
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Hospede, error)
	// FindAtivoPorPulseiraTx re-checks wristband exclusivity inside the
	// check-in transaction, closing the check-then-act race.
	FindAtivoPorPulseiraTx(tx *gorm.DB, uid string) (*model.Hospede, error)
	// IncrementarDividaTx applies a relative debt delta (may be negative).
	IncrementarDividaTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error
	// EncerrarTx performs the terminal checkout update: debt zeroed, guest
	// deactivated, wristband released, checkout stamped.
	EncerrarTx(tx *gorm.DB, id uuid.UUID, dataCheckout time.Time) error

	DB() *gorm.DB
}

type hospedeRepo struct{ db *gorm.DB }

func NewHospedeRepository(db *gorm.DB) HospedeRepository { return &hospedeRepo{db: db} }

func (r *hospedeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Hospede, error) {
	var h model.Hospede
	err := r.db.WithContext(ctx).Preload("QuartoRel").First(&h, "id = ?", id).Error
	return &h, err
}

func (r *hospedeRepo) FindAtivoPorPulseira(ctx context.Context, uid string) (*model.Hospede, error) {
	var h model.Hospede
	err := r.db.WithContext(ctx).
		Where("uid_pulseira = ? AND ativo = true", uid).
		First(&h).Error
	return &h, err
}

func (r *hospedeRepo) List(ctx context.Context, filter dto.HospedeFilter) ([]model.Hospede, int64, error) {
	var hospedes []model.Hospede
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Hospede{})

	if filter.Ativo != nil {
		q = q.Where("ativo = ?", *filter.Ativo)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.Busca != "" {
		like := "%" + filter.Busca + "%"
		q = q.Where(
			"nome ILIKE ? OR quarto ILIKE ? OR documento ILIKE ? OR telefone ILIKE ? OR email ILIKE ? OR uid_pulseira ILIKE ?",
			like, like, like, like, like, like,
		)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nome ASC").Limit(filter.Limit).Offset(offset).Find(&hospedes).Error
	return hospedes, total, err
}

func (r *hospedeRepo) Update(ctx context.Context, h *model.Hospede) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *hospedeRepo) Desativar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Hospede{}).
		Where("id = ?", id).Update("ativo", false).Error
}

func (r *hospedeRepo) ZerarDivida(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Hospede{}).
		Where("id = ?", id).Update("divida_atual", decimal.Zero).Error
}

func (r *hospedeRepo) CreateTx(tx *gorm.DB, h *model.Hospede) error {
	return tx.Create(h).Error
}

func (r *hospedeRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Hospede, error) {
	var h model.Hospede
	err := tx.First(&h, "id = ?", id).Error
	return &h, err
}

func (r *hospedeRepo) FindAtivoPorPulseiraTx(tx *gorm.DB, uid string) (*model.Hospede, error) {
	var h model.Hospede
	err := tx.Where("uid_pulseira = ? AND ativo = true", uid).First(&h).Error
	return &h, err
}

func (r *hospedeRepo) IncrementarDividaTx(tx *gorm.DB, id uuid.UUID, delta decimal.Decimal) error {
	return tx.Model(&model.Hospede{}).Where("id = ?", id).
		Update("divida_atual", gorm.Expr("divida_atual + ?", delta)).Error
}

func (r *hospedeRepo) EncerrarTx(tx *gorm.DB, id uuid.UUID, dataCheckout time.Time) error {
	return tx.Model(&model.Hospede{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"divida_atual":  decimal.Zero,
			"ativo":         false,
			"uid_pulseira":  nil,
			"data_checkout": dataCheckout,
		}).Error
}

func (r *hospedeRepo) DB() *gorm.DB { return r.db }
