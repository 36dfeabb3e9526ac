package repository

import (
	"context"

	"github.com/jeffersonaandrade/pousada-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PagamentoRepository interface {
	ListByHospede(ctx context.Context, hospedeID uuid.UUID) ([]model.Pagamento, error)

	CreateTx(tx *gorm.DB, p *model.Pagamento) error
	// SumByHospedeTx soma todos os pagamentos do hóspede dentro da transação,
	// para a reconciliação de checkout.
	SumByHospedeTx(tx *gorm.DB, hospedeID uuid.UUID) (decimal.Decimal, error)

	DB() *gorm.DB
}

type pagamentoRepo struct{ db *gorm.DB }

func NewPagamentoRepository(db *gorm.DB) PagamentoRepository { return &pagamentoRepo{db: db} }

func (r *pagamentoRepo) ListByHospede(ctx context.Context, hospedeID uuid.UUID) ([]model.Pagamento, error) {
	var pagamentos []model.Pagamento
	err := r.db.WithContext(ctx).
		Where("hospede_id = ?", hospedeID).
		Order("data ASC").
		Find(&pagamentos).Error
	return pagamentos, err
}

func (r *pagamentoRepo) CreateTx(tx *gorm.DB, p *model.Pagamento) error {
	return tx.Create(p).Error
}

func (r *pagamentoRepo) SumByHospedeTx(tx *gorm.DB, hospedeID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := tx.Model(&model.Pagamento{}).
		Where("hospede_id = ?", hospedeID).
		Select("COALESCE(SUM(valor), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *pagamentoRepo) DB() *gorm.DB { return r.db }
