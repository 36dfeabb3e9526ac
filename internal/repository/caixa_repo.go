package repository

import (
	"context"

	"github.com/jeffersonaandrade/pousada-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CaixaRepository interface {
	// FindAbertoPorUsuario devolve a sessão ABERTO do operador, se houver.
	FindAbertoPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Caixa, error)
	ListLancamentos(ctx context.Context, caixaID uuid.UUID, limit int) ([]model.LancamentoCaixa, error)

	// Abertura, fechamento e lançamento são sempre transacionais: a sessão é
	// relida e o saldo é recalculado dentro da mesma transação que grava.
	CreateTx(tx *gorm.DB, c *model.Caixa) error
	UpdateTx(tx *gorm.DB, c *model.Caixa) error
	FindAbertoPorUsuarioTx(tx *gorm.DB, usuarioID uuid.UUID) (*model.Caixa, error)
	CreateLancamentoTx(tx *gorm.DB, l *model.LancamentoCaixa) error
	CountLancamentosTx(tx *gorm.DB, caixaID uuid.UUID) (int64, error)
	// SumLancamentosPorTipoTx soma os valores de um tipo dentro da sessão.
	// Sangrias somam negativo por construção.
	SumLancamentosPorTipoTx(tx *gorm.DB, caixaID uuid.UUID, tipo model.TipoLancamento) (decimal.Decimal, error)

	DB() *gorm.DB
}

type caixaRepo struct{ db *gorm.DB }

func NewCaixaRepository(db *gorm.DB) CaixaRepository { return &caixaRepo{db: db} }

func (r *caixaRepo) FindAbertoPorUsuario(ctx context.Context, usuarioID uuid.UUID) (*model.Caixa, error) {
	var c model.Caixa
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND status = ?", usuarioID, model.CaixaAberto).
		First(&c).Error
	return &c, err
}

func (r *caixaRepo) ListLancamentos(ctx context.Context, caixaID uuid.UUID, limit int) ([]model.LancamentoCaixa, error) {
	var lancamentos []model.LancamentoCaixa
	q := r.db.WithContext(ctx).
		Where("caixa_id = ?", caixaID).
		Order("data DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&lancamentos).Error
	return lancamentos, err
}

func (r *caixaRepo) CreateTx(tx *gorm.DB, c *model.Caixa) error {
	return tx.Create(c).Error
}

func (r *caixaRepo) UpdateTx(tx *gorm.DB, c *model.Caixa) error {
	return tx.Save(c).Error
}

func (r *caixaRepo) FindAbertoPorUsuarioTx(tx *gorm.DB, usuarioID uuid.UUID) (*model.Caixa, error) {
	var c model.Caixa
	err := tx.Where("usuario_id = ? AND status = ?", usuarioID, model.CaixaAberto).
		First(&c).Error
	return &c, err
}

func (r *caixaRepo) CreateLancamentoTx(tx *gorm.DB, l *model.LancamentoCaixa) error {
	return tx.Create(l).Error
}

func (r *caixaRepo) CountLancamentosTx(tx *gorm.DB, caixaID uuid.UUID) (int64, error) {
	var total int64
	err := tx.Model(&model.LancamentoCaixa{}).
		Where("caixa_id = ?", caixaID).
		Count(&total).Error
	return total, err
}

func (r *caixaRepo) SumLancamentosPorTipoTx(tx *gorm.DB, caixaID uuid.UUID, tipo model.TipoLancamento) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := tx.Model(&model.LancamentoCaixa{}).
		Where("caixa_id = ? AND tipo = ?", caixaID, tipo).
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

func (r *caixaRepo) DB() *gorm.DB { return r.db }
