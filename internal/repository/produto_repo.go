package repository

import (
	"context"

	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error)
	Update(ctx context.Context, p *model.Produto) error
	Delete(ctx context.Context, id uuid.UUID) error
	// AjustarEstoque applies a relative stock delta outside a transaction.
	AjustarEstoque(ctx context.Context, id uuid.UUID, delta int) error

	CountPedidos(ctx context.Context, produtoID uuid.UUID) (int64, error)
	CountPerdas(ctx context.Context, produtoID uuid.UUID) (int64, error)

	// Used inside transactions — callers must pass the tx instance.
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Produto, error)
	FindByNomeTx(tx *gorm.DB, nome string) (*model.Produto, error)
	CreateTx(tx *gorm.DB, p *model.Produto) error
	// AjustarEstoqueTx applies a relative stock delta; never read-modify-write.
	AjustarEstoqueTx(tx *gorm.DB, id uuid.UUID, delta int) error
	AtualizarPrecoTx(tx *gorm.DB, id uuid.UUID, preco decimal.Decimal) error

	DB() *gorm.DB
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *produtoRepo) List(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, int64, error) {
	var produtos []model.Produto
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Produto{})

	if filter.Categoria != "" {
		q = q.Where("categoria = ?", filter.Categoria)
	}
	if filter.ApenasDisponiveis {
		q = q.Where("estoque > 0 AND visivel_cardapio = true")
	} else if filter.EstoqueBaixo {
		q = q.Where("estoque < 10")
	}
	if filter.Busca != "" {
		like := "%" + filter.Busca + "%"
		q = q.Where("nome ILIKE ? OR categoria ILIKE ? OR descricao ILIKE ?", like, like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("nome ASC").Limit(filter.Limit).Offset(offset).Find(&produtos).Error
	return produtos, total, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Produto{}, "id = ?", id).Error
}

func (r *produtoRepo) AjustarEstoque(ctx context.Context, id uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).Model(&model.Produto{}).
		Where("id = ?", id).
		Update("estoque", gorm.Expr("estoque + ?", delta)).Error
}

func (r *produtoRepo) CountPedidos(ctx context.Context, produtoID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("produto_id = ?", produtoID).Count(&n).Error
	return n, err
}

func (r *produtoRepo) CountPerdas(ctx context.Context, produtoID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.PerdaEstoque{}).
		Where("produto_id = ?", produtoID).Count(&n).Error
	return n, err
}

func (r *produtoRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := tx.First(&p, "id = ?", id).Error
	return &p, err
}

func (r *produtoRepo) FindByNomeTx(tx *gorm.DB, nome string) (*model.Produto, error) {
	var p model.Produto
	err := tx.Where("nome = ?", nome).First(&p).Error
	return &p, err
}

func (r *produtoRepo) CreateTx(tx *gorm.DB, p *model.Produto) error {
	return tx.Create(p).Error
}

func (r *produtoRepo) AjustarEstoqueTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Produto{}).Where("id = ?", id).
		Update("estoque", gorm.Expr("estoque + ?", delta)).Error
}

func (r *produtoRepo) AtualizarPrecoTx(tx *gorm.DB, id uuid.UUID, preco decimal.Decimal) error {
	return tx.Model(&model.Produto{}).Where("id = ?", id).
		Update("preco", preco).Error
}

func (r *produtoRepo) DB() *gorm.DB { return r.db }
