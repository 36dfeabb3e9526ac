package infra

import (
	"fmt"

	"github.com/jeffersonaandrade/pousada-backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the SQL patches GORM cannot express
// (partial unique indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Quarto{},
		&model.Hospede{},
		&model.Produto{},
		&model.Pedido{},
		&model.Pagamento{},
		&model.Caixa{},
		&model.LancamentoCaixa{},
		&model.CategoriaFinanceira{},
		&model.ContaPagar{},
		&model.ContaReceber{},
		&model.PerdaEstoque{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	if err := applySchemaPatches(db); err != nil {
		return nil, fmt.Errorf("schema patches: %w", err)
	}

	return db, nil
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot express.
// The partial unique index below is the storage-level backstop for the
// wristband invariant: no UID may belong to two active guests, whatever the
// application layer does.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_hospedes_pulseira_ativa
		     ON hospedes (uid_pulseira)
		     WHERE ativo = true AND uid_pulseira IS NOT NULL`,
		// Um caixa ABERTO por operador, garantido também no banco.
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_caixas_aberto_por_usuario
		     ON caixas (usuario_id)
		     WHERE status = 'ABERTO'`,
	}
	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:40], err)
		}
	}
	return nil
}
