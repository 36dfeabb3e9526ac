package infra

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/timeutil"

	"github.com/rs/zerolog/log"
)

// BackupService faz snapshots horários do banco via pg_dump e remove
// backups além da janela de retenção.
type BackupService struct {
	databaseURL   string
	destDir       string
	retentionDays int
}

func NewBackupService(databaseURL, destDir string, retentionDays int) *BackupService {
	if retentionDays <= 0 {
		retentionDays = 7
	}
	return &BackupService{
		databaseURL:   databaseURL,
		destDir:       destDir,
		retentionDays: retentionDays,
	}
}

// Start agenda um backup por hora até o contexto ser cancelado.
func (b *BackupService) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.Run(ctx)
			}
		}
	}()
	log.Info().Str("dir", b.destDir).Int("retencao_dias", b.retentionDays).Msg("agendamento de backup iniciado")
}

// Run executa um ciclo completo: dump + limpeza de backups antigos.
func (b *BackupService) Run(ctx context.Context) {
	path, err := b.dump(ctx)
	if err != nil {
		log.Error().Err(err).Msg("falha ao realizar backup do banco")
		return
	}
	log.Info().Str("arquivo", path).Msg("backup realizado")

	removed, err := b.cleanup()
	if err != nil {
		log.Warn().Err(err).Msg("falha ao remover backups antigos")
		return
	}
	if removed > 0 {
		log.Info().Int("removidos", removed).Msg("backups antigos removidos")
	}
}

func (b *BackupService) dump(ctx context.Context) (string, error) {
	if err := os.MkdirAll(b.destDir, 0o755); err != nil {
		return "", fmt.Errorf("criar diretório de backup: %w", err)
	}

	agora := timeutil.NowBrasil()
	filename := fmt.Sprintf("backup-%s.sql", agora.Format("2006-01-02-15-04"))
	dest := filepath.Join(b.destDir, filename)

	dumpCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	cmd := exec.CommandContext(dumpCtx, "pg_dump", "--no-owner", "--format=plain", "--file", dest, b.databaseURL)
	if out, err := cmd.CombinedOutput(); err != nil {
		_ = os.Remove(dest)
		return "", fmt.Errorf("pg_dump: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return dest, nil
}

func (b *BackupService) cleanup() (int, error) {
	entries, err := os.ReadDir(b.destDir)
	if err != nil {
		return 0, err
	}

	limite := time.Now().Add(-time.Duration(b.retentionDays) * 24 * time.Hour)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), "backup-") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(limite) {
			if err := os.Remove(filepath.Join(b.destDir, entry.Name())); err != nil {
				log.Warn().Err(err).Str("arquivo", entry.Name()).Msg("falha ao remover backup antigo")
				continue
			}
			removed++
		}
	}
	return removed, nil
}
