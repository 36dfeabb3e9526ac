package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/apperr"
	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/timeutil"
	"github.com/jeffersonaandrade/pousada-backend/internal/worker"

	"github.com/google/uuid"
)

type RelatorioService interface {
	// Solicitar enfileira a geração assíncrona da planilha de pedidos.
	Solicitar(ctx context.Context, req dto.SolicitarRelatorioRequest) (*dto.RelatorioEnfileiradoResponse, error)
}

type relatorioService struct {
	dispatcher *worker.Dispatcher
}

func NewRelatorioService(dispatcher *worker.Dispatcher) RelatorioService {
	return &relatorioService{dispatcher: dispatcher}
}

func (s *relatorioService) Solicitar(ctx context.Context, req dto.SolicitarRelatorioRequest) (*dto.RelatorioEnfileiradoResponse, error) {
	inicio, err := time.ParseInLocation("2006-01-02", req.DataInicio, timeutil.Location())
	if err != nil {
		return nil, apperr.Validation("data_inicio inválida (use YYYY-MM-DD)")
	}
	fim, err := time.ParseInLocation("2006-01-02", req.DataFim, timeutil.Location())
	if err != nil {
		return nil, apperr.Validation("data_fim inválida (use YYYY-MM-DD)")
	}
	if fim.Before(inicio) {
		return nil, apperr.Validation("data_fim anterior a data_inicio")
	}
	if s.dispatcher == nil {
		return nil, apperr.Internal("fila de relatórios indisponível", nil)
	}

	jobID := uuid.NewString()
	arquivo := fmt.Sprintf("pedidos_%s_%s_%s.xlsx",
		inicio.Format("20060102"), fim.Format("20060102"), jobID[:8])

	payload := worker.RelatorioPayload{
		JobID:      jobID,
		DataInicio: req.DataInicio,
		DataFim:    req.DataFim,
		Arquivo:    arquivo,
	}
	if err := s.dispatcher.EnqueueRelatorio(ctx, payload); err != nil {
		return nil, apperr.Internal("falha ao enfileirar relatório", err)
	}

	return &dto.RelatorioEnfileiradoResponse{
		JobID:   jobID,
		Arquivo: arquivo,
		Status:  "ENFILEIRADO",
	}, nil
}
