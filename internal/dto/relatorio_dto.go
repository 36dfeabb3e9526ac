package dto

// SolicitarRelatorioRequest enfileira a geração assíncrona de uma planilha de
// pedidos no intervalo de datas (formato YYYY-MM-DD, fuso de negócio).
type SolicitarRelatorioRequest struct {
	DataInicio string `json:"data_inicio" validate:"required,datetime=2006-01-02"`
	DataFim    string `json:"data_fim"    validate:"required,datetime=2006-01-02"`
}

type RelatorioEnfileiradoResponse struct {
	JobID   string `json:"job_id"`
	Arquivo string `json:"arquivo"`
	Status  string `json:"status"`
}
