package dto

// ─── Anexos ──────────────────────────────────────────────────────────────────

type AnexoResponse struct {
	ID           string `json:"id"`
	LicitacaoID  string `json:"licitacaoId"`
	NomeArquivo  string `json:"nomeArquivo"`
	TamanhoBytes int64  `json:"tamanhoBytes"`
	URL          string `json:"url"`
	CreatedAt    string `json:"createdAt"`
}

// ─── Dashboard ───────────────────────────────────────────────────────────────

type DashboardResponse struct {
	TotalLicitacoes   int64            `json:"totalLicitacoes"`
	TotalFornecedores int64            `json:"totalFornecedores"`
	TotalOrgaos       int64            `json:"totalOrgaos"`
	PorStatus         map[string]int64 `json:"porStatus"`
}

// ─── Relatórios ──────────────────────────────────────────────────────────────

type SolicitarRelatorioRequest struct {
	// EnviarPara, when set, emails the generated PDF to this address.
	EnviarPara string `json:"enviarPara" validate:"omitempty,email"`
}

type RelatorioResponse struct {
	ID          string `json:"id"`
	LicitacaoID string `json:"licitacaoId"`
	Estado      string `json:"estado"`
	CreatedAt   string `json:"createdAt"`
}
