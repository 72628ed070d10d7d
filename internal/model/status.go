package model

// StatusLicitacao is the lifecycle label of a licitação. The workflow is
// deliberately unconstrained: any status may be overwritten with any other at
// any time. Status is advisory labeling for the operators, not a guarded
// state machine.
type StatusLicitacao string

const (
	StatusPropostaNaoCadastrada StatusLicitacao = "Proposta não Cadastrada"
	StatusPropostaCadastrada    StatusLicitacao = "Proposta Cadastrada"
	StatusEmDisputa             StatusLicitacao = "Em Disputa"
	StatusSelecaoFornecedores   StatusLicitacao = "Seleção de Fornecedores"
	StatusAceita                StatusLicitacao = "Aceita"
	StatusAceitaHabilitada      StatusLicitacao = "Aceita e Habilitada"
	StatusAguardandoEmpenho     StatusLicitacao = "Aguardando Nota de Empenho"
	StatusAguardandoEntrega     StatusLicitacao = "Aguardando Entrega"
	StatusEntregue              StatusLicitacao = "Entregue"
	StatusCancelada             StatusLicitacao = "Cancelada"
)

// StatusOptions lists every valid status in workflow order. Entregue and
// Cancelada are terminal; Cancelada is reachable from any non-terminal status.
var StatusOptions = []StatusLicitacao{
	StatusPropostaNaoCadastrada,
	StatusPropostaCadastrada,
	StatusEmDisputa,
	StatusSelecaoFornecedores,
	StatusAceita,
	StatusAceitaHabilitada,
	StatusAguardandoEmpenho,
	StatusAguardandoEntrega,
	StatusEntregue,
	StatusCancelada,
}

// statusCores maps each status to the presentation color token the frontend
// renders badges with.
var statusCores = map[StatusLicitacao]string{
	StatusPropostaNaoCadastrada: "red",
	StatusPropostaCadastrada:    "yellow",
	StatusEmDisputa:             "blue",
	StatusSelecaoFornecedores:   "purple",
	StatusAceita:                "green",
	StatusAceitaHabilitada:      "green",
	StatusAguardandoEmpenho:     "orange",
	StatusAguardandoEntrega:     "indigo",
	StatusEntregue:              "emerald",
	StatusCancelada:             "gray",
}

// CorNeutra is returned for anything outside the enumeration.
const CorNeutra = "gray"

// Cor returns the presentation color token for a status. Total over all
// inputs: unknown values map to the neutral token, never an error.
func (s StatusLicitacao) Cor() string {
	if cor, ok := statusCores[s]; ok {
		return cor
	}
	return CorNeutra
}

// IsValid reports whether s is one of the 10 enumerated statuses.
func (s StatusLicitacao) IsValid() bool {
	_, ok := statusCores[s]
	return ok
}

// IsTerminal reports whether the workflow ends at s.
func (s StatusLicitacao) IsTerminal() bool {
	return s == StatusEntregue || s == StatusCancelada
}

// Modalidade of the bidding process.
type Modalidade string

const (
	ModalidadeDispensa Modalidade = "Dispensa de Licitação"
	ModalidadePregao   Modalidade = "Pregão"
)

func (m Modalidade) IsValid() bool {
	return m == ModalidadeDispensa || m == ModalidadePregao
}
