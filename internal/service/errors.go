package service

import "errors"

// Sentinel errors shared by the service layer. Handlers map them to HTTP
// status codes; anything else surfaces as a collaborator failure with the
// store's message when available.
var (
	ErrLicitacaoNaoEncontrada  = errors.New("licitação não encontrada")
	ErrItemNaoEncontrado       = errors.New("item não encontrado")
	ErrCotacaoNaoEncontrada    = errors.New("cotação não encontrada")
	ErrFornecedorNaoEncontrado = errors.New("fornecedor não encontrado")
	ErrOrgaoNaoEncontrado      = errors.New("órgão não encontrado")
	ErrAnexoNaoEncontrado      = errors.New("anexo não encontrado")
	ErrRelatorioNaoEncontrado  = errors.New("relatório não encontrado")
	ErrUsuarioNaoEncontrado    = errors.New("usuário não encontrado")

	ErrStatusInvalido     = errors.New("status de licitação inválido")
	ErrModalidadeInvalida = errors.New("modalidade inválida")

	ErrEmailJaCadastrado = errors.New("já existe um usuário com este e-mail")
	ErrCNPJJaCadastrado  = errors.New("já existe um fornecedor com este CNPJ")
	ErrUASGJaCadastrada  = errors.New("já existe um órgão com esta UASG")

	ErrAnexoNaoPDF          = errors.New("apenas arquivos PDF são permitidos")
	ErrAnexoMuitoGrande     = errors.New("o arquivo excede o tamanho máximo de 10MB")
	ErrRelatorioNaoPronto   = errors.New("o relatório ainda não foi gerado")
	ErrCredenciaisInvalidas = errors.New("credenciais inválidas")
	ErrTokenInvalido        = errors.New("refresh token inválido ou expirado")
)
