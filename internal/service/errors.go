package service

import "errors"

// Domain errors. Handlers map them to HTTP status codes with errors.Is.
var (
	ErrObraNaoEncontrada     = errors.New("obra não encontrada")
	ErrObraDuplicada         = errors.New("já existe uma obra com esse nome")
	ErrEtapaNaoEncontrada    = errors.New("etapa não encontrada")
	ErrIntervaloInvalido     = errors.New("data de fim anterior à data de início")
	ErrDataInvalida          = errors.New("data inválida")
	ErrExclusaoNaoConfirmada = errors.New("exclusão da obra não foi confirmada")
	ErrDocumentoAusente      = errors.New("obra sem documento anexado")
	ErrDocumentoIlegivel     = errors.New("não foi possível ler o documento")
	ErrCredenciaisInvalidas  = errors.New("credenciais inválidas")
	ErrTokenInvalido         = errors.New("refresh token inválido ou expirado")
)
