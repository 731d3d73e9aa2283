// Package sessao keeps the operator's transient UI state per login session:
// pending confirmations, the last text extraction result and remembered form
// choices. Nothing here is business data; losing it only resets the screen.
package sessao

import (
	"context"
	"errors"
	"time"
)

// ErrSemSessao is returned when a request carries no session identifier.
var ErrSemSessao = errors.New("sessão não identificada")

// Estado is the per-session view state.
type Estado struct {
	// ExclusaoPendente holds the obra whose deletion awaits confirmation.
	ExclusaoPendente string `json:"exclusao_pendente,omitempty"`
	// ItensExtraidos maps obra name to the material lines read from its PDF.
	ItensExtraidos map[string][]string `json:"itens_extraidos,omitempty"`
	// FormularioCusto remembers the last classe/etapa/unidade used.
	FormularioCusto *FormularioCusto `json:"formulario_custo,omitempty"`
}

// FormularioCusto is the remembered part of the cost-entry form.
type FormularioCusto struct {
	Classe  string `json:"classe"`
	Etapa   string `json:"etapa"`
	Unidade string `json:"unidade"`
}

// Store persists Estado by session id. Implementations must be safe for
// concurrent use.
type Store interface {
	Obter(ctx context.Context, id string) (*Estado, error)
	Salvar(ctx context.Context, id string, e *Estado) error
	Remover(ctx context.Context, id string) error
}

// Atualizar loads the state for id, applies fn and saves it back.
func Atualizar(ctx context.Context, s Store, id string, fn func(e *Estado)) error {
	if id == "" {
		return ErrSemSessao
	}
	e, err := s.Obter(ctx, id)
	if err != nil {
		return err
	}
	fn(e)
	return s.Salvar(ctx, id, e)
}

// DefaultTTL is used when a store is built with a non-positive TTL.
const DefaultTTL = 8 * time.Hour
