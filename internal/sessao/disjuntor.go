package sessao

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ── Circuit breaker ───────────────────────────────────────────────────────────
// Closed → Open → Half-Open around the primary session store. While open,
// calls skip the primary and go straight to the fallback.

// EstadoDisjuntor is the breaker state.
type EstadoDisjuntor int

const (
	Fechado    EstadoDisjuntor = iota // requests flow to the primary
	Aberto                            // primary skipped
	MeioAberto                        // probing the primary again
)

func (s EstadoDisjuntor) String() string {
	switch s {
	case Fechado:
		return "closed"
	case Aberto:
		return "open"
	case MeioAberto:
		return "half-open"
	default:
		return "unknown"
	}
}

// ErrDisjuntorAberto is returned by Executar while the breaker is open.
var ErrDisjuntorAberto = errors.New("circuit breaker is open")

type ConfigDisjuntor struct {
	LimiteFalhas  int           // consecutive failures to open (default: 3)
	LimiteSucesso int           // consecutive half-open successes to close (default: 1)
	TempoAberto   time.Duration // time open before probing (default: 30s)
}

// Disjuntor is a thread-safe circuit breaker.
type Disjuntor struct {
	mu            sync.Mutex
	estado        EstadoDisjuntor
	falhas        int
	sucessos      int
	ultimaFalha   time.Time
	limiteFalhas  int
	limiteSucesso int
	tempoAberto   time.Duration
	now           func() time.Time
}

func NewDisjuntor(cfg ConfigDisjuntor) *Disjuntor {
	if cfg.LimiteFalhas <= 0 {
		cfg.LimiteFalhas = 3
	}
	if cfg.LimiteSucesso <= 0 {
		cfg.LimiteSucesso = 1
	}
	if cfg.TempoAberto <= 0 {
		cfg.TempoAberto = 30 * time.Second
	}
	return &Disjuntor{
		limiteFalhas:  cfg.LimiteFalhas,
		limiteSucesso: cfg.LimiteSucesso,
		tempoAberto:   cfg.TempoAberto,
		now:           time.Now,
	}
}

// Estado returns the current state, moving open → half-open once the
// open timeout has elapsed.
func (d *Disjuntor) Estado() EstadoDisjuntor {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.estado == Aberto && d.now().Sub(d.ultimaFalha) >= d.tempoAberto {
		d.estado = MeioAberto
		d.sucessos = 0
	}
	return d.estado
}

// Executar runs fn unless the breaker is open.
func (d *Disjuntor) Executar(fn func() error) error {
	if d.Estado() == Aberto {
		return ErrDisjuntorAberto
	}

	err := fn()

	d.mu.Lock()
	defer d.mu.Unlock()
	if err != nil {
		d.falhas++
		d.ultimaFalha = d.now()
		if d.estado == MeioAberto || d.falhas >= d.limiteFalhas {
			d.estado = Aberto
			d.falhas = 0
		}
		return err
	}

	switch d.estado {
	case Fechado:
		d.falhas = 0
	case MeioAberto:
		d.sucessos++
		if d.sucessos >= d.limiteSucesso {
			d.estado = Fechado
			d.falhas = 0
			d.sucessos = 0
		}
	}
	return nil
}

// ── Store with fallback ───────────────────────────────────────────────────────

// StoreResiliente serves from primario through a Disjuntor and falls back
// to reserva when the primary fails. State written during an outage lives
// only in the fallback.
type StoreResiliente struct {
	primario  Store
	reserva   Store
	disjuntor *Disjuntor
}

func NewStoreResiliente(primario, reserva Store, d *Disjuntor) *StoreResiliente {
	return &StoreResiliente{primario: primario, reserva: reserva, disjuntor: d}
}

func (s *StoreResiliente) Obter(ctx context.Context, id string) (*Estado, error) {
	var e *Estado
	err := s.disjuntor.Executar(func() error {
		var err error
		e, err = s.primario.Obter(ctx, id)
		return err
	})
	if err != nil {
		s.avisar(err, "obter")
		return s.reserva.Obter(ctx, id)
	}
	return e, nil
}

func (s *StoreResiliente) Salvar(ctx context.Context, id string, e *Estado) error {
	err := s.disjuntor.Executar(func() error { return s.primario.Salvar(ctx, id, e) })
	if err != nil {
		s.avisar(err, "salvar")
		return s.reserva.Salvar(ctx, id, e)
	}
	return nil
}

func (s *StoreResiliente) Remover(ctx context.Context, id string) error {
	// Clear both so a later recovery does not resurrect the session.
	errReserva := s.reserva.Remover(ctx, id)
	if err := s.disjuntor.Executar(func() error { return s.primario.Remover(ctx, id) }); err != nil {
		s.avisar(err, "remover")
	}
	return errReserva
}

func (s *StoreResiliente) avisar(err error, op string) {
	if errors.Is(err, ErrDisjuntorAberto) {
		return
	}
	log.Warn().Err(err).Str("op", op).Str("disjuntor", s.disjuntor.Estado().String()).
		Msg("sessão: store primário indisponível, usando memória")
}
