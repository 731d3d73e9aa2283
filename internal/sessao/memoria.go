package sessao

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type entrada struct {
	dados  []byte
	expira time.Time
}

// MemoryStore keeps session state in process memory. Entries expire after ttl.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	sessoes map[string]entrada
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{ttl: ttl, now: time.Now, sessoes: make(map[string]entrada)}
}

func (m *MemoryStore) Obter(_ context.Context, id string) (*Estado, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessoes[id]
	if !ok || m.now().After(e.expira) {
		delete(m.sessoes, id)
		return &Estado{}, nil
	}
	// Stored serialized so callers never share mutable maps.
	var estado Estado
	if err := json.Unmarshal(e.dados, &estado); err != nil {
		return nil, err
	}
	return &estado, nil
}

func (m *MemoryStore) Salvar(_ context.Context, id string, estado *Estado) error {
	dados, err := json.Marshal(estado)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessoes[id] = entrada{dados: dados, expira: m.now().Add(m.ttl)}
	return nil
}

func (m *MemoryStore) Remover(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessoes, id)
	return nil
}

// Purgar drops expired sessions and returns how many were removed. Logins
// always open a new id, so abandoned sessions are never read again.
func (m *MemoryStore) Purgar() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	agora := m.now()
	removidas := 0
	for id, e := range m.sessoes {
		if agora.After(e.expira) {
			delete(m.sessoes, id)
			removidas++
		}
	}
	return removidas
}

// IniciarPurga runs Purgar every intervalo until ctx is done.
func (m *MemoryStore) IniciarPurga(ctx context.Context, intervalo time.Duration) {
	go func() {
		ticker := time.NewTicker(intervalo)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := m.Purgar(); n > 0 {
					log.Debug().Int("purged", n).Msg("sessões expiradas removidas")
				}
			}
		}
	}()
}
