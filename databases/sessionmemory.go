package databases

import (
	"context"
	"sync"

	"github.com/cybercell/cybercrime-portal-api/models"
)

// memorySessionDatabase keeps sessions in process memory. It is the default
// store and the one unit tests run against.
type memorySessionDatabase struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemorySessionDatabase initializes an in-memory session store
func NewMemorySessionDatabase() SessionDatabase {
	return &memorySessionDatabase{
		sessions: make(map[string]models.Session),
	}
}

func (m *memorySessionDatabase) Save(ctx context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return nil
}

func (m *memorySessionDatabase) Find(ctx context.Context, id string) (*models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &session, nil
}

func (m *memorySessionDatabase) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
