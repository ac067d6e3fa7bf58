package connection

import (
	"sync"

	"github.com/DiabloDraco/local-boat-game/models"
)

// Manager tracks live client connections by participant id.
type Manager struct {
	mu      sync.RWMutex
	clients map[string]*models.Client
}

func NewManager() *Manager {
	return &Manager{clients: make(map[string]*models.Client)}
}

func (m *Manager) Add(client *models.Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[client.ID] = client
}

func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clients, id)
}

// Get returns the client for a participant id, or nil if it is gone.
func (m *Manager) Get(id string) *models.Client {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.clients[id]
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.clients)
}
