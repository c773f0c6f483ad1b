package cart

import (
	"context"
	"sync"

	"github.com/lusotech/storefront/internal/logger"
	"go.uber.org/zap"
)

// Manager owns one Store per session key. A store is created and hydrated on
// first touch and kept for the life of the process; the durable copy in
// Storage is what survives restarts.
type Manager struct {
	mu      sync.Mutex
	stores  map[string]*Store
	storage Storage
	logger  logger.Logger
}

func NewManager(storage Storage, log logger.Logger) *Manager {
	return &Manager{
		stores:  make(map[string]*Store),
		storage: storage,
		logger:  log,
	}
}

// Get returns the session's store, hydrating it from storage exactly once
// before anyone can observe it. A failed or malformed read is logged and the
// cart starts empty; hydration never fails the caller.
func (m *Manager) Get(ctx context.Context, key string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	if store, ok := m.stores[key]; ok {
		return store
	}

	store := NewStore()

	items, err := m.storage.Load(ctx, key)
	if err != nil {
		m.logger.Warn("discarding unreadable cart, starting empty",
			zap.String("session", key), zap.Error(err))
	} else if len(items) > 0 {
		store.Load(items)
	}

	// Attached after hydration so the initial Load doesn't echo back into
	// storage. Writes go through a per-session persister: the mutation path
	// never blocks, and a persistence failure must never surface there, the
	// in-memory state stays authoritative.
	p := &persister{storage: m.storage, logger: m.logger, key: key}
	store.OnItemsChange(p.enqueue)

	m.stores[key] = store
	return store
}

// persister writes item snapshots to durable storage without blocking the
// mutation path. Snapshots land in a single pending slot in mutation order
// (enqueue runs inside the store's commit) and one worker goroutine drains
// the slot until it is empty. Back-to-back mutations coalesce, and a slow
// write of an older snapshot can never land after a newer one.
type persister struct {
	storage Storage
	logger  logger.Logger
	key     string

	mu      sync.Mutex
	pending []Item
	dirty   bool
	running bool
}

func (p *persister) enqueue(items []Item) {
	p.mu.Lock()
	p.pending = items
	p.dirty = true
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.mu.Unlock()

	go p.drain()
}

func (p *persister) drain() {
	for {
		p.mu.Lock()
		if !p.dirty {
			p.running = false
			p.mu.Unlock()
			return
		}
		items := p.pending
		p.dirty = false
		p.mu.Unlock()

		if err := p.storage.Save(context.Background(), p.key, items); err != nil {
			p.logger.Warn("failed to persist cart",
				zap.String("session", p.key), zap.Error(err))
		}
	}
}
