package cart

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/lusotech/storefront/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	mu      sync.Mutex
	data    map[string][]Item
	loadErr error
	saveErr error
	loads   int
	saves   int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: map[string][]Item{}}
}

func (f *fakeStorage) Load(ctx context.Context, key string) ([]Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.data[key], nil
}

func (f *fakeStorage) Save(ctx context.Context, key string, items []Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data[key] = items
	return nil
}

func (f *fakeStorage) saved(key string) []Item {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[key]
}

func (f *fakeStorage) saveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}

func TestManager_HydratesOnce(t *testing.T) {
	storage := newFakeStorage()
	storage.data["s1"] = []Item{{ID: "1", Name: "Mouse", Price: 5, Quantity: 2, Stock: 9}}

	m := NewManager(storage, logger.NewNop())

	store := m.Get(context.Background(), "s1")
	state := store.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.TotalItems)
	assert.Equal(t, 10.0, state.TotalAmount)

	// Second Get returns the same store without another read.
	again := m.Get(context.Background(), "s1")
	assert.Same(t, store, again)
	assert.Equal(t, 1, storage.loads)
}

func TestManager_UnreadableCartStartsEmpty(t *testing.T) {
	storage := newFakeStorage()
	storage.loadErr = errors.New("malformed cart payload")

	m := NewManager(storage, logger.NewNop())
	store := m.Get(context.Background(), "s1")

	assert.Empty(t, store.State().Items)
}

func TestManager_PersistsOnMutation(t *testing.T) {
	storage := newFakeStorage()
	m := NewManager(storage, logger.NewNop())

	store := m.Get(context.Background(), "s1")
	store.Add(Product{ID: "7", Name: "Cable HDMI", Price: 10, Stock: 5})

	require.Eventually(t, func() bool {
		items := storage.saved("s1")
		return len(items) == 1 && items[0].Quantity == 1
	}, time.Second, 5*time.Millisecond)
}

func TestManager_HydrationDoesNotEchoToStorage(t *testing.T) {
	storage := newFakeStorage()
	storage.data["s1"] = []Item{{ID: "1", Name: "Mouse", Price: 5, Quantity: 1, Stock: 9}}

	m := NewManager(storage, logger.NewNop())
	m.Get(context.Background(), "s1")

	assert.Equal(t, 0, storage.saveCount())
}

func TestManager_VisibilityIsNotPersisted(t *testing.T) {
	storage := newFakeStorage()
	m := NewManager(storage, logger.NewNop())

	store := m.Get(context.Background(), "s1")
	store.Toggle()
	store.Open()

	assert.Equal(t, 0, storage.saveCount())
}

// A failing backend must never surface into the mutation path; in-memory
// state stays authoritative for the rest of the session.
func TestManager_SaveFailureKeepsMemoryAuthoritative(t *testing.T) {
	storage := newFakeStorage()
	storage.saveErr = errors.New("quota exceeded")

	m := NewManager(storage, logger.NewNop())
	store := m.Get(context.Background(), "s1")

	store.Add(Product{ID: "7", Name: "Cable HDMI", Price: 10, Stock: 5})
	store.Add(Product{ID: "7", Name: "Cable HDMI", Price: 10, Stock: 5})

	state := store.State()
	assert.Equal(t, 2, state.TotalItems)

	require.Eventually(t, func() bool {
		return storage.saveCount() >= 1
	}, time.Second, 5*time.Millisecond)
	assert.Empty(t, storage.saved("s1"))
}

// gatedStorage holds every Save until the gate opens, so the test can pile up
// mutations behind a slow write.
type gatedStorage struct {
	gate    chan struct{}
	mu      sync.Mutex
	history [][]Item
}

func (g *gatedStorage) Load(ctx context.Context, key string) ([]Item, error) { return nil, nil }

func (g *gatedStorage) Save(ctx context.Context, key string, items []Item) error {
	<-g.gate
	g.mu.Lock()
	defer g.mu.Unlock()
	g.history = append(g.history, items)
	return nil
}

func (g *gatedStorage) writes() [][]Item {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([][]Item(nil), g.history...)
}

// A slow write of an older snapshot must never overwrite a newer one: the
// durable copy has to end at the latest in-memory state, or a restart would
// hydrate a stale cart.
func TestManager_SlowSaveCannotRevertNewerSnapshot(t *testing.T) {
	storage := &gatedStorage{gate: make(chan struct{})}
	m := NewManager(storage, logger.NewNop())
	store := m.Get(context.Background(), "s1")

	// Both mutations commit while the backend is stuck.
	store.Add(Product{ID: "7", Name: "Cable HDMI", Price: 10, Stock: 5})
	store.Add(Product{ID: "7", Name: "Cable HDMI", Price: 10, Stock: 5})
	require.Equal(t, 2, store.State().TotalItems)

	close(storage.gate)

	require.Eventually(t, func() bool {
		writes := storage.writes()
		if len(writes) == 0 {
			return false
		}
		last := writes[len(writes)-1]
		return len(last) == 1 && last[0].Quantity == 2
	}, time.Second, 5*time.Millisecond)

	// No write ever went backwards.
	writes := storage.writes()
	prev := 0
	for _, items := range writes {
		require.Len(t, items, 1)
		assert.GreaterOrEqual(t, items[0].Quantity, prev)
		prev = items[0].Quantity
	}
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	storage := newFakeStorage()
	m := NewManager(storage, logger.NewNop())

	a := m.Get(context.Background(), "a")
	b := m.Get(context.Background(), "b")

	a.Add(Product{ID: "7", Name: "Cable HDMI", Price: 10, Stock: 5})

	assert.Equal(t, 1, a.State().TotalItems)
	assert.Equal(t, 0, b.State().TotalItems)
}

func TestManager_RoundTripThroughFileStorage(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	m := NewManager(storage, logger.NewNop())
	store := m.Get(context.Background(), "sess")
	store.Add(Product{ID: "7", Name: "Cable HDMI", Price: 10, Stock: 5})
	store.Add(Product{ID: "7", Name: "Cable HDMI", Price: 10, Stock: 5})

	require.Eventually(t, func() bool {
		items, err := storage.Load(context.Background(), "sess")
		return err == nil && len(items) == 1 && items[0].Quantity == 2
	}, time.Second, 5*time.Millisecond)

	// A fresh manager (new process) hydrates the same cart.
	m2 := NewManager(storage, logger.NewNop())
	state := m2.Get(context.Background(), "sess").State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, 20.0, state.TotalAmount)
}
