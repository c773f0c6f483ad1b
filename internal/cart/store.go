package cart

import "sync"

// Listener observes committed mutations. Listeners run synchronously inside
// the commit, in registration order, and must not call back into the store.
type Listener func(State)

// ItemsListener observes mutations that changed the item list (not sidebar
// visibility). The persistence observer hangs off this hook.
type ItemsListener func([]Item)

// Store holds one cart and applies commands as deterministic state
// transitions. Commands never fail: out-of-range quantities are clamped and
// unknown ids are ignored. A mutex serializes commands, giving the same
// single-writer ordering a UI event loop would.
type Store struct {
	mu            sync.Mutex
	items         []Item
	isOpen        bool
	listeners     []Listener
	itemListeners []ItemsListener
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers a listener for every committed mutation.
func (s *Store) Subscribe(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// OnItemsChange registers a listener fired only when the item list mutates.
func (s *Store) OnItemsChange(fn ItemsListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itemListeners = append(s.itemListeners, fn)
}

// State returns a snapshot with totals recomputed from the item list.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Add puts one unit of the product in the cart. If the product is already a
// line item its quantity grows by one, never past the stock recorded on the
// item; at the stock ceiling the command is a silent no-op.
func (s *Store) Add(p Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == p.ID {
			if s.items[i].Quantity < s.items[i].Stock {
				s.items[i].Quantity++
			}
			s.commit(true)
			return
		}
	}

	s.items = append(s.items, Item{
		ID:              p.ID,
		Name:            p.Name,
		Price:           p.Price,
		Quantity:        1,
		Stock:           p.Stock,
		ImageURL:        p.ImageURL,
		CategoryName:    p.CategoryName,
		SubcategoryName: p.SubcategoryName,
	})
	s.commit(true)
}

// Remove deletes the line item with the given id. Unknown ids are ignored.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = removeItem(s.items, id)
	s.commit(true)
}

// SetQuantity clamps the requested quantity to [0, stock]. Zero (and anything
// below it) removes the item entirely; there is no clamp-to-one.
func (s *Store) SetQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		q := quantity
		if q < 0 {
			q = 0
		}
		if q > s.items[i].Stock {
			q = s.items[i].Stock
		}
		if q == 0 {
			s.items = removeItem(s.items, id)
		} else {
			s.items[i].Quantity = q
		}
		break
	}
	s.commit(true)
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.commit(true)
}

func (s *Store) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = true
	s.commit(false)
}

func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = false
	s.commit(false)
}

func (s *Store) Toggle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
	s.commit(false)
}

// Load replaces the item list wholesale. Used once at hydration, before any
// consumer observes the store.
func (s *Store) Load(items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]Item(nil), items...)
	s.commit(true)
}

// commit notifies listeners with a fresh snapshot. Caller holds the lock.
func (s *Store) commit(itemsChanged bool) {
	snap := s.snapshot()
	for _, fn := range s.listeners {
		fn(snap)
	}
	if itemsChanged {
		for _, fn := range s.itemListeners {
			fn(snap.Items)
		}
	}
}

func (s *Store) snapshot() State {
	items := append([]Item(nil), s.items...)
	totalItems := 0
	totalAmount := 0.0
	for _, item := range items {
		totalItems += item.Quantity
		totalAmount += item.Price * float64(item.Quantity)
	}
	return State{
		Items:       items,
		IsOpen:      s.isOpen,
		TotalItems:  totalItems,
		TotalAmount: totalAmount,
	}
}

func removeItem(items []Item, id string) []Item {
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}
