package products

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps products in process memory with no durability
// across restarts. Mutating calls are serialized by a single mutex; ids are
// assigned monotonically. List returns insertion order.
type MemoryRepository struct {
	mu     sync.RWMutex
	items  map[int64]Product
	order  []int64
	nextID int64
}

// NewMemoryRepository returns an empty volatile store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[int64]Product)}
}

func (r *MemoryRepository) List(_ context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]Product, 0, len(r.order))
	for _, id := range r.order {
		list = append(list, r.items[id])
	}
	return list, nil
}

func (r *MemoryRepository) Get(_ context.Context, id int64) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryRepository) Create(_ context.Context, draft Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	draft.ID = r.nextID
	draft.CreatedAt = time.Now().UTC()
	draft.UpdatedAt = nil
	r.items[draft.ID] = draft
	r.order = append(r.order, draft.ID)
	return draft, nil
}

func (r *MemoryRepository) Update(_ context.Context, id int64, product Product) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.items[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	now := time.Now().UTC()
	product.ID = id
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = &now
	r.items[id] = product
	return product, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
