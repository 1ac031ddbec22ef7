package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/pantrylist/backend/internal/domain"
)

// ProductStore is a thread-safe in-memory product repository that keeps
// insertion order
type ProductStore struct {
	data  map[string]domain.Product
	order []string
	mutex sync.RWMutex
}

// NewProductStore creates a new in-memory product store
func NewProductStore() *ProductStore {
	return &ProductStore{
		data: make(map[string]domain.Product),
	}
}

// List returns a copy of every product in the given list, in insertion order
func (s *ProductStore) List(ctx context.Context, list domain.ListType) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	products := make([]domain.Product, 0)
	for _, id := range s.order {
		p := s.data[id]
		if p.FromList == list {
			products = append(products, p)
		}
	}
	return products, nil
}

// Get retrieves a product by id
func (s *ProductStore) Get(ctx context.Context, id string) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	p, exists := s.data[id]
	if !exists {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

// Create stores a new product, assigning a UUID when the id is empty.
// The assigned id is written back to product.
func (s *ProductStore) Create(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if product == nil {
		return domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	if _, exists := s.data[product.ID]; exists {
		return fmt.Errorf("%w: duplicate product id %s", domain.ErrInvalidRequest, product.ID)
	}

	s.data[product.ID] = *product
	s.order = append(s.order, product.ID)
	return nil
}

// Update replaces an existing product
func (s *ProductStore) Update(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if product == nil {
		return domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.data[product.ID]; !exists {
		return domain.ErrProductNotFound
	}
	s.data[product.ID] = *product
	return nil
}

// Delete removes a product by id
func (s *ProductStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.data[id]; !exists {
		return domain.ErrProductNotFound
	}
	delete(s.data, id)
	s.order = removeID(s.order, id)
	return nil
}

// DeleteList removes every product in the list and returns how many were removed
func (s *ProductStore) DeleteList(ctx context.Context, list domain.ListType) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	kept := s.order[:0]
	removed := 0
	for _, id := range s.order {
		if s.data[id].FromList == list {
			delete(s.data, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed, nil
}

// Size returns the current number of products across all lists
func (s *ProductStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}

func removeID(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
