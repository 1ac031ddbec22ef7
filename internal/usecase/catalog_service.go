package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/pantrylist/backend/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultCategory is assigned to products saved without a category
const DefaultCategory = "Groceries"

// CatalogServiceConfig holds configuration for the catalog service
type CatalogServiceConfig struct {
	DefaultCategory    string
	SortLocale         language.Tag
	EnableDebugLogging bool
}

// CatalogService manages the product catalog and the shopping/offer lists
type CatalogService struct {
	products           domain.ProductRepository
	defaultCategory    string
	sortLocale         language.Tag
	enableDebugLogging bool
}

// NewCatalogService creates a new catalog service with the given repository
func NewCatalogService(products domain.ProductRepository, config CatalogServiceConfig) *CatalogService {
	defaultCategory := strings.TrimSpace(config.DefaultCategory)
	if defaultCategory == "" {
		defaultCategory = DefaultCategory
	}

	sortLocale := config.SortLocale
	if sortLocale == language.Und {
		sortLocale = language.Greek
	}

	return &CatalogService{
		products:           products,
		defaultCategory:    defaultCategory,
		sortLocale:         sortLocale,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// SaveProduct creates the product when it has no id, otherwise updates it.
// A blank category is replaced with the default category.
func (s *CatalogService) SaveProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil || strings.TrimSpace(product.Name) == "" {
		return nil, domain.ErrInvalidRequest
	}
	if product.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrInvalidRequest)
	}
	if product.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	saved := *product
	saved.Name = strings.TrimSpace(saved.Name)
	if strings.TrimSpace(saved.Category) == "" {
		saved.Category = s.defaultCategory
	}
	if saved.FromList == "" {
		saved.FromList = domain.ListAvailable
	}
	if !saved.FromList.Valid() {
		return nil, domain.ErrInvalidList
	}

	if saved.ID == "" {
		if err := s.products.Create(ctx, &saved); err != nil {
			return nil, fmt.Errorf("create product: %w", err)
		}
		return &saved, nil
	}

	if err := s.products.Update(ctx, &saved); err != nil {
		return nil, fmt.Errorf("update product %s: %w", saved.ID, err)
	}
	return &saved, nil
}

// DeleteProduct removes a single product from whichever list holds it
func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidRequest
	}
	return s.products.Delete(ctx, id)
}

// GetProduct returns a product by id
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, domain.ErrInvalidRequest
	}
	return s.products.Get(ctx, id)
}

// SearchAvailable filters the available catalog by a free-text term and
// sorts the result by name using the configured collation.
// A term that normalizes to empty returns the whole catalog.
func (s *CatalogService) SearchAvailable(ctx context.Context, term string) ([]domain.Product, error) {
	available, err := s.products.List(ctx, domain.ListAvailable)
	if err != nil {
		return nil, fmt.Errorf("list available products: %w", err)
	}

	normalizedTerm := NormalizeString(term)
	filtered := available
	if normalizedTerm != "" {
		filtered = make([]domain.Product, 0, len(available))
		for _, p := range available {
			if productMatchesTerm(p, normalizedTerm) {
				filtered = append(filtered, p)
			}
		}
	}

	s.sortByName(filtered)

	if s.enableDebugLogging {
		log.Printf("[CATALOG] Search %q: %d of %d products", term, len(filtered), len(available))
	}

	return filtered, nil
}

// productMatchesTerm checks name, category, id and barcode for the normalized term
func productMatchesTerm(p domain.Product, normalizedTerm string) bool {
	fields := []string{
		NormalizeString(p.Name),
		NormalizeString(p.Category),
		NormalizeString(p.ID),
	}
	if p.Barcode != 0 {
		fields = append(fields, strconv.FormatInt(p.Barcode, 10))
	}

	for _, f := range fields {
		if strings.Contains(f, normalizedTerm) {
			return true
		}
	}
	return false
}

// sortByName sorts in place. Collators are not safe for concurrent use,
// so one is created per call.
func (s *CatalogService) sortByName(products []domain.Product) {
	collator := collate.New(s.sortLocale)
	sort.SliceStable(products, func(i, j int) bool {
		return collator.CompareString(products[i].Name, products[j].Name) < 0
	})
}

// AddToList puts a product on the shopping or offer list. If the product is
// already on that list its quantity is increased instead.
func (s *CatalogService) AddToList(ctx context.Context, product domain.Product, list domain.ListType, quantity int) (*domain.Product, error) {
	if !list.Orderable() {
		return nil, domain.ErrInvalidList
	}
	if quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	current, err := s.products.List(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", list, err)
	}

	for _, existing := range current {
		if existing.ID != product.ID {
			continue
		}
		existing.Quantity += quantity
		if err := s.products.Update(ctx, &existing); err != nil {
			return nil, fmt.Errorf("update quantity of %s: %w", existing.ID, err)
		}
		return &existing, nil
	}

	item := product
	item.ID = ""
	item.FromList = list
	item.Quantity = quantity
	if strings.TrimSpace(item.Category) == "" {
		item.Category = s.defaultCategory
	}

	if err := s.products.Create(ctx, &item); err != nil {
		return nil, fmt.Errorf("add to %s: %w", list, err)
	}
	return &item, nil
}

// AddToListByID looks the product up and adds it to the list
func (s *CatalogService) AddToListByID(ctx context.Context, productID string, list domain.ListType, quantity int) (*domain.Product, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.AddToList(ctx, *product, list, quantity)
}

// ListItems returns the contents of a list together with its total cost
func (s *CatalogService) ListItems(ctx context.Context, list domain.ListType) (*domain.ListSummary, error) {
	if !list.Valid() {
		return nil, domain.ErrInvalidList
	}

	items, err := s.products.List(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", list, err)
	}

	return &domain.ListSummary{
		List:      list,
		Items:     items,
		TotalCost: TotalCost(items),
	}, nil
}

// ClearList deletes every product in the list and returns how many were removed
func (s *CatalogService) ClearList(ctx context.Context, list domain.ListType) (int, error) {
	if !list.Valid() {
		return 0, domain.ErrInvalidList
	}

	removed, err := s.products.DeleteList(ctx, list)
	if err != nil {
		return 0, fmt.Errorf("clear %s: %w", list, err)
	}

	log.Printf("[CATALOG] Cleared %s list (%d products)", list, removed)
	return removed, nil
}

// VoiceSnapshot returns the deduplicated union of available, shopping and
// offer products in that order
func (s *CatalogService) VoiceSnapshot(ctx context.Context) ([]domain.Product, error) {
	var combined []domain.Product
	for _, list := range []domain.ListType{domain.ListAvailable, domain.ListShopping, domain.ListOffer} {
		products, err := s.products.List(ctx, list)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", list, err)
		}
		combined = append(combined, products...)
	}
	return DedupeProducts(combined), nil
}

// TotalCost sums price times quantity; an unset quantity counts as one
func TotalCost(products []domain.Product) float64 {
	total := 0.0
	for _, p := range products {
		quantity := p.Quantity
		if quantity == 0 {
			quantity = 1
		}
		total += p.Price * float64(quantity)
	}
	return total
}
