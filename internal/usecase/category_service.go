package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/pantrylist/backend/internal/domain"
)

// DefaultCategories are seeded into an empty category store
var DefaultCategories = []string{
	"Fruits",
	"Vegetables",
	"Bakery",
	"Dairy",
	"Pantry",
	"Groceries",
}

// CategoryService manages category names
type CategoryService struct {
	categories domain.CategoryRepository
	defaults   []string
}

// NewCategoryService creates a new category service. Nil or empty defaults
// fall back to DefaultCategories.
func NewCategoryService(categories domain.CategoryRepository, defaults []string) *CategoryService {
	if len(defaults) == 0 {
		defaults = DefaultCategories
	}
	return &CategoryService{
		categories: categories,
		defaults:   append([]string(nil), defaults...),
	}
}

// List returns the sorted union of the defaults and the stored categories.
// An empty store is seeded with the defaults. Store failures are logged and
// the defaults are returned.
func (s *CategoryService) List(ctx context.Context) []string {
	stored, err := s.categories.List(ctx)
	if err != nil {
		log.Printf("[CATALOG] Error fetching categories: %v", err)
		return sortedUnique(s.defaults)
	}

	if len(stored) == 0 {
		for _, name := range s.defaults {
			if err := s.categories.Create(ctx, name); err != nil {
				log.Printf("[CATALOG] Error seeding category %q: %v", name, err)
			}
		}
		return sortedUnique(s.defaults)
	}

	merged := make([]string, 0, len(s.defaults)+len(stored))
	merged = append(merged, s.defaults...)
	merged = append(merged, stored...)
	return sortedUnique(merged)
}

// Create adds a category. Existing names are left untouched and the current
// list is returned.
func (s *CategoryService) Create(ctx context.Context, name string) ([]string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: category name is required", domain.ErrInvalidRequest)
	}

	current := s.List(ctx)
	for _, existing := range current {
		if existing == trimmed {
			return current, nil
		}
	}

	if err := s.categories.Create(ctx, trimmed); err != nil {
		return nil, fmt.Errorf("create category %q: %w", trimmed, err)
	}

	return sortedUnique(append(current, trimmed)), nil
}

func sortedUnique(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		result = append(result, n)
	}
	sort.Strings(result)
	return result
}
