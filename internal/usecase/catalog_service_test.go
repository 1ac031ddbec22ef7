package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pantrylist/backend/internal/domain"
	"golang.org/x/text/language"
)

// MockProductRepository is a mock implementation of domain.ProductRepository
type MockProductRepository struct {
	products    []domain.Product
	nextID      int
	listError   error
	createError error
	updateError error
}

func NewMockProductRepository(products ...domain.Product) *MockProductRepository {
	return &MockProductRepository{products: products}
}

func (m *MockProductRepository) List(ctx context.Context, list domain.ListType) ([]domain.Product, error) {
	if m.listError != nil {
		return nil, m.listError
	}
	var result []domain.Product
	for _, p := range m.products {
		if p.FromList == list {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *MockProductRepository) Get(ctx context.Context, id string) (*domain.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.createError != nil {
		return m.createError
	}
	if product.ID == "" {
		m.nextID++
		product.ID = fmt.Sprintf("gen-%d", m.nextID)
	}
	m.products = append(m.products, *product)
	return nil
}

func (m *MockProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if m.updateError != nil {
		return m.updateError
	}
	for i := range m.products {
		if m.products[i].ID == product.ID {
			m.products[i] = *product
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrProductNotFound
}

func (m *MockProductRepository) DeleteList(ctx context.Context, list domain.ListType) (int, error) {
	kept := m.products[:0]
	removed := 0
	for _, p := range m.products {
		if p.FromList == list {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	m.products = kept
	return removed, nil
}

func TestNewCatalogService(t *testing.T) {
	t.Run("uses defaults when config is empty", func(t *testing.T) {
		svc := NewCatalogService(NewMockProductRepository(), CatalogServiceConfig{})
		if svc.defaultCategory != DefaultCategory {
			t.Errorf("defaultCategory = %q, want %q", svc.defaultCategory, DefaultCategory)
		}
		if svc.sortLocale != language.Greek {
			t.Errorf("sortLocale = %v, want el", svc.sortLocale)
		}
	})

	t.Run("uses provided values", func(t *testing.T) {
		svc := NewCatalogService(NewMockProductRepository(), CatalogServiceConfig{
			DefaultCategory: "Misc",
			SortLocale:      language.English,
		})
		if svc.defaultCategory != "Misc" {
			t.Errorf("defaultCategory = %q, want Misc", svc.defaultCategory)
		}
		if svc.sortLocale != language.English {
			t.Errorf("sortLocale = %v, want en", svc.sortLocale)
		}
	})
}

func TestSaveProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("returns error for nil product", func(t *testing.T) {
		svc := NewCatalogService(NewMockProductRepository(), CatalogServiceConfig{})
		_, err := svc.SaveProduct(ctx, nil)
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("returns error for blank name", func(t *testing.T) {
		svc := NewCatalogService(NewMockProductRepository(), CatalogServiceConfig{})
		_, err := svc.SaveProduct(ctx, &domain.Product{Name: "  "})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("returns error for negative price", func(t *testing.T) {
		svc := NewCatalogService(NewMockProductRepository(), CatalogServiceConfig{})
		_, err := svc.SaveProduct(ctx, &domain.Product{Name: "Milk", Price: -1})
		if !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
	})

	t.Run("creates product with default category and list", func(t *testing.T) {
		repo := NewMockProductRepository()
		svc := NewCatalogService(repo, CatalogServiceConfig{})

		saved, err := svc.SaveProduct(ctx, &domain.Product{Name: " Milk ", Price: 1.2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ID == "" {
			t.Error("expected id to be assigned")
		}
		if saved.Name != "Milk" {
			t.Errorf("Name = %q, want Milk", saved.Name)
		}
		if saved.Category != DefaultCategory {
			t.Errorf("Category = %q, want %q", saved.Category, DefaultCategory)
		}
		if saved.FromList != domain.ListAvailable {
			t.Errorf("FromList = %q, want available", saved.FromList)
		}
		if len(repo.products) != 1 {
			t.Errorf("stored products = %d, want 1", len(repo.products))
		}
	})

	t.Run("updates existing product", func(t *testing.T) {
		repo := NewMockProductRepository(domain.Product{ID: "p1", Name: "Milk", Category: "Dairy", FromList: domain.ListAvailable})
		svc := NewCatalogService(repo, CatalogServiceConfig{})

		saved, err := svc.SaveProduct(ctx, &domain.Product{ID: "p1", Name: "Oat Milk", Category: "Dairy", Price: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Name != "Oat Milk" || repo.products[0].Name != "Oat Milk" {
			t.Errorf("product not updated: %+v", repo.products[0])
		}
	})

	t.Run("update of unknown product fails", func(t *testing.T) {
		svc := NewCatalogService(NewMockProductRepository(), CatalogServiceConfig{})
		_, err := svc.SaveProduct(ctx, &domain.Product{ID: "missing", Name: "Milk"})
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("error = %v, want ErrProductNotFound", err)
		}
	})
}

func TestSearchAvailable(t *testing.T) {
	ctx := context.Background()
	repo := NewMockProductRepository(
		domain.Product{ID: "p1", Name: "cherry", Category: "Fruits", FromList: domain.ListAvailable},
		domain.Product{ID: "p2", Name: "Γάλα", Category: "Dairy", Barcode: 5201234, FromList: domain.ListAvailable},
		domain.Product{ID: "p3", Name: "apple", Category: "Fruits", FromList: domain.ListAvailable},
		domain.Product{ID: "p4", Name: "Banana", Category: "Fruits", FromList: domain.ListAvailable},
		domain.Product{ID: "s1", Name: "Butter", Category: "Dairy", FromList: domain.ListShopping},
	)
	svc := NewCatalogService(repo, CatalogServiceConfig{SortLocale: language.English})

	names := func(products []domain.Product) []string {
		var n []string
		for _, p := range products {
			n = append(n, p.Name)
		}
		return n
	}

	tests := []struct {
		name string
		term string
		want []string
	}{
		{"empty term returns sorted catalog", "", []string{"apple", "Banana", "cherry", "Γάλα"}},
		{"whitespace term returns catalog", "   ", []string{"apple", "Banana", "cherry", "Γάλα"}},
		{"matches name ignoring accents", "γαλα", []string{"Γάλα"}},
		{"matches category", "dai", []string{"Γάλα"}},
		{"matches barcode", "5201", []string{"Γάλα"}},
		{"matches id", "p3", []string{"apple"}},
		{"matches several", "fruit", []string{"apple", "Banana", "cherry"}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.SearchAvailable(ctx, tt.term)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			gotNames := names(got)
			if len(gotNames) != len(tt.want) {
				t.Fatalf("SearchAvailable(%q) = %v, want %v", tt.term, gotNames, tt.want)
			}
			for i := range gotNames {
				if gotNames[i] != tt.want[i] {
					t.Errorf("SearchAvailable(%q)[%d] = %q, want %q", tt.term, i, gotNames[i], tt.want[i])
				}
			}
		})
	}

	t.Run("propagates store error", func(t *testing.T) {
		failing := NewMockProductRepository()
		failing.listError = errors.New("boom")
		_, err := NewCatalogService(failing, CatalogServiceConfig{}).SearchAvailable(ctx, "")
		if err == nil {
			t.Error("expected error")
		}
	})
}

func TestAddToList(t *testing.T) {
	ctx := context.Background()
	milk := domain.Product{ID: "p1", Name: "Milk", Price: 1.5, FromList: domain.ListAvailable}

	t.Run("rejects available list", func(t *testing.T) {
		svc := NewCatalogService(NewMockProductRepository(milk), CatalogServiceConfig{})
		_, err := svc.AddToList(ctx, milk, domain.ListAvailable, 1)
		if !errors.Is(err, domain.ErrInvalidList) {
			t.Errorf("error = %v, want ErrInvalidList", err)
		}
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		svc := NewCatalogService(NewMockProductRepository(milk), CatalogServiceConfig{})
		_, err := svc.AddToList(ctx, milk, domain.ListShopping, 0)
		if !errors.Is(err, domain.ErrInvalidQuantity) {
			t.Errorf("error = %v, want ErrInvalidQuantity", err)
		}
	})

	t.Run("adds a new list item", func(t *testing.T) {
		repo := NewMockProductRepository(milk)
		svc := NewCatalogService(repo, CatalogServiceConfig{})

		item, err := svc.AddToList(ctx, milk, domain.ListShopping, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.ID == milk.ID || item.ID == "" {
			t.Errorf("ID = %q, want a new id", item.ID)
		}
		if item.FromList != domain.ListShopping || item.Quantity != 2 {
			t.Errorf("item = %+v, want shopping with quantity 2", item)
		}
		if item.Category != DefaultCategory {
			t.Errorf("Category = %q, want %q", item.Category, DefaultCategory)
		}
		if len(repo.products) != 2 {
			t.Errorf("stored products = %d, want 2", len(repo.products))
		}
	})

	t.Run("increases quantity of an existing list item", func(t *testing.T) {
		listed := domain.Product{ID: "s1", Name: "Milk", Price: 1.5, FromList: domain.ListOffer, Quantity: 3}
		repo := NewMockProductRepository(milk, listed)
		svc := NewCatalogService(repo, CatalogServiceConfig{})

		item, err := svc.AddToList(ctx, listed, domain.ListOffer, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Quantity != 5 {
			t.Errorf("Quantity = %d, want 5", item.Quantity)
		}
		if len(repo.products) != 2 {
			t.Errorf("stored products = %d, want 2", len(repo.products))
		}
	})

	t.Run("add by id of unknown product", func(t *testing.T) {
		svc := NewCatalogService(NewMockProductRepository(), CatalogServiceConfig{})
		_, err := svc.AddToListByID(ctx, "nope", domain.ListShopping, 1)
		if !errors.Is(err, domain.ErrProductNotFound) {
			t.Errorf("error = %v, want ErrProductNotFound", err)
		}
	})
}

func TestListItemsAndClearList(t *testing.T) {
	ctx := context.Background()
	repo := NewMockProductRepository(
		domain.Product{ID: "a1", Name: "Milk", Price: 2, FromList: domain.ListAvailable},
		domain.Product{ID: "s1", Name: "Milk", Price: 2, Quantity: 3, FromList: domain.ListShopping},
		domain.Product{ID: "s2", Name: "Bread", Price: 1.5, FromList: domain.ListShopping},
	)
	svc := NewCatalogService(repo, CatalogServiceConfig{})

	summary, err := svc.ListItems(ctx, domain.ListShopping)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary.Items) != 2 {
		t.Errorf("items = %d, want 2", len(summary.Items))
	}
	if summary.TotalCost != 7.5 {
		t.Errorf("TotalCost = %v, want 7.5", summary.TotalCost)
	}

	if _, err := svc.ListItems(ctx, "pantry"); !errors.Is(err, domain.ErrInvalidList) {
		t.Errorf("error = %v, want ErrInvalidList", err)
	}

	removed, err := svc.ClearList(ctx, domain.ListShopping)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if len(repo.products) != 1 || repo.products[0].ID != "a1" {
		t.Errorf("remaining products = %+v, want only a1", repo.products)
	}
}

func TestVoiceSnapshot(t *testing.T) {
	repo := NewMockProductRepository(
		domain.Product{ID: "o1", Name: "Eggs", FromList: domain.ListOffer},
		domain.Product{ID: "s1", Name: "Milk", FromList: domain.ListShopping},
		domain.Product{ID: "a1", Name: "Bread", FromList: domain.ListAvailable},
		domain.Product{ID: "s1", Name: "Milk", FromList: domain.ListOffer},
	)
	svc := NewCatalogService(repo, CatalogServiceConfig{})

	got, err := svc.VoiceSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a1", "s1", "o1"}
	if len(got) != len(want) {
		t.Fatalf("snapshot = %+v, want ids %v", got, want)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("snapshot[%d] = %q, want %q", i, got[i].ID, id)
		}
	}
	if got[1].FromList != domain.ListShopping {
		t.Errorf("duplicate id kept from %q, want shopping", got[1].FromList)
	}
}

func TestTotalCost(t *testing.T) {
	tests := []struct {
		name     string
		products []domain.Product
		want     float64
	}{
		{"empty", nil, 0},
		{"unset quantity counts as one", []domain.Product{{Price: 2.5}}, 2.5},
		{"quantities multiply", []domain.Product{{Price: 2, Quantity: 3}, {Price: 1.5}}, 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalCost(tt.products); got != tt.want {
				t.Errorf("TotalCost() = %v, want %v", got, tt.want)
			}
		})
	}
}
