// Package catalogfile reads product catalogs from YAML or JSON files.
package catalogfile

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pantrylist/backend/internal/domain"
	"gopkg.in/yaml.v3"
)

// Load reads a catalog file. JSON files are accepted as YAML.
func Load(path string) ([]domain.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog %s: %w", path, err)
	}
	defer f.Close()

	products, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return products, nil
}

// Decode parses a sequence of products. Products without a list are placed
// in the available catalog.
func Decode(r io.Reader) ([]domain.Product, error) {
	var products []domain.Product
	if err := yaml.NewDecoder(r).Decode(&products); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode: %w", err)
	}

	for i := range products {
		if products[i].Name == "" {
			return nil, fmt.Errorf("%w: product %d has no name", domain.ErrInvalidRequest, i)
		}
		if products[i].FromList == "" {
			products[i].FromList = domain.ListAvailable
		}
		if !products[i].FromList.Valid() {
			return nil, fmt.Errorf("%w: product %q has list %q", domain.ErrInvalidList, products[i].Name, products[i].FromList)
		}
	}
	return products, nil
}

// Seed writes the products into the repository
func Seed(ctx context.Context, repo domain.ProductRepository, products []domain.Product) error {
	for i := range products {
		p := products[i]
		if err := repo.Create(ctx, &p); err != nil {
			return fmt.Errorf("seed %q: %w", p.Name, err)
		}
	}
	return nil
}
