package domain

import "context"

// ProductRepository defines persistence for products across all three lists
type ProductRepository interface {
	List(ctx context.Context, list ListType) ([]Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	Create(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
	DeleteList(ctx context.Context, list ListType) (int, error)
}

// CategoryRepository defines persistence for category names
type CategoryRepository interface {
	List(ctx context.Context) ([]string, error)
	Create(ctx context.Context, name string) error
}
