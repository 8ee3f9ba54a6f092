package supplier

import "context"

type Repository interface {
	Create(ctx context.Context, s *Supplier) (*Supplier, error)
	Update(ctx context.Context, s *Supplier) (*Supplier, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Supplier, error)
	GetByType(ctx context.Context, supplierType string) (*Supplier, error)
	List(ctx context.Context) ([]*Supplier, error)
}
