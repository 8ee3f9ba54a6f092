package statuscheck

import "context"

type Repository interface {
	Create(ctx context.Context, sc *StatusCheck) error
	List(ctx context.Context, limit int) ([]*StatusCheck, error)
}
