package league

import "context"

// Repository describes league lookup needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByKey(ctx context.Context, key string) (League, bool, error)
	Resolve(ctx context.Context, text string) (League, bool, error)
}
