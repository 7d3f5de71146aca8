package competition

import "context"

type Repository interface {
	Upsert(ctx context.Context, competitions []Competition) error
	List(ctx context.Context) ([]Competition, error)
}
