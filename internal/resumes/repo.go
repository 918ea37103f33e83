package resumes

import "context"

// Repo defines persistence operations for resume records.
type Repo interface {
	Create(ctx context.Context, rec Resume) error
	GetByID(ctx context.Context, id string) (Resume, error)
	Update(ctx context.Context, rec Resume) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit, offset int) ([]Summary, error)
	Count(ctx context.Context) (int, error)
}
