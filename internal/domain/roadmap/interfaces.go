package roadmap

import "context"

// Repository is the persistence boundary the service depends on.
// Save replaces the stored snapshot wholesale; a failed Save must leave
// the previously stored snapshot intact.
type Repository interface {
	Create(ctx context.Context, userID string, rm *Roadmap) error
	Get(ctx context.Context, userID, id string) (*Roadmap, error)
	List(ctx context.Context, userID string) ([]Summary, error)
	Delete(ctx context.Context, userID, id string) error
	Save(ctx context.Context, userID string, rm *Roadmap) error
}
