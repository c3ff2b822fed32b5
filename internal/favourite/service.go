// AngelaMos | 2026
// service.go

package favourite

import (
	"context"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]core.Document, error) {
	return s.repo.List(ctx)
}

// Create inserts unconditionally; the same biodata may be favourited more
// than once. Clients send a copy of the biodata summary with the user's
// email so lists render without a lookup.
func (s *Service) Create(
	ctx context.Context,
	doc core.Document,
) (core.InsertResult, error) {
	delete(doc, "_id")
	return s.repo.Create(ctx, doc)
}

func (s *Service) Delete(
	ctx context.Context,
	id string,
) (core.DeleteResult, error) {
	oid, err := core.ParseID(id)
	if err != nil {
		return core.DeleteResult{}, err
	}

	return s.repo.Delete(ctx, oid)
}
