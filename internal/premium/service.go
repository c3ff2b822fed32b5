// AngelaMos | 2026
// service.go

package premium

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

// Create stores a new request as pending regardless of any status the
// caller sent.
func (s *Service) Create(
	ctx context.Context,
	doc core.Document,
) (core.InsertResult, error) {
	delete(doc, "_id")
	delete(doc, fieldStatus)
	return s.repo.Create(ctx, doc)
}

func (s *Service) Approve(
	ctx context.Context,
	id string,
) (core.UpdateResult, error) {
	oid, err := core.ParseID(id)
	if err != nil {
		return core.UpdateResult{}, err
	}

	return s.repo.SetStatus(ctx, oid, StatusPremium)
}
