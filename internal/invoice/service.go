// AngelaMos | 2026
// service.go

package invoice

import (
	"context"
	"errors"

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

func (s *Service) Create(
	ctx context.Context,
	doc core.Document,
) (core.InsertResult, error) {
	delete(doc, "_id")
	return s.repo.Create(ctx, doc)
}

// PremiumStatus reports whether the first invoice for email was granted.
// No invoice means not premium.
func (s *Service) PremiumStatus(
	ctx context.Context,
	email string,
) (bool, error) {
	inv, err := s.repo.FirstByEmail(ctx, email)
	if errors.Is(err, core.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return isGranted(inv), nil
}
