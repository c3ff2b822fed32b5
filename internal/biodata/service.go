// AngelaMos | 2026
// service.go

package biodata

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

// Get returns nil without an error when no biodata has the id.
func (s *Service) Get(ctx context.Context, id string) (core.Document, error) {
	oid, err := core.ParseID(id)
	if err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, oid)
	if errors.Is(err, core.ErrNotFound) {
		return nil, nil
	}
	return b, err
}

func (s *Service) Create(
	ctx context.Context,
	doc core.Document,
) (core.InsertResult, error) {
	delete(doc, "_id")
	return s.repo.Create(ctx, doc)
}

func (s *Service) SetFavourite(
	ctx context.Context,
	id string,
) (core.UpdateResult, error) {
	oid, err := core.ParseID(id)
	if err != nil {
		return core.UpdateResult{}, err
	}

	return s.repo.SetFavourite(ctx, oid)
}

// Replace overwrites the profile fields of id from doc, inserting the record
// when it does not exist yet.
func (s *Service) Replace(
	ctx context.Context,
	id string,
	doc core.Document,
) (core.UpdateResult, error) {
	oid, err := core.ParseID(id)
	if err != nil {
		return core.UpdateResult{}, err
	}

	return s.repo.Replace(ctx, oid, doc)
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
