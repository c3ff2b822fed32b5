// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carterperez-dev/moments-matrimony/internal/auth"
	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// Create registers a user unless the email is already taken. Both the
// existence check and the unique index report the same "exists" outcome.
func (s *Service) Create(
	ctx context.Context,
	req CreateUserRequest,
) (CreateResult, error) {
	user := req.toUser()

	_, err := s.repo.GetByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return existsResult(), nil
	case !errors.Is(err, core.ErrNotFound):
		return CreateResult{}, fmt.Errorf("create user: %w", err)
	}

	res, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return existsResult(), nil
		}
		return CreateResult{}, err
	}

	return createdResult(res), nil
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

// PromoteToAdmin is a no-op for unknown ids; it never upserts.
func (s *Service) PromoteToAdmin(
	ctx context.Context,
	id string,
) (core.UpdateResult, error) {
	oid, err := core.ParseID(id)
	if err != nil {
		return core.UpdateResult{}, err
	}

	return s.repo.SetRole(ctx, oid, RoleAdmin)
}

// IsAdmin answers for callerEmail's own account only.
func (s *Service) IsAdmin(
	ctx context.Context,
	email, callerEmail string,
) (bool, error) {
	if callerEmail == "" || email != callerEmail {
		return false, fmt.Errorf("admin status: %w", core.ErrForbidden)
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, core.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return user.IsAdmin(), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}

	return &auth.UserInfo{
		ID:    user.ID.Hex(),
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

var _ auth.UserProvider = (*Service)(nil)
