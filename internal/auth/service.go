// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

var ErrUnknownIdentity = errors.New("unknown identity")

// UserInfo is the stored identity a token is minted from.
type UserInfo struct {
	ID    string
	Email string
	Role  string
}

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
}

type Service struct {
	tokens       *TokenManager
	userProvider UserProvider
}

func NewService(tokens *TokenManager, userProvider UserProvider) *Service {
	return &Service{
		tokens:       tokens,
		userProvider: userProvider,
	}
}

// IssueToken mints a token for a registered email. Claims come from the
// stored user record, never from the caller.
func (s *Service) IssueToken(
	ctx context.Context,
	email string,
) (*TokenResponse, error) {
	user, err := s.userProvider.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, ErrUnknownIdentity
		}
		return nil, fmt.Errorf("issue token: %w", err)
	}

	token, expiresAt, err := s.tokens.CreateAccessToken(AccessTokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
	}, nil
}
