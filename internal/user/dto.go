// AngelaMos | 2026
// dto.go

package user

import (
	"strings"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

// CreateUserRequest has no role field, so sign-up can never grant admin.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

func (r CreateUserRequest) toUser() *User {
	return &User{
		Name:     r.Name,
		Email:    strings.TrimSpace(r.Email),
		PhotoURL: r.PhotoURL,
		Role:     RoleUser,
	}
}

const (
	OutcomeCreated = "created"
	OutcomeExists  = "exists"
)

// CreateResult is the tagged outcome of a sign-up. InsertedID is null when
// the email was already registered.
type CreateResult struct {
	Outcome      string  `json:"outcome"`
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
	Message      string  `json:"message,omitempty"`
}

func createdResult(res core.InsertResult) CreateResult {
	id := res.InsertedID
	return CreateResult{
		Outcome:      OutcomeCreated,
		Acknowledged: res.Acknowledged,
		InsertedID:   &id,
	}
}

func existsResult() CreateResult {
	return CreateResult{
		Outcome: OutcomeExists,
		Message: "already exists",
	}
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}
