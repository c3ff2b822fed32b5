// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

type memoryRepo struct {
	mu        sync.Mutex
	users     []User
	inserts   int
	createErr error
}

func (m *memoryRepo) List(context.Context) ([]User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]User(nil), m.users...), nil
}

func (m *memoryRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, core.ErrNotFound
}

func (m *memoryRepo) Create(_ context.Context, u *User) (core.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return core.InsertResult{}, m.createErr
	}
	m.inserts++
	u.ID = primitive.NewObjectID()
	m.users = append(m.users, *u)
	return core.InsertResult{Acknowledged: true, InsertedID: u.ID.Hex()}, nil
}

func (m *memoryRepo) Delete(_ context.Context, id primitive.ObjectID) (core.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return core.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return core.DeleteResult{Acknowledged: true}, nil
}

func (m *memoryRepo) SetRole(_ context.Context, id primitive.ObjectID, role string) (core.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			modified := int64(0)
			if m.users[i].Role != role {
				m.users[i].Role = role
				modified = 1
			}
			return core.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
		}
	}
	return core.UpdateResult{Acknowledged: true}, nil
}

func TestCreateUserThenDuplicate(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateUserRequest{Name: "A", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeCreated, first.Outcome)
	require.NotNil(t, first.InsertedID)
	assert.NotEmpty(t, *first.InsertedID)

	second, err := svc.Create(ctx, CreateUserRequest{Name: "A again", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeExists, second.Outcome)
	assert.Equal(t, "already exists", second.Message)
	assert.Nil(t, second.InsertedID)

	assert.Equal(t, 1, repo.inserts)
	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "A", users[0].Name)
}

func TestCreateUserAlwaysRegularRole(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateUserRequest{Email: "a@x.com"})
	require.NoError(t, err)

	assert.Equal(t, RoleUser, repo.users[0].Role)
}

func TestCreateUserRaceLosesToUniqueIndex(t *testing.T) {
	repo := &memoryRepo{createErr: core.ErrDuplicateKey}
	svc := NewService(repo)

	res, err := svc.Create(context.Background(), CreateUserRequest{Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, OutcomeExists, res.Outcome)
}

func TestPromoteToAdmin(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserRequest{Email: "a@x.com"})
	require.NoError(t, err)

	res, err := svc.PromoteToAdmin(ctx, *created.InsertedID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.ModifiedCount)

	res, err = svc.PromoteToAdmin(ctx, *created.InsertedID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.MatchedCount)
	assert.EqualValues(t, 0, res.ModifiedCount)

	res, err = svc.PromoteToAdmin(ctx, primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.MatchedCount)
	assert.Len(t, repo.users, 1)

	_, err = svc.PromoteToAdmin(ctx, "bogus")
	var appErr *core.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, core.CodeInvalidID, appErr.Code)
}

func TestIsAdmin(t *testing.T) {
	repo := &memoryRepo{users: []User{
		{ID: primitive.NewObjectID(), Email: "boss@x.com", Role: RoleAdmin},
		{ID: primitive.NewObjectID(), Email: "a@x.com", Role: RoleUser},
	}}
	svc := NewService(repo)
	ctx := context.Background()

	admin, err := svc.IsAdmin(ctx, "boss@x.com", "boss@x.com")
	require.NoError(t, err)
	assert.True(t, admin)

	admin, err = svc.IsAdmin(ctx, "a@x.com", "a@x.com")
	require.NoError(t, err)
	assert.False(t, admin)

	admin, err = svc.IsAdmin(ctx, "ghost@x.com", "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, admin)

	_, err = svc.IsAdmin(ctx, "boss@x.com", "a@x.com")
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestDeleteUser(t *testing.T) {
	repo := &memoryRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateUserRequest{Email: "a@x.com"})
	require.NoError(t, err)

	res, err := svc.Delete(ctx, *created.InsertedID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.DeletedCount)

	res, err = svc.Delete(ctx, *created.InsertedID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.DeletedCount)
}

func TestGetByEmailForTokens(t *testing.T) {
	id := primitive.NewObjectID()
	svc := NewService(&memoryRepo{users: []User{{ID: id, Email: "a@x.com", Role: RoleUser}}})

	info, err := svc.GetByEmail(context.Background(), " a@x.com ")
	require.NoError(t, err)
	assert.Equal(t, id.Hex(), info.ID)
	assert.Equal(t, RoleUser, info.Role)

	_, err = svc.GetByEmail(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, core.ErrNotFound)
}
