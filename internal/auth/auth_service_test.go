package auth

import (
	"context"
	"testing"

	autherrors "go-repartos/internal/auth/errors"
	"go-repartos/internal/rbac"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	byUsername map[string]*Employee
	byID       map[uuid.UUID]*Employee
}

func (f *fakeRepo) GetByUsername(ctx context.Context, username string) (*Employee, error) {
	if empl, ok := f.byUsername[username]; ok {
		return empl, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Employee, error) {
	if empl, ok := f.byID[id]; ok {
		return empl, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func testEmployee(t *testing.T, password string) *Employee {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &Employee{
		ID:       uuid.New(),
		Name:     "Marta",
		Username: "marta",
		Password: string(hash),
		Role:     rbac.RoleAdmin,
	}
}

func TestService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	empl := testEmployee(t, "s3cret")
	svc := NewService(&fakeRepo{byUsername: map[string]*Employee{"marta": empl}})

	pair, err := svc.Login(context.Background(), "marta", "s3cret")
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, empl.ID.String(), pair.User.ID)
	assert.Equal(t, rbac.RoleAdmin, pair.User.Role)
}

func TestService_Login_UnknownUser(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
}

func TestService_Login_WrongPassword(t *testing.T) {
	empl := testEmployee(t, "s3cret")
	svc := NewService(&fakeRepo{byUsername: map[string]*Employee{"marta": empl}})

	_, err := svc.Login(context.Background(), "marta", "not-it")
	assert.ErrorIs(t, err, autherrors.ErrWrongPassword)
}

func TestService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	empl := testEmployee(t, "s3cret")
	svc := NewService(&fakeRepo{
		byUsername: map[string]*Employee{"marta": empl},
		byID:       map[uuid.UUID]*Employee{empl.ID: empl},
	})

	pair, err := svc.Login(context.Background(), "marta", "s3cret")
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestService_RefreshToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := NewService(&fakeRepo{})
	_, err := svc.RefreshToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}
