package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/stocktrail/inventory-api/internal/domain"
	"github.com/stocktrail/inventory-api/internal/repository"
)

type AuthUserRepoMock struct{ mock.Mock }

func (m *AuthUserRepoMock) Create(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(domain.User)
	return created, args.Error(1)
}

func (m *AuthUserRepoMock) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	found, _ := args.Get(0).(domain.User)
	return found, args.Error(1)
}

func TestAuthService_Signup_HashesPassword(t *testing.T) {
	repo := new(AuthUserRepoMock)
	svc := NewAuthService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1234")) == nil
	})).Return(domain.User{ID: 1, Email: "a@b.com", Role: domain.RoleStaff}, nil)

	created, err := svc.Signup(context.Background(), domain.User{
		Email:    "a@b.com",
		Password: "secret1234",
		Name:     "A",
		Role:     domain.RoleStaff,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(1), created.ID)
	repo.AssertExpectations(t)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1234"), bcrypt.DefaultCost)
	require.NoError(t, err)

	stored := domain.User{ID: 1, Email: "a@b.com", Password: string(hash), Role: domain.RoleAdmin}

	t.Run("correct password", func(t *testing.T) {
		repo := new(AuthUserRepoMock)
		repo.On("FindByEmail", mock.Anything, "a@b.com").Return(stored, nil)

		user, err := NewAuthService(repo).Login(context.Background(), "a@b.com", "secret1234")

		require.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(AuthUserRepoMock)
		repo.On("FindByEmail", mock.Anything, "a@b.com").Return(stored, nil)

		_, err := NewAuthService(repo).Login(context.Background(), "a@b.com", "nope")

		assert.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(AuthUserRepoMock)
		repo.On("FindByEmail", mock.Anything, "x@b.com").Return(domain.User{}, repository.ErrUserNotFound)

		_, err := NewAuthService(repo).Login(context.Background(), "x@b.com", "secret1234")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
