package service

import (
	"context"
	"errors"
	"testing"

	"shopstock/internal/config"
	"shopstock/internal/dto"
	"shopstock/internal/model"
	"shopstock/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	users map[string]*model.User
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.Username] = u
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := r.users[username]
	if !ok || !u.Active {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

func authFixture(t *testing.T) (AuthService, *stubUserRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &stubUserRepo{users: map[string]*model.User{
		"cashier1": {
			ID:           uuid.New(),
			Username:     "cashier1",
			FullName:     "Cashier One",
			PasswordHash: string(hash),
			Role:         "cashier",
			Active:       true,
		},
	}}
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1, JWTRefreshHours: 2}
	return NewAuthService(repo, cfg), repo
}

func TestLogin_Success(t *testing.T) {
	svc, _ := authFixture(t)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Username: "cashier1", Password: "secret123"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "cashier", resp.User.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := authFixture(t)
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "cashier1", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := authFixture(t)
	_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefresh_RoundTrip(t *testing.T) {
	svc, _ := authFixture(t)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "cashier1", Password: "secret123"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, "cashier1", refreshed.User.Username)
}

func TestRefresh_GarbageToken(t *testing.T) {
	svc, _ := authFixture(t)
	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.Error(t, err)
}

func TestRefresh_InactiveUser(t *testing.T) {
	svc, repo := authFixture(t)

	login, err := svc.Login(context.Background(), dto.LoginRequest{Username: "cashier1", Password: "secret123"})
	require.NoError(t, err)

	repo.users["cashier1"].Active = false
	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.Error(t, err)
}
