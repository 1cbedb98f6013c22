package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/stock-ledger-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.users[email], nil
}

func newAuthUC(t *testing.T, status string) (*auth.UseCase, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreto123"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]*entity.User{
		"laura@acme.co": {
			ID:           "user-1",
			Email:        "laura@acme.co",
			Name:         "Laura",
			PasswordHash: string(hash),
			Role:         entity.RoleOperador,
			Status:       status,
		},
	}}
	secret := "test-secret"
	return auth.NewUseCase(repo, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}), secret
}

func TestLogin_EmiteTokenConClaims(t *testing.T) {
	uc, secret := newAuthUC(t, "active")

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "laura@acme.co", Password: "secreto123",
	})
	require.NoError(t, err)
	assert.Equal(t, "laura@acme.co", resp.User.Email)
	assert.Equal(t, entity.RoleOperador, resp.User.Role)

	userID, role, err := pkgjwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, entity.RoleOperador, role)
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _ := newAuthUC(t, "active")
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "laura@acme.co", Password: "otra",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthUC(t, "active")
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "nadie@acme.co", Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, _ := newAuthUC(t, "inactive")
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "laura@acme.co", Password: "secreto123",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogin_CamposVacios(t *testing.T) {
	uc, _ := newAuthUC(t, "active")
	_, err := uc.Login(context.Background(), dto.LoginRequest{Email: "laura@acme.co"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
