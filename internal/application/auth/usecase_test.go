package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/puntoventa/minimarket-api/internal/application/auth"
	"github.com/puntoventa/minimarket-api/internal/application/dto"
	"github.com/puntoventa/minimarket-api/internal/domain"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
	"github.com/puntoventa/minimarket-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users      map[string]*entity.User
	lastAccess []int64
}

func (r *fakeUserRepo) FindByLogin(login string) (*entity.User, error) {
	return r.users[login], nil
}

func (r *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) UpdateLastAccess(id int64) error {
	r.lastAccess = append(r.lastAccess, id)
	return nil
}

type fakeLogRepo struct {
	logs []*entity.ActivityLog
}

func (r *fakeLogRepo) Create(log *entity.ActivityLog) error {
	r.logs = append(r.logs, log)
	return nil
}

var testJWTCfg = auth.JWTConfig{Secret: "secreto-de-prueba", ExpMinutes: 60, Issuer: "minimarket-api"}

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *fakeUserRepo, *fakeLogRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("clave123"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &fakeUserRepo{users: map[string]*entity.User{
		"admin": {ID: 1, Login: "admin", Name: "Administrador", Role: entity.RoleAdmin, PasswordHash: string(hash), Active: true},
		"baja":  {ID: 2, Login: "baja", Role: entity.RoleVendedor, PasswordHash: string(hash), Active: false},
	}}
	logs := &fakeLogRepo{}
	return auth.NewAuthUseCase(users, logs, testJWTCfg), users, logs
}

func TestLogin_Exitoso(t *testing.T) {
	uc, users, logs := newAuthFixture(t)

	resp, err := uc.Login(dto.LoginRequest{Email: "admin", Password: "clave123"})
	require.NoError(t, err)

	userID, login, role, err := jwt.Parse(testJWTCfg.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)
	assert.Equal(t, "admin", login)
	assert.Equal(t, entity.RoleAdmin, role)
	assert.Equal(t, "Administrador", resp.User.Name)
	assert.Equal(t, []int64{1}, users.lastAccess)
	require.Len(t, logs.logs, 1)
	assert.Equal(t, entity.ActionLogin, logs.logs[0].Action)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _, _ := newAuthFixture(t)
	_, err := uc.Login(dto.LoginRequest{Email: "nadie", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _, logs := newAuthFixture(t)
	_, err := uc.Login(dto.LoginRequest{Email: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, logs.logs)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, _, _ := newAuthFixture(t)
	_, err := uc.Login(dto.LoginRequest{Email: "baja", Password: "clave123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetProfile(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	got, err := uc.GetProfile(1)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Login)

	_, err = uc.GetProfile(99)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
