package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/allanborges/restaurant-api/internal/application/auth"
	"github.com/allanborges/restaurant-api/internal/application/dto"
	"github.com/allanborges/restaurant-api/internal/domain"
	"github.com/allanborges/restaurant-api/internal/domain/entity"
	"github.com/allanborges/restaurant-api/pkg/jwt"
	"github.com/allanborges/restaurant-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de cuentas
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users  []*entity.UserAccount
	nextID int64
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.UserAccount) error {
	f.nextID++
	u.ID = f.nextID
	f.users = append(f.users, u)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.UserAccount, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.UserAccount, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.UserAccount, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByNIF(_ context.Context, nif string) (*entity.UserAccount, error) {
	for _, u := range f.users {
		if u.NIF != nil && *u.NIF == nif {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.UserAccount) error { return nil }

func (f *fakeUserRepo) FindAll(_ context.Context) ([]*entity.UserAccount, error) {
	return f.users, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const bootstrapSecret = "secreto-de-bootstrap"

func newAuthUC(t *testing.T, repo *fakeUserRepo) *auth.AuthUseCase {
	t.Helper()
	tokens, err := jwt.NewService("clave-de-pruebas", "restaurant-api-test", 60)
	require.NoError(t, err)
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return auth.NewAuthUseCase(repo, tokens, bootstrapSecret, log)
}

func registerRequest(username string) dto.RegisterUserRequest {
	return dto.RegisterUserRequest{
		Username: username,
		Password: "secreta123",
		Name:     "María García",
		Email:    username + "@example.com",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterPending
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterPending_CuentaDeshabilitadaEInactivada(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(t, repo)

	resp, err := uc.RegisterPending(context.Background(), registerRequest("maria"))
	require.NoError(t, err)

	assert.False(t, resp.Enabled)
	assert.NotNil(t, resp.InactivatedDate, "pendiente: inactivada desde el registro")
	assert.Equal(t, []string{entity.RoleClient}, resp.Roles)

	stored, _ := repo.FindByUsername(context.Background(), "maria")
	require.NotNil(t, stored)
	assert.True(t, stored.Pending())
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestRegisterPending_UsernameDuplicado_Conflicto(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(t, repo)

	_, err := uc.RegisterPending(context.Background(), registerRequest("maria"))
	require.NoError(t, err)

	in := registerRequest("maria")
	in.Email = "otra@example.com"
	_, err = uc.RegisterPending(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrUsernameExists)
}

func TestRegisterPending_EmailDuplicado_Conflicto(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(t, repo)

	_, err := uc.RegisterPending(context.Background(), registerRequest("maria"))
	require.NoError(t, err)

	in := registerRequest("pedro")
	in.Email = "maria@example.com"
	_, err = uc.RegisterPending(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}

func TestRegisterPending_NIFDuplicado_Conflicto(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(t, repo)

	in := registerRequest("maria")
	in.NIF = "123456789"
	_, err := uc.RegisterPending(context.Background(), in)
	require.NoError(t, err)

	in2 := registerRequest("pedro")
	in2.NIF = "123456789"
	_, err = uc.RegisterPending(context.Background(), in2)
	assert.ErrorIs(t, err, domain.ErrNIFExists)
}

func TestRegisterPending_DireccionesConPrincipalAutomatica(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(t, repo)

	in := registerRequest("maria")
	in.Addresses = []dto.AddressDTO{
		{StreetName: "Rua A", PostalCode: "1000-001", District: "Lisboa", Municipality: "Lisboa"},
		{StreetName: "Rua B", PostalCode: "1000-002", District: "Lisboa", Municipality: "Lisboa"},
	}
	resp, err := uc.RegisterPending(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, resp.Addresses, 2)
	assert.True(t, resp.Addresses[0].Primary, "sin principal marcada se promueve la primera")
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterAdmin_SecretoCorrecto_CuentaActiva(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(t, repo)

	resp, err := uc.RegisterAdmin(context.Background(), registerRequest("root"), bootstrapSecret)
	require.NoError(t, err)

	assert.True(t, resp.Enabled)
	assert.Nil(t, resp.InactivatedDate)
	assert.Equal(t, []string{entity.RoleAdmin}, resp.Roles)
}

func TestRegisterAdmin_SecretoIncorrecto_Forbidden(t *testing.T) {
	uc := newAuthUC(t, &fakeUserRepo{})

	_, err := uc.RegisterAdmin(context.Background(), registerRequest("root"), "otro-secreto")
	assert.ErrorIs(t, err, domain.ErrInvalidAdminSecret)
}

func TestRegisterAdmin_SecretoVacio_Forbidden(t *testing.T) {
	uc := newAuthUC(t, &fakeUserRepo{})

	_, err := uc.RegisterAdmin(context.Background(), registerRequest("root"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidAdminSecret)
}

func TestRegisterAdmin_SecretoNoConfigurado_Forbidden(t *testing.T) {
	tokens, err := jwt.NewService("clave-de-pruebas", "restaurant-api-test", 60)
	require.NoError(t, err)
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := auth.NewAuthUseCase(&fakeUserRepo{}, tokens, "", log)

	// con el secreto sin configurar, ni siquiera el secreto vacío coincide
	_, err = uc.RegisterAdmin(context.Background(), registerRequest("root"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidAdminSecret)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteTokenConRoles(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(t, repo)

	_, err := uc.RegisterAdmin(context.Background(), registerRequest("root"), bootstrapSecret)
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.AuthRequest{Username: "root", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	tokens, err := jwt.NewService("clave-de-pruebas", "restaurant-api-test", 60)
	require.NoError(t, err)
	assert.True(t, tokens.Validate(resp.Token))
	assert.Equal(t, []string{entity.RoleAdmin}, tokens.Roles(resp.Token))
}

func TestLogin_UsuarioInexistente_Unauthorized(t *testing.T) {
	uc := newAuthUC(t, &fakeUserRepo{})

	_, err := uc.Login(context.Background(), dto.AuthRequest{Username: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestLogin_PasswordIncorrecto_Unauthorized(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(t, repo)
	_, err := uc.RegisterAdmin(context.Background(), registerRequest("root"), bootstrapSecret)
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.AuthRequest{Username: "root", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

// Credenciales correctas pero cuenta pendiente: el chequeo de actividad es
// independiente de la verificación del password.
func TestLogin_CuentaPendiente_Forbidden(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := newAuthUC(t, repo)
	_, err := uc.RegisterPending(context.Background(), registerRequest("maria"))
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.AuthRequest{Username: "maria", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}
