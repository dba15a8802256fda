package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allanborges/restaurant-api/internal/application/auth"
	"github.com/allanborges/restaurant-api/internal/application/usecase"
	"github.com/allanborges/restaurant-api/internal/domain/entity"
	"github.com/allanborges/restaurant-api/internal/domain/query"
	"github.com/allanborges/restaurant-api/internal/domain/repository"
	apphttp "github.com/allanborges/restaurant-api/internal/interfaces/http"
	"github.com/allanborges/restaurant-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes y armado de la app completa
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users  []*entity.UserAccount
	nextID int64
}

func (m *memUserRepo) Create(_ context.Context, u *entity.UserAccount) error {
	m.nextID++
	u.ID = m.nextID
	m.users = append(m.users, u)
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id int64) (*entity.UserAccount, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.UserAccount, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.UserAccount, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByNIF(_ context.Context, nif string) (*entity.UserAccount, error) {
	for _, u := range m.users {
		if u.NIF != nil && *u.NIF == nif {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) Update(_ context.Context, u *entity.UserAccount) error { return nil }

func (m *memUserRepo) FindAll(_ context.Context) ([]*entity.UserAccount, error) {
	return m.users, nil
}

type memDishRepo struct{ dishes []*entity.Dish }

func (m *memDishRepo) Create(_ context.Context, d *entity.Dish) error {
	d.ID = int64(len(m.dishes) + 1)
	m.dishes = append(m.dishes, d)
	return nil
}
func (m *memDishRepo) FindByID(_ context.Context, id int64) (*entity.Dish, error) {
	for _, d := range m.dishes {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}
func (m *memDishRepo) Update(_ context.Context, d *entity.Dish) error { return nil }
func (m *memDishRepo) FindAllActive(_ context.Context) ([]*entity.Dish, error) {
	return m.dishes, nil
}
func (m *memDishRepo) FindPage(_ context.Context, _ []query.Predicate, _ query.Sort, _ query.Page) ([]*entity.Dish, int64, error) {
	return m.dishes, int64(len(m.dishes)), nil
}

type memCodeRepo struct{}

func (memCodeRepo) Create(_ context.Context, c *entity.DishCode) error { return nil }
func (memCodeRepo) FindByCode(_ context.Context, _ string) (*entity.DishCode, error) {
	return nil, nil
}
func (memCodeRepo) FindByCodes(_ context.Context, _ []string) ([]*entity.DishCode, error) {
	return nil, nil
}

type passthroughTx struct {
	dishes repository.DishRepository
	codes  repository.DishCodeRepository
}

func (p passthroughTx) Run(ctx context.Context, fn func(repository.DishRepository, repository.DishCodeRepository) error) error {
	return fn(p.dishes, p.codes)
}

type noopPDF struct{}

func (noopPDF) GenerateMenuPDF(_ context.Context, _ []*entity.Dish) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

// buildFullApp monta el router real con casos de uso reales sobre fakes.
func buildFullApp(t *testing.T) (*fiber.App, *memUserRepo) {
	t.Helper()
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	tokens := tokenService(t)
	users := &memUserRepo{}
	dishes := &memDishRepo{}
	codes := memCodeRepo{}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:      auth.NewAuthUseCase(users, tokens, "secreto-bootstrap", log),
		UserAdminUC: usecase.NewUserAdminUseCase(users, true, log),
		DishUC:      usecase.NewDishUseCase(passthroughTx{dishes, codes}, dishes, codes, noopPDF{}, log),
		Tokens:      tokens,
		Accounts:    users,
		Log:         log,
	})
	return app, users
}

func postJSON(t *testing.T, app *fiber.App, path string, body any, headers map[string]string) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Registro: cuerpo de error estándar y variante de validación
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_Valido_201ConCuentaPendiente(t *testing.T) {
	app, _ := buildFullApp(t)
	resp := postJSON(t, app, "/auth/register", map[string]any{
		"username": "maria",
		"password": "secreta123",
		"name":     "María García",
		"email":    "maria@example.com",
	}, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["enabled"])
	assert.NotContains(t, body, "passwordHash", "el hash nunca sale en la respuesta")
}

func TestRegister_Invalido_400ConErroresPorCampo(t *testing.T) {
	app, _ := buildFullApp(t)
	resp := postJSON(t, app, "/auth/register", map[string]any{
		"username": "ab", // demasiado corto
		"password": "123",
		"email":    "no-es-email",
	}, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Timestamp string `json:"timestamp"`
		Status    int    `json:"status"`
		Error     string `json:"error"`
		Path      string `json:"path"`
		Errors    []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusBadRequest, body.Status)
	assert.Equal(t, "/auth/register", body.Path)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`, body.Timestamp)
	fields := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "username")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
}

func TestRegister_UsernameDuplicado_409(t *testing.T) {
	app, _ := buildFullApp(t)
	payload := map[string]any{
		"username": "maria", "password": "secreta123",
		"name": "María", "email": "maria@example.com",
	}
	resp := postJSON(t, app, "/auth/register", payload, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	payload["email"] = "otra@example.com"
	resp = postJSON(t, app, "/auth/register", payload, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de admin y login end to end
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterAdmin_YLuegoEscribeEnElCatalogo(t *testing.T) {
	app, _ := buildFullApp(t)

	resp := postJSON(t, app, "/auth/register-admin", map[string]any{
		"username": "root", "password": "secreta123",
		"name": "Root", "email": "root@example.com",
	}, map[string]string{"X-ADMIN-SECRET": "secreto-bootstrap"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = postJSON(t, app, "/auth/login", map[string]any{
		"username": "root", "password": "secreta123",
	}, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	require.NotEmpty(t, login.Token)

	resp = postJSON(t, app, "/v1/dishes", map[string]any{
		"name":        "Paella de marisco",
		"description": "Arroz con marisco fresco",
		"price":       "18.50",
		"stock":       5,
		"code":        "PRINCIPALES",
		"imageUrl":    "https://cdn.example.com/paella.jpg",
	}, map[string]string{"Authorization": "Bearer " + login.Token})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestRegisterAdmin_SecretoIncorrecto_403(t *testing.T) {
	app, _ := buildFullApp(t)
	resp := postJSON(t, app, "/auth/register-admin", map[string]any{
		"username": "root", "password": "secreta123",
		"name": "Root", "email": "root@example.com",
	}, map[string]string{"X-ADMIN-SECRET": "incorrecto"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestLogin_CuentaPendiente_403(t *testing.T) {
	app, _ := buildFullApp(t)
	resp := postJSON(t, app, "/auth/register", map[string]any{
		"username": "maria", "password": "secreta123",
		"name": "María", "email": "maria@example.com",
	}, nil)
	resp.Body.Close()

	resp = postJSON(t, app, "/auth/login", map[string]any{
		"username": "maria", "password": "secreta123",
	}, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo: rutas públicas y política de escritura
// ──────────────────────────────────────────────────────────────────────────────

func TestDishes_LecturaPublica(t *testing.T) {
	app, _ := buildFullApp(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/dishes/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDishes_EscrituraAnonima_401(t *testing.T) {
	app, _ := buildFullApp(t)
	resp := postJSON(t, app, "/v1/dishes", map[string]any{"name": "Paella"}, nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDishesPaged_FiltroDesconocido_400(t *testing.T) {
	app, _ := buildFullApp(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/dishes/paged?nombre=paella", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDishesPaged_RespuestaDePagina(t *testing.T) {
	app, _ := buildFullApp(t)
	req := httptest.NewRequest(http.MethodGet, "/v1/dishes/paged?page=0&size=5", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Content []any `json:"content"`
		Page    int   `json:"page"`
		Size    int   `json:"size"`
		Total   int64 `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.Page)
	assert.Equal(t, 5, body.Size)
	assert.NotNil(t, body.Content)
}

// ──────────────────────────────────────────────────────────────────────────────
// Administración de cuentas: solo ADMIN
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminUsers_SinRolAdmin_Forbidden(t *testing.T) {
	app, users := buildFullApp(t)
	users.Create(context.Background(), activeAccount("pepe", entity.RoleKitchen))

	tok, err := tokenService(t).Generate("pepe", []string{entity.RoleKitchen})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/users/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminUsers_ConAdmin_ListaYAprueba(t *testing.T) {
	app, users := buildFullApp(t)
	users.Create(context.Background(), activeAccount("root", entity.RoleAdmin))

	tok, err := tokenService(t).Generate("root", []string{entity.RoleAdmin})
	require.NoError(t, err)

	// registrar una cuenta pendiente por la API
	resp := postJSON(t, app, "/auth/register", map[string]any{
		"username": "maria", "password": "secreta123",
		"name": "María", "email": "maria@example.com",
	}, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	pending, err := users.FindByUsername(context.Background(), "maria")
	require.NoError(t, err)
	require.NotNil(t, pending)

	// aprobar sin cuerpo: habilitar con defaults
	req := httptest.NewRequest(http.MethodPut,
		"/admin/users/"+strconv.FormatInt(pending.ID, 10)+"/approve", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["enabled"])
}
