package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/storefront-service/internal/api/http"
	"github.com/spec-kit/storefront-service/internal/api/http/handlers"
	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/cache"
	"github.com/spec-kit/storefront-service/internal/catalog"
	"github.com/spec-kit/storefront-service/internal/config"
	"github.com/spec-kit/storefront-service/internal/domain"
	"github.com/spec-kit/storefront-service/internal/observability"
	"github.com/spec-kit/storefront-service/internal/persistence"
	"github.com/spec-kit/storefront-service/internal/repository"
	"github.com/spec-kit/storefront-service/internal/service"
	"github.com/spec-kit/storefront-service/internal/storage"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	f.byEmail[user.Email] = &stored
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	found := *user
	return &found, nil
}

type fakeCustomizationRepo struct {
	records []domain.Customization
}

func (f *fakeCustomizationRepo) Create(_ context.Context, c *domain.Customization) error {
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	f.records = append(f.records, *c)
	return nil
}

func (f *fakeCustomizationRepo) ListByEmail(_ context.Context, email string) ([]domain.Customization, error) {
	var result []domain.Customization
	for _, record := range f.records {
		if record.UserEmail == email {
			result = append(result, record)
		}
	}
	return result, nil
}

type fakeQuoteRepo struct {
	records []domain.Quote
}

func (f *fakeQuoteRepo) Create(_ context.Context, q *domain.Quote) error {
	q.CreatedAt = time.Now()
	f.records = append(f.records, *q)
	return nil
}

func (f *fakeQuoteRepo) ListByEmail(_ context.Context, email string) ([]domain.Quote, error) {
	var result []domain.Quote
	for _, record := range f.records {
		if record.UserEmail == email {
			result = append(result, record)
		}
	}
	return result, nil
}

var (
	_ repository.UserRepository          = (*fakeUserRepo)(nil)
	_ repository.CustomizationRepository = (*fakeCustomizationRepo)(nil)
	_ repository.QuoteRepository         = (*fakeQuoteRepo)(nil)
)

type testEnv struct {
	app   *fiber.App
	users *fakeUserRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()

	users := &fakeUserRepo{byEmail: make(map[string]*domain.User)}
	customizations := &fakeCustomizationRepo{}
	quotes := &fakeQuoteRepo{}
	listings := cache.NewListingCache(nil, time.Minute, logger)

	uploads, err := storage.NewUploadStore(t.TempDir(), "/uploads")
	require.NoError(t, err)

	authCfg := config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 24, BcryptCost: 4}
	accountService := service.NewAccountService(authCfg, users)
	customizationService := service.NewCustomizationService(customizations, listings)
	quoteService := service.NewQuoteService(quotes, listings, logger)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler("fireworks-advertising-api", "test", &persistence.Postgres{}, &persistence.Redis{}),
		Auth:           handlers.NewAuthHandler(accountService),
		Products:       handlers.NewProductsHandler(catalog.NewDefaultProvider()),
		Uploads:        handlers.NewUploadsHandler(uploads),
		Customizations: handlers.NewCustomizationsHandler(customizationService),
		Quotes:         handlers.NewQuotesHandler(quoteService),
		AuthMiddleware: auth.NewMiddleware(accountService.TokenManager()),
		UploadDir:      uploads.Dir(),
	})

	return &testEnv{app: app, users: users}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func (e *testEnv) register(t *testing.T, email, accountType string) string {
	t.Helper()
	resp, body := e.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":         email,
		"password":      "pw123",
		"business_name": "Biz",
		"phone":         "555-0001",
		"account_type":  accountType,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)
	return token
}

func errorCode(body map[string]any) string {
	errObj, _ := body["error"].(map[string]any)
	code, _ := errObj["code"].(string)
	return code
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "fireworks-advertising-api", body["service"])
}

func TestRegisterAndDuplicate(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":         "a@b.com",
		"password":      "pw123",
		"business_name": "Biz",
		"phone":         "555-0001",
		"account_type":  "regular",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "bearer", body["token_type"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", user["email"])
	assert.Equal(t, true, user["wholesale_approved"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")

	resp, body = env.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":         "a@b.com",
		"password":      "other",
		"business_name": "Biz2",
		"phone":         "555-0002",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_IDENTITY", errorCode(body))
}

func TestRegisterAcceptsShortPassword(t *testing.T) {
	env := newTestEnv(t)

	// no length floor on passwords; pw123 must register cleanly
	resp, body := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":         "short@b.com",
		"password":      "pw123",
		"business_name": "Biz",
		"phone":         "555-0001",
		"account_type":  "regular",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]any)
	assert.Equal(t, true, user["wholesale_approved"])
}

func TestRegisterWholesaleFlag(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":         "w@b.com",
		"password":      "pw123",
		"business_name": "Wholesale Biz",
		"phone":         "555-0002",
		"account_type":  "wholesale",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]any)
	assert.Equal(t, false, user["wholesale_approved"])
}

func TestLoginInvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "a@b.com", "regular")

	resp, wrongBody := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "a@b.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, unknownBody := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "ghost@b.com",
		"password": "pw123",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// same shape whether the email exists or not
	assert.Equal(t, wrongBody, unknownBody)
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	token := env.register(t, "a@b.com", "regular")

	resp, body := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "a@b.com", body["email"])

	resp, body = env.do(t, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", errorCode(body))

	// token outlives the record
	delete(env.users.byEmail, "a@b.com")
	resp, body = env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(body))
}

func TestProducts(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	products, ok := body["products"].([]any)
	require.True(t, ok)
	assert.Len(t, products, 6)

	resp, body = env.do(t, http.MethodGet, "/api/products/feather-flag-1", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Custom Feather Flag - Premium", body["name"])

	resp, body = env.do(t, http.MethodGet, "/api/products/unknown-id", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(body))
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUpload(t *testing.T) {
	env := newTestEnv(t)
	content := []byte("fake png content")

	resp, err := env.app.Test(uploadRequest(t, "x.png", content), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "x.png", body["original_filename"])
	assert.Equal(t, float64(len(content)), body["file_size"])
	assert.Contains(t, body["file_url"], "/uploads/")

	resp, err = env.app.Test(uploadRequest(t, "x.exe", []byte("MZ")), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UNSUPPORTED_TYPE", errorCode(body))
}

func TestCustomizationOwnership(t *testing.T) {
	env := newTestEnv(t)
	tokenA := env.register(t, "a@b.com", "regular")
	tokenB := env.register(t, "b@b.com", "regular")

	resp, body := env.do(t, http.MethodPost, "/api/customizations", tokenA, map[string]any{
		"product_id":    "feather-flag-1",
		"business_name": "Biz A",
		"phone_number":  "555-0001",
		"logo_url":      "/uploads/logo.png",
		"logo_position": map[string]float64{"x": 10, "y": 20},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "Customization saved successfully", body["message"])

	resp, body = env.do(t, http.MethodGet, "/api/customizations", tokenA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	owned := body["customizations"].([]any)
	require.Len(t, owned, 1)
	record := owned[0].(map[string]any)
	assert.Equal(t, "a@b.com", record["user_email"])
	assert.Equal(t, "feather-flag-1", record["product_id"])

	// user B never sees user A's records
	resp, body = env.do(t, http.MethodGet, "/api/customizations", tokenB, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["customizations"])

	resp, _ = env.do(t, http.MethodPost, "/api/customizations", "", map[string]any{
		"product_id":    "feather-flag-1",
		"business_name": "Biz",
		"phone_number":  "555-0001",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAnonymousQuoteSubmission(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/quotes", "", map[string]any{
		"user_email":         "a@b.com",
		"business_name":      "Biz",
		"product_name":       "Custom Feather Flag - Premium",
		"customization_data": map[string]any{"size": "Large (12ft)"},
		"quantity":           5,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["id"])

	// listing requires the bearer token and filters on its subject
	resp, _ = env.do(t, http.MethodGet, "/api/quotes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token := env.register(t, "a@b.com", "regular")
	resp, body = env.do(t, http.MethodGet, "/api/quotes", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	quotes := body["quotes"].([]any)
	require.Len(t, quotes, 1)
	quote := quotes[0].(map[string]any)
	assert.Equal(t, "pending", quote["status"])
	assert.Equal(t, float64(5), quote["quantity"])
}

func TestQuoteValidation(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/api/quotes", "", map[string]any{
		"user_email":    "a@b.com",
		"business_name": "Biz",
		"product_name":  "Flag",
		"quantity":      0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(body))
}

func TestQuoteAcceptsOpaqueRequesterEmail(t *testing.T) {
	env := newTestEnv(t)

	// the requester field is stored as submitted, not parsed as an address
	resp, body := env.do(t, http.MethodPost, "/api/quotes", "", map[string]any{
		"user_email":    "walk-in customer",
		"business_name": "Biz",
		"product_name":  "Flag",
		"quantity":      2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["id"])
}
