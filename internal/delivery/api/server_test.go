package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"whatsorder/config"
	apimiddleware "whatsorder/internal/delivery/api/middleware"
	"whatsorder/internal/delivery/api/router"
	"whatsorder/internal/delivery/api/router/handler"
	ctxutil "whatsorder/internal/delivery/context"
	"whatsorder/internal/domain/entity"
	"whatsorder/internal/domain/service"
	"whatsorder/internal/infra/metrics"
	"whatsorder/internal/infra/persistence"
	"whatsorder/internal/infra/persistence/memory"
	"whatsorder/internal/infra/qrcode"
	"whatsorder/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubVerifier maps bearer tokens to owners.
type stubVerifier map[string]string

func (v stubVerifier) Verify(_ context.Context, token string) (*entity.Identity, error) {
	subject, ok := v[token]
	if !ok {
		return nil, service.ErrInvalidCredential
	}

	return &entity.Identity{Subject: subject, Provider: "test"}, nil
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type testServer struct {
	t    *testing.T
	echo *echo.Echo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Metrics.Enabled = true
	cfg.Storefront.PublicBaseURL = "https://whatsorder.test"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repos := persistence.FromMemory(memory.NewStore())

	orders := impl.NewOrderService(impl.OrderServiceParams{
		OrderRepo:    repos.Orders,
		BusinessRepo: repos.Businesses,
		Config:       cfg,
		Logger:       logger,
	})

	routerParams := router.RouterParams{
		BusinessHandler: handler.NewBusinessHandler(handler.BusinessHandlerParams{
			BusinessUC: impl.NewBusinessService(impl.BusinessServiceParams{BusinessRepo: repos.Businesses, Logger: logger}),
		}),
		CategoryHandler: handler.NewCategoryHandler(handler.CategoryHandlerParams{
			CategoryUC: impl.NewCategoryService(impl.CategoryServiceParams{
				TxManager: repos.TxManager, BusinessRepo: repos.Businesses, CategoryRepo: repos.Categories, Logger: logger,
			}),
		}),
		ProductHandler: handler.NewProductHandler(handler.ProductHandlerParams{
			ProductUC: impl.NewProductService(impl.ProductServiceParams{
				TxManager: repos.TxManager, BusinessRepo: repos.Businesses, ProductRepo: repos.Products, Config: cfg, Logger: logger,
			}),
		}),
		ServiceHandler: handler.NewServiceHandler(handler.ServiceHandlerParams{
			OfferingUC: impl.NewOfferingService(impl.OfferingServiceParams{
				TxManager: repos.TxManager, BusinessRepo: repos.Businesses, ServiceRepo: repos.Services, Config: cfg, Logger: logger,
			}),
		}),
		OrderHandler: handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: orders}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{
			ProfileUC: impl.NewProfileService(repos.Profiles, logger),
		}),
		UploadHandler: handler.NewUploadHandler(handler.UploadHandlerParams{
			UploadUC: impl.NewUploadService(impl.UploadServiceParams{BusinessRepo: repos.Businesses, Config: cfg, Logger: logger}),
		}),
		StorefrontHandler: handler.NewStorefrontHandler(handler.StorefrontHandlerParams{
			StorefrontUC: impl.NewStorefrontService(impl.StorefrontServiceParams{
				BusinessRepo: repos.Businesses,
				CategoryRepo: repos.Categories,
				ProductRepo:  repos.Products,
				ServiceRepo:  repos.Services,
				Orders:       orders,
				QRService:    qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel),
				Config:       cfg,
				Logger:       logger,
			}),
		}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(stubVerifier{
			"token-ada":  "owner-ada",
			"token-bola": "owner-bola",
		}, cfg, logger),
		Config: cfg,
	}

	return &testServer{
		t: t,
		echo: newEcho(ServerParams{
			Cfg:          cfg,
			Logger:       logger,
			Metrics:      metrics.New(),
			RouterParams: routerParams,
		}),
	}
}

func (s *testServer) do(method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))

	return out
}

func TestHealth_SetsRequestID(t *testing.T) {
	srv := newTestServer(t)

	rec, env := srv.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(ctxutil.HeaderXRequestID))
	assert.Equal(t, rec.Header().Get(ctxutil.HeaderXRequestID), env.Meta.RequestID)
}

func TestOwnerRoutes_RequireCredential(t *testing.T) {
	srv := newTestServer(t)

	for _, token := range []string{"", "token-unknown"} {
		rec, env := srv.do(http.MethodGet, "/api/businesses/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	}
}

func TestAuth_CookieFallback(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.AddCookie(&http.Cookie{Name: "sb-access-token", Value: "token-ada"})
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"onboarding_completed":false`)
}

func TestStorefrontFlow(t *testing.T) {
	srv := newTestServer(t)

	rec, env := srv.do(http.MethodPost, "/api/businesses", "token-ada", map[string]any{
		"name":           "Mama Cass Kitchen",
		"whatsappNumber": "+234 801 234 5678",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	business := decode[map[string]any](t, env)
	assert.Equal(t, "mama-cass-kitchen", business["slug"])
	assert.Equal(t, "free", business["plan"])

	rec, env = srv.do(http.MethodPost, "/api/categories", "token-ada", map[string]any{"name": "Mains"})
	require.Equal(t, http.StatusCreated, rec.Code)
	category := decode[map[string]any](t, env)

	rec, env = srv.do(http.MethodPost, "/api/products", "token-ada", map[string]any{
		"name": "Jollof Rice", "price": 1500, "categoryId": category["id"],
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	product := decode[map[string]any](t, env)

	rec, env = srv.do(http.MethodGet, "/api/businesses/mama-cass-kitchen", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sf := decode[map[string]any](t, env)
	assert.Len(t, sf["products"], 1)
	assert.NotContains(t, sf["business"], "user_id")

	rec, env = srv.do(http.MethodPost, "/api/businesses/mama-cass-kitchen/checkout", "", map[string]any{
		"items":    []map[string]any{{"productId": product["id"], "quantity": 2}},
		"customer": map[string]any{"name": "Tunde", "phone": "08031234567", "note": "Gate 2"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	submission := decode[map[string]any](t, env)
	link, err := url.Parse(submission["whatsapp_url"].(string))
	require.NoError(t, err)
	assert.Equal(t, "/2348012345678", link.Path)
	assert.Contains(t, link.Query().Get("text"), "Jollof Rice")

	assert.Eventually(t, func() bool {
		_, env := srv.do(http.MethodGet, "/api/orders/me", "token-ada", nil)
		orders := decode[[]map[string]any](t, env)

		return len(orders) == 1 && orders[0]["payment_status"] == "pending"
	}, time.Second, 10*time.Millisecond)

	rec, _ = srv.do(http.MethodGet, "/api/businesses/mama-cass-kitchen/qr", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
}

func TestCrossTenantProductIs404(t *testing.T) {
	srv := newTestServer(t)

	for token, name := range map[string]string{"token-ada": "Ada Foods", "token-bola": "Bola Bakes"} {
		rec, _ := srv.do(http.MethodPost, "/api/businesses", token, map[string]any{
			"name": name, "whatsappNumber": "08012345678",
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, env := srv.do(http.MethodPost, "/api/products", "token-ada", map[string]any{"name": "Puff Puff", "price": 200})
	require.Equal(t, http.StatusCreated, rec.Code)
	product := decode[map[string]any](t, env)
	path := "/api/products/" + jsonNumber(product["id"])

	rec, env = srv.do(http.MethodDelete, path, "token-bola", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", env.Error.Code)

	rec, _ = srv.do(http.MethodDelete, path, "token-ada", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestRejections(t *testing.T) {
	srv := newTestServer(t)
	rec, _ := srv.do(http.MethodPost, "/api/businesses", "token-ada", map[string]any{
		"name": "Ada Foods", "whatsappNumber": "08012345678",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       any
		wantStatus int
		wantCode   string
	}{
		{"price as string", http.MethodPost, "/api/products", "token-ada", `{"name":"Rice","price":"1500"}`, http.StatusBadRequest, "INVALID_INPUT"},
		{"missing price", http.MethodPost, "/api/products", "token-ada", map[string]any{"name": "Rice"}, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"zero price", http.MethodPost, "/api/products", "token-ada", map[string]any{"name": "Rice", "price": 0}, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"price beyond column range", http.MethodPost, "/api/products", "token-ada", map[string]any{"name": "Rice", "price": 1e10}, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"order total beyond column range", http.MethodPost, "/api/orders", "", map[string]any{"businessId": 1, "totalPrice": 1e10, "itemsSummary": "x"}, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"bad id", http.MethodPut, "/api/products/abc", "token-ada", map[string]any{"name": "Rice", "price": 1}, http.StatusBadRequest, "INVALID_ID"},
		{"second business", http.MethodPost, "/api/businesses", "token-ada", map[string]any{"name": "Again", "whatsappNumber": "08012345678"}, http.StatusBadRequest, "BUSINESS_ALREADY_EXISTS"},
		{"slug taken", http.MethodPost, "/api/businesses", "token-bola", map[string]any{"name": "Other", "slug": "ada-foods", "whatsappNumber": "08012345678"}, http.StatusBadRequest, "SLUG_TAKEN"},
		{"reserved slug", http.MethodPost, "/api/businesses", "token-bola", map[string]any{"name": "Me", "slug": "me", "whatsappNumber": "08012345678"}, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"unknown storefront", http.MethodGet, "/api/businesses/nobody-here", "", nil, http.StatusNotFound, "BUSINESS_NOT_FOUND"},
		{"empty checkout", http.MethodPost, "/api/businesses/ada-foods/checkout", "", map[string]any{"items": []any{}}, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"order without business", http.MethodPost, "/api/orders", "", map[string]any{"totalPrice": 10, "itemsSummary": "x"}, http.StatusBadRequest, "VALIDATION_FAILED"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := srv.do(tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestLogOrder_Public(t *testing.T) {
	srv := newTestServer(t)

	rec, env := srv.do(http.MethodPost, "/api/orders", "", map[string]any{
		"businessId": 99, "totalPrice": 2500.5, "itemsSummary": "• 1x Zobo",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decode[map[string]any](t, env)
	assert.Equal(t, "pending", order["payment_status"])
	assert.InDelta(t, 2500.5, order["total_price"], 0.001)
}

func TestUpload_DisabledWithoutBucket(t *testing.T) {
	srv := newTestServer(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "logo.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer token-ada")
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "UPLOADS_DISABLED")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	srv.do(http.MethodGet, "/health", "", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `api_http_requests_total{method="GET",path="/health",status="200"} 1`)
}

func jsonNumber(v any) string {
	raw, _ := json.Marshal(v)

	return string(raw)
}
