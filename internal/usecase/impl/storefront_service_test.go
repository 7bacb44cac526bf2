package impl

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"whatsorder/internal/domain/entity"
	domainerrors "whatsorder/internal/domain/errors"
	"whatsorder/internal/domain/service"
	mockService "whatsorder/internal/mocks/service"
	"whatsorder/internal/storefront"
	"whatsorder/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type storefrontServiceFixtures struct {
	memoryServices
	service usecase.StorefrontUsecase
	orders  usecase.OrderUsecase
	cache   *mockService.MockCatalogCache
	qr      *mockService.MockQRCodeService
}

func createTestStorefrontService(t *testing.T) storefrontServiceFixtures {
	cfg := newTestConfig()
	cfg.Storefront.PublicBaseURL = "https://whatsorder.test"
	mem := newMemoryServices(t, cfg)
	cache := mockService.NewMockCatalogCache(t)
	qr := mockService.NewMockQRCodeService(t)
	logger := newDiscardLogger()

	orders := NewOrderService(OrderServiceParams{
		OrderRepo:    mem.repos.Orders,
		BusinessRepo: mem.repos.Businesses,
		Config:       cfg,
		Logger:       logger,
	})

	return storefrontServiceFixtures{
		memoryServices: mem,
		service: NewStorefrontService(StorefrontServiceParams{
			BusinessRepo: mem.repos.Businesses,
			CategoryRepo: mem.repos.Categories,
			ProductRepo:  mem.repos.Products,
			ServiceRepo:  mem.repos.Services,
			Orders:       orders,
			Cache:        cache,
			QRService:    qr,
			Config:       cfg,
			Logger:       logger,
		}),
		orders: orders,
		cache:  cache,
		qr:     qr,
	}
}

// seedKitchen creates a business with Jollof Rice (1500) and Zobo (500).
func (fx storefrontServiceFixtures) seedKitchen(t *testing.T) (*entity.Business, *entity.Product, *entity.Product) {
	t.Helper()
	ctx := context.Background()

	business := fx.createBusiness(t, "owner-1", "Mama Cass Kitchen")
	jollof, err := fx.products.CreateProduct(ctx, "owner-1", &usecase.ProductInput{Name: "Jollof Rice", Price: 1500})
	require.NoError(t, err)
	zobo, err := fx.products.CreateProduct(ctx, "owner-1", &usecase.ProductInput{Name: "Zobo", Price: 500})
	require.NoError(t, err)

	return business, jollof, zobo
}

func (fx storefrontServiceFixtures) expectCacheMiss(slug string) {
	fx.cache.EXPECT().GetStorefront(mock.Anything, slug).Return(nil, service.ErrCacheMiss)
	fx.cache.EXPECT().SetStorefront(mock.Anything, slug, mock.AnythingOfType("*entity.Storefront")).Return(nil)
}

func TestStorefrontService_GetStorefront_CacheMissLoadsAndStores(t *testing.T) {
	fx := createTestStorefrontService(t)
	business, _, _ := fx.seedKitchen(t)
	fx.expectCacheMiss(business.Slug)

	sf, err := fx.service.GetStorefront(context.Background(), business.Slug)
	require.NoError(t, err)
	assert.Equal(t, "Mama Cass Kitchen", sf.Business.Name)
	require.Len(t, sf.Products, 2)
	assert.Equal(t, "Zobo", sf.Products[0].Name, "newest first")
	assert.NotNil(t, sf.Services)
	assert.NotNil(t, sf.Categories)
}

func TestStorefrontService_GetStorefront_CacheHitSkipsStore(t *testing.T) {
	fx := createTestStorefrontService(t)
	cached := &entity.Storefront{Business: entity.PublicBusiness{ID: 99, Slug: "cached-shop"}}
	fx.cache.EXPECT().GetStorefront(mock.Anything, "cached-shop").Return(cached, nil)

	sf, err := fx.service.GetStorefront(context.Background(), "cached-shop")
	require.NoError(t, err)
	assert.Same(t, cached, sf)
}

func TestStorefrontService_GetStorefront_CacheFailureFallsBack(t *testing.T) {
	fx := createTestStorefrontService(t)
	business, _, _ := fx.seedKitchen(t)
	fx.cache.EXPECT().GetStorefront(mock.Anything, business.Slug).Return(nil, errors.New("connection refused"))
	fx.cache.EXPECT().SetStorefront(mock.Anything, business.Slug, mock.Anything).Return(errors.New("connection refused"))

	sf, err := fx.service.GetStorefront(context.Background(), business.Slug)
	require.NoError(t, err)
	assert.Equal(t, business.ID, sf.Business.ID)
}

func TestStorefrontService_GetStorefront_UnknownSlug(t *testing.T) {
	fx := createTestStorefrontService(t)
	fx.cache.EXPECT().GetStorefront(mock.Anything, "ghost").Return(nil, service.ErrCacheMiss)

	_, err := fx.service.GetStorefront(context.Background(), "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)

	_, err = fx.service.GetStorefront(context.Background(), "Not A Slug")
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestStorefrontService_GetStorefrontQR(t *testing.T) {
	fx := createTestStorefrontService(t)
	business, _, _ := fx.seedKitchen(t)
	fx.expectCacheMiss(business.Slug)
	fx.qr.EXPECT().GenerateLinkQR("https://whatsorder.test/mama-cass-kitchen").Return([]byte("png"), nil)

	png, err := fx.service.GetStorefrontQR(context.Background(), business.Slug)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestStorefrontService_Checkout_ComposesAndLogs(t *testing.T) {
	fx := createTestStorefrontService(t)
	business, jollof, zobo := fx.seedKitchen(t)
	fx.expectCacheMiss(business.Slug)
	ctx := context.Background()

	sub, err := fx.service.Checkout(ctx, business.Slug, &usecase.CheckoutInput{
		Items: []usecase.CheckoutItem{
			{ProductID: jollof.ID, Quantity: 2},
			{ProductID: zobo.ID, Quantity: 1},
			{ProductID: zobo.ID, Quantity: 1},
		},
		Customer: storefront.Customer{Name: "Ada", Phone: "08030000000", Note: "12 Allen Avenue"},
	})
	require.NoError(t, err)
	assert.Equal(t, "4000", sub.Total.String())
	assert.Contains(t, sub.Message, "*New Order for Mama Cass Kitchen*")
	assert.Contains(t, sub.Message, "• 2x Jollof Rice — ₦3,000")
	assert.Contains(t, sub.Message, "• 2x Zobo — ₦1,000")
	assert.Contains(t, sub.Message, "*Total Amount: ₦4,000*")
	assert.True(t, strings.HasPrefix(sub.DeepLink, "https://wa.me/2348012345678?text="))
	assert.NotContains(t, sub.DeepLink, "+")

	parsed, err := url.Parse(sub.DeepLink)
	require.NoError(t, err)
	assert.Equal(t, sub.Message, parsed.Query().Get("text"))

	<-sub.Logged()
	orders, err := fx.orders.ListOwnOrders(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, sub.ItemsSummary, orders[0].ItemsSummary)
	assert.Equal(t, "4000.00", orders[0].TotalPrice.StringFixed(2))
	require.NotNil(t, orders[0].CustomerNote)
	assert.Equal(t, "12 Allen Avenue", *orders[0].CustomerNote)
}

func TestStorefrontService_Checkout_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		input func(jollof *entity.Product) *usecase.CheckoutInput
	}{
		{
			name: "empty cart",
			input: func(*entity.Product) *usecase.CheckoutInput {
				return &usecase.CheckoutInput{Customer: storefront.Customer{Name: "Ada", Phone: "0803"}}
			},
		},
		{
			name: "missing phone",
			input: func(jollof *entity.Product) *usecase.CheckoutInput {
				return &usecase.CheckoutInput{
					Items:    []usecase.CheckoutItem{{ProductID: jollof.ID, Quantity: 1}},
					Customer: storefront.Customer{Name: "Ada"},
				}
			},
		},
		{
			name: "unknown product",
			input: func(*entity.Product) *usecase.CheckoutInput {
				return &usecase.CheckoutInput{
					Items:    []usecase.CheckoutItem{{ProductID: 12345, Quantity: 1}},
					Customer: storefront.Customer{Name: "Ada", Phone: "0803"},
				}
			},
		},
		{
			name: "zero quantity",
			input: func(jollof *entity.Product) *usecase.CheckoutInput {
				return &usecase.CheckoutInput{
					Items:    []usecase.CheckoutItem{{ProductID: jollof.ID, Quantity: 0}},
					Customer: storefront.Customer{Name: "Ada", Phone: "0803"},
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestStorefrontService(t)
			business, jollof, _ := fx.seedKitchen(t)
			fx.expectCacheMiss(business.Slug)

			_, err := fx.service.Checkout(context.Background(), business.Slug, tt.input(jollof))
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}
