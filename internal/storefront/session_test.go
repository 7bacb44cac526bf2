package storefront

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"whatsorder/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	mu      sync.Mutex
	records []*OrderLog
	err     error
	block   chan struct{}
}

func (l *recordingLogger) LogOrder(ctx context.Context, order *OrderLog) error {
	if l.block != nil {
		select {
		case <-l.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, order)

	return l.err
}

func (l *recordingLogger) calls() []*OrderLog {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]*OrderLog(nil), l.records...)
}

func waitLogged(t *testing.T, sub *Submission) {
	t.Helper()
	select {
	case <-sub.Logged():
	case <-time.After(2 * time.Second):
		t.Fatal("order log did not finish")
	}
}

func TestSession_OpenCheckoutRequiresItems(t *testing.T) {
	s := NewSession(newTestStorefront(), nil, nil, WithLogger(newDiscardLogger()))

	assert.ErrorIs(t, s.OpenCheckout(), ErrEmptyCart)
	assert.Equal(t, StateBrowsing, s.State())

	_, err := s.Increment(1)
	require.NoError(t, err)
	require.NoError(t, s.OpenCheckout())
	assert.Equal(t, StateReviewing, s.State())

	s.CloseCheckout()
	assert.Equal(t, StateBrowsing, s.State())
	assert.Equal(t, 1, s.Quantity(1))
}

func TestSession_UnknownProduct(t *testing.T) {
	s := NewSession(newTestStorefront(), nil, nil)

	_, err := s.Increment(404)
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestSession_SubmitRequiresNameAndPhone(t *testing.T) {
	s := NewSession(newTestStorefront(), nil, &recordingLogger{}, WithLogger(newDiscardLogger()))
	_, _ = s.Increment(1)

	_, err := s.Submit(context.Background(), Customer{Name: "Ada"})
	assert.ErrorIs(t, err, ErrInvalidState)

	require.NoError(t, s.OpenCheckout())
	_, err = s.Submit(context.Background(), Customer{Name: "Ada", Phone: "  "})
	assert.ErrorIs(t, err, ErrCustomerDetailsRequired)
	assert.Equal(t, StateReviewing, s.State())
}

func TestSession_SubmitLogsOrderAndReturnsDeepLink(t *testing.T) {
	logger := &recordingLogger{}
	s := NewSession(newTestStorefront(), NewComposer(), logger, WithLogger(newDiscardLogger()))
	_, _ = s.SetQuantity(1, 2)
	_, _ = s.Increment(2)
	require.NoError(t, s.OpenCheckout())

	sub, err := s.Submit(context.Background(), Customer{Name: "Ada", Phone: "0803", Note: "Ikeja"})
	require.NoError(t, err)

	assert.True(t, sub.Total.Equal(decimal.NewFromInt(2500)))
	assert.True(t, strings.HasPrefix(sub.DeepLink, "https://wa.me/2348012345678?text="))
	assert.Contains(t, sub.Message, "*Total Amount: ₦2,500*")

	waitLogged(t, sub)
	calls := logger.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, int64(7), calls[0].BusinessID)
	assert.Equal(t, "Ikeja", calls[0].CustomerNote)
	assert.True(t, calls[0].TotalPrice.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, sub.ItemsSummary, calls[0].ItemsSummary)

	assert.Equal(t, StateBrowsing, s.State())
	assert.Equal(t, 0, s.Count())
}

func TestSession_SubmitDoesNotWaitForLogger(t *testing.T) {
	logger := &recordingLogger{block: make(chan struct{})}
	s := NewSession(newTestStorefront(), nil, logger, WithLogger(newDiscardLogger()))
	_, _ = s.Increment(1)
	require.NoError(t, s.OpenCheckout())

	sub, err := s.Submit(context.Background(), Customer{Name: "Ada", Phone: "0803"})
	require.NoError(t, err)
	assert.NotEmpty(t, sub.DeepLink)
	assert.Equal(t, StateSubmitting, s.State())

	_, err = s.Increment(1)
	assert.ErrorIs(t, err, ErrInvalidState)

	close(logger.block)
	waitLogged(t, sub)
	assert.Equal(t, StateBrowsing, s.State())
}

func TestSession_LoggerFailureIsSwallowed(t *testing.T) {
	logger := &recordingLogger{err: errors.New("network down")}
	s := NewSession(newTestStorefront(), nil, logger, WithLogger(newDiscardLogger()))
	_, _ = s.Increment(2)
	require.NoError(t, s.OpenCheckout())

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := s.Submit(ctx, Customer{Name: "Ada", Phone: "0803"})
	cancel()
	require.NoError(t, err)

	waitLogged(t, sub)
	assert.Len(t, logger.calls(), 1)
	assert.Equal(t, StateBrowsing, s.State())
}

type staticLoader struct {
	slug string
}

func (l staticLoader) LoadStorefront(_ context.Context, slug string) (*entity.Storefront, error) {
	if slug != l.slug {
		return nil, errors.New("not found")
	}

	return newTestStorefront(), nil
}

func TestOpen(t *testing.T) {
	s, err := Open(context.Background(), staticLoader{slug: "mama-cass-kitchen"}, "mama-cass-kitchen", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Mama Cass Kitchen", s.Storefront().Business.Name)

	_, err = Open(context.Background(), staticLoader{slug: "mama-cass-kitchen"}, "unknown", nil, nil)
	assert.Error(t, err)
}
