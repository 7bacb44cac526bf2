package storefront

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"whatsorder/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const defaultLogTimeout = 10 * time.Second

var (
	// ErrEmptyCart is returned when checkout is opened with nothing selected.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCustomerDetailsRequired is returned when name or phone is missing at submit.
	ErrCustomerDetailsRequired = errors.New("customer name and phone are required")
	// ErrUnknownProduct is returned for product ids absent from the catalog snapshot.
	ErrUnknownProduct = errors.New("product is not in this storefront")
	// ErrInvalidState is returned when an action is not allowed in the current state.
	ErrInvalidState = errors.New("action not allowed in current checkout state")
)

// State is the checkout state of a storefront session.
type State int

const (
	// StateBrowsing has the checkout panel closed.
	StateBrowsing State = iota
	// StateReviewing has the checkout panel open.
	StateReviewing
	// StateSubmitting has the order log call in flight.
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateReviewing:
		return "reviewing"
	case StateSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// OrderLog is the record handed to the order logger.
type OrderLog struct {
	BusinessID   int64
	CustomerNote string
	TotalPrice   decimal.Decimal
	ItemsSummary string
}

// OrderLogger records submitted carts. Its result never affects the submission.
type OrderLogger interface {
	LogOrder(ctx context.Context, order *OrderLog) error
}

// CatalogLoader fetches the public snapshot of a storefront.
type CatalogLoader interface {
	LoadStorefront(ctx context.Context, slug string) (*entity.Storefront, error)
}

// Submission is the composed order. DeepLink is the WhatsApp URL to open.
type Submission struct {
	Lines        []Line          `json:"-"`
	Total        decimal.Decimal `json:"total"`
	ItemsSummary string          `json:"items_summary"`
	Message      string          `json:"message"`
	DeepLink     string          `json:"whatsapp_url"`

	logged chan struct{}
}

// Logged is closed once the order log attempt has finished, whatever its outcome.
func (s *Submission) Logged() <-chan struct{} {
	return s.logged
}

// Session is one customer's cart over a storefront snapshot.
type Session struct {
	mu sync.Mutex

	storefront *entity.Storefront
	cart       *Cart
	state      State

	composer    *Composer
	orderLogger OrderLogger
	logger      *slog.Logger
	logTimeout  time.Duration
}

type SessionOption func(*Session)

// WithLogger sets where order log failures are reported.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLogTimeout bounds the background order log call.
func WithLogTimeout(timeout time.Duration) SessionOption {
	return func(s *Session) {
		if timeout > 0 {
			s.logTimeout = timeout
		}
	}
}

// NewSession starts browsing a storefront with an empty cart.
func NewSession(sf *entity.Storefront, composer *Composer, orderLogger OrderLogger, opts ...SessionOption) *Session {
	if composer == nil {
		composer = NewComposer()
	}

	s := &Session{
		storefront:  sf,
		cart:        NewCart(),
		state:       StateBrowsing,
		composer:    composer,
		orderLogger: orderLogger,
		logger:      slog.Default(),
		logTimeout:  defaultLogTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Open loads the snapshot for slug and starts a session over it.
func Open(ctx context.Context, loader CatalogLoader, slug string, composer *Composer, orderLogger OrderLogger, opts ...SessionOption) (*Session, error) {
	sf, err := loader.LoadStorefront(ctx, slug)
	if err != nil {
		return nil, errors.Wrapf(err, "load storefront %q", slug)
	}

	return NewSession(sf, composer, orderLogger, opts...), nil
}

// Storefront returns the snapshot the session was opened on.
func (s *Session) Storefront() *entity.Storefront {
	return s.storefront
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Session) Quantity(productID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Quantity(productID)
}

// Count returns the number of selected units.
func (s *Session) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cart.Count()
}

// Total returns the current cart total.
func (s *Session) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Total(s.cart.Lines(s.storefront.Products))
}

func (s *Session) Increment(productID int64) (int, error) {
	return s.mutate(productID, func() int { return s.cart.Increment(productID) })
}

// Decrement never takes a quantity below zero.
func (s *Session) Decrement(productID int64) (int, error) {
	return s.mutate(productID, func() int { return s.cart.Decrement(productID) })
}

func (s *Session) SetQuantity(productID int64, qty int) (int, error) {
	return s.mutate(productID, func() int { return s.cart.SetQuantity(productID, qty) })
}

func (s *Session) mutate(productID int64, apply func() int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSubmitting {
		return s.cart.Quantity(productID), ErrInvalidState
	}
	if _, ok := s.storefront.FindProduct(productID); !ok {
		return 0, ErrUnknownProduct
	}

	return apply(), nil
}

// OpenCheckout moves to Reviewing; it needs at least one selected unit.
func (s *Session) OpenCheckout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case s.state == StateSubmitting:
		return ErrInvalidState
	case s.cart.Count() == 0:
		return ErrEmptyCart
	}
	s.state = StateReviewing

	return nil
}

// CloseCheckout returns to Browsing without touching the cart.
func (s *Session) CloseCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateReviewing {
		s.state = StateBrowsing
	}
}

// Submit composes the order and hands it to the order logger in the
// background. The returned submission is usable immediately; the session goes
// back to Browsing with an empty cart once the log attempt finishes.
func (s *Session) Submit(ctx context.Context, customer Customer) (*Submission, error) {
	s.mu.Lock()

	if s.state != StateReviewing {
		s.mu.Unlock()

		return nil, ErrInvalidState
	}
	if strings.TrimSpace(customer.Name) == "" || strings.TrimSpace(customer.Phone) == "" {
		s.mu.Unlock()

		return nil, ErrCustomerDetailsRequired
	}

	lines := s.cart.Lines(s.storefront.Products)
	if len(lines) == 0 {
		s.mu.Unlock()

		return nil, ErrEmptyCart
	}

	total := Total(lines)
	business := s.storefront.Business
	msg := s.composer.Message(business.Name, customer, lines, total)
	sub := &Submission{
		Lines:        lines,
		Total:        total,
		ItemsSummary: s.composer.ItemsSummary(lines, total),
		Message:      msg,
		DeepLink:     DeepLink(business.WhatsAppNumber, msg),
		logged:       make(chan struct{}),
	}

	s.state = StateSubmitting
	s.cart.Clear()
	s.mu.Unlock()

	record := &OrderLog{
		BusinessID:   business.ID,
		CustomerNote: strings.TrimSpace(customer.Note),
		TotalPrice:   total,
		ItemsSummary: sub.ItemsSummary,
	}
	go s.logOrder(context.WithoutCancel(ctx), record, sub.logged)

	return sub, nil
}

func (s *Session) logOrder(ctx context.Context, record *OrderLog, done chan<- struct{}) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Order logger panicked", slog.Any("panic", r))
		}
		s.mu.Lock()
		s.state = StateBrowsing
		s.mu.Unlock()
		close(done)
	}()

	if s.orderLogger == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, s.logTimeout)
	defer cancel()

	if err := s.orderLogger.LogOrder(ctx, record); err != nil {
		s.logger.Warn("Order log failed, continuing with WhatsApp hand-off",
			slog.Int64("business_id", record.BusinessID),
			slog.Any("error", err),
		)
	}
}
