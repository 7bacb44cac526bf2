// Package client talks to the public storefront endpoints of the Catalog API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"whatsorder/internal/domain/entity"
	"whatsorder/internal/storefront"

	"github.com/pkg/errors"
)

const defaultTimeout = 15 * time.Second

// ErrStorefrontNotFound is returned when the slug does not resolve to a business.
var ErrStorefrontNotFound = errors.New("storefront not found")

// Client implements storefront.CatalogLoader and storefront.OrderLogger over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var (
	_ storefront.CatalogLoader = (*Client)(nil)
	_ storefront.OrderLogger   = (*Client)(nil)
)

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// New creates a client for the API rooted at baseURL, e.g. https://api.whatsorder.app.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

type orderRequest struct {
	BusinessID   int64       `json:"businessId"`
	CustomerNote string      `json:"customerNote,omitempty"`
	TotalPrice   json.Number `json:"totalPrice"`
	ItemsSummary string      `json:"itemsSummary"`
}

// LoadStorefront fetches the public catalog snapshot for slug.
func (c *Client) LoadStorefront(ctx context.Context, slug string) (*entity.Storefront, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/businesses/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	var sf entity.Storefront
	status, err := c.do(req, &sf)
	if status == http.StatusNotFound {
		return nil, ErrStorefrontNotFound
	}
	if err != nil {
		return nil, err
	}

	return &sf, nil
}

// LogOrder posts the submitted cart to the public order log.
func (c *Client) LogOrder(ctx context.Context, order *storefront.OrderLog) error {
	body, err := json.Marshal(orderRequest{
		BusinessID:   order.BusinessID,
		CustomerNote: order.CustomerNote,
		TotalPrice:   json.Number(order.TotalPrice.String()),
		ItemsSummary: order.ItemsSummary,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/orders", bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	_, err = c.do(req, nil)

	return err
}

func (c *Client) do(req *http.Request, out any) (int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, errors.WithStack(err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return resp.StatusCode, errors.Wrapf(err, "decode response (status %d)", resp.StatusCode)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if env.Error != nil {
			return resp.StatusCode, errors.Errorf("api error %d %s: %s", resp.StatusCode, env.Error.Code, env.Error.Message)
		}

		return resp.StatusCode, errors.Errorf("api returned status %d", resp.StatusCode)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return resp.StatusCode, errors.Wrap(err, "decode response data")
		}
	}

	return resp.StatusCode, nil
}
