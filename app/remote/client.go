package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/joefazee/bosko/internal/logger"
	"github.com/joefazee/bosko/models"
)

const defaultTimeout = 15 * time.Second

// Client talks to the Bosko REST backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     logger.Logger
}

func NewClient(cfg *Config, log logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     log,
	}
}

// WithToken returns a copy of the client that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

func (c *Client) GetCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return out, nil
}

func (c *Client) GetServicesByCategory(ctx context.Context, categoryID string) ([]models.Service, error) {
	q := url.Values{}
	q.Set("categoryId", categoryID)

	var out []models.Service
	if err := c.doJSON(ctx, http.MethodGet, "/services?"+q.Encode(), nil, &out); err != nil {
		return nil, fmt.Errorf("get services for category %s: %w", categoryID, err)
	}
	return out, nil
}

func (c *Client) GetProvider(ctx context.Context, providerID string) (*models.Provider, error) {
	var out models.Provider
	if err := c.doJSON(ctx, http.MethodGet, "/providers/"+url.PathEscape(providerID), nil, &out); err != nil {
		return nil, fmt.Errorf("get provider %s: %w", providerID, err)
	}
	return &out, nil
}

func (c *Client) GetServiceReviews(ctx context.Context, serviceID string) ([]models.Review, error) {
	var out []models.Review
	path := fmt.Sprintf("/services/%s/reviews", url.PathEscape(serviceID))
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("get reviews for service %s: %w", serviceID, err)
	}
	return out, nil
}

// CreateReviewPayload is the body of POST /services/:id/reviews.
type CreateReviewPayload struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName,omitempty"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func (c *Client) CreateReview(ctx context.Context, serviceID string, payload CreateReviewPayload) (*models.Review, error) {
	var out models.Review
	path := fmt.Sprintf("/services/%s/reviews", url.PathEscape(serviceID))
	if err := c.doJSON(ctx, http.MethodPost, path, payload, &out); err != nil {
		return nil, fmt.Errorf("create review for service %s: %w", serviceID, err)
	}
	return &out, nil
}

func (c *Client) GetUserPurchases(ctx context.Context, userID, serviceID string) ([]models.Purchase, error) {
	q := url.Values{}
	q.Set("serviceId", serviceID)

	var out []models.Purchase
	path := fmt.Sprintf("/users/%s/purchases?%s", url.PathEscape(userID), q.Encode())
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, fmt.Errorf("get purchases for user %s: %w", userID, err)
	}
	return out, nil
}

func (c *Client) GetMyServices(ctx context.Context) ([]models.ManagedService, error) {
	var out []models.ManagedService
	if err := c.doJSON(ctx, http.MethodGet, "/me/services", nil, &out); err != nil {
		return nil, fmt.Errorf("get my services: %w", err)
	}
	return out, nil
}

func (c *Client) CreateService(ctx context.Context, input *models.ManagedServiceInput) (*models.ManagedService, error) {
	var out models.ManagedService
	if err := c.doJSON(ctx, http.MethodPost, "/me/services", input, &out); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return &out, nil
}

func (c *Client) UpdateService(ctx context.Context, id string, input *models.ManagedServiceInput) (*models.ManagedService, error) {
	var out models.ManagedService
	if err := c.doJSON(ctx, http.MethodPatch, "/me/services/"+url.PathEscape(id), input, &out); err != nil {
		return nil, fmt.Errorf("update service %s: %w", id, err)
	}
	return &out, nil
}

func (c *Client) DeleteService(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/me/services/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("delete service %s: %w", id, err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		he := newHTTPError(resp.StatusCode, respBody)
		c.logger.Warn("bosko API non-2xx response", logger.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
			"reason": he.Message,
		})
		return he
	}

	if len(respBody) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
