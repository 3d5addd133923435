// Package subscription is a read-only client for the external subscription
// plans API. Calls are single attempt; no retry or backoff.
package subscription

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

type Plan struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Interval    string    `json:"interval"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type UserSubscription struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	PlanID    string    `json:"plan_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Plan      *Plan     `json:"plans,omitempty"`
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Plans fetches the public plan catalogue.
func (c *Client) Plans(ctx context.Context) ([]Plan, error) {
	var data struct {
		Plans []Plan `json:"plans"`
	}
	if err := c.get(ctx, "/subscriptions/plans", "", &data); err != nil {
		return nil, err
	}
	return data.Plans, nil
}

// Current fetches the caller's active subscription. A nil result with a nil
// error means no active subscription, which is not a failure.
func (c *Client) Current(ctx context.Context, token string) (*UserSubscription, error) {
	var data struct {
		Subscription *UserSubscription `json:"subscription"`
	}
	if err := c.get(ctx, "/subscriptions/current", token, &data); err != nil {
		return nil, err
	}
	return data.Subscription, nil
}

func (c *Client) get(ctx context.Context, path, token string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "building subscription request")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "subscription request failed")
	}
	defer func() { _ = res.Body.Close() }()

	var env envelope
	if err = json.NewDecoder(res.Body).Decode(&env); err != nil {
		return errors.Wrap(err, "decoding subscription response")
	}
	if res.StatusCode >= http.StatusBadRequest || !env.Success {
		if env.Error != nil && *env.Error != "" {
			return errors.Errorf("subscription request failed: %s", *env.Error)
		}
		if env.Message != "" {
			return errors.Errorf("subscription request failed: %s", env.Message)
		}
		return errors.Errorf("subscription request failed: status %d", res.StatusCode)
	}
	return json.Unmarshal(env.Data, out)
}
