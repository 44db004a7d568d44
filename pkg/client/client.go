// Package client is a typed consumer of the purchase API. A Client is
// constructed explicitly and injected wherever it is needed; there are no
// package-level connection singletons.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotFound is returned when the API answers 404 NOT_FOUND for a purchase.
var ErrNotFound = errors.New("purchase not found")

// APIError is any non-success answer from the API other than a missing
// purchase.
type APIError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Purchase mirrors the external purchase shape.
type Purchase struct {
	PurchaseID       string  `json:"purchase_id"`
	ProductName      string  `json:"product_name"`
	Quantity         float64 `json:"quantity"`
	MeasurementUnit  string  `json:"measurement_unit"`
	UnitPrice        float64 `json:"unit_price"`
	TotalPrice       float64 `json:"total_price"`
	PurchaseDate     string  `json:"purchase_date"`
	Category         *string `json:"category"`
	PurchaseLocation *string `json:"purchase_location"`
}

type PurchaseList struct {
	PurchaseList      []Purchase `json:"purchase_list"`
	TotalCurrentMonth float64    `json:"total_current_month"`
}

// PurchaseInput is the create/update request body.
type PurchaseInput struct {
	ProductName      string  `json:"product_name"`
	Quantity         float64 `json:"quantity"`
	MeasurementUnit  string  `json:"measurement_unit"`
	UnitPrice        float64 `json:"unit_price"`
	PurchaseDate     string  `json:"purchase_date"`
	Category         *string `json:"category,omitempty"`
	PurchaseLocation *string `json:"purchase_location,omitempty"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New builds a client for the API at baseURL. token may be empty when the
// server runs with the static authenticator; httpClient may be nil for a
// default with a sane timeout.
func New(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{baseURL: baseURL, token: token, httpClient: httpClient}
}

func (c *Client) List(ctx context.Context) (*PurchaseList, error) {
	var out PurchaseList
	if err := c.do(ctx, http.MethodGet, "/api/v1/internal/purchase", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Get(ctx context.Context, id string) (*Purchase, error) {
	var out Purchase
	if err := c.do(ctx, http.MethodGet, "/api/v1/internal/purchase/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Create(ctx context.Context, in *PurchaseInput) (*Purchase, error) {
	var out Purchase
	if err := c.do(ctx, http.MethodPost, "/api/v1/internal/purchase", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Update(ctx context.Context, id string, in *PurchaseInput) (*Purchase, error) {
	var out Purchase
	if err := c.do(ctx, http.MethodPut, "/api/v1/internal/purchase/"+id, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/internal/purchase/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		if env.Code == "NOT_FOUND" {
			return ErrNotFound
		}
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message, Code: env.Code}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode payload: %w", err)
		}
	}
	return nil
}
