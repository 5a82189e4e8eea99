// Package clientapi implements the client directory port against the
// external Client API over HTTP. A 404 from the API means the CPF is not
// registered; every other failure is a communication error, kept distinct
// so callers never confuse an outage with an unknown client.
package clientapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"food/internal/core/ports"
)

const defaultTimeout = 5 * time.Second

// Client calls the external Client API. Implements ports.ClientDirectory.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client directory adapter for the given base URL,
// such as "http://clients.internal:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type clientResponse struct {
	TaxID string `json:"cpf"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// GetClientByTaxID looks up a client by CPF.
func (c *Client) GetClientByTaxID(ctx context.Context, taxID string) (*ports.ClientRecord, error) {
	url := fmt.Sprintf("%s/clients/%s", c.baseURL, taxID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, ports.NewClientDirectoryError(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ports.NewClientDirectoryError(err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ports.NewClientNotFoundError(taxID)
	default:
		return nil, ports.NewClientDirectoryError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body clientResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, ports.NewClientDirectoryError(err)
	}

	return &ports.ClientRecord{
		TaxID: body.TaxID,
		Name:  body.Name,
		Email: body.Email,
	}, nil
}
