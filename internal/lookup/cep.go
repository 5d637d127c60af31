package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Address is the subset of postal data the dashboard prefills.
type Address struct {
	Street     string `json:"logradouro"`
	District   string `json:"bairro"`
	City       string `json:"localidade"`
	State      string `json:"uf"`
	PostalCode string `json:"cep"`
}

// CEPClient queries the public postal-code registry. Same best-effort
// contract as the company lookup: failures yield a zero value.
type CEPClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewCEPClient builds a postal registry client.
func NewCEPClient(baseURL string, client *http.Client, logger *zap.Logger) *CEPClient {
	return &CEPClient{baseURL: strings.TrimSuffix(baseURL, "/"), client: client, logger: logger}
}

// Lookup fetches the address for a postal code, expecting 8 digits.
func (c *CEPClient) Lookup(ctx context.Context, cep string) Address {
	digits := OnlyDigits(cep)
	if len(digits) != 8 {
		return Address{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/json", c.baseURL, digits), nil)
	if err != nil {
		return Address{}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("cep lookup failed", zap.Error(err))
		return Address{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("cep lookup rejected", zap.Int("status", resp.StatusCode))
		return Address{}
	}

	var addr Address
	if err := json.NewDecoder(resp.Body).Decode(&addr); err != nil {
		c.logger.Debug("cep lookup decode failed", zap.Error(err))
		return Address{}
	}
	return addr
}
