package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// CompanyInfo is the subset of registry data the dashboard prefills.
type CompanyInfo struct {
	Name       string `json:"nome"`
	TradeName  string `json:"fantasia"`
	Email      string `json:"email"`
	Phone      string `json:"telefone"`
	Street     string `json:"logradouro"`
	City       string `json:"municipio"`
	State      string `json:"uf"`
	PostalCode string `json:"cep"`
}

// CNPJClient queries the public company registry. Lookups are best-effort:
// any failure yields a zero value so the caller's form simply stays blank.
type CNPJClient struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewCNPJClient builds a registry client.
func NewCNPJClient(baseURL string, client *http.Client, logger *zap.Logger) *CNPJClient {
	return &CNPJClient{baseURL: strings.TrimSuffix(baseURL, "/"), client: client, logger: logger}
}

// Lookup fetches company data for a CNPJ. Non-digit characters are stripped
// before the call; a malformed document, network error or non-200 status all
// return an empty CompanyInfo.
func (c *CNPJClient) Lookup(ctx context.Context, document string) CompanyInfo {
	digits := OnlyDigits(document)
	if len(digits) != 14 {
		return CompanyInfo{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, digits), nil)
	if err != nil {
		return CompanyInfo{}
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("cnpj lookup failed", zap.Error(err))
		return CompanyInfo{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("cnpj lookup rejected", zap.Int("status", resp.StatusCode))
		return CompanyInfo{}
	}

	var info CompanyInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		c.logger.Debug("cnpj lookup decode failed", zap.Error(err))
		return CompanyInfo{}
	}
	return info
}

// OnlyDigits strips everything but 0-9 from a document or postal code.
func OnlyDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
