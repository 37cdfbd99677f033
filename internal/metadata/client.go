package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rpattn/crmql/internal/domain"
)

// Client fetches attribute metadata from the CRM's REST API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// ClientConfig holds the connection settings for the CRM API.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// DefaultClientConfig returns the default API connection settings.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL: "https://api.attio.com",
		Timeout: 15 * time.Second,
	}
}

// NewClient creates a metadata client for the CRM API.
func NewClient(cfg ClientConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// attributePayload mirrors one attribute entry in the API response.
type attributePayload struct {
	APISlug       string         `json:"api_slug"`
	Type          string         `json:"type"`
	IsMultiselect bool           `json:"is_multiselect"`
	Config        map[string]any `json:"config"`
}

type listAttributesResponse struct {
	Data []attributePayload `json:"data"`
}

// ListAttributes fetches all attributes defined on an object and maps
// them by slug.
func (c *Client) ListAttributes(ctx context.Context, resourceType string) (map[string]domain.AttributeTypeInfo, error) {
	endpoint := fmt.Sprintf("%s/v2/objects/%s/attributes", c.baseURL, url.PathEscape(resourceType))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build attribute request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attributes for %s: %w", resourceType, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("object %s: %w", resourceType, ErrAttributeNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("attribute request for %s returned status %d", resourceType, resp.StatusCode)
	}

	var payload listAttributesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode attribute response: %w", err)
	}

	attributes := make(map[string]domain.AttributeTypeInfo, len(payload.Data))
	for _, attr := range payload.Data {
		attributes[attr.APISlug] = domain.AttributeTypeInfo{
			AttioType: domain.AttioType(attr.Type),
			FieldType: attr.Type,
			IsArray:   attr.IsMultiselect,
			Metadata:  attr.Config,
		}
	}

	return attributes, nil
}

// Resolve looks up a single attribute by slug.
func (c *Client) Resolve(ctx context.Context, resourceType, slug string) (domain.AttributeTypeInfo, error) {
	attributes, err := c.ListAttributes(ctx, resourceType)
	if err != nil {
		return domain.AttributeTypeInfo{}, err
	}

	info, ok := attributes[slug]
	if !ok {
		return domain.AttributeTypeInfo{}, fmt.Errorf("%s.%s: %w", resourceType, slug, ErrAttributeNotFound)
	}

	return info, nil
}
