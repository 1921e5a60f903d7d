package openflights

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
)

// LookupClient queries the OpenFlights airport search API.
type LookupClient struct {
	URL    string
	Client *http.Client
}

// NewLookupClient creates a client for the search endpoint at apiURL.
func NewLookupClient(apiURL string, timeout time.Duration) *LookupClient {
	return &LookupClient{
		URL:    apiURL,
		Client: &http.Client{Timeout: timeout},
	}
}

// SearchForm returns the form posted to the search API for one IATA code.
func SearchForm(code string) url.Values {
	return url.Values{
		"action":     {"SEARCH"},
		"apid":       {""},
		"city":       {""},
		"code":       {""},
		"country":    {"ALL"},
		"db":         {"airports"},
		"dst":        {"U"},
		"elevation":  {""},
		"iata":       {code},
		"iatafilter": {"false"},
		"icao":       {""},
		"name":       {""},
		"offset":     {"0"},
		"timezone":   {""},
		"x":          {""},
		"y":          {""},
	}
}

// Lookup searches for code and returns the raw response body.
func (c *LookupClient) Lookup(ctx context.Context, code string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, strings.NewReader(SearchForm(code).Encode()))
	if err != nil {
		return nil, &LookupError{Code: code, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, &LookupError{Code: code, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LookupError{Code: code, Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &LookupError{Code: code, Status: resp.StatusCode, Err: fmt.Errorf("unexpected status")}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &LookupError{Code: code, Status: resp.StatusCode, Err: ErrEmptyBody}
	}

	return body, nil
}

// LookupResponse is the decoded search API response. Values of each airport
// may be JSON strings or numbers.
type LookupResponse struct {
	Airports []map[string]any `json:"airports"`
}

// ParseLookupResponse decodes a cached or live search response.
func ParseLookupResponse(data []byte) (*LookupResponse, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var resp LookupResponse
	if err := dec.Decode(&resp); err != nil {
		return nil, fmt.Errorf("failed to decode lookup response: %w", err)
	}
	return &resp, nil
}
