// Package rhea resolves EC numbers to RHEA reaction identifiers, with
// a persistent JSON cache in front of the public REST endpoint so
// repeated builds never depend on the network.
package rhea

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://www.rhea-db.org/rest/1.0/ws/reaction/ec"
	defaultTimeout = 10 * time.Second
	defaultPace    = 100 * time.Millisecond
)

// Client queries the RHEA REST endpoint. Zero value is not usable;
// construct with NewClient. The transport is swappable for tests.
type Client struct {
	http    *http.Client
	baseURL string
	pace    time.Duration
}

// NewClient returns a client with the production endpoint and a short
// fixed timeout. A non-nil transport replaces the default one.
func NewClient(transport http.RoundTripper) *Client {
	hc := &http.Client{Timeout: defaultTimeout}
	if transport != nil {
		hc.Transport = transport
	}
	return &Client{http: hc, baseURL: defaultBaseURL, pace: defaultPace}
}

// rheaID tolerates both the numeric and string encodings the endpoint
// has served over time.
type rheaResult struct {
	RheaID json.RawMessage `json:"rheaId"`
}

type rheaResponse struct {
	Results []rheaResult `json:"results"`
}

// Lookup fetches the reaction ids for one EC number. The caller paces
// consecutive lookups; Lookup itself sleeps briefly after each request
// to stay polite to the public endpoint.
func (c *Client) Lookup(ctx context.Context, ec string) ([]string, error) {
	u := c.baseURL + "/" + url.PathEscape(ec)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("rhea: build request for %s: %w", ec, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rhea: query %s: %w", ec, err)
	}
	defer resp.Body.Close()

	if c.pace > 0 {
		defer time.Sleep(c.pace)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rhea: query %s: status %d", ec, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("rhea: read response for %s: %w", ec, err)
	}

	ids, err := parseReactionIDs(body)
	if err != nil {
		return nil, fmt.Errorf("rhea: parse response for %s: %w", ec, err)
	}
	return ids, nil
}

// parseReactionIDs accepts both response shapes the endpoint uses, an
// object with a results array and a bare array.
func parseReactionIDs(body []byte) ([]string, error) {
	var wrapped rheaResponse
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Results != nil {
		return idStrings(wrapped.Results), nil
	}
	var bare []rheaResult
	if err := json.Unmarshal(body, &bare); err != nil {
		return nil, err
	}
	return idStrings(bare), nil
}

func idStrings(results []rheaResult) []string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		if len(r.RheaID) == 0 {
			continue
		}
		var s string
		if err := json.Unmarshal(r.RheaID, &s); err == nil {
			ids = append(ids, s)
			continue
		}
		var n float64
		if err := json.Unmarshal(r.RheaID, &n); err == nil {
			ids = append(ids, strconv.FormatFloat(n, 'f', -1, 64))
		}
	}
	return ids
}
