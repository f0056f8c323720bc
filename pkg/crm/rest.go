package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ScientiaCapital/sales-agent/pkg/llm"
)

// restClient is the shared HTTP layer under the platform adapters. Failures
// carry the same error classes the provider stack uses, so the retry and
// breaker policies apply unchanged.
type restClient struct {
	tag     string
	baseURL string
	http    *http.Client

	// authorize stamps platform-specific credentials onto the request.
	authorize func(req *http.Request)
}

func newRESTClient(tag, baseURL string, authorize func(req *http.Request)) *restClient {
	return &restClient{
		tag:       tag,
		baseURL:   baseURL,
		http:      &http.Client{Timeout: 30 * time.Second},
		authorize: authorize,
	}
}

// doJSON issues one request and decodes the JSON response into out.
// Returns the platform's remaining rate budget from the response headers,
// or -1 when absent.
func (c *restClient) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) (int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return -1, llm.NewError(c.tag, llm.ClassBadRequest, fmt.Errorf("failed to encode request: %w", err))
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return -1, llm.NewError(c.tag, llm.ClassBadRequest, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authorize != nil {
		c.authorize(req)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return -1, llm.NewError(c.tag, llm.ClassifyTransport(err), err)
	}
	defer func() { _ = resp.Body.Close() }()

	remaining := rateRemaining(resp.Header)
	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return remaining, llm.NewError(c.tag, llm.ClassifyStatus(resp.StatusCode),
			fmt.Errorf("%s %s: status %d: %s", method, path, resp.StatusCode, data))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return remaining, llm.NewError(c.tag, llm.ClassProtocol, fmt.Errorf("failed to decode response: %w", err))
		}
	}
	return remaining, nil
}

// rateRemaining reads the common rate-limit header variants.
func rateRemaining(h http.Header) int {
	for _, key := range []string{"X-RateLimit-Remaining", "X-HubSpot-RateLimit-Remaining", "RateLimit-Remaining"} {
		if v := h.Get(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
	}
	return -1
}
