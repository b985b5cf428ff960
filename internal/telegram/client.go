// Package telegram is a minimal one-shot client for the Telegram Bot API.
//
// Unlike the full bot wrapper, it performs exactly one request per call and
// never raises transport errors past its own boundary: every outcome is
// normalized into a tgbotapi.APIResponse the caller can inspect uniformly.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// DefaultAPIRoot is the production Bot API origin.
const DefaultAPIRoot = "https://api.telegram.org"

// DefaultTimeout bounds a single API call.
const DefaultTimeout = 10 * time.Second

// Client issues individual Bot API method calls.
type Client struct {
	apiRoot string
	token   string
	http    *http.Client
}

// NewClient builds a client for the given bot token. Empty apiRoot selects
// the production endpoint; a nil httpClient gets the default timeout.
func NewClient(token, apiRoot string, httpClient *http.Client) *Client {
	if apiRoot == "" {
		apiRoot = DefaultAPIRoot
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{apiRoot: apiRoot, token: token, http: httpClient}
}

// Call invokes a named Bot API method. A nil params issues a GET; otherwise
// params are sent as a JSON POST body.
//
// The returned response is always usable: remote replies are decoded
// verbatim, and transport failures come back as Ok=false with ErrorCode 0
// and a description derived from the error.
func (c *Client) Call(ctx context.Context, method string, params map[string]any) tgbotapi.APIResponse {
	url := fmt.Sprintf("%s/bot%s/%s", c.apiRoot, c.token, method)

	var req *http.Request
	var err error
	if params == nil {
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	} else {
		var body []byte
		body, err = json.Marshal(params)
		if err == nil {
			req, err = http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
			if req != nil {
				req.Header.Set("Content-Type", "application/json")
			}
		}
	}
	if err != nil {
		return transportFailure(0, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Debug("Telegram API call failed", "method", method, "err", err)
		return transportFailure(0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(resp.StatusCode, err)
	}

	var apiResp tgbotapi.APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		// Not a Bot API envelope; surface the HTTP status instead.
		return tgbotapi.APIResponse{
			Ok:          false,
			ErrorCode:   resp.StatusCode,
			Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
	}
	slog.Debug("Telegram API call", "method", method, "ok", apiResp.Ok, "status", resp.StatusCode)
	return apiResp
}

func transportFailure(code int, err error) tgbotapi.APIResponse {
	return tgbotapi.APIResponse{
		Ok:          false,
		ErrorCode:   code,
		Description: err.Error(),
	}
}
