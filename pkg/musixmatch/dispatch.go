package musixmatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"syscall"
)

// dispatch is the single request path shared by every endpoint method: merge
// the credential into the query, issue the call, and classify the outcome.
// Parameters travel in the query string for every HTTP method, including the
// one POST endpoint; that is the service's contract.
func (c *Client) dispatch(ctx context.Context, httpMethod, path string, params Params) (*Envelope, error) {
	query := c.merge(params)
	target := c.baseURL + path
	resolved := target + "?" + encodeQuery(query)

	if c.log != nil {
		c.log.Debugw("musixmatch request", "method", httpMethod, "path", path)
	}

	resp, err := c.http.Do(ctx, httpMethod, target, query)
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return nil, &TransportError{Message: connRefusedMessage, URL: resolved, Err: err}
		}
		return nil, &TransportError{Message: err.Error(), URL: resolved, Err: err}
	}

	if code := resp.StatusCode(); code < 200 || code >= 300 {
		return nil, &TransportError{
			Message: fmt.Sprintf("http status %d: %s", code, responseSnippet(resp.Body())),
			URL:     resolved,
		}
	}

	var env Envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, &TransportError{
			Message: fmt.Sprintf("decode envelope: %v", err),
			URL:     resolved,
			Err:     err,
		}
	}

	if hdr := env.Message.Header; hdr.StatusCode != StatusOK {
		return nil, &APIError{
			StatusCode: hdr.StatusCode,
			Message:    messageForStatus(hdr),
			URL:        resolved,
		}
	}

	return &env, nil
}

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
