package musixmatch

import (
	"fmt"
	"net/url"
	"strings"
)

// Params holds request parameters by name. No local validation of allowed
// keys or values is performed; the remote service is authoritative.
type Params map[string]string

// ParsePairs converts "key=value" strings into Params. Each pair is split on
// the first "=" only, so a value may itself contain "=" ("q=a=b" yields
// {"q": "a=b"}). A pair without "=" or with an empty key is an error.
func ParsePairs(pairs ...string) (Params, error) {
	params := make(Params, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("parameter %q is not of the form key=value", pair)
		}
		if key == "" {
			return nil, fmt.Errorf("parameter %q has an empty key", pair)
		}
		params[key] = value
	}
	return params, nil
}

// merge copies params and adds the credential under the reserved key.
// Caller-supplied values never override the credential.
func (c *Client) merge(params Params) map[string]string {
	query := make(map[string]string, len(params)+1)
	for k, v := range params {
		query[k] = v
	}
	query[apiKeyParam] = c.apiKey
	return query
}

// encodeQuery renders query parameters in canonical (sorted) form for
// error reporting.
func encodeQuery(query map[string]string) string {
	values := make(url.Values, len(query))
	for k, v := range query {
		values.Set(k, v)
	}
	return values.Encode()
}
