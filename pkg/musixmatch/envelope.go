package musixmatch

import (
	"encoding/json"
	"fmt"
)

// StatusOK is the service-level success sentinel carried inside the envelope
// header. It is distinct from the HTTP status line: the service reports its
// own outcome in the body of every response.
const StatusOK = 200

// Envelope is the uniform wrapper every Musixmatch response uses.
type Envelope struct {
	Message Message `json:"message"`
}

// Message is the two-level header/body structure inside an envelope. Only the
// body's inner schema varies per endpoint.
type Message struct {
	Header Header          `json:"header"`
	Body   json.RawMessage `json:"body,omitempty"`
}

// Header carries the service status for the call.
type Header struct {
	StatusCode  int     `json:"status_code"`
	ExecuteTime float64 `json:"execute_time"`
	Available   int     `json:"available,omitempty"`
	Hint        string  `json:"hint,omitempty"`
}

// DecodeBody unmarshals the endpoint-specific payload into v.
func (e *Envelope) DecodeBody(v any) error {
	if len(e.Message.Body) == 0 {
		return fmt.Errorf("envelope has no body")
	}
	if err := json.Unmarshal(e.Message.Body, v); err != nil {
		return fmt.Errorf("decode envelope body: %w", err)
	}
	return nil
}
