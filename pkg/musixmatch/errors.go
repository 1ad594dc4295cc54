package musixmatch

import "fmt"

// statusMessages maps service status codes to fallback messages, used only
// when the envelope header carries no hint.
var statusMessages = map[int]string{
	400: "the request had bad syntax or was inherently impossible to be satisfied",
	401: "authentication failed, probably because of invalid or missing API key",
	402: "the usage limit has been reached",
	403: "you are not authorized to perform this operation",
	404: "the requested resource was not found",
	405: "the requested method was not found",
	500: "something went wrong on the server side",
	503: "the service is a bit busy at the moment and the request cannot be satisfied",
}

const (
	unknownErrorMessage = "unknown error"
	connRefusedMessage  = "connection refused"
)

// APIError reports that the service understood the request but answered with
// a non-success status inside its envelope.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("musixmatch: status %d: %s (%s)", e.StatusCode, e.Message, e.URL)
}

// TransportError reports that the request could not be completed or the
// response could not be interpreted as a valid envelope.
type TransportError struct {
	Message string
	URL     string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("musixmatch: transport: %s (%s)", e.Message, e.URL)
}

func (e *TransportError) Unwrap() error { return e.Err }

// messageForStatus resolves the error message for a failed envelope header:
// the service hint when present, then the fixed table, then a generic fallback.
func messageForStatus(hdr Header) string {
	if hdr.Hint != "" {
		return hdr.Hint
	}
	if msg, ok := statusMessages[hdr.StatusCode]; ok {
		return msg
	}
	return unknownErrorMessage
}
