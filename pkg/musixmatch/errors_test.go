package musixmatch

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAPIErrorFormatting(t *testing.T) {
	err := &APIError{StatusCode: 402, Message: "the usage limit has been reached", URL: "https://svc.example/track.get?apikey=k"}
	msg := err.Error()
	if !strings.Contains(msg, "402") {
		t.Fatalf("expected status code in message, got %q", msg)
	}
	if !strings.Contains(msg, "the usage limit has been reached") {
		t.Fatalf("expected resolved message, got %q", msg)
	}
	if !strings.Contains(msg, "track.get") {
		t.Fatalf("expected request URL, got %q", msg)
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("dial tcp: no route to host")
	err := &TransportError{Message: cause.Error(), URL: "https://svc.example/x", Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("expected TransportError to unwrap its cause")
	}
}

func TestMessageForStatus(t *testing.T) {
	if got := messageForStatus(Header{StatusCode: 404}); got != statusMessages[404] {
		t.Fatalf("expected table message, got %q", got)
	}
	if got := messageForStatus(Header{StatusCode: 404, Hint: "try later"}); got != "try later" {
		t.Fatalf("expected hint to win, got %q", got)
	}
	if got := messageForStatus(Header{StatusCode: 418}); got != unknownErrorMessage {
		t.Fatalf("expected fallback, got %q", got)
	}
}
