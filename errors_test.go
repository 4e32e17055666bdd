package instream

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{EndOfInput, "EndOfInput"},
		{Underflow, "Underflow"},
		{ErrorKind(0), "ErrorKind(0)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", uint8(tt.kind), got, tt.want)
		}
	}
}

func TestErrorIs(t *testing.T) {
	eoi := &Error{Kind: EndOfInput, Stream: `"x"`, RequestedUnits: 2, AvailableUnits: 1}
	wrapped := fmt.Errorf("parse header: %w", eoi)

	if !errors.Is(wrapped, ErrEndOfInput) {
		t.Error("wrapped EndOfInput does not match ErrEndOfInput")
	}
	if errors.Is(wrapped, ErrUnderflow) {
		t.Error("EndOfInput matches ErrUnderflow")
	}
	if errors.Is(errors.New("other"), ErrEndOfInput) {
		t.Error("unrelated error matches ErrEndOfInput")
	}
}

func TestErrorContext(t *testing.T) {
	s := NewStringStream("abc", WithName("input"))
	mustExtract(t, s, 1)

	_, _, err := s.Extract(5)
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("Extract(5) error = %v, want *Error", err)
	}
	want := map[string]any{
		"objectType":     "stream",
		"object":         "input",
		"requestedUnits": 5,
		"availableUnits": 2,
	}
	if got := e.Context(); !reflect.DeepEqual(got, want) {
		t.Errorf("Context() = %v, want %v", got, want)
	}

	s = NewStringStream("abc", WithName("input"))
	if !errors.As(s.Putback(), &e) {
		t.Fatal("Putback() did not return *Error")
	}
	want = map[string]any{"objectType": "stream", "object": "input"}
	if got := e.Context(); !reflect.DeepEqual(got, want) {
		t.Errorf("Context() = %v, want %v", got, want)
	}
}
