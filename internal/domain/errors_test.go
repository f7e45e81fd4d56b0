package domain

import (
	"errors"
	"io/fs"
	"net/http"
	"testing"
)

func TestAppErrorWrapsCause(t *testing.T) {
	err := NewNotFoundError("db.json", fs.ErrNotExist)

	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected wrapped cause to be reachable")
	}
	if err.Status != http.StatusNotFound {
		t.Fatalf("unexpected status %d", err.Status)
	}
	if got, want := err.Error(), "file: db.json not found: file does not exist"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestMissingFieldsMessage(t *testing.T) {
	err := NewMissingFieldsError([]string{KeyUser, KeyPort})
	want := "database configuration is missing the following elements: [user, port]"
	if err.Error() != want {
		t.Fatalf("got %q want %q", err.Error(), want)
	}
}

func TestConfigFromStringsCopiesValues(t *testing.T) {
	cfg := ConfigFromStrings(map[string]string{KeyUser: "a", KeyPort: "1"})
	if *cfg[KeyUser] != "a" || *cfg[KeyPort] != "1" {
		t.Fatalf("unexpected config: user=%q port=%q", *cfg[KeyUser], *cfg[KeyPort])
	}
}
