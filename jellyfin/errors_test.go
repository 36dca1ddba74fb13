package jellyfin

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewHTTPErrorMessagePrecedence(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message field", 404, `{"message":"not found"}`, "not found"},
		{"title fallback", 400, `{"title":"Bad Request","detail":"missing id"}`, "Bad Request"},
		{"detail fallback", 400, `{"detail":"missing id"}`, "missing id"},
		{"plain body", 500, "server exploded", "server exploded"},
		{"empty body", 502, "", http.StatusText(502)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			herr := newHTTPError(tc.status, []byte(tc.body))
			if herr.Status != tc.status {
				t.Fatalf("status = %d, want %d", herr.Status, tc.status)
			}
			if herr.Message != tc.message {
				t.Fatalf("message = %q, want %q", herr.Message, tc.message)
			}
		})
	}
}

func TestNewHTTPErrorKeepsProblemDetails(t *testing.T) {
	t.Parallel()

	body := `{"type":"about:blank","title":"Unauthorized","detail":"token expired","instance":"/Users/Me"}`
	herr := newHTTPError(401, []byte(body))
	if herr.Type != "about:blank" || herr.Title != "Unauthorized" {
		t.Fatalf("unexpected problem details %+v", herr)
	}
	if herr.Detail != "token expired" || herr.Instance != "/Users/Me" {
		t.Fatalf("unexpected problem details %+v", herr)
	}
}

func TestTaxonomyIsClosed(t *testing.T) {
	t.Parallel()

	// Every failure kind satisfies the sealed Error interface.
	for _, err := range []Error{
		&NetworkError{Err: errors.New("refused")},
		&URLParseError{Err: errors.New("bad url")},
		&HTTPError{Status: 404, Message: "not found"},
		ErrAuthNotFound,
	} {
		if err.Error() == "" {
			t.Fatalf("%T has an empty message", err)
		}
	}
}

func TestErrorUnwrapExposesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	if !errors.Is(&NetworkError{Err: cause}, cause) {
		t.Fatal("NetworkError should unwrap to its cause")
	}
	if !errors.Is(&URLParseError{Err: cause}, cause) {
		t.Fatal("URLParseError should unwrap to its cause")
	}
}
