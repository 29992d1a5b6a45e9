// response.go
//
// HTTP response assertions shared by handler and integration tests.

package helpers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

// ErrorEnvelope is the uniform JSON wrapper used by every error response.
type ErrorEnvelope struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Ok        bool              `json:"ok"`
	Fields    map[string]string `json:"fields"`
	Timestamp string            `json:"timestamp"`
	URL       string            `json:"url"`
	Type      string            `json:"type"`
}

// MutationResult is the uniform JSON wrapper used by mutation responses.
type MutationResult struct {
	Message      string `json:"message"`
	Ok           bool   `json:"ok"`
	ID           string `json:"id"`
	Timestamp    string `json:"timestamp"`
	AffectedRows int64  `json:"affectedRows"`
}

// AssertStatus verifies the HTTP status code
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("Expected status %d, got %d", expected, resp.StatusCode)
	}
}

// ParseJSON decodes the response body into the target
func ParseJSON(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	defer resp.Body.Close()

	if err := json.Unmarshal(body, target); err != nil {
		t.Fatalf("Failed to decode JSON: %v. Body: %s", err, string(body))
	}
}

// ParseError decodes an error response and verifies ok is false
func ParseError(t *testing.T, resp *http.Response) ErrorEnvelope {
	t.Helper()
	var env ErrorEnvelope
	ParseJSON(t, resp, &env)
	if env.Ok {
		t.Errorf("Expected ok=false, got ok=true (message: %s)", env.Message)
	}
	return env
}

// ParseMutation decodes a mutation response and verifies ok is true
func ParseMutation(t *testing.T, resp *http.Response) MutationResult {
	t.Helper()
	var result MutationResult
	ParseJSON(t, resp, &result)
	if !result.Ok {
		t.Errorf("Expected ok=true, got ok=false (message: %s)", result.Message)
	}
	return result
}
