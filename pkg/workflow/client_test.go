package workflow

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/assert/v2"
)

// envelope wraps text the way a run response carries its message.
func envelope(text string) string {
	encoded, _ := json.Marshal(text)
	return fmt.Sprintf(`{"outputs":[{"outputs":[{"results":{"message":{"text":%s}}}]}]}`, encoded)
}

func TestRunStructuredReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, envelope(`{"results":[{"response":"Hi","metadata":{"suggestions":["A","B"]}}]}`))
	}))
	defer srv.Close()

	reply, err := NewClient(srv.URL, "flow-1", "").Run("hello", "s1")

	assert.Equal(t, err, nil)
	assert.Equal(t, "Hi", reply.Content)
	assert.Equal(t, []string{"A", "B"}, reply.Suggestions)
}

func TestRunPlainTextReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, envelope("Hello there"))
	}))
	defer srv.Close()

	reply, err := NewClient(srv.URL, "flow-1", "").Run("hello", "s1")

	assert.Equal(t, err, nil)
	assert.Equal(t, "Hello there", reply.Content)
	if reply.Suggestions == nil {
		t.Fatal("suggestions should be empty, not nil")
	}
	assert.Equal(t, 0, len(reply.Suggestions))
}

func TestRunArtifactsFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"outputs":[{"outputs":[{"artifacts":{"message":"From artifacts"}}]}]}`)
	}))
	defer srv.Close()

	reply, err := NewClient(srv.URL, "flow-1", "").Run("hello", "s1")

	assert.Equal(t, err, nil)
	assert.Equal(t, "From artifacts", reply.Content)
}

func TestRunUnrecognizedEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ok"}`)
	}))
	defer srv.Close()

	reply, err := NewClient(srv.URL, "flow-1", "").Run("hello", "s1")

	assert.Equal(t, err, nil)
	assert.Equal(t, fallbackMessage, reply.Content)
	assert.Equal(t, 0, len(reply.Suggestions))
}

func TestRunSkipsNonStringSuggestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, envelope(`{"results":[{"response":"Hi","metadata":{"suggestions":["A",7,"B"]}}]}`))
	}))
	defer srv.Close()

	reply, err := NewClient(srv.URL, "flow-1", "").Run("hello", "s1")

	assert.Equal(t, err, nil)
	assert.Equal(t, []string{"A", "B"}, reply.Suggestions)
}

func TestRunRequestShape(t *testing.T) {
	var (
		gotPath string
		gotKey  string
		gotBody runRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		fmt.Fprint(w, envelope("ok"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "flow-42", "demo-key").Run("what's new", "")

	assert.Equal(t, err, nil)
	assert.Equal(t, "/api/v1/run/flow-42", gotPath)
	assert.Equal(t, "demo-key", gotKey)
	assert.Equal(t, "what's new", gotBody.InputValue)
	assert.Equal(t, "chat", gotBody.OutputType)
	assert.Equal(t, "chat", gotBody.InputType)
	assert.Equal(t, DefaultSessionID, gotBody.SessionID)
}

func TestRunKeepsCallerSession(t *testing.T) {
	var gotBody runRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		fmt.Fprint(w, envelope("ok"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "flow-1", "").Run("hello", "sess-9")

	assert.Equal(t, err, nil)
	assert.Equal(t, "sess-9", gotBody.SessionID)
}

func TestRunTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL, "flow-1", "").Run("hello", "s1")

	assert.NotEqual(t, err, nil)
}

func TestRunErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "flow-1", "").Run("hello", "s1")

	assert.NotEqual(t, err, nil)
}
