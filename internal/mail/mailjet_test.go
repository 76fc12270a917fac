package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMailer(t *testing.T, handler http.HandlerFunc) *Mailer {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	m := NewMailer(Config{
		APIKey:    "key",
		APISecret: "secret",
		FromEmail: "no-reply@example.com",
		FromName:  "Belegwerk",
	})
	m.baseURL = srv.URL

	return m
}

func TestMailer_Send(t *testing.T) {
	var got sendRequest

	m := testMailer(t, func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)
		assert.Equal(t, "/send", r.URL.Path)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := m.Send(context.Background(), "krause@example.com", "Krause", "UStVA 2025-06", "<h1>UStVA</h1>")
	require.NoError(t, err)

	require.Len(t, got.Messages, 1)
	msg := got.Messages[0]
	assert.Equal(t, "no-reply@example.com", msg.From.Email)
	assert.Equal(t, "krause@example.com", msg.To[0].Email)
	assert.Equal(t, "UStVA 2025-06", msg.Subject)
	assert.Equal(t, "<h1>UStVA</h1>", msg.HTMLPart)
}

func TestMailer_Send_APIFailure(t *testing.T) {
	m := testMailer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"ErrorMessage":"bad request"}`, http.StatusBadRequest)
	})

	err := m.Send(context.Background(), "a@example.com", "A", "s", "b")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestMailer_Send_MissingCredentialsIsNoop(t *testing.T) {
	m := NewMailer(Config{FromEmail: "no-reply@example.com"})

	// Must not attempt a network call; the default base URL would fail fast
	// in tests if it did.
	err := m.Send(context.Background(), "a@example.com", "A", "s", "b")
	assert.NoError(t, err)
}
