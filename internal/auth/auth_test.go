package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyToken(t *testing.T) {
	a := New("super-secret", time.Hour)

	token, err := a.IssueToken("steuerbuero")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := a.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "steuerbuero", subject)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	a := New("super-secret", time.Hour)
	b := New("other-secret", time.Hour)

	token, err := a.IssueToken("steuerbuero")
	require.NoError(t, err)

	_, err = b.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Expired(t *testing.T) {
	a := New("super-secret", time.Hour)
	a.now = func() time.Time { return time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC) }

	token, err := a.IssueToken("steuerbuero")
	require.NoError(t, err)

	a.now = func() time.Time { return time.Date(2025, time.January, 1, 14, 0, 0, 0, time.UTC) }

	_, err = a.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	a := New("super-secret", time.Hour)

	token, err := a.IssueToken("steuerbuero")
	require.NoError(t, err)

	var gotSubject string
	handler := a.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{
			name:       "ValidToken",
			header:     "Bearer " + token,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "MissingHeader",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "MissingBearerPrefix",
			header:     token,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "GarbageToken",
			header:     "Bearer not.a.token",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSubject = ""

			req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, "steuerbuero", gotSubject)
			}
		})
	}
}
