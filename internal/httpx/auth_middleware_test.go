package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	const secret = "test-secret"

	var gotUserID, gotUsername string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFrom(r)
		gotUsername = UsernameFrom(r)
		w.WriteHeader(http.StatusOK)
	})
	protected := AuthMiddleware(secret)(next)

	tests := []struct {
		name           string
		token          string
		noHeader       bool
		expectedStatus int
	}{
		{
			name:           "valid token",
			token:          testutil.GenerateTestToken(secret, "user-123", "alice"),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing header",
			noHeader:       true,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			token:          testutil.GenerateExpiredToken(secret, "user-123", "alice"),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token signed with another secret",
			token:          testutil.GenerateTestToken("other-secret", "user-123", "alice"),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			token:          "not.a.token",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUserID, gotUsername = "", ""

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/books", nil)
			if !tt.noHeader {
				r.Header.Set("Authorization", "Bearer "+tt.token)
			}

			protected.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "user-123", gotUserID)
				assert.Equal(t, "alice", gotUsername)
			} else {
				assert.Empty(t, gotUsername)
			}
		})
	}
}
