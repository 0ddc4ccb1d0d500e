package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/usecase"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation",
			err:         fmt.Errorf("%w: title must not be blank", usecase.ErrValidation),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid input: title must not be blank",
		},
		{
			name:        "unauthenticated",
			err:         usecase.ErrUnauthenticated,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "unauthorized",
		},
		{
			name:        "forbidden",
			err:         usecase.ErrForbidden,
			wantStatus:  http.StatusForbidden,
			wantMessage: "you are not authorized to access this resource",
		},
		{
			name:        "ghost principal",
			err:         usecase.ErrCurrentUserMissing,
			wantStatus:  http.StatusNotFound,
			wantMessage: "current user not found",
		},
		{
			name:        "not found",
			err:         usecase.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "book not found",
		},
		{
			name:        "unexpected failure is not leaked",
			err:         errors.New("pq: connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			respondError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body["error"])
		})
	}
}
