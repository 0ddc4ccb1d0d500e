package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/internal/auth"
	"bookstore/internal/entity"
	"bookstore/internal/http/mocks"
	"bookstore/internal/testutil"
	"bookstore/internal/usecase"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestAuthHandler_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUserRepository(ctrl)
	handler := NewAuthHandler(mockUsers, testSecret)

	tests := []struct {
		name           string
		body           any
		setupMock      func()
		expectedStatus int
	}{
		{
			name: "created",
			body: map[string]string{"username": "alice", "password": "correct-horse", "pseudonym": "A. Liddell"},
			setupMock: func() {
				mockUsers.EXPECT().
					GetByUsername(gomock.Any(), "alice").
					Return(entity.User{}, usecase.ErrNotFound)
				mockUsers.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, u *entity.User) error {
						assert.Equal(t, "alice", u.Username)
						assert.Equal(t, "A. Liddell", u.Pseudonym)
						// stored credential must be a hash, never the plain password
						assert.NotEqual(t, "correct-horse", u.Password)
						assert.True(t, auth.VerifyPassword(u.Password, "correct-horse"))
						u.ID = testutil.TestAuthor.ID
						return nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "username taken",
			body: map[string]string{"username": "alice", "password": "correct-horse", "pseudonym": "A. Liddell"},
			setupMock: func() {
				mockUsers.EXPECT().
					GetByUsername(gomock.Any(), "alice").
					Return(testutil.TestAuthor, nil)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "password too short",
			body:           map[string]string{"username": "alice", "password": "short", "pseudonym": "A. Liddell"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing pseudonym",
			body:           map[string]string{"username": "alice", "password": "correct-horse"},
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := httptest.NewRecorder()
			r := testutil.NewRequest(http.MethodPost, "/api/auth/signup", tt.body)

			handler.Signup(w, r)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUsers := mocks.NewMockUserRepository(ctrl)
	handler := NewAuthHandler(mockUsers, testSecret)

	hashed, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	storedUser := testutil.TestAuthor
	storedUser.Password = hashed

	t.Run("success returns a usable token", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByUsername(gomock.Any(), "alice").
			Return(storedUser, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/api/auth/login", map[string]string{"username": "alice", "password": "correct-horse"})

		handler.Login(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		body := testutil.DecodeBody(w)
		token, ok := body["accessToken"].(string)
		require.True(t, ok)

		claims, err := auth.ParseToken(testSecret, token)
		require.NoError(t, err)
		assert.Equal(t, storedUser.ID, claims.Sub)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByUsername(gomock.Any(), "alice").
			Return(storedUser, nil)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/api/auth/login", map[string]string{"username": "alice", "password": "wrong"})

		handler.Login(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByUsername(gomock.Any(), "nobody").
			Return(entity.User{}, usecase.ErrNotFound)

		w := httptest.NewRecorder()
		r := testutil.NewRequest(http.MethodPost, "/api/auth/login", map[string]string{"username": "nobody", "password": "whatever"})

		handler.Login(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
