package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume_backend/internal/feature/auth/usecase"
	jwtmw "resume_backend/internal/platform/jwt"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthUsecase is a mock implementation of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignUpFunc func(email, password, passwordConfirm, name string) (*usecase.ProfileView, error)
	SignInFunc func(email, password string) (string, error)
	WhoAmIFunc func(accountID uint) (*usecase.AccountView, error)
}

func (m *mockAuthUsecase) SignUp(_ context.Context, email, password, passwordConfirm, name string) (*usecase.ProfileView, error) {
	return m.SignUpFunc(email, password, passwordConfirm, name)
}

func (m *mockAuthUsecase) SignIn(_ context.Context, email, password string) (string, error) {
	return m.SignInFunc(email, password)
}

func (m *mockAuthUsecase) WhoAmI(_ context.Context, accountID uint) (*usecase.AccountView, error) {
	return m.WhoAmIFunc(accountID)
}

// newTestRouter wires the handler the same way the real router does,
// with the guard replaced by a stub that injects the account ID.
func newTestRouter(h *AuthHandler, accountID uint) *gin.Engine {
	r := gin.New()
	r.POST("/auth/sign-up", h.SignUp)
	r.POST("/auth/sign-in", h.SignIn)
	r.GET("/auth/users", func(c *gin.Context) {
		c.Set(jwtmw.ContextAccountID, accountID)
		c.Next()
	}, h.Me)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_SignUp(t *testing.T) {
	t.Run("success returns 201 with the profile", func(t *testing.T) {
		now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		uc := &mockAuthUsecase{
			SignUpFunc: func(email, password, passwordConfirm, name string) (*usecase.ProfileView, error) {
				assert.Equal(t, "test@example.com", email)
				assert.Equal(t, "secret1", password)
				assert.Equal(t, "secret1", passwordConfirm)
				assert.Equal(t, "A", name)
				return &usecase.ProfileView{AccountID: 1, Role: "APPLICANT", CreatedAt: now, UpdatedAt: now}, nil
			},
		}
		r := newTestRouter(NewAuthHandler(uc), 0)

		w := postJSON(r, "/auth/sign-up", `{"email":"test@example.com","password":"secret1","passwordConfirm":"secret1","name":"A"}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res struct {
			Message  string `json:"message"`
			UserInfo *struct {
				AccountID uint   `json:"accountId"`
				Role      string `json:"role"`
			} `json:"userInfo"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "sign-up completed", res.Message)
		require.NotNil(t, res.UserInfo)
		assert.EqualValues(t, 1, res.UserInfo.AccountID)
		assert.Equal(t, "APPLICANT", res.UserInfo.Role)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		uc := &mockAuthUsecase{
			SignUpFunc: func(email, password, passwordConfirm, name string) (*usecase.ProfileView, error) {
				t.Fatal("usecase must not be called on bind failure")
				return nil, nil
			},
		}
		r := newTestRouter(NewAuthHandler(uc), 0)

		w := postJSON(r, "/auth/sign-up", `{"email":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request")
	})

	t.Run("usecase errors map to their statuses", func(t *testing.T) {
		tests := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{"missing fields", usecase.ErrMissingFields, http.StatusBadRequest},
			{"invalid email format", usecase.ErrInvalidEmailFormat, http.StatusBadRequest},
			{"password too short", usecase.ErrPasswordTooShort, http.StatusBadRequest},
			{"password mismatch", usecase.ErrPasswordMismatch, http.StatusBadRequest},
			{"email already exists", usecase.ErrEmailAlreadyExists, http.StatusConflict},
			{"unexpected failure", errors.New("database error"), http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				uc := &mockAuthUsecase{
					SignUpFunc: func(email, password, passwordConfirm, name string) (*usecase.ProfileView, error) {
						return nil, tt.err
					},
				}
				r := newTestRouter(NewAuthHandler(uc), 0)

				w := postJSON(r, "/auth/sign-up", `{"email":"test@example.com","password":"secret1","passwordConfirm":"secret1","name":"A"}`)

				assert.Equal(t, tt.expectedStatus, w.Code)
			})
		}
	})
}

func TestAuthHandler_SignIn(t *testing.T) {
	t.Run("success returns 200 with the token", func(t *testing.T) {
		uc := &mockAuthUsecase{
			SignInFunc: func(email, password string) (string, error) {
				assert.Equal(t, "test@example.com", email)
				assert.Equal(t, "secret1", password)
				return "signed.jwt.token", nil
			},
		}
		r := newTestRouter(NewAuthHandler(uc), 0)

		w := postJSON(r, "/auth/sign-in", `{"email":"test@example.com","password":"secret1"}`)

		assert.Equal(t, http.StatusOK, w.Code)

		var res struct {
			Message string `json:"message"`
			Token   string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "sign-in succeeded", res.Message)
		assert.Equal(t, "signed.jwt.token", res.Token)
	})

	t.Run("invalid credentials return 401", func(t *testing.T) {
		uc := &mockAuthUsecase{
			SignInFunc: func(email, password string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
		}
		r := newTestRouter(NewAuthHandler(uc), 0)

		w := postJSON(r, "/auth/sign-in", `{"email":"test@example.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email or password")
	})

	t.Run("missing email returns 400", func(t *testing.T) {
		uc := &mockAuthUsecase{
			SignInFunc: func(email, password string) (string, error) {
				return "", usecase.ErrMissingEmail
			},
		}
		r := newTestRouter(NewAuthHandler(uc), 0)

		w := postJSON(r, "/auth/sign-in", `{"email":"","password":"secret1"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		uc := &mockAuthUsecase{
			SignInFunc: func(email, password string) (string, error) {
				t.Fatal("usecase must not be called on bind failure")
				return "", nil
			},
		}
		r := newTestRouter(NewAuthHandler(uc), 0)

		w := postJSON(r, "/auth/sign-in", `not json`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("returns the caller's account", func(t *testing.T) {
		now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
		uc := &mockAuthUsecase{
			WhoAmIFunc: func(accountID uint) (*usecase.AccountView, error) {
				assert.EqualValues(t, 42, accountID, "account ID must come from the guard context")
				return &usecase.AccountView{
					AccountID: accountID,
					Email:     "test@example.com",
					Name:      "A",
					Role:      "APPLICANT",
					CreatedAt: now,
					UpdatedAt: now,
				}, nil
			},
		}
		r := newTestRouter(NewAuthHandler(uc), 42)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/users", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res struct {
			Message string `json:"message"`
			User    *struct {
				AccountID uint   `json:"accountId"`
				Email     string `json:"email"`
				Name      string `json:"name"`
				Role      string `json:"role"`
			} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "ok", res.Message)
		require.NotNil(t, res.User)
		assert.EqualValues(t, 42, res.User.AccountID)
		assert.Equal(t, "test@example.com", res.User.Email)
		assert.Equal(t, "APPLICANT", res.User.Role)
	})

	t.Run("missing account yields 404", func(t *testing.T) {
		uc := &mockAuthUsecase{
			WhoAmIFunc: func(accountID uint) (*usecase.AccountView, error) {
				return nil, usecase.ErrAccountNotFound
			},
		}
		r := newTestRouter(NewAuthHandler(uc), 42)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/auth/users", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
