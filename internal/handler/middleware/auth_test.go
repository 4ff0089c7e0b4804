//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"grooming-booking/internal/handler/middleware"
	"grooming-booking/internal/pkg/cookie"
	"grooming-booking/internal/usecase"
	"grooming-booking/tests/common/httptest"
	usecasemock "grooming-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(validator usecase.TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", middleware.NewAuthMiddleware(validator).RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetCustomerID(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id.String(), "token": middleware.GetAccessToken(c)})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	customerID := uuid.New()
	valid := &usecase.ValidatedToken{CustomerID: customerID, Username: "alice"}

	testCases := []struct {
		name        string
		cookies     []*http.Cookie
		bearer      string
		setupMock   func(*usecasemock.MockTokenValidator)
		expectCode  int
		expectMsg   string
		expectToken string
	}{
		{
			name:   "success: bearer header",
			bearer: "header-token",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("header-token").Return(valid, nil)
			},
			expectCode:  http.StatusOK,
			expectToken: "header-token",
		},
		{
			name:    "success: cookie wins over header",
			cookies: []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "cookie-token"}},
			bearer:  "header-token",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("cookie-token").Return(valid, nil)
			},
			expectCode:  http.StatusOK,
			expectToken: "cookie-token",
		},
		{
			name:       "error: no token at all",
			setupMock:  func(*usecasemock.MockTokenValidator) {},
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Access token required",
		},
		{
			name:   "error: token rejected",
			bearer: "expired",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			expectCode: http.StatusUnauthorized,
			expectMsg:  "Invalid or expired token",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			tc.setupMock(validator)
			router := newAuthRouter(validator)

			rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/me", nil, tc.cookies, tc.bearer)

			if tc.expectMsg != "" {
				httptest.AssertErrorResponse(t, rec, tc.expectCode, tc.expectMsg)
				return
			}
			var body struct {
				ID    string `json:"id"`
				Token string `json:"token"`
			}
			httptest.AssertSuccessResponse(t, rec, tc.expectCode, &body)
			assert.Equal(t, customerID.String(), body.ID)
			assert.Equal(t, tc.expectToken, body.Token)
		})
	}
}

func TestRequireAuth_IgnoresNonBearerScheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := newAuthRouter(usecasemock.NewMockTokenValidator(ctrl))

	req, err := http.NewRequest(http.MethodGet, "/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Basic YWxpY2U6c2VjcmV0")

	rec := newRecorder()
	router.ServeHTTP(rec, req)
	httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
}
