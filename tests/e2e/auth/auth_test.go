//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"grooming-booking/internal/handler/dto/request"
	"grooming-booking/internal/handler/dto/response"
	"grooming-booking/internal/pkg/cookie"
	"grooming-booking/tests/common/authtest"
	"grooming-booking/tests/common/dbtest"
	"grooming-booking/tests/common/httptest"
	"grooming-booking/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	validateURL = "/api/auth/validate"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) TestRegister() {
	s.Run("success: account created and signed in", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Username:  "alice",
			Password:  "password123",
			FirstName: "Alice",
		}, "")

		var body response.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.NotEmpty(body.Token)
		s.Equal("alice", body.Customer.Username)
		s.Equal("Alice", body.Customer.FirstName)

		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Equal(body.Token, accessCookie.Value)

		// the new account can log in with the same password
		s.NotEmpty(authtest.LoginCustomer(s.T(), s.Router, "alice", "password123"))
	})

	s.Run("error: duplicate username", func() {
		dbtest.CreateTestCustomer(s.T(), s.DB, "alice", "Alice")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Username:  "alice",
			Password:  "password123",
			FirstName: "Another",
		}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Username already taken")
	})

	s.Run("error: invalid payload", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Username:  "al",
			Password:  "short",
			FirstName: "Alice",
		}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", username: "alice", password: dbtest.DefaultPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", username: "nobody", password: dbtest.DefaultPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", username: "alice", password: "wrongpass1", expectedStatus: http.StatusUnauthorized},
		{name: "missing password", username: "alice", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			dbtest.CreateTestCustomer(s.T(), s.DB, "alice", "Alice")

			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Username: tt.username, Password: tt.password}, "")
			s.Equal(tt.expectedStatus, rec.Code, rec.Body.String())

			accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
			if tt.expectedStatus == http.StatusOK {
				s.Require().NotNil(accessCookie)
				s.NotEmpty(accessCookie.Value)
				s.True(accessCookie.HttpOnly)
			} else {
				s.Nil(accessCookie)
			}
		})
	}
}

func (s *authSuite) TestValidate() {
	s.Run("success: cookie and bearer both accepted", func() {
		customerID, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "alice", "Alice")

		rec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, validateURL, nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}, "")
		var body response.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(customerID, body.Customer.ID)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, validateURL, nil, token)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: expired token", func() {
		customerID := dbtest.CreateTestCustomer(s.T(), s.DB, "alice", "Alice")
		expired := s.jwt.CreateExpiredToken(s.T(), customerID, "alice")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, validateURL, nil, expired)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: token of a removed customer", func() {
		customerID := dbtest.CreateTestCustomer(s.T(), s.DB, "alice", "Alice")
		token := s.jwt.GenerateToken(s.T(), customerID, "alice")
		_, err := s.DB.Exec(s.T().Context(), "DELETE FROM customers WHERE id = $1", customerID)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, validateURL, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Customer no longer exists")
	})
}

func (s *authSuite) TestLogout() {
	s.Run("success: cookie cleared", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "alice", "Alice")

		rec := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, logoutURL, nil,
			[]*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: token}}, "")
		s.Equal(http.StatusNoContent, rec.Code)

		cleared := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
	})
}
