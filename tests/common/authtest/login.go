//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"grooming-booking/internal/handler/dto/request"
	"grooming-booking/tests/common/dbtest"
	"grooming-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func LoginCustomer(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, "access_token")
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// CreateAndLogin seeds a customer whose password is dbtest.DefaultPassword and logs it in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username, firstName string) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestCustomer(t, db, username, firstName)
	return id, LoginCustomer(t, router, username, dbtest.DefaultPassword)
}

func LogoutCustomer(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
