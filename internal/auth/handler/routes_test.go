package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegisterRoutes verifies that every auth route is mounted. A 404 means
// the route does not exist; any other status (400 for a missing body, 401
// for a missing token) is fine for this existence check.
func TestRegisterRoutes(t *testing.T) {
	f, ctrl := newHandlerFixture(t)
	defer ctrl.Finish()

	testCases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/auth/signup"},
		{http.MethodPost, "/api/v1/auth/vendor-signup"},
		{http.MethodPost, "/api/v1/auth/signin"},
		{http.MethodPost, "/api/v1/auth/refresh-token"},
		{http.MethodPost, "/api/v1/auth/change-password"},
		{http.MethodPost, "/api/v1/auth/forget-password"},
		{http.MethodPost, "/api/v1/auth/reset-password"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s_%s_exists", tc.method, tc.path), func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			resp, err := f.app.Test(req)
			require.NoError(t, err)

			assert.NotEqual(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}
