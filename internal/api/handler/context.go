package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: a positive user id and
// a non-empty role prove the middleware ran and the token carried a usable
// identity.
func ctxIdentity(c echo.Context) (userID int64, role string, err error) {
	userID, _ = c.Get("user_id").(int64)
	if userID <= 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get("role").(string)
	if role == "" {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "token missing role claim")
	}

	return userID, role, nil
}
