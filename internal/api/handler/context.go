package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the verified identity injected by the Auth middleware
// and performs a fast-fail check before any service call: a missing or
// non-positive user id means the middleware did not run or the token carried
// no usable identity — reject with 401.
func ctxIdentity(c echo.Context) (userID int64, email string, err error) {
	userID, ok := c.Get("user_id").(int64)
	if !ok || userID <= 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ = c.Get("email").(string)
	return userID, email, nil
}
