package middleware

import (
	"strings"

	"github.com/JhonMohamed/Ravvisant/pkg/errs"
	"github.com/JhonMohamed/Ravvisant/pkg/response"
	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

// IsLoggedIn validates the Bearer token and stores the parsed token under the
// "user" key for utils.ExtractTokenUser.
func IsLoggedIn(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errs.ErrNotLoggedIn
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}

			c.Set("user", token)

			return next(c)
		}
	}
}
