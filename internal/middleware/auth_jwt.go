package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey = "user_id" // int64
	CtxUserKey   = "user"    // *model.User
)

// bearerAuth用のJWT検証ミドルウェア。
// トークンが有効でも、ユーザーがDBに生きていなければ通さない。
func AuthJWT(secret string, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("Access token required"))
			}

			// Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("Access token required"))
			}
			rawToken := parts[1]

			// JWTをパースして検証する。
			// 署名不正も期限切れも同じ403（どちらかを外に漏らさない）。
			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return c.JSON(http.StatusForbidden, errorJSON("Invalid token"))
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusForbidden, errorJSON("Invalid token"))
			}

			userID, err := parseUserID(claims["user_id"])
			if err != nil || userID <= 0 {
				return c.JSON(http.StatusForbidden, errorJSON("Invalid token"))
			}

			// トークン発行後に削除されたユーザーを弾く（DBで現物確認）
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorJSON("Server error"))
			}
			if user == nil {
				return c.JSON(http.StatusUnauthorized, errorJSON("User not found"))
			}

			// contextへ保存
			c.Set(CtxUserIDKey, userID)
			c.Set(CtxUserKey, user)

			return next(c)
		}
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Message: msg}
}

// user_idをint64に変換する
func parseUserID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid user_id")
	}
}
