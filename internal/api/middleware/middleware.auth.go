package middleware

import (
	"fmt"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	"meta_helpdesk/internal/common"
	"meta_helpdesk/internal/global"
	"meta_helpdesk/internal/logger"
)

// AuthMiddleware xác thực JWT bearer token cho các route ghi dữ liệu.
// Chỉ verify chữ ký + hạn token; việc cấp token nằm ngoài phạm vi server này
// (token do hệ thống SSO nội bộ phát hành với cùng JWT secret).
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("thuật toán ký không được hỗ trợ: %v", t.Header["alg"])
			}
			return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
		})
		if err != nil {
			if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
				HandleErrorResponse(c, common.ErrTokenExpired)
				return nil
			}
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("Token không hợp lệ")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		if !token.Valid {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lưu userId vào context cho handler phía sau (nếu token có claim này)
		if userID, ok := claims["userId"].(string); ok {
			c.Locals("user_id", userID)
		}

		return c.Next()
	}
}
