package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const userIDKey contextKey = "user_id"

// AuthCookieName — имя cookie с JWT.
const AuthCookieName = "auth_token"

// GetUserIDFromContext возвращает ID аутентифицированного пользователя, если он есть.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	v, ok := ctx.Value(userIDKey).(int64)
	return v, ok
}

// BuildJWT подписывает HS256-токен с user id в sub и сроком жизни ttl.
func BuildJWT(userID int64, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// SetLoginCookie подписывает JWT и ставит его в auth cookie ответа.
func SetLoginCookie(w http.ResponseWriter, userID int64, secret string, ttl time.Duration) (string, error) {
	signed, err := BuildJWT(userID, secret, ttl)
	if err != nil {
		return "", err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(ttl / time.Second),
	})
	return signed, nil
}

// parseJWT проверяет подпись и срок действия токена, возвращает user id из sub.
func parseJWT(tokenString, secret string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(sub, 10, 64)
}

// tokenFromRequest достаёт токен из auth cookie или заголовка Authorization: Bearer.
func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(AuthCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// WithAuth проверяет JWT запроса и кладёт user id в контекст.
// Запрос без валидного токена проходит дальше анонимным:
// отклонение — ответственность хендлера.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tokenString := tokenFromRequest(r); tokenString != "" {
				if userID, err := parseJWT(tokenString, secret); err == nil {
					ctx := context.WithValue(r.Context(), userIDKey, userID)
					r = r.WithContext(ctx)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
