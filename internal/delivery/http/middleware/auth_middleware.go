package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"doctor-verification/pkg/jwt"
	"doctor-verification/pkg/response"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal is the reviewer or doctor behind a request, taken from a verified access token
type Principal struct {
	UserID  uuid.UUID
	Email   string
	RoleID  int
	TokenID string
}

type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
		log:         log,
	}
}

// AccessTokenKey is the Redis key under which the auth service registers a live access token
func AccessTokenKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
}

// Authenticate accepts tokens issued by the auth service that are still registered
// in Redis and stores the Principal on the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			response.Unauthorized(w, "Authorization header must be 'Bearer <token>'")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, jwtlib.ErrTokenExpired) {
				response.Unauthorized(w, "Token has expired")
				return
			}
			m.log.WithField("path", r.URL.Path).Debugf("Rejected access token: %v", err)
			response.Unauthorized(w, "Invalid token")
			return
		}
		if claims.TokenType != jwt.AccessToken || claims.TokenID == "" || claims.UserID == uuid.Nil {
			response.Unauthorized(w, "Invalid token")
			return
		}

		exists, err := m.redisClient.Exists(r.Context(), AccessTokenKey(claims.UserID, claims.TokenID)).Result()
		if err != nil {
			m.log.Warnf("Failed to check access token registration: %+v", err)
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if exists == 0 {
			m.log.WithFields(logrus.Fields{
				"user_id":  claims.UserID,
				"token_id": claims.TokenID,
			}).Info("Revoked access token used")
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		ctx := WithPrincipal(r.Context(), Principal{
			UserID:  claims.UserID,
			Email:   claims.Email,
			RoleID:  claims.RoleID,
			TokenID: claims.TokenID,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// WithPrincipal attaches p to ctx. Authenticate is the only production caller.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the authenticated principal, if any
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// GetUserIDFromContext returns the authenticated user; it doubles as the audit actor
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	p, ok := PrincipalFromContext(ctx)
	return p.UserID, ok
}

// GetRoleIDFromContext returns the role carried by the access token
func GetRoleIDFromContext(ctx context.Context) (int, bool) {
	p, ok := PrincipalFromContext(ctx)
	return p.RoleID, ok
}
