package middleware

import (
	"context"
	"net/http"
	"strings"

	"sistema-provale/internal/domain/entity"
	"sistema-provale/internal/service"
	"sistema-provale/pkg/jwt"
	"sistema-provale/pkg/response"
)

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	TokenIDKey     contextKey = "token_id"
	CurrentUserKey contextKey = "current_user"
)

// ActiveUserResolver loads the account behind a token and returns nil when
// it no longer exists or is not active in the system
type ActiveUserResolver interface {
	ResolveActiveUser(ctx context.Context, userID int) (*entity.Usuario, error)
}

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	tokens     service.TokenStore
	users      ActiveUserResolver
}

func NewAuthMiddleware(jwtService *jwt.JWTService, tokens service.TokenStore, users ActiveUserResolver) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		tokens:     tokens,
		users:      users,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Invalid token type")
			return
		}

		valid, err := m.tokens.AccessValid(r.Context(), claims.UserID, claims.TokenID)
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !valid {
			response.Unauthorized(w, "Token has been revoked")
			return
		}

		usuario, err := m.users.ResolveActiveUser(r.Context(), claims.UserID)
		if err != nil {
			response.InternalServerError(w, "Failed to load user")
			return
		}
		if usuario == nil {
			response.Unauthorized(w, "User is not active")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)
		ctx = context.WithValue(ctx, CurrentUserKey, usuario)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithCurrentUser stores the authenticated account in ctx
func WithCurrentUser(ctx context.Context, usuario *entity.Usuario) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, usuario.ID)
	return context.WithValue(ctx, CurrentUserKey, usuario)
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(UserIDKey).(int)
	return userID, ok
}

// GetTokenIDFromContext extracts token ID from context
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

// GetCurrentUserFromContext returns the account loaded by Authenticate
func GetCurrentUserFromContext(ctx context.Context) (*entity.Usuario, bool) {
	usuario, ok := ctx.Value(CurrentUserKey).(*entity.Usuario)
	return usuario, ok && usuario != nil
}

// ActorID is the user to attribute audit entries to, nil for anonymous calls
func ActorID(ctx context.Context) *int {
	if userID, ok := GetUserIDFromContext(ctx); ok {
		return &userID
	}
	return nil
}
