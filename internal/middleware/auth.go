package middleware

import (
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"
    "gorm.io/gorm"

    "github.com/zaqqye/spmb_backend/internal/models"
)

// UserKey is the gin context key holding the authenticated models.User.
const UserKey = "user"

type AuthConfig struct {
    JWTSecret string
}

type Claims struct {
    UserID string `json:"user_id"`
    Role   string `json:"role"`
    Email  string `json:"email"`
    jwt.RegisteredClaims
}

// UserLookup resolves the active user behind a token.
type UserLookup func(userID string) (models.User, error)

// DBUserLookup reads active users from the users table.
func DBUserLookup(db *gorm.DB) UserLookup {
    return func(userID string) (models.User, error) {
        var user models.User
        err := db.Where("user_id = ? AND active = ?", userID, true).First(&user).Error
        return user, err
    }
}

func AuthMiddleware(lookup UserLookup, cfg AuthConfig) gin.HandlerFunc {
    return func(c *gin.Context) {
        tokenStr := bearerToken(c)
        if tokenStr == "" {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization header"})
            return
        }

        claims := &Claims{}
        token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
            return []byte(cfg.JWTSecret), nil
        }, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
        if err != nil || !token.Valid {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
            return
        }

        user, err := lookup(claims.UserID)
        if err != nil {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found or inactive"})
            return
        }

        c.Set(UserKey, user)
        c.Next()
    }
}

// bearerToken reads the Authorization header, falling back to the
// access_token query parameter for websocket clients that cannot set headers.
func bearerToken(c *gin.Context) string {
    auth := c.GetHeader("Authorization")
    if auth != "" {
        if !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
            return ""
        }
        return strings.TrimSpace(auth[len("Bearer "):])
    }
    if c.IsWebsocket() {
        return strings.TrimSpace(c.Query("access_token"))
    }
    return ""
}

// CurrentUser returns the user set by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
    uVal, ok := c.Get(UserKey)
    if !ok {
        return models.User{}, false
    }
    user, ok := uVal.(models.User)
    return user, ok
}

func RequireRoles(roles ...string) gin.HandlerFunc {
    allowed := map[string]struct{}{}
    for _, r := range roles {
        allowed[r] = struct{}{}
    }
    return func(c *gin.Context) {
        user, ok := CurrentUser(c)
        if !ok {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
            return
        }
        if _, ok := allowed[user.Role]; !ok {
            // allow admin to pass any role-gate
            if user.Role != models.RoleAdmin {
                c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
                return
            }
        }
        c.Next()
    }
}
