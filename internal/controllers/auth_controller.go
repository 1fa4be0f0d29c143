package controllers

import (
    "net/http"
    "strconv"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"
    "github.com/google/uuid"
    "go.uber.org/zap"
    "gorm.io/gorm"

    "github.com/zaqqye/spmb_backend/internal/middleware"
    "github.com/zaqqye/spmb_backend/internal/models"
    "github.com/zaqqye/spmb_backend/internal/utils"
)

const tokenIssuer = "spmb_backend"

type AuthController struct {
    DB            *gorm.DB
    AccessSecret  string
    RefreshSecret string
    AccessTTL     time.Duration
    RefreshTTL    time.Duration
    Log           *zap.Logger
}

type loginRequest struct {
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required"`
}

func (a *AuthController) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        respondBindError(c, err)
        return
    }

    var user models.User
    if err := a.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
        return
    }

    if !user.Active || !utils.CheckPassword(user.Password, req.Password) {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
        return
    }

    access, refresh, err := a.issueTokens(user)
    if err != nil {
        a.Log.Error("issue tokens failed", zap.String("user_id", user.UserID), zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue tokens"})
        return
    }
    now := time.Now().UTC()
    if err := a.DB.Model(&user).Update("last_login", &now).Error; err != nil {
        a.Log.Warn("last_login update failed", zap.String("user_id", user.UserID), zap.Error(err))
    }
    c.JSON(http.StatusOK, gin.H{
        "access_token":       access.Token,
        "token_type":         "Bearer",
        "expires_in":         int(a.AccessTTL.Seconds()),
        "role":               user.Role,
        "refresh_token":      refresh.Token,
        "refresh_expires_in": int(a.RefreshTTL.Seconds()),
    })
}

func (a *AuthController) Me(c *gin.Context) {
    user, ok := middleware.CurrentUser(c)
    if !ok {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
        return
    }
    c.JSON(http.StatusOK, userJSON(user))
}

type tokenPair struct {
    Token string
    JTI   string
}

func (a *AuthController) issueTokens(user models.User) (access tokenPair, refresh tokenPair, err error) {
    now := time.Now().UTC()
    sub := strconv.FormatUint(uint64(user.ID), 10)
    acl := middleware.Claims{
        UserID: user.UserID,
        Role:   user.Role,
        Email:  user.Email,
        RegisteredClaims: jwt.RegisteredClaims{
            Issuer:    tokenIssuer,
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(a.AccessTTL)),
            Subject:   sub,
        },
    }
    atStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, acl).SignedString([]byte(a.AccessSecret))
    if err != nil {
        return
    }
    access = tokenPair{Token: atStr}

    // Refresh token with JTI
    jti := uuid.NewString()
    rcl := jwt.RegisteredClaims{
        Issuer:    tokenIssuer,
        IssuedAt:  jwt.NewNumericDate(now),
        ExpiresAt: jwt.NewNumericDate(now.Add(a.RefreshTTL)),
        Subject:   sub,
        ID:        jti,
    }
    rtStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, rcl).SignedString([]byte(a.RefreshSecret))
    if err != nil {
        return
    }
    refresh = tokenPair{Token: rtStr, JTI: jti}

    // Only the hash of the refresh token is stored.
    rec := models.RefreshToken{
        TokenID:   jti,
        UserIDRef: user.ID,
        TokenHash: utils.HashToken(rtStr),
        ExpiresAt: now.Add(a.RefreshTTL),
    }
    err = a.DB.Create(&rec).Error
    return
}

type refreshRequest struct {
    RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh rotates a refresh token: the presented one is revoked and a new
// pair is issued.
func (a *AuthController) Refresh(c *gin.Context) {
    var req refreshRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        respondBindError(c, err)
        return
    }
    tok, err := jwt.ParseWithClaims(req.RefreshToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
        return []byte(a.RefreshSecret), nil
    }, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
    if err != nil || !tok.Valid {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
        return
    }

    var rec models.RefreshToken
    if err := a.DB.Where("token_hash = ?", utils.HashToken(req.RefreshToken)).First(&rec).Error; err != nil {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token not found"})
        return
    }
    if rec.RevokedAt != nil || time.Now().UTC().After(rec.ExpiresAt) {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "refresh token expired or revoked"})
        return
    }
    var user models.User
    if err := a.DB.First(&user, rec.UserIDRef).Error; err != nil || !user.Active {
        c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
        return
    }

    access, newRefresh, err := a.issueTokens(user)
    if err != nil {
        a.Log.Error("issue tokens failed", zap.String("user_id", user.UserID), zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue tokens"})
        return
    }
    now := time.Now().UTC()
    if err := a.DB.Model(&rec).Updates(map[string]interface{}{
        "revoked_at":           &now,
        "replaced_by_token_id": newRefresh.JTI,
    }).Error; err != nil {
        a.Log.Warn("refresh token revoke failed", zap.String("token_id", rec.TokenID), zap.Error(err))
    }
    c.JSON(http.StatusOK, gin.H{
        "access_token":       access.Token,
        "token_type":         "Bearer",
        "expires_in":         int(a.AccessTTL.Seconds()),
        "refresh_token":      newRefresh.Token,
        "refresh_expires_in": int(a.RefreshTTL.Seconds()),
    })
}

type logoutRequest struct {
    RefreshToken string `json:"refresh_token"`
    All          bool   `json:"all"`
}

// Logout revokes one refresh token or all of the caller's. Access tokens stay
// valid until they expire.
func (a *AuthController) Logout(c *gin.Context) {
    var req logoutRequest
    _ = c.ShouldBindJSON(&req)
    now := time.Now().UTC()
    if req.RefreshToken != "" {
        a.DB.Model(&models.RefreshToken{}).
            Where("token_hash = ? AND revoked_at IS NULL", utils.HashToken(req.RefreshToken)).
            Update("revoked_at", &now)
    }
    if req.All {
        if user, ok := middleware.CurrentUser(c); ok {
            a.DB.Model(&models.RefreshToken{}).Where("user_id_ref = ? AND revoked_at IS NULL", user.ID).Update("revoked_at", &now)
        }
    }
    c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
