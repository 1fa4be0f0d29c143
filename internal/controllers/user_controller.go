package controllers

import (
    "errors"
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/zaqqye/spmb_backend/internal/middleware"
    "github.com/zaqqye/spmb_backend/internal/models"
    "github.com/zaqqye/spmb_backend/internal/utils"
)

// UserController manages back-office accounts (admins and editors).
type UserController struct {
    DB *gorm.DB
}

func userJSON(u models.User) gin.H {
    return gin.H{
        "user_id":    u.UserID,
        "full_name":  u.FullName,
        "email":      u.Email,
        "role":       u.Role,
        "active":     u.Active,
        "last_login": u.LastLogin,
        "created_at": u.CreatedAt,
        "updated_at": u.UpdatedAt,
    }
}

var userSorts = map[string]string{
    "created_at": "created_at",
    "full_name":  "full_name",
    "email":      "email",
    "role":       "role",
    "active":     "active",
}

// List supports limit, page, all, sort_by, sort_dir, q, role and active.
func (uc *UserController) List(c *gin.Context) {
    p := parseListParams(c, 50, userSorts, "created_at", "DESC")
    role := strings.TrimSpace(strings.ToLower(c.Query("role")))
    activeStr := strings.TrimSpace(strings.ToLower(c.Query("active")))

    if role != "" && !IsValidRole(role) {
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
        return
    }
    var active *bool
    switch activeStr {
    case "":
    case "true", "1":
        v := true
        active = &v
    case "false", "0":
        v := false
        active = &v
    default:
        c.JSON(http.StatusBadRequest, gin.H{"error": "invalid active value"})
        return
    }

    filter := func() *gorm.DB {
        q := uc.DB.Model(&models.User{})
        if p.Q != "" {
            like := "%" + p.Q + "%"
            q = q.Where("full_name ILIKE ? OR email ILIKE ?", like, like)
        }
        if role != "" {
            q = q.Where("role = ?", role)
        }
        if active != nil {
            q = q.Where("active = ?", *active)
        }
        return q
    }

    var total int64
    if err := filter().Count(&total).Error; err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    listQ := filter().Order(p.Order())
    if !p.All {
        listQ = listQ.Offset(p.Offset()).Limit(p.Limit)
    }
    var users []models.User
    if err := listQ.Find(&users).Error; err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    out := make([]gin.H, 0, len(users))
    for _, u := range users {
        out = append(out, userJSON(u))
    }
    meta := p.Meta(total)
    if role != "" {
        meta["role"] = role
    }
    if activeStr != "" {
        meta["active"] = activeStr
    }
    c.JSON(http.StatusOK, gin.H{"data": out, "meta": meta})
}

func (uc *UserController) Get(c *gin.Context) {
    var u models.User
    if err := uc.DB.Where("user_id = ?", c.Param("user_id")).First(&u).Error; err != nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
        return
    }
    c.JSON(http.StatusOK, userJSON(u))
}

type createUserRequest struct {
    FullName string `json:"full_name" binding:"notblank"`
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required,min=6"`
    Role     string `json:"role" binding:"omitempty,oneof=admin editor"`
    Active   *bool  `json:"active"`
}

func (uc *UserController) Create(c *gin.Context) {
    var req createUserRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        respondBindError(c, err)
        return
    }
    pw, err := utils.HashPassword(req.Password)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
        return
    }
    role := req.Role
    if role == "" {
        role = models.RoleEditor
    }
    active := true
    if req.Active != nil {
        active = *req.Active
    }

    user := models.User{
        UserID:   uuid.NewString(),
        FullName: strings.TrimSpace(req.FullName),
        Email:    strings.ToLower(strings.TrimSpace(req.Email)),
        Password: pw,
        Role:     role,
        Active:   active,
    }
    if err := uc.DB.Create(&user).Error; err != nil {
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
            return
        }
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusCreated, userJSON(user))
}

type updateUserRequest struct {
    FullName *string `json:"full_name" binding:"omitempty,notblank"`
    Email    *string `json:"email" binding:"omitempty,email"`
    Password *string `json:"password" binding:"omitempty,min=6"`
    Role     *string `json:"role" binding:"omitempty,oneof=admin editor"`
    Active   *bool   `json:"active"`
}

func (uc *UserController) Update(c *gin.Context) {
    var u models.User
    if err := uc.DB.Where("user_id = ?", c.Param("user_id")).First(&u).Error; err != nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
        return
    }
    var req updateUserRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        respondBindError(c, err)
        return
    }

    if req.FullName != nil {
        u.FullName = strings.TrimSpace(*req.FullName)
    }
    if req.Email != nil {
        u.Email = strings.ToLower(strings.TrimSpace(*req.Email))
    }
    if req.Role != nil {
        u.Role = *req.Role
    }
    if req.Active != nil {
        u.Active = *req.Active
    }
    if req.Password != nil {
        pw, err := utils.HashPassword(*req.Password)
        if err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
            return
        }
        u.Password = pw
    }

    if err := uc.DB.Save(&u).Error; err != nil {
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
            return
        }
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, userJSON(u))
}

// Delete removes an account and its refresh tokens. Admins cannot delete
// themselves.
func (uc *UserController) Delete(c *gin.Context) {
    userID := strings.TrimSpace(c.Param("user_id"))
    if me, ok := middleware.CurrentUser(c); ok && me.UserID == userID {
        c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete own account"})
        return
    }
    var u models.User
    if err := uc.DB.Where("user_id = ?", userID).First(&u).Error; err != nil {
        c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
        return
    }
    err := uc.DB.Transaction(func(tx *gorm.DB) error {
        if err := tx.Where("user_id_ref = ?", u.ID).Delete(&models.RefreshToken{}).Error; err != nil {
            return err
        }
        return tx.Delete(&u).Error
    })
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
