package controllers

import (
    "errors"
    "net/http"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"

    "github.com/zaqqye/spmb_backend/internal/models"
)

// SchoolProfileController manages the singleton school profile row.
type SchoolProfileController struct {
    DB *gorm.DB
}

// updateProfileRequest is a partial update: nil fields are left unchanged.
type updateProfileRequest struct {
    Name          *string   `json:"name" binding:"omitempty,notblank"`
    Address       *string   `json:"address" binding:"omitempty,notblank"`
    Phone         *string   `json:"phone" binding:"omitempty,notblank"`
    Email         *string   `json:"email" binding:"omitempty,email"`
    Website       *string   `json:"website" binding:"omitempty,url"`
    Established   *int      `json:"established" binding:"omitempty,gte=1900"`
    Accreditation *string   `json:"accreditation" binding:"omitempty,notblank"`
    Vision        *string   `json:"vision" binding:"omitempty,notblank"`
    Mission       *[]string `json:"mission" binding:"omitempty,dive,notblank"`
    Goals         *[]string `json:"goals" binding:"omitempty,dive,notblank"`
    Indicators    *[]string `json:"indicators" binding:"omitempty,dive,notblank"`
    History       *string   `json:"history" binding:"omitempty,notblank"`
}

func (sc *SchoolProfileController) latest() (models.SchoolProfile, error) {
    var p models.SchoolProfile
    err := sc.DB.Order("created_at DESC").First(&p).Error
    return p, err
}

func (sc *SchoolProfileController) Get(c *gin.Context) {
    p, err := sc.latest()
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            c.JSON(http.StatusNotFound, gin.H{"error": "school profile not found"})
            return
        }
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, p)
}

// Update patches the profile, creating it on first use.
func (sc *SchoolProfileController) Update(c *gin.Context) {
    var req updateProfileRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        respondBindError(c, err)
        return
    }

    p, err := sc.latest()
    creating := errors.Is(err, gorm.ErrRecordNotFound)
    if err != nil && !creating {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    if req.Name != nil {
        p.Name = *req.Name
    }
    if req.Address != nil {
        p.Address = *req.Address
    }
    if req.Phone != nil {
        p.Phone = *req.Phone
    }
    if req.Email != nil {
        p.Email = *req.Email
    }
    if req.Website != nil {
        p.Website = *req.Website
    }
    if req.Established != nil {
        p.Established = *req.Established
    }
    if req.Accreditation != nil {
        p.Accreditation = *req.Accreditation
    }
    if req.Vision != nil {
        p.Vision = *req.Vision
    }
    if req.Mission != nil {
        p.Mission = jsonList(*req.Mission)
    }
    if req.Goals != nil {
        p.Goals = jsonList(*req.Goals)
    }
    if req.Indicators != nil {
        p.Indicators = jsonList(*req.Indicators)
    }
    if req.History != nil {
        p.History = *req.History
    }

    if creating {
        if p.Name == "" {
            c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "data tidak valid", "fields": []gin.H{{"field": "name", "message": "wajib diisi"}}})
            return
        }
        if err := sc.DB.Create(&p).Error; err != nil {
            c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
            return
        }
        c.JSON(http.StatusCreated, p)
        return
    }
    if err := sc.DB.Save(&p).Error; err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, p)
}
