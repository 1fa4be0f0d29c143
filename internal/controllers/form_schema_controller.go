package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/zaqqye/spmb_backend/internal/formschema"
)

type FormSchemaController struct {
    Store *formschema.Store
    Log   *zap.Logger
}

// GetPublic returns the sections the registration form renders: enabled
// fields only.
func (fc *FormSchemaController) GetPublic(c *gin.Context) {
    schema := fc.Store.Load(c.Request.Context())
    c.JSON(http.StatusOK, gin.H{
        "sections": schema.Grouped(true),
        "required": schema.RequiredKeys(),
    })
}

func (fc *FormSchemaController) Get(c *gin.Context) {
    ed := formschema.NewEditor(fc.Store)
    ed.Load(c.Request.Context())
    c.JSON(http.StatusOK, gin.H{"sections": ed.Sections(), "status": ed.Status()})
}

type fieldToggle struct {
    Enabled  *bool `json:"enabled"`
    Required *bool `json:"required"`
}

type updateFormSchemaRequest struct {
    Fields map[formschema.FieldKey]fieldToggle `json:"fields" binding:"required"`
}

// Update applies enable/require toggles to the stored schema and saves once.
// Enabled is applied before required so a field can be enabled and made
// required in one request.
func (fc *FormSchemaController) Update(c *gin.Context) {
    var req updateFormSchemaRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        respondBindError(c, err)
        return
    }
    for key := range req.Fields {
        if !formschema.IsKnown(key) {
            c.JSON(http.StatusBadRequest, gin.H{"error": "unknown field", "field": key})
            return
        }
    }

    ctx := c.Request.Context()
    ed := formschema.NewEditor(fc.Store)
    if err := ed.Open(ctx); err != nil {
        fc.Log.Error("form schema load failed", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal Memuat"})
        return
    }
    for key, t := range req.Fields {
        if t.Enabled != nil {
            if err := ed.ToggleEnabled(key, *t.Enabled); err != nil {
                c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
                return
            }
        }
        if t.Required != nil {
            if err := ed.ToggleRequired(key, *t.Required); err != nil {
                c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
                return
            }
        }
    }
    if err := ed.Save(ctx); err != nil {
        fc.Log.Error("form schema save failed", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal Menyimpan", "status": ed.Status(), "sections": ed.Sections()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"message": "Tersimpan", "status": ed.Status(), "sections": ed.Sections()})
}

func (fc *FormSchemaController) Reset(c *gin.Context) {
    ctx := c.Request.Context()
    ed := formschema.NewEditor(fc.Store)
    if err := ed.Reset(ctx); err != nil {
        fc.Log.Error("form schema reset failed", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal Mereset"})
        return
    }
    c.JSON(http.StatusOK, gin.H{"message": "Direset", "sections": ed.Sections()})
}
