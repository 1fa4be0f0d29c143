package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/zaqqye/spmb_backend/internal/applicants"
    "github.com/zaqqye/spmb_backend/internal/formschema"
    "github.com/zaqqye/spmb_backend/internal/validation"
    "github.com/zaqqye/spmb_backend/internal/ws"
)

// RegistrationController accepts public SPMB registration forms.
type RegistrationController struct {
    Schemas    *formschema.Store
    Applicants *applicants.Store
    Events     EventPublisher
    Log        *zap.Logger
}

func (rc *RegistrationController) Submit(c *gin.Context) {
    var req applicants.Registration
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    ctx := c.Request.Context()
    a, err := applicants.Submit(ctx, rc.Applicants, rc.Schemas.Load(ctx), req)
    if err != nil {
        if ve, ok := validation.AsValidationError(err); ok {
            respondValidation(c, ve)
            return
        }
        rc.Log.Error("registration submit failed", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal Mendaftar"})
        return
    }
    publish(rc.Events, ws.EventApplicantCreated, a)
    c.JSON(http.StatusCreated, gin.H{
        "message":      "Pendaftaran Berhasil",
        "id":           a.ID,
        "status":       a.Status,
        "status_label": applicants.StatusLabel(a.Status),
    })
}
