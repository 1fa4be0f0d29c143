package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/zaqqye/spmb_backend/internal/inbox"
    "github.com/zaqqye/spmb_backend/internal/validation"
    "github.com/zaqqye/spmb_backend/internal/ws"
)

// ContactController accepts the public contact form.
type ContactController struct {
    Store  *inbox.Store
    Events EventPublisher
    Log    *zap.Logger
}

// Submit stores a contact message. On a storage failure the submitted draft
// is echoed back so the sender can retry without retyping.
func (cc *ContactController) Submit(c *gin.Context) {
    var form inbox.ContactForm
    if err := c.ShouldBindJSON(&form); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    msg, err := form.Submit(c.Request.Context(), cc.Store)
    if err != nil {
        if ve, ok := validation.AsValidationError(err); ok {
            respondValidation(c, ve)
            return
        }
        cc.Log.Error("contact message append failed", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal Mengirim", "draft": form})
        return
    }
    publish(cc.Events, ws.EventMessageCreated, msg)
    c.JSON(http.StatusCreated, gin.H{"message": "Pesan Terkirim", "data": msg})
}
