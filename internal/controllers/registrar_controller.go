package controllers

import (
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"

    "github.com/zaqqye/spmb_backend/internal/applicants"
)

// RegistrarController serves the public registration-status lookup.
type RegistrarController struct {
    Store *applicants.Store
}

// Lookup answers with the applicant's status or an explicit not-found body.
func (rc *RegistrarController) Lookup(c *gin.Context) {
    id := strings.TrimSpace(c.Param("id"))
    a, ok := rc.Store.FindByID(c.Request.Context(), id)
    if !ok {
        c.JSON(http.StatusNotFound, gin.H{"found": false, "id": id})
        return
    }
    c.JSON(http.StatusOK, gin.H{
        "found":        true,
        "id":           a.ID,
        "name":         a.Name,
        "status":       a.Status,
        "status_label": applicants.StatusLabel(a.Status),
        "created_at":   a.CreatedAt,
    })
}
