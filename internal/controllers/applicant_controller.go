package controllers

import (
    "fmt"
    "net/http"
    "strings"
    "time"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/zaqqye/spmb_backend/internal/applicants"
    "github.com/zaqqye/spmb_backend/internal/ws"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ApplicantController is the admin applicant table. Every mutation answers
// with the list re-read from the store and filtered by the request's q.
type ApplicantController struct {
    Store  *applicants.Store
    Events EventPublisher
    Log    *zap.Logger
}

func (ac *ApplicantController) list(c *gin.Context) gin.H {
    q := strings.TrimSpace(c.Query("q"))
    all := ac.Store.List(c.Request.Context())
    data := applicants.Search(all, q)
    meta := gin.H{"total": len(all), "filtered": len(data)}
    if q != "" {
        meta["q"] = q
    }
    return gin.H{"data": data, "meta": meta}
}

func (ac *ApplicantController) List(c *gin.Context) {
    c.JSON(http.StatusOK, ac.list(c))
}

func (ac *ApplicantController) Get(c *gin.Context) {
    a, ok := ac.Store.FindByID(c.Request.Context(), c.Param("id"))
    if !ok {
        c.JSON(http.StatusNotFound, gin.H{"error": "applicant not found"})
        return
    }
    c.JSON(http.StatusOK, gin.H{
        "data":         a,
        "status_label": applicants.StatusLabel(a.Status),
    })
}

func (ac *ApplicantController) Approve(c *gin.Context) {
    ac.setStatus(c, applicants.StatusApproved)
}

func (ac *ApplicantController) Decline(c *gin.Context) {
    ac.setStatus(c, applicants.StatusDeclined)
}

// resolve maps the path id onto the stored registration number, matching the
// way Get does.
func (ac *ApplicantController) resolve(c *gin.Context) (string, bool) {
    a, ok := ac.Store.FindByID(c.Request.Context(), c.Param("id"))
    if !ok {
        c.JSON(http.StatusNotFound, gin.H{"error": "applicant not found"})
        return "", false
    }
    return a.ID, true
}

func (ac *ApplicantController) setStatus(c *gin.Context, status applicants.Status) {
    id, ok := ac.resolve(c)
    if !ok {
        return
    }
    found, err := ac.Store.SetStatus(c.Request.Context(), id, status)
    if err != nil {
        ac.Log.Error("applicant status update failed", zap.String("id", id), zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal Menyimpan"})
        return
    }
    if !found {
        c.JSON(http.StatusNotFound, gin.H{"error": "applicant not found"})
        return
    }
    publish(ac.Events, ws.EventApplicantUpdated, gin.H{"id": id, "status": status})
    c.JSON(http.StatusOK, ac.list(c))
}

func (ac *ApplicantController) Delete(c *gin.Context) {
    id, ok := ac.resolve(c)
    if !ok {
        return
    }
    removed, err := ac.Store.Remove(c.Request.Context(), id)
    if err != nil {
        ac.Log.Error("applicant delete failed", zap.String("id", id), zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal Menghapus"})
        return
    }
    if !removed {
        c.JSON(http.StatusNotFound, gin.H{"error": "applicant not found"})
        return
    }
    publish(ac.Events, ws.EventApplicantDeleted, gin.H{"id": id})
    c.JSON(http.StatusOK, ac.list(c))
}

// Export downloads the (optionally searched) applicant table as xlsx.
func (ac *ApplicantController) Export(c *gin.Context) {
    records := applicants.Search(ac.Store.List(c.Request.Context()), strings.TrimSpace(c.Query("q")))
    buf, err := applicants.ExportXLSX(records)
    if err != nil {
        ac.Log.Error("applicant export failed", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal Mengekspor"})
        return
    }
    name := fmt.Sprintf("pendaftar-%s.xlsx", time.Now().Format("20060102"))
    c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
    c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
