package controllers

import (
    "errors"
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/zaqqye/spmb_backend/internal/inbox"
    "github.com/zaqqye/spmb_backend/internal/ws"
)

// MessageController is the admin inbox panel.
type MessageController struct {
    Store   *inbox.Store
    Columns *inbox.ColumnStore
    Events  EventPublisher
    Log     *zap.Logger
}

func (mc *MessageController) filtered(c *gin.Context) ([]inbox.ContactMessage, gin.H) {
    q := strings.TrimSpace(c.Query("q"))
    status := inbox.ParseStatusFilter(c.Query("status"))
    all := mc.Store.List(c.Request.Context())
    data := inbox.Filter(all, q, status)

    unread := 0
    for _, m := range all {
        if m.Status == inbox.StatusNew {
            unread++
        }
    }
    meta := gin.H{"total": len(all), "filtered": len(data), "unread": unread, "status": status}
    if q != "" {
        meta["q"] = q
    }
    return data, meta
}

func (mc *MessageController) List(c *gin.Context) {
    data, meta := mc.filtered(c)
    cols := mc.Columns.Load(c.Request.Context())
    c.JSON(http.StatusOK, gin.H{
        "data":            data,
        "meta":            meta,
        "columns":         cols,
        "visible_columns": cols.Visible(),
    })
}

func (mc *MessageController) Get(c *gin.Context) {
    m, ok := mc.Store.Get(c.Request.Context(), c.Param("id"))
    if !ok {
        c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
        return
    }
    c.JSON(http.StatusOK, gin.H{"data": m})
}

func (mc *MessageController) ToggleRead(c *gin.Context) {
    id := c.Param("id")
    m, found, err := mc.Store.ToggleRead(c.Request.Context(), id)
    if err != nil {
        mc.Log.Error("message toggle failed", zap.String("id", id), zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal Menyimpan"})
        return
    }
    if !found {
        c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
        return
    }
    publish(mc.Events, ws.EventMessageUpdated, m)
    data, meta := mc.filtered(c)
    c.JSON(http.StatusOK, gin.H{"message": m, "data": data, "meta": meta})
}

// Delete removes a message and reports which row the preview pane should
// show next, given the caller's current selection.
func (mc *MessageController) Delete(c *gin.Context) {
    id := c.Param("id")
    removed, err := mc.Store.Remove(c.Request.Context(), id)
    if err != nil {
        mc.Log.Error("message delete failed", zap.String("id", id), zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal Menghapus"})
        return
    }
    if !removed {
        c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
        return
    }
    publish(mc.Events, ws.EventMessageDeleted, gin.H{"id": id})

    data, meta := mc.filtered(c)
    selected := c.DefaultQuery("selected", id)
    c.JSON(http.StatusOK, gin.H{
        "data":        data,
        "meta":        meta,
        "selected_id": inbox.NextSelection(data, selected),
    })
}

func (mc *MessageController) GetColumns(c *gin.Context) {
    cols := mc.Columns.Load(c.Request.Context())
    c.JSON(http.StatusOK, gin.H{"columns": cols, "visible_columns": cols.Visible(), "order": inbox.ColumnKeys})
}

func (mc *MessageController) ToggleColumn(c *gin.Context) {
    cols, err := mc.Columns.Toggle(c.Request.Context(), inbox.ColumnKey(c.Param("key")))
    if err != nil {
        if errors.Is(err, inbox.ErrUnknownColumn) {
            c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
            return
        }
        mc.Log.Error("inbox columns save failed", zap.Error(err))
        c.JSON(http.StatusInternalServerError, gin.H{"error": "Gagal Menyimpan"})
        return
    }
    c.JSON(http.StatusOK, gin.H{"columns": cols, "visible_columns": cols.Visible()})
}
