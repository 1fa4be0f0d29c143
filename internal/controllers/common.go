package controllers

import (
    "errors"
    "fmt"
    "net/http"
    "strconv"
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/go-playground/validator/v10"

    "github.com/zaqqye/spmb_backend/internal/validation"
)

// EventPublisher receives admin live-feed events. *ws.AdminHub implements it.
type EventPublisher interface {
    Publish(eventType string, data any)
}

func publish(p EventPublisher, eventType string, data any) {
    if p == nil {
        return
    }
    p.Publish(eventType, data)
}

// listParams are the limit/page/all/sort_by/sort_dir/q query parameters
// shared by the list endpoints.
type listParams struct {
    All     bool
    Limit   int
    Page    int
    SortCol string
    SortDir string
    Q       string
}

func parseListParams(c *gin.Context, defaultLimit int, allowedSorts map[string]string, defaultSort, defaultDir string) listParams {
    p := listParams{
        All:   strings.EqualFold(c.Query("all"), "true") || c.Query("all") == "1",
        Limit: defaultLimit,
        Page:  1,
        Q:     strings.TrimSpace(c.Query("q")),
    }
    if v := c.Query("limit"); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            p.Limit = n
        }
    }
    if v := c.Query("page"); v != "" {
        if n, err := strconv.Atoi(v); err == nil && n > 0 {
            p.Page = n
        }
    }

    sortBy := strings.ToLower(c.DefaultQuery("sort_by", defaultSort))
    p.SortDir = strings.ToUpper(c.DefaultQuery("sort_dir", defaultDir))
    if p.SortDir != "ASC" && p.SortDir != "DESC" {
        p.SortDir = defaultDir
    }
    col, ok := allowedSorts[sortBy]
    if !ok {
        col = allowedSorts[defaultSort]
    }
    p.SortCol = col
    return p
}

func (p listParams) Order() string {
    return fmt.Sprintf("%s %s", p.SortCol, p.SortDir)
}

func (p listParams) Offset() int {
    return (p.Page - 1) * p.Limit
}

func (p listParams) Meta(total int64) gin.H {
    meta := gin.H{"total": total, "all": p.All}
    if !p.All {
        meta["limit"] = p.Limit
        meta["page"] = p.Page
        meta["sort_by"] = p.SortCol
        meta["sort_dir"] = p.SortDir
    }
    if p.Q != "" {
        meta["q"] = p.Q
    }
    return meta
}

// respondBindError answers a failed ShouldBindJSON. Field validation
// failures become 422 with per-field messages; malformed bodies are 400.
func respondBindError(c *gin.Context, err error) {
    var verrs validator.ValidationErrors
    if errors.As(err, &verrs) {
        respondValidation(c, validation.FromValidator(verrs, "data tidak valid"))
        return
    }
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func respondValidation(c *gin.Context, ve *validation.ValidationError) {
    c.JSON(http.StatusUnprocessableEntity, gin.H{"error": ve.Message, "fields": ve.Fields})
}
