package controllers

import (
    "errors"
    "fmt"
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "gorm.io/gorm"
)

// contentInput is a validated request body that can be copied onto model T.
type contentInput[T any] interface {
    applyTo(m *T)
}

// ContentController serves uniform CRUD for one school-content table. In is
// the request body type; its binding tags carry the field rules.
type ContentController[T any, In contentInput[T]] struct {
    DB *gorm.DB
    // Name is used in error messages, e.g. "facility".
    Name string
    // SearchColumns are matched with ILIKE against q.
    SearchColumns []string
    // SortColumns maps sort_by values to columns; "order" must be present.
    SortColumns map[string]string
    // CategoryColumn enables the ?category= filter; empty for tables without one.
    CategoryColumn string
}

func (cc *ContentController[T, In]) category(c *gin.Context) string {
    if cc.CategoryColumn == "" {
        return ""
    }
    return strings.TrimSpace(c.Query("category"))
}

func (cc *ContentController[T, In]) notFound(c *gin.Context) {
    c.JSON(http.StatusNotFound, gin.H{"error": cc.Name + " not found"})
}

func (cc *ContentController[T, In]) filter(c *gin.Context, q string) *gorm.DB {
    base := cc.DB.Model(new(T))
    if q != "" && len(cc.SearchColumns) > 0 {
        like := "%" + q + "%"
        conds := make([]string, 0, len(cc.SearchColumns))
        args := make([]interface{}, 0, len(cc.SearchColumns))
        for _, col := range cc.SearchColumns {
            conds = append(conds, col+" ILIKE ?")
            args = append(args, like)
        }
        base = base.Where(strings.Join(conds, " OR "), args...)
    }
    if cat := cc.category(c); cat != "" {
        base = base.Where(cc.CategoryColumn+" = ?", cat)
    }
    return base
}

// List supports limit, page, all, sort_by, sort_dir, q and, where enabled, category.
func (cc *ContentController[T, In]) List(c *gin.Context) {
    p := parseListParams(c, 50, cc.SortColumns, "order", "ASC")

    var total int64
    if err := cc.filter(c, p.Q).Count(&total).Error; err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }

    listQ := cc.filter(c, p.Q).Order(p.Order()).Order("created_at ASC")
    if !p.All {
        listQ = listQ.Offset(p.Offset()).Limit(p.Limit)
    }
    var rows []T
    if err := listQ.Find(&rows).Error; err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    if rows == nil {
        rows = []T{}
    }

    meta := p.Meta(total)
    if cat := cc.category(c); cat != "" {
        meta["category"] = cat
    }
    c.JSON(http.StatusOK, gin.H{"data": rows, "meta": meta})
}

func (cc *ContentController[T, In]) Get(c *gin.Context) {
    var m T
    if err := cc.DB.Where("id = ?", c.Param("id")).First(&m).Error; err != nil {
        cc.notFound(c)
        return
    }
    c.JSON(http.StatusOK, m)
}

func (cc *ContentController[T, In]) Create(c *gin.Context) {
    var in In
    if err := c.ShouldBindJSON(&in); err != nil {
        respondBindError(c, err)
        return
    }
    var m T
    in.applyTo(&m)
    if err := cc.DB.Create(&m).Error; err != nil {
        cc.writeError(c, err)
        return
    }
    c.JSON(http.StatusCreated, m)
}

// Update replaces every editable field; the id and timestamps are kept.
func (cc *ContentController[T, In]) Update(c *gin.Context) {
    var m T
    if err := cc.DB.Where("id = ?", c.Param("id")).First(&m).Error; err != nil {
        cc.notFound(c)
        return
    }
    var in In
    if err := c.ShouldBindJSON(&in); err != nil {
        respondBindError(c, err)
        return
    }
    in.applyTo(&m)
    if err := cc.DB.Save(&m).Error; err != nil {
        cc.writeError(c, err)
        return
    }
    c.JSON(http.StatusOK, m)
}

func (cc *ContentController[T, In]) Delete(c *gin.Context) {
    res := cc.DB.Where("id = ?", c.Param("id")).Delete(new(T))
    if res.Error != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": res.Error.Error()})
        return
    }
    if res.RowsAffected == 0 {
        cc.notFound(c)
        return
    }
    c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

type reorderRequest struct {
    Items []struct {
        ID    string `json:"id" binding:"required"`
        Order int    `json:"order" binding:"gte=0"`
    } `json:"items" binding:"required,dive"`
}

// Reorder sets sort_order for several rows in one transaction.
func (cc *ContentController[T, In]) Reorder(c *gin.Context) {
    var req reorderRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        respondBindError(c, err)
        return
    }
    err := cc.DB.Transaction(func(tx *gorm.DB) error {
        for _, it := range req.Items {
            res := tx.Model(new(T)).Where("id = ?", it.ID).Update("sort_order", it.Order)
            if res.Error != nil {
                return res.Error
            }
            if res.RowsAffected == 0 {
                return fmt.Errorf("%s %s: %w", cc.Name, it.ID, gorm.ErrRecordNotFound)
            }
        }
        return nil
    })
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
            return
        }
        c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
        return
    }
    c.JSON(http.StatusOK, gin.H{"message": "reordered", "count": len(req.Items)})
}

func (cc *ContentController[T, In]) writeError(c *gin.Context, err error) {
    if errors.Is(err, gorm.ErrDuplicatedKey) {
        c.JSON(http.StatusConflict, gin.H{"error": cc.Name + " already exists"})
        return
    }
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
