package routes

import (
    "net/http"
    "strconv"
    "time"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"
    "gorm.io/gorm"

    "github.com/zaqqye/spmb_backend/internal/applicants"
    "github.com/zaqqye/spmb_backend/internal/config"
    "github.com/zaqqye/spmb_backend/internal/controllers"
    "github.com/zaqqye/spmb_backend/internal/formschema"
    "github.com/zaqqye/spmb_backend/internal/inbox"
    "github.com/zaqqye/spmb_backend/internal/middleware"
    "github.com/zaqqye/spmb_backend/internal/models"
    "github.com/zaqqye/spmb_backend/internal/validation"
    "github.com/zaqqye/spmb_backend/internal/ws"
)

// Deps are the long-lived collaborators the routes are built from.
type Deps struct {
    DB         *gorm.DB
    Cfg        *config.Config
    Log        *zap.Logger
    Schemas    *formschema.Store
    Applicants *applicants.Store
    Messages   *inbox.Store
    Columns    *inbox.ColumnStore
    Hub        *ws.AdminHub
}

func ttl(v string, unit, fallback time.Duration) time.Duration {
    n, err := strconv.Atoi(v)
    if err != nil || n <= 0 {
        return fallback
    }
    return time.Duration(n) * unit
}

func Register(r *gin.Engine, d Deps) {
    validation.RegisterGin()
    db, cfg, log := d.DB, d.Cfg, d.Log

    accessTTL := ttl(cfg.AccessTokenTTLMinutes, time.Minute, 15*time.Minute)
    refreshTTL := ttl(cfg.RefreshTokenTTLDays, 24*time.Hour, 30*24*time.Hour)

    authCtrl := &controllers.AuthController{
        DB:            db,
        AccessSecret:  cfg.JWTSecret,
        RefreshSecret: cfg.RefreshJWTSecret,
        AccessTTL:     accessTTL,
        RefreshTTL:    refreshTTL,
        Log:           log,
    }
    userCtrl := &controllers.UserController{DB: db}
    schemaCtrl := &controllers.FormSchemaController{Store: d.Schemas, Log: log}
    registrarCtrl := &controllers.RegistrarController{Store: d.Applicants}
    registrationCtrl := &controllers.RegistrationController{Schemas: d.Schemas, Applicants: d.Applicants, Events: d.Hub, Log: log}
    applicantCtrl := &controllers.ApplicantController{Store: d.Applicants, Events: d.Hub, Log: log}
    contactCtrl := &controllers.ContactController{Store: d.Messages, Events: d.Hub, Log: log}
    messageCtrl := &controllers.MessageController{Store: d.Messages, Columns: d.Columns, Events: d.Hub, Log: log}
    profileCtrl := &controllers.SchoolProfileController{DB: db}
    seoCtrl := &controllers.SEOController{SiteURL: cfg.SiteURL}

    leadership := &controllers.ContentController[models.Leadership, controllers.LeadershipInput]{
        DB: db, Name: "leadership", CategoryColumn: "category",
        SearchColumns: []string{"name", "position", "subject"},
        SortColumns:   map[string]string{"order": "sort_order", "name": "name", "created_at": "created_at"},
    }
    facilities := &controllers.ContentController[models.Facility, controllers.FacilityInput]{
        DB: db, Name: "facility", CategoryColumn: "category",
        SearchColumns: []string{"name", "description"},
        SortColumns:   map[string]string{"order": "sort_order", "name": "name", "created_at": "created_at"},
    }
    programs := &controllers.ContentController[models.Program, controllers.ProgramInput]{
        DB: db, Name: "program", CategoryColumn: "category",
        SearchColumns: []string{"name", "description"},
        SortColumns:   map[string]string{"order": "sort_order", "name": "name", "created_at": "created_at"},
    }
    subjects := &controllers.ContentController[models.Subject, controllers.SubjectInput]{
        DB: db, Name: "subject", CategoryColumn: "category",
        SearchColumns: []string{"name", "description"},
        SortColumns:   map[string]string{"order": "sort_order", "name": "name", "created_at": "created_at"},
    }
    faqs := &controllers.ContentController[models.FAQ, controllers.FAQInput]{
        DB: db, Name: "faq", CategoryColumn: "category",
        SearchColumns: []string{"question", "answer"},
        SortColumns:   map[string]string{"order": "sort_order", "created_at": "created_at"},
    }
    waves := &controllers.ContentController[models.RegistrationWave, controllers.RegistrationWaveInput]{
        DB: db, Name: "registration wave",
        SearchColumns: []string{"name"},
        SortColumns:   map[string]string{"order": "sort_order", "start_date": "start_date", "created_at": "created_at"},
    }
    pathways := &controllers.ContentController[models.RegistrationPathway, controllers.RegistrationPathwayInput]{
        DB: db, Name: "registration pathway",
        SearchColumns: []string{"name", "description"},
        SortColumns:   map[string]string{"order": "sort_order", "name": "name", "created_at": "created_at"},
    }

    r.GET("/healthz", func(c *gin.Context) {
        c.JSON(http.StatusOK, gin.H{"status": "ok"})
    })
    r.GET("/robots.txt", seoCtrl.Robots)
    r.GET("/sitemap.xml", seoCtrl.Sitemap)

    // Public
    auth := r.Group("/api/v1/auth")
    {
        auth.POST("/login", authCtrl.Login)
        auth.POST("/refresh", authCtrl.Refresh)
    }

    pub := r.Group("/api/v1")
    {
        pub.GET("/school/profile", profileCtrl.Get)
        pub.GET("/leadership", leadership.List)
        pub.GET("/leadership/:id", leadership.Get)
        pub.GET("/facilities", facilities.List)
        pub.GET("/facilities/:id", facilities.Get)
        pub.GET("/programs", programs.List)
        pub.GET("/programs/:id", programs.Get)
        pub.GET("/subjects", subjects.List)
        pub.GET("/faqs", faqs.List)
        pub.GET("/registration/waves", waves.List)
        pub.GET("/registration/pathways", pathways.List)

        pub.POST("/contact", contactCtrl.Submit)

        spmb := pub.Group("/spmb")
        spmb.GET("/form-schema", schemaCtrl.GetPublic)
        spmb.GET("/registrar/:id", registrarCtrl.Lookup)
        spmb.POST("/registrations", registrationCtrl.Submit)
    }

    // Protected
    authMW := middleware.AuthMiddleware(middleware.DBUserLookup(db), middleware.AuthConfig{JWTSecret: cfg.JWTSecret})
    api := r.Group("/api/v1", authMW)
    {
        api.GET("/auth/me", authCtrl.Me)
        api.POST("/auth/logout", authCtrl.Logout)

        // Content editing (editor + admin)
        content := api.Group("/admin", middleware.RequireRoles(models.RoleEditor))
        {
            content.PUT("/school/profile", profileCtrl.Update)
            crud(content, "/leadership", leadership)
            crud(content, "/facilities", facilities)
            crud(content, "/programs", programs)
            crud(content, "/subjects", subjects)
            crud(content, "/faqs", faqs)
            crud(content, "/registration/waves", waves)
            crud(content, "/registration/pathways", pathways)
        }

        // Admin-only
        admin := api.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
        {
            admin.GET("/users", userCtrl.List)
            admin.POST("/users", userCtrl.Create)
            admin.GET("/users/:user_id", userCtrl.Get)
            admin.PUT("/users/:user_id", userCtrl.Update)
            admin.DELETE("/users/:user_id", userCtrl.Delete)

            admin.GET("/form-schema", schemaCtrl.Get)
            admin.PUT("/form-schema", schemaCtrl.Update)
            admin.POST("/form-schema/reset", schemaCtrl.Reset)

            admin.GET("/applicants", applicantCtrl.List)
            admin.GET("/applicants/export", applicantCtrl.Export)
            admin.GET("/applicants/:id", applicantCtrl.Get)
            admin.POST("/applicants/:id/approve", applicantCtrl.Approve)
            admin.POST("/applicants/:id/decline", applicantCtrl.Decline)
            admin.DELETE("/applicants/:id", applicantCtrl.Delete)

            admin.GET("/messages", messageCtrl.List)
            admin.GET("/messages/columns", messageCtrl.GetColumns)
            admin.POST("/messages/columns/:key/toggle", messageCtrl.ToggleColumn)
            admin.GET("/messages/:id", messageCtrl.Get)
            admin.POST("/messages/:id/toggle-read", messageCtrl.ToggleRead)
            admin.DELETE("/messages/:id", messageCtrl.Delete)

            admin.GET("/ws", ws.AdminHandler(d.Hub))
        }
    }
}

type crudHandlers interface {
    List(*gin.Context)
    Get(*gin.Context)
    Create(*gin.Context)
    Update(*gin.Context)
    Delete(*gin.Context)
    Reorder(*gin.Context)
}

func crud(g *gin.RouterGroup, path string, h crudHandlers) {
    g.GET(path, h.List)
    g.POST(path, h.Create)
    g.POST(path+"/reorder", h.Reorder)
    g.GET(path+"/:id", h.Get)
    g.PUT(path+"/:id", h.Update)
    g.DELETE(path+"/:id", h.Delete)
}
