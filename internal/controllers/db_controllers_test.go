package controllers

import (
    "database/sql/driver"
    "net/http"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"
    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "go.uber.org/zap"
    "gorm.io/driver/postgres"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/zaqqye/spmb_backend/internal/middleware"
    "github.com/zaqqye/spmb_backend/internal/models"
    "github.com/zaqqye/spmb_backend/internal/utils"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
    t.Helper()
    db, mock, err := sqlmock.New()
    require.NoError(t, err)
    t.Cleanup(func() { db.Close() })

    gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
        SkipDefaultTransaction: true,
        TranslateError:         true,
        Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
    })
    require.NoError(t, err)
    return gdb, mock
}

// capturedString records the string argument it is matched against.
type capturedString struct{ value *string }

func (a capturedString) Match(v driver.Value) bool {
    s, ok := v.(string)
    if ok {
        *a.value = s
    }
    return ok
}

var userColumns = []string{"id", "user_id", "full_name", "email", "password", "role", "active", "last_login", "created_at", "updated_at"}

func userRow(t *testing.T, id uint, userID, email, password, role string) *sqlmock.Rows {
    t.Helper()
    hashed, err := utils.HashPassword(password)
    require.NoError(t, err)
    now := time.Now()
    return sqlmock.NewRows(userColumns).AddRow(int64(id), userID, "Admin Sekolah", email, hashed, role, true, nil, now, now)
}

// withUser stands in for AuthMiddleware on routes that read the caller.
func withUser(u models.User) gin.HandlerFunc {
    return func(c *gin.Context) {
        c.Set(middleware.UserKey, u)
        c.Next()
    }
}

const (
    accessSecret  = "access-secret"
    refreshSecret = "refresh-secret"
)

func newAuthRouter(db *gorm.DB) *gin.Engine {
    ctrl := &AuthController{
        DB:            db,
        AccessSecret:  accessSecret,
        RefreshSecret: refreshSecret,
        AccessTTL:     15 * time.Minute,
        RefreshTTL:    24 * time.Hour,
        Log:           zap.NewNop(),
    }
    r := gin.New()
    r.POST("/auth/login", ctrl.Login)
    r.POST("/auth/refresh", ctrl.Refresh)
    r.POST("/auth/logout", ctrl.Logout)
    return r
}

func signRefresh(t *testing.T, jti string, ttl time.Duration) string {
    t.Helper()
    now := time.Now()
    tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
        Issuer:    tokenIssuer,
        Subject:   "1",
        ID:        jti,
        IssuedAt:  jwt.NewNumericDate(now),
        ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
    }).SignedString([]byte(refreshSecret))
    require.NoError(t, err)
    return tok
}

func TestAuth_LoginIssuesTokens(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newAuthRouter(db)

    mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
        WillReturnRows(userRow(t, 1, "u-1", "admin@example.com", "rahasia123", models.RoleAdmin))
    mock.ExpectQuery(`INSERT INTO "refresh_tokens"`).
        WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
    mock.ExpectExec(`UPDATE "users" SET "last_login"`).
        WillReturnResult(sqlmock.NewResult(0, 1))

    w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "admin@example.com", "password": "rahasia123"})
    require.Equal(t, http.StatusOK, w.Code, w.Body.String())
    body := decode(t, w)
    assert.Equal(t, "admin", body["role"])
    assert.NotEmpty(t, body["refresh_token"])

    var claims middleware.Claims
    _, err := jwt.ParseWithClaims(body["access_token"].(string), &claims, func(*jwt.Token) (interface{}, error) {
        return []byte(accessSecret), nil
    })
    require.NoError(t, err)
    assert.Equal(t, "u-1", claims.UserID)
    assert.Equal(t, models.RoleAdmin, claims.Role)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuth_LoginWrongPassword(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newAuthRouter(db)

    mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
        WillReturnRows(userRow(t, 1, "u-1", "admin@example.com", "rahasia123", models.RoleAdmin))

    w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "admin@example.com", "password": "salah"})
    assert.Equal(t, http.StatusUnauthorized, w.Code)
    assert.NoError(t, mock.ExpectationsWereMet(), "no token is stored")
}

var refreshColumns = []string{"id", "token_id", "user_id_ref", "token_hash", "expires_at", "revoked_at", "replaced_by_token_id", "created_at"}

func TestAuth_RefreshRotatesToken(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newAuthRouter(db)
    presented := signRefresh(t, "old-jti", time.Hour)
    now := time.Now()

    mock.ExpectQuery(`SELECT \* FROM "refresh_tokens" WHERE token_hash = \$1`).
        WithArgs(utils.HashToken(presented), sqlmock.AnyArg()).
        WillReturnRows(sqlmock.NewRows(refreshColumns).
            AddRow(7, "old-jti", 1, utils.HashToken(presented), now.Add(time.Hour), nil, nil, now))
    mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"."id" = \$1`).
        WillReturnRows(userRow(t, 1, "u-1", "admin@example.com", "rahasia123", models.RoleAdmin))
    mock.ExpectQuery(`INSERT INTO "refresh_tokens"`).
        WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
    var replacedBy string
    mock.ExpectExec(`UPDATE "refresh_tokens" SET "replaced_by_token_id"=\$1,"revoked_at"=\$2`).
        WithArgs(capturedString{&replacedBy}, sqlmock.AnyArg(), sqlmock.AnyArg()).
        WillReturnResult(sqlmock.NewResult(0, 1))

    w := doJSON(t, r, http.MethodPost, "/auth/refresh", gin.H{"refresh_token": presented})
    require.Equal(t, http.StatusOK, w.Code, w.Body.String())
    body := decode(t, w)
    require.NotEqual(t, presented, body["refresh_token"])

    var next jwt.RegisteredClaims
    _, err := jwt.ParseWithClaims(body["refresh_token"].(string), &next, func(*jwt.Token) (interface{}, error) {
        return []byte(refreshSecret), nil
    })
    require.NoError(t, err)
    assert.Equal(t, next.ID, replacedBy, "old token points at its replacement")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuth_RefreshRejectsRevokedToken(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newAuthRouter(db)
    presented := signRefresh(t, "old-jti", time.Hour)
    now := time.Now()

    mock.ExpectQuery(`SELECT \* FROM "refresh_tokens" WHERE token_hash = \$1`).
        WillReturnRows(sqlmock.NewRows(refreshColumns).
            AddRow(7, "old-jti", 1, utils.HashToken(presented), now.Add(time.Hour), now.Add(-time.Minute), "newer-jti", now))

    w := doJSON(t, r, http.MethodPost, "/auth/refresh", gin.H{"refresh_token": presented})
    assert.Equal(t, http.StatusUnauthorized, w.Code)
    assert.NoError(t, mock.ExpectationsWereMet(), "no new token is issued")
}

func TestAuth_RefreshRejectsForeignSignature(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newAuthRouter(db)
    forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
        ID:        "x",
        ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
    }).SignedString([]byte("other-secret"))
    require.NoError(t, err)

    w := doJSON(t, r, http.MethodPost, "/auth/refresh", gin.H{"refresh_token": forged})
    assert.Equal(t, http.StatusUnauthorized, w.Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuth_LogoutRevokesPresentedToken(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newAuthRouter(db)

    mock.ExpectExec(`UPDATE "refresh_tokens" SET "revoked_at"=\$1 WHERE`).
        WithArgs(sqlmock.AnyArg(), utils.HashToken("the-refresh-token")).
        WillReturnResult(sqlmock.NewResult(0, 1))

    w := doJSON(t, r, http.MethodPost, "/auth/logout", gin.H{"refresh_token": "the-refresh-token"})
    assert.Equal(t, http.StatusOK, w.Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func newUserRouter(db *gorm.DB, me models.User) *gin.Engine {
    ctrl := &UserController{DB: db}
    r := gin.New()
    g := r.Group("/users", withUser(me))
    g.GET("", ctrl.List)
    g.POST("", ctrl.Create)
    g.GET("/:user_id", ctrl.Get)
    g.PUT("/:user_id", ctrl.Update)
    g.DELETE("/:user_id", ctrl.Delete)
    return r
}

var adminUser = models.User{ID: 1, UserID: "u-admin", Email: "admin@example.com", Role: models.RoleAdmin, Active: true}

func TestUsers_CreateDefaultsToEditor(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newUserRouter(db, adminUser)

    mock.ExpectQuery(`INSERT INTO "users"`).
        WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

    w := doJSON(t, r, http.MethodPost, "/users", gin.H{
        "full_name": " Guru Editor ", "email": "Editor@Example.com", "password": "rahasia1",
    })
    require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
    body := decode(t, w)
    assert.Equal(t, models.RoleEditor, body["role"])
    assert.Equal(t, "editor@example.com", body["email"])
    assert.Equal(t, "Guru Editor", body["full_name"])
    assert.Equal(t, true, body["active"])
    assert.NotContains(t, body, "password")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsers_CreateDuplicateEmail(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newUserRouter(db, adminUser)

    mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(gorm.ErrDuplicatedKey)

    w := doJSON(t, r, http.MethodPost, "/users", gin.H{
        "full_name": "Guru", "email": "admin@example.com", "password": "rahasia1",
    })
    assert.Equal(t, http.StatusConflict, w.Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsers_CreateValidation(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newUserRouter(db, adminUser)

    w := doJSON(t, r, http.MethodPost, "/users", gin.H{"full_name": "Guru", "password": "123", "role": "siswa"})
    require.Equal(t, http.StatusUnprocessableEntity, w.Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsers_ListRejectsUnknownRole(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newUserRouter(db, adminUser)

    assert.Equal(t, http.StatusBadRequest, doJSON(t, r, http.MethodGet, "/users?role=siswa", nil).Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsers_CannotDeleteOwnAccount(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newUserRouter(db, adminUser)

    w := doJSON(t, r, http.MethodDelete, "/users/u-admin", nil)
    assert.Equal(t, http.StatusBadRequest, w.Code)
    assert.NoError(t, mock.ExpectationsWereMet(), "nothing is deleted")
}

func TestUsers_DeleteRemovesTokens(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newUserRouter(db, adminUser)

    mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_id = \$1`).
        WillReturnRows(userRow(t, 9, "u-editor", "editor@example.com", "rahasia1", models.RoleEditor))
    mock.ExpectBegin()
    mock.ExpectExec(`DELETE FROM "refresh_tokens" WHERE user_id_ref = \$1`).
        WillReturnResult(sqlmock.NewResult(0, 2))
    mock.ExpectExec(`DELETE FROM "users"`).
        WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectCommit()

    w := doJSON(t, r, http.MethodDelete, "/users/u-editor", nil)
    assert.Equal(t, http.StatusOK, w.Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsers_GetMissing(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newUserRouter(db, adminUser)

    mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_id = \$1`).
        WillReturnRows(sqlmock.NewRows(userColumns))

    assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, "/users/u-none", nil).Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

var facilityColumns = []string{"id", "name", "description", "category", "icon", "sort_order", "created_at", "updated_at"}

func newFacilityRouter(db *gorm.DB) *gin.Engine {
    ctrl := &ContentController[models.Facility, FacilityInput]{
        DB: db, Name: "facility", CategoryColumn: "category",
        SearchColumns: []string{"name", "description"},
        SortColumns:   map[string]string{"order": "sort_order", "name": "name", "created_at": "created_at"},
    }
    r := gin.New()
    r.GET("/facilities", ctrl.List)
    r.POST("/facilities", ctrl.Create)
    r.POST("/facilities/reorder", ctrl.Reorder)
    r.GET("/facilities/:id", ctrl.Get)
    r.PUT("/facilities/:id", ctrl.Update)
    r.DELETE("/facilities/:id", ctrl.Delete)
    return r
}

func TestContent_ListFiltersByCategory(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newFacilityRouter(db)
    now := time.Now()

    mock.ExpectQuery(`SELECT count\(\*\) FROM "facilities" WHERE category = \$1`).
        WithArgs("sports").
        WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
    mock.ExpectQuery(`SELECT \* FROM "facilities" WHERE category = \$1 ORDER BY sort_order ASC`).
        WillReturnRows(sqlmock.NewRows(facilityColumns).
            AddRow("f-1", "Lapangan Futsal", "Lapangan serbaguna", "sports", "ball", 1, now, now))

    w := doJSON(t, r, http.MethodGet, "/facilities?category=sports", nil)
    require.Equal(t, http.StatusOK, w.Code, w.Body.String())
    body := decode(t, w)
    assert.Equal(t, []string{"f-1"}, dataIDs(t, body))
    meta := body["meta"].(map[string]any)
    assert.Equal(t, "sports", meta["category"])
    assert.Equal(t, float64(1), meta["total"])
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContent_CategoryIgnoredWithoutColumn(t *testing.T) {
    db, mock := setupMockDB(t)
    ctrl := &ContentController[models.RegistrationWave, RegistrationWaveInput]{
        DB: db, Name: "registration wave",
        SortColumns: map[string]string{"order": "sort_order"},
    }
    r := gin.New()
    r.GET("/waves", ctrl.List)

    mock.ExpectQuery(`^SELECT count\(\*\) FROM "registration_waves"$`).
        WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
    mock.ExpectQuery(`^SELECT \* FROM "registration_waves" ORDER BY sort_order ASC`).
        WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

    w := doJSON(t, r, http.MethodGet, "/waves?category=x", nil)
    require.Equal(t, http.StatusOK, w.Code, w.Body.String())
    body := decode(t, w)
    assert.Empty(t, body["data"])
    assert.NotContains(t, body["meta"], "category")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContent_GetMissing(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newFacilityRouter(db)

    mock.ExpectQuery(`SELECT \* FROM "facilities" WHERE id = \$1`).
        WillReturnRows(sqlmock.NewRows(facilityColumns))

    assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, "/facilities/f-9", nil).Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContent_Create(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newFacilityRouter(db)

    mock.ExpectExec(`INSERT INTO "facilities"`).WillReturnResult(sqlmock.NewResult(0, 1))

    w := doJSON(t, r, http.MethodPost, "/facilities", gin.H{
        "name": "Perpustakaan", "description": "Koleksi buku", "category": "academic", "icon": "book", "order": 2,
    })
    require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
    body := decode(t, w)
    assert.NotEmpty(t, body["id"])
    assert.Equal(t, "academic", body["category"])
    assert.Equal(t, float64(2), body["order"])
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContent_UpdateReplacesFields(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newFacilityRouter(db)
    now := time.Now()

    mock.ExpectQuery(`SELECT \* FROM "facilities" WHERE id = \$1`).
        WillReturnRows(sqlmock.NewRows(facilityColumns).
            AddRow("f-1", "Masjid", "Lama", "religious", "mosque", 3, now, now))
    mock.ExpectExec(`UPDATE "facilities" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

    w := doJSON(t, r, http.MethodPut, "/facilities/f-1", gin.H{
        "name": "Masjid Sekolah", "description": "Baru", "category": "religious", "icon": "mosque",
    })
    require.Equal(t, http.StatusOK, w.Code, w.Body.String())
    body := decode(t, w)
    assert.Equal(t, "f-1", body["id"])
    assert.Equal(t, "Masjid Sekolah", body["name"])
    assert.Equal(t, float64(0), body["order"], "omitted fields are replaced, not kept")
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContent_Delete(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newFacilityRouter(db)

    mock.ExpectExec(`DELETE FROM "facilities" WHERE id = \$1`).
        WithArgs("f-1").
        WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectExec(`DELETE FROM "facilities" WHERE id = \$1`).
        WithArgs("f-1").
        WillReturnResult(sqlmock.NewResult(0, 0))

    assert.Equal(t, http.StatusOK, doJSON(t, r, http.MethodDelete, "/facilities/f-1", nil).Code)
    assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodDelete, "/facilities/f-1", nil).Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContent_Reorder(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newFacilityRouter(db)

    mock.ExpectBegin()
    mock.ExpectExec(`UPDATE "facilities" SET "sort_order"=\$1`).WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectExec(`UPDATE "facilities" SET "sort_order"=\$1`).WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectCommit()

    w := doJSON(t, r, http.MethodPost, "/facilities/reorder", gin.H{
        "items": []gin.H{{"id": "f-1", "order": 2}, {"id": "f-2", "order": 1}},
    })
    require.Equal(t, http.StatusOK, w.Code, w.Body.String())
    assert.Equal(t, float64(2), decode(t, w)["count"])
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContent_ReorderUnknownIDRollsBack(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newFacilityRouter(db)

    mock.ExpectBegin()
    mock.ExpectExec(`UPDATE "facilities" SET "sort_order"=\$1`).WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectExec(`UPDATE "facilities" SET "sort_order"=\$1`).WillReturnResult(sqlmock.NewResult(0, 0))
    mock.ExpectRollback()

    w := doJSON(t, r, http.MethodPost, "/facilities/reorder", gin.H{
        "items": []gin.H{{"id": "f-1", "order": 2}, {"id": "f-404", "order": 1}},
    })
    assert.Equal(t, http.StatusNotFound, w.Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}

var profileColumns = []string{"id", "name", "address", "phone", "email", "created_at", "updated_at"}

func newProfileRouter(db *gorm.DB) *gin.Engine {
    ctrl := &SchoolProfileController{DB: db}
    r := gin.New()
    r.GET("/profile", ctrl.Get)
    r.PUT("/profile", ctrl.Update)
    return r
}

func TestSchoolProfile_CreatedOnFirstUpdate(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newProfileRouter(db)

    mock.ExpectQuery(`SELECT \* FROM "school_profiles" ORDER BY created_at DESC`).
        WillReturnRows(sqlmock.NewRows(profileColumns))
    mock.ExpectExec(`INSERT INTO "school_profiles"`).WillReturnResult(sqlmock.NewResult(0, 1))

    w := doJSON(t, r, http.MethodPut, "/profile", gin.H{"name": "SMP IT Contoh", "phone": "021-000"})
    require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
    body := decode(t, w)
    assert.NotEmpty(t, body["id"])
    assert.Equal(t, "SMP IT Contoh", body["name"])
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchoolProfile_FirstUpdateNeedsName(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newProfileRouter(db)

    mock.ExpectQuery(`SELECT \* FROM "school_profiles" ORDER BY created_at DESC`).
        WillReturnRows(sqlmock.NewRows(profileColumns))

    w := doJSON(t, r, http.MethodPut, "/profile", gin.H{"phone": "021-000"})
    assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
    assert.NoError(t, mock.ExpectationsWereMet(), "nothing is inserted")
}

func TestSchoolProfile_PartialUpdateKeepsOtherFields(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newProfileRouter(db)
    now := time.Now()

    mock.ExpectQuery(`SELECT \* FROM "school_profiles" ORDER BY created_at DESC`).
        WillReturnRows(sqlmock.NewRows(profileColumns).
            AddRow("p-1", "SMP IT Contoh", "Jl. Contoh No. 1", "021-111", "info@example.sch.id", now, now))
    mock.ExpectExec(`UPDATE "school_profiles" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

    w := doJSON(t, r, http.MethodPut, "/profile", gin.H{"phone": "021-222"})
    require.Equal(t, http.StatusOK, w.Code, w.Body.String())
    body := decode(t, w)
    assert.Equal(t, "p-1", body["id"])
    assert.Equal(t, "021-222", body["phone"])
    assert.Equal(t, "SMP IT Contoh", body["name"])
    assert.Equal(t, "Jl. Contoh No. 1", body["address"])
    assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchoolProfile_GetMissing(t *testing.T) {
    db, mock := setupMockDB(t)
    r := newProfileRouter(db)

    mock.ExpectQuery(`SELECT \* FROM "school_profiles"`).
        WillReturnRows(sqlmock.NewRows(profileColumns))

    assert.Equal(t, http.StatusNotFound, doJSON(t, r, http.MethodGet, "/profile", nil).Code)
    assert.NoError(t, mock.ExpectationsWereMet())
}
