package database

import (
    "encoding/json"
    "time"

    "github.com/google/uuid"
    "go.uber.org/zap"
    "gorm.io/datatypes"
    "gorm.io/gorm"

    "github.com/zaqqye/spmb_backend/internal/config"
    "github.com/zaqqye/spmb_backend/internal/models"
    "github.com/zaqqye/spmb_backend/internal/utils"
)

func SeedAdmin(db *gorm.DB, cfg *config.Config, log *zap.Logger) error {
    var count int64
    if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
        return err
    }
    if count > 0 {
        return nil
    }

    email := cfg.AdminEmail
    if email == "" {
        email = "admin@example.com"
    }
    fullName := cfg.AdminFullName
    if fullName == "" {
        fullName = "Administrator"
    }
    password := cfg.AdminPassword
    if password == "" {
        password = "admin123"
    }
    hashed, err := utils.HashPassword(password)
    if err != nil {
        return err
    }

    admin := models.User{
        UserID:   uuid.NewString(),
        FullName: fullName,
        Email:    email,
        Password: hashed,
        Role:     models.RoleAdmin,
        Active:   true,
    }
    if err := db.Create(&admin).Error; err != nil {
        return err
    }
    log.Info("seeded initial admin", zap.String("email", email))
    return nil
}

func jsonStrings(items ...string) datatypes.JSON {
    b, _ := json.Marshal(items)
    return datatypes.JSON(b)
}

// SeedContent fills the public pages with starter content. Each table is
// only seeded while empty.
func SeedContent(db *gorm.DB, log *zap.Logger) error {
    year := time.Now().Year()
    seeds := []struct {
        name  string
        model interface{}
        rows  interface{}
    }{
        {"school_profiles", &models.SchoolProfile{}, &[]models.SchoolProfile{{
            Name:          "SMP IT Masjid Syuhada",
            Address:       "Jl. Pendidikan No. 1, Yogyakarta",
            Phone:         "(0274) 000 000",
            Email:         "info@smpitmasjidsyuhada.sch.id",
            Website:       "https://www.smpitmasjidsyuhada.sch.id",
            Established:   2003,
            Accreditation: "A",
            Vision:        "Terwujudnya generasi Qur'ani yang berakhlak mulia, cerdas, dan berprestasi.",
            Mission: jsonStrings(
                "Menyelenggarakan pendidikan berbasis nilai-nilai Islam",
                "Membiasakan tilawah dan hafalan Al-Qur'an",
                "Mengembangkan potensi akademik dan non-akademik siswa",
            ),
            Goals:      jsonStrings("Lulusan hafal minimal 3 juz", "Lulusan siap melanjutkan ke jenjang berikutnya"),
            Indicators: jsonStrings("Shalat berjamaah tepat waktu", "Tilawah harian"),
            History:    "Didirikan oleh yayasan sebagai kelanjutan pendidikan dasar Islam terpadu.",
        }}},
        {"registration_waves", &models.RegistrationWave{}, &[]models.RegistrationWave{
            {Name: "Gelombang 1", StartDate: time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(year, 2, 28, 0, 0, 0, 0, time.UTC), IsActive: true, Order: 1},
            {Name: "Gelombang 2", StartDate: time.Date(year, 3, 1, 0, 0, 0, 0, time.UTC), EndDate: time.Date(year, 4, 30, 0, 0, 0, 0, time.UTC), Order: 2},
        }},
        {"registration_pathways", &models.RegistrationPathway{}, &[]models.RegistrationPathway{
            {Name: "Reguler", Description: "Jalur pendaftaran umum dengan tes seleksi.", Requirements: jsonStrings("Fotokopi rapor kelas 4-6", "Akta kelahiran", "Kartu keluarga"), BaseFee: 5000000, Order: 1},
            {Name: "Prestasi", Description: "Jalur bagi calon siswa dengan prestasi akademik atau hafalan.", Requirements: jsonStrings("Sertifikat prestasi", "Fotokopi rapor kelas 4-6"), BaseFee: 5000000, Discount: 50, Order: 2},
        }},
        {"faqs", &models.FAQ{}, &[]models.FAQ{
            {Question: "Kapan pendaftaran dibuka?", Answer: "Pendaftaran gelombang 1 dibuka pada bulan Januari.", Category: "registration", Order: 1},
            {Question: "Apakah tersedia asrama?", Answer: "Saat ini sekolah belum menyediakan asrama.", Category: "facilities", Order: 2},
            {Question: "Bagaimana cara mengecek status pendaftaran?", Answer: "Gunakan halaman Cek Status dengan nomor pendaftaran Anda.", Category: "general", Order: 3},
        }},
    }

    for _, s := range seeds {
        var count int64
        if err := db.Model(s.model).Count(&count).Error; err != nil {
            return err
        }
        if count > 0 {
            continue
        }
        if err := db.Create(s.rows).Error; err != nil {
            return err
        }
        log.Info("seeded content", zap.String("table", s.name))
    }
    return nil
}
