package controllers

import (
    "encoding/json"
    "time"

    "gorm.io/datatypes"

    "github.com/zaqqye/spmb_backend/internal/models"
)

type LeadershipInput struct {
    Name     string `json:"name" binding:"notblank"`
    Position string `json:"position" binding:"notblank"`
    Category string `json:"category" binding:"required,oneof=leadership yasma class_teacher teacher"`
    Subject  string `json:"subject"`
    Class    string `json:"class"`
    Order    int    `json:"order"`
}

func (in LeadershipInput) applyTo(m *models.Leadership) {
    m.Name = in.Name
    m.Position = in.Position
    m.Category = in.Category
    m.Subject = in.Subject
    m.Class = in.Class
    m.Order = in.Order
}

type FacilityInput struct {
    Name        string `json:"name" binding:"notblank"`
    Description string `json:"description" binding:"notblank"`
    Category    string `json:"category" binding:"required,oneof=academic religious sports support"`
    Icon        string `json:"icon" binding:"notblank"`
    Order       int    `json:"order"`
}

func (in FacilityInput) applyTo(m *models.Facility) {
    m.Name = in.Name
    m.Description = in.Description
    m.Category = in.Category
    m.Icon = in.Icon
    m.Order = in.Order
}

type ProgramInput struct {
    Name        string `json:"name" binding:"notblank"`
    Description string `json:"description" binding:"notblank"`
    Category    string `json:"category" binding:"required,oneof=tahfidz tahsin activities habits"`
    Icon        string `json:"icon" binding:"notblank"`
    Order       int    `json:"order"`
}

func (in ProgramInput) applyTo(m *models.Program) {
    m.Name = in.Name
    m.Description = in.Description
    m.Category = in.Category
    m.Icon = in.Icon
    m.Order = in.Order
}

type SubjectInput struct {
    Name        string `json:"name" binding:"notblank"`
    Category    string `json:"category" binding:"required,oneof=core islamic local"`
    Description string `json:"description"`
    Order       int    `json:"order"`
}

func (in SubjectInput) applyTo(m *models.Subject) {
    m.Name = in.Name
    m.Category = in.Category
    m.Description = in.Description
    m.Order = in.Order
}

type FAQInput struct {
    Question string `json:"question" binding:"notblank"`
    Answer   string `json:"answer" binding:"notblank"`
    Category string `json:"category" binding:"required,oneof=general registration academic facilities"`
    Order    int    `json:"order"`
}

func (in FAQInput) applyTo(m *models.FAQ) {
    m.Question = in.Question
    m.Answer = in.Answer
    m.Category = in.Category
    m.Order = in.Order
}

type RegistrationWaveInput struct {
    Name      string    `json:"name" binding:"notblank"`
    StartDate time.Time `json:"start_date" binding:"required"`
    EndDate   time.Time `json:"end_date" binding:"required,gtfield=StartDate"`
    IsActive  bool      `json:"is_active"`
    Order     int       `json:"order"`
}

func (in RegistrationWaveInput) applyTo(m *models.RegistrationWave) {
    m.Name = in.Name
    m.StartDate = in.StartDate
    m.EndDate = in.EndDate
    m.IsActive = in.IsActive
    m.Order = in.Order
}

type RegistrationPathwayInput struct {
    Name         string   `json:"name" binding:"notblank"`
    Description  string   `json:"description" binding:"notblank"`
    Requirements []string `json:"requirements" binding:"required,dive,notblank"`
    BaseFee      float64  `json:"base_fee" binding:"gte=0"`
    Discount     float64  `json:"discount" binding:"gte=0,lte=100"`
    Order        int      `json:"order"`
}

func (in RegistrationPathwayInput) applyTo(m *models.RegistrationPathway) {
    m.Name = in.Name
    m.Description = in.Description
    m.Requirements = jsonList(in.Requirements)
    m.BaseFee = in.BaseFee
    m.Discount = in.Discount
    m.Order = in.Order
}

func jsonList(items []string) datatypes.JSON {
    if items == nil {
        items = []string{}
    }
    b, _ := json.Marshal(items)
    return datatypes.JSON(b)
}
