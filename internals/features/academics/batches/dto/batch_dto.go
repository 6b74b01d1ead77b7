package dto

import (
	"time"

	"github.com/google/uuid"

	"swaram_backend/internals/features/academics/batches/model"
	helper "swaram_backend/internals/helpers"
)

// =========================
// Request DTOs
// =========================

type ScheduleDTO struct {
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// Validate checks the HH:MM fields beyond what struct tags can express.
func (d ScheduleDTO) Validate() error {
	if _, err := helper.ParseTimeOfDay(d.StartTime); err != nil {
		return err
	}
	if _, err := helper.ParseTimeOfDay(d.EndTime); err != nil {
		return err
	}
	return nil
}

type YearCourseDTO struct {
	CourseID   uuid.UUID `json:"course_id" validate:"required"`
	YearNumber int       `json:"year_number" validate:"required,min=1"`
}

type BatchCreateDTO struct {
	Name         string          `json:"name" validate:"required,min=1,max=100"`
	AcademicYear *int            `json:"academic_year" validate:"omitempty,min=2000,max=2100"`
	Description  *string         `json:"description"`
	StartDate    *string         `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string         `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Schedules    []ScheduleDTO   `json:"schedules" validate:"omitempty,dive"`
	YearCourses  []YearCourseDTO `json:"year_courses" validate:"omitempty,dive"`
}

type BatchUpdateDTO struct {
	Name         *string         `json:"name" validate:"omitempty,min=1,max=100"`
	AcademicYear *int            `json:"academic_year" validate:"omitempty,min=2000,max=2100"`
	Description  *string         `json:"description"`
	StartDate    *string         `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate      *string         `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Schedules    []ScheduleDTO   `json:"schedules" validate:"omitempty,dive"`
	YearCourses  []YearCourseDTO `json:"year_courses" validate:"omitempty,dive"`
}

// =========================
// Response DTOs
// =========================

type ScheduleView struct {
	ID        uuid.UUID `json:"id"`
	DayOfWeek string    `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type YearCourseView struct {
	ID         uuid.UUID `json:"id"`
	CourseID   uuid.UUID `json:"course_id"`
	CourseName string    `json:"course_name,omitempty"`
	YearNumber int       `json:"year_number"`
}

type BatchResponse struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	AcademicYear *int             `json:"academic_year,omitempty"`
	Description  *string          `json:"description,omitempty"`
	StartDate    *string          `json:"start_date,omitempty"`
	EndDate      *string          `json:"end_date,omitempty"`
	Schedules    []ScheduleView   `json:"schedules"`
	YearCourses  []YearCourseView `json:"year_courses"`
	CreatedAt    time.Time        `json:"created_at"`
}

// =========================
// Mappers
// =========================

func ToBatchResponse(m model.Batch) BatchResponse {
	out := BatchResponse{
		ID:           m.ID,
		Name:         m.Name,
		AcademicYear: m.AcademicYear,
		Description:  m.Description,
		Schedules:    make([]ScheduleView, 0, len(m.Schedules)),
		YearCourses:  make([]YearCourseView, 0, len(m.YearCourses)),
		CreatedAt:    m.CreatedAt,
	}
	if m.StartDate != nil {
		s := m.StartDate.Format("2006-01-02")
		out.StartDate = &s
	}
	if m.EndDate != nil {
		s := m.EndDate.Format("2006-01-02")
		out.EndDate = &s
	}
	for _, sc := range m.Schedules {
		out.Schedules = append(out.Schedules, ScheduleView{
			ID:        sc.ID,
			DayOfWeek: string(sc.DayOfWeek),
			StartTime: sc.StartTime,
			EndTime:   sc.EndTime,
		})
	}
	for _, yc := range m.YearCourses {
		v := YearCourseView{ID: yc.ID, YearNumber: yc.YearNumber}
		if yc.CourseID != nil {
			v.CourseID = *yc.CourseID
		}
		if yc.Course != nil {
			v.CourseName = yc.Course.Name
		}
		out.YearCourses = append(out.YearCourses, v)
	}
	return out
}

func ToBatchResponses(list []model.Batch) []BatchResponse {
	out := make([]BatchResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToBatchResponse(m))
	}
	return out
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func BatchCreateDTOToModel(d BatchCreateDTO) model.Batch {
	return model.Batch{
		Name:         d.Name,
		AcademicYear: d.AcademicYear,
		Description:  d.Description,
		StartDate:    parseDate(d.StartDate),
		EndDate:      parseDate(d.EndDate),
	}
}

func ParseDate(s *string) *time.Time { return parseDate(s) }
