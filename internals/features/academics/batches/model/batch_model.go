package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	coursemodel "swaram_backend/internals/features/academics/courses/model"
)

// DayOfWeek mirrors the days enum in postgres.
type DayOfWeek string

const (
	DayMonday    DayOfWeek = "Monday"
	DayTuesday   DayOfWeek = "Tuesday"
	DayWednesday DayOfWeek = "Wednesday"
	DayThursday  DayOfWeek = "Thursday"
	DayFriday    DayOfWeek = "Friday"
	DaySaturday  DayOfWeek = "Saturday"
	DaySunday    DayOfWeek = "Sunday"
)

// =========================
// Batch
// =========================
type Batch struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name         string     `gorm:"column:name;type:varchar(100);not null" json:"name"`
	AcademicYear *int       `gorm:"column:academic_year" json:"academic_year,omitempty"`
	Description  *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	StartDate    *time.Time `gorm:"column:start_date;type:date" json:"start_date,omitempty"`
	EndDate      *time.Time `gorm:"column:end_date;type:date" json:"end_date,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Schedules   []BatchSchedule   `gorm:"foreignKey:BatchID" json:"schedules,omitempty"`
	YearCourses []BatchYearCourse `gorm:"foreignKey:BatchID" json:"year_courses,omitempty"`
}

func (Batch) TableName() string { return "batches" }

// =========================
// BatchSchedule
// =========================
type BatchSchedule struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BatchID   uuid.UUID `gorm:"column:batch_id;type:uuid;not null;index" json:"batch_id"`
	DayOfWeek DayOfWeek `gorm:"column:day_of_week;type:days;not null" json:"day_of_week"`
	StartTime string    `gorm:"column:start_time;type:varchar(5);not null" json:"start_time"`
	EndTime   string    `gorm:"column:end_time;type:varchar(5);not null" json:"end_time"`
}

func (BatchSchedule) TableName() string { return "batch_schedules" }

// =========================
// BatchYearCourse
// Links a batch to the course year it teaches.
// =========================
type BatchYearCourse struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BatchID    *uuid.UUID `gorm:"column:batch_id;type:uuid;index:uniq_batch_course_year,unique,priority:1" json:"batch_id,omitempty"`
	CourseID   *uuid.UUID `gorm:"column:course_id;type:uuid;index:uniq_batch_course_year,unique,priority:2" json:"course_id,omitempty"`
	YearNumber int        `gorm:"column:year_number;not null;check:year_number>=1;index:uniq_batch_course_year,unique,priority:3" json:"year_number"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Course *coursemodel.Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (BatchYearCourse) TableName() string { return "batch_year_courses" }

func (b *BatchYearCourse) BeforeCreate(tx *gorm.DB) error {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	return nil
}
