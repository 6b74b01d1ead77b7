package model

import (
	"time"

	"github.com/google/uuid"
)

// =========================================================
// MODEL courses
// =========================================================

type Course struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description   *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	DurationYears int       `gorm:"column:duration_years;not null;default:1;check:duration_years>=1" json:"duration_years"`
	CreatedAt     time.Time `gorm:"column:created_at;not null;default:now()" json:"created_at"`

	FeeStructures []FeeStructure `gorm:"foreignKey:CourseID" json:"fee_structures,omitempty"`
}

func (Course) TableName() string { return "courses" }

// =========================================================
// MODEL fee_structures — one row per course year
// =========================================================

type FeeStructure struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CourseID   *uuid.UUID `gorm:"column:course_id;type:uuid;index;index:uniq_course_year,unique,priority:1" json:"course_id,omitempty"`
	YearNumber int        `gorm:"column:year_number;not null;check:year_number>=1;index:uniq_course_year,unique,priority:2" json:"year_number"`
	TotalFee   int        `gorm:"column:total_fee;not null;check:total_fee>0" json:"total_fee"`
	CreatedAt  time.Time  `gorm:"column:created_at;not null;default:now()" json:"created_at"`

	Course *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}

func (FeeStructure) TableName() string { return "fee_structures" }
