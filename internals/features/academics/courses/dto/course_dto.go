package dto

import (
	"time"

	"github.com/google/uuid"

	"swaram_backend/internals/features/academics/courses/model"
)

////////////////////////////////////////////////////////////////////////////////
// COURSES — DTO
////////////////////////////////////////////////////////////////////////////////

type CourseCreateDTO struct {
	Name          string  `json:"name" validate:"required,min=1,max=100"`
	Description   *string `json:"description,omitempty"`
	DurationYears int     `json:"duration_years" validate:"required,min=1,max=10"`
}

type CourseUpdateDTO struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string `json:"description,omitempty"`
	DurationYears *int    `json:"duration_years,omitempty" validate:"omitempty,min=1,max=10"`
}

type CourseResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Description   *string               `json:"description,omitempty"`
	DurationYears int                   `json:"duration_years"`
	CreatedAt     time.Time             `json:"created_at"`
	FeeStructures []FeeStructureView    `json:"fee_structures,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// FEE STRUCTURES — DTO
// The console edits all year rows for a course at once; every amount must be
// a positive value before the upsert goes through.
////////////////////////////////////////////////////////////////////////////////

type FeeStructureUpsertRow struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	YearNumber int        `json:"year_number" validate:"required,min=1"`
	TotalFee   int        `json:"total_fee" validate:"required,gt=0"`
}

type FeeStructureUpsertDTO struct {
	Rows []FeeStructureUpsertRow `json:"rows" validate:"required,min=1,dive"`
}

type FeeStructureView struct {
	ID         uuid.UUID `json:"id"`
	YearNumber int       `json:"year_number"`
	TotalFee   int       `json:"total_fee"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToCourseResponse(m model.Course) CourseResponse {
	resp := CourseResponse{
		ID:            m.ID,
		Name:          m.Name,
		Description:   m.Description,
		DurationYears: m.DurationYears,
		CreatedAt:     m.CreatedAt,
	}
	for _, fs := range m.FeeStructures {
		resp.FeeStructures = append(resp.FeeStructures, FeeStructureView{
			ID:         fs.ID,
			YearNumber: fs.YearNumber,
			TotalFee:   fs.TotalFee,
		})
	}
	return resp
}

func ToCourseResponses(list []model.Course) []CourseResponse {
	out := make([]CourseResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToCourseResponse(m))
	}
	return out
}

func CourseCreateDTOToModel(d CourseCreateDTO) model.Course {
	return model.Course{
		Name:          d.Name,
		Description:   d.Description,
		DurationYears: d.DurationYears,
	}
}
