package dto

import (
	"time"

	"github.com/google/uuid"

	"swaram_backend/internals/features/academics/students/model"
)

////////////////////////////////////////////////////////////////////////////////
// STUDENTS — DTO
////////////////////////////////////////////////////////////////////////////////

type AddressDTO struct {
	Line1   string  `json:"line_1" validate:"required"`
	Line2   *string `json:"line_2,omitempty"`
	Unit    *string `json:"unit,omitempty"`
	City    string  `json:"city" validate:"required"`
	State   string  `json:"state" validate:"required"`
	Country string  `json:"country" validate:"required"`
	Zipcode string  `json:"zipcode" validate:"required"`
}

type ContactDTO struct {
	ContactName  string          `json:"contact_name" validate:"required"`
	Phone        string          `json:"phone" validate:"required"`
	WhatsappNum  *string         `json:"whatsapp_num,omitempty"`
	Email        *string         `json:"email,omitempty" validate:"omitempty,email"`
	Relationship *model.Relation `json:"relationship,omitempty" validate:"omitempty,oneof=Self Father Mother Guardian"`
	Occupation   *string         `json:"occupation,omitempty"`
}

type StudentCreateDTO struct {
	FirstName     string       `json:"first_name" validate:"required,min=1,max=100"`
	MiddleName    *string      `json:"middle_name,omitempty"`
	LastName      string       `json:"last_name" validate:"required,min=1,max=100"`
	Gender        model.Gender `json:"gender" validate:"required,oneof=Male Female"`
	DateOfBirth   time.Time    `json:"date_of_birth" validate:"required"`
	AdmissionDate *time.Time   `json:"admission_date,omitempty"`
	Address       *AddressDTO  `json:"address,omitempty"`
	Contacts      []ContactDTO `json:"contacts,omitempty" validate:"dive"`
}

type StudentUpdateDTO struct {
	FirstName     *string       `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	MiddleName    *string       `json:"middle_name,omitempty"`
	LastName      *string       `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Gender        *model.Gender `json:"gender,omitempty" validate:"omitempty,oneof=Male Female"`
	DateOfBirth   *time.Time    `json:"date_of_birth,omitempty"`
	AdmissionDate *time.Time    `json:"admission_date,omitempty"`
	FormURL       *string       `json:"form_url,omitempty"`
	Address       *AddressDTO   `json:"address,omitempty"`
}

type StudentResponse struct {
	ID            uuid.UUID      `json:"id"`
	GrNo          int            `json:"gr_no"`
	FirstName     string         `json:"first_name"`
	MiddleName    *string        `json:"middle_name,omitempty"`
	LastName      string         `json:"last_name"`
	FullName      string         `json:"full_name"`
	Gender        model.Gender   `json:"gender"`
	DateOfBirth   time.Time      `json:"date_of_birth"`
	AdmissionDate time.Time      `json:"admission_date"`
	AvatarURL     *string        `json:"avatar_url,omitempty"`
	FormURL       *string        `json:"form_url,omitempty"`
	Address       *model.Address `json:"address,omitempty"`
	Contacts      []ContactView  `json:"contacts,omitempty"`
}

type ContactView struct {
	ContactName  string          `json:"contact_name"`
	Phone        string          `json:"phone"`
	WhatsappNum  *string         `json:"whatsapp_num,omitempty"`
	Email        *string         `json:"email,omitempty"`
	Relationship *model.Relation `json:"relationship,omitempty"`
	Occupation   *string         `json:"occupation,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToStudentResponse(m model.Student) StudentResponse {
	resp := StudentResponse{
		ID:            m.ID,
		GrNo:          m.GrNo,
		FirstName:     m.FirstName,
		MiddleName:    m.MiddleName,
		LastName:      m.LastName,
		FullName:      m.FullName(),
		Gender:        m.Gender,
		DateOfBirth:   m.DateOfBirth,
		AdmissionDate: m.AdmissionDate,
		AvatarURL:     m.AvatarURL,
		FormURL:       m.FormURL,
		Address:       m.Address,
	}
	for _, sc := range m.Contacts {
		view := ContactView{
			Relationship: sc.Relationship,
			Occupation:   sc.Occupation,
		}
		if sc.Contact != nil {
			view.ContactName = sc.Contact.ContactName
			view.Phone = sc.Contact.Phone
			view.WhatsappNum = sc.Contact.WhatsappNum
			view.Email = sc.Contact.Email
		}
		resp.Contacts = append(resp.Contacts, view)
	}
	return resp
}

func ToStudentResponses(list []model.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToStudentResponse(m))
	}
	return out
}

func StudentCreateDTOToModel(d StudentCreateDTO) model.Student {
	m := model.Student{
		FirstName:   d.FirstName,
		MiddleName:  d.MiddleName,
		LastName:    d.LastName,
		Gender:      d.Gender,
		DateOfBirth: d.DateOfBirth,
	}
	if d.AdmissionDate != nil {
		m.AdmissionDate = *d.AdmissionDate
	} else {
		m.AdmissionDate = time.Now()
	}
	return m
}

func AddressDTOToModel(d AddressDTO) model.Address {
	return model.Address{
		Line1:   d.Line1,
		Line2:   d.Line2,
		Unit:    d.Unit,
		City:    d.City,
		State:   d.State,
		Country: d.Country,
		Zipcode: d.Zipcode,
	}
}
