package dto

import (
	"time"

	"github.com/google/uuid"

	"swaram_backend/internals/features/finance/fees/model"
)

// =========================
// Request DTOs
// =========================

type RegistrationFeeCreateDTO struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Amount    int       `json:"registeration_fee" validate:"required,gt=0"`
	IsPaid    bool      `json:"is_paid"`
}

type FeeSummaryCreateDTO struct {
	StudentID    uuid.UUID              `json:"student_id" validate:"required"`
	CourseID     uuid.UUID              `json:"course_id" validate:"required"`
	YearNumber   int                    `json:"year_number" validate:"required,min=1"`
	TotalAmount  int                    `json:"total_amount" validate:"required,gt=0"`
	Installments []InstallmentCreateRow `json:"installments" validate:"omitempty,dive"`
}

type InstallmentCreateRow struct {
	Amount  int     `json:"installment_amount" validate:"required,gt=0"`
	DueDate *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

// =========================
// Response DTOs
// =========================

type RegistrationFeeResponse struct {
	ID        uuid.UUID  `json:"id"`
	StudentID *uuid.UUID `json:"student_id,omitempty"`
	Amount    int        `json:"registeration_fee"`
	IsPaid    bool       `json:"is_paid"`
	CreatedAt time.Time  `json:"created_at"`
}

type ReceiptView struct {
	ID            uuid.UUID `json:"id"`
	Amount        int       `json:"amount"`
	AmountInWords string    `json:"amount_in_words"`
	PaymentDate   time.Time `json:"payment_date"`
}

type InstallmentView struct {
	ID            uuid.UUID    `json:"id"`
	FeeSummaryID  uuid.UUID    `json:"fee_summary_id"`
	Amount        int          `json:"installment_amount"`
	PaymentStatus string       `json:"payment_status"`
	DueDate       *string      `json:"due_date,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	Receipt       *ReceiptView `json:"receipt,omitempty"`
}

type FeeSummaryResponse struct {
	ID           uuid.UUID         `json:"id"`
	StudentID    *uuid.UUID        `json:"student_id,omitempty"`
	CourseID     *uuid.UUID        `json:"course_id,omitempty"`
	YearNumber   int               `json:"year_number"`
	TotalAmount  int               `json:"total_amount"`
	Installments []InstallmentView `json:"installments"`
	CreatedAt    time.Time         `json:"created_at"`
}

// =========================
// Mappers
// =========================

func ToRegistrationFeeResponse(m model.RegistrationFee) RegistrationFeeResponse {
	return RegistrationFeeResponse{
		ID:        m.ID,
		StudentID: m.StudentID,
		Amount:    m.Amount,
		IsPaid:    m.IsPaid,
		CreatedAt: m.CreatedAt,
	}
}

func ToRegistrationFeeResponses(list []model.RegistrationFee) []RegistrationFeeResponse {
	out := make([]RegistrationFeeResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToRegistrationFeeResponse(m))
	}
	return out
}

func ToInstallmentView(m model.Installment) InstallmentView {
	v := InstallmentView{
		ID:            m.ID,
		FeeSummaryID:  m.FeeSummaryID,
		Amount:        m.Amount,
		PaymentStatus: string(m.PaymentStatus),
		CreatedAt:     m.CreatedAt,
	}
	if m.DueDate != nil {
		s := m.DueDate.Format("2006-01-02")
		v.DueDate = &s
	}
	if m.Receipt != nil {
		v.Receipt = &ReceiptView{
			ID:            m.Receipt.ID,
			Amount:        m.Receipt.Amount,
			AmountInWords: m.Receipt.AmountInWords,
			PaymentDate:   m.Receipt.PaymentDate,
		}
	}
	return v
}

func ToFeeSummaryResponse(m model.FeeSummary) FeeSummaryResponse {
	out := FeeSummaryResponse{
		ID:           m.ID,
		StudentID:    m.StudentID,
		CourseID:     m.CourseID,
		YearNumber:   m.YearNumber,
		TotalAmount:  m.TotalAmount,
		Installments: make([]InstallmentView, 0, len(m.Installments)),
		CreatedAt:    m.CreatedAt,
	}
	for _, in := range m.Installments {
		out.Installments = append(out.Installments, ToInstallmentView(in))
	}
	return out
}

func ToFeeSummaryResponses(list []model.FeeSummary) []FeeSummaryResponse {
	out := make([]FeeSummaryResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToFeeSummaryResponse(m))
	}
	return out
}
