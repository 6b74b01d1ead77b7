package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentStatus mirrors the payment_status enum in postgres.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentCompleted PaymentStatus = "Completed"
	PaymentCancelled PaymentStatus = "Cancelled"
)

// =========================
// RegistrationFee
// Table name and the registeration_fee column keep the historical
// spelling; the rest of the system depends on it.
// =========================
type RegistrationFee struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID *uuid.UUID `gorm:"column:student_id;type:uuid;index" json:"student_id,omitempty"`
	Amount    int        `gorm:"column:registeration_fee;not null;check:registeration_fee>=0" json:"registeration_fee"`
	IsPaid    bool       `gorm:"column:is_paid;not null;default:false" json:"is_paid"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RegistrationFee) TableName() string { return "student_registeration_fees" }

// =========================
// FeeSummary
// One per student per course year; installments hang off it.
// =========================
type FeeSummary struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID   *uuid.UUID `gorm:"column:student_id;type:uuid;index" json:"student_id,omitempty"`
	CourseID    *uuid.UUID `gorm:"column:course_id;type:uuid;index" json:"course_id,omitempty"`
	YearNumber  int        `gorm:"column:year_number;not null;default:1" json:"year_number"`
	TotalAmount int        `gorm:"column:total_amount;not null;check:total_amount>=0" json:"total_amount"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Installments []Installment `gorm:"foreignKey:FeeSummaryID" json:"installments,omitempty"`
}

func (FeeSummary) TableName() string { return "fee_summaries" }

// =========================
// Installment
// =========================
type Installment struct {
	ID            uuid.UUID     `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FeeSummaryID  uuid.UUID     `gorm:"column:fee_summary_id;type:uuid;not null;index" json:"fee_summary_id"`
	Amount        int           `gorm:"column:installment_amount;not null;check:installment_amount>=0" json:"installment_amount"`
	PaymentStatus PaymentStatus `gorm:"column:payment_status;type:payment_status;not null;default:'Pending'" json:"payment_status"`
	DueDate       *time.Time    `gorm:"column:due_date;type:date" json:"due_date,omitempty"`
	CreatedAt     time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Receipt *Receipt `gorm:"foreignKey:InstallmentID" json:"receipt,omitempty"`
}

func (Installment) TableName() string { return "student_installments" }

func (i *Installment) BeforeCreate(tx *gorm.DB) error {
	if i.PaymentStatus == "" {
		i.PaymentStatus = PaymentPending
	}
	return nil
}

// =========================
// Receipt
// Issued when an installment is marked Completed. AmountInWords is
// rendered once at issue time so the printed copy never drifts.
// =========================
type Receipt struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	InstallmentID uuid.UUID `gorm:"column:installment_id;type:uuid;not null;uniqueIndex" json:"installment_id"`
	Amount        int       `gorm:"column:amount;not null" json:"amount"`
	AmountInWords string    `gorm:"column:amount_in_words;type:text;not null" json:"amount_in_words"`
	PaymentDate   time.Time `gorm:"column:payment_date;not null" json:"payment_date"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Receipt) TableName() string { return "receipts" }
