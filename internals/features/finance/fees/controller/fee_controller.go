package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"swaram_backend/internals/features/finance/fees/dto"
	"swaram_backend/internals/features/finance/fees/model"
	helper "swaram_backend/internals/helpers"
)

type FeeController struct {
	DB *gorm.DB
}

// =========================================
// Registration fees
// =========================================

// ListRegistrationFees (GET /registration-fees)
func (h *FeeController) ListRegistrationFees(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.RegistrationFee{})
	if s := c.Query("student_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("student_id = ?", id)
	}
	if v := c.Query("is_paid"); v == "true" || v == "false" {
		q = q.Where("is_paid = ?", v == "true")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.RegistrationFee
	if err := q.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToRegistrationFeeResponses(list), helper.BuildPagination(total, p.Page, p.PerPage))
}

// CreateRegistrationFee (POST /registration-fees)
// One record per student; a repeat charge is a conflict, registration is
// only ever billed once at admission.
func (h *FeeController) CreateRegistrationFee(c *fiber.Ctx) error {
	var in dto.RegistrationFeeCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var existing int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&model.RegistrationFee{}).
		Where("student_id = ?", in.StudentID).
		Count(&existing).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if existing > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "registration fee already recorded for student")
	}

	studentID := in.StudentID
	m := model.RegistrationFee{
		StudentID: &studentID,
		Amount:    in.Amount,
		IsPaid:    in.IsPaid,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown student")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "registration fee recorded", dto.ToRegistrationFeeResponse(m))
}

// PayRegistrationFee (PATCH /registration-fees/:id/pay)
func (h *FeeController) PayRegistrationFee(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid registration fee id")
	}

	var m model.RegistrationFee
	err = h.DB.WithContext(c.UserContext()).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "registration fee not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if m.IsPaid {
		return helper.JsonError(c, fiber.StatusConflict, "registration fee already paid")
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&m).
		Update("is_paid", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	m.IsPaid = true
	return helper.JsonOK(c, "registration fee marked paid", dto.ToRegistrationFeeResponse(m))
}

// =========================================
// Fee summaries + installments
// =========================================

func preloadSummary(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Installments", func(db *gorm.DB) *gorm.DB {
			return db.Order("due_date ASC NULLS LAST, created_at ASC")
		}).
		Preload("Installments.Receipt")
}

// ListFeeSummaries (GET /fee-summaries)
func (h *FeeController) ListFeeSummaries(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&model.FeeSummary{})
	if s := c.Query("student_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
		}
		q = q.Where("student_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.FeeSummary
	if err := preloadSummary(q).
		Order("created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToFeeSummaryResponses(list), helper.BuildPagination(total, p.Page, p.PerPage))
}

// GetFeeSummary (GET /fee-summaries/:id)
func (h *FeeController) GetFeeSummary(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid fee summary id")
	}

	var m model.FeeSummary
	err = preloadSummary(h.DB.WithContext(c.UserContext())).
		Where("id = ?", id).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "fee summary not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToFeeSummaryResponse(m))
}

// CreateFeeSummary (POST /fee-summaries)
// The installment amounts must add up to the summary total; a plan that
// doesn't cover the fee is rejected up front.
func (h *FeeController) CreateFeeSummary(c *fiber.Ctx) error {
	var in dto.FeeSummaryCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	if len(in.Installments) > 0 {
		sum := 0
		for _, row := range in.Installments {
			sum += row.Amount
		}
		if sum != in.TotalAmount {
			return helper.JsonValidationError(c, map[string][]string{
				"installments": {"installment amounts must add up to total_amount"},
			})
		}
	}

	studentID := in.StudentID
	courseID := in.CourseID
	m := model.FeeSummary{
		StudentID:   &studentID,
		CourseID:    &courseID,
		YearNumber:  in.YearNumber,
		TotalAmount: in.TotalAmount,
	}

	err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for _, row := range in.Installments {
			inst := model.Installment{
				FeeSummaryID:  m.ID,
				Amount:        row.Amount,
				PaymentStatus: model.PaymentPending,
			}
			if row.DueDate != nil && *row.DueDate != "" {
				if t, err := time.Parse("2006-01-02", *row.DueDate); err == nil {
					inst.DueDate = &t
				}
			}
			if err := tx.Create(&inst).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "unknown student or course")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var out model.FeeSummary
	if err := preloadSummary(h.DB.WithContext(c.UserContext())).First(&out, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "fee summary created", dto.ToFeeSummaryResponse(out))
}

// CompleteInstallment (POST /installments/:id/complete)
// Flips the installment to Completed and issues the receipt in the same
// transaction. The receipt carries the amount in words for the printed copy.
func (h *FeeController) CompleteInstallment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid installment id")
	}

	var out model.Installment
	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		var inst model.Installment
		if err := tx.Where("id = ?", id).First(&inst).Error; err != nil {
			return err
		}
		switch inst.PaymentStatus {
		case model.PaymentCompleted:
			return fiber.NewError(fiber.StatusConflict, "installment already completed")
		case model.PaymentCancelled:
			return fiber.NewError(fiber.StatusConflict, "installment was cancelled")
		}

		if err := tx.Model(&inst).Update("payment_status", model.PaymentCompleted).Error; err != nil {
			return err
		}

		rcpt := model.Receipt{
			InstallmentID: inst.ID,
			Amount:        inst.Amount,
			AmountInWords: helper.NumberToWords(inst.Amount),
			PaymentDate:   time.Now(),
		}
		if err := tx.Create(&rcpt).Error; err != nil {
			return err
		}

		inst.PaymentStatus = model.PaymentCompleted
		inst.Receipt = &rcpt
		out = inst
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "installment not found")
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "receipt already issued")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "installment completed", dto.ToInstallmentView(out))
}

// CancelInstallment (POST /installments/:id/cancel)
func (h *FeeController) CancelInstallment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid installment id")
	}

	var inst model.Installment
	err = h.DB.WithContext(c.UserContext()).Where("id = ?", id).First(&inst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "installment not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if inst.PaymentStatus == model.PaymentCompleted {
		return helper.JsonError(c, fiber.StatusConflict, "completed installment cannot be cancelled")
	}

	if err := h.DB.WithContext(c.UserContext()).
		Model(&inst).
		Update("payment_status", model.PaymentCancelled).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	inst.PaymentStatus = model.PaymentCancelled
	return helper.JsonOK(c, "installment cancelled", dto.ToInstallmentView(inst))
}
