package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"swaram_backend/internals/features/academics/students/service"
	helper "swaram_backend/internals/helpers"
)

// GetAdmissionForm (GET /students/:id/admission-form)
// Returns the printable admission form payload; the console's PDF layer
// renders it without further lookups.
func (h *StudentController) GetAdmissionForm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}

	svc := service.NewAdmissionFormService(h.DB)
	form, err := svc.BuildAdmissionForm(c.UserContext(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "student not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", form)
}
