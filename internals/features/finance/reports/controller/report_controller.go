package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swaram_backend/internals/features/finance/reports/service"
	helper "swaram_backend/internals/helpers"
)

type ReportController struct {
	Service *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{Service: service.NewReportService(db)}
}

// GetFeeReports (GET /reports/fees)
func (h *ReportController) GetFeeReports(c *fiber.Ctx) error {
	out, err := h.Service.GetFeeReports(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", out)
}

// GetMonthlyChartData (GET /reports/monthly)
func (h *ReportController) GetMonthlyChartData(c *fiber.Ctx) error {
	out, err := h.Service.GetMonthlyChartData(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", out)
}
