package details

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swaram_backend/internals/constants"
	feeController "swaram_backend/internals/features/finance/fees/controller"
	paymentController "swaram_backend/internals/features/finance/payments/controller"
	reportController "swaram_backend/internals/features/finance/reports/controller"
	authMiddleware "swaram_backend/internals/middlewares/auth"
)

// FinanceRoutes wires fees, reports and the payment gateway. The webhook
// stays outside the auth groups; Midtrans signs its own calls.
func FinanceRoutes(app *fiber.App, private fiber.Router, admin fiber.Router, db *gorm.DB) {
	fees := &feeController.FeeController{DB: db}
	reports := reportController.NewReportController(db)
	payments := &paymentController.PaymentController{
		DB:                db,
		MidtransServerKey: os.Getenv("MIDTRANS_SERVER_KEY"),
	}

	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("finance records"),
		constants.AdminAndAbove...,
	)

	// ---------- Registration fees ----------
	private.Get("/registration-fees", fees.ListRegistrationFees)
	admin.Post("/registration-fees", adminOnly, fees.CreateRegistrationFee)
	admin.Patch("/registration-fees/:id/pay", adminOnly, fees.PayRegistrationFee)

	// ---------- Fee summaries + installments ----------
	private.Get("/fee-summaries", fees.ListFeeSummaries)
	private.Get("/fee-summaries/:id", fees.GetFeeSummary)
	admin.Post("/fee-summaries", adminOnly, fees.CreateFeeSummary)
	admin.Post("/installments/:id/complete", adminOnly, fees.CompleteInstallment)
	admin.Post("/installments/:id/cancel", adminOnly, fees.CancelInstallment)

	// ---------- Reports ----------
	private.Get("/reports/fees", reports.GetFeeReports)
	private.Get("/reports/monthly", reports.GetMonthlyChartData)

	// ---------- Payments ----------
	private.Post("/payments/installments/:id", payments.CreateInstallmentTransaction)
	app.Post("/api/payments/midtrans/webhook", payments.MidtransWebhook)
}
