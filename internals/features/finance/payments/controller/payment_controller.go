package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	feedto "swaram_backend/internals/features/finance/fees/dto"
	feemodel "swaram_backend/internals/features/finance/fees/model"
	"swaram_backend/internals/features/finance/payments/model"
	"swaram_backend/internals/features/finance/payments/service"
	helper "swaram_backend/internals/helpers"
)

type PaymentController struct {
	DB                *gorm.DB
	MidtransServerKey string // used to verify webhook signatures
}

/* =======================================================================
   Create snap transaction
======================================================================= */

type createTransactionDTO struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Postcode  string `json:"postcode"`
}

// CreateInstallmentTransaction (POST /payments/installments/:id)
// Returns the snap token and redirect URL for a pending installment.
func (h *PaymentController) CreateInstallmentTransaction(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid installment id")
	}

	var in createTransactionDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.Validate.Struct(in); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var inst feemodel.Installment
	err = h.DB.WithContext(c.UserContext()).Where("id = ?", id).First(&inst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "installment not found")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	token, redirectURL, err := service.GenerateSnapToken(inst, service.CustomerInput{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		City:      in.City,
		Postcode:  in.Postcode,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	return helper.JsonOK(c, "transaction created", fiber.Map{
		"order_id":     service.InstallmentOrderID(inst),
		"token":        token,
		"redirect_url": redirectURL,
	})
}

/* =======================================================================
   Midtrans webhook
======================================================================= */

type midtransNotif struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
	TransactionID     string `json:"transaction_id"`
	SettlementTime    string `json:"settlement_time"`
}

// MidtransWebhook (POST /payments/midtrans/webhook)
// Settlement marks the installment Completed and issues its receipt.
// Unknown orders are logged and acknowledged so Midtrans stops retrying.
func (h *PaymentController) MidtransWebhook(c *fiber.Ctx) error {
	var notif midtransNotif
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid payload")
	}

	// Signature is SHA512(order_id + status_code + gross_amount + serverKey)
	want := strings.ToLower(notif.SignatureKey)
	raw := notif.OrderID + notif.StatusCode + notif.GrossAmount + h.MidtransServerKey
	if want == "" || sha512sum(raw) != want {
		return helper.JsonError(c, fiber.StatusUnauthorized, "invalid signature")
	}

	instID, err := service.ParseInstallmentOrderID(notif.OrderID)
	if err != nil {
		h.logGatewayEvent(c, nil, notif, "received", err.Error())
		return c.JSON(fiber.Map{"status": "ignored", "reason": "not an installment order"})
	}

	var inst feemodel.Installment
	err = h.DB.WithContext(c.UserContext()).Where("id = ?", instID).First(&inst).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		h.logGatewayEvent(c, nil, notif, "received", "installment not found")
		return c.JSON(fiber.Map{"status": "ignored", "reason": "installment not found"})
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	h.logGatewayEvent(c, &inst.ID, notif, "received", "")

	switch notif.TransactionStatus {
	case "capture", "settlement":
		if inst.PaymentStatus == feemodel.PaymentCompleted {
			break // repeated settlement notifications are fine
		}
		err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&inst).Update("payment_status", feemodel.PaymentCompleted).Error; err != nil {
				return err
			}
			rcpt := feemodel.Receipt{
				InstallmentID: inst.ID,
				Amount:        inst.Amount,
				AmountInWords: helper.NumberToWords(inst.Amount),
				PaymentDate:   settlementTime(notif),
			}
			return tx.Create(&rcpt).Error
		})
		if err != nil && !helper.IsUniqueViolation(err) {
			h.updateEventStatus(notif, "failed", err.Error())
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		inst.PaymentStatus = feemodel.PaymentCompleted
	case "deny", "cancel", "expire", "failure":
		if inst.PaymentStatus == feemodel.PaymentPending {
			if err := h.DB.WithContext(c.UserContext()).
				Model(&inst).
				Update("payment_status", feemodel.PaymentCancelled).Error; err != nil {
				h.updateEventStatus(notif, "failed", err.Error())
				return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
			}
			inst.PaymentStatus = feemodel.PaymentCancelled
		}
	}

	h.updateEventStatus(notif, "processed", "")

	return c.JSON(fiber.Map{
		"status":             "ok",
		"installment":        feedto.ToInstallmentView(inst),
		"transaction_status": notif.TransactionStatus,
		"fraud_status":       notif.FraudStatus,
	})
}

/* =======================================================================
   Helpers: webhook
======================================================================= */

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}

func settlementTime(notif midtransNotif) time.Time {
	for _, s := range []string{notif.SettlementTime, notif.TransactionTime} {
		if s == "" {
			continue
		}
		if t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.Local); err == nil {
			return t
		}
	}
	return time.Now()
}

func (h *PaymentController) logGatewayEvent(c *fiber.Ctx, instID *uuid.UUID, notif midtransNotif, status, errMsg string) {
	payloadJSON, _ := json.Marshal(notif)

	ev := model.PaymentGatewayEvent{
		InstallmentID: instID,
		Provider:      model.GatewayProviderMidtrans,
		EventType:     strPtr(notif.TransactionStatus),
		ExternalID:    strPtr(notif.OrderID),
		ExternalRef:   strPtr(notif.TransactionID),
		Payload:       datatypes.JSON(payloadJSON),
		Signature:     strPtr(notif.SignatureKey),
		Status:        status,
		Error:         strPtr(errMsg),
	}
	// an audit write must never fail the webhook
	_ = h.DB.WithContext(c.UserContext()).Create(&ev).Error
}

func (h *PaymentController) updateEventStatus(notif midtransNotif, status, errMsg string) {
	_ = h.DB.
		Model(&model.PaymentGatewayEvent{}).
		Where("external_id = ? AND provider = ?", notif.OrderID, model.GatewayProviderMidtrans).
		Updates(map[string]any{"status": status, "error": strPtr(errMsg)}).Error
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
