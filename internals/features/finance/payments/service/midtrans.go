package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	feemodel "swaram_backend/internals/features/finance/fees/model"
)

/* =========================================================
   Midtrans Client
========================================================= */

var SnapClient snap.Client

// InitMidtrans must be called at app bootstrap.
// useProduction=true for Production, false for Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

/* =========================================================
   Input helper for customer data
========================================================= */

type CustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string // optional
	City      string // optional
	Postcode  string // optional
	Country   string // optional, default "IND"
}

// InstallmentOrderID is the Midtrans OrderID for an installment. The
// webhook parses it back with ParseInstallmentOrderID.
func InstallmentOrderID(inst feemodel.Installment) string {
	return "inst-" + inst.ID.String()
}

/* =========================================================
   Generate Snap Token
========================================================= */

func GenerateSnapToken(inst feemodel.Installment, cust CustomerInput) (string, string, error) {
	if inst.Amount <= 0 {
		return "", "", errors.New("invalid installment_amount")
	}
	if inst.PaymentStatus != feemodel.PaymentPending {
		return "", "", fmt.Errorf("installment is %s, only Pending can be paid", inst.PaymentStatus)
	}

	orderID := InstallmentOrderID(inst)
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(inst.Amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.FirstName,
			LName: cust.LastName,
			Email: cust.Email,
			Phone: cust.Phone,
			BillAddr: &midtrans.CustomerAddress{
				FName:       cust.FirstName,
				LName:       cust.LastName,
				Phone:       cust.Phone,
				Address:     cust.Address,
				City:        cust.City,
				Postcode:    cust.Postcode,
				CountryCode: defaultString(cust.Country, "IND"),
			},
		},
	}

	req.Items = &[]midtrans.ItemDetails{
		{
			ID:       orderID,
			Price:    int64(inst.Amount),
			Qty:      1,
			Name:     "Course fee installment",
			Category: "Tuition",
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

// ParseInstallmentOrderID recovers the installment id from a webhook
// OrderID. Order ids from other flows return an error.
func ParseInstallmentOrderID(orderID string) (uuid.UUID, error) {
	const prefix = "inst-"
	if !strings.HasPrefix(orderID, prefix) {
		return uuid.Nil, fmt.Errorf("order_id %q is not an installment order", orderID)
	}
	return uuid.Parse(strings.TrimPrefix(orderID, prefix))
}

/* =========================================================
   Utils
========================================================= */

func defaultString(s string, def string) string {
	if s == "" {
		return def
	}
	return s
}
