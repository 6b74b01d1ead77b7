package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const GatewayProviderMidtrans = "midtrans"

// =========================
// PaymentGatewayEvent
// Raw webhook audit trail. Kept even when the order can't be matched so
// a missed payment can be reconciled by hand.
// =========================
type PaymentGatewayEvent struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	InstallmentID *uuid.UUID     `gorm:"column:installment_id;type:uuid;index" json:"installment_id,omitempty"`
	Provider      string         `gorm:"column:provider;type:varchar(32);not null" json:"provider"`
	EventType     *string        `gorm:"column:event_type;type:varchar(64)" json:"event_type,omitempty"`
	ExternalID    *string        `gorm:"column:external_id;type:varchar(128);index" json:"external_id,omitempty"`
	ExternalRef   *string        `gorm:"column:external_ref;type:varchar(128)" json:"external_ref,omitempty"`
	Payload       datatypes.JSON `gorm:"column:payload;type:jsonb" json:"payload,omitempty"`
	Signature     *string        `gorm:"column:signature;type:text" json:"signature,omitempty"`
	Status        string         `gorm:"column:status;type:varchar(16);not null;default:'received'" json:"status"`
	Error         *string        `gorm:"column:error;type:text" json:"error,omitempty"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PaymentGatewayEvent) TableName() string { return "payment_gateway_events" }
