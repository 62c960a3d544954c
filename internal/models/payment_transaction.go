package model

import (
	"time"

	"promarket.com/promarket/internal/constants"
)

// PaymentTransaction is an immutable ledger row; rows are written once on
// job completion and only ever read back through sum aggregations.
type PaymentTransaction struct {
	ID            string                  `gorm:"primaryKey;size:36" json:"id"`
	TransactionID string                  `gorm:"size:36;uniqueIndex;not null" json:"transactionId"`
	Amount        float64                 `gorm:"not null" json:"amount"`
	Status        constants.PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`
	Type          constants.PaymentType   `gorm:"type:varchar(20);not null" json:"type"`
	PayerID       string                  `gorm:"size:36;not null;index" json:"payerId"`
	PayeeID       *string                 `gorm:"size:36;index" json:"payeeId,omitempty"`
	JobID         *string                 `gorm:"size:36;index" json:"jobId,omitempty"`
	PaymentMethod string                  `gorm:"size:50" json:"paymentMethod,omitempty"`
	ProcessedAt   *time.Time              `json:"processedAt,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
}
