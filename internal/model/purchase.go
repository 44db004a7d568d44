package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is one food purchase owned by exactly one account. The sequential
// primary key is storage-only; PurchaseUID is the identifier clients see.
// TotalPrice is computed by the persistence layer at write time, never here.
type Purchase struct {
	ID               int64           `gorm:"primaryKey;autoIncrement" json:"-"`
	PurchaseUID      uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"purchaseUid"`
	AccountID        int64           `gorm:"not null;index" json:"idAccount"`
	ProductName      string          `gorm:"type:varchar(100);not null" json:"productName"`
	Quantity         decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"quantity"`
	MeasurementUnit  string          `gorm:"type:varchar(20);not null" json:"measurementUnit"`
	UnitPrice        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unitPrice"`
	TotalPrice       decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"totalPrice"`
	PurchaseDate     time.Time       `gorm:"type:date;not null" json:"purchaseDate"`
	Category         *string         `gorm:"type:varchar(50)" json:"category"`
	PurchaseLocation *string         `gorm:"type:varchar(100)" json:"purchaseLocation"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// MeasurementUnits is the recommended unit set. It is surfaced to clients but
// not enforced server-side.
var MeasurementUnits = []string{"un", "kg", "g", "L", "ml", "pacote"}
