package repository

import (
	"time"

	"go-purchase-tracker/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseFields are the editable attributes of a purchase. TotalPrice is
// absent on purpose: the stored procedures compute it at write time.
type PurchaseFields struct {
	ProductName      string
	Quantity         decimal.Decimal
	MeasurementUnit  string
	UnitPrice        decimal.Decimal
	PurchaseDate     time.Time
	Category         *string
	PurchaseLocation *string
}

type PurchaseRepository interface {
	Create(accountID int64, fields PurchaseFields) (*model.Purchase, error)
	FindByUID(accountID int64, purchaseUID uuid.UUID) (*model.Purchase, error)
	Update(accountID int64, purchaseUID uuid.UUID, fields PurchaseFields) (*model.Purchase, error)
	Delete(accountID int64, purchaseUID uuid.UUID) error
	List(accountID int64) ([]model.Purchase, decimal.Decimal, error)
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) Create(accountID int64, fields PurchaseFields) (*model.Purchase, error) {
	var purchase model.Purchase
	result := r.db.Raw(
		`SELECT * FROM sp_purchase_create(?, ?, ?, ?, ?, ?, ?, ?)`,
		accountID,
		fields.ProductName,
		fields.Quantity,
		fields.MeasurementUnit,
		fields.UnitPrice,
		fields.PurchaseDate,
		fields.Category,
		fields.PurchaseLocation,
	).Scan(&purchase)
	if result.Error != nil {
		return nil, result.Error
	}
	return &purchase, nil
}

func (r *purchaseRepo) FindByUID(accountID int64, purchaseUID uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	result := r.db.Raw(
		`SELECT * FROM sp_purchase_get(?, ?)`,
		accountID, purchaseUID,
	).Scan(&purchase)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrPurchaseNotFound
	}
	return &purchase, nil
}

func (r *purchaseRepo) Update(accountID int64, purchaseUID uuid.UUID, fields PurchaseFields) (*model.Purchase, error) {
	var purchase model.Purchase
	result := r.db.Raw(
		`SELECT * FROM sp_purchase_update(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		accountID,
		purchaseUID,
		fields.ProductName,
		fields.Quantity,
		fields.MeasurementUnit,
		fields.UnitPrice,
		fields.PurchaseDate,
		fields.Category,
		fields.PurchaseLocation,
	).Scan(&purchase)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrPurchaseNotFound
	}
	return &purchase, nil
}

func (r *purchaseRepo) Delete(accountID int64, purchaseUID uuid.UUID) error {
	var deleted int64
	result := r.db.Raw(
		`SELECT sp_purchase_delete(?, ?)`,
		accountID, purchaseUID,
	).Scan(&deleted)
	if result.Error != nil {
		return result.Error
	}
	if deleted == 0 {
		return ErrPurchaseNotFound
	}
	return nil
}

// List returns every purchase owned by the account (newest first) plus the
// sum of total_price for the current calendar month, 0 when there are none.
func (r *purchaseRepo) List(accountID int64) ([]model.Purchase, decimal.Decimal, error) {
	var purchases []model.Purchase
	if err := r.db.Raw(`SELECT * FROM sp_purchase_list(?)`, accountID).Scan(&purchases).Error; err != nil {
		return nil, decimal.Zero, err
	}

	var monthTotal decimal.Decimal
	if err := r.db.Raw(`SELECT sp_purchase_month_total(?)`, accountID).Scan(&monthTotal).Error; err != nil {
		return nil, decimal.Zero, err
	}

	return purchases, monthTotal, nil
}
