package service

import (
	"strings"

	"go-purchase-tracker/internal/model"
	"go-purchase-tracker/internal/repository"
	"go-purchase-tracker/pkg/validator"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidationError aggregates every violated constraint of a request. It is the
// only error the handlers map to 400.
type ValidationError struct {
	Violations []*validator.ErrorResponse
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// PurchaseInput is the request body for create and update. All editable fields
// are mandatory on both operations; omitted fields are never silently kept.
type PurchaseInput struct {
	ProductName      string   `json:"product_name" validate:"required,min=2,max=100"`
	Quantity         float64  `json:"quantity" validate:"gt=0"`
	MeasurementUnit  string   `json:"measurement_unit" validate:"required,min=1"`
	UnitPrice        *float64 `json:"unit_price" validate:"required,gte=0"`
	PurchaseDate     string   `json:"purchase_date" validate:"required,purchasedate"`
	Category         *string  `json:"category" validate:"omitempty,max=50"`
	PurchaseLocation *string  `json:"purchase_location" validate:"omitempty,max=100"`
}

// purchaseIDParam validates the external identifier from the URL path.
type purchaseIDParam struct {
	ID string `validate:"required,uuid"`
}

type PurchaseList struct {
	Purchases         []model.Purchase
	TotalCurrentMonth decimal.Decimal
}

type PurchaseService interface {
	Create(accountID int64, req *PurchaseInput) (*model.Purchase, error)
	Get(accountID int64, purchaseID string) (*model.Purchase, error)
	Update(accountID int64, purchaseID string, req *PurchaseInput) (*model.Purchase, error)
	Delete(accountID int64, purchaseID string) error
	List(accountID int64) (*PurchaseList, error)
}

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
}

func NewPurchaseService(repo repository.PurchaseRepository) PurchaseService {
	return &purchaseService{purchaseRepo: repo}
}

func (s *purchaseService) Create(accountID int64, req *PurchaseInput) (*model.Purchase, error) {
	fields, err := s.coerce(req)
	if err != nil {
		return nil, err
	}
	return s.purchaseRepo.Create(accountID, *fields)
}

func (s *purchaseService) Get(accountID int64, purchaseID string) (*model.Purchase, error) {
	uid, err := s.parseID(purchaseID)
	if err != nil {
		return nil, err
	}
	return s.purchaseRepo.FindByUID(accountID, uid)
}

func (s *purchaseService) Update(accountID int64, purchaseID string, req *PurchaseInput) (*model.Purchase, error) {
	uid, err := s.parseID(purchaseID)
	if err != nil {
		return nil, err
	}
	fields, err := s.coerce(req)
	if err != nil {
		return nil, err
	}
	return s.purchaseRepo.Update(accountID, uid, *fields)
}

func (s *purchaseService) Delete(accountID int64, purchaseID string) error {
	uid, err := s.parseID(purchaseID)
	if err != nil {
		return err
	}
	return s.purchaseRepo.Delete(accountID, uid)
}

func (s *purchaseService) List(accountID int64) (*PurchaseList, error) {
	purchases, monthTotal, err := s.purchaseRepo.List(accountID)
	if err != nil {
		return nil, err
	}
	return &PurchaseList{Purchases: purchases, TotalCurrentMonth: monthTotal}, nil
}

func (s *purchaseService) parseID(purchaseID string) (uuid.UUID, error) {
	if errs := validator.ValidateStruct(purchaseIDParam{ID: purchaseID}); len(errs) > 0 {
		return uuid.Nil, &ValidationError{Violations: errs}
	}
	return uuid.Parse(purchaseID)
}

// coerce turns a validated request into typed repository fields. Empty strings
// for the optional attributes collapse to nil, the canonical "no value".
func (s *purchaseService) coerce(req *PurchaseInput) (*repository.PurchaseFields, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Violations: errs}
	}

	purchaseDate, err := validator.ParseDate(req.PurchaseDate)
	if err != nil {
		return nil, &ValidationError{Violations: []*validator.ErrorResponse{
			{FailedField: "PurchaseInput.PurchaseDate", Tag: "purchasedate"},
		}}
	}

	return &repository.PurchaseFields{
		ProductName:      req.ProductName,
		Quantity:         decimal.NewFromFloat(req.Quantity),
		MeasurementUnit:  req.MeasurementUnit,
		UnitPrice:        decimal.NewFromFloat(*req.UnitPrice),
		PurchaseDate:     purchaseDate,
		Category:         normalizeOptional(req.Category),
		PurchaseLocation: normalizeOptional(req.PurchaseLocation),
	}, nil
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
