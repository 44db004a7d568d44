package service

import (
	"errors"
	"testing"
	"time"

	"go-purchase-tracker/internal/model"
	"go-purchase-tracker/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePurchaseRepo records calls and mimics the stored procedures' total
// computation.
type fakePurchaseRepo struct {
	lastAccountID int64
	lastUID       uuid.UUID
	lastFields    *repository.PurchaseFields
	calls         int
	err           error
}

func (f *fakePurchaseRepo) persist(accountID int64, fields repository.PurchaseFields) *model.Purchase {
	return &model.Purchase{
		PurchaseUID:      uuid.New(),
		AccountID:        accountID,
		ProductName:      fields.ProductName,
		Quantity:         fields.Quantity,
		MeasurementUnit:  fields.MeasurementUnit,
		UnitPrice:        fields.UnitPrice,
		TotalPrice:       fields.Quantity.Mul(fields.UnitPrice).Round(2),
		PurchaseDate:     fields.PurchaseDate,
		Category:         fields.Category,
		PurchaseLocation: fields.PurchaseLocation,
		CreatedAt:        time.Now(),
	}
}

func (f *fakePurchaseRepo) Create(accountID int64, fields repository.PurchaseFields) (*model.Purchase, error) {
	f.calls++
	f.lastAccountID = accountID
	f.lastFields = &fields
	if f.err != nil {
		return nil, f.err
	}
	return f.persist(accountID, fields), nil
}

func (f *fakePurchaseRepo) FindByUID(accountID int64, uid uuid.UUID) (*model.Purchase, error) {
	f.calls++
	f.lastAccountID = accountID
	f.lastUID = uid
	if f.err != nil {
		return nil, f.err
	}
	return &model.Purchase{PurchaseUID: uid, AccountID: accountID}, nil
}

func (f *fakePurchaseRepo) Update(accountID int64, uid uuid.UUID, fields repository.PurchaseFields) (*model.Purchase, error) {
	f.calls++
	f.lastAccountID = accountID
	f.lastUID = uid
	f.lastFields = &fields
	if f.err != nil {
		return nil, f.err
	}
	p := f.persist(accountID, fields)
	p.PurchaseUID = uid
	return p, nil
}

func (f *fakePurchaseRepo) Delete(accountID int64, uid uuid.UUID) error {
	f.calls++
	f.lastAccountID = accountID
	f.lastUID = uid
	return f.err
}

func (f *fakePurchaseRepo) List(accountID int64) ([]model.Purchase, decimal.Decimal, error) {
	f.calls++
	f.lastAccountID = accountID
	if f.err != nil {
		return nil, decimal.Zero, f.err
	}
	return []model.Purchase{}, decimal.Zero, nil
}

func validInput() *PurchaseInput {
	price := 5.5
	return &PurchaseInput{
		ProductName:     "Rice",
		Quantity:        2,
		MeasurementUnit: "kg",
		UnitPrice:       &price,
		PurchaseDate:    "2024-01-15",
	}
}

func TestCreateComputesNothingItself(t *testing.T) {
	repo := &fakePurchaseRepo{}
	svc := NewPurchaseService(repo)

	purchase, err := svc.Create(7, validInput())

	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.lastAccountID)
	assert.True(t, purchase.TotalPrice.Equal(decimal.RequireFromString("11")),
		"total must equal quantity x unit price as persisted")
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), repo.lastFields.PurchaseDate)
}

func TestCreateAcceptsDateTimeString(t *testing.T) {
	repo := &fakePurchaseRepo{}
	svc := NewPurchaseService(repo)

	in := validInput()
	in.PurchaseDate = "2024-01-15T10:30:00Z"

	_, err := svc.Create(7, in)
	require.NoError(t, err)
	assert.Equal(t, 2024, repo.lastFields.PurchaseDate.Year())
}

func TestCreateNormalizesAbsentOptionals(t *testing.T) {
	repo := &fakePurchaseRepo{}
	svc := NewPurchaseService(repo)

	empty := ""
	padded := "  market  "
	in := validInput()
	in.Category = &empty
	in.PurchaseLocation = &padded

	_, err := svc.Create(7, in)
	require.NoError(t, err)
	assert.Nil(t, repo.lastFields.Category, "empty string collapses to absent")
	require.NotNil(t, repo.lastFields.PurchaseLocation)
	assert.Equal(t, "market", *repo.lastFields.PurchaseLocation)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	negative := -1.0
	longName := make([]byte, 101)
	for i := range longName {
		longName[i] = 'a'
	}

	cases := []struct {
		name   string
		mutate func(in *PurchaseInput)
	}{
		{"quantity zero", func(in *PurchaseInput) { in.Quantity = 0 }},
		{"quantity negative", func(in *PurchaseInput) { in.Quantity = -2 }},
		{"unit price negative", func(in *PurchaseInput) { in.UnitPrice = &negative }},
		{"unit price missing", func(in *PurchaseInput) { in.UnitPrice = nil }},
		{"product name too short", func(in *PurchaseInput) { in.ProductName = "x" }},
		{"product name too long", func(in *PurchaseInput) { in.ProductName = string(longName) }},
		{"measurement unit empty", func(in *PurchaseInput) { in.MeasurementUnit = "" }},
		{"purchase date malformed", func(in *PurchaseInput) { in.PurchaseDate = "15/01/2024" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakePurchaseRepo{}
			svc := NewPurchaseService(repo)

			in := validInput()
			tc.mutate(in)

			_, err := svc.Create(7, in)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.NotEmpty(t, vErr.Violations)
			assert.Zero(t, repo.calls, "invalid input must never reach the repository")
		})
	}
}

func TestCreateAggregatesAllViolations(t *testing.T) {
	svc := NewPurchaseService(&fakePurchaseRepo{})

	in := validInput()
	in.ProductName = "x"
	in.Quantity = 0
	in.MeasurementUnit = ""

	_, err := svc.Create(7, in)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Violations, 3)
}

func TestGetRejectsMalformedID(t *testing.T) {
	repo := &fakePurchaseRepo{}
	svc := NewPurchaseService(repo)

	_, err := svc.Get(7, "not-a-uuid")

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Zero(t, repo.calls)
}

func TestGetPassesScopedIdentity(t *testing.T) {
	repo := &fakePurchaseRepo{}
	svc := NewPurchaseService(repo)

	uid := uuid.New()
	_, err := svc.Get(42, uid.String())

	require.NoError(t, err)
	assert.Equal(t, int64(42), repo.lastAccountID)
	assert.Equal(t, uid, repo.lastUID)
}

func TestUpdatePropagatesNotFound(t *testing.T) {
	repo := &fakePurchaseRepo{err: repository.ErrPurchaseNotFound}
	svc := NewPurchaseService(repo)

	_, err := svc.Update(7, uuid.New().String(), validInput())
	assert.ErrorIs(t, err, repository.ErrPurchaseNotFound)
}

func TestDeletePropagatesRepositoryError(t *testing.T) {
	boom := errors.New("connection refused")
	repo := &fakePurchaseRepo{err: boom}
	svc := NewPurchaseService(repo)

	assert.ErrorIs(t, svc.Delete(7, uuid.New().String()), boom)
}
