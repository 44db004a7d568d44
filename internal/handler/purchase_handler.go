package handler

import (
	"errors"
	"log"

	"go-purchase-tracker/internal/auth"
	"go-purchase-tracker/internal/model"
	"go-purchase-tracker/internal/repository"
	"go-purchase-tracker/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PurchaseHandler is the single boundary where internal camelCase fields are
// renamed to the external snake_case contract and back.
type PurchaseHandler struct {
	service service.PurchaseService
}

func NewPurchaseHandler(s service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: s}
}

// PurchaseResponse is the external shape of a purchase.
type PurchaseResponse struct {
	PurchaseID       string  `json:"purchase_id"`
	ProductName      string  `json:"product_name"`
	Quantity         float64 `json:"quantity"`
	MeasurementUnit  string  `json:"measurement_unit"`
	UnitPrice        float64 `json:"unit_price"`
	TotalPrice       float64 `json:"total_price"`
	PurchaseDate     string  `json:"purchase_date"`
	Category         *string `json:"category"`
	PurchaseLocation *string `json:"purchase_location"`
}

type PurchaseListResponse struct {
	PurchaseList      []PurchaseResponse `json:"purchase_list"`
	TotalCurrentMonth float64            `json:"total_current_month"`
}

func toPurchaseResponse(p *model.Purchase) PurchaseResponse {
	quantity, _ := p.Quantity.Float64()
	unitPrice, _ := p.UnitPrice.Float64()
	totalPrice, _ := p.TotalPrice.Float64()

	return PurchaseResponse{
		PurchaseID:       p.PurchaseUID.String(),
		ProductName:      p.ProductName,
		Quantity:         quantity,
		MeasurementUnit:  p.MeasurementUnit,
		UnitPrice:        unitPrice,
		TotalPrice:       totalPrice,
		PurchaseDate:     p.PurchaseDate.Format("2006-01-02"),
		Category:         p.Category,
		PurchaseLocation: p.PurchaseLocation,
	}
}

// List handles GET /purchase
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	cred := auth.FromContext(c)

	data, err := h.service.List(cred.AccountID)
	if err != nil {
		return respondError(c, err)
	}

	list := make([]PurchaseResponse, 0, len(data.Purchases))
	for i := range data.Purchases {
		list = append(list, toPurchaseResponse(&data.Purchases[i]))
	}
	monthTotal, _ := data.TotalCurrentMonth.Float64()

	return c.JSON(SuccessResponse(PurchaseListResponse{
		PurchaseList:      list,
		TotalCurrentMonth: monthTotal,
	}))
}

// Get handles GET /purchase/:id
func (h *PurchaseHandler) Get(c *fiber.Ctx) error {
	cred := auth.FromContext(c)

	purchase, err := h.service.Get(cred.AccountID, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(SuccessResponse(toPurchaseResponse(purchase)))
}

// Create handles POST /purchase
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	cred := auth.FromContext(c)

	var req service.PurchaseInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(ErrorResponse("Validation failed", CodeValidationError))
	}

	purchase, err := h.service.Create(cred.AccountID, &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(SuccessResponse(toPurchaseResponse(purchase)))
}

// Update handles PUT /purchase/:id
func (h *PurchaseHandler) Update(c *fiber.Ctx) error {
	cred := auth.FromContext(c)

	var req service.PurchaseInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(ErrorResponse("Validation failed", CodeValidationError))
	}

	purchase, err := h.service.Update(cred.AccountID, c.Params("id"), &req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(SuccessResponse(toPurchaseResponse(purchase)))
}

// Delete handles DELETE /purchase/:id
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	cred := auth.FromContext(c)

	if err := h.service.Delete(cred.AccountID, c.Params("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(SuccessResponse(fiber.Map{"deleted": true}))
}

// respondError maps service errors onto the external contract: aggregated
// validation failures to 400, the missing-purchase signal to 404, anything
// else to a generic 500 with the detail kept server-side.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		env := ErrorResponse("Validation failed", CodeValidationError)
		env.Details = vErr.Violations
		return c.Status(fiber.StatusBadRequest).JSON(env)
	}

	if errors.Is(err, repository.ErrPurchaseNotFound) {
		return c.Status(fiber.StatusNotFound).
			JSON(ErrorResponse("Purchase not found", CodeNotFound))
	}

	log.Printf("purchase handler: %v", err)
	return c.Status(fiber.StatusInternalServerError).
		JSON(ErrorResponse("Internal server error", ""))
}
