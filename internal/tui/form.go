package tui

import (
	"strings"
	"time"

	"go-purchase-tracker/pkg/client"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

const (
	fieldProductName = iota
	fieldQuantity
	fieldUnit
	fieldUnitPrice
	fieldDate
	fieldCategory
	fieldLocation
	fieldCount
)

// formModel is the single form used for both create and edit. Validation here
// mirrors the server rules but never replaces them.
type formModel struct {
	inputs []textinput.Model
	focus  int
	editID string // empty while creating
	errs   []string
}

func newFormModel() formModel {
	labels := []struct {
		placeholder string
		charLimit   int
	}{
		{"Product name (e.g. Arroz)", 100},
		{"Quantity", 12},
		{"Unit (un/kg/g/L/ml/pacote)", 20},
		{"Unit price", 12},
		{"Purchase date (YYYY-MM-DD)", 10},
		{"Category (optional)", 50},
		{"Location (optional)", 100},
	}

	inputs := make([]textinput.Model, fieldCount)
	for i, l := range labels {
		ti := textinput.New()
		ti.Placeholder = l.placeholder
		ti.CharLimit = l.charLimit
		inputs[i] = ti
	}
	inputs[fieldDate].SetValue(time.Now().Format("2006-01-02"))
	inputs[fieldProductName].Focus()

	return formModel{inputs: inputs}
}

// prefill loads an existing purchase into the form for editing.
func (f *formModel) prefill(p *client.Purchase) {
	f.editID = p.PurchaseID
	f.inputs[fieldProductName].SetValue(p.ProductName)
	f.inputs[fieldQuantity].SetValue(decimal.NewFromFloat(p.Quantity).String())
	f.inputs[fieldUnit].SetValue(p.MeasurementUnit)
	f.inputs[fieldUnitPrice].SetValue(decimal.NewFromFloat(p.UnitPrice).String())
	f.inputs[fieldDate].SetValue(strings.SplitN(p.PurchaseDate, "T", 2)[0])
	if p.Category != nil {
		f.inputs[fieldCategory].SetValue(*p.Category)
	} else {
		f.inputs[fieldCategory].SetValue("")
	}
	if p.PurchaseLocation != nil {
		f.inputs[fieldLocation].SetValue(*p.PurchaseLocation)
	} else {
		f.inputs[fieldLocation].SetValue("")
	}
	f.errs = nil
}

func (f *formModel) setFocus(i int) {
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f *formModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(f.inputs))
	for i := range f.inputs {
		f.inputs[i], cmds[i] = f.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

// validate mirrors the server-side rules, plus the UI-only rule that a
// purchase cannot be dated in the future.
func (f *formModel) validate() []string {
	var errs []string

	name := strings.TrimSpace(f.inputs[fieldProductName].Value())
	if len(name) < 2 || len(name) > 100 {
		errs = append(errs, "product name must be 2-100 characters")
	}

	qty, err := decimal.NewFromString(strings.TrimSpace(f.inputs[fieldQuantity].Value()))
	if err != nil || !qty.IsPositive() {
		errs = append(errs, "quantity must be a number greater than zero")
	}

	if strings.TrimSpace(f.inputs[fieldUnit].Value()) == "" {
		errs = append(errs, "measurement unit is required")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(f.inputs[fieldUnitPrice].Value()))
	if err != nil || price.IsNegative() {
		errs = append(errs, "unit price must be a number of at least zero")
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(f.inputs[fieldDate].Value()))
	if err != nil {
		errs = append(errs, "purchase date must be YYYY-MM-DD")
	} else if date.After(time.Now()) {
		errs = append(errs, "purchase date cannot be in the future")
	}

	if len(f.inputs[fieldCategory].Value()) > 50 {
		errs = append(errs, "category must be at most 50 characters")
	}
	if len(f.inputs[fieldLocation].Value()) > 100 {
		errs = append(errs, "location must be at most 100 characters")
	}

	return errs
}

// liveTotal recomputes quantity x unit price as the user types. Display only;
// the persisted total always comes from the server.
func (f *formModel) liveTotal() string {
	qty, err := decimal.NewFromString(strings.TrimSpace(f.inputs[fieldQuantity].Value()))
	if err != nil {
		return "0.00"
	}
	price, err := decimal.NewFromString(strings.TrimSpace(f.inputs[fieldUnitPrice].Value()))
	if err != nil {
		return "0.00"
	}
	return qty.Mul(price).StringFixed(2)
}

// toInput builds the request body from the form. Empty optional fields are
// submitted as absent, not as empty strings.
func (f *formModel) toInput() *client.PurchaseInput {
	qty, _ := decimal.NewFromString(strings.TrimSpace(f.inputs[fieldQuantity].Value()))
	price, _ := decimal.NewFromString(strings.TrimSpace(f.inputs[fieldUnitPrice].Value()))

	in := &client.PurchaseInput{
		ProductName:     strings.TrimSpace(f.inputs[fieldProductName].Value()),
		Quantity:        qty.InexactFloat64(),
		MeasurementUnit: strings.TrimSpace(f.inputs[fieldUnit].Value()),
		UnitPrice:       price.InexactFloat64(),
		PurchaseDate:    strings.TrimSpace(f.inputs[fieldDate].Value()),
	}

	if v := strings.TrimSpace(f.inputs[fieldCategory].Value()); v != "" {
		in.Category = &v
	}
	if v := strings.TrimSpace(f.inputs[fieldLocation].Value()); v != "" {
		in.PurchaseLocation = &v
	}
	return in
}
