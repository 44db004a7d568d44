package tui

import (
	"context"
	"fmt"

	"go-purchase-tracker/pkg/client"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

type viewMode int

const (
	modeList viewMode = iota
	modeForm
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 1)
	totalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle = lipgloss.NewStyle().Faint(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

type listLoadedMsg struct {
	list *client.PurchaseList
	err  error
}

type detailLoadedMsg struct {
	purchase *client.Purchase
	err      error
}

type savedMsg struct{ err error }

type deletedMsg struct{ err error }

// Model is the root terminal view: a purchase list and a create/edit form.
type Model struct {
	vm   *PurchaseViewModel
	mode viewMode

	table      table.Model
	purchases  []client.Purchase
	monthTotal float64
	confirmID  string // non-empty while a delete awaits confirmation
	loading    bool
	statusErr  string

	form formModel
}

func NewModel(vm *PurchaseViewModel) Model {
	columns := []table.Column{
		{Title: "Date", Width: 10},
		{Title: "Product", Width: 24},
		{Title: "Qty", Width: 10},
		{Title: "Total", Width: 10},
		{Title: "Category", Width: 14},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	return Model{
		vm:      vm,
		mode:    modeList,
		table:   t,
		form:    newFormModel(),
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadList()
}

func (m Model) loadList() tea.Cmd {
	return func() tea.Msg {
		list, err := m.vm.List(context.Background())
		return listLoadedMsg{list: list, err: err}
	}
}

func (m Model) loadDetail(id string) tea.Cmd {
	return func() tea.Msg {
		purchase, err := m.vm.Detail(context.Background(), id)
		return detailLoadedMsg{purchase: purchase, err: err}
	}
}

func (m Model) submitForm() tea.Cmd {
	in := m.form.toInput()
	editID := m.form.editID
	return func() tea.Msg {
		var err error
		if editID == "" {
			_, err = m.vm.Create(context.Background(), in)
		} else {
			_, err = m.vm.Update(context.Background(), editID, in)
		}
		return savedMsg{err: err}
	}
}

func (m Model) deletePurchase(id string) tea.Cmd {
	return func() tea.Msg {
		return deletedMsg{err: m.vm.Delete(context.Background(), id)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.statusErr = msg.err.Error()
			return m, nil
		}
		m.statusErr = ""
		m.purchases = msg.list.PurchaseList
		m.monthTotal = msg.list.TotalCurrentMonth
		m.table.SetRows(m.rows())
		return m, nil

	case detailLoadedMsg:
		if msg.err != nil {
			m.statusErr = msg.err.Error()
			return m, nil
		}
		m.form = newFormModel()
		m.form.prefill(msg.purchase)
		m.form.setFocus(fieldProductName)
		m.mode = modeForm
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.form.errs = []string{msg.err.Error()}
			return m, nil
		}
		m.mode = modeList
		m.loading = true
		return m, m.loadList()

	case deletedMsg:
		m.confirmID = ""
		if msg.err != nil {
			m.statusErr = msg.err.Error()
			return m, nil
		}
		m.loading = true
		return m, m.loadList()

	case tea.KeyMsg:
		if m.mode == modeForm {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	if m.mode == modeForm {
		return m, m.form.updateInputs(msg)
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A pending delete only listens for its confirmation.
	if m.confirmID != "" {
		switch msg.String() {
		case "y", "Y":
			return m, m.deletePurchase(m.confirmID)
		default:
			m.confirmID = ""
			return m, nil
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "a":
		m.form = newFormModel()
		m.form.setFocus(fieldProductName)
		m.mode = modeForm
		return m, nil
	case "e":
		if p := m.selected(); p != nil {
			return m, m.loadDetail(p.PurchaseID)
		}
		return m, nil
	case "d":
		if p := m.selected(); p != nil {
			m.confirmID = p.PurchaseID
		}
		return m, nil
	case "r":
		m.vm.cache.Invalidate(KeyPurchases)
		m.loading = true
		return m, m.loadList()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		return m, nil
	case "tab", "down":
		m.form.setFocus((m.form.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.form.setFocus((m.form.focus + fieldCount - 1) % fieldCount)
		return m, nil
	case "enter":
		if m.form.focus < fieldCount-1 {
			m.form.setFocus(m.form.focus + 1)
			return m, nil
		}
		fallthrough
	case "ctrl+s":
		if errs := m.form.validate(); len(errs) > 0 {
			m.form.errs = errs
			return m, nil
		}
		m.form.errs = nil
		return m, m.submitForm()
	}

	return m, m.form.updateInputs(msg)
}

func (m Model) selected() *client.Purchase {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.purchases) {
		return nil
	}
	return &m.purchases[i]
}

func (m Model) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.purchases))
	for _, p := range m.purchases {
		category := ""
		if p.Category != nil {
			category = *p.Category
		}
		rows = append(rows, table.Row{
			p.PurchaseDate,
			p.ProductName,
			fmt.Sprintf("%s %s", decimal.NewFromFloat(p.Quantity).String(), p.MeasurementUnit),
			decimal.NewFromFloat(p.TotalPrice).StringFixed(2),
			category,
		})
	}
	return rows
}

func (m Model) View() string {
	if m.mode == modeForm {
		return m.formView()
	}
	return m.listView()
}

func (m Model) listView() string {
	s := titleStyle.Render("Food Purchases") + "\n"
	s += totalStyle.Render(fmt.Sprintf("Spent this month: %s", decimal.NewFromFloat(m.monthTotal).StringFixed(2))) + "\n\n"

	switch {
	case m.loading:
		s += faintStyle.Render("Loading...") + "\n"
	case len(m.purchases) == 0:
		s += faintStyle.Render("No purchases recorded yet.") + "\n"
	default:
		s += m.table.View() + "\n"
	}

	if m.confirmID != "" {
		s += "\n" + errStyle.Render("Delete this purchase? (y/N)") + "\n"
	}
	if m.statusErr != "" {
		s += "\n" + errStyle.Render(m.statusErr) + "\n"
	}

	s += "\n" + faintStyle.Render("a add - e edit - d delete - r refresh - q quit")
	return s
}

func (m Model) formView() string {
	header := "New Purchase"
	if m.form.editID != "" {
		header = "Edit Purchase"
	}

	s := titleStyle.Render(header) + "\n\n"
	labels := []string{"Product", "Quantity", "Unit", "Unit price", "Date", "Category", "Location"}
	for i, in := range m.form.inputs {
		s += labelStyle.Render(labels[i]) + "\n" + in.View() + "\n"
	}

	s += "\n" + totalStyle.Render("Total: "+m.form.liveTotal()) + faintStyle.Render(" (read-only)") + "\n"

	for _, e := range m.form.errs {
		s += errStyle.Render("! "+e) + "\n"
	}

	s += "\n" + faintStyle.Render("tab next - enter submit on last field - esc cancel")
	return s
}
