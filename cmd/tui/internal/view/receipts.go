package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/cwehmeyer/belegwerk/internal/receipt"
)

type ReceiptsModel struct {
	CommonModel
	receiptSvc *receipt.Service

	table   table.Model
	records []*receipt.Record

	dateFilterIdx int
	filter        receipt.ListFilter

	loading bool
	err     error
}

func NewReceiptsModel(receiptSvc *receipt.Service) ReceiptsModel {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Supplier", Width: 30},
		{Title: "Net", Width: 10},
		{Title: "Tax", Width: 10},
		{Title: "Gross", Width: 10},
		{Title: "VAT%", Width: 5},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ReceiptsModel{
		receiptSvc: receiptSvc,
		table:      t,
		filter:     receipt.ListFilter{},
	}
}

func (m ReceiptsModel) Title() string { return "Receipts" }
func (m ReceiptsModel) ShortHelp() string {
	return "Esc: back | d: date filter | r: refresh"
}

func (m ReceiptsModel) Init() tea.Cmd {
	return m.loadReceiptsCmd()
}

func (m ReceiptsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadReceiptsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.records = msg.records
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadReceiptsCmd()
		case "d":
			m.dateFilterIdx = (m.dateFilterIdx + 1) % 3
			m.applyFilter()
			return m, m.loadReceiptsCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ReceiptsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading receipts...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	dateLabels := []string{"All Time", "This Month", "Last Month"}

	header := fmt.Sprintf(
		"Filter: [d] Date: %s",
		activeStyle(dateLabels[m.dateFilterIdx]),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *ReceiptsModel) applyFilter() {
	now := time.Now()

	switch m.dateFilterIdx {
	case 1:
		s := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		e := s.AddDate(0, 1, 0).Add(-time.Nanosecond)
		m.filter.StartDate = &s
		m.filter.EndDate = &e
	case 2:
		s := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, now.Location())
		e := s.AddDate(0, 1, 0).Add(-time.Nanosecond)
		m.filter.StartDate = &s
		m.filter.EndDate = &e
	default:
		m.filter.StartDate = nil
		m.filter.EndDate = nil
	}
}

func (m *ReceiptsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.records))
	for _, rec := range m.records {
		date := "-"
		if rec.Date != nil {
			date = FormatDate(*rec.Date)
		}

		supplier := "-"
		if rec.Supplier != nil {
			supplier = *rec.Supplier
		}

		vatRate := "-"
		if rec.VATRate != nil {
			vatRate = fmt.Sprintf("%d", *rec.VATRate)
		}

		rows = append(rows, table.Row{
			date,
			supplier,
			formatAmount(rec.NetAmount),
			formatAmount(rec.TaxAmount),
			formatAmount(rec.GrossAmount),
			vatRate,
		})
	}
	m.table.SetRows(rows)
}

func formatAmount(d *decimal.Decimal) string {
	if d == nil {
		return "-"
	}

	return d.StringFixed(2)
}

type loadReceiptsMsg struct {
	records []*receipt.Record
	err     error
}

func (m ReceiptsModel) loadReceiptsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		records, err := m.receiptSvc.List(ctx, m.filter)
		return loadReceiptsMsg{records: records, err: err}
	}
}
