package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cwehmeyer/belegwerk/internal/openitem"
)

type OpenItemsModel struct {
	CommonModel
	openItemSvc *openitem.Service

	table  table.Model
	items  []*openitem.OpenItem
	unpaid bool

	loading bool
	err     error
	status  string
}

func NewOpenItemsModel(openItemSvc *openitem.Service) OpenItemsModel {
	columns := []table.Column{
		{Title: "Due", Width: 12},
		{Title: "Description", Width: 40},
		{Title: "Amount", Width: 10},
		{Title: "Paid", Width: 6},
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

	return OpenItemsModel{
		openItemSvc: openItemSvc,
		table:       t,
		unpaid:      true,
	}
}

func (m OpenItemsModel) Title() string { return "Open Items" }
func (m OpenItemsModel) ShortHelp() string {
	return "Esc: back | p: mark paid | u: toggle unpaid filter | r: refresh"
}

func (m OpenItemsModel) Init() tea.Cmd {
	return m.loadItemsCmd()
}

func (m OpenItemsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadOpenItemsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.items = msg.items
		m.refreshTable()
		return m, nil

	case markPaidMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error marking paid: %v", msg.err)
		} else {
			m.status = "Marked as paid"
		}
		return m, m.loadItemsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadItemsCmd()
		case "u":
			m.unpaid = !m.unpaid
			return m, m.loadItemsCmd()
		case "p":
			return m, m.markPaidCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m OpenItemsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading open items...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	filterLabel := "All"
	if m.unpaid {
		filterLabel = "Unpaid"
	}

	header := fmt.Sprintf("Filter: [u] %s", activeStyle(filterLabel))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *OpenItemsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.items))
	for _, item := range m.items {
		paid := "no"
		if item.Paid {
			paid = "yes"
		}

		rows = append(rows, table.Row{
			FormatDate(item.DueDate),
			item.Description,
			item.Amount.StringFixed(2),
			paid,
		})
	}
	m.table.SetRows(rows)
}

type loadOpenItemsMsg struct {
	items []*openitem.OpenItem
	err   error
}

func (m OpenItemsModel) loadItemsCmd() tea.Cmd {
	filter := openitem.ListFilter{Unpaid: m.unpaid}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		items, err := m.openItemSvc.List(ctx, filter)
		return loadOpenItemsMsg{items: items, err: err}
	}
}

type markPaidMsg struct {
	err error
}

func (m OpenItemsModel) markPaidCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.items) {
		return nil
	}

	id := m.items[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return markPaidMsg{err: m.openItemSvc.MarkPaid(ctx, id)}
	}
}
