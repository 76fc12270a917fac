package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/cwehmeyer/belegwerk/internal/ustva"
)

type ustvaState int

const (
	ustvaStateForm ustvaState = iota
	ustvaStateResult
)

type UstvaModel struct {
	CommonModel
	ustvaSvc *ustva.Service

	state ustvaState
	form  *huh.Form

	formCustomerID string
	formPeriod     string

	summary *ustva.Summary
	created bool
	err     error
}

func NewUstvaModel(ustvaSvc *ustva.Service) UstvaModel {
	m := UstvaModel{ustvaSvc: ustvaSvc}
	m.form = m.newForm()

	return m
}

func (m UstvaModel) Title() string { return "UStVA" }
func (m UstvaModel) ShortHelp() string {
	if m.state == ustvaStateResult {
		return "Esc: back | n: new period"
	}
	return "Navigate form | Esc: back"
}

func (m UstvaModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("customer_id").
				Title("Customer ID").
				Value(&m.formCustomerID).
				Validate(func(s string) error {
					if _, err := uuid.Parse(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("not a valid customer id")
					}
					return nil
				}),

			huh.NewInput().
				Key("period").
				Title("Period (YYYY-MM)").
				Placeholder("2025-07").
				Value(&m.formPeriod).
				Validate(func(s string) error {
					if _, err := ustva.ParsePeriod(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("expected YYYY-MM")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m UstvaModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m UstvaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ustvaResultMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.summary = msg.summary
		m.created = msg.created
		m.state = ustvaStateResult

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.state == ustvaStateResult && msg.String() == "n" {
			m.state = ustvaStateForm
			m.summary = nil
			m.err = nil
			m.form = m.newForm()

			return m, m.form.Init()
		}
	}

	if m.state != ustvaStateForm {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.generateCmd()
}

func (m UstvaModel) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.state == ustvaStateResult && m.summary != nil {
		note := "already generated"
		if m.created {
			note = "newly generated"
		}

		body := fmt.Sprintf(
			"UStVA %s (%s)\n\n"+
				"Net sum:       %s\n"+
				"Tax sum:       %s\n"+
				"Gross sum:     %s\n\n"+
				"Umsatzsteuer:  %s\n"+
				"Vorsteuer:     %s\n"+
				"Zahllast:      %s",
			m.summary.Period, note,
			m.summary.NetSum.StringFixed(2),
			m.summary.TaxSum.StringFixed(2),
			m.summary.GrossSum.StringFixed(2),
			m.summary.SalesTax.StringFixed(2),
			m.summary.InputTax.StringFixed(2),
			m.summary.Liability.StringFixed(2),
		)

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Render(body)

		return lipgloss.NewStyle().Padding(1).Render(panel)
	}

	return lipgloss.NewStyle().Padding(1).Render(
		"Generate UStVA\n\n" + m.form.View(),
	)
}

type ustvaResultMsg struct {
	summary *ustva.Summary
	created bool
	err     error
}

func (m UstvaModel) generateCmd() tea.Cmd {
	customerID, err := uuid.Parse(strings.TrimSpace(m.form.GetString("customer_id")))
	if err != nil {
		return func() tea.Msg { return ustvaResultMsg{err: err} }
	}

	period, err := ustva.ParsePeriod(strings.TrimSpace(m.form.GetString("period")))
	if err != nil {
		return func() tea.Msg { return ustvaResultMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		summary, created, err := m.ustvaSvc.Generate(ctx, customerID, period.Year, int(period.Month))
		return ustvaResultMsg{summary: summary, created: created, err: err}
	}
}
