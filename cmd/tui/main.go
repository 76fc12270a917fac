package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/cwehmeyer/belegwerk/cmd/tui/internal/view"
	"github.com/cwehmeyer/belegwerk/internal/config"
	"github.com/cwehmeyer/belegwerk/internal/database"
	"github.com/cwehmeyer/belegwerk/internal/extract"
	"github.com/cwehmeyer/belegwerk/internal/ingest"
	"github.com/cwehmeyer/belegwerk/internal/openitem"
	openItemStore "github.com/cwehmeyer/belegwerk/internal/openitem/store"
	"github.com/cwehmeyer/belegwerk/internal/receipt"
	receiptStore "github.com/cwehmeyer/belegwerk/internal/receipt/store"
	"github.com/cwehmeyer/belegwerk/internal/ustva"
	ustvaStore "github.com/cwehmeyer/belegwerk/internal/ustva/store"
)

type model struct {
	receiptService  *receipt.Service
	ustvaService    *ustva.Service
	openItemService *openitem.Service

	currentView View

	receiptsView  view.ReceiptsModel
	ustvaView     view.UstvaModel
	openItemsView view.OpenItemsModel
}

type View int

const (
	ViewMenu      View = 0
	ViewReceipts  View = 1
	ViewUstva     View = 2
	ViewOpenItems View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	receiptSvc := receipt.NewService(
		receiptStore.New(db),
		ingest.NewService(),
		receipt.NewDiskStorage(cfg.Uploads.Dir),
		extract.SlogNotifier{},
	)
	ustvaSvc := ustva.NewService(ustva.NewEngine(receiptSvc), ustvaStore.New(db))
	openItemSvc := openitem.NewService(openItemStore.New(db))

	return model{
		receiptService:  receiptSvc,
		ustvaService:    ustvaSvc,
		openItemService: openItemSvc,
		currentView:     ViewMenu,
		receiptsView:    view.NewReceiptsModel(receiptSvc),
		ustvaView:       view.NewUstvaModel(ustvaSvc),
		openItemsView:   view.NewOpenItemsModel(openItemSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewReceipts
				m.receiptsView = view.NewReceiptsModel(m.receiptService)

				return m, m.receiptsView.Init()
			case "2":
				m.currentView = ViewUstva
				m.ustvaView = view.NewUstvaModel(m.ustvaService)

				return m, m.ustvaView.Init()
			case "3":
				m.currentView = ViewOpenItems
				m.openItemsView = view.NewOpenItemsModel(m.openItemService)

				return m, m.openItemsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewReceipts:
		var newModel tea.Model
		newModel, cmd = m.receiptsView.Update(msg)
		m.receiptsView = newModel.(view.ReceiptsModel)
	case ViewUstva:
		var newModel tea.Model
		newModel, cmd = m.ustvaView.Update(msg)
		m.ustvaView = newModel.(view.UstvaModel)
	case ViewOpenItems:
		var newModel tea.Model
		newModel, cmd = m.openItemsView.Update(msg)
		m.openItemsView = newModel.(view.OpenItemsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Belegwerk TUI\n\n" +
				"1. Browse Receipts\n" +
				"2. Generate UStVA\n" +
				"3. Manage Open Items\n\n" +
				"q. Quit",
		)
	case ViewReceipts:
		return m.receiptsView.View()
	case ViewUstva:
		return m.ustvaView.View()
	case ViewOpenItems:
		return m.openItemsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
