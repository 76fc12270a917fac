// Package scheduler runs the recurring housekeeping jobs: monthly UStVA
// generation with email dispatch, missing-receipt nudges and payment
// reminders for due open items.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/cwehmeyer/belegwerk/internal/customer"
	"github.com/cwehmeyer/belegwerk/internal/openitem"
	"github.com/cwehmeyer/belegwerk/internal/receipt"
	"github.com/cwehmeyer/belegwerk/internal/ustva"
)

//go:generate mockgen -source=scheduler.go -destination=deps_mock.go -package=scheduler

type CustomerSource interface {
	List(ctx context.Context) ([]*customer.Customer, error)
}

type SummaryGenerator interface {
	Generate(ctx context.Context, customerID uuid.UUID, year, month int) (*ustva.Summary, bool, error)
}

type ReceiptSource interface {
	ReceiptsInRange(ctx context.Context, customerID uuid.UUID, start, end time.Time) ([]*receipt.Record, error)
}

type OpenItemSource interface {
	ListDue(ctx context.Context, day time.Time) ([]*openitem.OpenItem, error)
}

type Mailer interface {
	Send(ctx context.Context, toEmail, toName, subject, html string) error
}

// Scheduler owns the cron instance and the job implementations. Jobs run in
// the Europe/Berlin timezone to match the filing deadlines they remind about.
type Scheduler struct {
	cron      *cron.Cron
	customers CustomerSource
	summaries SummaryGenerator
	receipts  ReceiptSource
	openItems OpenItemSource
	mailer    Mailer
	now       func() time.Time
}

func New(customers CustomerSource, summaries SummaryGenerator, receipts ReceiptSource, openItems OpenItemSource, mailer Mailer) *Scheduler {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		slog.Warn("could not load Europe/Berlin timezone, falling back to UTC", "error", err)

		loc = time.UTC
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		customers: customers,
		summaries: summaries,
		receipts:  receipts,
		openItems: openItems,
		mailer:    mailer,
		now:       time.Now,
	}
}

// Start registers the jobs and launches the cron loop.
func (s *Scheduler) Start() error {
	jobs := []struct {
		spec string
		name string
		run  func(context.Context)
	}{
		{spec: "0 9 5 * *", name: "missing-receipts-reminder", run: s.RunMissingReceiptsReminder},
		{spec: "30 9 * * *", name: "payment-reminder", run: s.RunPaymentReminders},
		{spec: "0 9 10 * *", name: "ustva-reminder", run: s.RunUstva},
	}

	for _, job := range jobs {
		name := job.name
		run := job.run

		if _, err := s.cron.AddFunc(job.spec, func() {
			slog.Info("running scheduled job", "job", name)
			run(context.Background())
		}); err != nil {
			return fmt.Errorf("registering job %s: %w", name, err)
		}
	}

	s.cron.Start()

	return nil
}

// Stop halts the cron loop; running jobs finish.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunUstva generates and emails the current month's UStVA summary for every
// customer. A period that already has a stored summary is skipped. Failures
// are logged per customer and never abort the batch.
func (s *Scheduler) RunUstva(ctx context.Context) {
	now := s.now()

	customers, err := s.customers.List(ctx)
	if err != nil {
		slog.Error("ustva job: listing customers failed", "error", err)
		return
	}

	for _, c := range customers {
		summary, created, err := s.summaries.Generate(ctx, c.ID, now.Year(), int(now.Month()))
		if err != nil {
			slog.Error("ustva job: generation failed", "customer_id", c.ID, "error", err)
			continue
		}

		if !created {
			continue
		}

		subject := fmt.Sprintf("UStVA %s für %s", summary.Period, c.Name)
		html := fmt.Sprintf(
			"<h1>UStVA %s</h1><p>Umsatzsteuer: %s<br/>Vorsteuer: %s<br/>Zahllast: %s</p>",
			summary.Period,
			summary.SalesTax.StringFixed(2),
			summary.InputTax.StringFixed(2),
			summary.Liability.StringFixed(2),
		)

		if err := s.mailer.Send(ctx, c.Email, c.Name, subject, html); err != nil {
			slog.Error("ustva job: sending mail failed", "customer_id", c.ID, "error", err)
		}
	}
}

// RunMissingReceiptsReminder nudges customers who have not uploaded a single
// receipt for the current month yet.
func (s *Scheduler) RunMissingReceiptsReminder(ctx context.Context) {
	now := s.now()

	period, err := ustva.NewPeriod(now.Year(), int(now.Month()))
	if err != nil {
		slog.Error("missing receipts job: bad current period", "error", err)
		return
	}

	start, end := period.Bounds()

	customers, err := s.customers.List(ctx)
	if err != nil {
		slog.Error("missing receipts job: listing customers failed", "error", err)
		return
	}

	for _, c := range customers {
		records, err := s.receipts.ReceiptsInRange(ctx, c.ID, start, end)
		if err != nil {
			slog.Error("missing receipts job: listing receipts failed", "customer_id", c.ID, "error", err)
			continue
		}

		if len(records) > 0 {
			continue
		}

		subject := fmt.Sprintf("Belege für %s fehlen noch", period)
		html := fmt.Sprintf(
			"<p>Für den Zeitraum %s wurden noch keine Belege hochgeladen.</p>",
			period,
		)

		if err := s.mailer.Send(ctx, c.Email, c.Name, subject, html); err != nil {
			slog.Error("missing receipts job: sending mail failed", "customer_id", c.ID, "error", err)
		}
	}
}

// RunPaymentReminders mails customers about unpaid open items that are due.
func (s *Scheduler) RunPaymentReminders(ctx context.Context) {
	now := s.now()

	items, err := s.openItems.ListDue(ctx, now)
	if err != nil {
		slog.Error("payment reminder job: listing due items failed", "error", err)
		return
	}

	if len(items) == 0 {
		return
	}

	customers, err := s.customers.List(ctx)
	if err != nil {
		slog.Error("payment reminder job: listing customers failed", "error", err)
		return
	}

	byID := make(map[uuid.UUID]*customer.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	for _, item := range items {
		c, ok := byID[item.CustomerID]
		if !ok {
			slog.Warn("payment reminder job: open item without customer", "open_item_id", item.ID)
			continue
		}

		subject := fmt.Sprintf("Zahlungserinnerung: %s", item.Description)
		html := fmt.Sprintf(
			"<p>%s über %s € war am %s fällig.</p>",
			item.Description,
			item.Amount.StringFixed(2),
			item.DueDate.Format("02.01.2006"),
		)

		if err := s.mailer.Send(ctx, c.Email, c.Name, subject, html); err != nil {
			slog.Error("payment reminder job: sending mail failed", "customer_id", c.ID, "error", err)
		}
	}
}
