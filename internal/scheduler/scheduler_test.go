package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/cwehmeyer/belegwerk/internal/customer"
	"github.com/cwehmeyer/belegwerk/internal/openitem"
	"github.com/cwehmeyer/belegwerk/internal/receipt"
	"github.com/cwehmeyer/belegwerk/internal/ustva"
)

type schedulerMocks struct {
	customers *MockCustomerSource
	summaries *MockSummaryGenerator
	receipts  *MockReceiptSource
	openItems *MockOpenItemSource
	mailer    *MockMailer
}

func newScheduler(t *testing.T, now time.Time) (*Scheduler, schedulerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mocks := schedulerMocks{
		customers: NewMockCustomerSource(ctrl),
		summaries: NewMockSummaryGenerator(ctrl),
		receipts:  NewMockReceiptSource(ctrl),
		openItems: NewMockOpenItemSource(ctrl),
		mailer:    NewMockMailer(ctrl),
	}

	s := New(mocks.customers, mocks.summaries, mocks.receipts, mocks.openItems, mocks.mailer)
	s.now = func() time.Time { return now }

	return s, mocks
}

func testCustomer(name, email string) *customer.Customer {
	return &customer.Customer{ID: uuid.New(), Name: name, Email: email}
}

func TestRunUstva_MailsFreshSummariesOnly(t *testing.T) {
	now := time.Date(2025, time.July, 10, 9, 0, 0, 0, time.UTC)
	s, mocks := newScheduler(t, now)

	fresh := testCustomer("Bäckerei Müller", "mueller@example.com")
	stale := testCustomer("Kiosk Schmidt", "schmidt@example.com")

	summary := &ustva.Summary{
		CustomerID: fresh.ID,
		Period:     "2025-07",
		SalesTax:   decimal.RequireFromString("19.00"),
		InputTax:   decimal.Zero,
		Liability:  decimal.RequireFromString("19.00"),
	}

	mocks.customers.EXPECT().List(gomock.Any()).Return([]*customer.Customer{fresh, stale}, nil)
	mocks.summaries.EXPECT().Generate(gomock.Any(), fresh.ID, 2025, 7).Return(summary, true, nil)
	mocks.summaries.EXPECT().Generate(gomock.Any(), stale.ID, 2025, 7).Return(&ustva.Summary{}, false, nil)
	mocks.mailer.EXPECT().
		Send(gomock.Any(), fresh.Email, fresh.Name, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, subject, html string) error {
			assert.Contains(t, subject, "2025-07")
			assert.Contains(t, html, "19.00")
			return nil
		})

	s.RunUstva(context.Background())
}

func TestRunUstva_FailingCustomerDoesNotAbortBatch(t *testing.T) {
	now := time.Date(2025, time.July, 10, 9, 0, 0, 0, time.UTC)
	s, mocks := newScheduler(t, now)

	broken := testCustomer("Kaputt GmbH", "kaputt@example.com")
	healthy := testCustomer("Heil KG", "heil@example.com")

	summary := &ustva.Summary{CustomerID: healthy.ID, Period: "2025-07"}

	mocks.customers.EXPECT().List(gomock.Any()).Return([]*customer.Customer{broken, healthy}, nil)
	mocks.summaries.EXPECT().Generate(gomock.Any(), broken.ID, 2025, 7).Return(nil, false, errors.New("db down"))
	mocks.summaries.EXPECT().Generate(gomock.Any(), healthy.ID, 2025, 7).Return(summary, true, nil)
	mocks.mailer.EXPECT().Send(gomock.Any(), healthy.Email, healthy.Name, gomock.Any(), gomock.Any()).Return(nil)

	s.RunUstva(context.Background())
}

func TestRunMissingReceiptsReminder(t *testing.T) {
	now := time.Date(2024, time.February, 5, 9, 0, 0, 0, time.UTC)
	s, mocks := newScheduler(t, now)

	idle := testCustomer("Stille GbR", "stille@example.com")
	active := testCustomer("Fleißig UG", "fleissig@example.com")

	start := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)

	mocks.customers.EXPECT().List(gomock.Any()).Return([]*customer.Customer{idle, active}, nil)
	mocks.receipts.EXPECT().ReceiptsInRange(gomock.Any(), idle.ID, start, end).Return(nil, nil)
	mocks.receipts.EXPECT().ReceiptsInRange(gomock.Any(), active.ID, start, end).Return([]*receipt.Record{{}}, nil)
	mocks.mailer.EXPECT().
		Send(gomock.Any(), idle.Email, idle.Name, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, subject, _ string) error {
			assert.Contains(t, subject, "2024-02")
			return nil
		})

	s.RunMissingReceiptsReminder(context.Background())
}

func TestRunPaymentReminders(t *testing.T) {
	now := time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC)
	s, mocks := newScheduler(t, now)

	debtor := testCustomer("Säumig OHG", "saeumig@example.com")

	item := &openitem.OpenItem{
		ID:          uuid.New(),
		CustomerID:  debtor.ID,
		Description: "Rechnung 2025-017",
		Amount:      decimal.RequireFromString("240.00"),
		DueDate:     time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	orphan := &openitem.OpenItem{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		Description: "Rechnung ohne Kunde",
		Amount:      decimal.RequireFromString("10.00"),
		DueDate:     item.DueDate,
	}

	mocks.openItems.EXPECT().ListDue(gomock.Any(), now).Return([]*openitem.OpenItem{item, orphan}, nil)
	mocks.customers.EXPECT().List(gomock.Any()).Return([]*customer.Customer{debtor}, nil)
	mocks.mailer.EXPECT().
		Send(gomock.Any(), debtor.Email, debtor.Name, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, subject, html string) error {
			assert.Contains(t, subject, "Rechnung 2025-017")
			assert.Contains(t, html, "240.00")
			assert.Contains(t, html, "01.03.2025")
			return nil
		})

	s.RunPaymentReminders(context.Background())
}

func TestRunPaymentReminders_NoDueItems(t *testing.T) {
	now := time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC)
	s, mocks := newScheduler(t, now)

	mocks.openItems.EXPECT().ListDue(gomock.Any(), now).Return(nil, nil)

	s.RunPaymentReminders(context.Background())
}
