package receipt_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cwehmeyer/belegwerk/internal/extract"
	"github.com/cwehmeyer/belegwerk/internal/receipt"
)

type notice struct {
	severity extract.Severity
	fields   map[string]string
}

// captureNotifier records notices for assertions.
type captureNotifier struct {
	notices []notice
}

func (c *captureNotifier) Notify(_ context.Context, severity extract.Severity, _ string, fields map[string]string) {
	c.notices = append(c.notices, notice{severity: severity, fields: fields})
}

func (c *captureNotifier) missingFields() []string {
	var names []string
	for _, n := range c.notices {
		names = append(names, n.fields["field"])
	}

	return names
}

func newProcessService(t *testing.T) (*receipt.Service, *receipt.MockRepository, *receipt.MockTextExtractor, *receipt.MockStorage, *captureNotifier) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := receipt.NewMockRepository(ctrl)
	extractor := receipt.NewMockTextExtractor(ctrl)
	storage := receipt.NewMockStorage(ctrl)
	notifier := &captureNotifier{}

	return receipt.NewService(repo, extractor, storage, notifier), repo, extractor, storage, notifier
}

func TestService_Process(t *testing.T) {
	customerID := uuid.New()

	svc, repo, extractor, storage, notifier := newProcessService(t)

	storage.EXPECT().
		Save("rechnung.pdf", []byte("raw")).
		Return("/uploads/1_rechnung.pdf", nil)

	extractor.EXPECT().
		ExtractText(gomock.Any(), "rechnung.pdf", []byte("raw")).
		Return([]string{
			"Malermeister Krause",
			"Rechnung vom 15.06.2025",
			"Netto 100,00",
			"USt 19,00",
			"Brutto 119,00",
		}, nil)

	repo.EXPECT().
		CreateReceipt(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *receipt.Record) error {
			rec.ID = uuid.New()
			rec.UploadedAt = time.Now()
			return nil
		})

	rec, err := svc.Process(context.Background(), customerID, "rechnung.pdf", []byte("raw"))
	require.NoError(t, err)

	assert.Equal(t, customerID, rec.CustomerID)
	assert.Equal(t, "/uploads/1_rechnung.pdf", rec.FilePath)

	require.NotNil(t, rec.Supplier)
	assert.Equal(t, "Malermeister Krause", *rec.Supplier)

	require.NotNil(t, rec.Date)
	assert.Equal(t, "2025-06-15", rec.Date.Format(time.DateOnly))

	require.NotNil(t, rec.NetAmount)
	require.NotNil(t, rec.TaxAmount)
	require.NotNil(t, rec.GrossAmount)
	assert.Equal(t, "100", rec.NetAmount.String())
	assert.Equal(t, "19", rec.TaxAmount.String())
	assert.Equal(t, "119", rec.GrossAmount.String())

	require.NotNil(t, rec.VATRate)
	assert.Equal(t, 19, *rec.VATRate)

	assert.Empty(t, notifier.notices)
}

func TestService_Process_MissingFieldsProduceWarningsNotErrors(t *testing.T) {
	svc, repo, extractor, storage, notifier := newProcessService(t)

	storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return("/uploads/x.txt", nil)

	// No date, no amounts; only the vendor line survives.
	extractor.EXPECT().
		ExtractText(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]string{"Taxi Berlin"}, nil)

	repo.EXPECT().CreateReceipt(gomock.Any(), gomock.Any()).Return(nil)

	rec, err := svc.Process(context.Background(), uuid.New(), "x.txt", []byte("y"))
	require.NoError(t, err)

	assert.Nil(t, rec.Date)
	assert.Nil(t, rec.NetAmount)
	assert.Nil(t, rec.TaxAmount)
	assert.Nil(t, rec.GrossAmount)
	assert.Nil(t, rec.VATRate)

	assert.ElementsMatch(t,
		[]string{"date", "net_amount", "tax_amount", "gross_amount"},
		notifier.missingFields(),
	)
}

func TestService_Process_ImplausibleDateLeftAbsent(t *testing.T) {
	svc, repo, extractor, storage, notifier := newProcessService(t)

	storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return("/uploads/x.txt", nil)

	extractor.EXPECT().
		ExtractText(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]string{"Kiosk am Markt", "gedruckt 35.13.2025"}, nil)

	repo.EXPECT().CreateReceipt(gomock.Any(), gomock.Any()).Return(nil)

	rec, err := svc.Process(context.Background(), uuid.New(), "x.txt", []byte("y"))
	require.NoError(t, err)

	assert.Nil(t, rec.Date)
	assert.Contains(t, notifier.missingFields(), "date")
}

func TestService_Process_ExtractionFailureAborts(t *testing.T) {
	svc, _, extractor, storage, _ := newProcessService(t)

	storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return("/uploads/x.pdf", nil)

	extractor.EXPECT().
		ExtractText(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("document unreadable"))

	// No CreateReceipt expectation: a failed extraction must not persist
	// a partial record.
	rec, err := svc.Process(context.Background(), uuid.New(), "x.pdf", []byte("y"))
	assert.Error(t, err)
	assert.Nil(t, rec)
}

func TestService_Process_StorageFailureAborts(t *testing.T) {
	svc, _, _, storage, _ := newProcessService(t)

	storage.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", errors.New("disk full"))

	rec, err := svc.Process(context.Background(), uuid.New(), "x.pdf", []byte("y"))
	assert.Error(t, err)
	assert.Nil(t, rec)
}

func TestService_ReceiptsInRange(t *testing.T) {
	svc, repo, _, _, _ := newProcessService(t)

	customerID := uuid.New()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		ListReceipts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter receipt.ListFilter) ([]*receipt.Record, error) {
			require.NotNil(t, filter.CustomerID)
			require.NotNil(t, filter.StartDate)
			require.NotNil(t, filter.EndDate)
			assert.Equal(t, customerID, *filter.CustomerID)
			assert.Equal(t, start, *filter.StartDate)
			assert.Equal(t, end, *filter.EndDate)
			return []*receipt.Record{}, nil
		})

	_, err := svc.ReceiptsInRange(context.Background(), customerID, start, end)
	require.NoError(t, err)
}
