package openitem_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cwehmeyer/belegwerk/internal/openitem"
)

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := openitem.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateOpenItem(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, item *openitem.OpenItem) error {
			item.ID = uuid.New()
			return nil
		})

	svc := openitem.NewService(repo)

	item, err := svc.Create(context.Background(), openitem.CreateParams{
		CustomerID:  uuid.New(),
		Description: " Miete Juni ",
		Amount:      decimal.RequireFromString("850.00"),
		DueDate:     time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Miete Juni", item.Description)
	assert.False(t, item.Paid)
}

func TestService_Create_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := openitem.NewService(openitem.NewMockRepository(ctrl))

	_, err := svc.Create(context.Background(), openitem.CreateParams{
		CustomerID: uuid.New(),
		Amount:     decimal.RequireFromString("10.00"),
	})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), openitem.CreateParams{
		CustomerID:  uuid.New(),
		Description: "Gutschrift",
		Amount:      decimal.RequireFromString("-10.00"),
	})
	assert.Error(t, err)
}

func TestOpenItem_Due(t *testing.T) {
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	overdue := openitem.OpenItem{DueDate: today.AddDate(0, 0, -1)}
	assert.True(t, overdue.Due(today))

	dueToday := openitem.OpenItem{DueDate: today}
	assert.True(t, dueToday.Due(today))

	future := openitem.OpenItem{DueDate: today.AddDate(0, 0, 1)}
	assert.False(t, future.Due(today))

	paid := openitem.OpenItem{DueDate: today, Paid: true}
	assert.False(t, paid.Due(today))
}
