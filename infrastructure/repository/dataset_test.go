package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/stayview/booking-insights-api/infrastructure/datasource/mocks"
	"github.com/stayview/booking-insights-api/internal/domain"
)

func sampleTable(rows int) domain.BookingTable {
	table := make(domain.BookingTable, 0, rows)
	for i := 0; i < rows; i++ {
		arrival := time.Date(2017, time.July, 1+i, 0, 0, 0, 0, time.UTC)
		table = append(table, domain.Booking{
			ArrivalDate:   arrival,
			LeadTime:      10 * i,
			IsCanceled:    i % 2,
			MarketSegment: "Online TA",
			CustomerType:  "Transient",
			ADR:           100,
			CountryName:   "Portugal",
			ArrivalMonth:  "July",
			DayOfWeek:     arrival.Weekday().String(),
		})
	}
	return table
}

func TestDatasetRepository_TableCachesByFingerprint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Identity().Return("csv:testdata/bookings.csv").AnyTimes()
	source.EXPECT().Fingerprint(gomock.Any()).Return("100-1", nil).Times(2)
	source.EXPECT().Fetch(gomock.Any()).Return(sampleTable(4), nil).Times(1)

	repo := NewDatasetRepository(source)
	ctx := context.Background()

	table, snapshot, err := repo.Table(ctx)
	assert.NoError(t, err)
	assert.Len(t, table, 4)
	assert.NotNil(t, snapshot)
	assert.Equal(t, 4, snapshot.Rows)
	assert.Equal(t, "100-1", snapshot.Fingerprint)
	assert.NotEmpty(t, snapshot.ID)

	// Segunda chamada com o mesmo fingerprint não deve buscar novamente
	cached, cachedSnapshot, err := repo.Table(ctx)
	assert.NoError(t, err)
	assert.Len(t, cached, 4)
	assert.Equal(t, snapshot.ID, cachedSnapshot.ID)
}

func TestDatasetRepository_TableReloadsOnFingerprintChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Identity().Return("csv:testdata/bookings.csv").AnyTimes()

	first := source.EXPECT().Fingerprint(gomock.Any()).Return("100-1", nil).Times(1)
	source.EXPECT().Fingerprint(gomock.Any()).Return("120-2", nil).Times(1).After(first)

	firstFetch := source.EXPECT().Fetch(gomock.Any()).Return(sampleTable(4), nil).Times(1)
	source.EXPECT().Fetch(gomock.Any()).Return(sampleTable(6), nil).Times(1).After(firstFetch)

	repo := NewDatasetRepository(source)
	ctx := context.Background()

	_, before, err := repo.Table(ctx)
	assert.NoError(t, err)

	table, after, err := repo.Table(ctx)
	assert.NoError(t, err)
	assert.Len(t, table, 6)
	assert.Equal(t, "120-2", after.Fingerprint)
	assert.NotEqual(t, before.ID, after.ID)
}

func TestDatasetRepository_RefreshForcesReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Identity().Return("xlsx:testdata/bookings.xlsx").AnyTimes()
	source.EXPECT().Fingerprint(gomock.Any()).Return("100-1", nil).Times(2)
	source.EXPECT().Fetch(gomock.Any()).Return(sampleTable(4), nil).Times(2)

	repo := NewDatasetRepository(source)
	ctx := context.Background()

	_, before, err := repo.Table(ctx)
	assert.NoError(t, err)

	// Refresh recarrega mesmo sem mudança no fingerprint
	after, err := repo.Refresh(ctx)
	assert.NoError(t, err)
	assert.NotEqual(t, before.ID, after.ID)
}

func TestDatasetRepository_InvalidateDropsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Identity().Return("csv:testdata/bookings.csv").AnyTimes()
	source.EXPECT().Fingerprint(gomock.Any()).Return("100-1", nil).Times(2)
	source.EXPECT().Fetch(gomock.Any()).Return(sampleTable(4), nil).Times(2)

	repo := NewDatasetRepository(source)
	ctx := context.Background()

	_, _, err := repo.Table(ctx)
	assert.NoError(t, err)

	repo.Invalidate()

	_, snapshot, err := repo.Table(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, snapshot)
}

func TestDatasetRepository_TablePropagatesSourceErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fetchErr := errors.New("corrupted file")

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Identity().Return("csv:testdata/bookings.csv").AnyTimes()
	source.EXPECT().Fingerprint(gomock.Any()).Return("100-1", nil)
	source.EXPECT().Fetch(gomock.Any()).Return(nil, fetchErr)

	repo := NewDatasetRepository(source)

	table, snapshot, err := repo.Table(context.Background())
	assert.ErrorIs(t, err, fetchErr)
	assert.Nil(t, table)
	assert.Nil(t, snapshot)
}

func TestDatasetRepository_SnapshotLoadsWhenCacheIsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Identity().Return("postgres:bookings").AnyTimes()
	source.EXPECT().Fingerprint(gomock.Any()).Return("100-1", nil)
	source.EXPECT().Fetch(gomock.Any()).Return(sampleTable(2), nil)

	repo := NewDatasetRepository(source)

	snapshot, err := repo.Snapshot(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, snapshot.Rows)
	assert.Equal(t, "postgres:bookings", snapshot.Source)

	// Snapshot já carregado é devolvido sem nova consulta ao source
	again, err := repo.Snapshot(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, snapshot.ID, again.ID)
}
