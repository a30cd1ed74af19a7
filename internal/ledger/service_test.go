package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/khata-app/khata/internal/ledger"
)

func TestService_Append(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *ledger.Entry) error {
			e.ID = 12
			return nil
		})

	svc := ledger.NewService(repo)
	got, err := svc.Append(context.Background(), ledger.AppendParams{
		Type:      entryType(ledger.EntryCredit),
		FolioType: class(ledger.ClassInvestor),
		Investor:  str("Anup"),
		Amount:    dec("100"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.ID)
	assert.Equal(t, "Anup", *got.Investor)
}

func TestService_AppendBatch_StopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)

	first := repo.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *ledger.Entry) error {
			e.ID = 1
			return nil
		})
	repo.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		After(first).
		Return(errors.New("db error"))

	svc := ledger.NewService(repo)
	entries, err := svc.AppendBatch(context.Background(), []ledger.AppendParams{
		{Investor: str("Anup")},
		{Investor: str("Ramesh")},
		{Investor: str("Sita")},
	})

	require.Error(t, err)
	// The rows written before the failure are reported back.
	assert.Len(t, entries, 1)
}

func TestService_ListPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)

	filter := ledger.ListFilter{Worker: str("Aarsh")}

	repo.EXPECT().CountEntries(gomock.Any(), filter).Return(3, nil)

	paged := filter
	paged.Limit = 2
	paged.Offset = 2

	repo.EXPECT().ListEntries(gomock.Any(), paged).Return([]*ledger.Entry{{ID: 3}}, nil)

	svc := ledger.NewService(repo)
	entries, page, err := svc.ListPage(context.Background(), filter, 2, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, ledger.Pagination{
		CurrentPage:  2,
		TotalPages:   2,
		TotalItems:   3,
		ItemsPerPage: 2,
	}, page)
}

func TestService_Summarize(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().ListEntries(gomock.Any(), ledger.ListFilter{}).Return([]*ledger.Entry{
			investorCredit(1, "Anup", "100"),
			investorCredit(2, "Ramesh", "30"),
		}, nil)

		svc := ledger.NewService(repo)
		got, err := svc.Summarize(context.Background())
		require.NoError(t, err)
		assert.True(t, got.TotalInvestment.Equal(decimal.NewFromInt(130)))
	})

	t.Run("StoreUnavailable", func(t *testing.T) {
		// Only total data-source unavailability fails the aggregation.
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := ledger.NewMockRepository(ctrl)
		repo.EXPECT().ListEntries(gomock.Any(), ledger.ListFilter{}).Return(nil, errors.New("connection refused"))

		svc := ledger.NewService(repo)
		_, err := svc.Summarize(context.Background())
		assert.Error(t, err)
	})
}
