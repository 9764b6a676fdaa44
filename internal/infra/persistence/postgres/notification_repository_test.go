package postgres

import (
	"context"
	"os"
	"testing"

	"vradmin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// testDSNEnv names a disposable database for the query tests below.
const testDSNEnv = "VRADMIN_TEST_POSTGRES_DSN"

// openTestDB returns a transaction on the test database that is rolled back
// when the test ends.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skip(testDSNEnv + " not set, skipping database test")
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	tx := db.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() { tx.Rollback() })

	require.NoError(t, tx.AutoMigrate(developModels...))

	return tx
}

func TestCoveredPurchaseIDs_EmptyInputSkipsQuery(t *testing.T) {
	t.Parallel()

	repo := NewNotificationRepository(nil)

	covered, err := repo.CoveredPurchaseIDs(context.Background(), entity.NotificationTypeShippingMissing, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{}, covered)
}

func TestCoveredPurchaseIDs(t *testing.T) {
	db := openTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	for _, n := range []*entity.Notification{
		{
			Title:    "Shipping missing",
			Message:  "2 purchases",
			Type:     entity.NotificationTypeShippingMissing,
			Metadata: entity.NotificationMetadata{PurchaseIDs: []int64{3, 7}},
		},
		{
			Title:    "Shipping missing",
			Message:  "2 purchases",
			Type:     entity.NotificationTypeShippingMissing,
			Metadata: entity.NotificationMetadata{PurchaseIDs: []int64{7, 11}},
		},
		{
			Title:    "Status changed",
			Message:  "purchase 5",
			Type:     entity.NotificationTypePurchaseStatus,
			Metadata: entity.NotificationMetadata{PurchaseIDs: []int64{5}},
		},
		{
			Title:   "Shipping missing",
			Message: "no metadata",
			Type:    entity.NotificationTypeShippingMissing,
		},
	} {
		require.NoError(t, repo.CreateNotification(ctx, n))
	}

	covered, err := repo.CoveredPurchaseIDs(ctx, entity.NotificationTypeShippingMissing, []int64{1, 3, 5, 7, 11})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 7, 11}, covered, "distinct, sorted, and limited to the requested type")

	covered, err = repo.CoveredPurchaseIDs(ctx, entity.NotificationTypePurchaseStatus, []int64{3, 5})
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, covered)

	covered, err = repo.CoveredPurchaseIDs(ctx, entity.NotificationTypeTodoReminder, []int64{3})
	require.NoError(t, err)
	assert.Empty(t, covered)
}
