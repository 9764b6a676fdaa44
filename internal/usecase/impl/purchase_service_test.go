package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"vradmin/internal/domain/entity"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/domain/service"
	mockSvc "vradmin/internal/mocks/service"
	"vradmin/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// purchaseServiceFixtures holds all test dependencies for purchase service tests.
type purchaseServiceFixtures struct {
	service usecase.PurchaseUsecase
	backend *mockSvc.MockPurchaseBackend
	tracker *mockSvc.MockShipmentTracker
	emails  *mockSvc.MockOrderEmailLookup
	cache   *mockSvc.MockStatusCache
	qrcode  *mockSvc.MockQRCodeService
	metrics *mockSvc.MockStatusMetrics
}

func createTestPurchaseService(t *testing.T) purchaseServiceFixtures {
	backend := mockSvc.NewMockPurchaseBackend(t)
	tracker := mockSvc.NewMockShipmentTracker(t)
	emails := mockSvc.NewMockOrderEmailLookup(t)
	cache := mockSvc.NewMockStatusCache(t)
	qrcode := mockSvc.NewMockQRCodeService(t)
	metrics := mockSvc.NewMockStatusMetrics(t)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(testNow).Maybe()

	svc := NewPurchaseService(PurchaseServiceParams{
		Backend: backend,
		Tracker: tracker,
		Emails:  emails,
		Cache:   cache,
		QRCode:  qrcode,
		Metrics: metrics,
		Clock:   clock,
		Logger:  discardLogger(),
	})

	return purchaseServiceFixtures{
		service: svc,
		backend: backend,
		tracker: tracker,
		emails:  emails,
		cache:   cache,
		qrcode:  qrcode,
		metrics: metrics,
	}
}

func testPurchase(id int64) *entity.Purchase {
	return &entity.Purchase{
		ID:               id,
		OrderNumber:      "4711",
		ConfirmationCode: "ABC123",
		Email:            " Anna@Example.com ",
		CreatedAt:        testNow.AddDate(0, 0, -10),
	}
}

func TestPurchaseService_GetPurchaseStatus_CacheHit(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	cached := &entity.CachedStatus{
		Status:    &entity.PurchaseStatus{Category: entity.CategoryTrained},
		FetchedAt: testNow.Add(-time.Minute),
	}

	fx.cache.EXPECT().Get(ctx, int64(7)).Return(cached, true, nil)
	fx.metrics.EXPECT().ObserveClassification(entity.CategoryTrained, true).Return()

	view, err := fx.service.GetPurchaseStatus(ctx, 7, false)
	require.NoError(t, err)
	assert.True(t, view.Cached)
	assert.Equal(t, entity.CategoryTrained, view.Status.Category)
	assert.Equal(t, cached.FetchedAt, view.FetchedAt)
}

func TestPurchaseService_GetPurchaseStatus_CollectsWithWarnings(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	purchase := testPurchase(7)

	fx.cache.EXPECT().Get(ctx, int64(7)).Return(nil, false, nil)
	fx.backend.EXPECT().GetPurchase(mock.Anything, int64(7)).Return(purchase, nil)
	fx.backend.EXPECT().GetOrderStatus(mock.Anything, "4711").Return(nil, errors.New("webshop down"))
	fx.emails.EXPECT().OrderEmailStatus(mock.Anything, "anna@example.com").Return(strPtr("sent"), nil)
	fx.backend.EXPECT().GetActivations(mock.Anything, int64(7)).Return(nil, nil)
	fx.backend.EXPECT().GetShippingRecord(mock.Anything, int64(7)).
		Return(&entity.ShippingRecord{PurchaseID: 7, TrackingNumber: "UU1SE"}, nil)
	fx.tracker.EXPECT().Track(mock.Anything, "UU1SE").Return(&entity.ShippingInfo{
		Carrier:  entity.CarrierPostNord,
		PostNord: &entity.PostNordShipment{ShipmentID: "UU1SE", Status: "DELIVERED"},
	}, nil)
	fx.metrics.EXPECT().ObserveSignalWarning(entity.SignalOrderStatus).Return()
	fx.metrics.EXPECT().ObserveClassification(entity.CategoryUnknown, false).Return()
	fx.cache.EXPECT().Set(mock.Anything, int64(7), mock.AnythingOfType("*entity.CachedStatus")).Return(nil)

	view, err := fx.service.GetPurchaseStatus(ctx, 7, false)
	require.NoError(t, err)
	assert.False(t, view.Cached)
	assert.Equal(t, testNow, view.FetchedAt)
	require.Len(t, view.Warnings, 1)
	assert.Equal(t, entity.SignalOrderStatus, view.Warnings[0].Signal)
	assert.Contains(t, view.Warnings[0].Message, "webshop down")

	st := view.Status
	assert.Nil(t, st.OrderStatus)
	assert.Equal(t, "sent", *st.EmailStatus)
	assert.NotNil(t, st.ActivationRecords)
	assert.Empty(t, st.ActivationRecords)
	assert.Equal(t, entity.CarrierPostNord, st.ShippingInfo.Carrier)
}

func TestPurchaseService_GetPurchaseStatus_RefreshSkipsCache(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	purchase := testPurchase(8)
	purchase.OrderNumber = ""

	fx.backend.EXPECT().GetPurchase(mock.Anything, int64(8)).Return(purchase, nil)
	fx.backend.EXPECT().GetOrderStatus(mock.Anything, "").Return(nil, nil)
	fx.emails.EXPECT().OrderEmailStatus(mock.Anything, mock.Anything).Return(nil, nil)
	fx.backend.EXPECT().GetActivations(mock.Anything, int64(8)).Return([]entity.ActivationRecord{}, nil)
	fx.backend.EXPECT().GetShippingRecord(mock.Anything, int64(8)).Return(nil, nil)
	fx.metrics.EXPECT().ObserveClassification(entity.CategoryUnknown, false).Return()
	fx.cache.EXPECT().Set(mock.Anything, int64(8), mock.Anything).Return(errors.New("redis down"))

	view, err := fx.service.GetPurchaseStatus(ctx, 8, true)
	require.NoError(t, err)
	assert.False(t, view.Cached)
	assert.Empty(t, view.Warnings)
	assert.Nil(t, view.Status.ShippingInfo)
}

func TestPurchaseService_GetPurchaseStatus_NotFound(t *testing.T) {
	fx := createTestPurchaseService(t)

	fx.backend.EXPECT().GetPurchase(mock.Anything, int64(404)).Return(nil, service.ErrPurchaseNotFound)

	_, err := fx.service.GetPurchaseStatus(context.Background(), 404, true)
	require.ErrorIs(t, err, domainerrors.ErrPurchaseNotFound)
}

func TestPurchaseService_GetPurchaseStatus_BackendDown(t *testing.T) {
	fx := createTestPurchaseService(t)

	fx.backend.EXPECT().GetPurchase(mock.Anything, int64(9)).Return(nil, errors.New("connection refused"))

	_, err := fx.service.GetPurchaseStatus(context.Background(), 9, true)
	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestPurchaseService_GetPurchaseStatus_InvalidID(t *testing.T) {
	fx := createTestPurchaseService(t)

	_, err := fx.service.GetPurchaseStatus(context.Background(), 0, false)
	assert.Equal(t, domainerrors.ErrInvalidPurchaseID, err)
}

func TestPurchaseService_GetPurchaseStatus_ConcurrentCallersShareCollection(t *testing.T) {
	fx := createTestPurchaseService(t)

	started := make(chan struct{})
	release := make(chan struct{})
	purchase := testPurchase(11)

	fx.backend.EXPECT().GetPurchase(mock.Anything, int64(11)).
		RunAndReturn(func(context.Context, int64) (*entity.Purchase, error) {
			close(started)
			<-release

			return purchase, nil
		}).Once()
	fx.backend.EXPECT().GetOrderStatus(mock.Anything, "4711").Return(nil, nil).Once()
	fx.emails.EXPECT().OrderEmailStatus(mock.Anything, mock.Anything).Return(nil, nil).Once()
	fx.backend.EXPECT().GetActivations(mock.Anything, int64(11)).Return(nil, nil).Once()
	fx.backend.EXPECT().GetShippingRecord(mock.Anything, int64(11)).Return(nil, nil).Once()
	fx.metrics.EXPECT().ObserveClassification(entity.CategoryUnknown, false).Return().Once()
	fx.cache.EXPECT().Set(mock.Anything, int64(11), mock.Anything).Return(nil).Once()

	const callers = 3
	var wg sync.WaitGroup
	views := make([]*entity.PurchaseStatusView, callers)
	errs := make([]error, callers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		views[0], errs[0] = fx.service.GetPurchaseStatus(context.Background(), 11, true)
	}()

	<-started
	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			views[i], errs[i] = fx.service.GetPurchaseStatus(context.Background(), 11, true)
		}(i)
	}

	// Give the joiners time to attach to the in-flight collection.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, int64(11), views[i].PurchaseID)
	}
}

func TestPurchaseService_GetPurchaseStatus_CallerGivesUp(t *testing.T) {
	fx := createTestPurchaseService(t)

	release := make(chan struct{})
	done := make(chan struct{})
	purchase := testPurchase(12)

	fx.backend.EXPECT().GetPurchase(mock.Anything, int64(12)).
		RunAndReturn(func(context.Context, int64) (*entity.Purchase, error) {
			<-release

			return purchase, nil
		})
	fx.backend.EXPECT().GetOrderStatus(mock.Anything, "4711").Return(nil, nil)
	fx.emails.EXPECT().OrderEmailStatus(mock.Anything, mock.Anything).Return(nil, nil)
	fx.backend.EXPECT().GetActivations(mock.Anything, int64(12)).Return(nil, nil)
	fx.backend.EXPECT().GetShippingRecord(mock.Anything, int64(12)).Return(nil, nil)
	fx.metrics.EXPECT().ObserveClassification(entity.CategoryUnknown, false).Return()
	fx.cache.EXPECT().Set(mock.Anything, int64(12), mock.Anything).
		RunAndReturn(func(context.Context, int64, *entity.CachedStatus) error {
			close(done)

			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fx.service.GetPurchaseStatus(ctx, 12, true)
	require.ErrorIs(t, err, context.Canceled)

	// The abandoned collection still completes and reaches the cache.
	close(release)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("collection did not reach the cache")
	}
}

func TestPurchaseService_ListPurchases(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	older := *testPurchase(1)
	older.CreatedAt = testNow.AddDate(0, -2, 0)
	newer := *testPurchase(2)
	newer.OrderNumber = "4712"
	other := *testPurchase(3)
	other.Email = "bo@example.com"

	fx.backend.EXPECT().ListPurchases(ctx, 1, defaultLimit).
		Return([]entity.Purchase{older, newer, other}, nil)
	fx.cache.EXPECT().Get(ctx, mock.Anything).Return(nil, false, nil)

	page, err := fx.service.ListPurchases(ctx, entity.PurchaseListFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, defaultLimit, page.Limit)
	require.Len(t, page.Rows, 3)

	var current int
	for _, row := range page.Rows {
		if row.IsCurrent {
			current++
		}
	}
	assert.Equal(t, 2, current)
}

func TestPurchaseService_ListPurchases_ClampsLimit(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	fx.backend.EXPECT().ListPurchases(ctx, 3, maxLimit).Return([]entity.Purchase{}, nil)

	page, err := fx.service.ListPurchases(ctx, entity.PurchaseListFilter{Page: 3, Limit: 10_000})
	require.NoError(t, err)
	assert.Equal(t, maxLimit, page.Limit)
	assert.Empty(t, page.Rows)
}

func TestPurchaseService_ListPurchases_BackendDown(t *testing.T) {
	fx := createTestPurchaseService(t)

	fx.backend.EXPECT().ListPurchases(mock.Anything, 1, defaultLimit).Return(nil, errors.New("timeout"))

	_, err := fx.service.ListPurchases(context.Background(), entity.PurchaseListFilter{})
	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
}

func TestPurchaseService_GetStatusesByDateRange(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	start := testNow.AddDate(0, -1, 0)
	snapshots := []entity.PurchaseSnapshot{
		{PurchaseID: 1, PurchaseDate: start.AddDate(0, 0, 1)},
		{PurchaseID: 2, PurchaseDate: start.AddDate(0, 0, 2), Signals: entity.SignalBundle{
			ActivationRecords: []entity.ActivationRecord{{User: &entity.ActivationUser{
				TrainingSessions: []entity.TrainingSession{{SessionNumber: 1}},
			}}},
		}},
	}

	fx.backend.EXPECT().GetAllInfoByDateRange(ctx, start, testNow).Return(snapshots, nil)
	fx.metrics.EXPECT().ObserveClassification(mock.Anything, false).Return().Times(2)

	classified, err := fx.service.GetStatusesByDateRange(ctx, start, testNow)
	require.NoError(t, err)
	require.Len(t, classified, 2)
	assert.Equal(t, entity.CategoryUnknown, classified[0].Status.Category)
	assert.Equal(t, entity.CategoryTrained, classified[1].Status.Category)
}

func TestPurchaseService_GetStatusesByDateRange_InvalidRange(t *testing.T) {
	fx := createTestPurchaseService(t)

	_, err := fx.service.GetStatusesByDateRange(context.Background(), testNow, testNow.AddDate(0, 0, -1))
	assert.Equal(t, domainerrors.ErrInvalidDateRange, err)
}

func TestPurchaseService_GetActivationQR(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	fx.backend.EXPECT().GetPurchase(ctx, int64(5)).Return(testPurchase(5), nil)
	fx.qrcode.EXPECT().GenerateActivationQR(int64(5), "ABC123").Return([]byte("png"), nil)

	png, err := fx.service.GetActivationQR(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestPurchaseService_GetActivationQR_MissingCode(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	purchase := testPurchase(5)
	purchase.ConfirmationCode = ""
	fx.backend.EXPECT().GetPurchase(ctx, int64(5)).Return(purchase, nil)

	_, err := fx.service.GetActivationQR(ctx, 5)
	assert.Equal(t, domainerrors.ErrConfirmationCodeMissing, err)
}

func TestPurchaseService_AddAdditionalInfo_DefaultsToAdmin(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	fx.backend.EXPECT().CreateAdditionalInfo(ctx, int64(5), entity.AdditionalInfo{
		Info:           "Picked up at the clinic",
		PurchaseSource: entity.PurchaseSourceAdmin,
		PurchaseType:   entity.PurchaseTypeStartPackage,
	}).Return(nil)
	fx.cache.EXPECT().Delete(ctx, int64(5)).Return(nil)

	err := fx.service.AddAdditionalInfo(ctx, 5, &usecase.AddAdditionalInfoInput{
		Info:         "  Picked up at the clinic ",
		PurchaseType: entity.PurchaseTypeStartPackage,
	})
	require.NoError(t, err)
}

func TestPurchaseService_AddAdditionalInfo_Rejections(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()

	err := fx.service.AddAdditionalInfo(ctx, 5, &usecase.AddAdditionalInfoInput{Info: "   "})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = fx.service.AddAdditionalInfo(ctx, 0, &usecase.AddAdditionalInfoInput{Info: "x"})
	assert.Equal(t, domainerrors.ErrInvalidPurchaseID, err)

	fx.backend.EXPECT().CreateAdditionalInfo(ctx, int64(9), mock.Anything).Return(service.ErrPurchaseNotFound)
	err = fx.service.AddAdditionalInfo(ctx, 9, &usecase.AddAdditionalInfoInput{Info: "x"})
	assert.Equal(t, domainerrors.ErrPurchaseNotFound, err)
}

func TestPurchaseService_UpdatePurchase_InvalidatesCachedStatus(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	order := " 4712 "
	licenses := 2
	updated := testPurchase(5)
	updated.OrderNumber = "4712"

	fx.backend.EXPECT().UpdatePurchase(ctx, int64(5), mock.MatchedBy(func(u entity.PurchaseUpdate) bool {
		return u.OrderNumber != nil && *u.OrderNumber == "4712" &&
			u.NumberOfLicenses != nil && *u.NumberOfLicenses == 2 &&
			u.Email == nil
	})).Return(updated, nil)
	fx.cache.EXPECT().Delete(ctx, int64(5)).Return(nil).Once()

	purchase, err := fx.service.UpdatePurchase(ctx, 5, &usecase.UpdatePurchaseInput{
		OrderNumber:      &order,
		NumberOfLicenses: &licenses,
	})
	require.NoError(t, err)
	assert.Equal(t, "4712", purchase.OrderNumber)
}

func TestPurchaseService_UpdatePurchase_CacheDeleteFailureIsTolerated(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	duration := 180
	fx.backend.EXPECT().UpdatePurchase(ctx, int64(5), mock.Anything).Return(testPurchase(5), nil)
	fx.cache.EXPECT().Delete(ctx, int64(5)).Return(errors.New("redis down"))

	_, err := fx.service.UpdatePurchase(ctx, 5, &usecase.UpdatePurchaseInput{DurationDays: &duration})
	require.NoError(t, err)
}

func TestPurchaseService_UpdatePurchase_Validation(t *testing.T) {
	str := func(v string) *string { return &v }
	num := func(v int) *int { return &v }

	tests := []struct {
		name  string
		input usecase.UpdatePurchaseInput
	}{
		{name: "empty update"},
		{name: "email without at sign", input: usecase.UpdatePurchaseInput{Email: str("anna.example.com")}},
		{name: "blank confirmation code", input: usecase.UpdatePurchaseInput{ConfirmationCode: str("  ")}},
		{name: "negative duration", input: usecase.UpdatePurchaseInput{DurationDays: num(-1)}},
		{name: "zero licenses", input: usecase.UpdatePurchaseInput{NumberOfLicenses: num(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPurchaseService(t)

			_, err := fx.service.UpdatePurchase(context.Background(), 5, &tt.input)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestPurchaseService_UpdatePurchase_BackendErrors(t *testing.T) {
	duration := 30

	tests := []struct {
		name    string
		backend error
		want    error
	}{
		{name: "not found", backend: service.ErrPurchaseNotFound, want: domainerrors.ErrPurchaseNotFound},
		{name: "rejected", backend: errors.Wrap(service.ErrPurchaseRejected, "code taken"), want: domainerrors.ErrValidationFailed},
		{name: "unavailable", backend: errors.New("connection refused"), want: domainerrors.ErrUpstreamUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPurchaseService(t)

			ctx := context.Background()
			fx.backend.EXPECT().UpdatePurchase(ctx, int64(5), mock.Anything).Return(nil, tt.backend)

			_, err := fx.service.UpdatePurchase(ctx, 5, &usecase.UpdatePurchaseInput{DurationDays: &duration})
			require.ErrorIs(t, err, tt.want)
		})
	}
}
