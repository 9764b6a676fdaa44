package backend

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vradmin/config"
	"vradmin/internal/domain/entity"
	"vradmin/internal/domain/service"
	"vradmin/internal/domain/status"
	mockservice "vradmin/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, mux *http.ServeMux) service.PurchaseBackend {
	t.Helper()

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	backend, err := NewClient(ClientParams{
		Config: &config.Config{Backend: &config.BackendConfig{
			BaseURL:       srv.URL,
			Timeout:       time.Second,
			RetryAttempts: 1,
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return backend
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient(ClientParams{
		Config: &config.Config{Backend: &config.BackendConfig{}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.Error(t, err)
}

func TestListPurchases(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/purchases/all-purchases", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{
			"purchases": [{
				"id": 12,
				"order_number": 4711,
				"code": "ABC123",
				"email": "Anna@Example.com",
				"first_name": "Anna",
				"last_name": "Berg",
				"number_of_vr_glasses": 1,
				"number_of_licenses": 2,
				"duration": 90,
				"is_subscription": false,
				"created_at": "2024-03-01T10:00:00.000Z",
				"updated_at": "2024-03-02 08:30:00",
				"additional_info": [{"purchase_source": "WEBSHOP", "purchase_type": "START_PACKAGE"}]
			}],
			"currentPage": 2, "total": 1, "totalPages": 1
		}`))
	})

	purchases, err := newTestClient(t, mux).ListPurchases(context.Background(), 2, 50)
	require.NoError(t, err)
	require.Len(t, purchases, 1)

	p := purchases[0]
	assert.Equal(t, int64(12), p.ID)
	assert.Equal(t, "4711", p.OrderNumber)
	assert.Equal(t, "ABC123", p.ConfirmationCode)
	assert.Equal(t, "Anna Berg", p.CustomerName())
	assert.Equal(t, 90, p.DurationDays)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), p.CreatedAt)
	assert.Equal(t, time.Date(2024, 3, 2, 8, 30, 0, 0, time.UTC), p.UpdatedAt)
	require.NotNil(t, p.PrimaryInfo())
	assert.Equal(t, entity.PurchaseTypeStartPackage, p.PrimaryInfo().PurchaseType)
}

func TestGetPurchase_NotFound(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/purchases/99", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := newTestClient(t, mux).GetPurchase(context.Background(), 99)
	require.ErrorIs(t, err, service.ErrPurchaseNotFound)
}

func TestNotFoundLookupsAreAbsent(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	backend := newTestClient(t, mux)
	ctx := context.Background()

	orderStatus, err := backend.GetOrderStatus(ctx, "1001")
	require.NoError(t, err)
	assert.Nil(t, orderStatus)

	records, err := backend.GetActivations(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, records)

	record, err := backend.GetShippingRecord(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestGetOrderStatus_ServerErrorIsReported(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/purchases/order-status/1001", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := newTestClient(t, mux).GetOrderStatus(context.Background(), "1001")
	require.Error(t, err)
}

func TestGetActivations(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/purchases/activations/5", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{
				"id": 1,
				"activation_date": "2024-04-01T09:00:00Z",
				"user": {
					"id": 77,
					"valid_until": "2025-04-01T00:00:00Z",
					"training_session_data": [
						{"session_number": 1, "start_time": "2024-04-02T18:00:00Z", "session_duration": 12.5}
					]
				}
			},
			{"id": 2, "activation_date": null, "user": null}
		]`))
	})

	records, err := newTestClient(t, mux).GetActivations(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	require.NotNil(t, first.User)
	assert.Equal(t, "77", first.User.ID)
	require.NotNil(t, first.User.ValidUntil)
	assert.Equal(t, 2025, first.User.ValidUntil.Year())
	require.Len(t, first.User.TrainingSessions, 1)
	assert.InDelta(t, 12.5, first.User.TrainingSessions[0].SessionDuration, 0.001)

	assert.Nil(t, records[1].User)
	assert.Nil(t, records[1].ActivationDate)
}

func TestGetShippingRecord(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/purchases/shipping-info/5", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"purchase_id": 5, "tracking_number": "UU123456789SE"}`))
	})

	record, err := newTestClient(t, mux).GetShippingRecord(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "UU123456789SE", record.TrackingNumber)
}

func TestGetAllInfoByDateRange(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mux := http.NewServeMux()
	mux.HandleFunc("/purchases/all-info-by-date-range", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-01-01T00:00:00Z", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2024-03-01T00:00:00Z", r.URL.Query().Get("endDate"))
		_, _ = w.Write([]byte(`{
			"20": {
				"purchaseDate": "2024-02-01T12:00:00Z",
				"orderStatus": {"status": "completed", "order_id": 1234},
				"orderConfirmationNotification": "sent",
				"shippingInfo": {"id": "JD0001", "status": {"statusCode": "delivered"}},
				"activationRecords": []
			},
			"10": {
				"purchaseDate": "2024-01-15T12:00:00Z",
				"additionalInfo": [{"purchase_type": "START_PACKAGE"}],
				"orderStatus": null,
				"orderConfirmationNotification": null,
				"shippingInfo": {"shipmentId": "UU1", "status": "EN_ROUTE"},
				"activationRecords": [{"id": 3, "user": {"valid_until": null, "training_session_data": []}}]
			},
			"bogus": {"purchaseDate": "2024-01-01"}
		}`))
	})

	snapshots, err := newTestClient(t, mux).GetAllInfoByDateRange(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, snapshots, 2)

	assert.Equal(t, int64(10), snapshots[0].PurchaseID)
	postNord := snapshots[0].Signals.ShippingInfo
	require.NotNil(t, postNord)
	assert.Equal(t, entity.CarrierPostNord, postNord.Carrier)
	assert.Equal(t, status.ShipmentInTransit, status.StateOf(postNord))
	assert.Nil(t, snapshots[0].Signals.OrderStatus)
	require.Len(t, snapshots[0].Signals.ActivationRecords, 1)

	assert.Equal(t, int64(20), snapshots[1].PurchaseID)
	dhl := snapshots[1].Signals.ShippingInfo
	require.NotNil(t, dhl)
	assert.Equal(t, entity.CarrierDHL, dhl.Carrier)
	assert.True(t, status.IsDelivered(dhl))
	require.NotNil(t, snapshots[1].Signals.OrderStatus)
	assert.Equal(t, "1234", snapshots[1].Signals.OrderStatus.OrderID.String())
	require.NotNil(t, snapshots[1].Signals.EmailStatus)
	assert.Equal(t, "sent", *snapshots[1].Signals.EmailStatus)
}

func TestListAdminUsers(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/auth_admin/admin-users", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data": [
			{"id": "a1", "email": "a@example.com", "name": "Alva"},
			{"id": 2, "email": "b@example.com", "first_name": "Bo", "last_name": "Ek"}
		]}`))
	})

	users, err := newTestClient(t, mux).ListAdminUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.AdminUser{
		{ID: "a1", Email: "a@example.com", Name: "Alva"},
		{ID: "2", Email: "b@example.com", Name: "Bo Ek"},
	}, users)
}

func TestParseTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    time.Time
		wantErr bool
	}{
		{raw: "2024-05-06T07:08:09Z", want: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)},
		{raw: "2024-05-06T07:08:09.123Z", want: time.Date(2024, 5, 6, 7, 8, 9, 123000000, time.UTC)},
		{raw: "2024-05-06 07:08:09", want: time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)},
		{raw: "2024-05-06", want: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)},
		{raw: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := parseTime(tt.raw)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestGetAllInfoByDateRange_MalformedSignalsStayLocal(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/purchases/all-info-by-date-range", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"1": {
				"purchaseDate": "2024-02-01T12:00:00Z",
				"orderNumber": "1001",
				"additionalInfo": [{"purchase_type": "START_PACKAGE"}],
				"orderStatus": {"status": "completed", "order_id": 1001},
				"shippingInfo": null,
				"activationRecords": []
			},
			"2": {
				"purchaseDate": "2024-02-02T12:00:00Z",
				"orderStatus": {"status": "completed", "order_id": 1002},
				"shippingInfo": "carrier lookup failed",
				"activationRecords": []
			},
			"3": {
				"purchaseDate": "2024-02-03T12:00:00Z",
				"activationRecords": [
					{"id": 7, "activation_date": "10/01/2024"},
					{"id": 8, "activation_date": "2024-02-04T09:00:00Z"}
				]
			},
			"4": "not an entry",
			"5": {"purchaseDate": "soon"}
		}`))
	})

	metrics := mockservice.NewMockStatusMetrics(t)
	metrics.EXPECT().ObserveSignalWarning(entity.SignalShipping).Once()
	metrics.EXPECT().ObserveSignalWarning(entity.SignalActivations).Once()

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	backend, err := NewClient(ClientParams{
		Config: &config.Config{Backend: &config.BackendConfig{
			BaseURL:       srv.URL,
			Timeout:       time.Second,
			RetryAttempts: 1,
		}},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: metrics,
	})
	require.NoError(t, err)

	snapshots, err := backend.GetAllInfoByDateRange(context.Background(),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, snapshots, 3)

	assert.Equal(t, int64(1), snapshots[0].PurchaseID)
	require.NotNil(t, snapshots[0].Signals.OrderStatus)
	assert.Nil(t, snapshots[0].Signals.ShippingInfo)

	assert.Equal(t, int64(2), snapshots[1].PurchaseID)
	assert.Nil(t, snapshots[1].Signals.ShippingInfo)
	require.NotNil(t, snapshots[1].Signals.OrderStatus)

	assert.Equal(t, int64(3), snapshots[2].PurchaseID)
	require.Len(t, snapshots[2].Signals.ActivationRecords, 1)
	assert.Equal(t, int64(8), snapshots[2].Signals.ActivationRecords[0].ID)
}

func TestCreateAdditionalInfo(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/purchases/additional-info/12", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"info":            "Delivered by hand",
			"purchase_source": "ADMIN",
			"purchase_type":   "START_PACKAGE",
		}, body)
		w.WriteHeader(http.StatusCreated)
	})

	err := newTestClient(t, mux).CreateAdditionalInfo(context.Background(), 12, entity.AdditionalInfo{
		Info:           "Delivered by hand",
		PurchaseSource: entity.PurchaseSourceAdmin,
		PurchaseType:   entity.PurchaseTypeStartPackage,
	})
	require.NoError(t, err)
}

func TestUpdatePurchase(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/purchases/12", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"email": "new@example.com", "number_of_licenses": float64(3)}, body)

		_, _ = w.Write([]byte(`{
			"id": 12,
			"order_number": "4711",
			"email": "new@example.com",
			"number_of_licenses": 3,
			"created_at": "2024-03-01T10:00:00Z",
			"updated_at": "2024-03-05T10:00:00Z"
		}`))
	})

	email := "new@example.com"
	licenses := 3
	purchase, err := newTestClient(t, mux).UpdatePurchase(context.Background(), 12, entity.PurchaseUpdate{
		Email:            &email,
		NumberOfLicenses: &licenses,
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", purchase.Email)
	assert.Equal(t, 3, purchase.NumberOfLicenses)
}

func TestPurchaseWrites_ErrorMapping(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/purchases/404", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/purchases/additional-info/422", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("purchase_type is invalid"))
	})
	mux.HandleFunc("/purchases/500", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	backend := newTestClient(t, mux)
	ctx := context.Background()

	_, err := backend.UpdatePurchase(ctx, 404, entity.PurchaseUpdate{})
	require.ErrorIs(t, err, service.ErrPurchaseNotFound)

	err = backend.CreateAdditionalInfo(ctx, 422, entity.AdditionalInfo{Info: "x"})
	require.ErrorIs(t, err, service.ErrPurchaseRejected)
	assert.Contains(t, err.Error(), "purchase_type is invalid")

	_, err = backend.UpdatePurchase(ctx, 500, entity.PurchaseUpdate{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrPurchaseRejected)
	assert.NotErrorIs(t, err, service.ErrPurchaseNotFound)
}
