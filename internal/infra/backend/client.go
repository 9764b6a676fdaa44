// Package backend is the HTTP client of the purchases and activation backend.
package backend

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"vradmin/config"
	"vradmin/internal/domain/entity"
	"vradmin/internal/domain/service"
	"vradmin/internal/infra/httpx"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type client struct {
	http    *httpx.Client
	metrics service.StatusMetrics
	logger  *slog.Logger
}

// ClientParams holds dependencies for the backend client, injected by Fx
type ClientParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics service.StatusMetrics `optional:"true"`
}

// NewClient creates the purchases backend client.
func NewClient(params ClientParams) (service.PurchaseBackend, error) {
	cfg := params.Config.Backend
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("backend base URL is required")
	}

	logger := params.Logger.With(slog.String("component", "backend"))

	return &client{
		http: httpx.New(cfg.BaseURL, logger,
			httpx.WithTimeout(cfg.Timeout),
			httpx.WithRetry(cfg.RetryAttempts, 0),
		),
		metrics: params.Metrics,
		logger:  logger,
	}, nil
}

func (c *client) ListPurchases(ctx context.Context, page, limit int) ([]entity.Purchase, error) {
	query := url.Values{
		"limit": {strconv.Itoa(limit)},
		"page":  {strconv.Itoa(page)},
	}

	var resp purchasePageDTO
	if err := c.http.GetJSON(ctx, "/purchases/all-purchases", query, &resp); err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return []entity.Purchase{}, nil
		}

		return nil, errors.Wrap(err, "list purchases")
	}

	purchases := make([]entity.Purchase, 0, len(resp.Purchases))
	for i := range resp.Purchases {
		p, err := toPurchaseDomain(&resp.Purchases[i])
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, *p)
	}

	return purchases, nil
}

func (c *client) GetPurchase(ctx context.Context, id int64) (*entity.Purchase, error) {
	var dto purchaseDTO
	if err := c.http.GetJSON(ctx, "/purchases/"+strconv.FormatInt(id, 10), nil, &dto); err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return nil, service.ErrPurchaseNotFound
		}

		return nil, errors.Wrapf(err, "get purchase %d", id)
	}

	return toPurchaseDomain(&dto)
}

func (c *client) GetOrderStatus(ctx context.Context, orderNumber string) (*entity.OrderStatus, error) {
	if orderNumber == "" {
		return nil, nil
	}

	var status entity.OrderStatus
	if err := c.http.GetJSON(ctx, "/purchases/order-status/"+url.PathEscape(orderNumber), nil, &status); err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "get order status %s", orderNumber)
	}

	return &status, nil
}

func (c *client) GetActivations(ctx context.Context, purchaseID int64) ([]entity.ActivationRecord, error) {
	var dtos []activationDTO
	if err := c.http.GetJSON(ctx, "/purchases/activations/"+strconv.FormatInt(purchaseID, 10), nil, &dtos); err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return []entity.ActivationRecord{}, nil
		}

		return nil, errors.Wrapf(err, "get activations %d", purchaseID)
	}

	return toActivationDomainList(dtos)
}

func (c *client) GetShippingRecord(ctx context.Context, purchaseID int64) (*entity.ShippingRecord, error) {
	var dto shippingRecordDTO
	if err := c.http.GetJSON(ctx, "/purchases/shipping-info/"+strconv.FormatInt(purchaseID, 10), nil, &dto); err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "get shipping record %d", purchaseID)
	}

	if dto.TrackingNumber == "" {
		return nil, nil
	}

	return &entity.ShippingRecord{
		PurchaseID:     purchaseID,
		TrackingNumber: dto.TrackingNumber,
	}, nil
}

func (c *client) GetAllInfoByDateRange(ctx context.Context, start, end time.Time) ([]entity.PurchaseSnapshot, error) {
	query := url.Values{
		"startDate": {start.UTC().Format(time.RFC3339)},
		"endDate":   {end.UTC().Format(time.RFC3339)},
	}

	var resp map[string]json.RawMessage
	if err := c.http.GetJSON(ctx, "/purchases/all-info-by-date-range", query, &resp); err != nil {
		if errors.Is(err, httpx.ErrNotFound) {
			return []entity.PurchaseSnapshot{}, nil
		}

		return nil, errors.Wrap(err, "get purchases by date range")
	}

	snapshots := make([]entity.PurchaseSnapshot, 0, len(resp))
	for key, raw := range resp {
		purchaseID, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			c.logger.Warn("Skipping bulk entry with invalid purchase id", slog.String("key", key))

			continue
		}

		var entry bulkEntryDTO
		if err := json.Unmarshal(raw, &entry); err != nil {
			c.logger.Warn("Skipping undecodable bulk entry",
				slog.Int64("purchase_id", purchaseID),
				slog.Any("error", err),
			)

			continue
		}

		snapshot, defects, err := toSnapshotDomain(purchaseID, &entry)
		if err != nil {
			c.logger.Warn("Skipping bulk entry", slog.Int64("purchase_id", purchaseID), slog.Any("error", err))

			continue
		}
		for _, defect := range defects {
			c.logger.Warn("Dropping malformed signal",
				slog.Int64("purchase_id", purchaseID),
				slog.String("signal", string(defect.signal)),
				slog.Any("error", defect.err),
			)
			if c.metrics != nil {
				c.metrics.ObserveSignalWarning(defect.signal)
			}
		}
		snapshots = append(snapshots, snapshot)
	}

	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].PurchaseID < snapshots[j].PurchaseID })

	return snapshots, nil
}

func (c *client) CreateAdditionalInfo(ctx context.Context, purchaseID int64, info entity.AdditionalInfo) error {
	req := additionalInfoRequestDTO{
		Info:           info.Info,
		PurchaseSource: info.PurchaseSource,
		PurchaseType:   info.PurchaseType,
	}

	err := c.http.PostJSON(ctx, "/purchases/additional-info/"+strconv.FormatInt(purchaseID, 10), req, nil)
	if err != nil {
		return writeError(err, "add additional info to purchase %d", purchaseID)
	}

	return nil
}

func (c *client) UpdatePurchase(ctx context.Context, id int64, update entity.PurchaseUpdate) (*entity.Purchase, error) {
	var dto purchaseDTO
	if err := c.http.PatchJSON(ctx, "/purchases/"+strconv.FormatInt(id, 10), toPurchaseUpdateDTO(&update), &dto); err != nil {
		return nil, writeError(err, "update purchase %d", id)
	}

	return toPurchaseDomain(&dto)
}

// writeError maps a failed purchase write: 404 is ErrPurchaseNotFound,
// 400 and 422 are ErrPurchaseRejected carrying the backend's reason.
func writeError(err error, format string, args ...any) error {
	if errors.Is(err, httpx.ErrNotFound) {
		return service.ErrPurchaseNotFound
	}

	var statusErr *httpx.StatusError
	if errors.As(err, &statusErr) &&
		(statusErr.StatusCode == http.StatusBadRequest || statusErr.StatusCode == http.StatusUnprocessableEntity) {
		if statusErr.Body == "" {
			return errors.WithStack(service.ErrPurchaseRejected)
		}

		return errors.Wrap(service.ErrPurchaseRejected, statusErr.Body)
	}

	return errors.Wrapf(err, format, args...)
}

func (c *client) ListAdminUsers(ctx context.Context) ([]entity.AdminUser, error) {
	var resp adminUsersDTO
	if err := c.http.GetJSON(ctx, "/auth_admin/admin-users", nil, &resp); err != nil {
		return nil, errors.Wrap(err, "list admin users")
	}

	users := make([]entity.AdminUser, 0, len(resp.Data))
	for i := range resp.Data {
		users = append(users, toAdminUserDomain(&resp.Data[i]))
	}

	return users, nil
}
