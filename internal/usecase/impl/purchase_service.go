package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"vradmin/config"
	deliverycontext "vradmin/internal/delivery/context"
	"vradmin/internal/domain/entity"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/domain/lineage"
	"vradmin/internal/domain/service"
	"vradmin/internal/domain/status"
	"vradmin/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	defaultPage  = 1
	defaultLimit = 50
	maxLimit     = 200

	// collectTimeout bounds one shared status collection. It outlives the
	// request that started it so the result still reaches the cache.
	collectTimeout = 45 * time.Second
)

// purchaseService implements the PurchaseUsecase interface.
type purchaseService struct {
	backend  service.PurchaseBackend
	tracker  service.ShipmentTracker
	emails   service.OrderEmailLookup
	cache    service.StatusCache
	qrcode   service.QRCodeService
	metrics  service.StatusMetrics
	clock    service.Clock
	inflight singleflight.Group
	timeout  time.Duration
	logger   *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	Backend service.PurchaseBackend
	Tracker service.ShipmentTracker
	Emails  service.OrderEmailLookup
	Cache   service.StatusCache
	QRCode  service.QRCodeService
	Metrics service.StatusMetrics
	Clock   service.Clock
	Config  *config.Config
	Logger  *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	timeout := collectTimeout
	if params.Config != nil && params.Config.Backend != nil && params.Config.Backend.Timeout > 0 {
		timeout = max(timeout, 3*params.Config.Backend.Timeout)
	}

	return &purchaseService{
		backend: params.Backend,
		tracker: params.Tracker,
		emails:  params.Emails,
		cache:   params.Cache,
		qrcode:  params.QRCode,
		metrics: params.Metrics,
		clock:   params.Clock,
		timeout: timeout,
		logger:  params.Logger,
	}
}

// ListPurchases returns one backend page grouped into customer lineages.
func (s *purchaseService) ListPurchases(ctx context.Context, filter entity.PurchaseListFilter) (*usecase.PurchasePage, error) {
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	filter.Limit = min(filter.Limit, maxLimit)

	purchases, err := s.backend.ListPurchases(ctx, filter.Page, filter.Limit)
	if err != nil {
		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}

	groups := lineage.Filter(lineage.GroupByCustomer(purchases), filter)
	rows := lineage.Rows(groups, s.cachedOrderStatus(ctx))

	return &usecase.PurchasePage{
		Rows:  rows,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// cachedOrderStatus answers from the status cache only; listing never
// triggers signal collection.
func (s *purchaseService) cachedOrderStatus(ctx context.Context) func(purchaseID int64) bool {
	return func(purchaseID int64) bool {
		cached, ok, err := s.cache.Get(ctx, purchaseID)
		if err != nil || !ok || cached.Status == nil {
			return false
		}

		return cached.Status.OrderStatus != nil
	}
}

// GetPurchaseStatus returns the cached status of a purchase or collects it.
// Concurrent callers for the same purchase share one collection; a caller
// that gives up does not cancel it for the others.
func (s *purchaseService) GetPurchaseStatus(ctx context.Context, purchaseID int64, refresh bool) (*entity.PurchaseStatusView, error) {
	if purchaseID <= 0 {
		return nil, domainerrors.ErrInvalidPurchaseID
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if !refresh {
		cached, ok, err := s.cache.Get(ctx, purchaseID)
		if err != nil {
			logger.Warn("Status cache read failed", slog.Int64("purchase_id", purchaseID), slog.Any("error", err))
		} else if ok && cached.Status != nil {
			s.metrics.ObserveClassification(cached.Status.Category, true)

			return &entity.PurchaseStatusView{
				PurchaseID: purchaseID,
				Status:     cached.Status,
				FetchedAt:  cached.FetchedAt,
				Cached:     true,
			}, nil
		}
	}

	key := strconv.FormatInt(purchaseID, 10)
	resultCh := s.inflight.DoChan(key, func() (any, error) {
		collectCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
		defer cancel()

		return s.collect(collectCtx, purchaseID)
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res := <-resultCh:
		if res.Err != nil {
			return nil, res.Err
		}
		view := *res.Val.(*entity.PurchaseStatusView)

		return &view, nil
	}
}

// signalWarnings collects non-fatal collector failures.
type signalWarnings struct {
	mu       sync.Mutex
	warnings []entity.SignalWarning
}

func (w *signalWarnings) add(signal entity.SignalName, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.warnings = append(w.warnings, entity.SignalWarning{Signal: signal, Message: err.Error()})
}

func (s *purchaseService) collect(ctx context.Context, purchaseID int64) (*entity.PurchaseStatusView, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.Int64("purchase_id", purchaseID))

	purchase, err := s.backend.GetPurchase(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, service.ErrPurchaseNotFound) {
			return nil, domainerrors.ErrPurchaseNotFound
		}

		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}

	var (
		bundle   entity.SignalBundle
		warnings signalWarnings
		g        errgroup.Group
	)

	warn := func(signal entity.SignalName, err error) {
		logger.Warn("Signal collection failed, treating signal as absent",
			slog.String("signal", string(signal)),
			slog.Any("error", err),
		)
		s.metrics.ObserveSignalWarning(signal)
		warnings.add(signal, err)
	}

	g.Go(func() error {
		orderStatus, err := s.backend.GetOrderStatus(ctx, purchase.OrderNumber)
		if err != nil {
			warn(entity.SignalOrderStatus, err)

			return nil
		}
		bundle.OrderStatus = orderStatus

		return nil
	})

	g.Go(func() error {
		emailStatus, err := s.emails.OrderEmailStatus(ctx, purchase.NormalizedEmail())
		if err != nil {
			warn(entity.SignalEmailStatus, err)

			return nil
		}
		bundle.EmailStatus = emailStatus

		return nil
	})

	g.Go(func() error {
		records, err := s.backend.GetActivations(ctx, purchaseID)
		if err != nil {
			warn(entity.SignalActivations, err)

			return nil
		}
		bundle.ActivationRecords = records

		return nil
	})

	g.Go(func() error {
		info, err := s.trackShipment(ctx, purchaseID)
		if err != nil {
			warn(entity.SignalShipping, err)

			return nil
		}
		bundle.ShippingInfo = info

		return nil
	})

	// Collectors never fail the group; errors become warnings.
	_ = g.Wait()

	if bundle.ActivationRecords == nil {
		bundle.ActivationRecords = []entity.ActivationRecord{}
	}

	now := s.clock.Now()
	st := status.Classify(bundle, now)
	s.metrics.ObserveClassification(st.Category, false)

	if err := s.cache.Set(ctx, purchaseID, &entity.CachedStatus{Status: st, FetchedAt: now}); err != nil {
		logger.Warn("Status cache write failed", slog.Any("error", err))
	}

	logger.Debug("Purchase status collected",
		slog.String("category", string(st.Category)),
		slog.Int("warnings", len(warnings.warnings)),
	)

	return &entity.PurchaseStatusView{
		PurchaseID: purchaseID,
		Status:     st,
		FetchedAt:  now,
		Warnings:   warnings.warnings,
	}, nil
}

// trackShipment resolves the stored tracking number first, then asks the
// one carrier it belongs to.
func (s *purchaseService) trackShipment(ctx context.Context, purchaseID int64) (*entity.ShippingInfo, error) {
	record, err := s.backend.GetShippingRecord(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if record == nil || record.TrackingNumber == "" {
		return nil, nil
	}

	return s.tracker.Track(ctx, record.TrackingNumber)
}

// GetStatusesByDateRange classifies the bulk snapshot of [start, end].
func (s *purchaseService) GetStatusesByDateRange(ctx context.Context, start, end time.Time) ([]entity.ClassifiedSnapshot, error) {
	if start.After(end) {
		return nil, domainerrors.ErrInvalidDateRange
	}

	snapshots, err := s.backend.GetAllInfoByDateRange(ctx, start, end)
	if err != nil {
		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}

	now := s.clock.Now()
	classified := make([]entity.ClassifiedSnapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		st := status.Classify(snapshot.Signals, now)
		s.metrics.ObserveClassification(st.Category, false)
		classified = append(classified, entity.ClassifiedSnapshot{
			PurchaseSnapshot: snapshot,
			Status:           st,
		})
	}

	return classified, nil
}

// GetActivationQR renders the confirmation code of a purchase.
func (s *purchaseService) GetActivationQR(ctx context.Context, purchaseID int64) ([]byte, error) {
	if purchaseID <= 0 {
		return nil, domainerrors.ErrInvalidPurchaseID
	}

	purchase, err := s.backend.GetPurchase(ctx, purchaseID)
	if err != nil {
		if errors.Is(err, service.ErrPurchaseNotFound) {
			return nil, domainerrors.ErrPurchaseNotFound
		}

		return nil, domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}

	if purchase.ConfirmationCode == "" {
		return nil, domainerrors.ErrConfirmationCodeMissing
	}

	png, err := s.qrcode.GenerateActivationQR(purchaseID, purchase.ConfirmationCode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate activation QR")
	}

	return png, nil
}

// AddAdditionalInfo attaches a provenance note to a purchase.
func (s *purchaseService) AddAdditionalInfo(ctx context.Context, purchaseID int64, input *usecase.AddAdditionalInfoInput) error {
	if purchaseID <= 0 {
		return domainerrors.ErrInvalidPurchaseID
	}

	info := entity.AdditionalInfo{
		Info:           strings.TrimSpace(input.Info),
		PurchaseSource: input.PurchaseSource,
		PurchaseType:   input.PurchaseType,
	}
	if info.Info == "" {
		return domainerrors.ErrValidationFailed.WithDetails("info must not be empty")
	}
	if info.PurchaseSource == "" {
		info.PurchaseSource = entity.PurchaseSourceAdmin
	}

	if err := s.backend.CreateAdditionalInfo(ctx, purchaseID, info); err != nil {
		return mapPurchaseWriteError(err)
	}

	// Provenance feeds the shipping-missing rule.
	s.dropCachedStatus(ctx, purchaseID)

	return nil
}

// UpdatePurchase edits a purchase. The cached status is dropped because an
// edited order number points the order-status signal elsewhere.
func (s *purchaseService) UpdatePurchase(ctx context.Context, purchaseID int64, input *usecase.UpdatePurchaseInput) (*entity.Purchase, error) {
	if purchaseID <= 0 {
		return nil, domainerrors.ErrInvalidPurchaseID
	}

	update, err := purchaseUpdateFrom(input)
	if err != nil {
		return nil, err
	}

	purchase, err := s.backend.UpdatePurchase(ctx, purchaseID, update)
	if err != nil {
		return nil, mapPurchaseWriteError(err)
	}

	s.dropCachedStatus(ctx, purchaseID)

	return purchase, nil
}

func purchaseUpdateFrom(input *usecase.UpdatePurchaseInput) (entity.PurchaseUpdate, error) {
	trimmed := func(v *string) *string {
		if v == nil {
			return nil
		}
		out := strings.TrimSpace(*v)

		return &out
	}

	update := entity.PurchaseUpdate{
		Email:            trimmed(input.Email),
		ConfirmationCode: trimmed(input.ConfirmationCode),
		DurationDays:     input.DurationDays,
		NumberOfLicenses: input.NumberOfLicenses,
		OrderNumber:      trimmed(input.OrderNumber),
	}

	switch {
	case update.IsEmpty():
		return update, domainerrors.ErrValidationFailed.WithDetails("no fields to update")
	case update.Email != nil && !strings.Contains(*update.Email, "@"):
		return update, domainerrors.ErrValidationFailed.WithDetails("email is invalid")
	case update.ConfirmationCode != nil && *update.ConfirmationCode == "":
		return update, domainerrors.ErrValidationFailed.WithDetails("confirmation code must not be empty")
	case update.DurationDays != nil && *update.DurationDays < 0:
		return update, domainerrors.ErrValidationFailed.WithDetails("duration must not be negative")
	case update.NumberOfLicenses != nil && *update.NumberOfLicenses < 1:
		return update, domainerrors.ErrValidationFailed.WithDetails("number of licenses must be at least 1")
	}

	return update, nil
}

func mapPurchaseWriteError(err error) error {
	switch {
	case errors.Is(err, service.ErrPurchaseNotFound):
		return domainerrors.ErrPurchaseNotFound
	case errors.Is(err, service.ErrPurchaseRejected):
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	default:
		return domainerrors.ErrUpstreamUnavailable.WrapMessage(err.Error())
	}
}

// dropCachedStatus forgets the cached status of a purchase. A failed delete
// leaves the entry to expire on its own.
func (s *purchaseService) dropCachedStatus(ctx context.Context, purchaseID int64) {
	if err := s.cache.Delete(ctx, purchaseID); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Status cache delete failed",
			slog.Int64("purchase_id", purchaseID),
			slog.Any("error", err),
		)
	}
}
