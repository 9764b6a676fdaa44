package impl

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"vradmin/config"
	deliverycontext "vradmin/internal/delivery/context"
	"vradmin/internal/domain/constants"
	"vradmin/internal/domain/entity"
	domainerrors "vradmin/internal/domain/errors"
	"vradmin/internal/domain/repository"
	"vradmin/internal/domain/service"
	"vradmin/internal/domain/status"
	"vradmin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	txManager        repository.TransactionManager
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.AdminDeviceRepository
	purchases        usecase.PurchaseUsecase
	publisher        service.EventPublisher
	broadcaster      service.EventBroadcaster
	pushSvc          service.NotificationService
	metrics          service.StatusMetrics
	clock            service.Clock
	windowMonths     int
	listLimit        int
	logger           *slog.Logger

	// deriveMu serialises derivation inside this process; the advisory lock
	// taken in the transaction covers other processes.
	deriveMu sync.Mutex
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	NotificationRepo repository.NotificationRepository
	DeviceRepo       repository.AdminDeviceRepository
	Purchases        usecase.PurchaseUsecase
	Publisher        service.EventPublisher
	Broadcaster      service.EventBroadcaster `optional:"true"`
	PushService      service.NotificationService
	Metrics          service.StatusMetrics
	Clock            service.Clock
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	windowMonths, listLimit := 2, 100
	if cfg := params.Config.Notification; cfg != nil {
		windowMonths = cfg.WindowMonths
		listLimit = cfg.ListLimit
	}

	return &notificationService{
		txManager:        params.TxManager,
		notificationRepo: params.NotificationRepo,
		deviceRepo:       params.DeviceRepo,
		purchases:        params.Purchases,
		publisher:        params.Publisher,
		broadcaster:      params.Broadcaster,
		pushSvc:          params.PushService,
		metrics:          params.Metrics,
		clock:            params.Clock,
		windowMonths:     windowMonths,
		listLimit:        listLimit,
		logger:           params.Logger,
	}
}

// DeriveShippingMissing scans the trailing window and creates one batched
// notification for qualifying purchases that no SHIPPING_MISSING
// notification mentions yet, read or unread. Existing notifications are
// never modified, so read state survives a re-run.
func (s *notificationService) DeriveShippingMissing(ctx context.Context) (*entity.DerivationResult, error) {
	s.deriveMu.Lock()
	defer s.deriveMu.Unlock()

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	now := s.clock.Now()
	start := now.AddDate(0, -s.windowMonths, 0)

	batch, err := s.purchases.GetStatusesByDateRange(ctx, start, now)
	if err != nil {
		s.metrics.ObserveDerivation("error", 0)

		return nil, err
	}

	result := &entity.DerivationResult{
		Scanned:        len(batch),
		Qualifying:     status.MissingShippingIDs(batch),
		AlreadyCovered: []int64{},
	}
	if len(result.Qualifying) == 0 {
		s.metrics.ObserveDerivation("nothing_qualifies", 0)

		return result, nil
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		repo := factory.NewNotificationRepository()

		if err := repo.LockDerivation(ctx); err != nil {
			return err
		}

		covered, err := repo.CoveredPurchaseIDs(ctx, entity.NotificationTypeShippingMissing, result.Qualifying)
		if err != nil {
			return err
		}
		result.AlreadyCovered = covered

		fresh := subtractIDs(result.Qualifying, covered)
		if len(fresh) == 0 {
			return nil
		}

		notification := &entity.Notification{
			ID:        uuid.New(),
			Title:     status.ShippingMissingTitle,
			Message:   status.ShippingMissingMessage(fresh),
			Type:      entity.NotificationTypeShippingMissing,
			Metadata:  entity.NotificationMetadata{PurchaseIDs: fresh},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.CreateNotification(ctx, notification); err != nil {
			return err
		}
		result.Created = notification

		return nil
	})
	if err != nil {
		s.metrics.ObserveDerivation("error", 0)

		return nil, errors.Wrap(err, "failed to persist shipping missing notification")
	}

	if result.Created == nil {
		s.metrics.ObserveDerivation("already_covered", 0)

		return result, nil
	}

	s.metrics.ObserveDerivation("created", 1)
	logger.Info("Shipping missing notification created",
		slog.String("notification_id", result.Created.ID.String()),
		slog.Int("purchases", len(result.Created.Metadata.PurchaseIDs)),
	)

	s.emit(ctx, constants.EventNewAdminNotification, result.Created)
	s.pushToAdmins(ctx, result.Created)

	return result, nil
}

// subtractIDs returns the ids of all not present in covered, keeping order.
func subtractIDs(all, covered []int64) []int64 {
	skip := make(map[int64]struct{}, len(covered))
	for _, id := range covered {
		skip[id] = struct{}{}
	}

	fresh := make([]int64, 0, len(all))
	for _, id := range all {
		if _, ok := skip[id]; !ok {
			fresh = append(fresh, id)
		}
	}

	return fresh
}

// ListNotifications returns notifications newest first, capped at the
// configured listing limit.
func (s *notificationService) ListNotifications(ctx context.Context, query entity.NotificationQuery) ([]*entity.Notification, error) {
	if query.Start != nil && query.End != nil && query.Start.After(*query.End) {
		return nil, domainerrors.ErrInvalidDateRange
	}
	if query.Limit <= 0 || query.Limit > s.listLimit {
		query.Limit = s.listLimit
	}

	notifications, err := s.notificationRepo.ListNotifications(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// CountNotifications counts all and unread notifications.
func (s *notificationService) CountNotifications(ctx context.Context) (*entity.NotificationCount, error) {
	count, err := s.notificationRepo.CountNotifications(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count notifications")
	}

	return count, nil
}

// MarkRead sets the read flag of one notification.
func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID, read bool) (*entity.Notification, error) {
	notification, err := s.notificationRepo.SetRead(ctx, id, read)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, domainerrors.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to update notification")
	}

	s.emit(ctx, constants.EventNotificationUpdated, notification)

	return notification, nil
}

// MarkAllRead marks every notification read.
func (s *notificationService) MarkAllRead(ctx context.Context) (int64, error) {
	changed, err := s.notificationRepo.MarkAllRead(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications read")
	}

	if changed > 0 {
		s.emit(ctx, constants.EventNotificationUpdated, nil)
	}

	return changed, nil
}

// emit sends an event to the clients of this process and to the bus. The
// counters ride along so clients can refresh their badge without a request.
// Failures are logged; the state change has already happened.
func (s *notificationService) emit(ctx context.Context, eventType string, notification *entity.Notification) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	event := &service.AdminEvent{
		ID:           uuid.NewString(),
		Type:         eventType,
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		Notification: notification,
		OccurredAt:   s.clock.Now(),
	}

	if count, err := s.notificationRepo.CountNotifications(ctx); err == nil {
		event.Count = count
	} else {
		logger.Warn("Failed to count notifications for event", slog.Any("error", err))
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(event)
	}

	if err := s.publisher.PublishAdminEvent(ctx, event); err != nil {
		logger.Error("Failed to publish admin event",
			slog.String("type", eventType),
			slog.Any("error", err),
		)
	}
}

// pushToAdmins sends the notification to every active admin device and
// deactivates tokens Firebase reports as invalid.
func (s *notificationService) pushToAdmins(ctx context.Context, notification *entity.Notification) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	devices, err := s.deviceRepo.FindAllActiveDevices(ctx)
	if err != nil {
		logger.Error("Failed to load admin devices", slog.Any("error", err))

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	msg := service.PushMessage{
		Title: notification.Title,
		Body:  notification.Message,
		Data: map[string]string{
			"notification_id": notification.ID.String(),
			"type":            string(notification.Type),
			"purchase_count":  strconv.Itoa(len(notification.Metadata.PurchaseIDs)),
		},
	}

	var (
		total         service.PushReport
		invalidTokens []string
	)
	for batch := range slices.Chunk(tokens, service.MaxPushTokens) {
		report, err := s.pushSvc.Push(ctx, batch, msg)
		if err != nil {
			logger.Error("Failed to send push batch", slog.Any("error", err))
			total.Failed += len(batch)

			continue
		}
		total.Sent += report.Sent
		total.Failed += report.Failed
		invalidTokens = append(invalidTokens, report.Stale...)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := s.deviceRepo.DeactivateByTokens(ctx, invalidTokens, s.clock.Now())
		if err != nil {
			logger.Error("Failed to deactivate invalid device tokens", slog.Any("error", err))
		} else {
			logger.Info("Deactivated invalid device tokens", slog.Int64("count", deactivated))
		}
	}

	logger.Info("Admin push sent",
		slog.Int("sent", total.Sent),
		slog.Int("failed", total.Failed),
	)
}
