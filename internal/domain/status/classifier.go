// Package status derives the display status of a purchase from the external
// signals collected for it.
package status

import (
	"time"

	"vradmin/internal/domain/entity"
)

// Classify evaluates every status flag of a signal bundle at now and resolves
// the single display category. It is total: absent signals only turn flags off.
func Classify(bundle entity.SignalBundle, now time.Time) *entity.PurchaseStatus {
	primary := entity.PrimaryActivation(bundle.ActivationRecords)

	var (
		user        *entity.ActivationUser
		hasRecord   = primary != nil
		sessions    int
		validUntil  *time.Time
		orderEmail  = bundle.OrderStatus != nil && bundle.EmailStatus != nil && *bundle.EmailStatus != ""
		hasShipping = bundle.ShippingInfo != nil
		delivered   = IsDelivered(bundle.ShippingInfo)
	)
	if hasRecord {
		user = primary.User
	}
	if user != nil {
		sessions = len(user.TrainingSessions)
		validUntil = user.ValidUntil
	}

	st := &entity.PurchaseStatus{
		SignalBundle: bundle,
		EvaluatedAt:  now,
	}

	st.IsInvalidAccount = validUntil != nil && validUntil.Before(now)
	st.StartedTraining = hasRecord && sessions > 0 && !st.IsInvalidAccount
	st.StartedTrainingWithVR = st.StartedTraining && orderEmail && delivered
	st.HasOrderStatusEmail = orderEmail && !hasShipping

	awaitingTraining := hasRecord && user != nil && sessions == 0 && validUntil == nil
	st.IsActivatedVRDeliveredNotTrained = orderEmail && delivered && awaitingTraining
	st.IsActivatedVRNotDelivered = orderEmail && hasShipping && !delivered && awaitingTraining
	st.MultipleActivations = len(bundle.ActivationRecords) > 1

	st.Category = Category(st)

	return st
}

// Category resolves the display category from the flags, first match wins.
func Category(st *entity.PurchaseStatus) entity.StatusCategory {
	switch {
	case st.StartedTraining || st.StartedTrainingWithVR:
		return entity.CategoryTrained
	case st.HasOrderStatusEmail || st.IsActivatedVRNotDelivered:
		return entity.CategoryPendingConfirmation
	case st.IsActivatedVRDeliveredNotTrained:
		return entity.CategoryDeliveredNotTrained
	case st.IsInvalidAccount:
		return entity.CategoryInvalid
	default:
		return entity.CategoryUnknown
	}
}
