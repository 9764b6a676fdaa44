package status

import (
	"slices"
	"time"

	"vradmin/internal/domain/entity"
)

// RecentTrainingWindow is how recent the last session of an account counted
// as "valid and trained" must be.
const RecentTrainingWindow = 12 * 7 * 24 * time.Hour

// RecentTrainingSince is the earliest purchase date scanned for recently
// trained accounts. Older purchases predate session tracking.
var RecentTrainingSince = time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)

// IsImported reports whether any provenance entry marks the purchase imported.
func IsImported(infos []entity.AdditionalInfo) bool {
	return slices.ContainsFunc(infos, func(info entity.AdditionalInfo) bool {
		return info.PurchaseSource == entity.PurchaseSourceImported
	})
}

func anyRecord(records []entity.ActivationRecord, match func(user *entity.ActivationUser) bool) bool {
	return slices.ContainsFunc(records, func(record entity.ActivationRecord) bool {
		return record.User != nil && match(record.User)
	})
}

// HasTrainedUser reports whether any activated user has a session.
func HasTrainedUser(records []entity.ActivationRecord) bool {
	return anyRecord(records, func(user *entity.ActivationUser) bool { return len(user.TrainingSessions) > 0 })
}

// HasUntrainedUser reports whether any activated user has no session yet.
func HasUntrainedUser(records []entity.ActivationRecord) bool {
	return anyRecord(records, func(user *entity.ActivationUser) bool { return len(user.TrainingSessions) == 0 })
}

// HasExpiredUntrainedUser reports whether the first untrained user's account
// has lapsed at now.
func HasExpiredUntrainedUser(records []entity.ActivationRecord, now time.Time) bool {
	for _, record := range records {
		if record.User == nil || len(record.User.TrainingSessions) > 0 {
			continue
		}

		return record.User.ValidUntil != nil && record.User.ValidUntil.Before(now)
	}

	return false
}

// TrainedRecently reports whether a still valid account has its last session
// within RecentTrainingWindow of now.
func TrainedRecently(records []entity.ActivationRecord, now time.Time) bool {
	cutoff := now.Add(-RecentTrainingWindow)

	return anyRecord(records, func(user *entity.ActivationUser) bool {
		if len(user.TrainingSessions) == 0 || user.ValidUntil == nil || !user.ValidUntil.After(now) {
			return false
		}
		last := user.TrainingSessions[len(user.TrainingSessions)-1]

		return last.StartTime != nil && last.StartTime.After(cutoff)
	})
}

// Summarize counts the dashboard cards. batch covers the selected range;
// recent is scanned for recently trained accounts only.
func Summarize(batch, recent []entity.ClassifiedSnapshot, start, end, now time.Time) *entity.DashboardSummary {
	summary := &entity.DashboardSummary{
		Start:      start,
		End:        end,
		Purchases:  len(batch),
		ByCategory: make(map[entity.StatusCategory]int, len(entity.AllCategories)),
	}
	for _, category := range entity.AllCategories {
		summary.ByCategory[category] = 0
	}

	for _, item := range batch {
		records := item.Signals.ActivationRecords

		if HasTrainedUser(records) {
			summary.Trained++
		}
		if HasUntrainedUser(records) {
			if IsImported(item.AdditionalInfo) {
				summary.ActiveNotTrainedImported++
			} else {
				summary.ActiveNotTrained++
			}
		}
		if HasExpiredUntrainedUser(records, now) {
			summary.Invalid++
		}
		if item.Status != nil {
			summary.ByCategory[item.Status.Category]++
		}
	}

	for _, item := range recent {
		if TrainedRecently(item.Signals.ActivationRecords, now) {
			summary.ValidAndTrainedLast12Weeks++
		}
	}

	return summary
}
