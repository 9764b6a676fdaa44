package status

import (
	"testing"
	"time"

	"vradmin/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func userRecord(validUntil *time.Time, sessionStarts ...time.Time) entity.ActivationRecord {
	sessions := make([]entity.TrainingSession, 0, len(sessionStarts))
	for i, start := range sessionStarts {
		sessions = append(sessions, entity.TrainingSession{SessionNumber: i + 1, StartTime: ptr(start)})
	}

	return entity.ActivationRecord{User: &entity.ActivationUser{ValidUntil: validUntil, TrainingSessions: sessions}}
}

func snapshot(id int64, infos []entity.AdditionalInfo, records ...entity.ActivationRecord) entity.ClassifiedSnapshot {
	bundle := entity.SignalBundle{ActivationRecords: records}

	return entity.ClassifiedSnapshot{
		PurchaseSnapshot: entity.PurchaseSnapshot{PurchaseID: id, AdditionalInfo: infos, Signals: bundle},
		Status:           Classify(bundle, evalTime),
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	imported := []entity.AdditionalInfo{{PurchaseSource: entity.PurchaseSourceImported}}
	future := evalTime.AddDate(1, 0, 0)
	past := evalTime.AddDate(0, 0, -1)

	batch := []entity.ClassifiedSnapshot{
		snapshot(1, nil, userRecord(ptr(future), evalTime.AddDate(0, 0, -3))),
		snapshot(2, nil, userRecord(nil)),
		snapshot(3, imported, userRecord(nil)),
		snapshot(4, nil, userRecord(ptr(past))),
		snapshot(5, nil),
	}

	summary := Summarize(batch, batch, evalTime.AddDate(0, -1, 0), evalTime, evalTime)

	assert.Equal(t, 5, summary.Purchases)
	assert.Equal(t, 1, summary.Trained)
	assert.Equal(t, 2, summary.ActiveNotTrained)
	assert.Equal(t, 1, summary.ActiveNotTrainedImported)
	assert.Equal(t, 1, summary.Invalid)
	assert.Equal(t, 1, summary.ValidAndTrainedLast12Weeks)
	assert.Equal(t, 1, summary.ByCategory[entity.CategoryTrained])
	assert.Equal(t, 1, summary.ByCategory[entity.CategoryInvalid])
	assert.Equal(t, 3, summary.ByCategory[entity.CategoryUnknown])
	assert.Contains(t, summary.ByCategory, entity.CategoryPendingConfirmation)
}

func TestTrainedRecently(t *testing.T) {
	t.Parallel()

	future := ptr(evalTime.AddDate(0, 6, 0))

	tests := []struct {
		name   string
		record entity.ActivationRecord
		want   bool
	}{
		{name: "last session inside window", record: userRecord(future, evalTime.AddDate(0, -6, 0), evalTime.AddDate(0, 0, -10)), want: true},
		{name: "last session outside window", record: userRecord(future, evalTime.AddDate(0, 0, -10), evalTime.AddDate(0, -6, 0)), want: false},
		{name: "expired account", record: userRecord(ptr(evalTime.AddDate(0, 0, -1)), evalTime.AddDate(0, 0, -2)), want: false},
		{name: "no valid until", record: userRecord(nil, evalTime.AddDate(0, 0, -2)), want: false},
		{name: "never trained", record: userRecord(future), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, TrainedRecently([]entity.ActivationRecord{tt.record}, evalTime))
		})
	}
}

func TestHasExpiredUntrainedUser_UsesFirstUntrainedUser(t *testing.T) {
	t.Parallel()

	records := []entity.ActivationRecord{
		{User: nil},
		userRecord(ptr(evalTime.AddDate(0, 1, 0))),
		userRecord(ptr(evalTime.AddDate(0, -1, 0))),
	}

	assert.False(t, HasExpiredUntrainedUser(records, evalTime))
	assert.True(t, HasExpiredUntrainedUser(records[2:], evalTime))
}
