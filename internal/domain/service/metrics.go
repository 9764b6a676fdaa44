package service

import "vradmin/internal/domain/entity"

// StatusMetrics records classification and derivation outcomes.
type StatusMetrics interface {
	ObserveClassification(category entity.StatusCategory, cached bool)
	ObserveSignalWarning(signal entity.SignalName)
	ObserveDerivation(outcome string, created int)
}
