package entity

import "time"

// DashboardSummary holds the counters shown on the dashboard cards.
type DashboardSummary struct {
	Start                      time.Time              `json:"start"`
	End                        time.Time              `json:"end"`
	Purchases                  int                    `json:"purchases"`
	Trained                    int                    `json:"trained"`
	ActiveNotTrained           int                    `json:"activeNotTrained"`
	ActiveNotTrainedImported   int                    `json:"activeNotTrainedImported"`
	Invalid                    int                    `json:"invalid"`
	ValidAndTrainedLast12Weeks int                    `json:"validAndTrainedLast12Weeks"`
	ByCategory                 map[StatusCategory]int `json:"byCategory"`
}
