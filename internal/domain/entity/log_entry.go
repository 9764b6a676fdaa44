package entity

import "time"

// LogEntry is one structured application log line.
type LogEntry struct {
	Timestamp time.Time      `json:"@timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Key       string         `json:"key"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// LogQuery pages through log entries, newest first.
type LogQuery struct {
	From  int
	Size  int
	Query string
	Level string
	Key   string
}

// LogPage is one page of log entries with the unpaged total.
type LogPage struct {
	Items []*LogEntry `json:"items"`
	Total uint64      `json:"total"`
}
