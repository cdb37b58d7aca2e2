package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// BatchProgressEvent is pushed to subscribers while an affinity batch runs.
type BatchProgressEvent struct {
	Type           string `json:"type"`
	ProcessedPairs int    `json:"processed_pairs"`
	TotalPairs     int    `json:"total_pairs"`
	FailedPairs    int    `json:"failed_pairs"`
	Timestamp      string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyBatchProgress broadcasts a progress snapshot of the running batch.
func NotifyBatchProgress(processed, total, failed int) {
	notify("batch_progress", processed, total, failed)
}

// NotifyBatchCompleted broadcasts the final state of a finished batch.
func NotifyBatchCompleted(processed, total, failed int) {
	notify("batch_completed", processed, total, failed)
}

func notify(eventType string, processed, total, failed int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := BatchProgressEvent{
		Type:           eventType,
		ProcessedPairs: processed,
		TotalPairs:     total,
		FailedPairs:    failed,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
