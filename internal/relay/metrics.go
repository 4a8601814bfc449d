package relay

import (
	"sync/atomic"
	"time"
)

// Metrics tracks relay statistics using atomic operations for thread-safety
type Metrics struct {
	EnhanceRequests  atomic.Int64
	PromptRequests   atomic.Int64
	RejectedRequests atomic.Int64
	UpstreamFailures atomic.Int64
	ParseFailures    atomic.Int64
	InFlight         atomic.Int32
	StartTime        time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	EnhanceRequests  int64     `json:"enhance_requests"`
	PromptRequests   int64     `json:"prompt_requests"`
	RejectedRequests int64     `json:"rejected_requests"`
	UpstreamFailures int64     `json:"upstream_failures"`
	ParseFailures    int64     `json:"parse_failures"`
	InFlight         int32     `json:"in_flight"`
	StartTime        time.Time `json:"start_time"`
	Uptime           string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EnhanceRequests:  m.EnhanceRequests.Load(),
		PromptRequests:   m.PromptRequests.Load(),
		RejectedRequests: m.RejectedRequests.Load(),
		UpstreamFailures: m.UpstreamFailures.Load(),
		ParseFailures:    m.ParseFailures.Load(),
		InFlight:         m.InFlight.Load(),
		StartTime:        m.StartTime,
		Uptime:           time.Since(m.StartTime).Round(time.Second).String(),
	}
}
