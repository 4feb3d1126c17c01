package api

import (
	"sync"
	"time"
)

// RouteMetrics aggregates request counts and timings for a single route
type RouteMetrics struct {
	Method      string        `json:"method"`
	Path        string        `json:"path"`
	Count       int64         `json:"count"`
	ErrorCount  int64         `json:"errorCount"`
	TotalTime   time.Duration `json:"-"`
	AvgTime     time.Duration `json:"avgTime"`
	MaxTime     time.Duration `json:"maxTime"`
	LastRequest time.Time     `json:"lastRequest"`
}

// MetricsCollector collects per-route request metrics. Mutex-guarded; at
// portal request rates contention is a non-issue.
type MetricsCollector struct {
	mu            sync.RWMutex
	routeMetrics  map[string]*RouteMetrics
	totalRequests int64
	totalErrors   int64
	startedAt     time.Time
}

var globalMetrics *MetricsCollector

// InitMetrics initializes the global metrics collector
func InitMetrics() {
	globalMetrics = &MetricsCollector{
		routeMetrics: make(map[string]*RouteMetrics),
		startedAt:    time.Now(),
	}
}

// GetMetrics returns the global metrics collector
func GetMetrics() *MetricsCollector {
	if globalMetrics == nil {
		InitMetrics()
	}
	return globalMetrics
}

// Record registers one completed request against its route
func (mc *MetricsCollector) Record(method, path string, status int, duration time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	key := method + " " + path
	rm, ok := mc.routeMetrics[key]
	if !ok {
		rm = &RouteMetrics{Method: method, Path: path}
		mc.routeMetrics[key] = rm
	}

	rm.Count++
	rm.TotalTime += duration
	rm.AvgTime = time.Duration(int64(rm.TotalTime) / rm.Count)
	if duration > rm.MaxTime {
		rm.MaxTime = duration
	}
	rm.LastRequest = time.Now()

	mc.totalRequests++
	if status >= 400 {
		rm.ErrorCount++
		mc.totalErrors++
	}
}

// Summary is the snapshot served by the metrics endpoint
type Summary struct {
	TotalRequests int64           `json:"totalRequests"`
	TotalErrors   int64           `json:"totalErrors"`
	UptimeSeconds float64         `json:"uptimeSeconds"`
	Routes        []*RouteMetrics `json:"routes"`
}

// Snapshot copies out the current aggregates
func (mc *MetricsCollector) Snapshot() Summary {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	routes := make([]*RouteMetrics, 0, len(mc.routeMetrics))
	for _, rm := range mc.routeMetrics {
		copied := *rm
		routes = append(routes, &copied)
	}
	return Summary{
		TotalRequests: mc.totalRequests,
		TotalErrors:   mc.totalErrors,
		UptimeSeconds: time.Since(mc.startedAt).Seconds(),
		Routes:        routes,
	}
}
