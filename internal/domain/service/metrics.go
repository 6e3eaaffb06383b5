package service

import "time"

// GraphMetrics records the outcome of graph store operations.
type GraphMetrics interface {
	// ObserveMutation counts a finished mutation; err nil means success.
	ObserveMutation(operation string, err error)

	// ObserveIDCollision counts a create retried after an ID conflict.
	ObserveIDCollision()

	// ObserveHTTPRequest records one served HTTP request.
	ObserveHTTPRequest(method, route string, status int, elapsed time.Duration)
}
