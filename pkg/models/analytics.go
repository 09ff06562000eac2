package models

// AnalyticsService emits usage events. Implementations are fire-and-forget:
// Capture must never block the request path or surface errors.
type AnalyticsService interface {
	Capture(distinctID, event string, properties map[string]any)
	// Close waits for in-flight events to drain.
	Close()
}
