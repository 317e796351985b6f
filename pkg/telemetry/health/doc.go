// Package health provides liveness and readiness checking for Courier.
//
// A Checker holds named CheckFunc callbacks for service components (the
// audit store, the upstream HTTP client pool) and runs them concurrently
// with a per-check timeout. LivenessHandler answers immediately;
// ReadinessHandler aggregates all registered checks and returns 503 when
// any component is unhealthy.
//
//	checker := health.New(2 * time.Second)
//	checker.RegisterCheck("audit_store", store.Ping)
//	mux.HandleFunc("/health", checker.ReadinessHandler())
package health
