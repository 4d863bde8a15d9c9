package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ProfilesBuilt       atomic.Int64
	FieldsClassified    atomic.Int64
	UnknownFields       atomic.Int64
	SuggestionsRendered atomic.Int64
	FallbackEnrichments atomic.Int64
	PlansComputed       atomic.Int64
	EvaluationsRun      atomic.Int64
	SessionHits         atomic.Int64
	SessionMisses       atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"profiles_built":       metrics.ProfilesBuilt.Load(),
		"fields_classified":    metrics.FieldsClassified.Load(),
		"unknown_fields":       metrics.UnknownFields.Load(),
		"suggestions_rendered": metrics.SuggestionsRendered.Load(),
		"fallback_enrichments": metrics.FallbackEnrichments.Load(),
		"plans_computed":       metrics.PlansComputed.Load(),
		"evaluations_run":      metrics.EvaluationsRun.Load(),
		"session_hits":         metrics.SessionHits.Load(),
		"session_misses":       metrics.SessionMisses.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"profiles_built", "fields_classified", "unknown_fields",
		"suggestions_rendered", "fallback_enrichments",
		"plans_computed", "evaluations_run",
		"session_hits", "session_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for profile/ and autofill/ sub-packages.
func IncrProfilesBuilt()       { metrics.ProfilesBuilt.Add(1) }
func IncrFieldsClassified()    { metrics.FieldsClassified.Add(1) }
func IncrUnknownFields()       { metrics.UnknownFields.Add(1) }
func IncrSuggestionsRendered() { metrics.SuggestionsRendered.Add(1) }
func IncrFallbackEnrichments() { metrics.FallbackEnrichments.Add(1) }

// Incrementors for planner/ and evaluate/ sub-packages.
func IncrPlansComputed()  { metrics.PlansComputed.Add(1) }
func IncrEvaluationsRun() { metrics.EvaluationsRun.Add(1) }

// Incrementors for the session store.
func IncrSessionHits()   { metrics.SessionHits.Add(1) }
func IncrSessionMisses() { metrics.SessionMisses.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
