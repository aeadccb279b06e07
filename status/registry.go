// Package status keeps lock-free counters describing engine activity
package status

import "sync/atomic"

// Metric keys written by the beam engine
const (
	BeamFired         = "beam.fired"
	BeamTracers       = "beam.tracers"
	BeamCancelled     = "beam.cancelled"
	BeamCells         = "beam.cells"
	BeamBounces       = "beam.bounces"
	BeamReflections   = "beam.reflections"
	BeamDamage        = "beam.damage"
	ExplosionCount    = "explosion.count"
	ExplosionCells    = "explosion.cells"
	WallDestroyed     = "wall.destroyed"
	EnchantApplied    = "enchant.applied"
	EnchantResisted   = "enchant.resisted"
	TracerFriendShare = "tracer.friend_share"
	LastZap           = "beam.last_zap"
	LastFiring        = "beam.last_firing"
)

// Registry is the central metrics facade
// Callers cache pointers once; hot paths write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Inc adds delta to an integer counter
func (r *Registry) Inc(key string, delta int64) {
	r.Ints.Get(key).Add(delta)
}

// Count returns an integer counter, zero if never written
func (r *Registry) Count(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// Snapshot copies every counter into a plain map
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
