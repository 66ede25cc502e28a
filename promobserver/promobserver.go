// Package promobserver exports seqdb store events as Prometheus metrics.
package promobserver

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/theflywheel/seqdb"
)

// Observer implements seqdb.MetricsObserver with Prometheus collectors.
type Observer struct {
	ops           *prometheus.CounterVec
	finds         *prometheus.CounterVec
	rehashes      prometheus.Counter
	rehashSteps   *prometheus.CounterVec
	recordsMoved  prometheus.Counter
	capacity      prometheus.Gauge
	rehashRunning prometheus.Gauge
}

var _ seqdb.MetricsObserver = (*Observer)(nil)

// New creates an Observer and registers its collectors with reg.
func New(reg prometheus.Registerer) (*Observer, error) {
	o := &Observer{
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seqdb_operations_total",
			Help: "Insert and remove calls by outcome",
		}, []string{"op", "status"}),
		finds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seqdb_finds_total",
			Help: "Find calls by result",
		}, []string{"result"}),
		rehashes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seqdb_rehashes_total",
			Help: "Rehashes started",
		}),
		rehashSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "seqdb_rehash_steps_total",
			Help: "Migration batches by the phase they advanced to",
		}, []string{"phase"}),
		recordsMoved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "seqdb_records_migrated_total",
			Help: "Records moved from a retiring table",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seqdb_active_capacity",
			Help: "Capacity of the active table",
		}),
		rehashRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "seqdb_rehash_in_progress",
			Help: "1 while a retiring table is being drained",
		}),
	}

	for _, c := range []prometheus.Collector{
		o.ops, o.finds, o.rehashes, o.rehashSteps, o.recordsMoved, o.capacity, o.rehashRunning,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func status(err error) string {
	if err != nil {
		return "rejected"
	}
	return "success"
}

func (o *Observer) OnInsert(err error) {
	o.ops.WithLabelValues("insert", status(err)).Inc()
}

func (o *Observer) OnRemove(err error) {
	o.ops.WithLabelValues("remove", status(err)).Inc()
}

func (o *Observer) OnFind(found bool) {
	result := "miss"
	if found {
		result = "hit"
	}
	o.finds.WithLabelValues(result).Inc()
}

func (o *Observer) OnRehashStart(_, toCap int) {
	o.rehashes.Inc()
	o.capacity.Set(float64(toCap))
	o.rehashRunning.Set(1)
}

func (o *Observer) OnRehashStep(phase seqdb.Phase, moved int) {
	o.rehashSteps.WithLabelValues(phase.String()).Inc()
	o.recordsMoved.Add(float64(moved))
}

func (o *Observer) OnRehashDone(capacity int) {
	o.capacity.Set(float64(capacity))
	o.rehashRunning.Set(0)
}
