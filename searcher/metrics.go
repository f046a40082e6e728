package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	StartTime      time.Time
	Duration       time.Duration
	Nodes          int64
	Cutoffs        int64
	Hits           int64 // transposition table hits
	Depth          int
	CompletedDepth int
	TimedOut       bool
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddCutoff()
	AddHit()
	ReachDepth(depth int, completed bool)
	TimeOut()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime      time.Time
	nodes          atomic.Int64
	cutoffs        atomic.Int64
	hits           atomic.Int64
	depth          atomic.Int32
	completedDepth atomic.Int32
	timedOut       atomic.Bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.hits.Store(0)
	m.depth.Store(0)
	m.completedDepth.Store(0)
	m.timedOut.Store(false)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) AddHit() {
	m.hits.Add(1)
}

func (m *metricsCollector) ReachDepth(depth int, completed bool) {
	m.depth.Store(int32(depth))
	if completed {
		m.completedDepth.Store(int32(depth))
	}
}

func (m *metricsCollector) TimeOut() {
	m.timedOut.Store(true)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:      m.startTime,
		Duration:       time.Since(m.startTime),
		Nodes:          m.nodes.Load(),
		Cutoffs:        m.cutoffs.Load(),
		Hits:           m.hits.Load(),
		Depth:          int(m.depth.Load()),
		CompletedDepth: int(m.completedDepth.Load()),
		TimedOut:       m.timedOut.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddNode()                {}
func (m *noMetricsCollector) AddCutoff()              {}
func (m *noMetricsCollector) AddHit()                 {}
func (m *noMetricsCollector) ReachDepth(int, bool)    {}
func (m *noMetricsCollector) TimeOut()                {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
