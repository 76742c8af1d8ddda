package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes the work done by a single ChooseMove call.
type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64
	LeafEvals int64
	Cutoffs   int64
}

// Collector gathers search instrumentation. Counters are atomic so a single
// collector can be shared with searches running on other goroutines.
type Collector interface {
	Start()
	AddNode()
	AddLeafEval()
	AddCutoff()
	Complete() SearchMetrics
}

type collector struct {
	startTime time.Time
	nodes     atomic.Int64
	leafEvals atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.leafEvals.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddLeafEval() {
	c.leafEvals.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: c.startTime,
		Duration:  time.Since(c.startTime),
		Nodes:     c.nodes.Load(),
		LeafEvals: c.leafEvals.Load(),
		Cutoffs:   c.cutoffs.Load(),
	}
}

type noopCollector struct{}

func NewNoopCollector() Collector {
	return noopCollector{}
}

func (noopCollector) Start()                  {}
func (noopCollector) AddNode()                {}
func (noopCollector) AddLeafEval()            {}
func (noopCollector) AddCutoff()              {}
func (noopCollector) Complete() SearchMetrics { return SearchMetrics{} }
