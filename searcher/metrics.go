package searcher

import "time"

// SearchMetrics describes the search of one turn.
type SearchMetrics struct {
	StartTime       time.Time
	Duration        time.Duration
	Depth           int // deepest completed pass
	Passes          int
	Interrupted     bool // the last pass ran out of time
	Nodes           int64
	QuiescenceNodes int64
	Cutoffs         int64
	TTHits          int64
	TTStores        int64
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddQuiescenceNode()
	AddCutoff()
	AddTTHit()
	AddTTStore()
	CompletePass(depth int)
	Interrupt()
	Complete() SearchMetrics
}

type metricsCollector struct {
	m SearchMetrics
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (c *metricsCollector) Start() {
	c.m = SearchMetrics{StartTime: time.Now()}
}

func (c *metricsCollector) AddNode()           { c.m.Nodes++ }
func (c *metricsCollector) AddQuiescenceNode() { c.m.QuiescenceNodes++ }
func (c *metricsCollector) AddCutoff()         { c.m.Cutoffs++ }
func (c *metricsCollector) AddTTHit()          { c.m.TTHits++ }
func (c *metricsCollector) AddTTStore()        { c.m.TTStores++ }
func (c *metricsCollector) Interrupt()         { c.m.Interrupted = true }

func (c *metricsCollector) CompletePass(depth int) {
	c.m.Depth = depth
	c.m.Passes++
}

func (c *metricsCollector) Complete() SearchMetrics {
	c.m.Duration = time.Since(c.m.StartTime)
	return c.m
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (c *noMetricsCollector) Start()                  {}
func (c *noMetricsCollector) AddNode()                {}
func (c *noMetricsCollector) AddQuiescenceNode()      {}
func (c *noMetricsCollector) AddCutoff()              {}
func (c *noMetricsCollector) AddTTHit()               {}
func (c *noMetricsCollector) AddTTStore()             {}
func (c *noMetricsCollector) CompletePass(depth int)  {}
func (c *noMetricsCollector) Interrupt()              {}
func (c *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
