package raster

import (
	"sync"

	"github.com/joshuapare/rasterkit/pkg/types"
)

// Sink receives the non-fatal diagnostics emitted during a decode. Injecting
// a sink decouples the decoder from any specific logging mechanism and makes
// diagnostic emission assertable in tests. Implementations must tolerate
// calls from concurrent decodes if they are shared across them.
type Sink interface {
	Record(d types.Diagnostic)
}

// Collector is a Sink that accumulates diagnostics into a Report. A nil
// *Collector is a valid no-op sink.
type Collector struct {
	mu     sync.Mutex // protects report when a collector is shared across decodes
	report *types.Report
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{report: types.NewReport()}
}

// Record adds a diagnostic to the collection.
func (c *Collector) Record(d types.Diagnostic) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.report.Add(d)
}

// Report returns the accumulated diagnostics.
func (c *Collector) Report() *types.Report {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.report
}
