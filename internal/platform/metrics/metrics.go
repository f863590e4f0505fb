package metrics

import (
	"math"
	"sync/atomic"
	"time"
)

// Collector counts HTTP traffic and the payroll reports served.
type Collector struct {
	totalRequests     uint64
	errorRequests     uint64
	rateLimited       uint64
	totalDurationMs   uint64
	reportsRendered   uint64
	employeesReported uint64
	payrollCents      uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	if status == 429 {
		atomic.AddUint64(&c.rateLimited, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

// RecordReport counts one rendered roster and the annual payroll it covered.
func (c *Collector) RecordReport(employees int, grandTotal float64) {
	atomic.AddUint64(&c.reportsRendered, 1)
	if employees > 0 {
		atomic.AddUint64(&c.employeesReported, uint64(employees))
	}
	if grandTotal > 0 && !math.IsInf(grandTotal, 0) {
		atomic.AddUint64(&c.payrollCents, uint64(math.Round(grandTotal*100)))
	}
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	limited := atomic.LoadUint64(&c.rateLimited)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":          total,
		"errorsTotal":            errs,
		"rateLimitedTotal":       limited,
		"avgDurationMs":          avg,
		"totalDurationMs":        totalMs,
		"reportsRenderedTotal":   atomic.LoadUint64(&c.reportsRendered),
		"employeesReportedTotal": atomic.LoadUint64(&c.employeesReported),
		"payrollReportedTotal":   float64(atomic.LoadUint64(&c.payrollCents)) / 100,
	}
}
