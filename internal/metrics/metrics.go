package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// GatewayMetrics counts outbound provider calls and their failures.
type GatewayMetrics struct {
	InitCalls      Counter
	InitFailures   Counter
	VerifyCalls    Counter
	VerifyFailures Counter
}

// Gateway is the process-wide gateway metrics instance.
var Gateway GatewayMetrics
