package core

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPoolRunsAllJobs(t *testing.T) {
	pool := NewWorkerPool(2)
	var count int64
	for i := 0; i < 20; i++ {
		pool.Submit(func() {
			atomic.AddInt64(&count, 1)
		})
	}
	pool.Wait()
	assert.EqualValues(t, 20, count)
}

func TestWorkerPoolUnboundedWhenZero(t *testing.T) {
	pool := NewWorkerPool(0)
	var count int64
	for i := 0; i < 5; i++ {
		pool.Submit(func() { atomic.AddInt64(&count, 1) })
	}
	pool.Wait()
	assert.EqualValues(t, 5, count)
}
