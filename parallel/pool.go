// Copyright 2026 The U1HMC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parallel provides the fixed-size worker pool used to fan the
// data-parallel site loops of latfield, dirac and force out across the
// available hardware threads. Every fan-out joins before returning, so
// no concurrency is ever visible to the caller.
package parallel

import (
	"runtime"
	"sync"
)

// Pool partitions a site loop of size n into contiguous, order-preserving
// ranges, one per worker, and runs body on each range concurrently.
type Pool struct {
	workers int
}

// NewPool returns a Pool sized to GOMAXPROCS(0), clamped to at least 1.
func NewPool() *Pool {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		n = 1
	}
	return &Pool{workers: n}
}

// Workers returns the number of workers the pool fans out to.
func (o *Pool) Workers() int {
	return o.workers
}

// For splits [0,n) into o.workers contiguous ranges, in index order, and
// calls body(lo, hi) on each, blocking until every range has completed.
// When n is smaller than the worker count, only n ranges (one element
// each) are used; when a single range remains (n == 1 or one worker),
// body runs serially in the caller's goroutine.
func (o *Pool) For(n int, body func(lo, hi int)) {
	if n <= 0 {
		return
	}
	nw := o.workers
	if nw > n {
		nw = n
	}
	if nw <= 1 {
		body(0, n)
		return
	}
	chunk := (n + nw - 1) / nw
	var wg sync.WaitGroup
	for w := 0; w < nw; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			body(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// Reduce is like For but accumulates a float64 partial result per range and
// combines them in range order (lo ascending), so the final sum depends
// only on the fixed partition, not on goroutine scheduling order. The
// partition itself depends only on o.workers. This keeps reductions (Dot, Norm2)
// deterministic for a fixed worker count, as required by the site-loop
// ordering guarantee.
func (o *Pool) Reduce(n int, body func(lo, hi int) float64) float64 {
	if n <= 0 {
		return 0
	}
	nw := o.workers
	if nw > n {
		nw = n
	}
	if nw <= 1 {
		return body(0, n)
	}
	chunk := (n + nw - 1) / nw
	partials := make([]float64, nw)
	var wg sync.WaitGroup
	nRanges := 0
	for w := 0; w < nw; w++ {
		lo := w * chunk
		if lo >= n {
			break
		}
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		nRanges++
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			partials[w] = body(lo, hi)
		}(w, lo, hi)
	}
	wg.Wait()
	var total float64
	for w := 0; w < nRanges; w++ {
		total += partials[w]
	}
	return total
}
