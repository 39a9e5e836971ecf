package pibench

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Granted reports how many workers a parallel region will actually receive
// for a given request. Requests beyond GOMAXPROCS are clamped: extra
// goroutines would time-share processors without adding parallelism.
func Granted(requested int) int {
	if p := runtime.GOMAXPROCS(0); requested > p {
		return p
	}
	return requested
}

// ForkJoin spawns a fresh team of workers, runs body on each of them, and
// blocks until every worker has returned (the join doubles as the barrier
// between the parallel phase and the sequential reduction). The team is torn
// down at the join; nothing is pooled across regions.
//
// body receives the worker id in [0, granted) and the granted team size.
// Partitioning math inside body must use granted, never the requested count.
func ForkJoin(requested int, body func(id, granted int)) int {
	granted := Granted(requested)

	var g errgroup.Group
	for id := 0; id < granted; id++ {
		id := id
		g.Go(func() error {
			body(id, granted)
			return nil
		})
	}
	_ = g.Wait() // bodies have no error path

	return granted
}
