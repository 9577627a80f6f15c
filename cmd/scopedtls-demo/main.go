// Command scopedtls-demo exercises scoped slots from several goroutines and
// logs every slot event.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/baxromumarov/scopedtls"
)

type request struct {
	ID    int
	Steps []string
}

func main() {
	var (
		workers = flag.IntP("workers", "w", 3, "number of concurrent goroutines")
		depth   = flag.IntP("depth", "d", 2, "nesting depth of Set calls per worker")
		thread  = flag.Bool("thread", false, "key the slot by OS thread instead of goroutine")
		verbose = flag.BoolP("verbose", "v", false, "log every slot event")
	)
	flag.Parse()

	if *workers < 1 || *depth < 1 {
		fmt.Fprintln(os.Stderr, "error: --workers and --depth must be positive")
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []scopedtls.Option{
		scopedtls.WithOnEvent(func(e scopedtls.Event) {
			logger.Debug("slot event",
				"slot", e.Slot,
				"kind", e.Kind.String(),
				"key", e.Key,
				"depth", e.Depth,
			)
		}),
	}
	if *thread {
		if !scopedtls.ThreadModeSupported() {
			fmt.Fprintln(os.Stderr, "error: thread mode is not supported on this platform")
			os.Exit(2)
		}
		opts = append(opts, scopedtls.WithMode(scopedtls.PerThread))
	}

	current := scopedtls.New[request]("current", opts...)
	now := time.Now()

	var wg sync.WaitGroup
	results := make([]request, *workers)
	for i := 0; i < *workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = run(current, i, *depth)
		}()
	}
	wg.Wait()

	for _, r := range results {
		logger.Info("request done", "id", r.ID, "steps", r.Steps)
	}

	if _, err := scopedtls.TryWith(current, func(r *request) int { return r.ID }); err != nil {
		logger.Info("slot empty after all scopes", "err", err)
	}

	logger.Info("finished", "mode", current.Mode().String(), "elapsed", time.Since(now))
}

// run installs a request for worker id and nests depth-1 further Set calls,
// recording every level it passes through.
func run(current *scopedtls.Slot[request], id, depth int) request {
	return current.Set(request{ID: id}, func() {
		nest(current, id, 1, depth)
	})
}

func nest(current *scopedtls.Slot[request], id, level, depth int) {
	record(current, fmt.Sprintf("enter-%d", level))
	if level < depth {
		inner := current.Set(request{ID: id}, func() {
			nest(current, id, level+1, depth)
		})
		record(current, fmt.Sprintf("inner-%d-steps-%d", level+1, len(inner.Steps)))
	}
	record(current, fmt.Sprintf("leave-%d", level))
}

func record(current *scopedtls.Slot[request], step string) {
	current.Do(func(r *request) {
		r.Steps = append(r.Steps, step)
	})
}
