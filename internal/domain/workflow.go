// Package domain runs mutation sessions: repeated mutation passes over
// built-in sample shapes, with size accounting and sample persistence.
package domain

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fuzzbed/mangle/internal/adapter"
	m "github.com/fuzzbed/mangle/internal/model"
	"github.com/fuzzbed/mangle/mutate"
)

// Workflow defines the interface for running mutation sessions.
type Workflow interface {
	Run(args RunArgs) (m.Summary, error)
	Shapes() []m.ShapeInfo
}

// RunArgs configures one Run invocation.
type RunArgs struct {
	Config m.SessionConfig

	// Progress, when set, is called after every completed pass. It may
	// be called from concurrent sessions.
	Progress func(shape m.Shape, pass int)
}

type workflow struct {
	store adapter.SampleStore
	log   *zap.Logger
}

// NewWorkflow creates a Workflow persisting samples through the given
// store. A nil logger disables session logging.
func NewWorkflow(store adapter.SampleStore, log *zap.Logger) Workflow {
	if log == nil {
		log = zap.NewNop()
	}

	return &workflow{store: store, log: log}
}

// Shapes lists the built-in sample shapes.
func (w *workflow) Shapes() []m.ShapeInfo {
	return shapeInfos()
}

// Run executes one session per requested shape, in parallel up to the
// configured worker count. Each session owns its Mutator and its seeded
// random stream, so sessions never contend on mutation state and a
// given seed always replays the same samples.
func (w *workflow) Run(args RunArgs) (m.Summary, error) {
	cfg := args.Config

	mode, err := mutate.ParseMode(cfg.Mode)
	if err != nil {
		return m.Summary{}, err
	}

	shapes := cfg.Shapes
	if len(shapes) == 0 {
		for _, info := range shapeInfos() {
			shapes = append(shapes, info.Shape)
		}
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	var (
		mtx   sync.Mutex
		stats []m.SessionStats
	)

	g := new(errgroup.Group)
	g.SetLimit(workers)

	for i, shape := range shapes {
		stream := uint64(i)

		g.Go(func() error {
			st, err := w.runSession(shape, stream, cfg, mode, args.Progress)
			if err != nil {
				return err
			}

			mtx.Lock()
			stats = append(stats, st)
			mtx.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return m.Summary{}, err
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].Shape < stats[j].Shape })

	summary := m.Summary{
		Sessions: stats,
		Duration: time.Since(start),
	}
	for _, st := range stats {
		summary.TotalPasses += st.Passes
	}

	return summary, nil
}

// runSession mutates one shape's sample for the configured number of
// passes. The sample evolves across passes; every pass mutates the
// value the previous pass produced.
func (w *workflow) runSession(shape m.Shape, stream uint64, cfg m.SessionConfig, mode mutate.Mode, progress func(m.Shape, int)) (m.SessionStats, error) {
	s, ok := newSample(shape)
	if !ok {
		return m.SessionStats{}, fmt.Errorf("unknown shape %q", shape)
	}

	seed := cfg.Seed + stream
	mu := mutate.New(adapter.NewSeededRand(seed))
	mu.SetMode(mode)

	log := w.log.With(zap.String("shape", string(shape)))
	log.Info("session started",
		zap.Uint64("seed", seed),
		zap.Int("passes", cfg.Passes),
		zap.String("mode", mode.String()))

	st := m.SessionStats{Shape: shape}
	prev := len(s.serialize())

	for pass := range cfg.Passes {
		s.mutate(mu, cfg.MaxSize)

		data := s.serialize()
		st.Observe(len(data), prev)
		prev = len(data)

		if cfg.Output != "" {
			if err := w.store.WriteSample(cfg.Output, shape, pass, data); err != nil {
				return st, err
			}
		}

		if progress != nil {
			progress(shape, pass+1)
		}

		log.Debug("mutation pass",
			zap.Int("pass", pass),
			zap.Int("size", len(data)))
	}

	log.Info("session finished",
		zap.Int("minSize", st.MinSize),
		zap.Int("maxSize", st.MaxSize),
		zap.Int("grown", st.Grown),
		zap.Int("shrunk", st.Shrunk))

	return st, nil
}
