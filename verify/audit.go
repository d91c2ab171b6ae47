package verify

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"qtermstab/gates"
)

// DefaultTrials is the flow trial count used when an Auditor sets none.
const DefaultTrials = 256

// Status is the outcome of one check.
type Status uint8

const (
	Skipped Status = iota
	Passed
	Failed
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "ok"
	case Failed:
		return "FAIL"
	default:
		return "-"
	}
}

func statusOf(ok bool) Status {
	if ok {
		return Passed
	}
	return Failed
}

// FlowResult is one declared flow checked against the gate and against its
// decomposition.
type FlowResult struct {
	Flow          string
	Gate          Status
	Decomposition Status
}

// GateResult collects every check run for one gate.
type GateResult struct {
	Name          string
	Inverse       Status
	Decomposition Status
	Unitary       Status
	Flows         []FlowResult
	// Err is the first structural error hit while checking the gate.
	Err error
}

// OK reports whether no check failed.
func (r GateResult) OK() bool {
	if r.Err != nil || r.Inverse == Failed || r.Decomposition == Failed || r.Unitary == Failed {
		return false
	}
	for _, f := range r.Flows {
		if f.Gate == Failed || f.Decomposition == Failed {
			return false
		}
	}
	return true
}

// Report is the outcome of an audit, one result per gate in catalog order.
type Report struct {
	Trials  int
	Results []GateResult
}

// Failed returns the results of the gates with a failing check.
func (r Report) Failed() []GateResult {
	var out []GateResult
	for _, g := range r.Results {
		if !g.OK() {
			out = append(out, g)
		}
	}
	return out
}

// Summary describes the report in one line per failure plus a total.
func (r Report) Summary() string {
	var sb strings.Builder
	failed := r.Failed()
	for _, g := range failed {
		fmt.Fprintf(&sb, "%s:", g.Name)
		if g.Err != nil {
			fmt.Fprintf(&sb, " error: %v", g.Err)
		}
		if g.Inverse == Failed {
			sb.WriteString(" inverse")
		}
		if g.Decomposition == Failed {
			sb.WriteString(" decomposition")
		}
		if g.Unitary == Failed {
			sb.WriteString(" unitary")
		}
		for _, f := range g.Flows {
			if f.Gate == Failed {
				fmt.Fprintf(&sb, " flow %q", f.Flow)
			}
			if f.Decomposition == Failed {
				fmt.Fprintf(&sb, " decomposed flow %q", f.Flow)
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "%d gates checked with %d trials per flow, %d failed", len(r.Results), r.Trials, len(failed))
	return sb.String()
}

// Auditor checks gates.Default concurrently. The zero value runs
// DefaultTrials per flow with seed 0 and GOMAXPROCS workers.
type Auditor struct {
	Trials   int
	Seed     uint64
	Workers  int
	Unsigned bool
	Logger   *zap.Logger
}

func (a *Auditor) trials() int {
	if a.Trials <= 0 {
		return DefaultTrials
	}
	return a.Trials
}

func (a *Auditor) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// Audit checks the named gates, or every gate when names is empty. Failing
// checks are reported, not returned: the error is only set for unknown names
// or a cancelled context.
func (a *Auditor) Audit(ctx context.Context, names ...string) (Report, error) {
	c := gates.Default
	var todo []*gates.Gate
	if len(names) == 0 {
		items := c.Items()
		for i := 1; i < len(items); i++ {
			todo = append(todo, &items[i])
		}
	}
	for _, name := range names {
		g, err := c.At(name)
		if err != nil {
			return Report{}, err
		}
		todo = append(todo, g)
	}

	workers := a.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := a.logger()
	log.Info("starting audit", zap.Int("gates", len(todo)), zap.Int("trials", a.trials()), zap.Int("workers", workers), zap.Uint64("seed", a.Seed))

	results := make([]GateResult, len(todo))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, g := range todo {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = a.AuditGate(g)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, errors.Wrap(err, "audit interrupted")
	}

	report := Report{Trials: a.trials(), Results: results}
	log.Info("audit finished", zap.Int("gates", len(results)), zap.Int("failed", len(report.Failed())))
	return report, nil
}

// AuditGate runs every applicable check on g with a random source derived
// from the seed and the gate id, so results do not depend on scheduling.
func (a *Auditor) AuditGate(g *gates.Gate) GateResult {
	rng := rand.New(rand.NewPCG(a.Seed, uint64(g.ID)))
	r := GateResult{Name: g.Name}
	log := a.logger().With(zap.String("gate", g.Name))
	fail := func(err error) {
		if r.Err == nil {
			r.Err = err
		}
		log.Warn("check errored", zap.Error(err))
	}

	if g.Flags.Has(gates.IsUnitary) {
		ok, err := CheckInverse(g)
		if err != nil {
			fail(err)
		}
		r.Inverse = statusOf(ok)
		if g.Decomposition() != "" {
			ok, err := CheckUnitary(g)
			if err != nil {
				fail(err)
			}
			r.Unitary = statusOf(ok)
		}
	}

	ok, err := CheckDecomposition(g, rng)
	switch {
	case errors.Is(err, ErrExempt), errors.Is(err, ErrNoDecomposition):
	case err != nil:
		fail(err)
		r.Decomposition = Failed
	default:
		r.Decomposition = statusOf(ok)
	}

	flows, err := g.Flows()
	if err != nil {
		fail(err)
		return r
	}
	opts := Options{Unsigned: a.Unsigned}
	direct, err := CheckGateFlows(g, a.trials(), rng, opts)
	if err != nil {
		fail(err)
	}
	decomposed, err := CheckDecompositionFlows(g, a.trials(), rng, opts)
	if err != nil {
		fail(err)
	}
	for k, f := range flows {
		fr := FlowResult{Flow: f.String()}
		if k < len(direct) {
			fr.Gate = statusOf(direct[k])
		}
		if k < len(decomposed) {
			fr.Decomposition = statusOf(decomposed[k])
		}
		if fr.Gate == Failed || fr.Decomposition == Failed {
			log.Warn("flow failed", zap.String("flow", fr.Flow), zap.Stringer("direct", fr.Gate), zap.Stringer("decomposed", fr.Decomposition))
		}
		r.Flows = append(r.Flows, fr)
	}

	log.Debug("gate audited", zap.Bool("ok", r.OK()), zap.Int("flows", len(r.Flows)))
	return r
}
