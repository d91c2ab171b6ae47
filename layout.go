package main

import (
	"qtermstab/circuit"
	"qtermstab/gates"
)

// layout packs gate applications into diagram columns. Each application goes
// into the earliest column after the last one touching any wire it spans, so
// independent gates share a column while per-wire order is kept.
type layout struct {
	numWires int
	cols     [][]cellInfo
	// next is the first column each wire is free in.
	next []int
	// lastResult keeps measurement columns in record order.
	lastResult int
}

func newLayout(numWires int) *layout {
	return &layout{numWires: numWires, next: make([]int, numWires)}
}

// column returns column k, growing the grid as needed.
func (l *layout) column(k int) []cellInfo {
	for len(l.cols) <= k {
		l.cols = append(l.cols, make([]cellInfo, l.numWires))
	}
	return l.cols[k]
}

// barrier fills a whole new column with a barrier.
func (l *layout) barrier() {
	k := 0
	for _, n := range l.next {
		k = max(k, n)
	}
	col := l.column(k)
	for q := range col {
		col[q].kind = cellBarrier
		l.next[q] = k + 1
	}
	l.lastResult = max(l.lastResult, k)
}

// place puts one application of g on group's qubits.
func (l *layout) place(g *gates.Gate, group []circuit.Target) {
	lo, hi := l.numWires, -1
	feedback := false
	for _, t := range group {
		if t.IsRecord() {
			feedback = true
			continue
		}
		q := int(t.Value())
		lo, hi = min(lo, q), max(hi, q)
	}
	if hi < 0 {
		return
	}

	k := 0
	for q := lo; q <= hi; q++ {
		k = max(k, l.next[q])
	}
	collapsing := g.Flags.Has(gates.ProducesResults)
	if collapsing {
		k = max(k, l.lastResult)
	}
	if feedback {
		k = max(k, l.lastResult+1)
	}

	col := l.column(k)
	for i, t := range group {
		switch {
		case t.IsRecord():
		case feedback:
			col[t.Value()] = feedbackCell(g)
		default:
			col[t.Value()] = groupCell(g, t, i)
		}
	}
	for q := lo; q <= hi; q++ {
		col[q].vertAbove = q > lo
		col[q].vertBelow = q < hi
		l.next[q] = k + 1
	}
	if collapsing {
		l.lastResult = k
	}
}

// columns lays out the simulated circuit for the diagram.
func (m Model) columns() [][]cellInfo {
	l := newLayout(m.numWires())
	for _, op := range m.result.circuit.Operations {
		g := gates.Default.ByID(op.Gate)
		if g.Flags.Has(gates.IsAnnotation) {
			l.barrier()
			continue
		}
		for _, group := range circuit.Groups(op) {
			l.place(g, group)
		}
	}
	return l.cols
}
