package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"qtermstab/circuit"
	"qtermstab/gates"
	"qtermstab/pauli"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width, cutting it if needed.
func padCenter(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return ansi.Truncate(s, width, "")
	}
	total := width - w
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

var displayNames = strings.NewReplacer("SQRT_", "√", "_DAG", "†")

// gateDisplayName returns a short display name for a gate.
func gateDisplayName(name string) string {
	return displayNames.Replace(name)
}

// pairGlyphs are the wire symbols drawn for the first and second qubit of
// gates that read as a control and a target.
var pairGlyphs = map[gates.Type][2]string{
	gates.CX:   {"●", "⊕"},
	gates.CY:   {"●", "Y"},
	gates.CZ:   {"●", "●"},
	gates.Swap: {"×", "×"},
}

// ──────────────────────────── Layout ────────────────────────────

type cellKind int

const (
	cellEmpty cellKind = iota
	cellBox
	cellGlyph
	cellBarrier
)

// cellInfo describes what occupies one qubit in one operation column.
type cellInfo struct {
	kind      cellKind
	label     string
	measure   bool // collapsing gates are drawn in the measurement style
	vertAbove bool
	vertBelow bool
}

func (m Model) numWires() int {
	return max(m.numQubits, m.result.numQubits, m.result.circuit.CountQubits())
}

// groupCell is the cell of the k-th target t of one application of g.
func groupCell(g *gates.Gate, t circuit.Target, k int) cellInfo {
	collapsing := g.Flags.Has(gates.ProducesResults) || g.Flags.Has(gates.IsReset)
	if glyphs, ok := pairGlyphs[g.ID]; ok {
		return cellInfo{kind: cellGlyph, label: glyphs[k]}
	}
	label := gateDisplayName(g.Name)
	if t.IsPauli() {
		label = "M" + string(t.Basis())
	}
	if t.IsInverted() {
		label = "!" + label
	}
	return cellInfo{kind: cellBox, label: label, measure: collapsing}
}

// feedbackCell is the qubit side of a gate controlled by a measurement record.
func feedbackCell(g *gates.Gate) cellInfo {
	label := "Z"
	switch g.ID {
	case gates.CX:
		label = "X"
	case gates.CY:
		label = "Y"
	}
	return cellInfo{kind: cellBox, label: label + "·rec", measure: true}
}

// ──────────────────────────── Cell rendering ────────────────────────────

// renderCell returns 3 lines (top, mid, bot) for a single cell.
// Each line is exactly cellW visual characters wide.
func renderCell(info cellInfo) (top, mid, bot string) {
	emptyRow := strings.Repeat(" ", cellW)
	halfW := cellW / 2
	vertRow := strings.Repeat(" ", halfW) + "│" + strings.Repeat(" ", cellW-halfW-1)
	dashL := (cellW - 1) / 2
	dashR := cellW - dashL - 1

	top, bot = emptyRow, emptyRow
	if info.vertAbove {
		top = vertRow
	}
	if info.vertBelow {
		bot = vertRow
	}

	switch info.kind {
	case cellBarrier:
		bar := strings.Repeat(" ", halfW) + dimStyle.Render("┃") + strings.Repeat(" ", cellW-halfW-1)
		top, bot = bar, bar
		mid = strings.Repeat("─", dashL) + dimStyle.Render("╂") + strings.Repeat("─", dashR)

	case cellGlyph:
		mid = strings.Repeat("─", dashL) + gateStyle.Render(info.label) + strings.Repeat("─", dashR)

	case cellBox:
		style := gateStyle
		if info.measure {
			style = measureStyle
		}
		margin := (cellW - gateBoxW) / 2
		rightMargin := cellW - margin - gateBoxW
		edgeL := (gateNameW - 1) / 2
		edgeR := gateNameW - edgeL - 1
		boxTop := "┌" + strings.Repeat("─", gateNameW) + "┐"
		if info.vertAbove {
			boxTop = "┌" + strings.Repeat("─", edgeL) + "┴" + strings.Repeat("─", edgeR) + "┐"
		}
		boxBot := "└" + strings.Repeat("─", gateNameW) + "┘"
		if info.vertBelow {
			boxBot = "└" + strings.Repeat("─", edgeL) + "┬" + strings.Repeat("─", edgeR) + "┘"
		}
		top = strings.Repeat(" ", margin) + style.Render(boxTop) + strings.Repeat(" ", rightMargin)
		mid = strings.Repeat("─", margin) + style.Render("┤"+padCenter(info.label, gateNameW)+"├") + strings.Repeat("─", rightMargin)
		bot = strings.Repeat(" ", margin) + style.Render(boxBot) + strings.Repeat(" ", rightMargin)

	default:
		if info.vertAbove && info.vertBelow {
			mid = strings.Repeat("─", dashL) + "┼" + strings.Repeat("─", dashR)
		} else {
			mid = strings.Repeat("─", cellW)
		}
	}
	return
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderCircuitPanel renders the circuit diagram panel.
func (m Model) renderCircuitPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Circuit"))
	sb.WriteString("\n\n")

	cols := m.columns()
	availWidth := width - labelVisualW - 4
	maxCols := max(availWidth/cellW, 1)
	start := min(m.viewStart, max(len(cols)-1, 0))
	end := min(start+maxCols, len(cols))

	if start > 0 {
		fmt.Fprintf(&sb, "  ◀ showing columns %d–%d\n", start, end-1)
	}

	header := strings.Repeat(" ", labelVisualW)
	for k := start; k < end; k++ {
		header += dimStyle.Render(padCenter(fmt.Sprintf("%d", k), cellW))
	}
	sb.WriteString(header + "\n")

	for qubit := range m.numWires() {
		topLine := strings.Repeat(" ", labelVisualW)
		midLine := qubitLabelStyle.Render(fmt.Sprintf("%-5s", fmt.Sprintf("q[%d]", qubit))) + "──"
		botLine := strings.Repeat(" ", labelVisualW)
		if start == end {
			midLine += strings.Repeat("─", cellW)
		}
		for k := start; k < end; k++ {
			top, mid, bot := renderCell(cols[k][qubit])
			topLine += top
			midLine += mid
			botLine += bot
		}
		sb.WriteString(topLine + "\n")
		sb.WriteString(midLine + "\n")
		sb.WriteString(botLine + "\n")
	}

	fmt.Fprintf(&sb, "\n  %d qubits  seed %d  random results %s", m.numWires(), m.seed, biasName(m.bias))
	if m.statusMsg != "" {
		fmt.Fprintf(&sb, "  │  %s", activeGateStyle.Render(m.statusMsg))
	}

	return circuitStyle.Width(width).Height(height).Render(sb.String())
}

// renderEditorPanel renders the circuit text editor panel.
func (m Model) renderEditorPanel(width, height int) string {
	var sb strings.Builder

	title := "Circuit Text"
	if m.focus == focusEditor {
		title += " [ACTIVE]"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(m.editor.View())

	return editorStyle.Width(width).Height(height).Render(sb.String())
}

// renderStatePanel renders the simulated state: stabilizers, measurement
// record and, for small unitary circuits, Z-basis probabilities.
func (m Model) renderStatePanel(width, height int) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Stabilizers"))
	sb.WriteString("\n")

	if m.runErr != nil {
		sb.WriteString(errorStyle.Render(m.runErr.Error()))
		return stateStyle.Width(width).Height(height).Render(sb.String())
	}

	sb.WriteString(strings.Join(pauli.Strings(m.result.stabilizers), "  "))
	sb.WriteString("\n")
	if len(m.result.record) > 0 {
		fmt.Fprintf(&sb, "%s %s\n", activeGateStyle.Render("Record:"), formatRecord(m.result.record))
	}
	if len(m.result.probs) > 0 {
		parts := make([]string, len(m.result.probs))
		for q, p := range m.result.probs {
			parts[q] = fmt.Sprintf("q%d %s %.2f", q, probBar(p.Prob1, 8), p.Prob1)
		}
		sb.WriteString(activeGateStyle.Render("P(1): "))
		sb.WriteString(strings.Join(parts, "  "))
	}
	return stateStyle.Width(width).Height(height).Render(sb.String())
}

func probBar(p float64, width int) string {
	filled := min(max(int(math.Round(p*float64(width))), 0), width)
	return gateStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
}

// renderControlsPanel renders the bottom help/controls bar.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(activeGateStyle.Render("Navigate: "))
	sb.WriteString("←→/hl Scroll  +/- Qubits  Tab Edit text")
	sb.WriteString("    ")
	sb.WriteString(activeGateStyle.Render("a"))
	sb.WriteString(" Add gate\n")

	sb.WriteString(activeGateStyle.Render("Actions:  "))
	sb.WriteString("r Reseed  b Random results  ^R Clear  ^S Save  q/^C Quit")

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}

// ──────────────────────────── Overlay helpers ────────────────────────────

// overlayAt composites the overlay string on top of the background at position (x, y).
func overlayAt(bg, overlay string, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	ovLines := strings.Split(overlay, "\n")

	for i, ovLine := range ovLines {
		bgIdx := y + i
		if bgIdx < 0 || bgIdx >= len(bgLines) {
			continue
		}
		bgLines[bgIdx] = spliceLineAt(bgLines[bgIdx], ovLine, x)
	}
	return strings.Join(bgLines, "\n")
}

// spliceLineAt replaces the visible columns of bgLine starting at x with
// overlay, keeping the escape sequences on either side intact.
func spliceLineAt(bgLine, overlay string, x int) string {
	prefix := ansi.Truncate(bgLine, x, "")
	if w := ansi.StringWidth(prefix); w < x {
		prefix += strings.Repeat(" ", x-w)
	}
	suffix := ansi.TruncateLeft(bgLine, x+ansi.StringWidth(overlay), "")
	return prefix + overlay + suffix
}
