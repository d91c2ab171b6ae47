package main

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"qtermstab/gates"
	"qtermstab/pauli"
)

func testModel(t *testing.T, text string) Model {
	t.Helper()
	m := newModel(DefaultConfig())
	if text != "" {
		m.editor.SetValue(text)
		m.resimulate()
	}
	if m.runErr != nil {
		t.Fatalf("runCircuit(%q) error: %v", text, m.runErr)
	}
	return m
}

func press(m Model, key tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(key)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func stabilizers(m Model) string {
	return strings.Join(pauli.Strings(m.result.stabilizers), " ")
}

func TestNewModelStartsInZeroState(t *testing.T) {
	m := testModel(t, "")
	if got := stabilizers(m); got != "+Z_ +_Z" {
		t.Fatalf("initial stabilizers = %q, want %q", got, "+Z_ +_Z")
	}
	if m.focus != focusCircuit {
		t.Fatalf("initial focus = %v, want circuit", m.focus)
	}
}

func TestBellCircuit(t *testing.T) {
	m := testModel(t, "H 0\nCX 0 1")
	if got := stabilizers(m); got != "+XX +ZZ" {
		t.Fatalf("stabilizers = %q, want %q", got, "+XX +ZZ")
	}
	if len(m.result.probs) != 2 {
		t.Fatalf("expected probabilities for 2 qubits, got %d", len(m.result.probs))
	}
	for q, p := range m.result.probs {
		if math.Abs(p.Prob1-0.5) > 1e-9 {
			t.Errorf("q%d P(1) = %v, want 0.5", q, p.Prob1)
		}
	}
}

func TestParseErrorIsReported(t *testing.T) {
	m := newModel(DefaultConfig())
	m.editor.SetValue("NOT_A_GATE 0")
	m.resimulate()
	if m.runErr == nil {
		t.Fatal("expected an error for an unknown gate")
	}
	if !strings.Contains(m.renderStatePanel(80, 10), "NOT_A_GATE") {
		t.Error("state panel does not show the error")
	}
}

func TestMenuInsertsGate(t *testing.T) {
	m := testModel(t, "")
	m, _ = press(m, runes("a"))
	if m.focus != focusMenu {
		t.Fatalf("focus = %v after 'a', want menu", m.focus)
	}

	found := false
	for c, cat := range m.menu {
		for i, item := range cat.items {
			if item.name == "H" {
				m.menuCat, m.menuItem = c, i
				found = true
			}
		}
	}
	if !found {
		t.Fatal("H is not in the menu")
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.focus != focusCircuit {
		t.Fatalf("focus = %v after insert, want circuit", m.focus)
	}
	if got := m.editor.Value(); got != "H 0\n" {
		t.Fatalf("editor = %q, want %q", got, "H 0\n")
	}
	if got := stabilizers(m); got != "+X_ +_Z" {
		t.Fatalf("stabilizers = %q, want %q", got, "+X_ +_Z")
	}
	if m.statusMsg != "Added H 0" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestEveryMenuItemInserts(t *testing.T) {
	for _, cat := range buildMenu(gates.Default) {
		for _, item := range cat.items {
			m := testModel(t, "")
			m.insertLine(item.line())
			if m.runErr != nil {
				t.Errorf("%s (%q): %v", item.name, item.line(), m.runErr)
			}
		}
	}
}

func TestBiasKeyForcesResults(t *testing.T) {
	m := testModel(t, "H 0\nM 0")
	m, _ = press(m, runes("b"))
	if m.bias != -1 {
		t.Fatalf("bias = %d after one press, want -1", m.bias)
	}
	if got := formatRecord(m.result.record); got != "1" {
		t.Fatalf("record = %q, want %q", got, "1")
	}

	m, _ = press(m, runes("b"))
	if got := formatRecord(m.result.record); got != "0" {
		t.Fatalf("record = %q with bias %d, want %q", got, m.bias, "0")
	}

	m, _ = press(m, runes("b"))
	if m.bias != 0 {
		t.Fatalf("bias = %d after three presses, want 0", m.bias)
	}
}

func TestQubitKeys(t *testing.T) {
	m := testModel(t, "")
	m, _ = press(m, runes("+"))
	if got := stabilizers(m); got != "+Z__ +_Z_ +__Z" {
		t.Fatalf("stabilizers = %q after '+'", got)
	}
	m, _ = press(m, runes("-"))
	m, _ = press(m, runes("-"))
	m, _ = press(m, runes("-"))
	if m.numQubits != 1 {
		t.Fatalf("numQubits = %d, want it to stop at 1", m.numQubits)
	}
}

func TestTabTogglesEditor(t *testing.T) {
	m := testModel(t, "")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusEditor {
		t.Fatalf("focus = %v after tab, want editor", m.focus)
	}
	m, _ = press(m, runes("q"))
	if m.focus != focusEditor {
		t.Fatal("'q' in the editor should be typed, not quit")
	}
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusCircuit {
		t.Fatalf("focus = %v after second tab, want circuit", m.focus)
	}
}

func TestQuit(t *testing.T) {
	m := testModel(t, "")
	_, cmd := press(m, runes("q"))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("'q' did not quit")
	}
}

func TestViewRenders(t *testing.T) {
	m := testModel(t, "H 0\nCX 0 1\nM 0 1")
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View before resize = %q", got)
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	m = next.(Model)
	view := m.View()
	for _, want := range []string{"Circuit Text", "q[0]", "q[1]", "Stabilizers", "Record:"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}

	m, _ = press(m, runes("a"))
	if !strings.Contains(m.View(), "Add Gate") {
		t.Error("menu overlay is not drawn")
	}
}

func TestColumnsPackIndependentGates(t *testing.T) {
	tests := []struct {
		text string
		cols int
	}{
		{"", 0},
		{"H 0\nH 1", 1},
		{"H 0\nH 1\nCX 0 1", 2},
		{"H 0\nTICK\nH 1", 3},
		{"CX 0 2\nH 1", 2},
		{"M 1\nH 0\nM 0", 2},
		{"MPP X0*Z1 Y0", 2},
		{"M 0\nCX rec[-1] 1", 2},
		{"M 0\nH 1\nCZ 1 rec[-1]", 2},
	}
	for _, tt := range tests {
		m := testModel(t, tt.text)
		if got := len(m.columns()); got != tt.cols {
			t.Errorf("%q: %d columns, want %d", tt.text, got, tt.cols)
		}
	}
}

func TestColumnsDrawControls(t *testing.T) {
	m := testModel(t, "CX 0 2")
	col := m.columns()[0]
	if col[0].label != "●" || col[2].label != "⊕" {
		t.Fatalf("CX glyphs = %q %q", col[0].label, col[2].label)
	}
	if !col[1].vertAbove || !col[1].vertBelow || col[1].kind != cellEmpty {
		t.Fatalf("middle wire = %+v, want a pass-through", col[1])
	}
	if col[0].vertAbove || !col[0].vertBelow || !col[2].vertAbove || col[2].vertBelow {
		t.Fatal("control and target are not linked")
	}
}

func TestColumnsDrawRecordControls(t *testing.T) {
	m := testModel(t, "X 0\nM 0\nCX rec[-1] 1")
	cols := m.columns()
	if len(cols) != 3 {
		t.Fatalf("%d columns, want 3", len(cols))
	}
	fb := cols[2]
	if fb[1].kind != cellBox || fb[1].label != "X·rec" || !fb[1].measure {
		t.Fatalf("feedback cell = %+v", fb[1])
	}
	if fb[0].kind != cellEmpty {
		t.Fatalf("measured wire = %+v, want it untouched", fb[0])
	}
	if got := stabilizers(m); got != "-Z_ -_Z" {
		t.Fatalf("stabilizers = %q, want %q", got, "-Z_ -_Z")
	}
}

func TestRenderCellWidth(t *testing.T) {
	cells := []cellInfo{
		{},
		{kind: cellBox, label: "H"},
		{kind: cellBox, label: "SQRT_XX_DAG", vertAbove: true, vertBelow: true, measure: true},
		{kind: cellGlyph, label: "⊕", vertAbove: true},
		{kind: cellBarrier},
		{vertAbove: true, vertBelow: true},
	}
	for _, c := range cells {
		top, mid, bot := renderCell(c)
		for _, line := range []string{top, mid, bot} {
			if w := ansi.StringWidth(line); w != cellW {
				t.Errorf("cell %+v: line %q has width %d, want %d", c, line, w, cellW)
			}
		}
	}
}

func TestGateDisplayName(t *testing.T) {
	tests := []struct{ name, want string }{
		{"H", "H"},
		{"S_DAG", "S†"},
		{"SQRT_XX", "√XX"},
		{"SQRT_ZZ_DAG", "√ZZ†"},
		{"C_XYZ", "C_XYZ"},
	}
	for _, tt := range tests {
		if got := gateDisplayName(tt.name); got != tt.want {
			t.Errorf("gateDisplayName(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestOverlayAt(t *testing.T) {
	bg := "abcdef\nghijkl\nmnopqr"
	got := overlayAt(bg, "XY\nZW", 2, 1)
	want := "abcdef\nghXYkl\nmnZWqr"
	if got != want {
		t.Fatalf("overlayAt = %q, want %q", got, want)
	}

	if got := spliceLineAt("ab", "XY", 4); got != "ab  XY" {
		t.Fatalf("splice past the end = %q", got)
	}
	styled := errorStyle.Render("abcdef")
	if w := ansi.StringWidth(spliceLineAt(styled, "XY", 1)); w != 6 {
		t.Fatalf("splice into styled text has width %d, want 6", w)
	}
}
