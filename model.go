package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"qtermstab/gates"
)

// focus represents which panel/mode has keyboard input.
type focus int

const (
	focusCircuit focus = iota
	focusEditor
	focusMenu
	focusDetail
)

// Model represents the TUI application state. The editor text is the single
// source of truth; everything else is derived from it by resimulate.
type Model struct {
	editor    textarea.Model
	focus     focus
	width     int
	height    int
	lastText  string
	statusMsg string // transient status message (e.g. save confirmation)
	viewStart int    // first operation column currently visible

	numQubits int
	seed      uint64
	bias      int
	savePath  string

	result runResult
	runErr error

	// Menu state
	menu     []menuCategory
	menuCat  int
	menuItem int
}

func newModel(cfg Config) Model {
	ta := textarea.New()
	ta.Placeholder = "Type a circuit, e.g. H 0"
	ta.SetWidth(40)
	ta.SetHeight(20)
	ta.ShowLineNumbers = true
	ta.KeyMap.InsertNewline.SetEnabled(true)

	m := Model{
		editor:    ta,
		focus:     focusCircuit,
		numQubits: cfg.Qubits,
		seed:      cfg.Seed,
		savePath:  cfg.SavePath,
		menu:      buildMenu(gates.Default),
	}
	m.resimulate()
	return m
}

// resimulate reruns the editor's circuit from scratch.
func (m *Model) resimulate() {
	text := m.editor.Value()
	m.lastText = text
	m.result, m.runErr = runCircuit(text, m.numQubits, m.seed, m.bias)
}

func (m *Model) syncFromEditor() {
	if m.editor.Value() != m.lastText {
		m.resimulate()
	}
}

// insertLine appends a line to the circuit text.
func (m *Model) insertLine(line string) {
	text := m.editor.Value()
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	m.editor.SetValue(text + line + "\n")
	m.resimulate()
	if m.runErr == nil {
		m.statusMsg = "Added " + line
	}
}

func (m *Model) selectedItem() menuItem {
	return m.menu[m.menuCat].items[m.menuItem]
}

// ──────────────────────────── Init / Update ────────────────────────────

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		editorW := max(msg.Width/3-6, 20)
		m.editor.SetWidth(editorW)
		m.editor.SetHeight(max(msg.Height/2-6, 4))

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		if key == "ctrl+c" {
			return m, tea.Quit
		}

		switch m.focus {
		case focusCircuit:
			switch key {
			case "q":
				return m, tea.Quit
			case "tab":
				m.focus = focusEditor
				cmds = append(cmds, m.editor.Focus())
			case "a":
				m.focus = focusMenu
			case "ctrl+r":
				m.editor.Reset()
				m.viewStart = 0
				m.resimulate()
			case "ctrl+s":
				if err := os.WriteFile(m.savePath, []byte(m.editor.Value()), 0644); err != nil {
					m.statusMsg = fmt.Sprintf("Save error: %v", err)
				} else {
					m.statusMsg = "Saved " + m.savePath
				}
			case "r":
				m.seed++
				m.resimulate()
				m.statusMsg = fmt.Sprintf("Seed %d", m.seed)
			case "b":
				// Cycle random results: sampled, forced true, forced false.
				switch m.bias {
				case 0:
					m.bias = -1
				case -1:
					m.bias = 1
				default:
					m.bias = 0
				}
				m.resimulate()
				m.statusMsg = "Random results: " + biasName(m.bias)
			case "+", "=":
				m.numQubits++
				m.resimulate()
			case "-":
				if m.numQubits > 1 {
					m.numQubits--
					m.resimulate()
				}
			case "left", "h":
				if m.viewStart > 0 {
					m.viewStart--
				}
			case "right", "l":
				if m.viewStart < len(m.columns())-1 {
					m.viewStart++
				}
			}

		case focusMenu:
			switch key {
			case "esc":
				m.focus = focusCircuit
			case "up", "k":
				if m.menuItem > 0 {
					m.menuItem--
				}
			case "down", "j":
				if m.menuItem < len(m.menu[m.menuCat].items)-1 {
					m.menuItem++
				}
			case "left", "h":
				if m.menuCat > 0 {
					m.menuCat--
					m.menuItem = 0
				}
			case "right", "l":
				if m.menuCat < len(m.menu)-1 {
					m.menuCat++
					m.menuItem = 0
				}
			case "?", "d":
				m.focus = focusDetail
			case "enter":
				m.insertLine(m.selectedItem().line())
				m.focus = focusCircuit
			}

		case focusDetail:
			switch key {
			case "esc", "?", "d":
				m.focus = focusMenu
			case "enter":
				m.insertLine(m.selectedItem().line())
				m.focus = focusCircuit
			}

		case focusEditor:
			switch key {
			case "tab", "esc":
				m.focus = focusCircuit
				m.editor.Blur()
			default:
				var cmd tea.Cmd
				m.editor, cmd = m.editor.Update(msg)
				cmds = append(cmds, cmd)
				m.syncFromEditor()
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func biasName(bias int) string {
	switch {
	case bias < 0:
		return "forced true"
	case bias > 0:
		return "forced false"
	default:
		return "sampled"
	}
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	editorWidth := m.width / 3
	circuitWidth := m.width - editorWidth - 4
	controlsHeight := 6
	topHeight := max((m.height-controlsHeight)/2, 8)
	stateHeight := max(m.height-controlsHeight-topHeight-4, 4)

	circuitPanel := m.renderCircuitPanel(circuitWidth, topHeight)
	editorPanel := m.renderEditorPanel(editorWidth, topHeight)
	statePanel := m.renderStatePanel(m.width-4, stateHeight)
	controlsPanel := m.renderControlsPanel(m.width-4, controlsHeight-2)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, circuitPanel, editorPanel)
	frame := lipgloss.JoinVertical(lipgloss.Left, topRow, statePanel, controlsPanel)

	switch m.focus {
	case focusMenu:
		frame = overlayAt(frame, m.renderMenu(), 2, 2)
	case focusDetail:
		frame = overlayAt(frame, m.renderDetail(), 2, 2)
	}
	return frame
}
