// Package ui renders an interactive terminal view of a circuit: the gate
// timeline as a grid, one wire per qubit, with the exported OpenQASM3 text
// in a scrollable pane below.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"quasm/internal/circuit"
)

const cellWidth = 9

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	wireStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	gateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true).Underline(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	paneStyle     = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("8"))
)

type wire struct {
	label string
	qubit circuit.Qubit
}

// ViewerModel is a Bubble Tea model browsing a circuit and its exported
// program side by side.
type ViewerModel struct {
	title   string
	circ    *circuit.Circuit
	wires   []wire
	cursor  int
	width   int
	height  int
	preview viewport.Model
	ready   bool
}

// NewViewerModel builds the viewer for a circuit and its rendered program.
func NewViewerModel(title string, circ *circuit.Circuit, program string) *ViewerModel {
	var wires []wire
	for _, reg := range circ.QRegs {
		for i := 0; i < reg.Size; i++ {
			wires = append(wires, wire{
				label: fmt.Sprintf("%s[%d]", reg.Name, i),
				qubit: reg.Qubit(i),
			})
		}
	}
	vp := viewport.New(80, 12)
	vp.SetContent(program)
	return &ViewerModel{title: title, circ: circ, wires: wires, preview: vp}
}

func (m *ViewerModel) Init() tea.Cmd { return nil }

func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "right", "l":
			if m.cursor < len(m.circ.Data)-1 {
				m.cursor++
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = max(20, msg.Width-2)
		m.preview.Height = max(4, msg.Height-len(m.wires)-6)
		m.ready = true
		return m, nil
	}
	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m *ViewerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.grid())
	b.WriteString("\n")
	b.WriteString(paneStyle.Render(m.preview.View()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	return b.String()
}

// grid draws one row per wire, one column per instruction. The selected
// column is highlighted.
func (m *ViewerModel) grid() string {
	if len(m.wires) == 0 {
		return wireStyle.Render("(no quantum registers)")
	}
	labelWidth := 0
	for _, w := range m.wires {
		if n := runewidth.StringWidth(w.label); n > labelWidth {
			labelWidth = n
		}
	}
	var rows []string
	for _, w := range m.wires {
		var row strings.Builder
		row.WriteString(wireStyle.Render(runewidth.FillRight(w.label, labelWidth)))
		row.WriteString(" ")
		for col, in := range m.circ.Data {
			row.WriteString(m.cell(in, w.qubit, col == m.cursor))
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

func (m *ViewerModel) cell(in *circuit.Instruction, q circuit.Qubit, selected bool) string {
	symbol := "─"
	role := wireRole(in, q)
	switch role {
	case roleNone:
		// wire passes through untouched
	case roleControl:
		symbol = "●"
	case roleBarrier:
		symbol = "░"
	case roleMeasure:
		symbol = "M"
	default:
		symbol = in.Op.Name
	}
	text := padCell(symbol, cellWidth)
	switch {
	case selected && role != roleNone:
		return selectedStyle.Render(text)
	case role != roleNone:
		return gateStyle.Render(text)
	default:
		return wireStyle.Render(text)
	}
}

type cellRole uint8

const (
	roleNone cellRole = iota
	roleTarget
	roleControl
	roleBarrier
	roleMeasure
)

// wireRole decides how an instruction touches one wire: the last operand of
// a multi-qubit gate is the target, earlier operands draw as controls.
func wireRole(in *circuit.Instruction, q circuit.Qubit) cellRole {
	at := -1
	for i, operand := range in.Qubits {
		if operand == q {
			at = i
			break
		}
	}
	if at < 0 {
		return roleNone
	}
	switch in.Op.Kind {
	case circuit.OpBarrier:
		return roleBarrier
	case circuit.OpMeasure:
		return roleMeasure
	default:
		if len(in.Qubits) > 1 && at < len(in.Qubits)-1 {
			return roleControl
		}
		return roleTarget
	}
}

func (m *ViewerModel) status() string {
	if len(m.circ.Data) == 0 {
		return "empty circuit · q quit"
	}
	in := m.circ.Data[m.cursor]
	desc := in.Op.Name
	if in.Cond != nil && in.Cond.Register != nil {
		desc = fmt.Sprintf("%s (if %s == %d)", desc, in.Cond.Register.Name, in.Cond.Value)
	}
	return fmt.Sprintf("op %d/%d: %s · ←/→ select · ↑/↓ scroll · q quit",
		m.cursor+1, len(m.circ.Data), desc)
}

// padCell centers text inside a fixed-width cell, filling the slack with
// wire segments.
func padCell(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return runewidth.Truncate(s, width, "")
	}
	left := (width - w) / 2
	right := width - w - left
	return strings.Repeat("─", left) + s + strings.Repeat("─", right)
}
