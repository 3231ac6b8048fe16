package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"quasm/internal/circuit"
)

func bell() *circuit.Circuit {
	q := circuit.NewQuantumRegister(2, "q")
	c := circuit.NewClassicalRegister(2, "c")
	qc := circuit.New("bell")
	qc.AddQuantumRegister(q)
	qc.AddClassicalRegister(c)
	qc.H(q.Qubit(0))
	qc.CX(q.Qubit(0), q.Qubit(1))
	qc.Measure(q.Qubit(0), c.Clbit(0))
	return qc
}

func TestWireRoles(t *testing.T) {
	qc := bell()
	q := qc.QRegs[0]

	cx := qc.Data[1]
	if got := wireRole(cx, q.Qubit(0)); got != roleControl {
		t.Fatalf("cx control role = %d", got)
	}
	if got := wireRole(cx, q.Qubit(1)); got != roleTarget {
		t.Fatalf("cx target role = %d", got)
	}
	meas := qc.Data[2]
	if got := wireRole(meas, q.Qubit(0)); got != roleMeasure {
		t.Fatalf("measure role = %d", got)
	}
	if got := wireRole(meas, q.Qubit(1)); got != roleNone {
		t.Fatalf("untouched wire role = %d", got)
	}
}

func TestPadCellWidth(t *testing.T) {
	for _, s := range []string{"h", "cx", "M", "verylonggatename", "●"} {
		if got := runewidth.StringWidth(padCell(s, cellWidth)); got != cellWidth {
			t.Fatalf("padCell(%q) width = %d, want %d", s, got, cellWidth)
		}
	}
}

func TestGridShowsEveryWire(t *testing.T) {
	m := NewViewerModel("bell", bell(), "OPENQASM 3;\n")
	grid := m.grid()
	for _, label := range []string{"q[0]", "q[1]"} {
		if !strings.Contains(grid, label) {
			t.Fatalf("grid missing wire %s:\n%s", label, grid)
		}
	}
	if len(strings.Split(grid, "\n")) != 2 {
		t.Fatalf("expected two wire rows:\n%s", grid)
	}
}
