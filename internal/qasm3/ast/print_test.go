package ast

import (
	"strings"
	"testing"
)

func TestHeaderRendering(t *testing.T) {
	p := &Program{Header: Header{Version: "3", Includes: []string{"stdgates.inc", "extra.inc"}}}
	want := "OPENQASM 3;\ninclude stdgates.inc;\ninclude extra.inc;\n"
	if got := p.Source(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestStatementRendering(t *testing.T) {
	cases := []struct {
		name string
		stmt Stmt
		want string
	}{
		{
			"gate call with params",
			Stmt{Kind: StmtGateCall, Call: CallStmt{
				Name:    "rz",
				Params:  []Expr{Literal("pi/2")},
				Targets: []Expr{Index("q", 0)},
			}},
			"rz(pi/2) q[0];\n",
		},
		{
			"gate call without params",
			Stmt{Kind: StmtGateCall, Call: CallStmt{
				Name:    "cx",
				Targets: []Expr{Index("q", 0), Index("q", 1)},
			}},
			"cx q[0], q[1];\n",
		},
		{
			"barrier",
			Stmt{Kind: StmtBarrier, Barrier: BarrierStmt{
				Targets: []Expr{Index("q", 0), Index("q", 1)},
			}},
			"barrier q[0], q[1];\n",
		},
		{
			"measurement assignment",
			Stmt{Kind: StmtMeasureAssign, Measure: MeasureStmt{
				Target: Index("c", 0),
				Source: Index("q", 0),
			}},
			"c[0] = measure q[0];\n",
		},
		{
			"bit declaration",
			Stmt{Kind: StmtBitDecl, Decl: DeclStmt{Name: "cr", Size: 3}},
			"bit[3] cr;\n",
		},
		{
			"qubit declaration",
			Stmt{Kind: StmtQubitDecl, Decl: DeclStmt{Name: "qr", Size: 2}},
			"qubit[2] qr;\n",
		},
		{
			"input declaration",
			Stmt{Kind: StmtInputDecl, Decl: DeclStmt{Name: "θ"}},
			"input float[32] θ;\n",
		},
		{
			"calibration declaration",
			Stmt{Kind: StmtCalDef, CalDef: CalDefStmt{Name: "pulse"}},
			"defcal pulse;\n",
		},
		{
			"branch",
			Stmt{Kind: StmtBranch, Branch: &BranchStmt{
				Left:  Ident("cr"),
				Right: Literal("2"),
				Body: []Stmt{{Kind: StmtGateCall, Call: CallStmt{
					Name:    "x",
					Targets: []Expr{Index("q", 0)},
				}}},
			}},
			"if (cr == 2){\nx q[0];\n}\n",
		},
		{
			"gate definition",
			Stmt{Kind: StmtGateDef, GateDef: &GateDefStmt{
				Name:   "ng",
				Params: []string{"a", "b"},
				Qubits: []string{"q_0", "q_1"},
				Body: []Stmt{{Kind: StmtGateCall, Call: CallStmt{
					Name:    "h",
					Targets: []Expr{Ident("q_0")},
				}}},
			}},
			"gate ng(a, b) q_0, q_1 {\nh q_0;\n}\n",
		},
		{
			"subroutine definition",
			Stmt{Kind: StmtSubroutineDef, SubDef: &SubroutineDefStmt{
				Name:   "sub",
				Qubits: []string{"q_0"},
				Body: []Stmt{{Kind: StmtGateCall, Call: CallStmt{
					Name:    "h",
					Targets: []Expr{Ident("q_0")},
				}}},
			}},
			"def sub qubit q_0 {\nh q_0;\nreturn;\n}\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Program{Header: Header{Version: "3"}, Statements: []Stmt{tc.stmt}}
			got := strings.TrimPrefix(p.Source(), "OPENQASM 3;\n")
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWriteToMatchesSource(t *testing.T) {
	p := &Program{
		Header: Header{Version: "3", Includes: []string{"stdgates.inc"}},
		Statements: []Stmt{
			{Kind: StmtQubitDecl, Decl: DeclStmt{Name: "q", Size: 1}},
			{Kind: StmtGateCall, Call: CallStmt{Name: "h", Targets: []Expr{Index("q", 0)}}},
		},
	}
	var sb strings.Builder
	n, err := p.WriteTo(&sb)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if sb.String() != p.Source() {
		t.Fatalf("streamed text differs from Source")
	}
	if n != int64(len(p.Source())) {
		t.Fatalf("reported %d bytes, wrote %d", n, len(p.Source()))
	}
}
