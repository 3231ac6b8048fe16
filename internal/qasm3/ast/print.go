package ast

import (
	"io"
	"strconv"
	"strings"
)

// Source renders the program as one string.
func (p *Program) Source() string {
	var sb strings.Builder
	pr := printer{w: &sb}
	pr.program(p)
	return sb.String()
}

// WriteTo streams the rendered program into w without materializing the
// whole text first.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	pr := printer{w: w}
	pr.program(p)
	return pr.n, pr.err
}

// printer folds the tree depth-first into ordered text lines. Children are
// concatenated verbatim; leaves render their own terminators.
type printer struct {
	w   io.Writer
	n   int64
	err error
}

func (pr *printer) str(s string) {
	if pr.err != nil {
		return
	}
	n, err := io.WriteString(pr.w, s)
	pr.n += int64(n)
	pr.err = err
}

func (pr *printer) program(p *Program) {
	pr.header(&p.Header)
	pr.stmts(p.Statements)
}

func (pr *printer) header(h *Header) {
	pr.str("OPENQASM " + h.Version + ";\n")
	for _, inc := range h.Includes {
		pr.str("include " + inc + ";\n")
	}
}

func (pr *printer) stmts(list []Stmt) {
	for i := range list {
		pr.stmt(&list[i])
	}
}

func (pr *printer) stmt(s *Stmt) {
	switch s.Kind {
	case StmtGateCall, StmtSubroutineCall:
		pr.call(&s.Call)
	case StmtBarrier:
		pr.str("barrier " + pr.exprList(s.Barrier.Targets) + ";\n")
	case StmtMeasureAssign:
		pr.str(s.Measure.Target.Source() + " = measure " + s.Measure.Source.Source() + ";\n")
	case StmtBranch:
		pr.str("if (" + s.Branch.Left.Source() + " == " + s.Branch.Right.Source() + "){\n")
		pr.stmts(s.Branch.Body)
		pr.str("}\n")
	case StmtBitDecl:
		pr.str("bit[" + strconv.Itoa(s.Decl.Size) + "] " + s.Decl.Name + ";\n")
	case StmtQubitDecl:
		pr.str("qubit[" + strconv.Itoa(s.Decl.Size) + "] " + s.Decl.Name + ";\n")
	case StmtInputDecl:
		pr.str("input float[32] " + s.Decl.Name + ";\n")
	case StmtGateDef:
		pr.gateDef(s.GateDef)
	case StmtSubroutineDef:
		pr.subroutineDef(s.SubDef)
	case StmtCalDef:
		pr.str("defcal " + s.CalDef.Name + ";\n")
	}
}

func (pr *printer) call(c *CallStmt) {
	if len(c.Params) > 0 {
		pr.str(c.Name + "(" + pr.exprList(c.Params) + ") " + pr.exprList(c.Targets) + ";\n")
		return
	}
	pr.str(c.Name + " " + pr.exprList(c.Targets) + ";\n")
}

func (pr *printer) gateDef(d *GateDefStmt) {
	sig := "gate " + d.Name
	if len(d.Params) > 0 {
		sig += "(" + strings.Join(d.Params, ", ") + ")"
	}
	pr.str(sig + " " + strings.Join(d.Qubits, ", ") + " {\n")
	pr.stmts(d.Body)
	pr.str("}\n")
}

func (pr *printer) subroutineDef(d *SubroutineDefStmt) {
	args := make([]string, len(d.Qubits))
	for i, q := range d.Qubits {
		args[i] = "qubit " + q
	}
	pr.str("def " + d.Name + " " + strings.Join(args, ", ") + " {\n")
	pr.stmts(d.Body)
	pr.str("return;\n}\n")
}

func (pr *printer) exprList(list []Expr) string {
	parts := make([]string, len(list))
	for i := range list {
		parts[i] = list[i].Source()
	}
	return strings.Join(parts, ", ")
}

// Source renders the expression's canonical text.
func (e Expr) Source() string {
	switch e.Kind {
	case ExprIndex:
		return e.Text + "[" + strconv.Itoa(e.Index) + "]"
	default:
		return e.Text
	}
}
