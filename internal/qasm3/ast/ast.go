// Package ast holds the OpenQASM3 output tree. Nodes are immutable once
// built and render their own canonical text; serialization is a structural
// fold with no reordering.
package ast

// Program is the root node: a header followed by global statements.
type Program struct {
	Header     Header
	Statements []Stmt
}

// Header carries the version statement and the include directives, in
// caller order.
type Header struct {
	Version  string
	Includes []string
}

// StmtKind enumerates statement variants. The set is closed; the serializer
// switches over it exhaustively.
type StmtKind uint8

const (
	// StmtGateCall applies a named gate to quantum targets.
	StmtGateCall StmtKind = iota
	// StmtSubroutineCall calls a subroutine with the gate-call convention.
	StmtSubroutineCall
	// StmtBarrier fences a list of quantum targets.
	StmtBarrier
	// StmtMeasureAssign assigns one measurement result to a classical target.
	StmtMeasureAssign
	// StmtBranch is a single-branch equality conditional.
	StmtBranch
	// StmtBitDecl declares a classical register.
	StmtBitDecl
	// StmtQubitDecl declares a quantum register.
	StmtQubitDecl
	// StmtInputDecl declares an unbound parameter as a program input.
	StmtInputDecl
	// StmtGateDef defines a composite gate.
	StmtGateDef
	// StmtSubroutineDef defines a subroutine.
	StmtSubroutineDef
	// StmtCalDef declares an opaque calibration.
	StmtCalDef
)

// Stmt is one global or block statement. Exactly the payload matching Kind
// is populated.
type Stmt struct {
	Kind StmtKind

	Call    CallStmt
	Barrier BarrierStmt
	Measure MeasureStmt
	Branch  *BranchStmt
	Decl    DeclStmt
	GateDef *GateDefStmt
	SubDef  *SubroutineDefStmt
	CalDef  CalDefStmt
}

// CallStmt is a gate or subroutine call: name, rendered parameters and
// quantum targets, all in caller order.
type CallStmt struct {
	Name    string
	Params  []Expr
	Targets []Expr
}

// BarrierStmt fences its targets in order.
type BarrierStmt struct {
	Targets []Expr
}

// MeasureStmt is `Target = measure Source;`.
type MeasureStmt struct {
	Target Expr
	Source Expr
}

// BranchStmt is `if (Left == Right){ Body }`. Only equality, only a true
// branch.
type BranchStmt struct {
	Left  Expr
	Right Expr
	Body  []Stmt
}

// DeclStmt declares a register (`bit[Size] Name;`, `qubit[Size] Name;`) or
// a program input (`input float[32] Name;`, Size unused).
type DeclStmt struct {
	Name string
	Size int
}

// GateDefStmt is a composite gate definition with flat qubit identifiers.
type GateDefStmt struct {
	Name   string
	Params []string
	Qubits []string
	Body   []Stmt
}

// SubroutineDefStmt is a subroutine definition; the serializer closes the
// body with a return statement.
type SubroutineDefStmt struct {
	Name   string
	Qubits []string
	Body   []Stmt
}

// CalDefStmt declares an opaque operation with no body.
type CalDefStmt struct {
	Name string
}

// ExprKind enumerates expression variants.
type ExprKind uint8

const (
	// ExprLiteral is a pre-rendered literal (number or folded constant).
	ExprLiteral ExprKind = iota
	// ExprIdent is a bare identifier.
	ExprIdent
	// ExprIndex is an indexed identifier, `Text[Index]`.
	ExprIndex
)

// Expr is a leaf expression.
type Expr struct {
	Kind  ExprKind
	Text  string
	Index int
}

// Literal wraps pre-rendered literal text.
func Literal(text string) Expr { return Expr{Kind: ExprLiteral, Text: text} }

// Ident wraps a bare identifier.
func Ident(name string) Expr { return Expr{Kind: ExprIdent, Text: name} }

// Index wraps an indexed identifier.
func Index(name string, i int) Expr { return Expr{Kind: ExprIndex, Text: name, Index: i} }
