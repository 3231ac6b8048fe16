package circuit

// OpKind enumerates operation kinds. The set is closed: every lowering site
// switches over it exhaustively.
type OpKind uint8

const (
	// OpGate is a reversible unitary operation.
	OpGate OpKind = iota
	// OpSubroutine is a general, not necessarily unitary, composite operation.
	OpSubroutine
	// OpBarrier is the scheduling barrier directive.
	OpBarrier
	// OpMeasure is the single-qubit measurement directive.
	OpMeasure
)

func (k OpKind) String() string {
	switch k {
	case OpGate:
		return "gate"
	case OpSubroutine:
		return "subroutine"
	case OpBarrier:
		return "barrier"
	case OpMeasure:
		return "measure"
	}
	return "unknown"
}

// Operation is the shared payload of one or more instructions: a name, a
// parameter list and an optional definition body. Two instructions applying
// the same Operation value share one identity.
type Operation struct {
	Name   string
	Kind   OpKind
	Params []Param
	// Def is the operation's body, owned exclusively by this operation.
	// Nil for standard gates, directives and opaque operations.
	Def *Definition

	standard bool
}

// Standard reports whether the operation belongs to the standard gate
// vocabulary shipped with the include files.
func (o *Operation) Standard() bool { return o.standard }

// Universal reports whether the operation is the universal one-qubit gate U.
func (o *Operation) Universal() bool { return o.standard && o.Name == "U" }

// NewOpaque creates a gate operation with no definition body. Exporters
// declare it as an opaque calibration.
func NewOpaque(name string, params ...Param) *Operation {
	return &Operation{Name: name, Kind: OpGate, Params: params}
}

// Definition is the body of a composite operation: formal qubit arguments
// grouped by register, formal parameter names and an ordered instruction
// list. It is an immutable snapshot of the circuit it was captured from.
type Definition struct {
	QRegs  []*QuantumRegister
	Params []string
	Body   []*Instruction
}
