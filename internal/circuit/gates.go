package circuit

// standardNames is the gate vocabulary with known include-file semantics,
// plus the always-available universal gate U.
var standardNames = map[string]struct{}{
	"p": {}, "x": {}, "y": {}, "z": {}, "h": {}, "s": {}, "sdg": {}, "t": {},
	"tdg": {}, "sx": {}, "rx": {}, "ry": {}, "rz": {}, "cx": {}, "cy": {},
	"cz": {}, "cp": {}, "crx": {}, "cry": {}, "crz": {}, "ch": {}, "swap": {},
	"ccx": {}, "cswap": {}, "cu": {}, "id": {}, "u1": {}, "u2": {}, "u3": {},
	"U": {},
}

// StandardGate creates an instance of a standard-vocabulary gate by name.
// The second result is false when the name is not part of the vocabulary.
func StandardGate(name string, params ...Param) (*Operation, bool) {
	if _, ok := standardNames[name]; !ok {
		return nil, false
	}
	return std(name, params...), true
}

// std creates one instance of a standard-vocabulary gate. Standard gates
// never receive definition bodies; their semantics live in the include files.
func std(name string, params ...Param) *Operation {
	return &Operation{Name: name, Kind: OpGate, Params: params, standard: true}
}

// UGate creates the universal one-qubit gate U(theta, phi, lambda).
func UGate(theta, phi, lambda Param) *Operation {
	return std("U", theta, phi, lambda)
}

// MeasureOp creates a single measurement directive.
func MeasureOp() *Operation {
	return &Operation{Name: "measure", Kind: OpMeasure, standard: true}
}

// BarrierOp creates a barrier directive.
func BarrierOp() *Operation {
	return &Operation{Name: "barrier", Kind: OpBarrier, standard: true}
}

// One-qubit standard gates.

func (c *Circuit) H(q Qubit) *Instruction   { return c.Append(std("h"), []Qubit{q}, nil) }
func (c *Circuit) X(q Qubit) *Instruction   { return c.Append(std("x"), []Qubit{q}, nil) }
func (c *Circuit) Y(q Qubit) *Instruction   { return c.Append(std("y"), []Qubit{q}, nil) }
func (c *Circuit) Z(q Qubit) *Instruction   { return c.Append(std("z"), []Qubit{q}, nil) }
func (c *Circuit) S(q Qubit) *Instruction   { return c.Append(std("s"), []Qubit{q}, nil) }
func (c *Circuit) Sdg(q Qubit) *Instruction { return c.Append(std("sdg"), []Qubit{q}, nil) }
func (c *Circuit) T(q Qubit) *Instruction   { return c.Append(std("t"), []Qubit{q}, nil) }
func (c *Circuit) Tdg(q Qubit) *Instruction { return c.Append(std("tdg"), []Qubit{q}, nil) }
func (c *Circuit) SX(q Qubit) *Instruction  { return c.Append(std("sx"), []Qubit{q}, nil) }
func (c *Circuit) ID(q Qubit) *Instruction  { return c.Append(std("id"), []Qubit{q}, nil) }

// Parameterized one-qubit gates.

func (c *Circuit) P(theta Param, q Qubit) *Instruction {
	return c.Append(std("p", theta), []Qubit{q}, nil)
}

func (c *Circuit) RX(theta Param, q Qubit) *Instruction {
	return c.Append(std("rx", theta), []Qubit{q}, nil)
}

func (c *Circuit) RY(theta Param, q Qubit) *Instruction {
	return c.Append(std("ry", theta), []Qubit{q}, nil)
}

func (c *Circuit) RZ(theta Param, q Qubit) *Instruction {
	return c.Append(std("rz", theta), []Qubit{q}, nil)
}

// U applies the universal one-qubit gate.
func (c *Circuit) U(theta, phi, lambda Param, q Qubit) *Instruction {
	return c.Append(UGate(theta, phi, lambda), []Qubit{q}, nil)
}

// Two-qubit standard gates.

func (c *Circuit) CX(ctl, tgt Qubit) *Instruction {
	return c.Append(std("cx"), []Qubit{ctl, tgt}, nil)
}

func (c *Circuit) CY(ctl, tgt Qubit) *Instruction {
	return c.Append(std("cy"), []Qubit{ctl, tgt}, nil)
}

func (c *Circuit) CZ(ctl, tgt Qubit) *Instruction {
	return c.Append(std("cz"), []Qubit{ctl, tgt}, nil)
}

func (c *Circuit) CH(ctl, tgt Qubit) *Instruction {
	return c.Append(std("ch"), []Qubit{ctl, tgt}, nil)
}

func (c *Circuit) Swap(a, b Qubit) *Instruction {
	return c.Append(std("swap"), []Qubit{a, b}, nil)
}

func (c *Circuit) CP(theta Param, ctl, tgt Qubit) *Instruction {
	return c.Append(std("cp", theta), []Qubit{ctl, tgt}, nil)
}

func (c *Circuit) CRX(theta Param, ctl, tgt Qubit) *Instruction {
	return c.Append(std("crx", theta), []Qubit{ctl, tgt}, nil)
}

func (c *Circuit) CRY(theta Param, ctl, tgt Qubit) *Instruction {
	return c.Append(std("cry", theta), []Qubit{ctl, tgt}, nil)
}

func (c *Circuit) CRZ(theta Param, ctl, tgt Qubit) *Instruction {
	return c.Append(std("crz", theta), []Qubit{ctl, tgt}, nil)
}

// Three-qubit standard gates.

func (c *Circuit) CCX(a, b, tgt Qubit) *Instruction {
	return c.Append(std("ccx"), []Qubit{a, b, tgt}, nil)
}

func (c *Circuit) CSwap(ctl, a, b Qubit) *Instruction {
	return c.Append(std("cswap"), []Qubit{ctl, a, b}, nil)
}

// Directives.

// Barrier fences the given qubits, order preserved.
func (c *Circuit) Barrier(qubits ...Qubit) *Instruction {
	return c.Append(BarrierOp(), qubits, nil)
}

// Measure reads one qubit into one classical bit.
func (c *Circuit) Measure(q Qubit, bit Clbit) *Instruction {
	return c.Append(MeasureOp(), []Qubit{q}, []Clbit{bit})
}
