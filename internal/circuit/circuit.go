package circuit

// Circuit is the in-memory circuit representation: ordered registers and an
// ordered instruction list. It is the read-only input of the exporter.
type Circuit struct {
	Name  string
	QRegs []*QuantumRegister
	CRegs []*ClassicalRegister
	Data  []*Instruction

	freeParams []string
	freeSeen   map[string]struct{}
}

// New creates an empty named circuit.
func New(name string) *Circuit {
	return &Circuit{Name: name, freeSeen: make(map[string]struct{})}
}

// AddQuantumRegister appends a quantum register. Registration order is the
// declaration order in the exported program.
func (c *Circuit) AddQuantumRegister(r *QuantumRegister) {
	c.QRegs = append(c.QRegs, r)
}

// AddClassicalRegister appends a classical register.
func (c *Circuit) AddClassicalRegister(r *ClassicalRegister) {
	c.CRegs = append(c.CRegs, r)
}

// Append applies op to the given targets and returns the new instruction.
func (c *Circuit) Append(op *Operation, qubits []Qubit, clbits []Clbit) *Instruction {
	in := &Instruction{Op: op, Qubits: qubits, Clbits: clbits}
	c.noteFreeParams(op)
	c.Data = append(c.Data, in)
	return in
}

// FreeParams returns the unbound symbolic parameters referenced by the
// circuit, in first-use order.
func (c *Circuit) FreeParams() []string {
	return c.freeParams
}

func (c *Circuit) noteFreeParams(op *Operation) {
	for _, p := range op.Params {
		if p.Kind != ParamSymbol {
			continue
		}
		if c.freeSeen == nil {
			c.freeSeen = make(map[string]struct{})
		}
		if _, ok := c.freeSeen[p.Symbol]; ok {
			continue
		}
		c.freeSeen[p.Symbol] = struct{}{}
		c.freeParams = append(c.freeParams, p.Symbol)
	}
}

// ToGate captures the circuit as a reusable unitary gate operation. The
// definition body is a snapshot: later edits to the circuit do not leak into
// instructions already built from it.
func (c *Circuit) ToGate() *Operation {
	return c.capture(OpGate)
}

// ToSubroutine captures the circuit as a subroutine operation.
func (c *Circuit) ToSubroutine() *Operation {
	return c.capture(OpSubroutine)
}

func (c *Circuit) capture(kind OpKind) *Operation {
	body := make([]*Instruction, len(c.Data))
	for i, in := range c.Data {
		cp := *in
		body[i] = &cp
	}
	qregs := make([]*QuantumRegister, len(c.QRegs))
	copy(qregs, c.QRegs)
	params := make([]string, len(c.freeParams))
	copy(params, c.freeParams)
	return &Operation{
		Name: c.Name,
		Kind: kind,
		Def: &Definition{
			QRegs:  qregs,
			Params: params,
			Body:   body,
		},
	}
}
