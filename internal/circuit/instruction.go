package circuit

// Instruction applies an operation to ordered quantum and classical targets,
// optionally guarded by a classical condition.
type Instruction struct {
	Op     *Operation
	Qubits []Qubit
	Clbits []Clbit
	Cond   *Condition
}

// Condition guards an instruction on a classical value: the target is either
// a whole register or a single bit, compared for equality against Value.
type Condition struct {
	Register *ClassicalRegister
	Bit      *Clbit
	Value    int
}

// CIf attaches an equality condition on a whole classical register and
// returns the instruction for chaining.
func (in *Instruction) CIf(reg *ClassicalRegister, value int) *Instruction {
	in.Cond = &Condition{Register: reg, Value: value}
	return in
}

// CIfBit attaches an equality condition on a single classical bit.
func (in *Instruction) CIfBit(bit Clbit, value int) *Instruction {
	in.Cond = &Condition{Bit: &bit, Value: value}
	return in
}

// WithoutCondition returns a copy of the instruction with the condition
// cleared. The operation payload is shared, not cloned.
func (in *Instruction) WithoutCondition() *Instruction {
	out := *in
	out.Cond = nil
	return &out
}
