package circuit

// QuantumRegister is a named, ordered block of qubits.
type QuantumRegister struct {
	Name string
	Size int
}

// NewQuantumRegister creates a quantum register with size qubits.
func NewQuantumRegister(size int, name string) *QuantumRegister {
	return &QuantumRegister{Name: name, Size: size}
}

// Qubit returns the i-th qubit of the register.
func (r *QuantumRegister) Qubit(i int) Qubit {
	return Qubit{Register: r, Index: i}
}

// Qubits returns all qubits of the register in order.
func (r *QuantumRegister) Qubits() []Qubit {
	out := make([]Qubit, r.Size)
	for i := range out {
		out[i] = Qubit{Register: r, Index: i}
	}
	return out
}

// ClassicalRegister is a named, ordered block of classical bits.
type ClassicalRegister struct {
	Name string
	Size int
}

// NewClassicalRegister creates a classical register with size bits.
func NewClassicalRegister(size int, name string) *ClassicalRegister {
	return &ClassicalRegister{Name: name, Size: size}
}

// Clbit returns the i-th bit of the register.
func (r *ClassicalRegister) Clbit(i int) Clbit {
	return Clbit{Register: r, Index: i}
}

// Qubit addresses a single qubit. A nil Register means the qubit is an
// anonymous physical qubit addressed by Index alone.
type Qubit struct {
	Register *QuantumRegister
	Index    int
}

// Clbit addresses a single classical bit, by register slot or, with a nil
// Register, by physical index.
type Clbit struct {
	Register *ClassicalRegister
	Index    int
}
