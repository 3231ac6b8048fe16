package qasm3

import "quasm/internal/circuit"

// stdGates is the gate vocabulary contributed by stdgates.inc. Circuits
// built entirely from these trigger no definition blocks.
var stdGates = []string{
	"p", "x", "y", "z", "h", "s", "sdg", "t", "tdg", "sx",
	"rx", "ry", "rz", "cx", "cy", "cz", "cp", "crx", "cry", "crz",
	"ch", "swap", "ccx", "cswap", "cu", "id", "u1", "u2", "u3",
}

var includeGates = map[string][]string{
	"stdgates.inc": stdGates,
}

// namespace is the per-export registry resolving operation identity to a
// unique output name. Forward (name -> identity) and backward (identity ->
// name) maps are kept in sync; once assigned, a name never changes during
// the export.
type namespace struct {
	seeded map[string]struct{}
	names  map[string]uint32
	byOp   map[uint32]string
}

// newNamespace seeds the registry with the vocabulary of each requested
// include file.
func newNamespace(includes []string) *namespace {
	ns := &namespace{
		seeded: make(map[string]struct{}),
		names:  make(map[string]uint32),
		byOp:   make(map[uint32]string),
	}
	for _, inc := range includes {
		for _, name := range includeGates[inc] {
			ns.seeded[name] = struct{}{}
			ns.names[name] = 0
		}
	}
	return ns
}

// builtin reports whether op is a standard gate covered by the seeded
// vocabulary. Only genuine standard gates match by name; a user operation
// that happens to share a builtin's name is not a builtin.
func (ns *namespace) builtin(op *circuit.Operation) bool {
	if !op.Standard() {
		return false
	}
	_, ok := ns.seeded[op.Name]
	return ok
}

// exists reports whether op needs no registration: the universal gate U, a
// seeded standard gate, or an operation already bound under identity id.
func (ns *namespace) exists(op *circuit.Operation, id uint32) bool {
	if op.Universal() || ns.builtin(op) {
		return true
	}
	_, ok := ns.byOp[id]
	return ok
}

// register binds op under its own name, or under a suffixed name when the
// plain name is already taken by a different operation. A suffixed name can
// itself be taken, when a user operation was literally named that way, so
// the suffix index keeps advancing until a free name is found. Returns the
// chosen name.
func (ns *namespace) register(op *circuit.Operation, id uint32) string {
	name := op.Name
	for next := id; ; next++ {
		if _, taken := ns.names[name]; !taken {
			break
		}
		name = suffixed(op.Name, next)
	}
	ns.names[name] = id
	ns.byOp[id] = name
	return name
}

// nameOf resolves the output name for an operation that is either builtin
// or previously registered.
func (ns *namespace) nameOf(op *circuit.Operation, id uint32) (string, bool) {
	if op.Universal() {
		return "U", true
	}
	if ns.builtin(op) {
		return op.Name, true
	}
	name, ok := ns.byOp[id]
	return name, ok
}
