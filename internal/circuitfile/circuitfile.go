// Package circuitfile reads circuit descriptions from disk. Two encodings
// carry the same schema: JSON for hand-written files and msgpack for
// compact binary interchange.
package circuitfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"quasm/internal/circuit"
)

// Format selects the on-disk encoding.
type Format uint8

const (
	// FormatJSON is the textual encoding.
	FormatJSON Format = iota
	// FormatMsgpack is the binary encoding.
	FormatMsgpack
)

// Spec is the on-disk circuit schema shared by both encodings.
type Spec struct {
	Name  string    `json:"name" msgpack:"name"`
	QRegs []RegSpec `json:"qregs" msgpack:"qregs"`
	CRegs []RegSpec `json:"cregs" msgpack:"cregs"`
	Ops   []OpSpec  `json:"ops" msgpack:"ops"`
}

// RegSpec declares one register.
type RegSpec struct {
	Name string `json:"name" msgpack:"name"`
	Size int    `json:"size" msgpack:"size"`
}

// OpSpec is one instruction. Gate names outside the standard vocabulary
// become opaque operations; "measure" and "barrier" are directives.
type OpSpec struct {
	Gate   string      `json:"gate" msgpack:"gate"`
	Qubits []BitRef    `json:"qubits" msgpack:"qubits"`
	Clbits []BitRef    `json:"clbits,omitempty" msgpack:"clbits,omitempty"`
	Params []ParamSpec `json:"params,omitempty" msgpack:"params,omitempty"`
	Cond   *CondSpec   `json:"cond,omitempty" msgpack:"cond,omitempty"`
}

// BitRef addresses a bit by register name and index. An empty register name
// addresses a physical index.
type BitRef struct {
	Register string `json:"reg" msgpack:"reg"`
	Index    int    `json:"index" msgpack:"index"`
}

// ParamSpec is one gate parameter: a bound value or a free symbol.
type ParamSpec struct {
	Value  *float64 `json:"value,omitempty" msgpack:"value,omitempty"`
	Symbol string   `json:"symbol,omitempty" msgpack:"symbol,omitempty"`
}

// CondSpec guards an instruction on a classical register value.
type CondSpec struct {
	Register string `json:"reg" msgpack:"reg"`
	Bit      *int   `json:"bit,omitempty" msgpack:"bit,omitempty"`
	Value    int    `json:"value" msgpack:"value"`
}

// Load reads and decodes a circuit file, picking the encoding from the file
// extension: .msgpack (or .qbin) is binary, everything else is JSON.
func Load(path string) (*circuit.Circuit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("circuitfile: %w", err)
	}
	return Decode(data, formatFor(path))
}

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".qbin":
		return FormatMsgpack
	default:
		return FormatJSON
	}
}

// Decode unmarshals one encoded Spec and builds the circuit.
func Decode(data []byte, format Format) (*circuit.Circuit, error) {
	var spec Spec
	switch format {
	case FormatMsgpack:
		if err := msgpack.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("circuitfile: decode msgpack: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &spec); err != nil {
			return nil, fmt.Errorf("circuitfile: decode json: %w", err)
		}
	}
	return spec.Circuit()
}

// Encode marshals the spec in the requested encoding.
func (s *Spec) Encode(format Format) ([]byte, error) {
	if format == FormatMsgpack {
		return msgpack.Marshal(s)
	}
	return json.MarshalIndent(s, "", "  ")
}

// Circuit builds the in-memory circuit from the spec.
func (s *Spec) Circuit() (*circuit.Circuit, error) {
	c := circuit.New(s.Name)
	qregs := make(map[string]*circuit.QuantumRegister, len(s.QRegs))
	cregs := make(map[string]*circuit.ClassicalRegister, len(s.CRegs))
	for _, r := range s.QRegs {
		if err := checkRegister(r); err != nil {
			return nil, err
		}
		if _, dup := qregs[r.Name]; dup {
			return nil, fmt.Errorf("circuitfile: duplicate quantum register %q", r.Name)
		}
		reg := circuit.NewQuantumRegister(r.Size, r.Name)
		qregs[r.Name] = reg
		c.AddQuantumRegister(reg)
	}
	for _, r := range s.CRegs {
		if err := checkRegister(r); err != nil {
			return nil, err
		}
		if _, dup := cregs[r.Name]; dup {
			return nil, fmt.Errorf("circuitfile: duplicate classical register %q", r.Name)
		}
		reg := circuit.NewClassicalRegister(r.Size, r.Name)
		cregs[r.Name] = reg
		c.AddClassicalRegister(reg)
	}

	for i, spec := range s.Ops {
		if err := appendOp(c, qregs, cregs, spec); err != nil {
			return nil, fmt.Errorf("circuitfile: op %d: %w", i, err)
		}
	}
	return c, nil
}

// checkRegister rejects unnamed registers and sizes outside a sane range.
// Sizes come straight from untrusted files, so the bound is checked through
// a guarded conversion rather than assumed.
func checkRegister(r RegSpec) error {
	if r.Name == "" || r.Size <= 0 {
		return fmt.Errorf("circuitfile: bad register %q[%d]", r.Name, r.Size)
	}
	if _, err := safecast.Conv[int32](r.Size); err != nil {
		return fmt.Errorf("circuitfile: register %q size out of range: %w", r.Name, err)
	}
	return nil
}

func appendOp(
	c *circuit.Circuit,
	qregs map[string]*circuit.QuantumRegister,
	cregs map[string]*circuit.ClassicalRegister,
	spec OpSpec,
) error {
	qubits, err := qubitRefs(qregs, spec.Qubits)
	if err != nil {
		return err
	}
	clbits, err := clbitRefs(cregs, spec.Clbits)
	if err != nil {
		return err
	}
	params := make([]circuit.Param, 0, len(spec.Params))
	for _, p := range spec.Params {
		switch {
		case p.Value != nil:
			params = append(params, circuit.Float(*p.Value))
		case p.Symbol != "":
			params = append(params, circuit.Symbol(p.Symbol))
		default:
			return fmt.Errorf("parameter has neither value nor symbol")
		}
	}

	var op *circuit.Operation
	switch spec.Gate {
	case "":
		return fmt.Errorf("missing gate name")
	case "measure":
		op = circuit.MeasureOp()
	case "barrier":
		op = circuit.BarrierOp()
	default:
		if std, ok := circuit.StandardGate(spec.Gate, params...); ok {
			op = std
		} else {
			op = circuit.NewOpaque(spec.Gate, params...)
		}
	}

	in := c.Append(op, qubits, clbits)
	if spec.Cond != nil {
		reg, ok := cregs[spec.Cond.Register]
		if !ok {
			return fmt.Errorf("condition references unknown register %q", spec.Cond.Register)
		}
		if spec.Cond.Bit != nil {
			in.CIfBit(reg.Clbit(*spec.Cond.Bit), spec.Cond.Value)
		} else {
			in.CIf(reg, spec.Cond.Value)
		}
	}
	return nil
}

func qubitRefs(regs map[string]*circuit.QuantumRegister, refs []BitRef) ([]circuit.Qubit, error) {
	out := make([]circuit.Qubit, 0, len(refs))
	for _, ref := range refs {
		if ref.Register == "" {
			out = append(out, circuit.Qubit{Index: ref.Index})
			continue
		}
		reg, ok := regs[ref.Register]
		if !ok {
			return nil, fmt.Errorf("unknown quantum register %q", ref.Register)
		}
		if ref.Index < 0 || ref.Index >= reg.Size {
			return nil, fmt.Errorf("qubit %s[%d] out of range", ref.Register, ref.Index)
		}
		out = append(out, reg.Qubit(ref.Index))
	}
	return out, nil
}

func clbitRefs(regs map[string]*circuit.ClassicalRegister, refs []BitRef) ([]circuit.Clbit, error) {
	out := make([]circuit.Clbit, 0, len(refs))
	for _, ref := range refs {
		if ref.Register == "" {
			out = append(out, circuit.Clbit{Index: ref.Index})
			continue
		}
		reg, ok := regs[ref.Register]
		if !ok {
			return nil, fmt.Errorf("unknown classical register %q", ref.Register)
		}
		if ref.Index < 0 || ref.Index >= reg.Size {
			return nil, fmt.Errorf("clbit %s[%d] out of range", ref.Register, ref.Index)
		}
		out = append(out, reg.Clbit(ref.Index))
	}
	return out, nil
}
