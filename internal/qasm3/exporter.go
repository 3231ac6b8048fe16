// Package qasm3 serializes a circuit into an OpenQASM3 program. The export
// is a single-shot, synchronous transform: namespace, hoist list and output
// tree are created fresh per call and discarded after serialization.
package qasm3

import (
	"io"

	"quasm/internal/circuit"
	"quasm/internal/qasm3/ast"
)

// DefaultIncludes is the include list used when none is configured.
var DefaultIncludes = []string{"stdgates.inc"}

// Exporter holds export configuration. The zero value exports with the
// default include list and pi folding enabled.
type Exporter struct {
	// Includes lists the include files emitted in the header, caller order
	// preserved. Their gate vocabulary seeds the namespace.
	Includes []string
	// DisableConstants forces decimal rendering of every numeric parameter
	// instead of folding rational multiples of pi.
	DisableConstants bool
}

// Export renders the circuit as one OpenQASM3 program. Either the complete
// text is returned or a typed error; no partial output.
func (e *Exporter) Export(c *circuit.Circuit) (string, error) {
	prog, err := e.Build(c)
	if err != nil {
		return "", err
	}
	return prog.Source(), nil
}

// Write streams the rendered program into w. The tree is built, and every
// lowering error raised, before the first byte is written.
func (e *Exporter) Write(w io.Writer, c *circuit.Circuit) error {
	prog, err := e.Build(c)
	if err != nil {
		return err
	}
	_, err = prog.WriteTo(w)
	return err
}

// Build constructs the output tree without serializing it.
func (e *Exporter) Build(c *circuit.Circuit) (*ast.Program, error) {
	includes := e.Includes
	if includes == nil {
		includes = DefaultIncludes
	}
	b := newBuilder(c, includes, !e.DisableConstants)
	return b.program()
}

// Export renders the circuit with the default configuration.
func Export(c *circuit.Circuit) (string, error) {
	var e Exporter
	return e.Export(c)
}
