package qasm3

import (
	"strconv"

	"quasm/internal/circuit"
	"quasm/internal/qasm3/ast"
)

// nameMode selects the qubit-identifier scheme. It is passed down every
// lowering call explicitly; nothing is saved and restored.
type nameMode uint8

const (
	// modeRegisters addresses bits as register[index].
	modeRegisters nameMode = iota
	// modeFlat addresses bits as register_index, the scheme used inside
	// definition bodies whose formals are individual qubits.
	modeFlat
)

type defKind uint8

const (
	defOpaque defKind = iota
	defSubroutine
	defGate
)

type hoisted struct {
	op   *circuit.Operation
	id   uint32
	kind defKind
}

// builder converts circuit instructions into AST statements. All of its
// state lives for exactly one export.
type builder struct {
	circ     *circuit.Circuit
	ns       *namespace
	ids      *opIndex
	defs     []hoisted
	includes []string
	fold     bool
}

func newBuilder(c *circuit.Circuit, includes []string, fold bool) *builder {
	return &builder{
		circ:     c,
		ns:       newNamespace(includes),
		ids:      newOpIndex(),
		includes: includes,
		fold:     fold,
	}
}

// hoist walks the instruction list depth-first, post-order, registering
// every composite operation that needs an explicit definition. Post-order
// registration puts callees before callers, so the definition block order
// is dependency order with no extra sorting.
func (b *builder) hoist(list []*circuit.Instruction) error {
	for _, in := range list {
		op := in.Op
		switch op.Kind {
		case circuit.OpBarrier, circuit.OpMeasure:
			continue
		case circuit.OpGate, circuit.OpSubroutine:
			// fall through to registration
		default:
			return unsupported(op, "unknown operation kind")
		}
		if op.Universal() || b.ns.builtin(op) {
			continue
		}
		id := b.ids.id(op)
		if b.ns.exists(op, id) {
			continue
		}
		if op.Def == nil {
			b.ns.register(op, id)
			b.defs = append(b.defs, hoisted{op: op, id: id, kind: defOpaque})
			continue
		}
		if err := b.hoist(op.Def.Body); err != nil {
			return err
		}
		kind := defGate
		if op.Kind == circuit.OpSubroutine {
			kind = defSubroutine
		}
		b.ns.register(op, id)
		b.defs = append(b.defs, hoisted{op: op, id: id, kind: kind})
	}
	return nil
}

func (b *builder) program() (*ast.Program, error) {
	if err := b.hoist(b.circ.Data); err != nil {
		return nil, err
	}
	prog := &ast.Program{Header: ast.Header{Version: "3", Includes: b.includes}}

	defs, err := b.definitions()
	if err != nil {
		return nil, err
	}
	prog.Statements = append(prog.Statements, defs...)

	for _, reg := range b.circ.CRegs {
		prog.Statements = append(prog.Statements, ast.Stmt{
			Kind: ast.StmtBitDecl,
			Decl: ast.DeclStmt{Name: reg.Name, Size: reg.Size},
		})
	}
	for _, reg := range b.circ.QRegs {
		prog.Statements = append(prog.Statements, ast.Stmt{
			Kind: ast.StmtQubitDecl,
			Decl: ast.DeclStmt{Name: reg.Name, Size: reg.Size},
		})
	}
	for _, sym := range b.circ.FreeParams() {
		prog.Statements = append(prog.Statements, ast.Stmt{
			Kind: ast.StmtInputDecl,
			Decl: ast.DeclStmt{Name: sym},
		})
	}

	stmts, err := b.instructions(b.circ.Data, modeRegisters)
	if err != nil {
		return nil, err
	}
	prog.Statements = append(prog.Statements, stmts...)
	return prog, nil
}

// definitions lowers the hoisted operations in dependency order. Bodies use
// flat naming: the formals of a definition are individual qubits, not whole
// registers.
func (b *builder) definitions() ([]ast.Stmt, error) {
	out := make([]ast.Stmt, 0, len(b.defs))
	for _, h := range b.defs {
		name, ok := b.ns.nameOf(h.op, h.id)
		if !ok {
			return nil, malformed("operation %q hoisted but never registered", h.op.Name)
		}
		switch h.kind {
		case defOpaque:
			out = append(out, ast.Stmt{
				Kind:   ast.StmtCalDef,
				CalDef: ast.CalDefStmt{Name: name},
			})
		case defGate:
			body, err := b.instructions(h.op.Def.Body, modeFlat)
			if err != nil {
				return nil, err
			}
			out = append(out, ast.Stmt{
				Kind: ast.StmtGateDef,
				GateDef: &ast.GateDefStmt{
					Name:   name,
					Params: h.op.Def.Params,
					Qubits: flatQubitNames(h.op.Def.QRegs),
					Body:   body,
				},
			})
		case defSubroutine:
			body, err := b.instructions(h.op.Def.Body, modeFlat)
			if err != nil {
				return nil, err
			}
			out = append(out, ast.Stmt{
				Kind: ast.StmtSubroutineDef,
				SubDef: &ast.SubroutineDefStmt{
					Name:   name,
					Qubits: flatQubitNames(h.op.Def.QRegs),
					Body:   body,
				},
			})
		}
	}
	return out, nil
}

// instructions lowers an instruction list. It is used both for top-level
// statements and for definition bodies; mode picks the identifier scheme.
func (b *builder) instructions(list []*circuit.Instruction, mode nameMode) ([]ast.Stmt, error) {
	out := make([]ast.Stmt, 0, len(list))
	for _, in := range list {
		switch in.Op.Kind {
		case circuit.OpGate:
			if in.Cond != nil {
				stmt, err := b.branch(in, mode)
				if err != nil {
					return nil, err
				}
				out = append(out, stmt)
				continue
			}
			stmt, err := b.call(in, ast.StmtGateCall, mode)
			if err != nil {
				return nil, err
			}
			out = append(out, stmt)
		case circuit.OpSubroutine:
			stmt, err := b.call(in, ast.StmtSubroutineCall, mode)
			if err != nil {
				return nil, err
			}
			out = append(out, stmt)
		case circuit.OpBarrier:
			targets, err := b.qubitExprs(in.Qubits, mode)
			if err != nil {
				return nil, err
			}
			out = append(out, ast.Stmt{
				Kind:    ast.StmtBarrier,
				Barrier: ast.BarrierStmt{Targets: targets},
			})
		case circuit.OpMeasure:
			stmt, err := b.measure(in, mode)
			if err != nil {
				return nil, err
			}
			out = append(out, stmt)
		default:
			return nil, unsupported(in.Op, "unknown operation kind")
		}
	}
	return out, nil
}

// branch lowers a conditioned gate into a single-branch equality
// conditional wrapping the unconditioned call. No else branch is ever
// produced.
func (b *builder) branch(in *circuit.Instruction, mode nameMode) (ast.Stmt, error) {
	left, err := b.condTarget(in.Cond, mode)
	if err != nil {
		return ast.Stmt{}, err
	}
	body, err := b.instructions([]*circuit.Instruction{in.WithoutCondition()}, mode)
	if err != nil {
		return ast.Stmt{}, err
	}
	return ast.Stmt{
		Kind: ast.StmtBranch,
		Branch: &ast.BranchStmt{
			Left:  left,
			Right: ast.Literal(strconv.Itoa(in.Cond.Value)),
			Body:  body,
		},
	}, nil
}

func (b *builder) condTarget(cond *circuit.Condition, mode nameMode) (ast.Expr, error) {
	switch {
	case cond.Register != nil:
		return ast.Ident(cond.Register.Name), nil
	case cond.Bit != nil:
		return b.clbitExpr(*cond.Bit, mode)
	default:
		return ast.Expr{}, malformed("condition has no target")
	}
}

func (b *builder) call(in *circuit.Instruction, kind ast.StmtKind, mode nameMode) (ast.Stmt, error) {
	name, ok := b.ns.nameOf(in.Op, b.ids.id(in.Op))
	if !ok {
		return ast.Stmt{}, malformed("operation %q used before registration", in.Op.Name)
	}
	targets, err := b.qubitExprs(in.Qubits, mode)
	if err != nil {
		return ast.Stmt{}, err
	}
	return ast.Stmt{
		Kind: kind,
		Call: ast.CallStmt{
			Name:    name,
			Params:  b.params(in.Op),
			Targets: targets,
		},
	}, nil
}

func (b *builder) measure(in *circuit.Instruction, mode nameMode) (ast.Stmt, error) {
	if len(in.Clbits) != 1 {
		return ast.Stmt{}, unsupported(in.Op, "measurement must assign exactly one classical bit")
	}
	if len(in.Qubits) != 1 {
		return ast.Stmt{}, unsupported(in.Op, "measurement must read exactly one qubit")
	}
	target, err := b.clbitExpr(in.Clbits[0], mode)
	if err != nil {
		return ast.Stmt{}, err
	}
	source, err := b.qubitExpr(in.Qubits[0], mode)
	if err != nil {
		return ast.Stmt{}, err
	}
	return ast.Stmt{
		Kind:    ast.StmtMeasureAssign,
		Measure: ast.MeasureStmt{Target: target, Source: source},
	}, nil
}

func (b *builder) params(op *circuit.Operation) []ast.Expr {
	if len(op.Params) == 0 {
		return nil
	}
	out := make([]ast.Expr, len(op.Params))
	for i, p := range op.Params {
		switch p.Kind {
		case circuit.ParamSymbol:
			out[i] = ast.Ident(p.Symbol)
		default:
			out[i] = ast.Literal(formatFloat(p.Value, b.fold))
		}
	}
	return out
}

func (b *builder) qubitExprs(qubits []circuit.Qubit, mode nameMode) ([]ast.Expr, error) {
	out := make([]ast.Expr, len(qubits))
	for i, q := range qubits {
		expr, err := b.qubitExpr(q, mode)
		if err != nil {
			return nil, err
		}
		out[i] = expr
	}
	return out, nil
}

func (b *builder) qubitExpr(q circuit.Qubit, mode nameMode) (ast.Expr, error) {
	if q.Register == nil {
		// Anonymous qubits address hardware directly.
		return ast.Ident("$" + strconv.Itoa(q.Index)), nil
	}
	if mode == modeFlat {
		return ast.Ident(flatName(q.Register.Name, q.Index)), nil
	}
	return ast.Index(q.Register.Name, q.Index), nil
}

func (b *builder) clbitExpr(bit circuit.Clbit, mode nameMode) (ast.Expr, error) {
	if bit.Register == nil {
		return ast.Expr{}, malformed("classical bit has no register")
	}
	if mode == modeFlat {
		return ast.Ident(flatName(bit.Register.Name, bit.Index)), nil
	}
	return ast.Index(bit.Register.Name, bit.Index), nil
}

func flatName(register string, index int) string {
	return register + "_" + strconv.Itoa(index)
}

func flatQubitNames(regs []*circuit.QuantumRegister) []string {
	var out []string
	for _, reg := range regs {
		for i := 0; i < reg.Size; i++ {
			out = append(out, flatName(reg.Name, i))
		}
	}
	return out
}
