package circuit

import "testing"

func TestAppendRecordsFreeParams(t *testing.T) {
	q := NewQuantumRegister(2, "q")
	c := New("")
	c.AddQuantumRegister(q)
	c.RZ(Symbol("θ"), q.Qubit(0))
	c.RX(Float(0.5), q.Qubit(1))
	c.RY(Symbol("φ"), q.Qubit(0))
	c.RZ(Symbol("θ"), q.Qubit(1))

	got := c.FreeParams()
	if len(got) != 2 || got[0] != "θ" || got[1] != "φ" {
		t.Fatalf("free params = %v, want [θ φ]", got)
	}
}

func TestConditionChaining(t *testing.T) {
	q := NewQuantumRegister(1, "q")
	cr := NewClassicalRegister(2, "cr")
	c := New("")
	c.AddQuantumRegister(q)
	c.AddClassicalRegister(cr)

	in := c.X(q.Qubit(0)).CIf(cr, 3)
	if in.Cond == nil || in.Cond.Register != cr || in.Cond.Value != 3 {
		t.Fatalf("register condition not attached: %+v", in.Cond)
	}

	in = c.X(q.Qubit(0)).CIfBit(cr.Clbit(1), 1)
	if in.Cond == nil || in.Cond.Bit == nil || in.Cond.Bit.Index != 1 {
		t.Fatalf("bit condition not attached: %+v", in.Cond)
	}

	clone := in.WithoutCondition()
	if clone.Cond != nil {
		t.Fatalf("clone kept its condition")
	}
	if in.Cond == nil {
		t.Fatalf("clone mutated the original")
	}
}

func TestCaptureSnapshotsBody(t *testing.T) {
	q := NewQuantumRegister(1, "q")
	inner := New("block")
	inner.AddQuantumRegister(q)
	inner.H(q.Qubit(0))

	op := inner.ToGate()
	if op.Kind != OpGate || op.Name != "block" {
		t.Fatalf("captured op = %q kind %v", op.Name, op.Kind)
	}
	if len(op.Def.Body) != 1 {
		t.Fatalf("body length %d, want 1", len(op.Def.Body))
	}

	// Later edits to the source circuit must not leak into the snapshot.
	inner.X(q.Qubit(0))
	if len(op.Def.Body) != 1 {
		t.Fatalf("snapshot grew with the source circuit")
	}

	sub := inner.ToSubroutine()
	if sub.Kind != OpSubroutine || len(sub.Def.Body) != 2 {
		t.Fatalf("subroutine capture wrong: kind %v, body %d", sub.Kind, len(sub.Def.Body))
	}
}

func TestStandardMarkers(t *testing.T) {
	q := NewQuantumRegister(1, "q")
	c := New("")
	c.AddQuantumRegister(q)

	if in := c.H(q.Qubit(0)); !in.Op.Standard() || in.Op.Universal() {
		t.Fatalf("h misclassified: %+v", in.Op)
	}
	u := UGate(Float(0), Float(0), Float(0))
	if !u.Universal() {
		t.Fatalf("U not recognized as universal")
	}
	if op := NewOpaque("my_pulse"); op.Standard() || op.Def != nil {
		t.Fatalf("opaque op misclassified: %+v", op)
	}
}

func TestKindStrings(t *testing.T) {
	for k, want := range map[OpKind]string{
		OpGate:       "gate",
		OpSubroutine: "subroutine",
		OpBarrier:    "barrier",
		OpMeasure:    "measure",
		OpKind(99):   "unknown",
	} {
		if got := k.String(); got != want {
			t.Fatalf("OpKind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
