package qasm3

import (
	"strconv"

	"quasm/internal/circuit"
)

// opIndex assigns an arena index to each distinct operation on first sight.
// The index, not the pointer, keys every name table and supplies collision
// suffixes, so the rendered text never depends on addresses and two exports
// of the same circuit are byte-identical.
type opIndex struct {
	ids  map[*circuit.Operation]uint32
	next uint32
}

func newOpIndex() *opIndex {
	return &opIndex{ids: make(map[*circuit.Operation]uint32), next: 1}
}

func (x *opIndex) id(op *circuit.Operation) uint32 {
	if id, ok := x.ids[op]; ok {
		return id
	}
	id := x.next
	x.next++
	x.ids[op] = id
	return id
}

func suffixed(name string, id uint32) string {
	return name + "_" + strconv.FormatUint(uint64(id), 10)
}
