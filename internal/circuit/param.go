package circuit

// ParamKind enumerates parameter expression kinds.
type ParamKind uint8

const (
	// ParamFloat is a bound numeric parameter.
	ParamFloat ParamKind = iota
	// ParamSymbol is an unbound symbolic parameter.
	ParamSymbol
)

// Param is a gate parameter: either a bound float or a free symbol.
type Param struct {
	Kind   ParamKind
	Value  float64
	Symbol string
}

// Float wraps a bound numeric value.
func Float(v float64) Param {
	return Param{Kind: ParamFloat, Value: v}
}

// Symbol wraps a free symbolic parameter by name.
func Symbol(name string) Param {
	return Param{Kind: ParamSymbol, Symbol: name}
}
