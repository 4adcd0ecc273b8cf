package lowering

// Registrations maps IR operator-type names to the OpBuilder that lowers
// them. It is an explicit value constructed at backend-initialization time
// and passed to the dispatcher; there is no process-wide registry.
type Registrations struct {
	byOpType map[string]OpBuilder
}

// NewRegistry creates a registry with all supported operator families bound.
func NewRegistry() *Registrations {
	r := &Registrations{
		byOpType: make(map[string]OpBuilder),
	}
	RegisterNormalizationOpBuilder("BatchNormalization", r)
	return r
}

// Count returns the number of builders bound to opType (0 or 1).
func (r *Registrations) Count(opType string) int {
	if _, ok := r.byOpType[opType]; ok {
		return 1
	}
	return 0
}

// Emplace binds a builder to an operator type. Like map emplace semantics,
// an existing binding is left untouched.
func (r *Registrations) Emplace(opType string, builder OpBuilder) {
	if _, ok := r.byOpType[opType]; ok {
		return
	}
	r.byOpType[opType] = builder
}

// Get returns the builder bound to an operator type.
func (r *Registrations) Get(opType string) (OpBuilder, bool) {
	b, ok := r.byOpType[opType]
	return b, ok
}

// SupportedOps returns the operator types with a bound builder.
func (r *Registrations) SupportedOps() []string {
	ops := make([]string, 0, len(r.byOpType))
	for op := range r.byOpType {
		ops = append(ops, op)
	}
	return ops
}
