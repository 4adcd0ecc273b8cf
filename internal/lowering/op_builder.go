// Package lowering translates IR nodes into WebNN graph-builder operations.
//
// Each operator family is handled by an OpBuilder registered under its IR
// operator-type names. Builders expose two soft filters that decide whether a
// node can be taken by this backend at all, and a lowering method that emits
// the target operations for a node both filters accepted.
package lowering

import (
	"errors"
	"log/slog"

	"github.com/webnn-go/webnn/internal/ir"
)

// ErrInvalidArgument marks a hard lowering failure: an invariant violation
// reached during emission, as opposed to a filter's soft decline.
var ErrInvalidArgument = errors.New("invalid argument")

// OpBuilder lowers one family of IR operators to the target graph.
//
// IsSupported and InputsSupported are pure predicates: a false return means
// "this backend declines the node" and the caller falls back to another
// execution path. AddToGraph may assume both filters passed; it still
// re-validates arity and shape relationships and returns an error wrapping
// ErrInvalidArgument rather than ever emitting a malformed graph.
type OpBuilder interface {
	IsSupported(graph *ir.Graph, node *ir.Node, logger *slog.Logger) bool
	InputsSupported(graph *ir.Graph, node *ir.Node, logger *slog.Logger) bool
	AddToGraph(mb *ModelBuilder, node *ir.Node) error
}
