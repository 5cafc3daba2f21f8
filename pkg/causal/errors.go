package causal

import (
	"errors"
	"fmt"
)

// Common sentinel errors for graph construction
var (
	ErrDuplicateNode     = errors.New("duplicate node")
	ErrUnknownNode       = errors.New("unknown node")
	ErrInvalidConnection = errors.New("invalid connection")
	ErrInvalidCategory   = errors.New("invalid category")
)

// GraphError provides structured error information for graph
// construction failures.
type GraphError struct {
	Op      string // Operation that failed (e.g., "AddNode", "AddEdge")
	NodeID  string // Node ID (for node operations)
	Source  string // Edge source (for edge operations)
	Target  string // Edge target (for edge operations)
	Cause   error  // Underlying sentinel
	Context string // Additional context
}

// Error implements the error interface.
func (e *GraphError) Error() string {
	switch {
	case e.NodeID != "":
		return fmt.Sprintf("%s node %q: %v", e.Op, e.NodeID, e.Cause)
	case e.Source != "" || e.Target != "":
		if e.Context != "" {
			return fmt.Sprintf("%s edge %q -> %q (%s): %v", e.Op, e.Source, e.Target, e.Context, e.Cause)
		}
		return fmt.Sprintf("%s edge %q -> %q: %v", e.Op, e.Source, e.Target, e.Cause)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
}

// Unwrap returns the underlying cause for error chain support.
func (e *GraphError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error or its cause.
func (e *GraphError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// duplicateNodeError creates a duplicate node error for AddNode.
func duplicateNodeError(id string) error {
	return &GraphError{Op: "AddNode", NodeID: id, Cause: ErrDuplicateNode}
}

// unknownNodeError creates an unknown endpoint error for edge operations.
func unknownNodeError(op, source, target, missing string) error {
	return &GraphError{
		Op:      op,
		Source:  source,
		Target:  target,
		Cause:   ErrUnknownNode,
		Context: fmt.Sprintf("endpoint %q does not exist", missing),
	}
}

// invalidConnectionError creates an illegal transition error for edge operations.
func invalidConnectionError(op, source, target, context string) error {
	return &GraphError{
		Op:      op,
		Source:  source,
		Target:  target,
		Cause:   ErrInvalidConnection,
		Context: context,
	}
}
