package ast

// SourceRange represents a range in the source code
type SourceRange struct {
	Start Position
	End   Position
}

// WithMetadata wraps a node with the source range it was parsed from.
// Visiting the envelope pushes the range on the converter's position stack,
// visits the wrapped node and pops the range again on every return path.
type WithMetadata[T Node] struct {
	Start Position
	End   Position
	Node  T
}

// Wrap attaches a source range to node.
func Wrap[T Node](node T, start, end Position) *WithMetadata[T] {
	return &WithMetadata[T]{Start: start, End: end, Node: node}
}

func (w *WithMetadata[T]) Range() SourceRange {
	return SourceRange{Start: w.Start, End: w.End}
}

func (w *WithMetadata[T]) NodeType() NodeType { return w.Node.NodeType() }

func (w *WithMetadata[T]) Visit(c Converter) (TraversalResult, error) {
	c.PushSourcePosition(w.Start, w.End)
	defer c.PopSourcePosition()

	return w.Node.Visit(c)
}
