package ast

// walk runs the traversal contract shared by every node kind:
//
//  1. the enter hook runs first; an error aborts the walk;
//  2. SkipChildren on enter makes the node report Continue without visiting
//     its children or running its exit hook;
//  3. children are visited in order and the first one that does not return
//     Continue ends the walk of this node with that result;
//  4. the exit hook's result becomes the node's result.
func walk(emit func(TraversalMode) (TraversalResult, error), children ...func() (TraversalResult, error)) (TraversalResult, error) {
	ret, err := emit(Enter)
	if err != nil {
		return ret, err
	}
	if ret == SkipChildren {
		return Continue, nil
	}

	for _, child := range children {
		ret, err = child()
		if err != nil || ret != Continue {
			return ret, err
		}
	}

	return emit(Exit)
}

// each visits a list of sibling nodes in order.
func each[T Node](c Converter, nodes []T) func() (TraversalResult, error) {
	return func() (TraversalResult, error) {
		for _, n := range nodes {
			ret, err := n.Visit(c)
			if err != nil || ret != Continue {
				return ret, err
			}
		}
		return Continue, nil
	}
}

// one visits a single child node.
func one(c Converter, n Node) func() (TraversalResult, error) {
	return func() (TraversalResult, error) {
		return n.Visit(c)
	}
}

// optional visits n unless it is absent. present is evaluated by the caller
// so that typed nil pointers are never called through the interface.
func optional(c Converter, present bool, n func() Node) func() (TraversalResult, error) {
	return func() (TraversalResult, error) {
		if !present {
			return Continue, nil
		}
		return n().Visit(c)
	}
}
