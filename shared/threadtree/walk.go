package threadtree

// Entry is one node of a flattened forest with its depth (roots are 0).
type Entry struct {
	Node  *Node
	Depth int
}

// Walk visits roots and their replies depth-first, pre-order: a node, then
// all of its replies, then its next sibling. It stops with ErrDepthExceeded
// when a node sits deeper than maxDepth (DefaultMaxDepth if maxDepth <= 0),
// and with the first error returned by visit.
func Walk(roots []*Node, maxDepth int, visit func(node *Node, depth int) error) error {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	type frame struct {
		node  *Node
		depth int
	}
	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		if roots[i] != nil {
			stack = append(stack, frame{node: roots[i], depth: 0})
		}
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > maxDepth {
			return &RecordError{Id: f.node.Record.Id, Err: ErrDepthExceeded}
		}
		if err := visit(f.node, f.depth); err != nil {
			return err
		}

		children := f.node.Children
		for i := len(children) - 1; i >= 0; i-- {
			if children[i] != nil {
				stack = append(stack, frame{node: children[i], depth: f.depth + 1})
			}
		}
	}
	return nil
}

// Flatten returns the pre-order sequence Walk would visit.
func Flatten(roots []*Node, maxDepth int) ([]Entry, error) {
	var entries []Entry
	err := Walk(roots, maxDepth, func(node *Node, depth int) error {
		entries = append(entries, Entry{Node: node, Depth: depth})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}
