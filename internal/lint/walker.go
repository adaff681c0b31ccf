package lint

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// NodeFunc is an enter or exit hook for one node kind.
type NodeFunc func(n *sitter.Node)

// Walker dispatches enter/exit hooks by node kind during a depth-first walk.
// The traversal state is an explicit frame stack scoped to one Walk call;
// nothing is stashed on tree nodes or in package state.
type Walker struct {
	enter map[string][]NodeFunc
	exit  map[string][]NodeFunc
}

// NewWalker returns a walker with no hooks registered.
func NewWalker() *Walker {
	return &Walker{
		enter: make(map[string][]NodeFunc),
		exit:  make(map[string][]NodeFunc),
	}
}

// OnEnter registers fn to run when a node of the given kind is entered.
func (w *Walker) OnEnter(kind string, fn NodeFunc) {
	w.enter[kind] = append(w.enter[kind], fn)
}

// OnExit registers fn to run when a node of the given kind is exited.
func (w *Walker) OnExit(kind string, fn NodeFunc) {
	w.exit[kind] = append(w.exit[kind], fn)
}

type frame struct {
	node  *sitter.Node
	child int
}

// Walk traverses the subtree rooted at root, firing enter hooks pre-order and
// exit hooks post-order.
func (w *Walker) Walk(root *sitter.Node) {
	if root == nil {
		return
	}
	w.fire(w.enter, root)
	stack := []frame{{node: root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.child < int(top.node.ChildCount()) {
			child := top.node.Child(top.child)
			top.child++
			w.fire(w.enter, child)
			stack = append(stack, frame{node: child})
			continue
		}
		w.fire(w.exit, top.node)
		stack = stack[:len(stack)-1]
	}
}

func (w *Walker) fire(hooks map[string][]NodeFunc, n *sitter.Node) {
	for _, fn := range hooks[n.Type()] {
		fn(n)
	}
}
