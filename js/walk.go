package js

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Walk visits root and its descendants breadth-first. Returning false from
// visit skips that node's children. Nodes are deduplicated by identity so
// revisiting a shared subtree is impossible.
func Walk(root *sitter.Node, visit func(*sitter.Node) bool) {
	if root == nil {
		return
	}
	queue := []*sitter.Node{root}
	seen := make(map[uintptr]bool)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		if seen[node.ID()] {
			continue
		}
		seen[node.ID()] = true
		if !visit(node) {
			continue
		}
		for i := 0; i < int(node.ChildCount()); i++ {
			queue = append(queue, node.Child(i))
		}
	}
}

// CollectNodes returns every descendant of root (root included) whose type
// matches one of types.
func CollectNodes(root *sitter.Node, types ...string) []*sitter.Node {
	want := make(map[string]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	var out []*sitter.Node
	Walk(root, func(n *sitter.Node) bool {
		if want[n.Type()] {
			out = append(out, n)
		}
		return true
	})
	return out
}
