package tstbench

import (
	"github.com/xlab/treeprint"
)

func (t *ternaryTree) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

// Insert walks the tree one code point at a time, creating nodes as needed.
// Existing nodes are never moved, so inserting a word twice only re-marks
// its last node.
func (t *ternaryTree) Insert(word string) {
	key := []rune(word)
	if len(key) == 0 {
		return
	}

	curNode := &t.root
	depth := 0
	for {
		curr := *curNode
		if curr == nil {
			curr = newTernaryNode(key[depth])
			replaceRef(curNode, curr)
			t.size++
		}

		switch c := key[depth]; {
		case c < curr.char:
			curNode = &curr.lt
		case c > curr.char:
			curNode = &curr.gt
		default:
			if depth == len(key)-1 {
				curr.end = true
				return
			}
			depth++
			curNode = &curr.eq
		}
	}
}

// Contains reports whether word was inserted. A prefix of a stored word
// is not a member unless it was inserted itself.
func (t *ternaryTree) Contains(word string) bool {
	key := []rune(word)
	if len(key) == 0 {
		return false
	}

	curr := t.root
	depth := 0
	for curr != nil {
		switch c := key[depth]; {
		case c < curr.char:
			curr = curr.lt
		case c > curr.char:
			curr = curr.gt
		default:
			if depth == len(key)-1 {
				return curr.end
			}
			depth++
			curr = curr.eq
		}
	}
	return false
}

func (t *ternaryTree) Keys() []string {
	keys := make([]string, 0)
	for it := t.Iterator(); it.HasNext(); {
		k, _ := it.Next()
		keys = append(keys, k)
	}
	return keys
}

// Iterator yields keys in (less, self, equal, greater) order. It keeps its
// own stack, so chains as deep as the input do not recurse.
func (t *ternaryTree) Iterator() Iterator {
	it := &ternaryIterator{}
	if t.root != nil {
		it.stack = append(it.stack, ternaryFrame{node: t.root})
	}
	it.advance()
	return it
}

func (it *ternaryIterator) HasNext() bool {
	return it != nil && it.ok
}

func (it *ternaryIterator) Next() (string, error) {
	if !it.HasNext() {
		return "", ErrNoMoreKeys
	}
	cur := it.next
	it.advance()
	return cur, nil
}

func (it *ternaryIterator) advance() {
	it.next, it.ok = "", false
	for len(it.stack) > 0 {
		top := len(it.stack) - 1
		frame := it.stack[top]
		it.stack = it.stack[:top]

		node := frame.node
		if !frame.descend {
			// pushed in reverse: lt runs first, gt last
			if node.gt != nil {
				it.stack = append(it.stack, ternaryFrame{node: node.gt, depth: frame.depth})
			}
			it.stack = append(it.stack, ternaryFrame{node: node, depth: frame.depth, descend: true})
			if node.lt != nil {
				it.stack = append(it.stack, ternaryFrame{node: node.lt, depth: frame.depth})
			}
			continue
		}

		it.path = append(it.path[:frame.depth], node.char)
		if node.eq != nil {
			it.stack = append(it.stack, ternaryFrame{node: node.eq, depth: frame.depth + 1})
		}
		if node.end {
			it.next, it.ok = string(it.path), true
			return
		}
	}
}

func (t *ternaryTree) Render() string {
	out := treeprint.NewWithRoot(ternaryRootLabel)
	if t.root == nil {
		return out.String()
	}

	type renderFrame struct {
		node   *ternaryNode
		rel    relation
		parent treeprint.Tree
	}

	stack := []renderFrame{{t.root, relRoot, out}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := frame.node
		branch := frame.parent.AddBranch(node.label(frame.rel))
		if node.gt != nil {
			stack = append(stack, renderFrame{node.gt, relGreater, branch})
		}
		if node.eq != nil {
			stack = append(stack, renderFrame{node.eq, relEqual, branch})
		}
		if node.lt != nil {
			stack = append(stack, renderFrame{node.lt, relLess, branch})
		}
	}
	return out.String()
}

func (n *ternaryNode) label(rel relation) string {
	s := rel.String() + ": " + string(n.char)
	if n.end {
		s += endMarker
	}
	return s
}

// modify the parent's child slot in place, ** means ref to pointer
func replaceRef(oldNode **ternaryNode, newNode *ternaryNode) {
	*oldNode = newNode
}
