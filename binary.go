package tstbench

import (
	"github.com/xlab/treeprint"
)

func (t *binaryTree) Size() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

// Insert places word by lexicographic comparison. Duplicate keys and the
// empty string are ignored.
func (t *binaryTree) Insert(word string) {
	if word == "" {
		return
	}

	curNode := &t.root
	for *curNode != nil {
		curr := *curNode
		switch {
		case word < curr.key:
			curNode = &curr.lt
		case word > curr.key:
			curNode = &curr.gt
		default:
			return
		}
	}
	*curNode = newBinaryNode(word)
	t.size++
}

func (t *binaryTree) Contains(word string) bool {
	if word == "" {
		return false
	}

	curr := t.root
	for curr != nil {
		switch {
		case word < curr.key:
			curr = curr.lt
		case word > curr.key:
			curr = curr.gt
		default:
			return true
		}
	}
	return false
}

func (t *binaryTree) Keys() []string {
	keys := make([]string, 0, t.Size())
	for it := t.Iterator(); it.HasNext(); {
		k, _ := it.Next()
		keys = append(keys, k)
	}
	return keys
}

// Iterator yields keys in pre-order (self, less, greater).
func (t *binaryTree) Iterator() Iterator {
	it := &binaryIterator{}
	if t.root != nil {
		it.stack = append(it.stack, t.root)
	}
	return it
}

func (it *binaryIterator) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *binaryIterator) Next() (string, error) {
	if !it.HasNext() {
		return "", ErrNoMoreKeys
	}
	top := len(it.stack) - 1
	node := it.stack[top]
	it.stack = it.stack[:top]

	if node.gt != nil {
		it.stack = append(it.stack, node.gt)
	}
	if node.lt != nil {
		it.stack = append(it.stack, node.lt)
	}
	return node.key, nil
}

func (t *binaryTree) Render() string {
	out := treeprint.NewWithRoot(binaryRootLabel)
	if t.root == nil {
		return out.String()
	}

	type renderFrame struct {
		node   *binaryNode
		rel    relation
		parent treeprint.Tree
	}

	stack := []renderFrame{{t.root, relRoot, out}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := frame.node
		branch := frame.parent.AddBranch(frame.rel.String() + ": " + node.key)
		if node.gt != nil {
			stack = append(stack, renderFrame{node.gt, relGreater, branch})
		}
		if node.lt != nil {
			stack = append(stack, renderFrame{node.lt, relLess, branch})
		}
	}
	return out.String()
}
