package tstbench

import (
	"errors"
)

const (
	relRoot relation = iota
	relLess
	relEqual
	relGreater
)

const (
	// end-of-word marker appended to ternary node labels in Render
	endMarker = "*"

	ternaryRootLabel = "ternary"
	binaryRootLabel  = "binary"
)

var (
	ErrNoMoreKeys = errors.New("there are no more keys in the tree")
)

type (
	relation int

	ternaryTree struct {
		size int
		root *ternaryNode
	}

	// a single code point; lt/gt share the parent's prefix,
	// eq extends it by char
	ternaryNode struct {
		char       rune
		lt, eq, gt *ternaryNode
		end        bool
	}

	binaryTree struct {
		size int
		root *binaryNode
	}

	binaryNode struct {
		key    string
		lt, gt *binaryNode
	}

	ternaryFrame struct {
		node  *ternaryNode
		depth int
		// descend frames run after the lt subtree is drained
		descend bool
	}

	ternaryIterator struct {
		path  []rune
		stack []ternaryFrame
		next  string
		ok    bool
	}

	binaryIterator struct {
		stack []*binaryNode
	}
)

func newTernaryNode(c rune) *ternaryNode {
	return &ternaryNode{char: c}
}

func newBinaryNode(key string) *binaryNode {
	return &binaryNode{key: key}
}

func (r relation) String() string {
	return []string{"root", "less", "equal", "greater"}[r]
}
