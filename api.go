package tstbench

// Tree is an ordered string index. Both the ternary and binary variants
// implement it so the benchmark harness can drive them uniformly.
type Tree interface {
	Insert(word string)
	Contains(word string) bool
	Keys() []string
	Iterator() Iterator
	Size() int
	Render() string
}

type Iterator interface {
	HasNext() bool
	Next() (string, error)
}

// Factory builds a fresh, empty tree.
type Factory func() Tree

// NewTernary returns an empty ternary search tree.
func NewTernary() Tree {
	return &ternaryTree{}
}

// NewBinary returns an empty binary search tree keyed on whole strings.
func NewBinary() Tree {
	return &binaryTree{}
}
