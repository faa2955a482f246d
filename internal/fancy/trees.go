package fancy

import (
	"github.com/charmbracelet/lipgloss/tree"
)

// ComponentTree is a styled tree with a fixed root title.
type ComponentTree struct {
	tree *tree.Tree
}

// NewComponentTree creates a tree rooted at title.
func NewComponentTree(title string) *ComponentTree {
	t := Tree()
	t.Root(title)
	return &ComponentTree{tree: t}
}

// Tree returns the underlying tree.
func (c *ComponentTree) Tree() *tree.Tree {
	return c.tree
}

// AddChild appends a node under the root.
func (c *ComponentTree) AddChild(child any) *tree.Tree {
	return c.tree.Child(child)
}

// String renders the tree.
func (c *ComponentTree) String() string {
	return c.tree.String()
}

// FixtureTree creates a tree rooted at a fixture name.
func FixtureTree(name string) *ComponentTree {
	return NewComponentTree(RootStyle.Render(name))
}
