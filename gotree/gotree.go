// Package gotree builds and prints text trees.
package gotree

import (
	"strings"
)

const (
	newLine      = "\n"
	emptySpace   = "    "
	middleItem   = "├── "
	continueItem = "│   "
	lastItem     = "└── "
)

type (
	tree struct {
		text  string
		items []Tree
	}

	// Tree is tree interface
	Tree interface {
		Add(text string) Tree
		AddTree(tree Tree)
		Items() []Tree
		Text() string
		Print() string
	}
)

//New returns a new GoTree.Tree
func New(text string) Tree {
	return &tree{
		text:  text,
		items: []Tree{},
	}
}

//Add adds a node to the tree and returns it
func (t *tree) Add(text string) Tree {
	n := New(text)
	t.items = append(t.items, n)
	return n
}

//AddTree adds a tree as an item
func (t *tree) AddTree(tree Tree) {
	t.items = append(t.items, tree)
}

//Text returns the node's value
func (t *tree) Text() string {
	return t.text
}

//Items returns all items in the tree
func (t *tree) Items() []Tree {
	return t.items
}

//Print returns an visual representation of the tree
func (t *tree) Print() string {
	var sb strings.Builder
	sb.WriteString(t.Text() + newLine)
	printItems(&sb, t.Items(), "")
	return sb.String()
}

func printItems(sb *strings.Builder, items []Tree, prefix string) {
	for i, item := range items {
		indicator, indent := middleItem, continueItem
		if i == len(items)-1 {
			indicator, indent = lastItem, emptySpace
		}
		for j, line := range strings.Split(item.Text(), newLine) {
			if j > 0 {
				indicator = indent
			}
			sb.WriteString(prefix + indicator + line + newLine)
		}
		printItems(sb, item.Items(), prefix+indent)
	}
}
