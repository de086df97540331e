package abnf

import (
	"fmt"

	"github.com/arr-ai/abnf2lalrpop/gotree"
)

// Dump renders rules as an indented tree, one branch per alternative.
func Dump(rules []Rule) string {
	tree := gotree.New(fmt.Sprintf("grammar (%d rules)", len(rules)))
	for _, rule := range rules {
		tree.AddTree(rule.Tree())
	}
	return tree.Print()
}

func (r Rule) Tree() gotree.Tree {
	tree := gotree.New(r.Name)
	for i, alt := range r.Body {
		branch := tree.Add(fmt.Sprintf("/%d", i))
		for _, p := range alt {
			branch.AddTree(patTree(p))
		}
	}
	return tree
}

func patTree(p Pat) gotree.Tree {
	switch p := p.(type) {
	case List:
		tree := gotree.New("()")
		for _, child := range p {
			tree.AddTree(patTree(child))
		}
		return tree
	case Repeat:
		tree := gotree.New(p.Kind.String())
		for _, child := range p.Pats {
			tree.AddTree(patTree(child))
		}
		return tree
	}
	return gotree.New(p.String())
}
