// Package categories provides the hierarchical category taxonomy that ledger
// records are classified under.
//
// A Tree is built once at startup and never changes afterwards. Every label in
// the tree is a valid category; a label with children also names the group
// made of itself and all of its descendants.
package categories

import (
	"fmt"
	"iter"
	"strings"

	"fjacquet/moneybook/internal/models"
)

// Node is one category label with its ordered subcategories.
type Node struct {
	Label    string
	Children []*Node
}

// N is a shorthand constructor used to write taxonomies as literals.
func N(label string, children ...*Node) *Node {
	return &Node{Label: label, Children: children}
}

// IsLeaf reports whether the node has no subcategories.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Tree is an immutable forest of category nodes.
type Tree struct {
	roots []*Node
}

// NewTree creates a tree from the given root nodes.
func NewTree(roots ...*Node) *Tree {
	return &Tree{roots: roots}
}

// Default returns the built-in taxonomy.
func Default() *Tree {
	return NewTree(
		N("expense",
			N("food",
				N("meal"),
				N("snack"),
				N("drink"),
			),
			N("transportation",
				N("bus"),
				N("railway"),
			),
		),
		N("income",
			N("salary"),
			N("bonus"),
		),
	)
}

// FromConfig builds a tree from the YAML category model.
func FromConfig(cfgs []models.CategoryConfig) (*Tree, error) {
	if len(cfgs) == 0 {
		return nil, fmt.Errorf("taxonomy has no categories")
	}
	roots := make([]*Node, 0, len(cfgs))
	for _, cfg := range cfgs {
		node, err := nodeFromConfig(cfg, nil)
		if err != nil {
			return nil, err
		}
		roots = append(roots, node)
	}
	return NewTree(roots...), nil
}

func nodeFromConfig(cfg models.CategoryConfig, path []string) (*Node, error) {
	label := strings.TrimSpace(cfg.Name)
	if label == "" {
		return nil, fmt.Errorf("empty category name under '%s'", strings.Join(path, "/"))
	}
	if strings.ContainsAny(label, " \t\r\n") {
		return nil, fmt.Errorf("category name '%s' must not contain whitespace", label)
	}
	node := &Node{Label: label}
	path = append(path, label)
	for _, child := range cfg.Children {
		c, err := nodeFromConfig(child, path)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, c)
	}
	return node, nil
}

// IsValid reports whether label appears anywhere in the tree.
func (t *Tree) IsValid(label string) bool {
	for n := range t.nodes() {
		if n.Label == label {
			return true
		}
	}
	return false
}

// Subtree returns label together with all of its descendant labels in
// depth-first order. A leaf yields just itself and an unknown label yields
// nothing.
//
// When the same label occurs in several branches, the subtrees of all
// occurrences are merged; each label is reported once.
func (t *Tree) Subtree(label string) []string {
	var result []string
	seen := make(map[string]bool)
	for n := range t.nodes() {
		if n.Label != label {
			continue
		}
		if n.IsLeaf() {
			if !seen[n.Label] {
				seen[n.Label] = true
				result = append(result, n.Label)
			}
			continue
		}
		for d := range walk([]*Node{n}, 0) {
			if !seen[d.node.Label] {
				seen[d.node.Label] = true
				result = append(result, d.node.Label)
			}
		}
	}
	return result
}

// Walk yields every label with its depth, depth-first. Roots have depth 0.
func (t *Tree) Walk() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for d := range walk(t.roots, 0) {
			if !yield(d.node.Label, d.depth) {
				return
			}
		}
	}
}

// Labels returns every label in depth-first order.
func (t *Tree) Labels() []string {
	var labels []string
	for label := range t.Walk() {
		labels = append(labels, label)
	}
	return labels
}

// Config converts the tree back into its YAML model.
func (t *Tree) Config() []models.CategoryConfig {
	cfgs := make([]models.CategoryConfig, 0, len(t.roots))
	for _, r := range t.roots {
		cfgs = append(cfgs, r.config())
	}
	return cfgs
}

func (n *Node) config() models.CategoryConfig {
	cfg := models.CategoryConfig{Name: n.Label}
	for _, c := range n.Children {
		cfg.Children = append(cfg.Children, c.config())
	}
	return cfg
}

type visit struct {
	node  *Node
	depth int
}

func (t *Tree) nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for d := range walk(t.roots, 0) {
			if !yield(d.node) {
				return
			}
		}
	}
}

func walk(nodes []*Node, depth int) iter.Seq[visit] {
	return func(yield func(visit) bool) {
		var rec func([]*Node, int) bool
		rec = func(nodes []*Node, depth int) bool {
			for _, n := range nodes {
				if !yield(visit{node: n, depth: depth}) {
					return false
				}
				if !rec(n.Children, depth+1) {
					return false
				}
			}
			return true
		}
		rec(nodes, depth)
	}
}
