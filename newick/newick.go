package newick

import (
	"strconv"
	"strings"

	"github.com/minevo/njtree/tree"
)

// config holds Render's rendering options.
type config struct {
	branchLengths bool
}

// Option configures Render.
type Option func(*config)

// WithBranchLengths appends ":length" after every non-root node, using
// tree.Node.BranchLength; the root gets no length. Off by default: this core's output format
// does not require branch lengths.
func WithBranchLengths(enabled bool) Option {
	return func(c *config) { c.branchLengths = enabled }
}

// Render serializes t starting from its unique root into a Newick
// string terminated by ";". A leaf with a non-empty Duplicates set is
// rendered as a nested multifurcation group "(name,dup1,dup2,...)"
// standing in for the zero-length parent the deduplication step
// collapsed it under.
func Render(t *tree.Tree, opts ...Option) string {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var sb strings.Builder
	writeNode(&sb, t, t.Root(), cfg)
	sb.WriteByte(';')

	return sb.String()
}

func writeNode(sb *strings.Builder, t *tree.Tree, idx int, cfg config) {
	n := t.Nodes[idx]
	if n.Leaf {
		writeLeaf(sb, n)
		return
	}

	sb.WriteByte('(')
	writeChild(sb, t, n.Left, cfg)
	sb.WriteByte(',')
	writeChild(sb, t, n.Right, cfg)
	sb.WriteByte(')')
}

func writeChild(sb *strings.Builder, t *tree.Tree, idx int, cfg config) {
	writeNode(sb, t, idx, cfg)
	if cfg.branchLengths {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(t.Nodes[idx].BranchLength, 'g', -1, 64))
	}
}

func writeLeaf(sb *strings.Builder, n *tree.Node) {
	if len(n.Duplicates) == 0 {
		sb.WriteString(n.Name)
		return
	}

	sb.WriteByte('(')
	sb.WriteString(n.Name)
	for _, d := range n.Duplicates {
		sb.WriteByte(',')
		sb.WriteString(d)
	}
	sb.WriteByte(')')
}
