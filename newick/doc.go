// Package newick serializes a converged tree into the parenthesized,
// comma-delimited Newick format: recursive descent from the root,
// leaves rendered by name, duplicate sets rendered as a nested
// multifurcation group, terminated by ";".
package newick
