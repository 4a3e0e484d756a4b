// Package phylo implements the rooted, mutable phylogenetic tree model used
// by the pruning and rendering packages.
//
// # Overview
//
// A tree is a hierarchy of Node values linked by child pointers. Each node
// carries the name of its taxon (leaves only, in practice), the branch
// length to its parent, and an optional rendering Style assigned by the
// classification pass in the prune package.
//
// The model is deliberately small: preorder traversal, subtree detachment,
// leaf queries, and summary statistics. Trees are built by the Newick codec
// in internal/newick and consumed by phylo/prune, phylo/render and
// phylo/printer.
//
// # Mutation during traversal
//
// Walk re-reads each node's child list as the traversal reaches it, so
// detaching nodes inside the subtree of the node currently being visited is
// observed by the remainder of the walk. This is what the pruning pass
// relies on.
//
// # Thread safety
//
// Trees are not safe for concurrent use. A tree is exclusively owned by the
// goroutine mutating it.
package phylo
