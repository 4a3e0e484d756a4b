// Package prune implements distance-based pruning and leaf classification
// of phylogenetic trees.
//
// ByDistance makes two preorder passes over the tree. The first detaches
// every unprotected child of a node whose children's mean branch length
// falls below the caller's threshold. The second assigns each surviving
// leaf one of the three rendering styles: type strain, sample strain, or
// default.
//
// Example:
//
//	t, _ := newick.Load("full_alignment.treefile")
//	prune.ByDistance(t, 0.0007,
//	    prune.NewStrainSet("Porcine_parvovirus_1_1-0004394_BEL_Dec2022_30X"),
//	    prune.NewStrainSet("PPV1_IDT_DEU_1964", "PPV1_NADL2_USA_1964"))
package prune
