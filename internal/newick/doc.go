/*
Package newick reads and writes phylogenetic trees in the Newick format.
The format understood is the conventional one established here:
http://evolution.genetics.washington.edu/phylip/newick_doc.html, including
quoted labels. Comments in square brackets are not supported.

Parsing produces the mutable tree model from the phylo package. Leaf labels
are normalized to Unicode NFC so strain names compare equal regardless of
which upstream tool produced the file.
*/
package newick
