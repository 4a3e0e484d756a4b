package newick

import (
	"github.com/tjvneste/Tree-visualization/internal/mmfile"
	"github.com/tjvneste/Tree-visualization/phylo"
)

// Load reads and parses the Newick file at path. The file is memory-mapped
// where the platform supports it; the parser copies every label it keeps,
// so the returned tree does not alias the mapping.
func Load(path string) (*phylo.Tree, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, &phylo.Error{Kind: phylo.ErrKindIO, Msg: "open newick file", Err: err}
	}
	defer cleanup()

	return Parse(data)
}
