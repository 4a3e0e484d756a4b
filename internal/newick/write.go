package newick

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tjvneste/Tree-visualization/phylo"
)

// Marshal serializes a tree to Newick text, terminated by a semicolon and a
// newline. Style annotations are not representable in Newick and are
// dropped.
func Marshal(t *phylo.Tree) ([]byte, error) {
	if t == nil || t.Root == nil {
		return nil, phylo.ErrEmptyTree
	}
	buf := new(bytes.Buffer)
	writeNode(buf, t.Root, true)
	buf.WriteByte(terminal)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Write serializes a tree to w.
func Write(w io.Writer, t *phylo.Tree) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile serializes a tree to path.
func WriteFile(path string, t *phylo.Tree) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &phylo.Error{Kind: phylo.ErrKindIO, Msg: "write newick file", Err: err}
	}
	return nil
}

func writeNode(buf *bytes.Buffer, n *phylo.Node, root bool) {
	if len(n.Children) > 0 {
		buf.WriteByte(descStart)
		for i, c := range n.Children {
			if i > 0 {
				buf.WriteByte(descDelim)
			}
			writeNode(buf, c, false)
		}
		buf.WriteByte(descEnd)
	}
	buf.WriteString(quoteLabel(n.Name))
	if !root {
		buf.WriteByte(lengthStart)
		buf.WriteString(strconv.FormatFloat(n.Dist, 'g', -1, 64))
	}
}

// quoteLabel wraps a label in single quotes when it contains characters
// that would be misparsed unquoted. Embedded quotes are doubled.
func quoteLabel(label string) string {
	if label == "" || !strings.ContainsAny(label, unquotedBanned) {
		return label
	}
	return string(quote) +
		strings.ReplaceAll(label, string(quote), string(quote)+string(quote)) +
		string(quote)
}
