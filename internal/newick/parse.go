package newick

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tjvneste/Tree-visualization/phylo"
)

const (
	terminal    = ';'
	descStart   = '('
	descEnd     = ')'
	descDelim   = ','
	lengthStart = ':'
	quote       = '\''
)

// unquotedBanned lists the characters that end (or may not appear in) an
// unquoted label.
const unquotedBanned = " \t\n\r()[]':;,"

type parser struct {
	data []byte
	pos  int
	line int
}

// Parse reads a single tree from data. Anything but whitespace after the
// terminating semicolon is an error.
func Parse(data []byte) (*phylo.Tree, error) {
	p := &parser{data: data, line: 1}
	p.skipSpace()
	if p.eof() {
		return nil, p.errorf("empty input, expected a tree")
	}

	root := &phylo.Node{}
	if err := p.subtree(root); err != nil {
		return nil, err
	}
	if !p.accept(terminal) {
		return nil, p.errorf("expected a terminal %q, got %q", terminal, p.peek())
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("trailing input after tree: %q", p.peek())
	}
	return &phylo.Tree{Root: root}, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*phylo.Tree, error) {
	return Parse([]byte(s))
}

// subtree parses either a leaf (label, optional length) or an internal node
// (parenthesized descendant list, then optional label and length) into n.
func (p *parser) subtree(n *phylo.Node) error {
	p.skipSpace()
	if p.accept(descStart) {
		for {
			child := &phylo.Node{}
			if err := p.subtree(child); err != nil {
				return err
			}
			n.AddChild(child)
			p.skipSpace()
			if p.accept(descDelim) {
				continue
			}
			break
		}
		if !p.accept(descEnd) {
			return p.errorf("expected %q or %q in descendant list, got %q",
				descDelim, descEnd, p.peek())
		}
	}

	label, err := p.label()
	if err != nil {
		return err
	}
	n.Name = label

	p.skipSpace()
	if p.accept(lengthStart) {
		length, err := p.length()
		if err != nil {
			return err
		}
		n.Dist = length
	}
	return nil
}

// label reads an optional quoted or unquoted label. A missing label yields
// the empty string.
func (p *parser) label() (string, error) {
	p.skipSpace()
	if p.accept(quote) {
		return p.quotedLabel()
	}
	start := p.pos
	for !p.eof() && !strings.ContainsRune(unquotedBanned, rune(p.data[p.pos])) {
		p.pos++
	}
	return norm.NFC.String(string(p.data[start:p.pos])), nil
}

// quotedLabel reads up to the closing quote; a doubled quote inside the
// label stands for a literal quote.
func (p *parser) quotedLabel() (string, error) {
	var b strings.Builder
	for {
		if p.eof() {
			return "", p.errorf("unterminated quoted label")
		}
		c := p.data[p.pos]
		p.pos++
		if c == '\n' {
			p.line++
		}
		if c == quote {
			if !p.eof() && p.data[p.pos] == quote {
				p.pos++
				b.WriteByte(quote)
				continue
			}
			return norm.NFC.String(b.String()), nil
		}
		b.WriteByte(c)
	}
}

// length reads a branch length after the colon has been consumed.
func (p *parser) length() (float64, error) {
	p.skipSpace()
	start := p.pos
	for !p.eof() && strings.ContainsRune("0123456789+-.eE", rune(p.data[p.pos])) {
		p.pos++
	}
	text := string(p.data[start:p.pos])
	if text == "" {
		return 0, p.errorf("expected a branch length after %q", lengthStart)
	}
	length, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, p.errorf("invalid branch length %q", text)
	}
	return length, nil
}

func (p *parser) eof() bool { return p.pos >= len(p.data) }

// peek returns the next byte without consuming it, or 0 at end of input.
func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.data[p.pos]
}

// accept consumes the next byte if it equals c.
func (p *parser) accept(c byte) bool {
	if p.eof() || p.data[p.pos] != c {
		return false
	}
	p.pos++
	return true
}

func (p *parser) skipSpace() {
	for !p.eof() {
		switch p.data[p.pos] {
		case '\n':
			p.line++
		case ' ', '\t', '\r':
		default:
			return
		}
		p.pos++
	}
}

func (p *parser) errorf(format string, v ...interface{}) error {
	return &phylo.Error{
		Kind: phylo.ErrKindParse,
		Msg:  fmt.Sprintf("newick: line %d: %s", p.line, fmt.Sprintf(format, v...)),
	}
}
