//go:build windows

package mmfile

import (
	"os"
)

// Map reads the whole treefile; Newick inputs are small enough on Windows
// that a plain read beats carrying the CreateFileMapping ceremony.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
