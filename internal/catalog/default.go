package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

//go:embed courses/grammar-journey.yaml
var builtinCourse []byte

var builtin = sync.OnceValues(func() (*Catalog, error) {
	c, err := Load(bytes.NewReader(builtinCourse))
	if err != nil {
		return nil, fmt.Errorf("built-in course: %w", err)
	}
	return c, nil
})

// Default returns the course shipped with the binary.
func Default() (*Catalog, error) {
	return builtin()
}
