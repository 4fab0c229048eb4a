//go:build !rp2040 && !rp2350

package console

import (
	"io"
	"os"
)

// Open returns stderr on host builds; baud is ignored.
func Open(uint32) (io.Writer, error) { return os.Stderr, nil }
