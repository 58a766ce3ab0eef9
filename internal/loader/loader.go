// Package loader handles ROM file loading operations.
package loader

import (
	"fmt"
	"os"
)

// LoadFile reads a CHIP-8 ROM image from disk. ROM files are raw
// instruction and data bytes without any header; validating the image
// against available interpreter memory happens at load time, not here.
func LoadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("file %s is empty", path)
	}
	return data, nil
}
