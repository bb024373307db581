package algordft

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-rdft/internal/planner"
)

// Wisdom is a type alias for the internal wisdom cache.
// It maps a problem shape and planning policy to the strategy that won.
type Wisdom = planner.Wisdom

// DefaultWisdom is the cache planners use unless PlanOptions.Wisdom is set.
var DefaultWisdom = planner.NewWisdom()

// NewWisdom creates a new empty wisdom cache.
func NewWisdom() *Wisdom {
	return planner.NewWisdom()
}

// ImportWisdom loads wisdom data from a file into DefaultWisdom.
// The file should be in the format produced by ExportWisdom.
func ImportWisdom(filename string) error {
	return ImportWisdomTo(filename, DefaultWisdom)
}

// ImportWisdomTo loads wisdom data from a file into a specific cache.
func ImportWisdomTo(filename string, wisdom *Wisdom) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open wisdom file: %w", err)
	}

	defer f.Close()

	if err := wisdom.Import(f); err != nil {
		return fmt.Errorf("failed to import wisdom: %w", err)
	}

	return nil
}

// ExportWisdom saves DefaultWisdom to a file.
// The file can be loaded later with ImportWisdom.
func ExportWisdom(filename string) error {
	return ExportWisdomTo(filename, DefaultWisdom)
}

// ExportWisdomTo saves a specific wisdom cache to a file.
func ExportWisdomTo(filename string, wisdom *Wisdom) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create wisdom file: %w", err)
	}

	defer file.Close()

	if err := wisdom.Export(file); err != nil {
		return fmt.Errorf("failed to export wisdom: %w", err)
	}

	return nil
}

// ImportWisdomFromString loads wisdom data from a string into DefaultWisdom.
// This is useful for embedding wisdom data in compiled binaries.
func ImportWisdomFromString(data string) error {
	err := DefaultWisdom.Import(strings.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to import wisdom from string: %w", err)
	}

	return nil
}

// ClearWisdom removes all entries from DefaultWisdom.
func ClearWisdom() {
	DefaultWisdom.Clear()
}

// WisdomLen returns the number of entries in DefaultWisdom.
func WisdomLen() int {
	return DefaultWisdom.Len()
}
