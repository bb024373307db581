package planner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cwbudde/algo-rdft/internal/fftypes"
)

// ErrMalformedWisdom is returned when imported wisdom cannot be parsed.
var ErrMalformedWisdom = errors.New("planner: malformed wisdom")

const wisdomHeader = "# algo-rdft wisdom v2"

// WisdomKey identifies a planning decision: a problem shape planned under a
// given policy, ranking mode and SIMD level. Estimated and measured winners
// never share an entry.
type WisdomKey struct {
	Signature string
	Flags     Flags
	Mode      fftypes.PlannerMode
	SIMD      fftypes.SIMDLevel
}

// WisdomEntry records which solver won for a key.
type WisdomEntry struct {
	Key       WisdomKey
	Solver    string
	Cost      float64
	Timestamp time.Time
}

// Wisdom caches winning solvers across planning sessions.
// It is safe for concurrent use.
type Wisdom struct {
	mu      sync.RWMutex
	entries map[WisdomKey]WisdomEntry
}

// NewWisdom creates an empty wisdom cache.
func NewWisdom() *Wisdom {
	return &Wisdom{entries: make(map[WisdomKey]WisdomEntry)}
}

// Store records entry, replacing any previous entry for the same key.
// A zero Timestamp is set to the current time.
func (w *Wisdom) Store(entry WisdomEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries[entry.Key] = entry
}

// Lookup returns the entry for key.
func (w *Wisdom) Lookup(key WisdomKey) (WisdomEntry, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	entry, ok := w.entries[key]

	return entry, ok
}

// Len returns the number of entries.
func (w *Wisdom) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.entries)
}

// Clear removes all entries.
func (w *Wisdom) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries = make(map[WisdomKey]WisdomEntry)
}

// Entries returns all entries sorted by signature, flags, mode, SIMD level.
func (w *Wisdom) Entries() []WisdomEntry {
	w.mu.RLock()
	out := make([]WisdomEntry, 0, len(w.entries))

	for _, e := range w.entries {
		out = append(out, e)
	}
	w.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Key.Signature != out[j].Key.Signature {
			return out[i].Key.Signature < out[j].Key.Signature
		}

		if out[i].Key.Flags != out[j].Key.Flags {
			return out[i].Key.Flags < out[j].Key.Flags
		}

		if out[i].Key.Mode != out[j].Key.Mode {
			return out[i].Key.Mode < out[j].Key.Mode
		}

		return out[i].Key.SIMD < out[j].Key.SIMD
	})

	return out
}

// Export writes the cache as tab-separated lines:
// signature, flags, mode, SIMD level, solver, cost, RFC 3339 timestamp.
func (w *Wisdom) Export(out io.Writer) error {
	bw := bufio.NewWriter(out)

	if _, err := fmt.Fprintln(bw, wisdomHeader); err != nil {
		return err
	}

	for _, e := range w.Entries() {
		_, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%d\t%s\t%s\t%s\n",
			e.Key.Signature, e.Key.Flags, e.Key.Mode, e.Key.SIMD, e.Solver,
			strconv.FormatFloat(e.Cost, 'g', -1, 64),
			e.Timestamp.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Import merges entries written by Export. Blank lines and lines starting
// with '#' are ignored. On a parse error nothing is merged.
func (w *Wisdom) Import(in io.Reader) error {
	var parsed []WisdomEntry

	sc := bufio.NewScanner(in)
	lineNo := 0

	for sc.Scan() {
		lineNo++

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseWisdomLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}

		parsed = append(parsed, entry)
	}

	if err := sc.Err(); err != nil {
		return err
	}

	for _, e := range parsed {
		w.Store(e)
	}

	return nil
}

func parseWisdomLine(line string) (WisdomEntry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 7 {
		return WisdomEntry{}, fmt.Errorf("%w: want 7 fields, got %d", ErrMalformedWisdom, len(fields))
	}

	flags, err := strconv.ParseUint(fields[1], 10, 32)
	if err != nil {
		return WisdomEntry{}, fmt.Errorf("%w: flags: %w", ErrMalformedWisdom, err)
	}

	mode, err := strconv.ParseUint(fields[2], 10, 32)
	if err != nil || fftypes.PlannerMode(mode) > fftypes.PlannerMeasure {
		return WisdomEntry{}, fmt.Errorf("%w: mode %q", ErrMalformedWisdom, fields[2])
	}

	simd, err := strconv.ParseUint(fields[3], 10, 8)
	if err != nil || fftypes.SIMDLevel(simd) > fftypes.SIMDNEON {
		return WisdomEntry{}, fmt.Errorf("%w: simd level %q", ErrMalformedWisdom, fields[3])
	}

	cost, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return WisdomEntry{}, fmt.Errorf("%w: cost: %w", ErrMalformedWisdom, err)
	}

	ts, err := time.Parse(time.RFC3339Nano, fields[6])
	if err != nil {
		return WisdomEntry{}, fmt.Errorf("%w: timestamp: %w", ErrMalformedWisdom, err)
	}

	if fields[0] == "" || fields[4] == "" {
		return WisdomEntry{}, fmt.Errorf("%w: empty signature or solver", ErrMalformedWisdom)
	}

	return WisdomEntry{
		Key: WisdomKey{
			Signature: fields[0],
			Flags:     Flags(flags),
			Mode:      fftypes.PlannerMode(mode),
			SIMD:      fftypes.SIMDLevel(simd),
		},
		Solver:    fields[4],
		Cost:      cost,
		Timestamp: ts,
	}, nil
}
