package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// RepeatedSet holds hashes seen more than once for the same identifier.
type RepeatedSet map[string]struct{}

func (s RepeatedSet) add(md5 string) { s[md5] = struct{}{} }

// Contains reports whether md5 repeated within some identifier.
func (s RepeatedSet) Contains(md5 string) bool {
	_, ok := s[md5]
	return ok
}

// Len returns the number of distinct repeated hashes.
func (s RepeatedSet) Len() int { return len(s) }

// Sorted returns the members in lexical order.
func (s RepeatedSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for md5 := range s {
		out = append(out, md5)
	}
	slices.Sort(out)
	return out
}

// String renders the set the way the report prints it: `{'a', 'b'}`, or
// `set()` when empty.
func (s RepeatedSet) String() string {
	if len(s) == 0 {
		return "set()"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, m := range s.Sorted() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("'" + m + "'")
	}
	b.WriteByte('}')
	return b.String()
}

type hashSequence struct {
	hashes []string
	seen   map[string]struct{}
}

// Registry maps item identifiers to the hashes recorded for them.
// Hash order per identifier is file order, duplicates included.
type Registry struct {
	order    []string
	entries  map[string]*hashSequence
	repeated RepeatedSet
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:  make(map[string]*hashSequence),
		repeated: make(RepeatedSet),
	}
}

// Add records md5 for uuid. A hash already recorded for the same identifier
// lands in the repeated set; the hash is appended either way.
func (r *Registry) Add(uuid, md5 string) {
	seq, ok := r.entries[uuid]
	if !ok {
		r.order = append(r.order, uuid)
		r.entries[uuid] = &hashSequence{
			hashes: []string{md5},
			seen:   map[string]struct{}{md5: {}},
		}
		return
	}
	if _, dup := seq.seen[md5]; dup {
		r.repeated.add(md5)
	} else {
		seq.seen[md5] = struct{}{}
	}
	seq.hashes = append(seq.hashes, md5)
}

// AddRecord is Add for a parsed record.
func (r *Registry) AddRecord(rec Record) { r.Add(rec.UUID, rec.MD5) }

// Identifiers returns identifiers in first-seen order.
func (r *Registry) Identifiers() []string { return slices.Clone(r.order) }

// Hashes returns the hash sequence recorded for uuid.
func (r *Registry) Hashes(uuid string) []string {
	seq, ok := r.entries[uuid]
	if !ok {
		return nil
	}
	return slices.Clone(seq.hashes)
}

// Len returns the number of hashes recorded for uuid.
func (r *Registry) Len(uuid string) int {
	seq, ok := r.entries[uuid]
	if !ok {
		return 0
	}
	return len(seq.hashes)
}

// Repeated returns the repeated-hash set.
func (r *Registry) Repeated() RepeatedSet { return r.repeated }

// Scan reads an export stream line by line into a new registry. The first
// malformed line aborts the scan.
func Scan(rd io.Reader) (*Registry, error) {
	reg := NewRegistry()
	sc := bufio.NewScanner(rd)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		rec, err := ParseRecord(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		reg.AddRecord(rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return reg, nil
}

// ScanFile opens path and scans it.
func ScanFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	reg, err := Scan(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}
