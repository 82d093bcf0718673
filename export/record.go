package export

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// Separator between fields of an export line.
	Separator = ","
	// MinFields is the smallest field count that still carries a hash.
	MinFields = 3
)

// Record is one line of an export file.
type Record struct {
	UUID  string   // field 0, the item identifier
	Index string   // field 1, index_num; not used for detection
	MD5   string   // field 2, the content hash
	Extra []string // fields 3 and up (date, sec_id, seq_num, version_num), carried verbatim
}

// ParseRecord splits a single export line. Line terminators are stripped
// before splitting so the hash never carries a trailing newline.
func ParseRecord(line string) (Record, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, Separator)
	if len(fields) < MinFields {
		return Record{}, fmt.Errorf("%w: got %d in %q", ErrShortRecord, len(fields), line)
	}
	rec := Record{
		UUID:  fields[0],
		Index: fields[1],
		MD5:   fields[2],
	}
	if len(fields) > MinFields {
		rec.Extra = slices.Clone(fields[MinFields:])
	}
	return rec, nil
}

// Fields returns every field of the record in line order.
func (r Record) Fields() []string {
	return append([]string{r.UUID, r.Index, r.MD5}, r.Extra...)
}

// String renders the record back into its line form, without a terminator.
func (r Record) String() string {
	return strings.Join(r.Fields(), Separator)
}
