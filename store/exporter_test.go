package store

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/black-library/store-tools/export"
)

func TestExport(t *testing.T) {
	root := makeStore(t)

	var buf bytes.Buffer
	now := time.Unix(1700000000, 0)
	if err := Export(&buf, Config{StoreDirectory: root}, now); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Export() wrote %d rows, want 2:\n%s", len(lines), buf.String())
	}
	rec, err := export.ParseRecord(lines[0])
	if err != nil {
		t.Fatalf("ParseRecord() error = %v", err)
	}
	if rec.UUID != "id1" || rec.Index != "0" {
		t.Errorf("first row = %+v", rec)
	}
	// md5("alpha")
	if rec.MD5 != "2c1743a391305fbf367df8e4f069f9f9" {
		t.Errorf("first row hash = %s", rec.MD5)
	}
	fields := rec.Fields()
	if len(fields) != 7 || fields[3] != "1700000000" || fields[4] != "a.html" {
		t.Errorf("first row fields = %v", fields)
	}
}

func TestExport_DuplicatesReachReport(t *testing.T) {
	root := makeStore(t)
	var buf bytes.Buffer
	cfg := Config{StoreDirectory: root}
	if err := Export(&buf, cfg, time.Now()); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	reg, err := export.Scan(&buf)
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if reg.Len("id1") != 2 {
		t.Errorf("Len(id1) = %d, want 2", reg.Len("id1"))
	}
	if reg.Repeated().Len() != 0 {
		t.Errorf("unexpected repeats %v", reg.Repeated().Sorted())
	}
}
