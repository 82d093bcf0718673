package store

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/black-library/store-tools/export"
	"github.com/black-library/store-tools/util"
)

// Export hashes every content file in the store and writes one md5_sum row per
// file. Rows are grouped by item in listing order; index_num is the file's
// position within its item.
func Export(w io.Writer, cfg Config, now time.Time) error {
	items, err := Items(cfg)
	if err != nil {
		return err
	}
	date := strconv.FormatInt(now.Unix(), 10)
	ew := export.NewWriter(w)
	for _, item := range items {
		uuid := filepath.Base(item.Path)
		for i, f := range item.Files {
			hash, err := util.GetFileHash(f)
			if err != nil {
				return fmt.Errorf("hashing %s: %w", f, err)
			}
			idx := strconv.Itoa(i)
			rec := export.Record{
				UUID:  uuid,
				Index: idx,
				MD5:   hash,
				Extra: []string{date, strings.ReplaceAll(filepath.Base(f), export.Separator, "_"), idx, "0"},
			}
			if err := ew.WriteRecord(rec); err != nil {
				return err
			}
		}
	}
	return ew.Flush()
}
