package export

import (
	"fmt"
	"io"
)

// Options configures a single reporter run.
type Options struct {
	File string // path to the export file
}

// WriteReport prints one line per identifier followed by the repeated set.
func (r *Registry) WriteReport(w io.Writer) error {
	for _, uuid := range r.order {
		if _, err := fmt.Fprintf(w, "md5: %s len: %d\n", uuid, r.Len(uuid)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, r.repeated.String())
	return err
}

// Run scans opts.File and writes the report to w. Nothing is written when
// the scan fails.
func Run(w io.Writer, opts Options) error {
	reg, err := ScanFile(opts.File)
	if err != nil {
		return err
	}
	return reg.WriteReport(w)
}
