package store

import (
	"fmt"
	"io"

	"github.com/black-library/store-tools/util"
)

// Options configures a single walker run.
type Options struct {
	InputFields string // path to the JSON configuration
}

// Item is one item identifier directory and the files directly inside it.
type Item struct {
	Path  string
	Files []string
}

// ListItems returns the item identifier directories under dir.
func ListItems(dir string) ([]string, error) {
	return util.ListSubdirs(dir)
}

// ListFiles returns the content files directly inside an item directory.
func ListFiles(dir string) ([]string, error) {
	return util.ListFiles(dir)
}

// Items lists every item under the configured store along with its files.
func Items(cfg Config) ([]Item, error) {
	dirs, err := ListItems(cfg.StoreDirectory)
	if err != nil {
		return nil, err
	}
	items := make([]Item, 0, len(dirs))
	for _, d := range dirs {
		files, err := ListFiles(d)
		if err != nil {
			return nil, err
		}
		items = append(items, Item{Path: d, Files: files})
	}
	return items, nil
}

// Walk prints the item count, then a Processing/Found pair for each item.
func Walk(w io.Writer, cfg Config) error {
	dirs, err := ListItems(cfg.StoreDirectory)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "UUID list length: %d\n", len(dirs)); err != nil {
		return err
	}
	for _, d := range dirs {
		if _, err := fmt.Fprintf(w, "Processing %s\n", d); err != nil {
			return err
		}
		files, err := ListFiles(d)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Found %d files\n", len(files)); err != nil {
			return err
		}
	}
	return nil
}

// Run loads the configuration named by opts and walks the store.
func Run(w io.Writer, opts Options) error {
	cfg, err := LoadConfig(opts.InputFields)
	if err != nil {
		return err
	}
	return Walk(w, cfg)
}
