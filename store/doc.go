// Package store walks a black-library store directory.
//
// A store directory holds one subdirectory per item identifier, and each item
// directory holds that item's content files. The walker reads its location
// from a small JSON configuration file:
//
//	{
//	    "store_directory": "/mnt/black-library/store"
//	}
//
// The configuration must be strict JSON. A file that fails to parse, or that
// lacks store_directory, stops the walk before anything is printed.
package store
