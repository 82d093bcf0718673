// Package main provides the bltools command-line interface.
//
// bltools collects the maintenance utilities for a black-library content
// store. The store keeps one directory per item identifier, and an export of
// its md5_sum table lists the hash of every content file.
//
// The main binary supports multiple subcommands:
//   - find-repeated-md5: Report hashes that repeat within one item of an export file
//   - process-all-files: Count the files directly inside every item directory
//   - export: Hash the store and write an export file
//   - seed: Generate a synthetic store for testing
//   - count: Count files in directory trees
//
// The first two are also built as standalone binaries under cmd/.
package main
