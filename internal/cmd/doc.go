// Package cmd provides the command-line interface implementation for bltools.
//
// Each command lives in its own file with a constructor returning a
// *cobra.Command. The constructors are shared between the bltools root
// command and the standalone binaries under cmd/, so find-repeated-md5 and
// process-all-files behave identically either way.
//
// Commands parse their flags into an options value from the export or store
// package and hand it to that package's Run function; any error ends the
// process through log.Fatalf with a non-zero status.
package cmd
