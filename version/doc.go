// Package version provides version information and build metadata for bltools.
//
// Version Information Sources:
//   - Compile-time variables (Version, Commit, Date) set via -ldflags
//   - Runtime build info from debug.ReadBuildInfo()
//   - Fallback defaults for development builds
//
// Release builds set the variables with:
//
//	-ldflags "-X github.com/black-library/store-tools/version.Version=v1.0.0 -X github.com/black-library/store-tools/version.Commit=abc123"
//
// The root command and both standalone binaries report the same string from
// GetFullVersion().
package version
