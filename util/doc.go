// Package util provides filesystem and hashing helpers shared by the store tools.
//
// Key Components:
//
// Content Hashing:
//   - MD5 digests of content files, matching the md5_sum column of store exports
//   - Streaming hashing from any io.Reader
//
// Directory Listing:
//   - Immediate subdirectory listing (item identifier directories)
//   - Immediate file listing (content files of one item)
//   - Recursive file counting for whole trees
//
// All helpers are synchronous and return sentinel errors from errors.go where a
// caller may want to branch with errors.Is().
package util
