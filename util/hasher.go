package util

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
)

// EmptyMD5 is the digest of zero bytes of content.
const EmptyMD5 = "d41d8cd98f00b204e9800998ecf8427e"

// Hashes a file and returns the MD5 digest as a lowercase hex string,
// the same form the content store records in its md5_sum table.
func GetFileHash(path string) (hash string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrExpectedFile
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return GetHash(file)
}

// GetHash calculates the MD5 hash of data from an io.Reader.
// It returns the hash as a hexadecimal string.
func GetHash(r io.Reader) (string, error) {
	h := md5.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
