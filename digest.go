// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzma

package lzma

import "hash/crc32"

// ChecksumIEEE returns the IEEE CRC-32 of data, used by the compatibility
// corpus tests to compare decoded output against precomputed fixture
// checksums without keeping large reference files in the repository.
func ChecksumIEEE(data []byte) uint32 {
	return crc32.ChecksumIEEE(data)
}
