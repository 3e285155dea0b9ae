// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzma

package lzma

import (
	"os"
	"path/filepath"
	"testing"
)

// TestCompatibility_LzmaCorpus mirrors the teacher's directory-of-fixtures
// compatibility check: it looks for externally-supplied *.lzma streams next
// to their decompressed checksums and skips cleanly when the corpus isn't
// present (it ships separately from the module, same as the teacher's
// vendored lzokay-native-rs test-data directory).
func TestCompatibility_LzmaCorpus(t *testing.T) {
	compressedDir := filepath.Join("testdata", "corpus", "compressed")
	sumsDir := filepath.Join("testdata", "corpus", "sums")

	if _, err := os.Stat(compressedDir); err != nil {
		t.Skipf("compat corpus not found: %v", err)
	}

	entries, err := os.ReadDir(compressedDir)
	if err != nil {
		t.Fatalf("ReadDir(%q): %v", compressedDir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lzma" {
			continue
		}

		name := entry.Name()
		t.Run(name, func(t *testing.T) {
			compressedPath := filepath.Join(compressedDir, name)
			compressed, err := os.ReadFile(compressedPath)
			if err != nil {
				t.Fatalf("ReadFile(%q): %v", compressedPath, err)
			}

			sumPath := filepath.Join(sumsDir, name[:len(name)-len(".lzma")]+".crc32")
			wantSum, err := os.ReadFile(sumPath)
			if err != nil {
				t.Fatalf("ReadFile(%q): %v", sumPath, err)
			}

			out, err := Decompress(compressed)
			if err != nil {
				t.Fatalf("Decompress(%q): %v", name, err)
			}

			gotSum := ChecksumIEEE(out)
			if string(wantSum) != formatCRC32(gotSum) {
				t.Fatalf("checksum mismatch for %q: got=%s want=%s", name, formatCRC32(gotSum), wantSum)
			}
		})
	}
}

func formatCRC32(sum uint32) string {
	const hex = "0123456789abcdef"
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(b)
}
