// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzma

/*
Package lzma implements LZMA decompression: range coder, adaptive
probability model, 12-state symbol decoder, length/distance sub-coders,
dictionary reconstruction and an incremental driver compatible with the
reference decoder's DecodeToDic/DecodeToBuf shape. Compression, LZMA2
framing and 7-zip archive parsing are out of scope.

# One-shot

Decompress parses the standard 5-byte properties header (LC/LP/PB plus
dictionary size) from the front of src and decodes until the end-of-stream
marker:

	out, err := lzma.Decompress(src)

DecompressN decodes a known-length prefix when properties are supplied out
of band (e.g. framed back-to-back streams):

	out, nRead, err := lzma.DecompressN(src, props, expectedLen)

# Streaming

NewReader wraps an io.Reader for incremental decoding:

	r, err := lzma.NewReader(src, props, nil)
	n, err := r.Read(buf)

# Incremental driver

For callers that need direct control over output chunking (e.g. a custom
transport), NewDecoder exposes DecodeToDic/DecodeToBuf directly:

	dec, err := lzma.NewDecoder(props)
	n, status, err := dec.DecodeToDic(dicLimit, src, lzma.FinishAny)
*/
package lzma
