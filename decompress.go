// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzma

package lzma

// oneShotChunkSize is the internal output buffer size used to drain a
// Decoder during one-shot Decompress calls; unrelated to any wire format
// limit.
const oneShotChunkSize = 32 * 1024

// Decompress decompresses a complete LZMA stream (5-byte properties
// header followed by range-coded data, terminated by the end-of-stream
// marker). Returns the decompressed bytes, growing the output buffer as
// needed since LZMA carries no required output-length option the way
// LZO1X's OutLen does.
func Decompress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	props, err := ParseProperties(src)
	if err != nil {
		return nil, err
	}

	d := acquireDecoder(props)
	defer releaseDecoder(d)

	return decompressAll(d, src[5:])
}

// DecompressN decompresses up to outLen bytes (fewer if the end-of-stream
// marker comes first) starting at src (which
// must already be positioned past any properties header the caller
// parsed separately), and returns the decoded bytes along with the number
// of input bytes consumed — for back-to-back framed streams, mirroring
// the teacher's DecompressN shape.
func DecompressN(src []byte, props Properties, outLen int) ([]byte, int, error) {
	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}
	if err := props.Validate(); err != nil {
		return nil, 0, err
	}

	d := acquireDecoder(props)
	defer releaseDecoder(d)

	dest := make([]byte, outLen)
	nOut, nIn, status, err := d.DecodeToBuf(dest, src, FinishAny)
	if err != nil {
		return nil, 0, err
	}
	if status == StatusNeedsMoreInput {
		return nil, 0, ErrCorruptStream
	}
	return dest[:nOut], nIn, nil
}

// decompressAll drains d until it reports FINISHED_WITH_MARK, growing out
// in oneShotChunkSize increments.
func decompressAll(d *Decoder, src []byte) ([]byte, error) {
	var out []byte
	chunk := make([]byte, oneShotChunkSize)
	srcPos := 0

	for {
		nOut, nIn, status, err := d.DecodeToBuf(chunk, src[srcPos:], FinishAny)
		out = append(out, chunk[:nOut]...)
		srcPos += nIn
		if err != nil {
			return nil, err
		}

		switch status {
		case StatusFinishedWithMark:
			return out, nil
		case StatusNeedsMoreInput:
			return nil, ErrCorruptStream
		}
	}
}
