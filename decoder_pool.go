// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzma

package lzma

import "sync"

// decoderPool reuses *Decoder instances across one-shot
// Decompress/DecompressN calls, mirroring the teacher's
// slidingWindowDictPool acquire/release pattern. The probability table and
// window are not reused: releaseDecoder drops them and acquireDecoder
// allocates fresh ones.
var decoderPool = sync.Pool{
	New: func() any {
		return &Decoder{}
	},
}

// acquireDecoder gets a decoder from the pool (or allocates a new one) and
// fully initializes it for props.
func acquireDecoder(props Properties) *Decoder {
	d := decoderPool.Get().(*Decoder)
	d.initWith(props)
	return d
}

// releaseDecoder returns a decoder to the pool. Large slices are dropped so
// the pool doesn't pin memory sized for one stream's dictionary against
// the needs of the next.
func releaseDecoder(d *Decoder) {
	if d == nil {
		return
	}
	d.win = nil
	d.probs = nil
	decoderPool.Put(d)
}
