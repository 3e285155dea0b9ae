// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzma

package lzma

import "encoding/binary"

// Property bounds per the LZMA wire format.
const (
	minLC = 0
	maxLC = 8
	minLP = 0
	maxLP = 4
	minPB = 0
	maxPB = 4

	// minDicSize is the smallest dictionary size the decoder will honor;
	// smaller values are rounded up (matches the reference decoder's
	// "never less than 4 KiB" behavior).
	minDicSize = 1 << 12
)

// Properties holds the decoded LC/LP/PB triple and dictionary size that
// precede an LZMA stream. The standalone encoding is 5 bytes: one packed
// byte for LC/LP/PB followed by a 4-byte little-endian dictionary size.
type Properties struct {
	LC int
	LP int
	PB int

	// DicSize is the dictionary size in bytes, as recorded in the stream
	// header. The decoder's actual window is never smaller than
	// minDicSize regardless of what's recorded here.
	DicSize uint32
}

// ParseProperties decodes the 5-byte LZMA property header: a packed
// LC/LP/PB byte followed by a little-endian uint32 dictionary size.
func ParseProperties(b []byte) (Properties, error) {
	if len(b) < 5 {
		return Properties{}, ErrPropertiesTooShort
	}

	props, err := propertiesFromByte(b[0])
	if err != nil {
		return Properties{}, err
	}
	props.DicSize = binary.LittleEndian.Uint32(b[1:5])

	return props, nil
}

// propertiesFromByte unpacks LC/LP/PB from the single properties byte used
// by both the standalone 5-byte header and 7-zip/xz container encodings:
// d = (pb * 5 + lp) * 9 + lc.
func propertiesFromByte(d byte) (Properties, error) {
	if d >= 9*5*5 {
		return Properties{}, ErrInvalidProperties
	}

	v := int(d)
	lc := v % 9
	v /= 9
	lp := v % 5
	v /= 5
	pb := v

	return Properties{LC: lc, LP: lp, PB: pb}, nil
}

// Byte packs LC/LP/PB back into the single properties byte.
func (p Properties) Byte() byte {
	return byte((p.PB*5+p.LP)*9 + p.LC)
}

// Validate checks LC/LP/PB are within the ranges this decoder supports.
func (p Properties) Validate() error {
	if p.LC < minLC || p.LC > maxLC {
		return ErrInvalidProperties
	}
	if p.LP < minLP || p.LP > maxLP {
		return ErrInvalidProperties
	}
	if p.PB < minPB || p.PB > maxPB {
		return ErrInvalidProperties
	}
	return nil
}

// windowSize returns the decoder's actual ring buffer size for this
// dictionary size, clamped to minDicSize.
func (p Properties) windowSize() uint32 {
	if p.DicSize < minDicSize {
		return minDicSize
	}
	return p.DicSize
}
