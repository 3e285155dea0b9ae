// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzma

package lzma

// decodeLiteral decodes one literal byte. When state >= 7 (the previous
// packet was a match or rep), each bit is first predicted against the
// corresponding bit of matchByte (the byte at distance reps[0]+1 in the
// dictionary); once a predicted bit turns out wrong, the sub-coder falls
// back to the plain (unmixed) tree for the remaining bits.
func decodeLiteral(rc *rangeDecoder, probs []prob, state uint32, matchByte byte, src []byte, pos *int) (byte, error) {
	symbol := uint32(1)

	if state >= 7 {
		m := uint32(matchByte)
		for symbol < 0x100 {
			matchBit := (m >> 7) & 1
			m <<= 1
			idx := ((1 + matchBit) << 8) | symbol
			bit, err := rc.decodeBit(&probs[idx], src, pos)
			if err != nil {
				return 0, err
			}
			symbol = symbol<<1 | bit
			if matchBit != bit {
				break
			}
		}
	}

	for symbol < 0x100 {
		bit, err := rc.decodeBit(&probs[symbol], src, pos)
		if err != nil {
			return 0, err
		}
		symbol = symbol<<1 | bit
	}

	return byte(symbol - 0x100), nil
}
