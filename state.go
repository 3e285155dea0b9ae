// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzma

package lzma

// The 12-state machine tracks the kind of the last few packets so the
// literal decoder knows whether to mix in the matched-byte context. States
// 0-6 follow literals or short sequences of them; 7-11 follow a match or
// rep and therefore select the matched-literal sub-coder (state >= 7) for
// the next literal, after which the state is always back below 7.

// updateStateLiteral returns the next state after decoding a literal.
func updateStateLiteral(state uint32) uint32 {
	switch {
	case state < 4:
		return 0
	case state < 10:
		return state - 3
	default:
		return state - 6
	}
}

// updateStateMatch returns the next state after decoding a fresh match.
func updateStateMatch(state uint32) uint32 {
	if state < 7 {
		return 7
	}
	return 10
}

// updateStateRep returns the next state after decoding a rep match.
func updateStateRep(state uint32) uint32 {
	if state < 7 {
		return 8
	}
	return 11
}

// updateStateShortRep returns the next state after decoding a short rep.
func updateStateShortRep(state uint32) uint32 {
	if state < 7 {
		return 9
	}
	return 11
}

// litState combines the low bits of the output position (weighted by LP)
// with the high bits of the previous output byte (weighted by LC) into the
// index selecting which of the literal sub-coder's 0x300-entry blocks to
// use.
func litState(processedPos uint32, prevByte byte, lc, lp int) uint32 {
	posLow := processedPos & ((1 << uint(lp)) - 1)
	return (posLow << uint(lc)) | (uint32(prevByte) >> uint(8-lc))
}
