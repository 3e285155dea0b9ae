// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzma

package lzma

// packetKind classifies the symbol decodePacket just decoded.
type packetKind int

const (
	packetLiteral packetKind = iota
	packetMatch
	packetRep
	packetShortRep
)

// packet is the result of decoding exactly one LZMA symbol. distance (when
// relevant) is already the actual 1-based back-reference offset
// (raw+1) — the value a window expects, not the raw coded value stored in
// reps[]. eos is set only for a fresh match whose raw distance is the
// end-of-stream sentinel; in that case length/distance are not meaningful.
type packet struct {
	kind     packetKind
	literal  byte
	length   int
	distance uint32
	eos      bool
}

// decodePacket decodes exactly one LZMA packet from src starting at *pos,
// consulting and mutating the given range coder, probability table,
// symbol state and MRU distance queue (reps). It never touches a
// dictionary directly — readByte supplies bytes for the matched-literal
// context, and callers (the real driver or the dummy lookahead) apply the
// resulting packet to their own dictionary, or discard it.
func decodePacket(rc *rangeDecoder, probs *probTable, statePtr *uint32, reps *[4]uint32,
	processedPos uint32, posMask uint32, readByte func(dist int) byte,
	src []byte, pos *int) (packet, error) {

	state := *statePtr
	posState := processedPos & posMask
	state2 := (state << numPosBitsMax) | posState

	bit, err := rc.decodeBit(&probs.isMatch[state2], src, pos)
	if err != nil {
		return packet{}, err
	}

	if bit == 0 {
		ls := litState(processedPos, readByte(1), probs.lc, probs.lp)
		var matchByte byte
		if state >= 7 {
			matchByte = readByte(int(reps[0]) + 1)
		}
		sym, err := decodeLiteral(rc, probs.literalProbs(ls), state, matchByte, src, pos)
		if err != nil {
			return packet{}, err
		}
		*statePtr = updateStateLiteral(state)
		return packet{kind: packetLiteral, literal: sym}, nil
	}

	bit, err = rc.decodeBit(&probs.isRep[state], src, pos)
	if err != nil {
		return packet{}, err
	}

	if bit == 0 {
		// Fresh match: rotate the MRU distance queue, decode length then
		// distance.
		reps[3], reps[2], reps[1] = reps[2], reps[1], reps[0]

		rawLen, err := decodeLen(rc, &probs.lenCoder, posState, src, pos)
		if err != nil {
			return packet{}, err
		}
		lenState := uint32(rawLen)
		if lenState > numLenToPosStates-1 {
			lenState = numLenToPosStates - 1
		}
		dist, err := decodeDist(rc, probs, lenState, src, pos)
		if err != nil {
			return packet{}, err
		}
		reps[0] = dist
		*statePtr = updateStateMatch(state)

		if dist == eosDistance {
			return packet{kind: packetMatch, eos: true}, nil
		}
		return packet{kind: packetMatch, length: rawLen + matchMinLen, distance: dist + 1}, nil
	}

	// Rep match: pick which of the four MRU distances to use.
	bit, err = rc.decodeBit(&probs.isRepG0[state], src, pos)
	if err != nil {
		return packet{}, err
	}

	dist := reps[0]
	if bit == 0 {
		bit, err = rc.decodeBit(&probs.isRep0Long[state2], src, pos)
		if err != nil {
			return packet{}, err
		}
		if bit == 0 {
			*statePtr = updateStateShortRep(state)
			return packet{kind: packetShortRep, length: 1, distance: reps[0] + 1}, nil
		}
		// Falls through to the common length decode below, using
		// dist == reps[0] unchanged.
	} else {
		bit, err = rc.decodeBit(&probs.isRepG1[state], src, pos)
		if err != nil {
			return packet{}, err
		}
		if bit == 0 {
			dist = reps[1]
		} else {
			bit, err = rc.decodeBit(&probs.isRepG2[state], src, pos)
			if err != nil {
				return packet{}, err
			}
			if bit == 0 {
				dist = reps[2]
			} else {
				dist = reps[3]
				reps[3] = reps[2]
			}
			reps[2] = reps[1]
		}
		reps[1] = reps[0]
		reps[0] = dist
	}

	rawLen, err := decodeLen(rc, &probs.repLenCoder, posState, src, pos)
	if err != nil {
		return packet{}, err
	}
	*statePtr = updateStateRep(state)
	return packet{kind: packetRep, length: rawLen + matchMinLen, distance: dist + 1}, nil
}
