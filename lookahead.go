// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzma

package lzma

// tryDummy classifies the next packet in src[startPos:] without mutating
// the decoder's real state: it runs the same decodePacket core used by the
// real driver over a cloned range-coder value and a cloned probability
// table, reading (but never writing) the real dictionary for literal
// context. It reports the packet kind, whether input ran out before the
// packet could be fully decoded, and — for a fresh match — whether its
// distance is the end-of-stream sentinel.
//
// This backs two call sites with different needs: the incremental driver
// (C9) uses the returned error to decide whether a full packet is
// available yet, and the FinishEnd output-limit guard uses eos to decide
// whether to consume an end-of-stream marker sitting at dicLimit and
// kind==packetMatch to decide whether stopping there is allowed.
func (d *Decoder) tryDummy(src []byte, startPos int) (packet, error) {
	rc := d.rc
	probs := d.probs.clone()
	reps := d.reps
	state := d.state
	pos := startPos

	return decodePacket(&rc, probs, &state, &reps, d.win.processedPos, d.posMask, d.win.byteAt, src, &pos)
}
