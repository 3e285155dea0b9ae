// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzma

package lzma

import pkgerrors "github.com/pkg/errors"

// lookaheadMax is the largest number of compressed bytes a single LZMA
// symbol can ever need (range-coder init aside): worst case is a fresh
// match's isMatch/isRep/length/distance decision tree, each bit possibly
// triggering a renormalization read. 20 bytes of margin is the same bound
// the reference decoder uses to avoid ever needing to resume mid-symbol.
const lookaheadMax = 20

// Decoder is the incremental LZMA decoder: range coder, probability
// model, symbol state and dictionary bundled together, driven by
// DecodeToDic/DecodeToBuf across as many calls as the caller has input
// for.
type Decoder struct {
	props   Properties
	posMask uint32

	win   *window
	probs *probTable

	rc    rangeDecoder
	state uint32
	reps  [4]uint32

	rcInit     bool
	remainLen  int
	remainDist uint32
	eosPending bool

	scratch    [lookaheadMax]byte
	scratchLen int

	failed bool
}

// NewDecoder allocates and initializes a decoder for the given properties.
func NewDecoder(props Properties) (*Decoder, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}
	d := &Decoder{}
	d.initWith(props)
	return d, nil
}

func (d *Decoder) initWith(props Properties) {
	d.props = props
	d.posMask = (1 << uint(props.PB)) - 1
	d.win = newWindow(props.windowSize())
	d.probs = newProbTable(props.LC, props.LP)
	d.resetState()
}

func (d *Decoder) resetState() {
	d.rc = rangeDecoder{}
	d.state = 0
	d.reps = [4]uint32{0, 0, 0, 0}
	d.probs.reset()
	d.rcInit = false
	d.remainLen = 0
	d.remainDist = 0
	d.eosPending = false
	d.scratchLen = 0
	d.failed = false
}

// Reset reinitializes the decoder, mirroring init_dic_and_state: resetDic
// clears the output window, resetState clears the adaptive probability
// model and symbol state. Calling with both true (the common case between
// unrelated streams) is equivalent to a fresh NewDecoder.
func (d *Decoder) Reset(resetDic, resetState bool) {
	if resetDic {
		d.win.reset()
	}
	if resetState {
		d.resetState()
	}
}

// stopReason records why the inner decode loop returned.
type stopReason int

const (
	stopLimit stopReason = iota
	stopInput
	stopEOS
)

// runLoop decodes packets from buf starting at *pos until dicLimit is
// reached, input runs out, or the end-of-stream marker is decoded.
func (d *Decoder) runLoop(buf []byte, pos *int, dicLimit int) (stopReason, error) {
	for {
		if d.remainLen > 0 {
			room := dicLimit - int(d.win.processedPos)
			if room <= 0 {
				return stopLimit, nil
			}
			n := d.remainLen
			if n > room {
				n = room
			}
			if err := d.win.copyMatch(d.remainDist, n); err != nil {
				return stopLimit, err
			}
			d.remainLen -= n
			if d.remainLen > 0 {
				return stopLimit, nil
			}
			continue
		}

		if int(d.win.processedPos) >= dicLimit {
			return stopLimit, nil
		}

		if len(buf)-*pos < lookaheadMax {
			if _, err := d.tryDummy(buf, *pos); err != nil {
				return stopInput, nil
			}
		}

		startPos := *pos
		pkt, err := decodePacket(&d.rc, d.probs, &d.state, &d.reps, d.win.processedPos, d.posMask, d.win.byteAt, buf, pos)
		if err != nil {
			if len(buf)-startPos < lookaheadMax {
				return stopLimit, pkgerrors.Wrap(ErrInternal, "dummy lookahead accepted a packet the real decode could not finish")
			}
			return stopLimit, err
		}

		switch pkt.kind {
		case packetLiteral:
			d.win.putByte(pkt.literal)
		case packetMatch:
			if pkt.eos {
				d.eosPending = true
				return stopEOS, nil
			}
			if err := d.applyCopy(pkt.distance, pkt.length, dicLimit); err != nil {
				return stopLimit, err
			}
		default: // packetRep, packetShortRep
			if err := d.applyCopy(pkt.distance, pkt.length, dicLimit); err != nil {
				return stopLimit, err
			}
		}
	}
}

// applyCopy writes as much of a match/rep's length as room under dicLimit
// allows, stashing any remainder in d.remainLen/d.remainDist for the next
// call to runLoop to finish.
func (d *Decoder) applyCopy(dist uint32, length int, dicLimit int) error {
	room := dicLimit - int(d.win.processedPos)
	n := length
	if n > room {
		n = room
	}
	if n > 0 {
		if err := d.win.copyMatch(dist, n); err != nil {
			return err
		}
	}
	if n < length {
		d.remainLen = length - n
		d.remainDist = dist
	}
	return nil
}

// DecodeToDic decodes as much of src as fits before the window's absolute
// write position reaches dicLimit, or until src is exhausted. It returns
// the number of bytes of src consumed and a Status describing why it
// stopped. Once this (or DecodeToBuf) returns a non-nil error or
// StatusFinishedWithMark, every subsequent call returns ErrFinished until
// Reset is called with resetState set.
func (d *Decoder) DecodeToDic(dicLimit int, src []byte, finish FinishMode) (int, Status, error) {
	if d.failed {
		return 0, StatusNotSpecified, ErrFinished
	}
	n, status, err := d.decodeToDicOnce(dicLimit, src, finish)
	if err != nil || status == StatusFinishedWithMark {
		d.failed = true
	}
	return n, status, err
}

func (d *Decoder) decodeToDicOnce(dicLimit int, src []byte, finish FinishMode) (int, Status, error) {
	scratchLen0 := d.scratchLen
	var buf []byte
	if scratchLen0 > 0 {
		buf = make([]byte, 0, scratchLen0+len(src))
		buf = append(buf, d.scratch[:scratchLen0]...)
		buf = append(buf, src...)
	} else {
		buf = src
	}
	pos := 0

	if !d.rcInit {
		if err := d.rc.init(buf, &pos); err != nil {
			if err == errInputEOF {
				return d.finishCall(buf, 0, scratchLen0, len(src), true), StatusNeedsMoreInput, nil
			}
			// A non-zero lead byte is a real data error (ErrCorruptStream),
			// not a "come back with more bytes" condition: propagate it so
			// DecodeToDic sticks the decoder into its failed state instead
			// of looping StatusNeedsMoreInput forever.
			return 0, StatusNotSpecified, err
		}
		d.rcInit = true
		if d.win.processedPos == 0 && d.win.checkSize == 0 && d.rc.code > 0xC0000000-0x400 {
			return 0, StatusNotSpecified, ErrCorruptStream
		}
	}

	reason, err := d.runLoop(buf, &pos, dicLimit)
	if err != nil {
		return 0, StatusNotSpecified, err
	}

	// Under FinishEnd, an end-of-stream marker that sits exactly at
	// dicLimit is decoded now, so the call reports StatusFinishedWithMark.
	if reason == stopLimit && finish == FinishEnd && d.remainLen == 0 {
		if dp, derr := d.tryDummy(buf, pos); derr == nil && dp.eos {
			if _, err := decodePacket(&d.rc, d.probs, &d.state, &d.reps, d.win.processedPos, d.posMask, d.win.byteAt, buf, &pos); err != nil {
				return 0, StatusNotSpecified, err
			}
			d.eosPending = true
			reason = stopEOS
		}
	}

	switch reason {
	case stopInput:
		return d.finishCall(buf, pos, scratchLen0, len(src), true), StatusNeedsMoreInput, nil

	case stopEOS:
		consumed := d.finishCall(buf, pos, scratchLen0, len(src), false)
		if d.rc.isFinishedOK() {
			return consumed, StatusFinishedWithMark, nil
		}
		return consumed, StatusNotSpecified, ErrCorruptStream

	default: // stopLimit
		consumed := d.finishCall(buf, pos, scratchLen0, len(src), false)
		if finish != FinishEnd {
			return consumed, StatusNotFinished, nil
		}
		dp, derr := d.tryDummy(buf, pos)
		switch {
		case derr != nil:
			return consumed, StatusNeedsMoreInput, nil
		case dp.kind == packetMatch:
			return consumed, StatusMaybeFinishedWithoutMark, nil
		default:
			return consumed, StatusNotSpecified, ErrCorruptStream
		}
	}
}

// finishCall reconciles the scratch buffer and reports how many bytes of
// the caller's src were consumed. When needMoreInput is true, every byte
// handed to this call (scratch carried in plus fresh src) is retained
// internally and reported as fully consumed. Otherwise, any unconsumed
// tail of the *previous* scratch is re-saved (bounded by lookaheadMax) and
// unconsumed fresh src bytes are left for the caller to resupply.
func (d *Decoder) finishCall(buf []byte, pos, scratchLen0, srcLen int, needMoreInput bool) int {
	if needMoreInput {
		leftover := buf[pos:]
		copy(d.scratch[:], leftover)
		d.scratchLen = len(leftover)
		return srcLen
	}
	if pos < scratchLen0 {
		leftover := buf[pos:scratchLen0]
		copy(d.scratch[:], leftover)
		d.scratchLen = len(leftover)
		return 0
	}
	d.scratchLen = 0
	return pos - scratchLen0
}

// DecodeToBuf decodes directly into dest, a convenience wrapper around
// DecodeToDic for callers who don't need to address the internal window
// directly. It drains produced bytes out of the window after every
// internal step so a single call can satisfy an arbitrarily large dest
// even when the window (sized by the stream's dictionary size) is
// smaller.
func (d *Decoder) DecodeToBuf(dest, src []byte, finish FinishMode) (nOut, nIn int, status Status, err error) {
	srcPos := 0
	destPos := 0
	readPos := d.win.processedPos

	for {
		remaining := len(dest) - destPos
		if remaining == 0 {
			return destPos, srcPos, StatusNotFinished, nil
		}

		step := remaining
		if step > len(d.win.buf) {
			step = len(d.win.buf)
		}
		subFinish := finish
		if step < remaining {
			subFinish = FinishAny
		}
		dicLimit := int(d.win.processedPos) + step

		n, st, e := d.DecodeToDic(dicLimit, src[srcPos:], subFinish)
		srcPos += n

		got := d.win.readOut(dest[destPos:], readPos)
		readPos += uint32(got)
		destPos += got

		if e != nil {
			return destPos, srcPos, st, e
		}
		switch st {
		case StatusNeedsMoreInput, StatusFinishedWithMark:
			return destPos, srcPos, st, nil
		case StatusNotFinished, StatusMaybeFinishedWithoutMark:
			if step >= remaining {
				return destPos, srcPos, st, nil
			}
			// Capped by window size only; keep stepping through more of
			// dest with the real finish mode reinstated on the final step.
		}
	}
}
