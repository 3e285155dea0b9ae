// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzma

package lzma

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindow_PutByteAndByteAt(t *testing.T) {
	w := newWindow(16)
	for _, b := range []byte("abcdef") {
		w.putByte(b)
	}
	require.Equal(t, byte('f'), w.byteAt(1))
	require.Equal(t, byte('a'), w.byteAt(6))
}

func TestWindow_CopyMatchNonOverlapping(t *testing.T) {
	w := newWindow(32)
	for _, b := range []byte("abcdXXXX") {
		w.putByte(b)
	}
	require.NoError(t, w.copyMatch(8, 4))

	out := make([]byte, 12)
	n := w.readOut(out, 0)
	require.Equal(t, 12, n)
	require.Equal(t, "abcdXXXXabcd", string(out))
}

func TestWindow_CopyMatchOverlapping(t *testing.T) {
	w := newWindow(32)
	for _, b := range []byte("ABC") {
		w.putByte(b)
	}
	require.NoError(t, w.copyMatch(3, 5))

	out := make([]byte, 8)
	n := w.readOut(out, 0)
	require.Equal(t, 8, n)
	require.Equal(t, "ABCABCAB", string(out))
}

func TestWindow_CopyMatchWrapsRingBuffer(t *testing.T) {
	// newWindow always rounds the physical buffer up to minDicSize (4096),
	// so build a window directly with a tiny ring to exercise wrap-around.
	w := &window{buf: make([]byte, 8), dicSize: 8}
	for _, b := range []byte("ABCDEFGH") {
		w.putByte(b)
	}
	// Read out the first 8 bytes before the ring is overwritten: readOut's
	// contract requires readPos stay within len(buf) of processedPos.
	first := make([]byte, 8)
	n := w.readOut(first, 0)
	require.Equal(t, 8, n)
	require.Equal(t, "ABCDEFGH", string(first))

	// Dictionary is now exactly full; copy wraps the physical buffer.
	require.NoError(t, w.copyMatch(4, 4))

	rest := make([]byte, 4)
	n = w.readOut(rest, 8)
	require.Equal(t, 4, n)
	require.Equal(t, "EFGH", string(rest))
}

func TestWindow_CopyMatchRejectsOutOfRangeDistance(t *testing.T) {
	w := newWindow(16)
	w.putByte('a')
	err := w.copyMatch(5, 1)
	require.ErrorIs(t, err, ErrCorruptStream)
}

func TestWindow_CopyMatchRejectsZeroDistance(t *testing.T) {
	w := newWindow(16)
	w.putByte('a')
	err := w.copyMatch(0, 1)
	require.ErrorIs(t, err, ErrCorruptStream)
}

func TestWindow_DistanceLimitTracksCheckSize(t *testing.T) {
	w := newWindow(4) // physical buf rounds up to minDicSize, but dicSize itself stays 4
	require.Equal(t, uint32(0), w.distanceLimit())
	w.putByte('a')
	w.putByte('b')
	require.Equal(t, uint32(2), w.distanceLimit())
	w.putByte('c')
	w.putByte('d')
	require.Equal(t, uint32(4), w.distanceLimit())
	w.putByte('e')
	require.Equal(t, uint32(4), w.distanceLimit(), "checkSize should clamp to dicSize once filled")
}

func TestWindow_ResetClearsPositionButKeepsBuffer(t *testing.T) {
	w := newWindow(16)
	w.putByte('a')
	w.putByte('b')
	w.reset()
	require.Equal(t, uint32(0), w.processedPos)
	require.Equal(t, 0, w.pos)
	require.Equal(t, uint32(0), w.checkSize)
}

func TestWindow_ReadOutRespectsAvailability(t *testing.T) {
	w := newWindow(16)
	for _, b := range []byte("hello") {
		w.putByte(b)
	}
	out := make([]byte, 10)
	n := w.readOut(out, 0)
	require.Equal(t, 5, n)
	require.Equal(t, "hello", string(out[:n]))

	n2 := w.readOut(out, w.processedPos)
	require.Equal(t, 0, n2)
}
