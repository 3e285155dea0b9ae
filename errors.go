// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzma

package lzma

import "errors"

// Sentinel errors for property parsing, stream decoding and the
// incremental driver.
var (
	// ErrEmptyInput is returned when the input slice or stream is empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrPropertiesTooShort is returned when fewer than 5 bytes are
	// available to parse LZMA properties.
	ErrPropertiesTooShort = errors.New("properties header too short")
	// ErrInvalidProperties is returned when the packed LC/LP/PB byte
	// decodes to values outside the supported range.
	ErrInvalidProperties = errors.New("invalid LC/LP/PB properties")

	// ErrCorruptStream is returned for anything attributable to the
	// compressed bitstream itself: a bad range-coder prefix, an
	// out-of-range back-reference distance, an unterminated stream under
	// strict finish mode, and so on. Maps to spec's DATA_ERROR class.
	ErrCorruptStream = errors.New("corrupt LZMA stream")

	// ErrInternal is returned when the decoder detects an internal
	// consistency violation (the dummy lookahead and the real decode
	// disagreeing on packet shape). This indicates a decoder bug, not bad
	// input, and is intentionally distinct from ErrCorruptStream so
	// callers can tell the two apart with errors.Is. Maps to spec's FAIL
	// class.
	ErrInternal = errors.New("internal decoder error")

	// ErrInputTooLarge is returned when a reader is configured with a
	// MaxInputSize and more bytes are read.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")

	// ErrFinished is returned when a caller calls DecodeToDic or
	// DecodeToBuf again on a decoder that has already reported
	// FINISHED_WITH_MARK or has been marked failed.
	ErrFinished = errors.New("decoder already finished")

	// errInputEOF is an internal, unexported sentinel used between the
	// range coder / packet decoder and the incremental driver to signal
	// "not enough bytes were available to finish this operation". It
	// never reaches a caller directly: the driver either turns it into
	// StatusNeedsMoreInput (normal, not an error) or, if it occurs outside
	// the lookahead-guarded safe zone, wraps it as ErrInternal.
	errInputEOF = errors.New("insufficient input")
)
