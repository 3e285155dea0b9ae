// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzma

package lzma

// FinishMode controls how DecodeToDic/DecodeToBuf treat a successful decode
// that stops exactly at the requested output limit, mirroring the two
// finish modes of the reference LZMA decoder.
type FinishMode int

const (
	// FinishAny allows the decoder to stop at the output limit even if the
	// stream has not reached its end-of-stream marker.
	FinishAny FinishMode = iota
	// FinishEnd requires the decoder to have reached the end-of-stream
	// marker (or a data boundary safely identifiable as the stream's
	// natural end) before reporting success at the output limit.
	FinishEnd
)

// Status reports the outcome of a single DecodeToDic/DecodeToBuf call.
type Status int

const (
	// StatusNotSpecified is the zero value; never returned on success.
	StatusNotSpecified Status = iota
	// StatusFinishedWithMark means the decoder consumed the end-of-stream
	// marker and the range coder's code register is zero.
	StatusFinishedWithMark
	// StatusNotFinished means the output limit was reached but the stream
	// has not ended (valid only with FinishAny).
	StatusNotFinished
	// StatusNeedsMoreInput means all available input was consumed without
	// completing a packet; not an error, call again with more data.
	StatusNeedsMoreInput
	// StatusMaybeFinishedWithoutMark means the output limit was reached at
	// a point where the next packet could legally be the end-of-stream
	// marker, but it was not actually decoded.
	StatusMaybeFinishedWithoutMark
)

// ReaderOptions configures NewReader.
type ReaderOptions struct {
	// MaxInputSize limits how many compressed bytes a Reader will pull
	// from its underlying io.Reader (0 = no limit).
	MaxInputSize int
}

// DefaultReaderOptions returns ReaderOptions with no input limit.
func DefaultReaderOptions() *ReaderOptions {
	return &ReaderOptions{}
}
