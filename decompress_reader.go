// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzma

package lzma

import "io"

// Reader adapts an incremental Decoder to io.Reader, pulling compressed
// bytes from r as needed. Generalizes the teacher's
// read-everything-then-decode DecompressFromReader into a true
// incremental decode-as-you-read, since LZMA (unlike LZO1X here) has no
// required output-length option to size a single destination buffer
// upfront.
type Reader struct {
	r   io.Reader
	dec *Decoder

	pending   []byte
	eof       bool
	done      bool
	maxInput  int
	totalRead int
}

// NewReader wraps r as an incremental LZMA decompressor. opts may be nil.
func NewReader(r io.Reader, props Properties, opts *ReaderOptions) (*Reader, error) {
	dec, err := NewDecoder(props)
	if err != nil {
		return nil, err
	}
	if opts == nil {
		opts = DefaultReaderOptions()
	}
	return &Reader{r: r, dec: dec, maxInput: opts.MaxInputSize}, nil
}

// Read implements io.Reader.
func (rd *Reader) Read(p []byte) (int, error) {
	if rd.done {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}

	for {
		nOut, nIn, status, err := rd.dec.DecodeToBuf(p, rd.pending, FinishAny)
		rd.pending = rd.pending[nIn:]
		if err != nil {
			return nOut, err
		}

		switch status {
		case StatusFinishedWithMark:
			rd.done = true
			if nOut > 0 {
				return nOut, nil
			}
			return 0, io.EOF

		case StatusNeedsMoreInput:
			if nOut > 0 {
				return nOut, nil
			}
			if err := rd.fill(); err != nil {
				return 0, err
			}
			if len(rd.pending) == 0 && rd.eof {
				return 0, io.ErrUnexpectedEOF
			}
			continue

		default:
			return nOut, nil
		}
	}
}

// fill pulls more compressed bytes from the underlying reader into pending.
func (rd *Reader) fill() error {
	if rd.eof {
		return nil
	}
	buf := make([]byte, 32*1024)
	n, err := rd.r.Read(buf)
	if n > 0 {
		rd.pending = append(rd.pending, buf[:n]...)
		rd.totalRead += n
		if rd.maxInput > 0 && rd.totalRead > rd.maxInput {
			return ErrInputTooLarge
		}
	}
	if err != nil {
		if err == io.EOF {
			rd.eof = true
			return nil
		}
		return err
	}
	return nil
}
