// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imgconv

import "io"

const maxChunkSize = 10 << 20 // 10M

// readFull reads exactly n bytes from r, where n comes from untrusted
// header data. Reads larger than maxChunkSize are done chunk by chunk so
// that a short input fails before the whole slice is allocated.
// A short read is reported as io.ErrUnexpectedEOF.
func readFull(r io.Reader, n int) ([]byte, error) {
	if n < 0 {
		return nil, io.ErrUnexpectedEOF
	}
	if n < maxChunkSize {
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		return buf, nil
	}

	var buf []byte
	buf1 := make([]byte, maxChunkSize)
	for n > 0 {
		next := n
		if next > maxChunkSize {
			next = maxChunkSize
		}
		if _, err := io.ReadFull(r, buf1[:next]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
		buf = append(buf, buf1[:next]...)
		n -= next
	}
	return buf, nil
}
