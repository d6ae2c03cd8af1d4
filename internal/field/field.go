// Package field implements the fixed-width field encoding used by wpress
// header records: text fields are left-justified and padded with NUL bytes,
// numeric fields are ASCII decimal, also left-justified and NUL-padded.
//
// The codec is deliberately independent of stream I/O so the padding and
// parsing rules can be tested in isolation.
package field

import "errors"

// Sentinel errors for field encoding and decoding.
var (
	// ErrOverflow is returned when a value does not fit its fixed field width.
	ErrOverflow = errors.New("wpressarc: field overflow")

	// ErrMalformedNumber is returned when a numeric field contains bytes
	// other than ASCII digits and trailing NUL padding.
	ErrMalformedNumber = errors.New("wpressarc: malformed numeric field")
)

// PutText encodes s into dst, left-justified and padded with NUL bytes.
// The whole of dst is overwritten. Returns ErrOverflow when the encoded
// text is longer than dst; the value is never truncated.
func PutText(dst []byte, s string) error {
	if len(s) > len(dst) {
		return ErrOverflow
	}
	n := copy(dst, s)
	clear(dst[n:])
	return nil
}

// Text decodes a NUL-padded text field by trimming trailing NUL bytes.
func Text(src []byte) string {
	end := len(src)
	for end > 0 && src[end-1] == 0 {
		end--
	}
	return string(src[:end])
}

// PutDecimal encodes v as ASCII decimal digits, left-justified and padded
// with NUL bytes. Returns ErrOverflow when v is negative or its decimal
// form is longer than dst.
func PutDecimal(dst []byte, v int64) error {
	if v < 0 {
		return ErrOverflow
	}
	// Format in place, right to left, into a small scratch buffer.
	var scratch [20]byte
	i := len(scratch)
	for {
		i--
		scratch[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	digits := scratch[i:]
	if len(digits) > len(dst) {
		return ErrOverflow
	}
	n := copy(dst, digits)
	clear(dst[n:])
	return nil
}

// Decimal decodes an ASCII decimal field. Trailing NUL padding is trimmed
// first; an entirely empty field decodes as 0. Any remaining non-digit
// byte yields ErrMalformedNumber.
func Decimal(src []byte) (int64, error) {
	end := len(src)
	for end > 0 && src[end-1] == 0 {
		end--
	}
	var v int64
	for _, c := range src[:end] {
		if c < '0' || c > '9' {
			return 0, ErrMalformedNumber
		}
		v = v*10 + int64(c-'0')
	}
	return v, nil
}
