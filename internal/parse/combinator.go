// Package parse holds the byte-level combinators used when parsing formatted
// input. Each combinator consumes a prefix of its input and returns the
// remainder; ok reports whether the prefix matched.
package parse

import "bytes"

// AnyDigit consumes a single ASCII digit.
func AnyDigit(input []byte) (digit byte, rest []byte, ok bool) {
	if len(input) == 0 || input[0] < '0' || input[0] > '9' {
		return 0, input, false
	}
	return input[0], input[1:], true
}

// Byte consumes the given byte.
func Byte(input []byte, b byte) (rest []byte, ok bool) {
	if len(input) == 0 || input[0] != b {
		return input, false
	}
	return input[1:], true
}

// Sign consumes a leading `+` or `-`. When neither is present it returns
// zero and the input unchanged, which is not a failure.
func Sign(input []byte) (sign byte, rest []byte) {
	if len(input) > 0 && (input[0] == '+' || input[0] == '-') {
		return input[0], input[1:]
	}
	return 0, input
}

// NToMDigits consumes between n and m ASCII digits greedily and returns
// their value. Fewer than n digits is a failure.
func NToMDigits(input []byte, n, m int) (value uint64, rest []byte, ok bool) {
	if n < 1 || m < n {
		return 0, input, false
	}
	i := 0
	for i < m && i < len(input) && input[i] >= '0' && input[i] <= '9' {
		value = value*10 + uint64(input[i]-'0')
		i++
	}
	if i < n {
		return 0, input, false
	}
	return value, input[i:], true
}

// ExactDigits consumes exactly n ASCII digits.
func ExactDigits(input []byte, n int) (value uint64, rest []byte, ok bool) {
	return NToMDigits(input, n, n)
}

// NToMDigitsPadded applies the component's padding rule before reading
// digits. pad is '0' for zero padding, ' ' for space padding and zero for no
// padding. Space padding accepts up to n-1 leading spaces, each of which
// lowers the digit count it still expects to see.
func NToMDigitsPadded(input []byte, n, m int, pad byte) (value uint64, rest []byte, ok bool) {
	switch pad {
	case ' ':
		eaten := 0
		for eaten < n-1 && len(input) > 0 && input[0] == ' ' {
			input = input[1:]
			eaten++
		}
		return NToMDigits(input, n-eaten, m-eaten)
	case 0:
		return NToMDigits(input, 1, m)
	default:
		return NToMDigits(input, n, m)
	}
}

// ExactDigitsPadded consumes exactly n digits subject to the padding rule.
func ExactDigitsPadded(input []byte, n int, pad byte) (value uint64, rest []byte, ok bool) {
	return NToMDigitsPadded(input, n, n, pad)
}

// FirstMatch finds the first option that is a prefix of the input and
// returns its index. Matching is byte-wise; when caseSensitive is false the
// comparison folds ASCII case.
func FirstMatch(input []byte, options [][]byte, caseSensitive bool) (index int, rest []byte, ok bool) {
	for i, opt := range options {
		if len(input) < len(opt) {
			continue
		}
		head := input[:len(opt)]
		if caseSensitive {
			if bytes.Equal(head, opt) {
				return i, input[len(opt):], true
			}
		} else if bytes.EqualFold(head, opt) {
			return i, input[len(opt):], true
		}
	}
	return 0, input, false
}
