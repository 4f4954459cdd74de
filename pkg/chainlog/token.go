// Package chainlog appends tamper-evident lines to log files. Every record
// carries a fixed-width checksum token computed from the line text and the
// previous record's token, so the file forms a verifiable chain.
package chainlog

import (
	"fmt"
	"strconv"
)

const tokenLen = 6

// reseedPrefix is prepended to the last known token when a writer reopens a
// file that already has lines, marking a weak continuation boundary in the
// chain.
const reseedPrefix = "271"

// checksum sums each character's 1-based position multiplied by its byte
// value.
func checksum(text string) int64 {
	var sum int64
	for i, b := range []byte(text) {
		sum += int64(i+1) * int64(b)
	}
	return sum
}

// Token computes the fixed-width chain token binding text to its predecessor.
// Pure: the same seed and text always yield the same token, and a different
// seed yields a different token for the same text.
func Token(seed, text string) string {
	sum := seedValue(seed) + checksum(text)
	s := fmt.Sprintf("%0*d", tokenLen, sum)
	return s[:tokenLen]
}

// seedValue reads a seed string as its numeric value. Seeds are decimal
// token strings; anything unparseable contributes zero.
func seedValue(seed string) int64 {
	n, err := strconv.ParseInt(seed, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// digest3 is the 3-character checksum variant used to seed brand-new chains
// from the file name and the acting user identity.
func digest3(text string) string {
	s := fmt.Sprintf("%03d", checksum(text))
	return s[:3]
}
