package civiltime

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	mkerr   func(string) error               = errors.New
	itoa    func(int) string                 = strconv.Itoa
	atoi    func(string) (int, error)        = strconv.Atoi
	fmtUint func(uint64, int) string         = strconv.FormatUint
	appUint func([]byte, uint64, int) []byte = strconv.AppendUint
	hasPfx  func(string, string) bool        = strings.HasPrefix
	hasSfx  func(string, string) bool        = strings.HasSuffix
	stridxb func(string, byte) int           = strings.IndexByte
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

/*
digitBuf implements a small growable buffer of ASCII digits used to
assemble fixed-width numeric substrings without heap churn on the
common (short) path.
*/
type digitBuf struct {
	stack [32]byte
	spill []byte
	n     int
}

func (r *digitBuf) put(b byte) {
	if r.spill == nil {
		if r.n < len(r.stack) {
			r.stack[r.n] = b
			r.n++
			return
		}
		r.spill = append(r.spill, r.stack[:]...)
	}
	r.spill = append(r.spill, b)
	r.n++
}

/*
putFixed writes v zero-padded to exactly width digits, truncating
high-order digits which do not fit.
*/
func (r *digitBuf) putFixed(v, width int) {
	div := 1
	for i := 1; i < width; i++ {
		div *= 10
	}
	for ; div > 0; div /= 10 {
		r.put(byte('0' + (v/div)%10))
	}
}

func (r *digitBuf) string() string {
	if r.spill != nil {
		return string(r.spill)
	}
	return string(r.stack[:r.n])
}

/*
deci2 converts two ASCII digits to their integer value. The boolean
return is false if either byte is not a digit.
*/
func deci2(b0, b1 byte) (int, bool) {
	if !isDigit(b0) || !isDigit(b1) {
		return 0, false
	}
	return int(b0-'0')*10 + int(b1-'0'), true
}

/*
deci4 converts four ASCII digits to their integer value. The boolean
return is false if any byte is not a digit.
*/
func deci4(b0, b1, b2, b3 byte) (int, bool) {
	hi, ok1 := deci2(b0, b1)
	lo, ok2 := deci2(b2, b3)
	if !ok1 || !ok2 {
		return 0, false
	}
	return hi*100 + lo, true
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func refTypeName(x any) string { return reflect.TypeOf(x).String() }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

func min16(a, b uint16) uint16 {
	if a < b {
		return a
	}
	return b
}

func max16(a, b uint16) uint16 {
	if a > b {
		return a
	}
	return b
}
