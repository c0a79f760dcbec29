package stringlist

import "strings"

// SplitFlag changes how tokens are cut by SplitAny and SplitInPlaceFlags.
type SplitFlag uint

const (
	// SplitTrim strips ASCII whitespace (space, tab, CR, LF) from both ends
	// of every token.
	SplitTrim SplitFlag = 1 << iota
	// SplitNonEmpty drops tokens that are empty, after trimming when SplitTrim
	// is also set. Dropped tokens do not count toward maxSplit.
	SplitNonEmpty
)

// Split appends to l the tokens of s separated by delim and returns how many
// entries it appended.
//
// A negative maxSplit splits at every delim. Otherwise at most maxSplit
// delimiters are honored and the rest of s, delimiters included, becomes the
// last token; maxSplit == 0 appends s unchanged. Empty tokens are kept, so
// "" gives [""] and ":" gives ["", ""].
func (l *List) Split(s string, delim byte, maxSplit int) int {
	var set byteSet
	set[delim] = true
	return l.split(s, &set, maxSplit, 0)
}

// SplitAny is Split with a set of delimiter bytes and flags. Any byte of
// delims ends a token.
func (l *List) SplitAny(s, delims string, maxSplit int, flags SplitFlag) int {
	return l.split(s, newByteSet(delims), maxSplit, flags)
}

func (l *List) split(s string, set *byteSet, maxSplit int, flags SplitFlag) int {
	return tokenize(s, set, maxSplit, flags, func(start, end int) {
		// Cloned so the entry does not pin the whole input.
		l.add(strings.Clone(s[start:end]))
	}, nil)
}

// SplitInPlace cuts buf at every byte found in delims without copying. Each
// consumed delimiter is overwritten with a 0 byte and every token is appended
// as a slice of buf. maxSplit works as for List.Split; the untouched remainder
// after the last honored delimiter becomes the final token.
//
// The entries alias buf: buf must outlive them and must not be modified
// while they are in use. The original text is destroyed.
func (l *RefList) SplitInPlace(buf []byte, delims string, maxSplit int) int {
	return l.SplitInPlaceFlags(buf, delims, maxSplit, 0)
}

// SplitInPlaceFlags is SplitInPlace with flags.
func (l *RefList) SplitInPlaceFlags(buf []byte, delims string, maxSplit int, flags SplitFlag) int {
	return tokenize(buf, newByteSet(delims), maxSplit, flags, func(start, end int) {
		// Capped so appending to an entry can not run over the terminator.
		l.add(buf[start:end:end])
	}, func(delim int) {
		buf[delim] = 0
	})
}

type byteSet [256]bool

func newByteSet(delims string) *byteSet {
	var set byteSet
	for i := 0; i < len(delims); i++ {
		set[delims[i]] = true
	}
	return &set
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// indexFrom returns the index of the first byte of s at or after from that
// is in set, or -1.
func indexFrom[T Text](s T, set *byteSet, from int) int {
	for i := from; i < len(s); i++ {
		if set[s[i]] {
			return i
		}
	}
	return -1
}

// tokenize walks s once, calling emit with the bounds of each kept token and
// consume with the index of each delimiter it splits at. It returns the
// number of emitted tokens.
func tokenize[T Text](s T, set *byteSet, maxSplit int, flags SplitFlag, emit func(start, end int), consume func(delim int)) int {
	count := 0
	p := 0
	for {
		if flags&SplitTrim != 0 {
			for p < len(s) && isSpace(s[p]) {
				p++
			}
		}

		delim := -1
		if maxSplit < 0 || count < maxSplit {
			delim = indexFrom(s, set, p)
		}
		end := len(s)
		if delim >= 0 {
			end = delim
			if consume != nil {
				consume(delim)
			}
		}
		if flags&SplitTrim != 0 {
			for end > p && isSpace(s[end-1]) {
				end--
			}
		}

		if flags&SplitNonEmpty == 0 || end > p {
			emit(p, end)
			count++
		}
		if delim < 0 {
			return count
		}
		p = delim + 1
	}
}
