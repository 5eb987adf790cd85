package counter

import (
	"fmt"
	"strconv"
	"strings"
)

// Pattern is a parsed numbering pattern such as "1.", "a)" or "1.a.". Each
// counting symbol consumes one counter value, surrounding text is kept
// verbatim. When a value sequence is deeper than the pattern the last symbol
// is reused for the remaining values.
type Pattern struct {
	src    string
	pieces []piece
	suffix string
}

type piece struct {
	prefix string
	symbol byte
}

// Counting symbols understood by patterns.
const symbols = "1aAiI"

// ParsePattern parses a numbering pattern. A pattern must contain at least
// one counting symbol.
func ParsePattern(src string) (*Pattern, error) {
	p := &Pattern{src: src}

	var prefix strings.Builder
	for i := 0; i < len(src); i++ {
		c := src[i]
		if strings.IndexByte(symbols, c) < 0 {
			prefix.WriteByte(c)
			continue
		}
		p.pieces = append(p.pieces, piece{prefix: prefix.String(), symbol: c})
		prefix.Reset()
	}
	if len(p.pieces) == 0 {
		return nil, fmt.Errorf("invalid numbering pattern %q: no counting symbols", src)
	}
	p.suffix = prefix.String()
	return p, nil
}

// MustPattern is ParsePattern for patterns known to be valid at compile time.
func MustPattern(src string) *Pattern {
	p, err := ParsePattern(src)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the original pattern source.
func (p *Pattern) String() string {
	return p.src
}

// Format renders counter values under the pattern.
func (p *Pattern) Format(values ...int) string {
	var out strings.Builder
	for i, v := range values {
		pc := p.pieces[min(i, len(p.pieces)-1)]
		if i < len(p.pieces) {
			out.WriteString(pc.prefix)
		} else {
			// reused piece keeps the separator of the last one
			out.WriteString(p.pieces[len(p.pieces)-1].prefix)
		}
		out.WriteString(formatSymbol(pc.symbol, v))
	}
	out.WriteString(p.suffix)
	return out.String()
}

func formatSymbol(symbol byte, value int) string {
	switch symbol {
	case '1':
		return strconv.Itoa(value)
	case 'a':
		return letters(value, false)
	case 'A':
		return letters(value, true)
	case 'i':
		return strings.ToLower(roman(value))
	case 'I':
		return roman(value)
	default:
		// parser only admits known symbols
		panic("unsupported counting symbol")
	}
}

// letters formats value in bijective base 26: 1 -> a, 26 -> z, 27 -> aa.
func letters(value int, upper bool) string {
	if value < 1 {
		return "0"
	}
	var buf []byte
	for value > 0 {
		value--
		buf = append([]byte{byte('a' + value%26)}, buf...)
		value /= 26
	}
	s := string(buf)
	if upper {
		return strings.ToUpper(s)
	}
	return s
}

var romanTable = []struct {
	value int
	text  string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"},
	{1, "I"},
}

func roman(value int) string {
	if value < 1 {
		return "N"
	}
	var out strings.Builder
	for _, r := range romanTable {
		for value >= r.value {
			out.WriteString(r.text)
			value -= r.value
		}
	}
	return out.String()
}
