package estree

// SpanTranslator converts byte offsets in a source text into 1-based line and
// 0-based column positions. Line starts are computed once per source text and
// reused for every lookup.
type SpanTranslator struct {
	text       string
	lineStarts []int
}

func NewSpanTranslator(text string) *SpanTranslator {
	return &SpanTranslator{text: text, lineStarts: ComputeLineStarts(text)}
}

// ComputeLineStarts returns the byte offset of the first character of each
// line. Recognized terminators are \n, \r, \r\n, U+2028 and U+2029.
func ComputeLineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); {
		switch text[i] {
		case '\r':
			i++
			if i < len(text) && text[i] == '\n' {
				i++
			}
			starts = append(starts, i)
		case '\n':
			i++
			starts = append(starts, i)
		case 0xe2:
			// U+2028 and U+2029 encode as e2 80 a8 / e2 80 a9.
			if i+2 < len(text) && text[i+1] == 0x80 && (text[i+2] == 0xa8 || text[i+2] == 0xa9) {
				i += 3
				starts = append(starts, i)
			} else {
				i++
			}
		default:
			i++
		}
	}
	return starts
}

// PositionFor maps a byte offset to its line/column. Offsets beyond the text
// clamp to the final position; the mapping is monotonic in the offset.
func (s *SpanTranslator) PositionFor(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.text) {
		offset = len(s.text)
	}
	line := s.lineIndex(offset)
	return Position{Line: line + 1, Column: offset - s.lineStarts[line]}
}

// LocationFor maps a half-open offset range to a SourceLocation.
func (s *SpanTranslator) LocationFor(r Range) *SourceLocation {
	return &SourceLocation{Start: s.PositionFor(r[0]), End: s.PositionFor(r[1])}
}

func (s *SpanTranslator) lineIndex(offset int) int {
	lo, hi := 0, len(s.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if s.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
