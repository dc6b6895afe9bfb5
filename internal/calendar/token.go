package calendar

import (
	"strings"
	"unicode"
)

// TokenKind classifies a lexed token. ParseError reports the set of
// kinds that would have been acceptable at the failing offset.
type TokenKind int

// Token kinds produced by the schema-driven tokenizer.
const (
	TokenNumber TokenKind = iota
	TokenOrdinal
	TokenMonthName
	TokenWeekdayName
	TokenEraName
	TokenUnit
	TokenKeyword
	TokenDash
	TokenEOF
)

// String names the kind for error messages.
func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenOrdinal:
		return "ordinal"
	case TokenMonthName:
		return "month name"
	case TokenWeekdayName:
		return "weekday name"
	case TokenEraName:
		return "era name"
	case TokenUnit:
		return "unit"
	case TokenKeyword:
		return "keyword"
	case TokenDash:
		return "'-'"
	case TokenEOF:
		return "end of input"
	}
	return "unknown"
}

// token is one lexed unit with its source offset. Value carries the
// numeric payload (number, ordinal rank, month/weekday index, era
// index); Text carries the normalized word for units and keywords.
type token struct {
	kind   TokenKind
	offset int
	value  int64
	text   string
}

// unitWords maps spelled-out and suffix unit forms to a canonical unit.
// The compact relative form (1y32mo6d) and the prose form (3 months)
// land on the same names.
var unitWords = map[string]string{
	"y": "year", "year": "year", "years": "year",
	"mo": "month", "month": "month", "months": "month",
	"w": "week", "week": "week", "weeks": "week",
	"d": "day", "day": "day", "days": "day",
}

// keywords recognized by the resolver.
var keywordWords = map[string]bool{
	"in": true, "and": true, "ago": true, "hence": true,
	"of": true, "the": true,
}

// ordinalWords spells out the ordinals a month or day position can
// reasonably take; numeric ordinals (1st, 22nd) cover the rest.
var ordinalWords = map[string]int64{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	"eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
	"fifteenth": 15, "sixteenth": 16, "seventeenth": 17, "eighteenth": 18,
	"nineteenth": 19, "twentieth": 20, "twenty-first": 21,
	"twenty-second": 22, "twenty-third": 23, "twenty-fourth": 24,
	"twenty-fifth": 25, "twenty-sixth": 26, "twenty-seventh": 27,
	"twenty-eighth": 28, "twenty-ninth": 29, "thirtieth": 30,
	"thirty-first": 31,
}

var ordinalSuffixes = []string{"st", "nd", "rd", "th"}

// tokenize lexes text against the schema's vocabulary. Month, weekday
// and era names come from the schema (longest match first), so the same
// tokenizer serves any calendar.
func (s *Schema) tokenize(text string) ([]token, error) {
	lower := strings.ToLower(text)
	var toks []token
	i := 0
	for i < len(lower) {
		c := lower[i]
		switch {
		case c == ' ' || c == '\t' || c == ',':
			i++
		case c == '-':
			toks = append(toks, token{kind: TokenDash, offset: i})
			i++
		case c >= '0' && c <= '9':
			start := i
			var n int64
			for i < len(lower) && lower[i] >= '0' && lower[i] <= '9' {
				n = n*10 + int64(lower[i]-'0')
				i++
			}
			if suf, ok := ordinalSuffixAt(lower, i); ok {
				toks = append(toks, token{kind: TokenOrdinal, offset: start, value: n})
				i += len(suf)
				continue
			}
			toks = append(toks, token{kind: TokenNumber, offset: start, value: n})
		default:
			if !isLetterByte(c) {
				return nil, &ParseError{Offset: i, Expected: []TokenKind{TokenNumber, TokenMonthName, TokenUnit, TokenKeyword}}
			}
			if tok, n, ok := s.matchVocab(lower, i); ok {
				toks = append(toks, tok)
				i += n
				continue
			}
			start := i
			for i < len(lower) {
				if isLetterByte(lower[i]) {
					i++
					continue
				}
				// A hyphen joins compound ordinals like twenty-first.
				if lower[i] == '-' && i+1 < len(lower) && isLetterByte(lower[i+1]) {
					i += 2
					continue
				}
				break
			}
			word := lower[start:i]
			switch {
			case unitWords[word] != "":
				toks = append(toks, token{kind: TokenUnit, offset: start, text: unitWords[word]})
			case keywordWords[word]:
				toks = append(toks, token{kind: TokenKeyword, offset: start, text: word})
			case ordinalWords[word] != 0:
				toks = append(toks, token{kind: TokenOrdinal, offset: start, value: ordinalWords[word]})
			default:
				return nil, &ParseError{Offset: start, Expected: []TokenKind{
					TokenMonthName, TokenWeekdayName, TokenEraName, TokenUnit, TokenOrdinal, TokenKeyword,
				}}
			}
		}
	}
	toks = append(toks, token{kind: TokenEOF, offset: len(text)})
	return toks, nil
}

// matchVocab attempts a longest-match lookup of a schema name at pos.
// The vocabulary is pre-sorted longest first, so the first hit wins;
// matches must end on a word boundary so "Sun" never claims "Sunfall".
func (s *Schema) matchVocab(lower string, pos int) (token, int, bool) {
	rest := lower[pos:]
	for _, v := range s.vocab {
		if !strings.HasPrefix(rest, v.text) {
			continue
		}
		end := pos + len(v.text)
		if end < len(lower) && isLetterByte(lower[end]) {
			continue
		}
		return token{kind: v.kind, offset: pos, value: int64(v.idx)}, len(v.text), true
	}
	return token{}, 0, false
}

func ordinalSuffixAt(lower string, pos int) (string, bool) {
	for _, suf := range ordinalSuffixes {
		end := pos + len(suf)
		if strings.HasPrefix(lower[pos:], suf) && (end == len(lower) || !isLetterByte(lower[end])) {
			return suf, true
		}
	}
	return "", false
}

func isLetterByte(c byte) bool {
	return c == '\'' || unicode.IsLetter(rune(c))
}
