package calendar

import (
	"fmt"
	"strings"
)

// ResultKind discriminates what a parse produced.
type ResultKind int

const (
	// ResultDate means the input named a point in time.
	ResultDate ResultKind = iota
	// ResultDuration means the input named a signed span.
	ResultDuration
)

// Result is the outcome of a successful parse: either a Date or a
// Duration, discriminated by Kind.
type Result struct {
	Kind     ResultKind
	Date     Date
	Duration Duration
}

// ParseError reports where a parse failed and which token kinds would
// have been acceptable there, so collaborators can render actionable
// messages instead of a bare failure.
type ParseError struct {
	Offset   int
	Expected []TokenKind
}

// Error lists the offset and the expected alternatives.
func (e *ParseError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("parse error at offset %d", e.Offset)
	}
	names := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		names[i] = k.String()
	}
	return fmt.Sprintf("parse error at offset %d: expected %s", e.Offset, strings.Join(names, " or "))
}

// Parse converts text into a Date or a Duration using the schema-driven
// grammar. Supported forms:
//
//	1101-02-12                absolute numeric date (negative years allowed)
//	12 Frostfall 1101 [Era]   day, month name, year, optional era marker
//	third day of the second month of [year] 1101
//	third day of Frostfall 1101
//	in 3 months and 5 days    duration, sign from the directional keyword
//	10 days ago               duration, negative
//	1y32mo6d                  compact duration, positive
//
// Dates are resolved through the same validating constructors as direct
// construction, so a parsed Date can never violate schema invariants.
func Parse(s *Schema, text string) (Result, error) {
	toks, err := s.tokenize(text)
	if err != nil {
		return Result{}, err
	}
	p := &resolver{s: s, toks: toks}
	return p.top()
}

// ParseDate is Parse restricted to date results.
func ParseDate(s *Schema, text string) (Date, error) {
	res, err := Parse(s, text)
	if err != nil {
		return Date{}, err
	}
	if res.Kind != ResultDate {
		return Date{}, &ParseError{Offset: 0, Expected: []TokenKind{TokenNumber, TokenOrdinal}}
	}
	return res.Date, nil
}

// ParseDuration is Parse restricted to duration results.
func ParseDuration(s *Schema, text string) (Duration, error) {
	res, err := Parse(s, text)
	if err != nil {
		return Duration{}, err
	}
	if res.Kind != ResultDuration {
		return Duration{}, &ParseError{Offset: 0, Expected: []TokenKind{TokenNumber, TokenKeyword}}
	}
	return res.Duration, nil
}

type resolver struct {
	s    *Schema
	toks []token
	pos  int
}

func (p *resolver) peek() token { return p.toks[p.pos] }
func (p *resolver) next() token { t := p.toks[p.pos]; p.pos++; return t }
func (p *resolver) at(k TokenKind) bool {
	return p.toks[p.pos].kind == k
}

func (p *resolver) fail(expected ...TokenKind) error {
	return &ParseError{Offset: p.peek().offset, Expected: expected}
}

func (p *resolver) expect(k TokenKind) (token, error) {
	if !p.at(k) {
		return token{}, p.fail(k)
	}
	return p.next(), nil
}

// top dispatches on the leading tokens.
func (p *resolver) top() (Result, error) {
	// Leading weekday name ("Moonday, 12 Frostfall 1101") is consumed
	// and checked against the resolved date at the end.
	wantWeekday := -1
	weekdayOffset := 0
	if p.at(TokenWeekdayName) {
		tok := p.next()
		wantWeekday = int(tok.value) - 1
		weekdayOffset = tok.offset
	}

	var res Result
	var err error
	switch {
	case p.at(TokenKeyword) && p.peek().text == "in":
		p.next()
		res, err = p.duration(1, false, false)
	case p.at(TokenKeyword) && p.peek().text == "the":
		p.next()
		res, err = p.ordinalDate()
	case p.at(TokenOrdinal):
		res, err = p.ordinalDate()
	case p.at(TokenDash) || p.at(TokenNumber):
		res, err = p.numericLead()
	default:
		return Result{}, p.fail(TokenNumber, TokenOrdinal, TokenKeyword, TokenWeekdayName)
	}
	if err != nil {
		return Result{}, err
	}

	if wantWeekday >= 0 {
		if res.Kind != ResultDate {
			return Result{}, &ParseError{Offset: weekdayOffset, Expected: []TokenKind{TokenNumber, TokenOrdinal}}
		}
		if res.Date.Weekday() != wantWeekday {
			return Result{}, &ParseError{Offset: weekdayOffset, Expected: []TokenKind{TokenWeekdayName}}
		}
	}
	return res, nil
}

// numericLead handles everything starting with a number (or a negative
// year): y-m-d dates, "12 Frostfall 1101" dates, and bare durations
// ("10 days ago", "3 months and 5 days", "1y32mo6d").
func (p *resolver) numericLead() (Result, error) {
	negative := false
	if p.at(TokenDash) {
		negative = true
		p.next()
	}
	first, err := p.expect(TokenNumber)
	if err != nil {
		return Result{}, err
	}

	switch {
	case p.at(TokenDash):
		// y-m-d
		year := first.value
		if negative {
			year = -year
		}
		p.next()
		m, err := p.expect(TokenNumber)
		if err != nil {
			return Result{}, err
		}
		if _, err := p.expect(TokenDash); err != nil {
			return Result{}, err
		}
		d, err := p.expect(TokenNumber)
		if err != nil {
			return Result{}, err
		}
		if _, err := p.expect(TokenEOF); err != nil {
			return Result{}, err
		}
		date, err := NewDate(p.s, year, int(m.value), d.value)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: ResultDate, Date: date}, nil

	case p.at(TokenMonthName) && !negative:
		// day month year [era]
		month := int(p.next().value)
		yearTok, err := p.expect(TokenNumber)
		if err != nil {
			return Result{}, err
		}
		return p.finishNamedDate(first.value, month, yearTok.value)

	case p.at(TokenUnit):
		p.pos--
		return p.duration(1, true, negative)
	}

	return Result{}, p.fail(TokenDash, TokenMonthName, TokenUnit)
}

// finishNamedDate consumes an optional trailing era marker and builds
// the date. With an era marker the year is era-relative; without one it
// is the canonical signed year.
func (p *resolver) finishNamedDate(day int64, month int, year int64) (Result, error) {
	eraIdx := -1
	if p.at(TokenEraName) {
		eraIdx = int(p.next().value)
	}
	if _, err := p.expect(TokenEOF); err != nil {
		return Result{}, err
	}

	var date Date
	var err error
	if eraIdx >= 0 {
		date, err = NewDate(p.s, p.s.canonicalYear(eraIdx, year), month, day)
	} else {
		date, err = NewDate(p.s, year, month, day)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: ResultDate, Date: date}, nil
}

// ordinalDate resolves "third day of the second month of year 1101"
// ("year" optional) and "third day of Frostfall 1101".
func (p *resolver) ordinalDate() (Result, error) {
	dayTok, err := p.expect(TokenOrdinal)
	if err != nil {
		return Result{}, err
	}
	if err := p.expectUnit("day"); err != nil {
		return Result{}, err
	}
	if err := p.expectKeyword("of"); err != nil {
		return Result{}, err
	}
	p.skipKeyword("the")

	var month int
	switch {
	case p.at(TokenOrdinal):
		month = int(p.next().value)
		if err := p.expectUnit("month"); err != nil {
			return Result{}, err
		}
	case p.at(TokenMonthName):
		month = int(p.next().value)
	default:
		return Result{}, p.fail(TokenOrdinal, TokenMonthName)
	}

	p.skipKeyword("of")
	p.skipUnit("year")
	yearTok, err := p.expect(TokenNumber)
	if err != nil {
		return Result{}, err
	}
	return p.finishNamedDate(dayTok.value, month, yearTok.value)
}

// duration consumes unit components, optionally joined by "and", and an
// optional trailing directional keyword ("ago"/"hence"). A component may
// carry its own leading dash; firstNeg is set when the caller already
// consumed a dash for the first component. The overall sign flips the
// whole span.
func (p *resolver) duration(sign int64, allowTrailing, firstNeg bool) (Result, error) {
	var dur Duration
	neg := firstNeg
	for {
		n, err := p.expect(TokenNumber)
		if err != nil {
			return Result{}, err
		}
		u, err := p.expect(TokenUnit)
		if err != nil {
			return Result{}, err
		}
		v := n.value
		if neg {
			v = -v
		}
		switch u.text {
		case "year":
			dur.Years += v
		case "month":
			dur.Months += v
		case "week":
			dur.Days += v * p.s.DaysInWeek()
		case "day":
			dur.Days += v
		}
		neg = false
		if p.at(TokenKeyword) && p.peek().text == "and" {
			p.next()
			continue
		}
		if p.at(TokenDash) {
			p.next()
			neg = true
			continue
		}
		if p.at(TokenNumber) {
			continue
		}
		break
	}

	if allowTrailing && p.at(TokenKeyword) {
		switch p.peek().text {
		case "ago":
			p.next()
			sign = -1
		case "hence":
			p.next()
			sign = 1
		}
	}
	if _, err := p.expect(TokenEOF); err != nil {
		return Result{}, err
	}

	if sign < 0 {
		dur = dur.Negate()
	}
	return Result{Kind: ResultDuration, Duration: dur}, nil
}

func (p *resolver) expectUnit(name string) error {
	if !p.at(TokenUnit) || p.peek().text != name {
		return p.fail(TokenUnit)
	}
	p.next()
	return nil
}

func (p *resolver) expectKeyword(word string) error {
	if !p.at(TokenKeyword) || p.peek().text != word {
		return p.fail(TokenKeyword)
	}
	p.next()
	return nil
}

func (p *resolver) skipKeyword(word string) {
	if p.at(TokenKeyword) && p.peek().text == word {
		p.next()
	}
}

func (p *resolver) skipUnit(name string) {
	if p.at(TokenUnit) && p.peek().text == name {
		p.next()
	}
}
