package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/gdpmap-go/pkg/gdpmap/models"
)

// ErrUnterminatedQuote indicates a quoted field still open at end of input.
var ErrUnterminatedQuote = errors.New("unterminated quoted field")

// SyntaxError reports a malformed record in delimited input.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("record starting on line %d: %v", e.Line, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// DelimitedOptions configures delimited text parsing.
type DelimitedOptions struct {
	// Delimiter separates fields. Defaults to ','.
	Delimiter rune
	// Quote encloses fields containing delimiters or line breaks. Defaults to '"'.
	Quote rune
	// KeyColumn is the header name of the country display-name column.
	KeyColumn string
}

func (o DelimitedOptions) withDefaults() DelimitedOptions {
	if o.Delimiter == 0 {
		o.Delimiter = ','
	}
	if o.Quote == 0 {
		o.Quote = '"'
	}
	return o
}

// LoadDelimited reads a delimited text table from r.
// The header is the first record holding opts.KeyColumn.
func LoadDelimited(r io.Reader, opts DelimitedOptions) (*models.GdpTable, error) {
	opts = opts.withDefaults()
	records, err := ReadRecords(r, opts.Delimiter, opts.Quote)
	if err != nil {
		return nil, err
	}
	return buildTable(records, opts.KeyColumn)
}

const (
	stateStart = iota
	stateField
	stateQuoted
	stateQuoteSeen
)

// ReadRecords splits r into records of fields.
//
// A field starting with quote runs until the matching quote; a doubled
// quote inside it is a literal quote and line breaks are kept. A quote
// anywhere else is an ordinary character. Records end at "\n", "\r\n" or
// "\r". Blank lines are skipped and a leading UTF-8 BOM is ignored.
func ReadRecords(r io.Reader, delim, quote rune) ([][]string, error) {
	br := bufio.NewReader(r)
	if ch, _, err := br.ReadRune(); err == nil && ch != '\ufeff' {
		_ = br.UnreadRune()
	}

	var (
		records   [][]string
		record    []string
		field     strings.Builder
		state     = stateStart
		blank     = true
		line      = 1
		startLine = 1
	)

	endField := func() {
		record = append(record, field.String())
		field.Reset()
		state = stateStart
	}
	endRecord := func() {
		if !blank {
			endField()
			records = append(records, record)
		}
		record = nil
		blank = true
		state = stateStart
	}

	for {
		ch, _, err := br.ReadRune()
		if err == io.EOF {
			if state == stateQuoted {
				return nil, &SyntaxError{Line: startLine, Err: ErrUnterminatedQuote}
			}
			endRecord()
			return records, nil
		}
		if err != nil {
			return nil, err
		}

		if blank {
			startLine = line
		}

		if state == stateQuoted {
			if ch == quote {
				state = stateQuoteSeen
				continue
			}
			if ch == '\n' {
				line++
			}
			field.WriteRune(ch)
			continue
		}

		switch {
		case ch == delim:
			blank = false
			endField()
		case ch == '\n':
			endRecord()
			line++
		case ch == '\r':
			if next, _, err := br.ReadRune(); err == nil && next != '\n' {
				_ = br.UnreadRune()
			}
			endRecord()
			line++
		case ch == quote && state == stateQuoteSeen:
			field.WriteRune(quote)
			state = stateQuoted
		case ch == quote && state == stateStart:
			blank = false
			state = stateQuoted
		default:
			blank = false
			field.WriteRune(ch)
			state = stateField
		}
	}
}
