// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record reads and writes geometric primitives as tagged JSON
// records.
//
// A record is a JSON object with exactly one key, the primitive kind,
// whose value is an array of numbers:
//
//	{"point":[1,2,3]}
//	{"line":[0,1,0,0,0,1]}
//	{"plane":[1,1,1,-1]}
//
// An input file holds one JSON value per line, either a single record
// or an array of records. Blank lines and lines starting with "#" are
// ignored.
package record

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aclements/geomplot/geom"
)

// DefaultDim is the dimension used by Parse.
const DefaultDim = 3

// maxLine bounds the length of a single input line.
const maxLine = 16 << 20

// Record is a single parsed, but not yet validated, primitive.
type Record struct {
	// Kind is the primitive kind named by the record's key.
	Kind geom.Kind

	// Values is the record's numeric payload.
	Values []float64

	// Line is the 1-based input line the record came from, or 0
	// if the record was not parsed from input.
	Line int
}

// Primitive validates r and constructs the primitive it describes.
// Validation failures are reported as a *ParseError wrapping a
// *geom.ValidationError.
func (r *Record) Primitive() (geom.Primitive, error) {
	p, err := geom.New(r.Kind, r.Values)
	if err != nil {
		return nil, &ParseError{r.Line, err}
	}
	return p, nil
}

// Primitives constructs the primitive for each record in rs. It stops
// at the first invalid record.
func Primitives(rs []*Record) ([]geom.Primitive, error) {
	ps := make([]geom.Primitive, 0, len(rs))
	for _, r := range rs {
		p, err := r.Primitive()
		if err != nil {
			return nil, err
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// A ParseError reports malformed input.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	// ErrArity is wrapped by a ParseError when a record's payload
	// has the wrong number of values for its kind.
	ErrArity = errors.New("wrong number of values")

	// ErrTag is wrapped by a ParseError when a record does not
	// have exactly one known kind key.
	ErrTag = errors.New("bad record tag")
)

// A Parser parses records for a fixed dimension.
type Parser struct {
	// Dim is the dimension of the space. A point has Dim values, a
	// line 2*Dim, and a plane Dim+1. If Dim is 0, arity is not
	// checked here and is left to primitive validation.
	Dim int
}

// Parse parses records from r with dimension DefaultDim.
func Parse(r io.Reader) ([]*Record, error) {
	return (&Parser{Dim: DefaultDim}).Parse(r)
}

// Parse parses all records from r. It returns a *ParseError on the
// first malformed line.
func (p *Parser) Parse(r io.Reader) ([]*Record, error) {
	records := []*Record{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxLine)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		rs, err := p.parseLine(line)
		if err != nil {
			return nil, &ParseError{lineno, err}
		}
		for _, rec := range rs {
			rec.Line = lineno
		}
		records = append(records, rs...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (p *Parser) parseLine(line []byte) ([]*Record, error) {
	var raws []json.RawMessage
	switch line[0] {
	case '[':
		if err := json.Unmarshal(line, &raws); err != nil {
			return nil, err
		}
	case '{':
		raws = []json.RawMessage{line}
	default:
		return nil, fmt.Errorf("expected a record or an array of records")
	}

	rs := make([]*Record, 0, len(raws))
	for i, raw := range raws {
		rec, err := p.parseRecord(raw)
		if err != nil {
			if len(raws) > 1 {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
			return nil, err
		}
		rs = append(rs, rec)
	}
	return rs, nil
}

func (p *Parser) parseRecord(raw json.RawMessage) (*Record, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	if len(obj) != 1 {
		return nil, fmt.Errorf("%w: record has %d keys, want 1", ErrTag, len(obj))
	}

	rec := &Record{}
	for tag, payload := range obj {
		kind, err := geom.ParseKind(tag)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTag, err)
		}
		rec.Kind = kind
		if err := json.Unmarshal(payload, &rec.Values); err != nil {
			return nil, fmt.Errorf("%s payload: %w", tag, err)
		}
	}
	if rec.Values == nil {
		return nil, fmt.Errorf("%s payload: expected an array of numbers", rec.Kind)
	}

	if want := p.arity(rec.Kind); want != 0 && len(rec.Values) != want {
		return nil, fmt.Errorf("%w: %s needs %d values, got %d", ErrArity, rec.Kind, want, len(rec.Values))
	}
	return rec, nil
}

func (p *Parser) arity(kind geom.Kind) int {
	if p.Dim <= 0 {
		return 0
	}
	switch kind {
	case geom.KindPoint:
		return p.Dim
	case geom.KindLine:
		return 2 * p.Dim
	case geom.KindPlane:
		return p.Dim + 1
	}
	return 0
}
