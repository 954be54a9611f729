package oraload

import (
	"fmt"
	"strconv"
)

// rowParser collects the first conversion error so fields can be parsed
// declaratively without checking an error after every call.
type rowParser struct {
	err error
}

func (p *rowParser) Int(s string, field string) interface{} {
	if p.err != nil {
		return nil
	}
	val, err := strconv.Atoi(s)
	if err != nil {
		p.err = fmt.Errorf("invalid %s '%s': %w", field, s, err)
		return nil
	}
	return val
}

func (p *rowParser) Float64(s string, field string) interface{} {
	if p.err != nil {
		return nil
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.err = fmt.Errorf("invalid %s '%s': %w", field, s, err)
		return nil
	}
	return val
}

// String rejects empty values; every dataset column is NOT NULL.
func (p *rowParser) String(s string, field string) interface{} {
	if p.err != nil {
		return nil
	}
	if s == "" {
		p.err = fmt.Errorf("empty %s", field)
		return nil
	}
	return s
}

func (p *rowParser) Err() error {
	return p.err
}
