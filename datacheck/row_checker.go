package datacheck

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"bigdata-gen/datagen"
)

// rowChecker validates fields one after another and keeps the first error.
// Once an error is recorded, later checks are skipped.
type rowChecker struct {
	err error
}

func (c *rowChecker) repeatedLetter(s string, field string, n int) {
	if c.err != nil {
		return
	}
	if len(s) != n {
		c.err = fmt.Errorf("%w: %s %q has length %d, want %d", ErrField, field, s, len(s), n)
		return
	}
	l := s[0]
	if l < datagen.LetterMin || l > datagen.LetterMax {
		c.err = fmt.Errorf("%w: %s %q uses letter outside %c..%c", ErrField, field, s, datagen.LetterMin, datagen.LetterMax)
		return
	}
	if strings.Count(s, s[:1]) != n {
		c.err = fmt.Errorf("%w: %s %q is not a single repeated letter", ErrField, field, s)
	}
}

func (c *rowChecker) intBetween(s string, field string, lo, hi int) {
	if c.err != nil {
		return
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		c.err = fmt.Errorf("%w: invalid %s %q: %v", ErrField, field, s, err)
		return
	}
	if v < lo || v > hi {
		c.err = fmt.Errorf("%w: %s %d outside [%d, %d]", ErrField, field, v, lo, hi)
	}
}

func (c *rowChecker) oneOf(s string, field string, allowed []string) {
	if c.err != nil {
		return
	}
	if !slices.Contains(allowed, s) {
		c.err = fmt.Errorf("%w: %s %q not one of %v", ErrField, field, s, allowed)
	}
}

// height accepts only canonical renderings of cents/100 within bounds.
func (c *rowChecker) height(s string, field string) {
	if c.err != nil {
		return
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		c.err = fmt.Errorf("%w: invalid %s %q: %v", ErrField, field, s, err)
		return
	}
	cents := int(math.Round(v * 100))
	if cents < datagen.HeightCentsMin || cents > datagen.HeightCentsMax {
		c.err = fmt.Errorf("%w: %s %s outside [1.0, 2.0]", ErrField, field, s)
		return
	}
	if datagen.FormatHeight(float64(cents)/100.0) != s {
		c.err = fmt.Errorf("%w: %s %q is not a multiple of 0.01", ErrField, field, s)
	}
}

// CheckRecord validates one data row against the generator's field domains.
func CheckRecord(fields []string) error {
	if len(fields) != len(datagen.Columns) {
		return fmt.Errorf("%w: got %d fields, want %d", ErrField, len(fields), len(datagen.Columns))
	}
	c := &rowChecker{}
	c.repeatedLetter(fields[0], datagen.ColName, datagen.NameLen)
	c.repeatedLetter(fields[1], datagen.ColSurname, datagen.SurnameLen)
	c.intBetween(fields[2], datagen.ColAge, datagen.AgeMin, datagen.AgeMax)
	c.oneOf(fields[3], datagen.ColGender, datagen.Genders)
	c.height(fields[4], datagen.ColHeight)
	return c.err
}
