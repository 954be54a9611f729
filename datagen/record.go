package datagen

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Header column names, in file order.
const (
	ColName    = "name"
	ColSurname = "surname"
	ColAge     = "age"
	ColGender  = "gender"
	ColHeight  = "height"
)

// Columns is the fixed header of every generated file.
var Columns = []string{ColName, ColSurname, ColAge, ColGender, ColHeight}

// Sampling bounds. All ranges are inclusive.
const (
	LetterMin = 'A'
	LetterMax = 'P'

	NameLen    = 10
	SurnameLen = 8

	AgeMin = 10
	AgeMax = 80

	HeightCentsMin = 100
	HeightCentsMax = 200
)

// Genders holds the allowed gender values.
var Genders = []string{"f", "m"}

// Rand is the source of randomness used to sample records.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a deterministic source for a non-zero seed and a
// time-seeded one otherwise.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Record is one generated data row.
type Record struct {
	Name    string
	Surname string
	Age     int
	Gender  string
	Height  float64
}

// NewRecord samples a record. Fields are drawn in column order so a scripted
// Rand maps one-to-one onto the output.
func NewRecord(r Rand) Record {
	return Record{
		Name:    strings.Repeat(string(randLetter(r)), NameLen),
		Surname: strings.Repeat(string(randLetter(r)), SurnameLen),
		Age:     randBetween(r, AgeMin, AgeMax),
		Gender:  Genders[r.Intn(len(Genders))],
		Height:  float64(randBetween(r, HeightCentsMin, HeightCentsMax)) / 100.0,
	}
}

// Fields renders the record as CSV cells.
func (rec Record) Fields() []string {
	return []string{
		rec.Name,
		rec.Surname,
		strconv.Itoa(rec.Age),
		rec.Gender,
		FormatHeight(rec.Height),
	}
}

// FormatHeight renders h in shortest round-trip form, always keeping a
// fractional part: 1 -> "1.0", 1.5 -> "1.5", 1.07 -> "1.07".
func FormatHeight(h float64) string {
	s := strconv.FormatFloat(h, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func randLetter(r Rand) rune {
	return rune(randBetween(r, LetterMin, LetterMax))
}

func randBetween(r Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}
