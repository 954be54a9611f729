package datagen

import (
	"reflect"
	"strings"
	"testing"
)

// scriptedRand returns vals in order, cycling, and records every bound it was asked for.
type scriptedRand struct {
	vals   []int
	pos    int
	bounds []int
}

func (s *scriptedRand) Intn(n int) int {
	s.bounds = append(s.bounds, n)
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v
}

func TestNewRecord_Scripted(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		want []string
	}{
		{"low", []int{0, 15, 0, 1, 50}, []string{"AAAAAAAAAA", "PPPPPPPP", "10", "m", "1.5"}},
		{"high", []int{15, 0, 70, 0, 0}, []string{"PPPPPPPPPP", "AAAAAAAA", "80", "f", "1.0"}},
		{"max height", []int{3, 4, 25, 0, 100}, []string{"DDDDDDDDDD", "EEEEEEEE", "35", "f", "2.0"}},
		{"two decimals", []int{7, 7, 40, 1, 7}, []string{"HHHHHHHHHH", "HHHHHHHH", "50", "m", "1.07"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &scriptedRand{vals: tt.vals}
			got := NewRecord(r).Fields()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Fields() = %v, want %v", got, tt.want)
			}
			wantBounds := []int{16, 16, 71, 2, 101}
			if !reflect.DeepEqual(r.bounds, wantBounds) {
				t.Errorf("Intn bounds = %v, want %v", r.bounds, wantBounds)
			}
		})
	}
}

func TestFormatHeight(t *testing.T) {
	tests := []struct {
		cents int
		want  string
	}{
		{100, "1.0"},
		{110, "1.1"},
		{150, "1.5"},
		{107, "1.07"},
		{129, "1.29"},
		{199, "1.99"},
		{200, "2.0"},
	}

	for _, tt := range tests {
		got := FormatHeight(float64(tt.cents) / 100.0)
		if got != tt.want {
			t.Errorf("FormatHeight(%d/100) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestNewRand_SameSeedSameRecords(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 100; i++ {
		ra, rb := NewRecord(a), NewRecord(b)
		if ra != rb {
			t.Fatalf("record %d differs: %+v vs %+v", i, ra, rb)
		}
	}
}

func TestNewRecord_Domains(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 2000; i++ {
		rec := NewRecord(r)
		if len(rec.Name) != NameLen || strings.Count(rec.Name, rec.Name[:1]) != NameLen {
			t.Fatalf("bad name %q", rec.Name)
		}
		if len(rec.Surname) != SurnameLen || strings.Count(rec.Surname, rec.Surname[:1]) != SurnameLen {
			t.Fatalf("bad surname %q", rec.Surname)
		}
		if rec.Name[0] < LetterMin || rec.Name[0] > LetterMax || rec.Surname[0] < LetterMin || rec.Surname[0] > LetterMax {
			t.Fatalf("letter out of range: %q %q", rec.Name, rec.Surname)
		}
		if rec.Age < AgeMin || rec.Age > AgeMax {
			t.Fatalf("age out of range: %d", rec.Age)
		}
		if rec.Gender != "f" && rec.Gender != "m" {
			t.Fatalf("bad gender %q", rec.Gender)
		}
		if rec.Height < 1.0 || rec.Height > 2.0 {
			t.Fatalf("height out of range: %v", rec.Height)
		}
	}
}
