package datacheck

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bigdata-gen/datagen"
)

const header = "name,surname,age,gender,height\n"

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bigdata.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckRecord(t *testing.T) {
	tests := []struct {
		name    string
		row     string
		wantErr bool
	}{
		{"valid low", "AAAAAAAAAA,AAAAAAAA,10,f,1.0", false},
		{"valid high", "PPPPPPPPPP,PPPPPPPP,80,m,2.0", false},
		{"valid two decimals", "CCCCCCCCCC,DDDDDDDD,33,m,1.07", false},
		{"name too short", "AAAAAAAAA,AAAAAAAA,10,f,1.0", true},
		{"name mixed letters", "AAAAABAAAA,AAAAAAAA,10,f,1.0", true},
		{"name letter Q", "QQQQQQQQQQ,AAAAAAAA,10,f,1.0", true},
		{"name lowercase", "aaaaaaaaaa,AAAAAAAA,10,f,1.0", true},
		{"surname too long", "AAAAAAAAAA,AAAAAAAAA,10,f,1.0", true},
		{"age low", "AAAAAAAAAA,AAAAAAAA,9,f,1.0", true},
		{"age high", "AAAAAAAAAA,AAAAAAAA,81,f,1.0", true},
		{"age not int", "AAAAAAAAAA,AAAAAAAA,ten,f,1.0", true},
		{"gender", "AAAAAAAAAA,AAAAAAAA,10,x,1.0", true},
		{"height low", "AAAAAAAAAA,AAAAAAAA,10,f,0.99", true},
		{"height high", "AAAAAAAAAA,AAAAAAAA,10,f,2.01", true},
		{"height three decimals", "AAAAAAAAAA,AAAAAAAA,10,f,1.005", true},
		{"height without fraction", "AAAAAAAAAA,AAAAAAAA,10,f,2", true},
		{"height padded", "AAAAAAAAAA,AAAAAAAA,10,f,1.50", true},
		{"too few fields", "AAAAAAAAAA,AAAAAAAA,10,f", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRecord(strings.Split(tt.row, ","))
			if tt.wantErr {
				if !errors.Is(err, ErrField) {
					t.Errorf("expected ErrField, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCheckRecord_FirstErrorWins(t *testing.T) {
	err := CheckRecord([]string{"bad", "AAAAAAAA", "999", "x", "9.9"})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), datagen.ColName) {
		t.Errorf("expected error about %s, got %v", datagen.ColName, err)
	}
}

func TestVerify_GeneratedFile(t *testing.T) {
	for _, name := range []string{"bigdata.csv", "bigdata.csv" + datagen.CompressedExt} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			res, err := datagen.Generate(context.Background(), datagen.Config{
				OutputPath: path,
				Lines:      1500,
				Rand:       datagen.NewRand(11),
			})
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}

			rep, err := Verify(path, Options{ExpectedRows: 1500})
			if err != nil {
				t.Fatalf("Verify failed: %v", err)
			}
			if rep.Rows != 1500 {
				t.Errorf("Rows = %d, want 1500", rep.Rows)
			}
			if rep.Size != res.Size {
				t.Errorf("Size = %d, generator reported %d", rep.Size, res.Size)
			}
		})
	}
}

func TestVerify_HeaderOnly(t *testing.T) {
	path := writeTemp(t, header)
	rep, err := Verify(path, Options{ExpectedRows: 0})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if rep.Rows != 0 || rep.Size != int64(len(header)) {
		t.Errorf("unexpected report: %+v", rep)
	}
}

func TestVerify_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		opts    Options
		wantErr error
		line    string
	}{
		{"empty file", "", Options{ExpectedRows: -1}, ErrHeader, ""},
		{"wrong header", "name,surname,age,sex,height\n", Options{ExpectedRows: -1}, ErrHeader, ""},
		{"bad row", header + "AAAAAAAAAA,AAAAAAAA,10,f,1.0\nAAAAAAAAAA,AAAAAAAA,99,f,1.0\n", Options{ExpectedRows: -1}, ErrField, "line 3"},
		{"row count", header + "AAAAAAAAAA,AAAAAAAA,10,f,1.0\n", Options{ExpectedRows: 2}, ErrRowCount, ""},
		{"field count", header + "AAAAAAAAAA,AAAAAAAA,10,f\n", Options{ExpectedRows: -1}, csv.ErrFieldCount, "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Verify(writeTemp(t, tt.content), tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.line != "" && !strings.Contains(err.Error(), tt.line) {
				t.Errorf("expected %q in error, got %v", tt.line, err)
			}
		})
	}
}

func TestVerify_MissingFile(t *testing.T) {
	_, err := Verify(filepath.Join(t.TempDir(), "missing.csv"), Options{ExpectedRows: -1})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
