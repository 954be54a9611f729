package oraload

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"bigdata-gen/datagen"
)

// Target column names, in the same order as datagen.Columns.
const (
	ColName    = "NAME"
	ColSurname = "SURNAME"
	ColAge     = "AGE"
	ColGender  = "GENDER"
	ColHeight  = "HEIGHT"
)

// Columns lists the table columns in insert order.
var Columns = []string{ColName, ColSurname, ColAge, ColGender, ColHeight}

type columnDef struct {
	name    string
	typeStr string
}

var tableLayout = []columnDef{
	{ColName, fmt.Sprintf("VARCHAR2(%d)", datagen.NameLen)},
	{ColSurname, fmt.Sprintf("VARCHAR2(%d)", datagen.SurnameLen)},
	{ColAge, "NUMBER(3)"},
	{ColGender, "VARCHAR2(1)"},
	{ColHeight, "NUMBER(3,2)"},
}

var identRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// NormalizeIdentifier validates name as an unquoted Oracle identifier and uppercases it.
func NormalizeIdentifier(name string) (string, error) {
	if !identRe.MatchString(name) {
		return "", fmt.Errorf("identifier %q must match %s", name, identRe.String())
	}
	upper := strings.ToUpper(name)
	if len(upper) > 30 {
		return "", errors.New("identifier exceeds Oracle 30-byte limit")
	}
	return upper, nil
}

// CreateTableDDL returns the CREATE TABLE statement for a dataset table.
func CreateTableDDL(tableName string) string {
	defs := make([]string, 0, len(tableLayout))
	for _, c := range tableLayout {
		defs = append(defs, fmt.Sprintf("%s %s NOT NULL", c.name, c.typeStr))
	}
	return fmt.Sprintf("CREATE TABLE %s (\n  %s\n)", tableName, strings.Join(defs, ",\n  "))
}
