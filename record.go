package ordtree

import (
	"fmt"
	"unicode/utf8"
)

// Limits for record fields, enforced by Validate.
const (
	MaxNameLength = 100
	MaxAge        = 150
)

// ID is the key of a record. Valid IDs are positive.
type ID int64

// Record is the payload stored in a tree node. Its ID is the tree key and must
// not change once the record has been inserted.
type Record struct {
	ID   ID     `yaml:"id" toml:"id"`
	Name string `yaml:"name" toml:"name"`
	Age  int    `yaml:"age" toml:"age"`
}

// NewRecord creates a validated record.
func NewRecord(id ID, name string, age int) (Record, error) {
	rec := Record{ID: id, Name: name, Age: age}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Validate checks the field constraints of a record: the ID has to be positive,
// the name must be non-empty and no longer than MaxNameLength characters, and
// the age must be within 0…MaxAge.
func (rec Record) Validate() error {
	if rec.ID <= 0 {
		return fmt.Errorf("%w: id %d is not positive", ErrValidation, rec.ID)
	}
	if n := utf8.RuneCountInString(rec.Name); n == 0 || n > MaxNameLength {
		return fmt.Errorf("%w: name must have 1…%d characters, has %d", ErrValidation, MaxNameLength, n)
	}
	if rec.Age < 0 || rec.Age > MaxAge {
		return fmt.Errorf("%w: age %d out of range 0…%d", ErrValidation, rec.Age, MaxAge)
	}
	return nil
}

func (rec Record) String() string {
	return fmt.Sprintf("#%d(%s, %d)", rec.ID, rec.Name, rec.Age)
}
