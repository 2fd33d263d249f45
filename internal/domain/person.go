package domain

import (
	"fmt"
	"io"
)

// Informer is satisfied by anything that can describe itself on one line.
type Informer interface {
	PrintInfo(w io.Writer)
}

// Person holds a name. The zero value is ready to use with empty names.
//
// Fields are unexported so callers go through the setters and getters.
type Person struct {
	first  string
	last   string
	middle string // write-only
}

var _ Informer = (*Person)(nil)

// NewPerson returns a Person with first and last name set.
func NewPerson(first, last string) *Person {
	return &Person{first: first, last: last}
}

// SetFirstName replaces the first name; any string is accepted.
func (p *Person) SetFirstName(first string) { p.first = first }

func (p *Person) SetLastName(last string) { p.last = last }

// SetMiddleName stores a middle name. Nothing reads it back.
func (p *Person) SetMiddleName(middle string) { p.middle = middle }

// FullName returns "first last".
func (p *Person) FullName() string {
	return p.first + " " + p.last
}

// PrintName writes "first last" and a newline to w.
func (p *Person) PrintName(w io.Writer) {
	fmt.Fprintln(w, p.first+" "+p.last)
}

// PrintInfo is the base description; types embedding Person may shadow it.
func (p *Person) PrintInfo(w io.Writer) {
	fmt.Fprintln(w, p.first+" "+p.last)
}
