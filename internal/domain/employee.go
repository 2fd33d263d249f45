package domain

import (
	"fmt"
	"io"
)

// Employee composes a Person with a department and satisfies Ager on its own.
type Employee struct {
	Person
	department string
}

var (
	_ Informer = (*Employee)(nil)
	_ Ager     = (*Employee)(nil)
)

// NewEmployee stores department verbatim; no argument is validated.
func NewEmployee(first, last, department string) *Employee {
	return &Employee{
		Person:     Person{first: first, last: last},
		department: department,
	}
}

// Department returns the department given at construction.
func (e *Employee) Department() string {
	return e.department
}

// PrintStoredDepartment writes the department given at construction.
func (e *Employee) PrintStoredDepartment(w io.Writer) {
	fmt.Fprintln(w, e.department)
}

// PrintDepartment writes department as given, ignoring the stored one.
func (e *Employee) PrintDepartment(w io.Writer, department string) {
	fmt.Fprintln(w, department)
}

// PrintInfo shadows Person.PrintInfo and appends the department.
func (e *Employee) PrintInfo(w io.Writer) {
	fmt.Fprintln(w, e.first+" "+e.last+" "+e.department)
}

// PrintAge satisfies Ager independently of Dog.
func (e *Employee) PrintAge(w io.Writer) {
	fmt.Fprintln(w, "Age = 21")
}
