package domain

import (
	"fmt"
	"io"
)

// Ager is a capability with no state of its own. Values only exist through a
// concrete variant such as Dog or Employee.
type Ager interface {
	PrintAge(w io.Writer)
}

// Dog is an Ager with a fixed age.
type Dog struct{}

var _ Ager = Dog{}

// PrintAge writes the dog's fixed age.
func (Dog) PrintAge(w io.Writer) {
	fmt.Fprintln(w, "Dog age = 23")
}
