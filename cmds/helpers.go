package cmds

import (
	"fmt"
	"os"
)

// Var defines name to set the value and name+"." to reset it.
func Var[T any](name string) *T {
	var value T
	Define(name, Func(func(v T) {
		value = v
	}))
	Define(name+".", Func(func() {
		var zero T
		value = zero
	}))
	return &value
}

// Switch defines name to turn the value on and "!"+name to turn it off.
func Switch(name string) *bool {
	var value bool
	Define(name, Func(func() {
		value = true
	}))
	Define("!"+name, Func(func() {
		value = false
	}))
	return &value
}

// Collect defines name and its aliases to append each following argument to the values.
func Collect[T any](name string, desc string, aliases ...string) *[]T {
	var values []T
	Define(name, Func(func(v T) {
		values = append(values, v)
	}).Desc(desc).Alias(aliases...))
	return &values
}

var exit = os.Exit

func printError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	exit(1)
}
