package redblack

import (
	"bytes"
)

// Key provides a method for determining if a value is less than another
// value. Comparability is the only thing the tree requires of a key type;
// equality is derived as "neither key is less than the other".
type Key interface {
	// LessThan indicates that Key sorts before "i". Both Key and "i" must
	// wrap the same underlying type or LessThan will panic.
	LessThan(i interface{}) bool
}

// Int implements Key for the int type.
type Int int

// LessThan implements Key.LessThan.
func (x Int) LessThan(i interface{}) bool {
	return x < i.(Int)
}

// Int64 implements Key for the int64 type.
type Int64 int64

// LessThan implements Key.LessThan.
func (x Int64) LessThan(i interface{}) bool {
	return x < i.(Int64)
}

// String implements Key for the string type.
type String string

// LessThan implements Key.LessThan.
func (x String) LessThan(i interface{}) bool {
	return x < i.(String)
}

// Bytes implements Key for []byte values.
type Bytes []byte

// LessThan implements Key.LessThan.
func (x Bytes) LessThan(i interface{}) bool {
	return bytes.Compare(x, i.(Bytes)) < 0
}
