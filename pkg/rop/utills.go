package rop

import "reflect"

// IsNil reports whether i is nil or a typed nil pointer, so a
// (*MyError)(nil) stored in an error interface is not taken for a failure.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
