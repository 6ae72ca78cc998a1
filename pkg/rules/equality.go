package rules

import "reflect"

// Matches reports whether value and target are strictly equal: the same dynamic
// type holding the same value. No conversion is attempted, so int(1) does not
// match int64(1) and "1" does not match 1.
//
// Values that cannot be compared with == (slices, maps, funcs, or structs and
// arrays holding them behind interface fields) are compared with
// reflect.DeepEqual instead of panicking.
func Matches(value, target any) bool {
	if value == nil || target == nil {
		return value == nil && target == nil
	}
	if reflect.TypeOf(value) != reflect.TypeOf(target) {
		return false
	}
	if reflect.ValueOf(value).Comparable() && reflect.ValueOf(target).Comparable() {
		return value == target
	}
	return reflect.DeepEqual(value, target)
}
