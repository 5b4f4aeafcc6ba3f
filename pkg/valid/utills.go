package valid

import (
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// FlattenTag decomposes nested Pair tags into their parts, outermost first.
// A plain tag flattens to itself.
func FlattenTag(tag any) []any {
	if p, ok := tag.(Pair); ok {
		return append(FlattenTag(p.Outer), FlattenTag(p.Inner)...)
	}
	return []any{tag}
}
