package classname

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// Conditional is an ordered mapping-style token: Classes is included only
// when When is true.
type Conditional struct {
	Classes string
	When    bool
}

// If returns a token that contributes classes only when cond is true.
func If(cond bool, classes string) Conditional {
	return Conditional{Classes: classes, When: cond}
}

// Join flattens tokens into a space-separated class list without
// deduplicating or resolving conflicts.
//
// Accepted tokens: strings, byte slices, nested slices, maps with string
// keys (a key is included when its value is truthy, keys in sorted order),
// Conditional values and templ's KV, CSSClass and CSSClasses forms. nil,
// false, empty strings, zero numbers and nil containers contribute
// nothing. Errors contribute their message; anything else is written as
// its fmt text.
func Join(tokens ...any) string {
	var b strings.Builder
	for _, tok := range tokens {
		appendToken(&b, tok, 0)
	}
	return b.String()
}

// maxDepth bounds nesting so a slice that contains itself terminates.
const maxDepth = 32

func appendToken(b *strings.Builder, tok any, depth int) {
	if depth > maxDepth {
		return
	}
	switch v := tok.(type) {
	case nil:
	case string:
		appendClasses(b, v)
	case []byte:
		appendClasses(b, string(v))
	case bool:
		// true carries no class name.
	case Conditional:
		if v.When {
			appendClasses(b, v.Classes)
		}
	case templ.KeyValue[string, bool]:
		if v.Value {
			appendClasses(b, v.Key)
		}
	case templ.KeyValue[templ.CSSClass, bool]:
		if v.Value && !isNil(v.Key) {
			appendClasses(b, v.Key.ClassName())
		}
	case templ.CSSClasses:
		for _, t := range v {
			appendToken(b, t, depth+1)
		}
	case templ.CSSClass:
		if !isNil(v) {
			appendClasses(b, v.ClassName())
		}
	case []string:
		for _, s := range v {
			appendClasses(b, s)
		}
	case []any:
		for _, t := range v {
			appendToken(b, t, depth+1)
		}
	case map[string]bool:
		keys := make([]string, 0, len(v))
		for k, ok := range v {
			if ok {
				keys = append(keys, k)
			}
		}
		appendKeys(b, keys)
	case int:
		if v != 0 {
			appendClasses(b, strconv.Itoa(v))
		}
	case error:
		if !isNil(v) {
			appendClasses(b, v.Error())
		}
	case fmt.Stringer:
		if !isNil(v) {
			appendClasses(b, v.String())
		}
	default:
		appendReflect(b, tok, depth)
	}
}

func appendReflect(b *strings.Builder, tok any, depth int) {
	rv := reflect.ValueOf(tok)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			appendToken(b, rv.Index(i).Interface(), depth+1)
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return
		}
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			if truthy(iter.Value()) {
				keys = append(keys, iter.Key().String())
			}
		}
		appendKeys(b, keys)
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return
		}
		appendToken(b, rv.Elem().Interface(), depth+1)
	case reflect.String:
		appendClasses(b, rv.String())
	case reflect.Bool:
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		if truthy(rv) {
			appendClasses(b, fmt.Sprint(tok))
		}
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		// Not representable as class text.
	default:
		appendClasses(b, fmt.Sprint(tok))
	}
}

// truthy applies the token falsy rules to a map value: false, empty
// strings, zero or NaN numbers and nil references are falsy.
func truthy(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	case reflect.Interface:
		if rv.IsNil() {
			return false
		}
		return truthy(rv.Elem())
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}

func appendKeys(b *strings.Builder, keys []string) {
	sort.Strings(keys)
	for _, k := range keys {
		appendClasses(b, k)
	}
}

func appendClasses(b *strings.Builder, s string) {
	for _, class := range strings.Fields(s) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(class)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
