package logging

import (
	"fmt"
	"reflect"
	"time"
)

// Maximum recursion depth to prevent stack overflow
const maxDumpDepth = 10

// Maximum slice or array elements logged per value
const maxDumpElements = 10

// Dump logs the contents of v at debug level, one record per value. Structs
// are walked field by field (exported fields only), maps and slices element
// by element, with cycle detection for self-referencing values. Every record
// carries the origin of the Dump call itself.
func (l *Logger) Dump(v interface{}) {
	l.dump(v, Caller(1))
}

// dump is the shared body of Dump and the package-level mirror. The whole
// walk runs as a single in-flight operation against one sink snapshot, so a
// concurrent Close drains it as a unit.
func (l *Logger) dump(v interface{}, origin Origin) {
	if l == nil || l.closed.Load() || !l.hasSinks() {
		return
	}

	sinks, ok := l.begin()
	if !ok {
		return
	}
	defer l.end()

	emit := func(format string, args ...interface{}) {
		rec := Record{
			Time:     time.Now(),
			Severity: SeverityDebug,
			Category: l.categoryOrDefault(emptyCategory),
			Origin:   origin,
			Message:  fmt.Sprintf(format, args...),
		}
		for _, s := range sinks {
			deliver(s, rec)
		}
	}

	if v == nil {
		emit("Dump: <nil>")
		return
	}

	visited := make(map[uintptr]bool)
	dumpValue(emit, v, emptyString, visited, 0)
}

// dumpValue recursively renders a value through emit.
func dumpValue(emit func(string, ...interface{}), v interface{}, prefix string, visited map[uintptr]bool, depth int) {
	if depth > maxDumpDepth {
		emit("%s: <max depth reached>", prefix)
		return
	}
	if v == nil {
		emit("%s: <nil>", prefix)
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers, recording pointer identities so
	// self-referencing values terminate.
	for val.Kind() == reflect.Interface || val.Kind() == reflect.Ptr {
		if val.IsNil() {
			emit("%s: <nil>", prefix)
			return
		}
		if val.Kind() == reflect.Ptr {
			ptr := val.Pointer()
			if visited[ptr] {
				emit("%s: <circular reference>", prefix)
				return
			}
			visited[ptr] = true
		}
		val = val.Elem()
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		if prefix == emptyString {
			emit("Struct: %s", typ.Name())
		} else {
			emit("%s: %s {", prefix, typ.Name())
		}

		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)

			// Skip unexported fields
			if !fieldVal.CanInterface() {
				continue
			}

			fieldPrefix := field.Name
			if prefix != emptyString {
				fieldPrefix = prefix + "." + field.Name
			}
			dumpValue(emit, fieldVal.Interface(), fieldPrefix, visited, depth+1)
		}

		if prefix != emptyString {
			emit("%s: }", prefix)
		}

	case reflect.Map:
		emit("%s: map[%s]%s (len: %d) {",
			prefix, typ.Key().String(), typ.Elem().String(), val.Len())

		iter := val.MapRange()
		for iter.Next() {
			keyStr := fmt.Sprintf("%v", iter.Key().Interface())
			dumpValue(emit, iter.Value().Interface(), prefix+"["+keyStr+"]", visited, depth+1)
		}

		emit("%s: }", prefix)

	case reflect.Slice, reflect.Array:
		emit("%s: %s (len: %d, cap: %d) {",
			prefix, typ.String(), val.Len(), val.Cap())

		for i := 0; i < val.Len() && i < maxDumpElements; i++ {
			elemPrefix := fmt.Sprintf("%s[%d]", prefix, i)
			elem := val.Index(i)
			if elem.CanInterface() {
				dumpValue(emit, elem.Interface(), elemPrefix, visited, depth+1)
			} else {
				dumpValue(emit, reflect.New(elem.Type()).Elem().Interface(), elemPrefix, visited, depth+1)
			}
		}
		if val.Len() > maxDumpElements {
			emit("%s: ... (%d more elements)", prefix, val.Len()-maxDumpElements)
		}

		emit("%s: }", prefix)

	default:
		if val.IsValid() && val.CanInterface() {
			emit("%s: %v", prefix, val.Interface())
		} else {
			emit("%s: %v", prefix, v)
		}
	}
}
