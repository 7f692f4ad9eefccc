package postgres

import (
	"reflect"
	"sync"
)

// ExtractDBColumns returns the column names from T's "db" tags in field
// order, descending into embedded structs (e.g. entity.OwnedEntity).
// Repositories call it once at construction time.
func ExtractDBColumns[T any]() []string {
	var zero T
	return columnsOf(reflect.TypeOf(zero))
}

func columnsOf(t reflect.Type) []string {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	var cols []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			cols = append(cols, columnsOf(field.Type)...)
			continue
		}
		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			cols = append(cols, tag)
		}
	}
	return cols
}

// typeFields caches the tagged and embedded field indexes of a struct type.
type typeFields struct {
	tagged   map[string]int
	embedded []int
}

var fieldCache sync.Map // map[reflect.Type]*typeFields

func fieldsOf(t reflect.Type) *typeFields {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(*typeFields)
	}

	tf := &typeFields{tagged: make(map[string]int)}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous {
			tf.embedded = append(tf.embedded, i)
			continue
		}
		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			tf.tagged[tag] = i
		}
	}
	fieldCache.Store(t, tf)
	return tf
}

// StructToMap converts a struct to a column->value map using "db" tags.
// Columns listed in exclude are left out.
func StructToMap(v any, exclude ...string) map[string]any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	res := make(map[string]any)
	collect(rv, res)
	for _, col := range exclude {
		delete(res, col)
	}
	return res
}

func collect(rv reflect.Value, into map[string]any) {
	tf := fieldsOf(rv.Type())
	for tag, idx := range tf.tagged {
		into[tag] = rv.Field(idx).Interface()
	}
	for _, idx := range tf.embedded {
		f := rv.Field(idx)
		if f.Kind() == reflect.Ptr {
			if f.IsNil() {
				continue
			}
			f = f.Elem()
		}
		if f.Kind() == reflect.Struct {
			collect(f, into)
		}
	}
}
