package bind

import (
	"fmt"
	"reflect"
)

// Accessor reads and writes one property of a document of type D as a value
// of type V. The two functions are the only glue between a control and its
// document field; there is no reflection on the synchronization path.
type Accessor[D, V any] struct {
	Get func(doc *D) V
	Set func(doc *D, v V)
}

// Field builds an accessor from an explicit getter/setter pair.
func Field[D, V any](get func(*D) V, set func(*D, V)) Accessor[D, V] {
	return Accessor[D, V]{Get: get, Set: set}
}

// FieldByName resolves an accessor for the named exported struct field of D.
//
// Resolution happens once, here, not per synchronization. The field type must
// be identical to V or convertible both ways under Go conversion rules; V may
// also be an interface the field type satisfies, in which case writes convert
// the dynamic value back to the field type.
//
// Errors are programmer errors: fail fast at registration, do not recover.
func FieldByName[D, V any](name string) (Accessor[D, V], error) {
	docType := reflect.TypeOf((*D)(nil)).Elem()
	if docType.Kind() != reflect.Struct {
		return Accessor[D, V]{}, fmt.Errorf("%w: %s", ErrNotStruct, docType)
	}

	field, ok := docType.FieldByName(name)
	if !ok {
		return Accessor[D, V]{}, fmt.Errorf("%w: %s.%s", ErrUnknownField, docType.Name(), name)
	}

	if !field.IsExported() {
		return Accessor[D, V]{}, fmt.Errorf("%w: %s.%s", ErrUnexportedField, docType.Name(), name)
	}

	valType := reflect.TypeOf((*V)(nil)).Elem()

	if field.Type == valType {
		return Accessor[D, V]{
			Get: func(doc *D) V {
				v, _ := reflect.ValueOf(doc).Elem().FieldByIndex(field.Index).Interface().(V)
				return v
			},
			Set: func(doc *D, v V) {
				reflect.ValueOf(doc).Elem().FieldByIndex(field.Index).Set(reflect.ValueOf(v))
			},
		}, nil
	}

	if !field.Type.ConvertibleTo(valType) {
		return Accessor[D, V]{}, fmt.Errorf("%w: %s.%s is %s, not %s",
			ErrFieldType, docType.Name(), name, field.Type, valType)
	}

	// Widening read path is checked above; the write path must narrow back.
	// For interface V the dynamic type is only known at write time.
	if valType.Kind() != reflect.Interface && !valType.ConvertibleTo(field.Type) {
		return Accessor[D, V]{}, fmt.Errorf("%w: cannot write %s back to %s.%s (%s)",
			ErrFieldType, valType, docType.Name(), name, field.Type)
	}

	return Accessor[D, V]{
		Get: func(doc *D) V {
			fv := reflect.ValueOf(doc).Elem().FieldByIndex(field.Index)

			v, _ := fv.Convert(valType).Interface().(V)

			return v
		},
		Set: func(doc *D, v V) {
			fv := reflect.ValueOf(doc).Elem().FieldByIndex(field.Index)
			fv.Set(reflect.ValueOf(v).Convert(field.Type))
		},
	}, nil
}
