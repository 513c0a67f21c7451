package bind

import "errors"

var (
	// ErrNilControl is returned when a nil control is registered.
	ErrNilControl = errors.New("control is nil")

	// ErrControlBound is returned when a control is registered twice.
	ErrControlBound = errors.New("control is already bound")

	// ErrNotStruct is returned by FieldByName when the document type is not a struct.
	ErrNotStruct = errors.New("document type is not a struct")

	// ErrUnknownField is returned by FieldByName for a field the document type does not have.
	ErrUnknownField = errors.New("no such field")

	// ErrUnexportedField is returned by FieldByName for a field that cannot be set.
	ErrUnexportedField = errors.New("field is not exported")

	// ErrFieldType is returned by FieldByName when the field and value types are incompatible.
	ErrFieldType = errors.New("field type is incompatible")

	// ErrNoOptions is returned when a selection binding is registered with an empty item list.
	ErrNoOptions = errors.New("no options supplied")

	// ErrDuplicateOption is returned when a selection binding's values or labels collide.
	ErrDuplicateOption = errors.New("duplicate option")

	// ErrValueMissing is reported by LoadValues when a document value is absent
	// from a selection binding's item list and the binding opted into FailOnMissing.
	ErrValueMissing = errors.New("value not in option list")
)
