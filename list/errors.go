package list

import "github.com/pkg/errors"

// Error is a list failure with a distinct negative code.
type Error struct {
	code int
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

// Code returns the negative code identifying the failure.
func (e *Error) Code() int {
	return e.code
}

var (
	ErrListEmpty    = &Error{code: -1, msg: "list is empty"}
	ErrListNull     = &Error{code: -2, msg: "list is nil or destroyed"}
	ErrElementNull  = &Error{code: -3, msg: "element could not be allocated"}
	ErrIndexNull    = &Error{code: -4, msg: "index destination is nil"}
	ErrItemNull     = &Error{code: -5, msg: "item is nil"}
	ErrInvalidIndex = &Error{code: -6, msg: "index out of range"}
	ErrInvalidItem  = &Error{code: -7, msg: "item not found"}
)

// ErrZeroElementSize is returned by the constructors for zero-width elements.
var ErrZeroElementSize = errors.New("element size must be nonzero")

// Code reports the negative code carried by err, if err is (or wraps) an
// *Error.
func Code(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.code, true
	}
	return 0, false
}

func indexError(index, count int) error {
	return errors.Wrapf(ErrInvalidIndex, "index %d with %d elements", index, count)
}
