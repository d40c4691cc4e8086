package service

import "errors"

// Sentinel errors returned by the services. Handlers map these to the
// response envelopes: not-found → 404, duplicates → soft "already exists"
// outcome, anything else → generic internal error.
var (
	ErrProductNotFound = errors.New("Product not found")
	ErrBrandNotFound   = errors.New("Brand not found")
	ErrTypeNotFound    = errors.New("Type not found")

	ErrDuplicateProduct = errors.New("Product already exists")
	ErrDuplicateBrand   = errors.New("Brand already exists")
	ErrDuplicateType    = errors.New("Type already exists")
)

// IsNotFound reports whether err is any of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrBrandNotFound) ||
		errors.Is(err, ErrTypeNotFound)
}

// IsDuplicate reports whether err is any of the duplicate sentinels.
func IsDuplicate(err error) bool {
	return errors.Is(err, ErrDuplicateProduct) ||
		errors.Is(err, ErrDuplicateBrand) ||
		errors.Is(err, ErrDuplicateType)
}
