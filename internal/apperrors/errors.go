package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("operation forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInvalidMonthFormat indicates a month identifier that is not a valid
// "YYYY-MM" year-month. Malformed months are rejected at the boundary,
// never silently coerced.
var ErrInvalidMonthFormat = errors.New("invalid month format, expected YYYY-MM")

// ErrInvalidLoanParameters indicates loan inputs no amortization schedule
// can be generated from: negative annual rate, non-positive term, or
// non-positive payments per year.
var ErrInvalidLoanParameters = errors.New("invalid loan parameters")
