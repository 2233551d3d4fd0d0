package app_errors

import "errors"

var ErrNotFound = errors.New("Not Found")
var ErrProgrammeNotFound = errors.New("Programme not found")
var ErrModuleNotFound = errors.New("Module not found")
var ErrInvalidJSON = errors.New("Invalid JSON")
var ErrNameRequired = errors.New("Name is required")
var ErrModuleNameRequired = errors.New("Module name is required")
var ErrTaskFieldsRequired = errors.New("Name, start, and end are required")
var ErrInternal = errors.New("Internal Server Error")

// IsValidation reports whether err is a missing or invalid required field.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrModuleNameRequired) ||
		errors.Is(err, ErrTaskFieldsRequired)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrProgrammeNotFound) ||
		errors.Is(err, ErrModuleNotFound)
}
