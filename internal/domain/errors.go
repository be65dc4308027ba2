package domain

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrDocumentConflict = errors.New("document already exists")
	ErrInvalidDocument  = errors.New("invalid document")
)
