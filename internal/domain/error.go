package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound           = errors.New("entity not found")
	ErrAlreadyExists      = errors.New("entity already exists")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Admission errors for analysis submission
	ErrQuotaExceeded  = errors.New("no analyses remaining")
	ErrSourceNotReady = errors.New("resume text not extracted")

	// Ingestion errors
	ErrExtractionFailed = errors.New("failed to extract text from file")
	ErrUnsupportedFile  = errors.New("unsupported file format")

	// Infra errors
	ErrInvalidExecContext = errors.New("invalid query execution context")
)
