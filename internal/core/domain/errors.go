package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownResource is returned when a resource name is not products or users.
	ErrUnknownResource = zerr.New("unknown resource")

	// ErrUnknownLookup is returned when a dropdown list is not offered by the resource.
	ErrUnknownLookup = zerr.New("unknown lookup")

	// ErrUnknownFilter is returned when a list filter is not supported by the resource.
	ErrUnknownFilter = zerr.New("unknown filter")

	// ErrInvalidPage is returned when a page number is below 1 or a page holds more items than its size.
	ErrInvalidPage = zerr.New("invalid page")

	// ErrInvalidPageSize is returned when a page size is not positive.
	ErrInvalidPageSize = zerr.New("invalid page size")

	// ErrTransportFailure matches gateway errors where no server envelope was received.
	ErrTransportFailure = zerr.New("transport failure")

	// ErrApplicationFailure matches gateway errors carrying a server error envelope.
	ErrApplicationFailure = zerr.New("application failure")

	// ErrUnexpectedEnvelope is returned when a response body does not have the shape the endpoint declares.
	ErrUnexpectedEnvelope = zerr.New("unexpected response envelope")

	// ErrValidationFailed matches client-side field validation failures.
	ErrValidationFailed = zerr.New("validation failed")

	// ErrMissingID is returned when an update, delete or status change has no record id.
	ErrMissingID = zerr.New("record id is required")

	// ErrUnknownOrigin is returned when a mutation request names no known operation.
	ErrUnknownOrigin = zerr.New("unknown mutation origin")

	// ErrControllerClosed is returned when a query controller is used after Close.
	ErrControllerClosed = zerr.New("query controller is closed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the merged configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrEnvParseFailed is returned when CRMADMIN_* environment overrides cannot be parsed.
	ErrEnvParseFailed = zerr.New("failed to parse environment overrides")
)
