package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// DiscoveryFailed indicates the repository could not be scanned for eggs.
	DiscoveryFailed AppErrorType = iota
	// NestListFailed indicates the existing nests could not be fetched.
	NestListFailed
	// NestCreateFailed indicates a missing nest could not be created.
	NestCreateFailed
	// UploadFailed indicates an egg upload was rejected or not delivered.
	UploadFailed
	// ImportCancelled indicates the run was interrupted.
	ImportCancelled
)

// String returns the string representation of the error type.
func (t AppErrorType) String() string {
	switch t {
	case DiscoveryFailed:
		return "DiscoveryFailed"
	case NestListFailed:
		return "NestListFailed"
	case NestCreateFailed:
		return "NestCreateFailed"
	case UploadFailed:
		return "UploadFailed"
	case ImportCancelled:
		return "ImportCancelled"
	default:
		return "Unknown"
	}
}

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// NewDiscoveryError creates a discovery error.
func NewDiscoveryError(root string, cause error) *AppError {
	return NewAppError(DiscoveryFailed, fmt.Sprintf("failed to scan %s for eggs", root), cause)
}

// NewNestListError creates a nest listing error.
func NewNestListError(cause error) *AppError {
	return NewAppError(NestListFailed, "could not fetch nests", cause)
}

// NewNestCreateError creates a nest creation error.
func NewNestCreateError(nest string, cause error) *AppError {
	return NewAppError(NestCreateFailed, fmt.Sprintf("could not create nest %q", nest), cause)
}

// NewUploadError creates an upload error naming the file and target nest.
func NewUploadError(path, nest string, cause error) *AppError {
	return NewAppError(UploadFailed, fmt.Sprintf("could not import %s into nest %q", path, nest), cause)
}

// NewCancelledError creates a cancellation error.
func NewCancelledError(cause error) *AppError {
	return NewAppError(ImportCancelled, "import interrupted", cause)
}
