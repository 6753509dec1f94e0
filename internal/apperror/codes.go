package apperror

// Stable numeric error codes surfaced to clients. Codes are grouped by the
// HTTP status they usually travel with (40xxx for validation, 404xx for
// missing resources, 409xx for conflicts). Once published a code never
// changes meaning.
const (
	// Request-shape and field validation.
	CodeBodyRequired      = 40001
	CodeIDInvalid         = 40002
	CodeTitleRequired     = 40003
	CodeTitleTooLong      = 40004
	CodeGenreRequired     = 40005
	CodeRatingOutOfRange  = 40006
	CodeReleaseDateFormat = 40007
	CodeIDMismatch        = 40008

	// Resource state.
	CodeMovieNotFound  = 40401
	CodeMovieDuplicate = 40901

	// Throttling.
	CodeTooManyRequests = 42901

	// These two mirror their HTTP status by convention.
	CodeUnauthorized = 401
	CodeInternal     = 500
)
