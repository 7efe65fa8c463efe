package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSettingNotFound is returned when a settings key has never been set.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrImportedNoteNotFound is returned when a note id is not in the
	// import index.
	ErrImportedNoteNotFound = errors.New("imported note not found")

	// ErrCredentialsNotFound is returned when no registration has been
	// stored yet.
	ErrCredentialsNotFound = errors.New("credentials not found")

	// ErrCorruptCredentials is returned when the stored credential item
	// cannot be decoded.
	ErrCorruptCredentials = errors.New("stored credentials are corrupt")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
