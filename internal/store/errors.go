package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrFoodNotFound is returned when a record does not exist or is not
	// visible to the requesting user. Another user's private record is
	// reported the same way so its existence is not revealed.
	ErrFoodNotFound = errors.New("food was not found")

	// ErrFoodForbidden is returned when a user tries to mutate a record they
	// can see but do not own (a community or system record).
	ErrFoodForbidden = errors.New("food is read-only for this user")

	// ErrDuplicateBarcode is returned when a private record would share its
	// barcode with another private record of the same owner.
	ErrDuplicateBarcode = errors.New("barcode already exists")

	// ErrBarcodeRequired is returned when a community contribution has no
	// barcode to deduplicate on.
	ErrBarcodeRequired = errors.New("barcode is required")

	// ErrUnsupportedTier is returned when a tier is asked for that the store
	// does not persist.
	ErrUnsupportedTier = errors.New("tier is not stored locally")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan food row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan food rows")
)
