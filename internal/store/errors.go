package store

import "errors"

// Sentinel errors returned by repository methods. Callers match with
// [errors.Is].
var (
	// ErrSettingNotFound is returned when a settings key has never been
	// persisted. First run of the application is the normal producer.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
