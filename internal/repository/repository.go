package repository

// Repository is the generic storage contract for a single entity type,
// keyed by ID. A missing ID is never an error: Get and GetByAttribute
// return nil, Update and Delete are no-ops.
//
// The GORM-backed and in-memory implementations are interchangeable
// behind this interface; the contract tests run against both.
type Repository[T any] interface {
	// Add persists a new entity. Backend constraint violations (e.g. a
	// unique index) surface as backend errors, not validation errors.
	Add(entity *T) error

	// Get returns the entity with the given ID, or nil if absent.
	Get(id string) (*T, error)

	// GetAll returns every stored entity. Order is unspecified unless
	// the backing store guarantees one.
	GetAll() ([]*T, error)

	// Update merges the given column/value pairs into the entity and
	// refreshes its last-modified timestamp. No-op when the ID is absent.
	Update(id string, fields map[string]any) error

	// Delete removes the entity. No-op when the ID is absent.
	Delete(id string) error

	// GetByAttribute returns the first entity whose column equals value,
	// or nil if none matches.
	GetByAttribute(column string, value any) (*T, error)
}
