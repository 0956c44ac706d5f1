package storage

// Store is the keyed persistence contract every aggregate goes through.
// No transactions and no query predicates; identifier lookups only.
type Store[E any] interface {
	Save(id string, entity E) error
	Get(id string) (E, error)
	List() ([]E, error)
	Delete(id string) error
}
