package ports

// PomStore caches raw pom documents between runs, keyed by the repository
// URL they were fetched from.
//
//go:generate go run go.uber.org/mock/mockgen -source=pom_store.go -destination=mocks/mock_pom_store.go -package=mocks
type PomStore interface {
	// Get returns the cached document for key, or false when absent.
	Get(key string) ([]byte, bool, error)

	// Put stores the document for key.
	Put(key string, data []byte) error
}
