package paging

import (
	"sort"
	"sync"

	"github.com/friendsofgo/errors"
)

var (
	// ErrUnknownEntityType is returned when no repository is registered for an entity type.
	ErrUnknownEntityType = errors.New("unknown entity type")

	// ErrDuplicateEntityType is returned when an entity type is registered twice.
	ErrDuplicateEntityType = errors.New("entity type already registered")

	// ErrEntityTypeMismatch is returned when a registered repository does not
	// serve the requested record type.
	ErrEntityTypeMismatch = errors.New("entity type registered with a different record type")
)

// Registry maps entity type identifiers to typed repositories.
// Repositories are registered at startup and resolved once into Paginators,
// so request paths never dispatch on a runtime string.
//
// Example:
//
//	reg := paging.NewRegistry()
//	_ = paging.Register(reg, "artist", artistStore, artistID)
//	_ = paging.Register(reg, "album", albumStore, albumID)
//
//	artists, err := paging.PaginatorFor[*models.Artist](reg, "artist")
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any
}

type registryEntry[T any] struct {
	repo Repository[T]
	id   IDFunc[T]
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]any)}
}

// Register adds the repository for entityType.
func Register[T any](reg *Registry, entityType string, repo Repository[T], id IDFunc[T]) error {
	if entityType == "" {
		return errors.New("register: entity type must not be empty")
	}
	if repo == nil || id == nil {
		return errors.Errorf("register %q: repository and id func are required", entityType)
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()

	if _, exists := reg.entries[entityType]; exists {
		return errors.Wrapf(ErrDuplicateEntityType, "register %q", entityType)
	}

	reg.entries[entityType] = registryEntry[T]{repo: repo, id: id}
	return nil
}

// PaginatorFor resolves entityType into a typed Paginator.
func PaginatorFor[T any](reg *Registry, entityType string, opts ...PaginateOption) (*Paginator[T], error) {
	reg.mu.RLock()
	entry, exists := reg.entries[entityType]
	reg.mu.RUnlock()

	if !exists {
		return nil, errors.Wrapf(ErrUnknownEntityType, "resolve %q", entityType)
	}

	typed, ok := entry.(registryEntry[T])
	if !ok {
		return nil, errors.Wrapf(ErrEntityTypeMismatch, "resolve %q", entityType)
	}

	return NewPaginator(entityType, typed.repo, typed.id, opts...), nil
}

// EntityTypes returns the registered entity types in sorted order.
func (reg *Registry) EntityTypes() []string {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	types := make([]string, 0, len(reg.entries))
	for entityType := range reg.entries {
		types = append(types, entityType)
	}
	sort.Strings(types)
	return types
}
