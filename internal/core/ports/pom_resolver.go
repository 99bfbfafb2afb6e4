// Package ports defines the interfaces between the dependency management
// engine and its collaborators.
package ports

import (
	"context"

	"go.trai.ch/pin/internal/core/domain"
)

// PomResolver resolves bom import references into fully resolved,
// property-substituted pom documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=pom_resolver.go -destination=mocks/mock_pom_resolver.go -package=mocks
type PomResolver interface {
	// ResolvePoms resolves the ordered reference list, transitively following
	// bom-to-bom imports, and returns the resolved poms in a deterministic
	// order. properties supplies substitution values for placeholders that a
	// reference's own source does not cover.
	ResolvePoms(ctx context.Context, refs []domain.PomReference, properties domain.PropertySource) ([]domain.Pom, error)
}

// PomResolverFactory scopes a PomResolver to a project's repository list.
type PomResolverFactory interface {
	// ForRepositories returns a resolver that fetches poms from the given
	// repositories, in order.
	ForRepositories(repositories []string) PomResolver
}
