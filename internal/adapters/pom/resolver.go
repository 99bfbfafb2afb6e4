// Package pom implements the pom resolver against Maven-layout HTTP
// repositories: it fetches bom documents, merges parent chains, substitutes
// properties and expands bom-to-bom imports.
package pom

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// maxParentDepth bounds parent chain traversal to keep a malformed
// repository from recursing forever.
const maxParentDepth = 32

// Resolver implements ports.PomResolver and ports.PomResolverFactory.
type Resolver struct {
	repositories []string
	client       *http.Client
	store        ports.PomStore
	log          ports.Logger
	tracer       ports.Tracer
}

// NewResolver creates a Resolver fetching from the given repositories, in
// order. Fetched documents are cached in store.
func NewResolver(repositories []string, store ports.PomStore, log ports.Logger, tracer ports.Tracer) *Resolver {
	return &Resolver{
		repositories: repositories,
		client:       &http.Client{Timeout: 30 * time.Second},
		store:        store,
		log:          log,
		tracer:       tracer,
	}
}

// ForRepositories returns a resolver scoped to the given repositories,
// sharing this resolver's client and cache.
func (r *Resolver) ForRepositories(repositories []string) ports.PomResolver {
	if len(repositories) == 0 {
		return r
	}
	scoped := *r
	scoped.repositories = repositories
	return &scoped
}

// ResolvePoms resolves the ordered reference list. References are fetched
// concurrently but the returned poms keep declaration order; each
// reference's transitively imported boms precede the importing bom itself,
// so a later entry always outranks what it imported.
func (r *Resolver) ResolvePoms(ctx context.Context, refs []domain.PomReference, properties domain.PropertySource) ([]domain.Pom, error) {
	results := make([][]domain.Pom, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		g.Go(func() error {
			poms, err := r.resolveReference(gctx, ref, properties)
			if err != nil {
				return err
			}
			results[i] = poms
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []domain.Pom
	for _, poms := range results {
		out = append(out, poms...)
	}
	return out, nil
}

func (r *Resolver) resolveReference(ctx context.Context, ref domain.PomReference, external domain.PropertySource) ([]domain.Pom, error) {
	ctx, span := r.tracer.Start(ctx, "pom.resolve")
	defer span.End()

	chain := domain.CompositePropertySource{ref.Properties, external}
	coords, err := substituteCoordinates(ref.Coordinates, chain)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("coordinates", coords.String())

	poms, err := r.resolveBom(ctx, coords, chain, make(map[string]bool))
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return poms, nil
}

// resolveBom resolves one bom and, depth-first, everything it imports.
func (r *Resolver) resolveBom(ctx context.Context, coords domain.Coordinates, external domain.PropertySource, visited map[string]bool) ([]domain.Pom, error) {
	key := coords.String()
	if visited[key] {
		r.log.Debug(fmt.Sprintf("skipping already visited bom %s", key))
		return nil, nil
	}
	visited[key] = true

	model, err := r.effectiveModel(ctx, coords, 0)
	if err != nil {
		return nil, err
	}

	// External properties outrank the bom's own table, which is how callers
	// override a bom-parameterized version.
	content := domain.CompositePropertySource{
		external,
		domain.MapPropertySource(model.Properties),
		builtinProperties(coords),
	}

	var out []domain.Pom
	var deps []domain.Dependency
	for _, dm := range model.DepMgmt.Dependencies {
		group := substitute(dm.GroupID, content)
		artifact := substitute(dm.ArtifactID, content)
		version := substitute(dm.Version, content)

		if dm.isBomImport() {
			imported := domain.NewCoordinates(group, artifact, version)
			if !imported.HasVersion() {
				return nil, zerr.With(
					zerr.With(zerr.New("bom import entry has no version"),
						"entry", imported.GroupAndArtifact()),
					"bom", key)
			}
			importedPoms, err := r.resolveBom(ctx, imported, external, visited)
			if err != nil {
				return nil, err
			}
			out = append(out, importedPoms...)
			continue
		}

		deps = append(deps, domain.Dependency{
			Coordinates: domain.NewCoordinates(group, artifact, version),
			Classifier:  dm.Classifier,
			Exclusions:  convertExclusions(dm.Exclusions),
		})
	}

	properties := make(map[string]string, len(model.Properties))
	for name, value := range model.Properties {
		properties[name] = substitute(value, content)
	}

	out = append(out, domain.Pom{
		Coordinates:         coords,
		ManagedDependencies: deps,
		Properties:          properties,
	})
	return out, nil
}

// effectiveModel fetches and parses a pom, then folds its parent chain into
// it: the child inherits missing coordinates, overrides properties and
// appends its managed dependencies after the parent's.
func (r *Resolver) effectiveModel(ctx context.Context, coords domain.Coordinates, depth int) (*projectModel, error) {
	if depth > maxParentDepth {
		return nil, zerr.With(zerr.New("pom parent chain too deep"), "coordinates", coords.String())
	}

	data, err := r.fetch(ctx, coords)
	if err != nil {
		return nil, err
	}
	model, err := parseModel(data)
	if err != nil {
		return nil, zerr.With(err, "coordinates", coords.String())
	}

	if model.Parent != nil {
		parentCoords := domain.NewCoordinates(model.Parent.GroupID, model.Parent.ArtifactID, model.Parent.Version)
		parent, err := r.effectiveModel(ctx, parentCoords, depth+1)
		if err != nil {
			return nil, zerr.With(err, "child", coords.String())
		}

		if model.GroupID == "" {
			model.GroupID = parent.GroupID
		}
		if model.Version == "" {
			model.Version = parent.Version
		}

		merged := make(map[string]string, len(parent.Properties)+len(model.Properties))
		for name, value := range parent.Properties {
			merged[name] = value
		}
		for name, value := range model.Properties {
			merged[name] = value
		}
		model.Properties = merged

		model.DepMgmt.Dependencies = append(
			append([]dependencyModel{}, parent.DepMgmt.Dependencies...),
			model.DepMgmt.Dependencies...)
	}

	return model, nil
}

// fetch returns the raw pom document for coords, trying the cache first and
// then each repository in order.
func (r *Resolver) fetch(ctx context.Context, coords domain.Coordinates) ([]byte, error) {
	var lastErr error
	for _, repo := range r.repositories {
		url := pomURL(repo, coords)

		cached, ok, err := r.store.Get(url)
		if err != nil {
			// A broken cache degrades to a network fetch, but should be seen.
			r.log.Warn(fmt.Sprintf("failed to read pom cache for %s: %v", coords, err))
		} else if ok {
			r.log.Debug(fmt.Sprintf("pom cache hit for %s", coords))
			return cached, nil
		}

		data, err := r.fetchURL(ctx, url)
		if err != nil {
			lastErr = err
			continue
		}
		if data == nil { // not found in this repository
			continue
		}

		if err := r.store.Put(url, data); err != nil {
			// A cold cache next run is acceptable; the fetch succeeded.
			r.log.Warn(fmt.Sprintf("failed to cache pom %s: %v", coords, err))
		}
		return data, nil
	}

	if lastErr != nil {
		return nil, zerr.Wrap(lastErr, fmt.Sprintf("no repository provided pom %s", coords))
	}
	return nil, zerr.Wrap(domain.ErrPomNotFound, fmt.Sprintf("no repository provided pom %s", coords))
}

// fetchURL returns the document at url, nil when the repository responds
// with 404, or an error for anything else.
func (r *Resolver) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to build pom request"), "url", url)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to fetch pom"), "url", url)
	}
	defer resp.Body.Close() //nolint:errcheck // Best effort close in defer

	switch resp.StatusCode {
	case http.StatusOK:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read pom response"), "url", url)
		}
		return data, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, zerr.With(
			zerr.With(zerr.New("unexpected repository response"), "status", resp.StatusCode),
			"url", url)
	}
}

func pomURL(repository string, coords domain.Coordinates) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s-%s.pom",
		strings.TrimSuffix(repository, "/"),
		strings.ReplaceAll(coords.Group, ".", "/"),
		coords.Artifact,
		coords.Version,
		coords.Artifact,
		coords.Version)
}

func builtinProperties(coords domain.Coordinates) domain.MapPropertySource {
	return domain.MapPropertySource{
		"project.groupId":    coords.Group,
		"project.artifactId": coords.Artifact,
		"project.version":    coords.Version,
		"pom.groupId":        coords.Group,
		"pom.version":        coords.Version,
	}
}

func convertExclusions(models []exclusionModel) []domain.Exclusion {
	if len(models) == 0 {
		return nil
	}
	exclusions := make([]domain.Exclusion, 0, len(models))
	for _, excl := range models {
		exclusions = append(exclusions, domain.NewExclusion(excl.GroupID, excl.ArtifactID))
	}
	return exclusions
}

var (
	_ ports.PomResolver        = (*Resolver)(nil)
	_ ports.PomResolverFactory = (*Resolver)(nil)
)
