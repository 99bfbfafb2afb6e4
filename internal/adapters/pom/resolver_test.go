package pom_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pin/internal/adapters/pom"
	"go.trai.ch/pin/internal/adapters/telemetry"
	"go.trai.ch/pin/internal/core/domain"
	"go.trai.ch/pin/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// memoryStore is a trivial in-memory ports.PomStore for tests.
type memoryStore struct {
	docs map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{docs: make(map[string][]byte)}
}

func (s *memoryStore) Get(key string) ([]byte, bool, error) {
	data, ok := s.docs[key]
	return data, ok, nil
}

func (s *memoryStore) Put(key string, data []byte) error {
	s.docs[key] = data
	return nil
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

// repoServer serves the given path -> document map with 404 for the rest.
func repoServer(t *testing.T, docs map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, ok := docs[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(doc))
	}))
	t.Cleanup(server.Close)
	return server
}

func newResolver(t *testing.T, ctrl *gomock.Controller, server *httptest.Server) *pom.Resolver {
	t.Helper()
	return pom.NewResolver([]string{server.URL}, newMemoryStore(), quietLogger(ctrl), telemetry.NewNoOpTracer())
}

func ref(group, artifact, version string, props domain.PropertySource) domain.PomReference {
	return domain.NewPomReference(domain.NewCoordinates(group, artifact, version), props)
}

func TestResolver_SimpleBom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := repoServer(t, map[string]string{
		"/com/example/bom/1.0/bom-1.0.pom": `
<project>
  <groupId>com.example</groupId>
  <artifactId>bom</artifactId>
  <version>1.0</version>
  <packaging>pom</packaging>
  <properties>
    <lib.version>2.5</lib.version>
  </properties>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>com.example</groupId>
        <artifactId>lib</artifactId>
        <version>${lib.version}</version>
        <exclusions>
          <exclusion>
            <groupId>commons-logging</groupId>
            <artifactId>commons-logging</artifactId>
          </exclusion>
        </exclusions>
      </dependency>
    </dependencies>
  </dependencyManagement>
</project>`,
	})

	resolver := newResolver(t, ctrl, server)
	poms, err := resolver.ResolvePoms(context.Background(),
		[]domain.PomReference{ref("com.example", "bom", "1.0", nil)}, nil)
	require.NoError(t, err)
	require.Len(t, poms, 1)

	require.Len(t, poms[0].ManagedDependencies, 1)
	dep := poms[0].ManagedDependencies[0]
	assert.Equal(t, "com.example:lib:2.5", dep.Coordinates.String())
	assert.Equal(t, []domain.Exclusion{domain.NewExclusion("commons-logging", "commons-logging")}, dep.Exclusions)
	assert.Equal(t, "2.5", poms[0].Properties["lib.version"])
}

func TestResolver_CallerPropertiesOverrideBomProperties(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := repoServer(t, map[string]string{
		"/com/example/bom/1.0/bom-1.0.pom": `
<project>
  <groupId>com.example</groupId>
  <artifactId>bom</artifactId>
  <version>1.0</version>
  <properties>
    <lib.version>2.5</lib.version>
  </properties>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>com.example</groupId>
        <artifactId>lib</artifactId>
        <version>${lib.version}</version>
      </dependency>
    </dependencies>
  </dependencyManagement>
</project>`,
	})

	resolver := newResolver(t, ctrl, server)
	reference := ref("com.example", "bom", "1.0", domain.MapPropertySource{"lib.version": "3.0"})
	poms, err := resolver.ResolvePoms(context.Background(), []domain.PomReference{reference}, nil)
	require.NoError(t, err)
	require.Len(t, poms, 1)
	assert.Equal(t, "3.0", poms[0].ManagedDependencies[0].Coordinates.Version)
}

func TestResolver_PlaceholderInReferenceCoordinates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := repoServer(t, map[string]string{
		"/com/example/bom/1.0/bom-1.0.pom": `
<project>
  <groupId>com.example</groupId>
  <artifactId>bom</artifactId>
  <version>1.0</version>
</project>`,
	})

	resolver := newResolver(t, ctrl, server)
	reference := ref("com.example", "bom", "${bom.version}", domain.MapPropertySource{"bom.version": "1.0"})
	poms, err := resolver.ResolvePoms(context.Background(), []domain.PomReference{reference}, nil)
	require.NoError(t, err)
	require.Len(t, poms, 1)
	assert.Equal(t, "com.example:bom:1.0", poms[0].Coordinates.String())
}

func TestResolver_UnresolvedReferencePlaceholderFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := repoServer(t, nil)
	resolver := newResolver(t, ctrl, server)

	_, err := resolver.ResolvePoms(context.Background(),
		[]domain.PomReference{ref("com.example", "bom", "${unknown}", nil)}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnresolvedPlaceholder)
}

func TestResolver_ParentChainMerging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := repoServer(t, map[string]string{
		"/com/example/parent/1.0/parent-1.0.pom": `
<project>
  <groupId>com.example</groupId>
  <artifactId>parent</artifactId>
  <version>1.0</version>
  <properties>
    <a.version>1.0</a.version>
    <b.version>1.0</b.version>
  </properties>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>com.example</groupId>
        <artifactId>a</artifactId>
        <version>${a.version}</version>
      </dependency>
      <dependency>
        <groupId>com.example</groupId>
        <artifactId>b</artifactId>
        <version>${b.version}</version>
      </dependency>
    </dependencies>
  </dependencyManagement>
</project>`,
		"/com/example/child/2.0/child-2.0.pom": `
<project>
  <parent>
    <groupId>com.example</groupId>
    <artifactId>parent</artifactId>
    <version>1.0</version>
  </parent>
  <artifactId>child</artifactId>
  <version>2.0</version>
  <properties>
    <b.version>2.0</b.version>
  </properties>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>com.example</groupId>
        <artifactId>b</artifactId>
        <version>${b.version}</version>
      </dependency>
    </dependencies>
  </dependencyManagement>
</project>`,
	})

	resolver := newResolver(t, ctrl, server)
	poms, err := resolver.ResolvePoms(context.Background(),
		[]domain.PomReference{ref("com.example", "child", "2.0", nil)}, nil)
	require.NoError(t, err)
	require.Len(t, poms, 1)

	// Parent entries come first, the child's own entry last so it wins in
	// the engine's last-entry-wins merge. The child's property override
	// applies to both occurrences of b.
	deps := poms[0].ManagedDependencies
	require.Len(t, deps, 3)
	assert.Equal(t, "com.example:a:1.0", deps[0].Coordinates.String())
	assert.Equal(t, "com.example:b:2.0", deps[1].Coordinates.String())
	assert.Equal(t, "com.example:b:2.0", deps[2].Coordinates.String())
}

func TestResolver_BomImportExpansion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := repoServer(t, map[string]string{
		"/com/example/platform/1.0/platform-1.0.pom": `
<project>
  <groupId>com.example</groupId>
  <artifactId>platform</artifactId>
  <version>1.0</version>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>com.example</groupId>
        <artifactId>imported-bom</artifactId>
        <version>3.0</version>
        <type>pom</type>
        <scope>import</scope>
      </dependency>
      <dependency>
        <groupId>com.example</groupId>
        <artifactId>lib</artifactId>
        <version>9.0</version>
      </dependency>
    </dependencies>
  </dependencyManagement>
</project>`,
		"/com/example/imported-bom/3.0/imported-bom-3.0.pom": `
<project>
  <groupId>com.example</groupId>
  <artifactId>imported-bom</artifactId>
  <version>3.0</version>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>com.example</groupId>
        <artifactId>lib</artifactId>
        <version>8.0</version>
      </dependency>
      <dependency>
        <groupId>com.example</groupId>
        <artifactId>extra</artifactId>
        <version>1.0</version>
      </dependency>
    </dependencies>
  </dependencyManagement>
</project>`,
	})

	resolver := newResolver(t, ctrl, server)
	poms, err := resolver.ResolvePoms(context.Background(),
		[]domain.PomReference{ref("com.example", "platform", "1.0", nil)}, nil)
	require.NoError(t, err)

	// Imported bom precedes the importing one.
	require.Len(t, poms, 2)
	assert.Equal(t, "com.example:imported-bom:3.0", poms[0].Coordinates.String())
	assert.Equal(t, "com.example:platform:1.0", poms[1].Coordinates.String())

	// The import entry itself is not a managed dependency.
	require.Len(t, poms[1].ManagedDependencies, 1)
	assert.Equal(t, "com.example:lib:9.0", poms[1].ManagedDependencies[0].Coordinates.String())

	merged := domain.MergeManaged(nil, poms)
	assert.Equal(t, "9.0", merged.Versions[domain.NewIdentity("com.example", "lib")])
	assert.Equal(t, "1.0", merged.Versions[domain.NewIdentity("com.example", "extra")])
}

func TestResolver_ImportEntryWithoutVersionFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := repoServer(t, map[string]string{
		"/com/example/bom/1.0/bom-1.0.pom": `
<project>
  <groupId>com.example</groupId>
  <artifactId>bom</artifactId>
  <version>1.0</version>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>com.example</groupId>
        <artifactId>imported-bom</artifactId>
        <type>pom</type>
        <scope>import</scope>
      </dependency>
    </dependencies>
  </dependencyManagement>
</project>`,
	})

	resolver := newResolver(t, ctrl, server)
	_, err := resolver.ResolvePoms(context.Background(),
		[]domain.PomReference{ref("com.example", "bom", "1.0", nil)}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bom import entry has no version")
}

func TestResolver_ServerErrorFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	resolver := pom.NewResolver([]string{server.URL}, newMemoryStore(), quietLogger(ctrl), telemetry.NewNoOpTracer())
	_, err := resolver.ResolvePoms(context.Background(),
		[]domain.PomReference{ref("com.example", "bom", "1.0", nil)}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no repository provided pom com.example:bom:1.0")
	assert.Contains(t, err.Error(), "unexpected repository response")
}

func TestResolver_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := repoServer(t, nil)
	resolver := newResolver(t, ctrl, server)

	_, err := resolver.ResolvePoms(context.Background(),
		[]domain.PomReference{ref("com.example", "absent", "1.0", nil)}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPomNotFound)
	assert.Contains(t, err.Error(), "com.example:absent:1.0")
}

func TestResolver_SecondRepositoryWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	empty := repoServer(t, nil)
	second := repoServer(t, map[string]string{
		"/com/example/bom/1.0/bom-1.0.pom": `
<project>
  <groupId>com.example</groupId>
  <artifactId>bom</artifactId>
  <version>1.0</version>
</project>`,
	})

	resolver := pom.NewResolver([]string{empty.URL, second.URL},
		newMemoryStore(), quietLogger(ctrl), telemetry.NewNoOpTracer())
	poms, err := resolver.ResolvePoms(context.Background(),
		[]domain.PomReference{ref("com.example", "bom", "1.0", nil)}, nil)
	require.NoError(t, err)
	require.Len(t, poms, 1)
}

func TestResolver_ServesFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(`
<project>
  <groupId>com.example</groupId>
  <artifactId>bom</artifactId>
  <version>1.0</version>
</project>`))
	}))
	t.Cleanup(server.Close)

	store := newMemoryStore()
	resolver := pom.NewResolver([]string{server.URL}, store, quietLogger(ctrl), telemetry.NewNoOpTracer())

	refs := []domain.PomReference{ref("com.example", "bom", "1.0", nil)}
	_, err := resolver.ResolvePoms(context.Background(), refs, nil)
	require.NoError(t, err)
	_, err = resolver.ResolvePoms(context.Background(), refs, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, hits)
}

func TestResolver_BrokenCacheWarnsAndFetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := repoServer(t, map[string]string{
		"/com/example/bom/1.0/bom-1.0.pom": `
<project>
  <groupId>com.example</groupId>
  <artifactId>bom</artifactId>
  <version>1.0</version>
</project>`,
	})

	store := mocks.NewMockPomStore(ctrl)
	store.EXPECT().Get(gomock.Any()).Return(nil, false, assert.AnError)
	store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "failed to read pom cache for com.example:bom:1.0")
	})

	resolver := pom.NewResolver([]string{server.URL}, store, log, telemetry.NewNoOpTracer())
	poms, err := resolver.ResolvePoms(context.Background(),
		[]domain.PomReference{ref("com.example", "bom", "1.0", nil)}, nil)
	require.NoError(t, err)
	require.Len(t, poms, 1)
}

func TestResolver_MultipleReferencesKeepOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := repoServer(t, map[string]string{
		"/com/example/bom-a/1.0/bom-a-1.0.pom": `
<project><groupId>com.example</groupId><artifactId>bom-a</artifactId><version>1.0</version></project>`,
		"/com/example/bom-b/1.0/bom-b-1.0.pom": `
<project><groupId>com.example</groupId><artifactId>bom-b</artifactId><version>1.0</version></project>`,
	})

	resolver := newResolver(t, ctrl, server)
	poms, err := resolver.ResolvePoms(context.Background(), []domain.PomReference{
		ref("com.example", "bom-a", "1.0", nil),
		ref("com.example", "bom-b", "1.0", nil),
	}, nil)
	require.NoError(t, err)

	require.Len(t, poms, 2)
	assert.Equal(t, "bom-a", poms[0].Coordinates.Artifact)
	assert.Equal(t, "bom-b", poms[1].Coordinates.Artifact)
}

func TestResolver_ImportCycleIsBounded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := repoServer(t, map[string]string{
		"/com/example/bom-a/1.0/bom-a-1.0.pom": `
<project>
  <groupId>com.example</groupId>
  <artifactId>bom-a</artifactId>
  <version>1.0</version>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>com.example</groupId>
        <artifactId>bom-b</artifactId>
        <version>1.0</version>
        <type>pom</type>
        <scope>import</scope>
      </dependency>
    </dependencies>
  </dependencyManagement>
</project>`,
		"/com/example/bom-b/1.0/bom-b-1.0.pom": `
<project>
  <groupId>com.example</groupId>
  <artifactId>bom-b</artifactId>
  <version>1.0</version>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>com.example</groupId>
        <artifactId>bom-a</artifactId>
        <version>1.0</version>
        <type>pom</type>
        <scope>import</scope>
      </dependency>
    </dependencies>
  </dependencyManagement>
</project>`,
	})

	resolver := newResolver(t, ctrl, server)
	poms, err := resolver.ResolvePoms(context.Background(),
		[]domain.PomReference{ref("com.example", "bom-a", "1.0", nil)}, nil)
	require.NoError(t, err)
	require.Len(t, poms, 2)
}
