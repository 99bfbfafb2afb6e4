package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pin/internal/core/domain"
)

func TestExclusions_AddAccumulates(t *testing.T) {
	ledger := domain.NewExclusions()
	id := domain.NewIdentity("com.example", "lib")

	ledger.Add(id, []domain.Exclusion{domain.NewExclusion("commons-logging", "commons-logging")})
	ledger.Add(id, []domain.Exclusion{domain.NewExclusion("log4j", "log4j")})

	got := ledger.For(id)
	assert.Equal(t, []domain.Exclusion{
		domain.NewExclusion("commons-logging", "commons-logging"),
		domain.NewExclusion("log4j", "log4j"),
	}, got)
}

func TestExclusions_AddDeduplicates(t *testing.T) {
	ledger := domain.NewExclusions()
	id := domain.NewIdentity("com.example", "lib")
	excl := domain.NewExclusion("commons-logging", "commons-logging")

	ledger.Add(id, []domain.Exclusion{excl})
	ledger.Add(id, []domain.Exclusion{excl})

	assert.Len(t, ledger.For(id), 1)
}

func TestExclusions_ForUnknownIdentity(t *testing.T) {
	ledger := domain.NewExclusions()

	got := ledger.For(domain.NewIdentity("never", "recorded"))

	// Empty, never a distinguishable absent marker.
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExclusions_Merge(t *testing.T) {
	a := domain.NewExclusions()
	b := domain.NewExclusions()
	id := domain.NewIdentity("com.example", "lib")

	a.Add(id, []domain.Exclusion{domain.NewExclusion("g1", "a1")})
	b.Add(id, []domain.Exclusion{domain.NewExclusion("g2", "a2")})
	b.Add(domain.NewIdentity("com.example", "other"), []domain.Exclusion{domain.NewExclusion("g3", "a3")})

	a.Merge(b)

	assert.Len(t, a.For(id), 2)
	assert.Equal(t, 2, a.Len())
}
