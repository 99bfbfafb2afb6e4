package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/core/ports"
)

const NodeID graft.ID = "adapter.pom_store"

func init() {
	graft.Register(graft.Node[ports.PomStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PomStore, error) {
			dir, err := DefaultDir()
			if err != nil {
				return nil, err
			}
			return NewStore(dir)
		},
	})
}
