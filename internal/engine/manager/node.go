package manager

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pin/internal/adapters/pom"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pin/internal/core/ports"
)

// NodeID is the unique identifier for the manager factory Graft node.
const NodeID graft.ID = "engine.manager_factory"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pom.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			resolvers, err := graft.Dep[ports.PomResolverFactory](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(resolvers, log), nil
		},
	})
}
