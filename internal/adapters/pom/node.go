package pom

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/adapters/cas"       //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/pin/internal/adapters/logger"    //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/pin/internal/adapters/telemetry" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/pin/internal/core/ports"
)

const NodeID graft.ID = "adapter.pom_resolver"

func init() {
	graft.Register(graft.Node[ports.PomResolverFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cas.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.PomResolverFactory, error) {
			store, err := graft.Dep[ports.PomStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewResolver(nil, store, log, tracer), nil
		},
	})
}
