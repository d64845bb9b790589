package theme

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/repute/internal/core/ports"
)

// NodeID is the unique identifier for the scheme detector Graft node.
const NodeID graft.ID = "adapter.theme"

func init() {
	graft.Register(graft.Node[ports.SchemeDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SchemeDetector, error) {
			return NewDetector(), nil
		},
	})
}
