package contracts

import (
	"context"

	"github.com/makanikart/catalog-service/internal/pkg/committer"
)

// Committer applies a commit plan atomically. Extracted as an interface
// so usecase tests can capture plans without a live Spanner client.
type Committer interface {
	Apply(ctx context.Context, plan *committer.Plan) error
}
