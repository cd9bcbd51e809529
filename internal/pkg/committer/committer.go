package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// Committer applies plans against a Spanner database.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a Committer bound to a Spanner client.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply commits the plan in a single read-write transaction. Empty plans
// are a no-op.
func (c *Committer) Apply(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.IsEmpty() {
		return nil
	}

	_, err := c.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		return fmt.Errorf("committer: apply plan: %w", err)
	}
	return nil
}
