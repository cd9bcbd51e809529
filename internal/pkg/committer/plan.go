// Package committer collects Spanner mutations from repositories into a
// plan that is applied in one transaction. Repositories build mutations,
// usecases assemble the plan, and a single Apply commits everything or
// nothing.
package committer

import "cloud.google.com/go/spanner"

// Plan is an ordered collection of mutations to commit atomically.
type Plan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates an empty plan.
func NewPlan() *Plan {
	return &Plan{mutations: make([]*spanner.Mutation, 0, 4)}
}

// Add appends a mutation. Nil mutations are ignored so repositories can
// return nil for no-op updates.
func (p *Plan) Add(mut *spanner.Mutation) {
	if mut != nil {
		p.mutations = append(p.mutations, mut)
	}
}

// IsEmpty reports whether the plan holds no mutations.
func (p *Plan) IsEmpty() bool {
	return len(p.mutations) == 0
}

// Mutations returns the collected mutations.
func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
