package graph

import (
	"context"
)

// EnsureSchema declares the one constraint Neo4j can enforce for us: global
// trunk-name uniqueness. Relationship uniqueness cannot be declared and is
// simulated by the guarded transactions in this package. Failures are logged
// and swallowed so a restricted user can still run against a pre-provisioned
// database.
func (s *Store) EnsureSchema(ctx context.Context) {
	session := s.writeSession(ctx)
	defer session.Close(ctx)

	stmts := []string{
		`CREATE CONSTRAINT trunk_name_unique IF NOT EXISTS FOR (t:Trunk) REQUIRE t.name IS UNIQUE`,
	}
	for _, q := range stmts {
		if res, err := session.Run(ctx, q, nil); err != nil {
			s.log.Warn("neo4j schema init failed (continuing)", "query", q, "error", err)
		} else {
			_, _ = res.Consume(ctx)
		}
	}
}
