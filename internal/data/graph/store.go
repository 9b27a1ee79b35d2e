// Package graph is the topic-graph store: all Cypher issued against Neo4j
// lives here. The store works around two Neo4j limitations:
//
//   - labels cannot be parameterised, so validated labels are spliced into
//     statement text from the closed {Trunk, Branch} set;
//   - uniqueness constraints cannot be declared on relationships, and MERGE
//     alone does not guarantee pattern-level uniqueness, so every
//     edge-creating mutation runs a negative existence check and the create
//     inside one managed write transaction.
package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/arbor-backend/internal/logger"
	"github.com/yungbote/arbor-backend/internal/platform/neo4jdb"
)

type Config struct {
	// PreventCycles adds an ancestry guard to edge-creating mutations so a
	// branch cannot be attached below one of its own descendants. Off by
	// default.
	PreventCycles bool
}

// Store executes topic-graph operations against the shared driver handle.
// It holds no state of its own; every call opens one session and runs one
// transaction.
type Store struct {
	client        *neo4jdb.Client
	log           *logger.Logger
	preventCycles bool
}

func NewStore(client *neo4jdb.Client, baseLog *logger.Logger, cfg Config) *Store {
	return &Store{
		client:        client,
		log:           baseLog.With("store", "TopicGraph"),
		preventCycles: cfg.PreventCycles,
	}
}

// QueryError is a store-level execution failure. It carries the statement
// that failed so callers and logs can tell which operation broke.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("cypher failed: %v (query: %s)", e.Err, e.Query)
}

func (e *QueryError) Unwrap() error { return e.Err }

func (s *Store) writeSession(ctx context.Context) neo4j.SessionWithContext {
	return s.client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: s.client.Database,
	})
}

func (s *Store) readSession(ctx context.Context) neo4j.SessionWithContext {
	return s.client.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeRead,
		DatabaseName: s.client.Database,
	})
}

// queryErr records the failed statement and wraps the driver error.
func (s *Store) queryErr(query string, err error) error {
	s.log.Error("cypher failed", "query", query, "error", err)
	return &QueryError{Query: query, Err: err}
}

func collect(ctx context.Context, tx neo4j.ManagedTransaction, query string, params map[string]any) ([]*neo4j.Record, error) {
	res, err := tx.Run(ctx, query, params)
	if err != nil {
		return nil, err
	}
	return res.Collect(ctx)
}

func stringField(rec *neo4j.Record, key string) string {
	v, _ := rec.Get(key)
	s, _ := v.(string)
	return s
}
