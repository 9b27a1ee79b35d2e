package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/arbor-backend/internal/domain"
)

// GetDescendants returns every branch reachable downward from the named
// topic over any number of BELONGS_TO hops, deduplicated.
func (s *Store) GetDescendants(ctx context.Context, label domain.Label, name string) ([]domain.Branch, error) {
	if !label.Valid() {
		return nil, invalidLabel("topic", label)
	}
	query := descendantsCypher(label)

	session := s.readSession(ctx)
	defer session.Close(ctx)

	res, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := collect(ctx, tx, query, map[string]any{"name": name})
		if err != nil {
			return nil, err
		}
		branches := make([]domain.Branch, 0, len(records))
		for _, rec := range records {
			branches = append(branches, domain.Branch{
				Name: stringField(rec, "name"),
				Note: stringField(rec, "note"),
			})
		}
		return branches, nil
	})
	if err != nil {
		return nil, s.queryErr(query, err)
	}
	return res.([]domain.Branch), nil
}

// GetAncestors returns every topic on an upward BELONGS_TO path from the
// named node, each tagged with its label since paths cross branches before
// ending at trunks.
func (s *Store) GetAncestors(ctx context.Context, label domain.Label, name string) ([]domain.Ancestor, error) {
	if !label.Valid() {
		return nil, invalidLabel("topic", label)
	}
	query := ancestorsCypher(label)

	session := s.readSession(ctx)
	defer session.Close(ctx)

	res, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := collect(ctx, tx, query, map[string]any{"name": name})
		if err != nil {
			return nil, err
		}
		ancestors := make([]domain.Ancestor, 0, len(records))
		for _, rec := range records {
			ancestors = append(ancestors, domain.Ancestor{
				Label: domain.Label(stringField(rec, "label")),
				Name:  stringField(rec, "name"),
			})
		}
		return ancestors, nil
	})
	if err != nil {
		return nil, s.queryErr(query, err)
	}
	return res.([]domain.Ancestor), nil
}
