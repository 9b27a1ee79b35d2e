package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/arbor-backend/internal/domain"
	pkgerrors "github.com/yungbote/arbor-backend/internal/pkg/errors"
)

func invalidLabel(role string, label domain.Label) error {
	return fmt.Errorf("%w: %s label %q must be Trunk or Branch", pkgerrors.ErrInvalidArgument, role, label)
}

// CreateBranch attaches a new branch under the named parent. The existence
// check and the MERGE run inside one write transaction; if a branch with the
// same name already belongs to that parent the statement matches zero rows
// and the result is nil, not an error. A nil result with a misspelled parent
// looks the same — this layer does not disambiguate.
func (s *Store) CreateBranch(ctx context.Context, name string, parentLabel domain.Label, parentName, note string) (*domain.BranchAttachment, error) {
	if !parentLabel.Valid() {
		return nil, invalidLabel("parent", parentLabel)
	}
	query := createBranchCypher(parentLabel, s.preventCycles)
	params := map[string]any{"name": name, "parent_name": parentName, "note": note}

	session := s.writeSession(ctx)
	defer session.Close(ctx)

	res, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := collect(ctx, tx, query, params)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, nil
		}
		rec := records[0]
		return &domain.BranchAttachment{
			Branch: domain.Branch{Name: stringField(rec, "branch"), Note: stringField(rec, "note")},
			Parent: stringField(rec, "parent"),
		}, nil
	})
	if err != nil {
		return nil, s.queryErr(query, err)
	}
	attachment, _ := res.(*domain.BranchAttachment)
	return attachment, nil
}

// ConnectBranch adds a BELONGS_TO edge between an existing branch and an
// existing parent. Both endpoints are matched, never created; if either is
// missing, or the edge is already there, the result is nil.
func (s *Store) ConnectBranch(ctx context.Context, name string, parentLabel domain.Label, parentName string) (*domain.Connection, error) {
	if !parentLabel.Valid() {
		return nil, invalidLabel("parent", parentLabel)
	}
	query := connectBranchCypher(parentLabel, s.preventCycles)
	params := map[string]any{"name": name, "parent_name": parentName}

	session := s.writeSession(ctx)
	defer session.Close(ctx)

	res, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := collect(ctx, tx, query, params)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, nil
		}
		rec := records[0]
		return &domain.Connection{From: stringField(rec, "from"), To: stringField(rec, "to")}, nil
	})
	if err != nil {
		return nil, s.queryErr(query, err)
	}
	conn, _ := res.(*domain.Connection)
	return conn, nil
}

// GetBranches lists the one-hop children of the named parent.
func (s *Store) GetBranches(ctx context.Context, parentLabel domain.Label, parentName string) ([]domain.Branch, error) {
	if !parentLabel.Valid() {
		return nil, invalidLabel("parent", parentLabel)
	}
	query := getBranchesCypher(parentLabel)

	session := s.readSession(ctx)
	defer session.Close(ctx)

	res, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := collect(ctx, tx, query, map[string]any{"name": parentName})
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

// DeleteBranch removes the branch matched via its edge to the named parent,
// together with ALL of its relationships — including edges to other parents.
// Use DetachBranch to remove a single parent edge instead.
func (s *Store) DeleteBranch(ctx context.Context, name string, parentLabel domain.Label, parentName string) (int, error) {
	if !parentLabel.Valid() {
		return 0, invalidLabel("parent", parentLabel)
	}
	return s.runDelete(ctx, deleteBranchCypher(parentLabel),
		map[string]any{"name": name, "parent_name": parentName}, countNodes)
}

// DetachBranch deletes only the BELONGS_TO edge between the named branch and
// the named parent. Edges to other parents are untouched.
func (s *Store) DetachBranch(ctx context.Context, name string, parentLabel domain.Label, parentName string) (int, error) {
	if !parentLabel.Valid() {
		return 0, invalidLabel("parent", parentLabel)
	}
	return s.runDelete(ctx, detachBranchCypher(parentLabel),
		map[string]any{"name": name, "parent_name": parentName}, countRelationships)
}

type deleteCounter int

const (
	countNodes deleteCounter = iota
	countRelationships
)

func (s *Store) runDelete(ctx context.Context, query string, params map[string]any, counter deleteCounter) (int, error) {
	session := s.writeSession(ctx)
	defer session.Close(ctx)

	res, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		run, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		summary, err := run.Consume(ctx)
		if err != nil {
			return nil, err
		}
		if counter == countRelationships {
			return summary.Counters().RelationshipsDeleted(), nil
		}
		return summary.Counters().NodesDeleted(), nil
	})
	if err != nil {
		return 0, s.queryErr(query, err)
	}
	return res.(int), nil
}
