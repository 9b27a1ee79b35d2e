package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/arbor-backend/internal/domain"
)

// CreateTrunk upserts a trunk keyed on name. Calling it twice with the same
// name returns the same single record.
func (s *Store) CreateTrunk(ctx context.Context, name string) (*domain.Trunk, error) {
	session := s.writeSession(ctx)
	defer session.Close(ctx)

	res, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := collect(ctx, tx, createTrunkCypher, map[string]any{"name": name})
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return nil, nil
		}
		return &domain.Trunk{Name: stringField(records[0], "name")}, nil
	})
	if err != nil {
		return nil, s.queryErr(createTrunkCypher, err)
	}
	trunk, _ := res.(*domain.Trunk)
	return trunk, nil
}

func (s *Store) GetTrunks(ctx context.Context) ([]domain.Trunk, error) {
	session := s.readSession(ctx)
	defer session.Close(ctx)

	res, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := collect(ctx, tx, getTrunksCypher, nil)
		if err != nil {
			return nil, err
		}
		trunks := make([]domain.Trunk, 0, len(records))
		for _, rec := range records {
			trunks = append(trunks, domain.Trunk{Name: stringField(rec, "name")})
		}
		return trunks, nil
	})
	if err != nil {
		return nil, s.queryErr(getTrunksCypher, err)
	}
	return res.([]domain.Trunk), nil
}

// DeleteTrunk removes the trunk and every relationship touching it. Branch
// and reference nodes attached to it survive; only their edges go. Deleting
// a missing trunk matches zero rows and is not an error. The returned count
// is the number of nodes removed (0 or 1).
func (s *Store) DeleteTrunk(ctx context.Context, name string) (int, error) {
	session := s.writeSession(ctx)
	defer session.Close(ctx)

	res, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		run, err := tx.Run(ctx, deleteTrunkCypher, map[string]any{"name": name})
		if err != nil {
			return nil, err
		}
		summary, err := run.Consume(ctx)
		if err != nil {
			return nil, err
		}
		return summary.Counters().NodesDeleted(), nil
	})
	if err != nil {
		return 0, s.queryErr(deleteTrunkCypher, err)
	}
	return res.(int), nil
}
