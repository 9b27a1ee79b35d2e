package graph

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/arbor-backend/internal/domain"
)

// CreateReference attaches a new reference to the named subject with the
// same guarded upsert as CreateBranch. The same title under a different
// subject creates an independent node and edge; under the same subject it
// matches zero rows and returns nil.
func (s *Store) CreateReference(ctx context.Context, title, url string, aboutLabel domain.Label, aboutName string) (*domain.ReferenceAttachment, error) {
	if !aboutLabel.Valid() {
		return nil, invalidLabel("subject", aboutLabel)
	}
	query := createReferenceCypher(aboutLabel)
	params := map[string]any{"title": title, "url": url, "about": aboutName}

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
		return &domain.ReferenceAttachment{
			Reference: domain.Reference{Title: stringField(rec, "title"), URL: stringField(rec, "url")},
			About:     stringField(rec, "about"),
		}, nil
	})
	if err != nil {
		return nil, s.queryErr(query, err)
	}
	attachment, _ := res.(*domain.ReferenceAttachment)
	return attachment, nil
}

// CrossReference adds an IS_ABOUT edge from an existing reference, located
// via one of its current subjects, to another existing topic. Endpoints are
// matched, never created.
func (s *Store) CrossReference(ctx context.Context, title string, fromLabel domain.Label, fromName string, toLabel domain.Label, toName string) (*domain.Connection, error) {
	if !fromLabel.Valid() {
		return nil, invalidLabel("subject", fromLabel)
	}
	if !toLabel.Valid() {
		return nil, invalidLabel("target", toLabel)
	}
	query := crossReferenceCypher(fromLabel, toLabel)
	params := map[string]any{"title": title, "from": fromName, "to": toName}

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
		return &domain.Connection{From: stringField(rec, "title"), To: stringField(rec, "to")}, nil
	})
	if err != nil {
		return nil, s.queryErr(query, err)
	}
	conn, _ := res.(*domain.Connection)
	return conn, nil
}

// GetReferences lists the references one hop from the named subject.
func (s *Store) GetReferences(ctx context.Context, aboutLabel domain.Label, aboutName string) ([]domain.Reference, error) {
	if !aboutLabel.Valid() {
		return nil, invalidLabel("subject", aboutLabel)
	}
	query := getReferencesCypher(aboutLabel)

	session := s.readSession(ctx)
	defer session.Close(ctx)

	res, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		records, err := collect(ctx, tx, query, map[string]any{"about": aboutName})
		if err != nil {
			return nil, err
		}
		refs := make([]domain.Reference, 0, len(records))
		for _, rec := range records {
			refs = append(refs, domain.Reference{
				Title: stringField(rec, "title"),
				URL:   stringField(rec, "url"),
			})
		}
		return refs, nil
	})
	if err != nil {
		return nil, s.queryErr(query, err)
	}
	return res.([]domain.Reference), nil
}

// DeleteReference removes the reference matched via its edge to the named
// subject, together with all of its IS_ABOUT edges. Use DetachReference to
// drop a single subject edge.
func (s *Store) DeleteReference(ctx context.Context, title string, aboutLabel domain.Label, aboutName string) (int, error) {
	if !aboutLabel.Valid() {
		return 0, invalidLabel("subject", aboutLabel)
	}
	return s.runDelete(ctx, deleteReferenceCypher(aboutLabel),
		map[string]any{"title": title, "about": aboutName}, countNodes)
}

// DetachReference deletes only the IS_ABOUT edge to the named subject.
func (s *Store) DetachReference(ctx context.Context, title string, aboutLabel domain.Label, aboutName string) (int, error) {
	if !aboutLabel.Valid() {
		return 0, invalidLabel("subject", aboutLabel)
	}
	return s.runDelete(ctx, detachReferenceCypher(aboutLabel),
		map[string]any{"title": title, "about": aboutName}, countRelationships)
}
