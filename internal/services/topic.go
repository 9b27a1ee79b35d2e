package services

import (
	"context"

	"github.com/yungbote/arbor-backend/internal/domain"
	"github.com/yungbote/arbor-backend/internal/logger"
)

// TopicStore is the slice of the graph store the topic service needs.
// Implemented by *graph.Store.
type TopicStore interface {
	CreateTrunk(ctx context.Context, name string) (*domain.Trunk, error)
	GetTrunks(ctx context.Context) ([]domain.Trunk, error)
	DeleteTrunk(ctx context.Context, name string) (int, error)

	CreateBranch(ctx context.Context, name string, parentLabel domain.Label, parentName, note string) (*domain.BranchAttachment, error)
	ConnectBranch(ctx context.Context, name string, parentLabel domain.Label, parentName string) (*domain.Connection, error)
	GetBranches(ctx context.Context, parentLabel domain.Label, parentName string) ([]domain.Branch, error)
	DeleteBranch(ctx context.Context, name string, parentLabel domain.Label, parentName string) (int, error)
	DetachBranch(ctx context.Context, name string, parentLabel domain.Label, parentName string) (int, error)

	CreateReference(ctx context.Context, title, url string, aboutLabel domain.Label, aboutName string) (*domain.ReferenceAttachment, error)
	CrossReference(ctx context.Context, title string, fromLabel domain.Label, fromName string, toLabel domain.Label, toName string) (*domain.Connection, error)
	GetReferences(ctx context.Context, aboutLabel domain.Label, aboutName string) ([]domain.Reference, error)
	DeleteReference(ctx context.Context, title string, aboutLabel domain.Label, aboutName string) (int, error)
	DetachReference(ctx context.Context, title string, aboutLabel domain.Label, aboutName string) (int, error)

	GetDescendants(ctx context.Context, label domain.Label, name string) ([]domain.Branch, error)
	GetAncestors(ctx context.Context, label domain.Label, name string) ([]domain.Ancestor, error)
}

// TopicService fronts the graph store for transport handlers. Labels arrive
// as raw strings and are validated here, before any store call; a nil
// attachment/connection means the guarded mutation matched nothing, which is
// a normal outcome and never an error.
type TopicService interface {
	CreateTrunk(ctx context.Context, name string) (*domain.Trunk, error)
	GetTrunks(ctx context.Context) ([]domain.Trunk, error)
	DeleteTrunk(ctx context.Context, name string) (int, error)

	CreateBranch(ctx context.Context, name, parentLabel, parentName, note string) (*domain.BranchAttachment, error)
	ConnectBranch(ctx context.Context, name, parentLabel, parentName string) (*domain.Connection, error)
	GetBranches(ctx context.Context, parentLabel, parentName string) ([]domain.Branch, error)
	DeleteBranch(ctx context.Context, name, parentLabel, parentName string) (int, error)
	DetachBranch(ctx context.Context, name, parentLabel, parentName string) (int, error)

	CreateReference(ctx context.Context, title, url, aboutLabel, aboutName string) (*domain.ReferenceAttachment, error)
	CrossReference(ctx context.Context, title, fromLabel, fromName, toLabel, toName string) (*domain.Connection, error)
	GetReferences(ctx context.Context, aboutLabel, aboutName string) ([]domain.Reference, error)
	DeleteReference(ctx context.Context, title, aboutLabel, aboutName string) (int, error)
	DetachReference(ctx context.Context, title, aboutLabel, aboutName string) (int, error)

	GetDescendants(ctx context.Context, label, name string) ([]domain.Branch, error)
	GetAncestors(ctx context.Context, label, name string) ([]domain.Ancestor, error)
}

type topicService struct {
	store TopicStore
	log   *logger.Logger
}

func NewTopicService(store TopicStore, baseLog *logger.Logger) TopicService {
	return &topicService{
		store: store,
		log:   baseLog.With("service", "TopicService"),
	}
}

func (s *topicService) CreateTrunk(ctx context.Context, name string) (*domain.Trunk, error) {
	trunk, err := s.store.CreateTrunk(ctx, name)
	if err != nil {
		return nil, err
	}
	s.log.Info("Upserted trunk", "name", name)
	return trunk, nil
}

func (s *topicService) GetTrunks(ctx context.Context) ([]domain.Trunk, error) {
	return s.store.GetTrunks(ctx)
}

func (s *topicService) DeleteTrunk(ctx context.Context, name string) (int, error) {
	deleted, err := s.store.DeleteTrunk(ctx, name)
	if err != nil {
		return 0, err
	}
	s.log.Info("Deleted trunk", "name", name, "nodes_deleted", deleted)
	return deleted, nil
}

func (s *topicService) CreateBranch(ctx context.Context, name, parentLabel, parentName, note string) (*domain.BranchAttachment, error) {
	label, err := domain.ParseLabel(parentLabel)
	if err != nil {
		return nil, err
	}
	attachment, err := s.store.CreateBranch(ctx, name, label, parentName, note)
	if err != nil {
		return nil, err
	}
	if attachment == nil {
		s.log.Debug("Branch not created: edge already exists or parent did not match",
			"name", name, "parent_label", parentLabel, "parent_name", parentName)
		return nil, nil
	}
	s.log.Info("Created branch", "name", attachment.Branch.Name, "parent", attachment.Parent)
	return attachment, nil
}

func (s *topicService) ConnectBranch(ctx context.Context, name, parentLabel, parentName string) (*domain.Connection, error) {
	label, err := domain.ParseLabel(parentLabel)
	if err != nil {
		return nil, err
	}
	conn, err := s.store.ConnectBranch(ctx, name, label, parentName)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		s.log.Debug("Branch not connected: edge already exists or an endpoint did not match",
			"name", name, "parent_label", parentLabel, "parent_name", parentName)
		return nil, nil
	}
	s.log.Info("Connected branch", "from", conn.From, "to", conn.To)
	return conn, nil
}

func (s *topicService) GetBranches(ctx context.Context, parentLabel, parentName string) ([]domain.Branch, error) {
	label, err := domain.ParseLabel(parentLabel)
	if err != nil {
		return nil, err
	}
	return s.store.GetBranches(ctx, label, parentName)
}

func (s *topicService) DeleteBranch(ctx context.Context, name, parentLabel, parentName string) (int, error) {
	label, err := domain.ParseLabel(parentLabel)
	if err != nil {
		return 0, err
	}
	deleted, err := s.store.DeleteBranch(ctx, name, label, parentName)
	if err != nil {
		return 0, err
	}
	s.log.Info("Deleted branch", "name", name, "parent", parentName, "nodes_deleted", deleted)
	return deleted, nil
}

func (s *topicService) DetachBranch(ctx context.Context, name, parentLabel, parentName string) (int, error) {
	label, err := domain.ParseLabel(parentLabel)
	if err != nil {
		return 0, err
	}
	deleted, err := s.store.DetachBranch(ctx, name, label, parentName)
	if err != nil {
		return 0, err
	}
	s.log.Info("Detached branch", "name", name, "parent", parentName, "edges_deleted", deleted)
	return deleted, nil
}

func (s *topicService) CreateReference(ctx context.Context, title, url, aboutLabel, aboutName string) (*domain.ReferenceAttachment, error) {
	label, err := domain.ParseLabel(aboutLabel)
	if err != nil {
		return nil, err
	}
	attachment, err := s.store.CreateReference(ctx, title, url, label, aboutName)
	if err != nil {
		return nil, err
	}
	if attachment == nil {
		s.log.Debug("Reference not created: title already attached to subject or subject did not match",
			"title", title, "about_label", aboutLabel, "about", aboutName)
		return nil, nil
	}
	s.log.Info("Created reference", "title", attachment.Reference.Title, "about", attachment.About)
	return attachment, nil
}

func (s *topicService) CrossReference(ctx context.Context, title, fromLabel, fromName, toLabel, toName string) (*domain.Connection, error) {
	from, err := domain.ParseLabel(fromLabel)
	if err != nil {
		return nil, err
	}
	to, err := domain.ParseLabel(toLabel)
	if err != nil {
		return nil, err
	}
	conn, err := s.store.CrossReference(ctx, title, from, fromName, to, toName)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		s.log.Debug("Reference not cross-referenced: edge already exists or an endpoint did not match",
			"title", title, "from", fromName, "to", toName)
		return nil, nil
	}
	s.log.Info("Cross-referenced", "title", conn.From, "to", conn.To)
	return conn, nil
}

func (s *topicService) GetReferences(ctx context.Context, aboutLabel, aboutName string) ([]domain.Reference, error) {
	label, err := domain.ParseLabel(aboutLabel)
	if err != nil {
		return nil, err
	}
	return s.store.GetReferences(ctx, label, aboutName)
}

func (s *topicService) DeleteReference(ctx context.Context, title, aboutLabel, aboutName string) (int, error) {
	label, err := domain.ParseLabel(aboutLabel)
	if err != nil {
		return 0, err
	}
	deleted, err := s.store.DeleteReference(ctx, title, label, aboutName)
	if err != nil {
		return 0, err
	}
	s.log.Info("Deleted reference", "title", title, "about", aboutName, "nodes_deleted", deleted)
	return deleted, nil
}

func (s *topicService) DetachReference(ctx context.Context, title, aboutLabel, aboutName string) (int, error) {
	label, err := domain.ParseLabel(aboutLabel)
	if err != nil {
		return 0, err
	}
	deleted, err := s.store.DetachReference(ctx, title, label, aboutName)
	if err != nil {
		return 0, err
	}
	s.log.Info("Detached reference", "title", title, "about", aboutName, "edges_deleted", deleted)
	return deleted, nil
}

func (s *topicService) GetDescendants(ctx context.Context, label, name string) ([]domain.Branch, error) {
	parsed, err := domain.ParseLabel(label)
	if err != nil {
		return nil, err
	}
	return s.store.GetDescendants(ctx, parsed, name)
}

func (s *topicService) GetAncestors(ctx context.Context, label, name string) ([]domain.Ancestor, error) {
	parsed, err := domain.ParseLabel(label)
	if err != nil {
		return nil, err
	}
	return s.store.GetAncestors(ctx, parsed, name)
}
