package services

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/arbor-backend/internal/domain"
	"github.com/yungbote/arbor-backend/internal/logger"
	pkgerrors "github.com/yungbote/arbor-backend/internal/pkg/errors"
)

// fakeStore records calls and plays back canned results.
type fakeStore struct {
	calls int

	trunk      *domain.Trunk
	trunks     []domain.Trunk
	branches   []domain.Branch
	references []domain.Reference
	ancestors  []domain.Ancestor
	attachment *domain.BranchAttachment
	refAttach  *domain.ReferenceAttachment
	conn       *domain.Connection
	deleted    int
	err        error

	lastLabel domain.Label
}

func (f *fakeStore) CreateTrunk(ctx context.Context, name string) (*domain.Trunk, error) {
	f.calls++
	return f.trunk, f.err
}
func (f *fakeStore) GetTrunks(ctx context.Context) ([]domain.Trunk, error) {
	f.calls++
	return f.trunks, f.err
}
func (f *fakeStore) DeleteTrunk(ctx context.Context, name string) (int, error) {
	f.calls++
	return f.deleted, f.err
}
func (f *fakeStore) CreateBranch(ctx context.Context, name string, parentLabel domain.Label, parentName, note string) (*domain.BranchAttachment, error) {
	f.calls++
	f.lastLabel = parentLabel
	return f.attachment, f.err
}
func (f *fakeStore) ConnectBranch(ctx context.Context, name string, parentLabel domain.Label, parentName string) (*domain.Connection, error) {
	f.calls++
	f.lastLabel = parentLabel
	return f.conn, f.err
}
func (f *fakeStore) GetBranches(ctx context.Context, parentLabel domain.Label, parentName string) ([]domain.Branch, error) {
	f.calls++
	f.lastLabel = parentLabel
	return f.branches, f.err
}
func (f *fakeStore) DeleteBranch(ctx context.Context, name string, parentLabel domain.Label, parentName string) (int, error) {
	f.calls++
	return f.deleted, f.err
}
func (f *fakeStore) DetachBranch(ctx context.Context, name string, parentLabel domain.Label, parentName string) (int, error) {
	f.calls++
	return f.deleted, f.err
}
func (f *fakeStore) CreateReference(ctx context.Context, title, url string, aboutLabel domain.Label, aboutName string) (*domain.ReferenceAttachment, error) {
	f.calls++
	f.lastLabel = aboutLabel
	return f.refAttach, f.err
}
func (f *fakeStore) CrossReference(ctx context.Context, title string, fromLabel domain.Label, fromName string, toLabel domain.Label, toName string) (*domain.Connection, error) {
	f.calls++
	return f.conn, f.err
}
func (f *fakeStore) GetReferences(ctx context.Context, aboutLabel domain.Label, aboutName string) ([]domain.Reference, error) {
	f.calls++
	return f.references, f.err
}
func (f *fakeStore) DeleteReference(ctx context.Context, title string, aboutLabel domain.Label, aboutName string) (int, error) {
	f.calls++
	return f.deleted, f.err
}
func (f *fakeStore) DetachReference(ctx context.Context, title string, aboutLabel domain.Label, aboutName string) (int, error) {
	f.calls++
	return f.deleted, f.err
}
func (f *fakeStore) GetDescendants(ctx context.Context, label domain.Label, name string) ([]domain.Branch, error) {
	f.calls++
	return f.branches, f.err
}
func (f *fakeStore) GetAncestors(ctx context.Context, label domain.Label, name string) ([]domain.Ancestor, error) {
	f.calls++
	return f.ancestors, f.err
}

func newTestService(t *testing.T, store TopicStore) TopicService {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return NewTopicService(store, log)
}

func TestCreateBranchRejectsLabelBeforeStore(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)

	_, err := svc.CreateBranch(context.Background(), "Algebra", "Reference", "Math", "")
	if err == nil {
		t.Fatalf("expected invalid-argument error")
	}
	if !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	if store.calls != 0 {
		t.Fatalf("store must not be touched on invalid label, got %d calls", store.calls)
	}
}

func TestCreateBranchPassesParsedLabel(t *testing.T) {
	store := &fakeStore{attachment: &domain.BranchAttachment{
		Branch: domain.Branch{Name: "Algebra", Note: "intro"},
		Parent: "Math",
	}}
	svc := newTestService(t, store)

	attachment, err := svc.CreateBranch(context.Background(), "Algebra", "Trunk", "Math", "intro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastLabel != domain.LabelTrunk {
		t.Fatalf("expected parsed Trunk label, got %q", store.lastLabel)
	}
	if attachment == nil || attachment.Branch.Name != "Algebra" || attachment.Parent != "Math" {
		t.Fatalf("unexpected attachment: %+v", attachment)
	}
}

func TestCreateBranchNilAttachmentIsNotAnError(t *testing.T) {
	store := &fakeStore{attachment: nil}
	svc := newTestService(t, store)

	attachment, err := svc.CreateBranch(context.Background(), "Algebra", "Trunk", "Math", "")
	if err != nil {
		t.Fatalf("no-op must not error: %v", err)
	}
	if attachment != nil {
		t.Fatalf("expected nil attachment, got %+v", attachment)
	}
}

func TestConnectBranchNilConnectionIsNotAnError(t *testing.T) {
	store := &fakeStore{conn: nil}
	svc := newTestService(t, store)

	conn, err := svc.ConnectBranch(context.Background(), "Algebra", "Trunk", "Science")
	if err != nil {
		t.Fatalf("unmatched endpoints must not error: %v", err)
	}
	if conn != nil {
		t.Fatalf("expected nil connection, got %+v", conn)
	}
}

func TestCrossReferenceValidatesBothLabels(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(t, store)

	if _, err := svc.CrossReference(context.Background(), "Euclid", "Trunk", "Math", "Topic", "Geometry"); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Fatalf("bad target label must fail with ErrInvalidArgument, got %v", err)
	}
	if _, err := svc.CrossReference(context.Background(), "Euclid", "topic", "Math", "Branch", "Geometry"); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Fatalf("bad subject label must fail with ErrInvalidArgument, got %v", err)
	}
	if store.calls != 0 {
		t.Fatalf("store must not be touched on invalid labels, got %d calls", store.calls)
	}
}

func TestStoreErrorsPropagateUnchanged(t *testing.T) {
	cause := errors.New("neo4j unavailable")
	store := &fakeStore{err: cause}
	svc := newTestService(t, store)

	if _, err := svc.GetBranches(context.Background(), "Trunk", "Math"); !errors.Is(err, cause) {
		t.Fatalf("store error must bubble to the caller, got %v", err)
	}
	if _, err := svc.DeleteTrunk(context.Background(), "Math"); !errors.Is(err, cause) {
		t.Fatalf("delete error must bubble to the caller, got %v", err)
	}
}

func TestDeleteTrunkReturnsCount(t *testing.T) {
	store := &fakeStore{deleted: 1}
	svc := newTestService(t, store)

	deleted, err := svc.DeleteTrunk(context.Background(), "Math")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 1 {
		t.Fatalf("expected 1 node deleted, got %d", deleted)
	}
}
