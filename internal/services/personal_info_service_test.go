package services

import (
	"context"
	"sync"
	"testing"

	"github.com/resumely/resumely/internal/models"
	"github.com/resumely/resumely/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newPersonalFixture(t *testing.T) (PersonalInfoService, *fakePersonalRepo, primitive.ObjectID) {
	t.Helper()
	resumes := newFakeResumeRepo()
	rs := &models.Resume{UserID: primitive.NewObjectID()}
	if err := resumes.Create(context.Background(), rs); err != nil {
		t.Fatalf("seed resume: %v", err)
	}
	repo := newFakePersonalRepo()
	return NewPersonalInfoService(repo, resumes, nil), repo, rs.ID
}

func TestPersonalInfoUpsertIsIdempotentSingleton(t *testing.T) {
	svc, repo, resumeID := newPersonalFixture(t)
	ctx := context.Background()

	first, err := svc.Upsert(ctx, resumeID.Hex(), map[string]any{"full_name": "Ada Lovelace", "phone": "+44 1"})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := svc.Upsert(ctx, resumeID.Hex(), map[string]any{"full_name": "Ada King"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if repo.count() != 1 {
		t.Fatalf("expected exactly one document, got %d", repo.count())
	}
	if second.ID != first.ID {
		t.Fatalf("second upsert must reuse the same document")
	}
	if second.FullName != "Ada King" {
		t.Fatalf("second write must win: %q", second.FullName)
	}
	if second.Phone != "+44 1" {
		t.Fatalf("untouched fields must survive the merge: %q", second.Phone)
	}
}

func TestPersonalInfoUpsertRefusesOrphans(t *testing.T) {
	svc, repo, _ := newPersonalFixture(t)
	ctx := context.Background()

	if _, err := svc.Upsert(ctx, primitive.NewObjectID().Hex(), map[string]any{"full_name": "x"}); !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("expected not-found for missing resume, got %v", err)
	}
	if _, err := svc.Upsert(ctx, "???", map[string]any{"full_name": "x"}); !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("expected not-found for malformed id, got %v", err)
	}
	if repo.count() != 0 {
		t.Fatalf("orphan personal info must not be created")
	}
}

func TestPersonalInfoGetAbsentReadsEmpty(t *testing.T) {
	svc, _, resumeID := newPersonalFixture(t)

	pi, err := svc.GetByResume(context.Background(), resumeID.Hex())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if pi == nil {
		t.Fatalf("absence must read as an empty document")
	}
	if pi.FullName != "" || !pi.ID.IsZero() {
		t.Fatalf("expected zero-value document, got %#v", pi)
	}
}

func TestPersonalInfoConcurrentUpsertsSingleDoc(t *testing.T) {
	svc, repo, resumeID := newPersonalFixture(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Upsert(ctx, resumeID.Hex(), map[string]any{"summary": "racing"})
		}()
	}
	wg.Wait()

	if repo.count() != 1 {
		t.Fatalf("concurrent upserts produced %d documents", repo.count())
	}
}
