package services

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/resumely/resumely/internal/models"
	"github.com/resumely/resumely/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They are mutex-guarded because GetFull fans
// out against them concurrently.

type fakeResumeRepo struct {
	mu        sync.Mutex
	docs      map[primitive.ObjectID]models.Resume
	order     []primitive.ObjectID
	createErr error
	getErr    error
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{docs: map[primitive.ObjectID]models.Resume{}}
}

func (f *fakeResumeRepo) Create(_ context.Context, rs *models.Resume) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if rs.ID.IsZero() {
		rs.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	rs.CreatedAt = now
	rs.UpdatedAt = now
	f.docs[rs.ID] = *rs
	f.order = append(f.order, rs.ID)
	return nil
}

func (f *fakeResumeRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	rs, ok := f.docs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &rs, nil
}

func (f *fakeResumeRepo) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Resume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Resume{}
	for _, id := range f.order {
		if rs := f.docs[id]; rs.UserID == userID {
			out = append(out, rs)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

func (f *fakeResumeRepo) Update(_ context.Context, id primitive.ObjectID, fields bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rs, ok := f.docs[id]
	if !ok {
		return utils.ErrNotFound
	}
	if v, ok := fields["title"].(string); ok {
		rs.Title = v
	}
	if v, ok := fields["template"].(string); ok {
		rs.Template = v
	}
	rs.UpdatedAt = time.Now().UTC()
	f.docs[id] = rs
	return nil
}

func (f *fakeResumeRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.docs[id]; !ok {
		return utils.ErrNotFound
	}
	delete(f.docs, id)
	return nil
}

type fakeUserRepo struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{docs: map[primitive.ObjectID]models.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ex := range f.docs {
		if ex.Email == u.Email {
			return utils.ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	f.docs[u.ID] = *u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.docs[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.docs {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, id primitive.ObjectID, fields bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.docs[id]
	if !ok {
		return utils.ErrNotFound
	}
	if v, ok := fields["name"].(string); ok {
		u.Name = v
	}
	if v, ok := fields["picture"].(string); ok {
		u.Picture = v
	}
	u.UpdatedAt = time.Now().UTC()
	f.docs[id] = u
	return nil
}

type fakePersonalRepo struct {
	mu        sync.Mutex
	docs      map[primitive.ObjectID]models.PersonalInfo // keyed by resume id
	upsertErr error
	getErr    error
}

func newFakePersonalRepo() *fakePersonalRepo {
	return &fakePersonalRepo{docs: map[primitive.ObjectID]models.PersonalInfo{}}
}

func (f *fakePersonalRepo) GetByResume(_ context.Context, resumeID primitive.ObjectID) (*models.PersonalInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	pi, ok := f.docs[resumeID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return &pi, nil
}

func (f *fakePersonalRepo) Upsert(_ context.Context, resumeID primitive.ObjectID, fields bson.M) (*models.PersonalInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	now := time.Now().UTC()
	pi, ok := f.docs[resumeID]
	if !ok {
		pi = models.PersonalInfo{ID: primitive.NewObjectID(), ResumeID: resumeID, CreatedAt: now}
	}
	for k, v := range fields {
		s, _ := v.(string)
		switch k {
		case "full_name":
			pi.FullName = s
		case "email":
			pi.Email = s
		case "phone":
			pi.Phone = s
		case "location":
			pi.Location = s
		case "website":
			pi.Website = s
		case "linkedin":
			pi.LinkedIn = s
		case "summary":
			pi.Summary = s
		}
	}
	pi.UpdatedAt = now
	f.docs[resumeID] = pi
	return &pi, nil
}

func (f *fakePersonalRepo) DeleteByResume(_ context.Context, resumeID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.docs, resumeID)
	return nil
}

func (f *fakePersonalRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.docs)
}

type fakeSectionRepo[T any, PT interface {
	*T
	models.Sectioner
}] struct {
	mu        sync.Mutex
	docs      []T
	createErr error
	listErr   error
	stall     bool // ListByResume blocks until the caller's context expires
}

func (f *fakeSectionRepo[T, PT]) Create(_ context.Context, doc PT) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	m := doc.Meta()
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeSectionRepo[T, PT]) GetByID(_ context.Context, id primitive.ObjectID) (PT, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.docs {
		if PT(&f.docs[i]).Meta().ID == id {
			cp := f.docs[i]
			return &cp, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeSectionRepo[T, PT]) ListByResume(ctx context.Context, resumeID primitive.ObjectID) ([]T, error) {
	f.mu.Lock()
	if f.stall {
		f.mu.Unlock()
		<-ctx.Done()
		return nil, ctx.Err()
	}
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []T{}
	for i := range f.docs {
		if PT(&f.docs[i]).Meta().ResumeID == resumeID {
			out = append(out, f.docs[i])
		}
	}
	// Stable keeps insertion order for equal ordinals, like the _id tiebreak.
	sort.SliceStable(out, func(i, j int) bool {
		return PT(&out[i]).Meta().OrderIndex < PT(&out[j]).Meta().OrderIndex
	})
	return out, nil
}

func (f *fakeSectionRepo[T, PT]) Update(_ context.Context, id primitive.ObjectID, fields bson.M) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.docs {
		m := PT(&f.docs[i]).Meta()
		if m.ID == id {
			if v, ok := fields["order_index"].(int); ok {
				m.OrderIndex = v
			}
			m.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeSectionRepo[T, PT]) Delete(_ context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.docs {
		if PT(&f.docs[i]).Meta().ID == id {
			f.docs = append(f.docs[:i], f.docs[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeSectionRepo[T, PT]) DeleteByResume(_ context.Context, resumeID primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.docs[:0]
	for i := range f.docs {
		if PT(&f.docs[i]).Meta().ResumeID != resumeID {
			kept = append(kept, f.docs[i])
		}
	}
	f.docs = kept
	return nil
}

func (f *fakeSectionRepo[T, PT]) NextOrderIndex(_ context.Context, resumeID primitive.ObjectID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := 0
	for i := range f.docs {
		m := PT(&f.docs[i]).Meta()
		if m.ResumeID == resumeID && m.OrderIndex >= next {
			next = m.OrderIndex + 1
		}
	}
	return next, nil
}

func (f *fakeSectionRepo[T, PT]) Reorder(_ context.Context, resumeID primitive.ObjectID, ids []primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for pos, id := range ids {
		for i := range f.docs {
			m := PT(&f.docs[i]).Meta()
			if m.ID == id && m.ResumeID == resumeID {
				m.OrderIndex = pos
				m.UpdatedAt = time.Now().UTC()
			}
		}
	}
	return nil
}

func (f *fakeSectionRepo[T, PT]) countByResume(resumeID primitive.ObjectID) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for i := range f.docs {
		if PT(&f.docs[i]).Meta().ResumeID == resumeID {
			n++
		}
	}
	return n
}

// fakeCache is a JSON map cache, enough to observe read-through hits and
// invalidation.
type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	return nil
}

func (c *fakeCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

// newTestDeps wires a resume service over fresh fakes.
func newTestDeps() (ResumeServiceDeps, *fakeResumeRepo, *fakePersonalRepo,
	*fakeSectionRepo[models.Experience, *models.Experience],
	*fakeSectionRepo[models.Education, *models.Education],
	*fakeSectionRepo[models.Skill, *models.Skill]) {

	resumes := newFakeResumeRepo()
	personal := newFakePersonalRepo()
	exps := &fakeSectionRepo[models.Experience, *models.Experience]{}
	edus := &fakeSectionRepo[models.Education, *models.Education]{}
	skills := &fakeSectionRepo[models.Skill, *models.Skill]{}

	deps := ResumeServiceDeps{
		Resumes:        resumes,
		Personal:       personal,
		Experiences:    exps,
		Educations:     edus,
		Skills:         skills,
		Projects:       &fakeSectionRepo[models.Project, *models.Project]{},
		Certifications: &fakeSectionRepo[models.Certification, *models.Certification]{},
	}
	return deps, resumes, personal, exps, edus, skills
}
