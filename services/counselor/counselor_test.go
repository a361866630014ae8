package counselor

import (
	"context"
	"errors"
	"strings"
	"testing"

	counselorRepo "mindcare/database/repository/counselor"
	"mindcare/models"
	"mindcare/services/storage"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeCounselorRepo struct {
	byEmail map[string]*models.Counselor
	byID    map[string]*models.Counselor
	created *models.Counselor
	updated bson.M
	deleted bool
	list    []models.Counselor
}

func newFakeRepo() *fakeCounselorRepo {
	return &fakeCounselorRepo{
		byEmail: make(map[string]*models.Counselor),
		byID:    make(map[string]*models.Counselor),
	}
}

func (f *fakeCounselorRepo) Create(c *models.Counselor) error {
	f.created = c
	f.byID[c.ID] = c
	f.byEmail[c.Email] = c
	return nil
}

func (f *fakeCounselorRepo) GetByID(id string) (*models.Counselor, error) {
	return f.byID[id], nil
}

func (f *fakeCounselorRepo) GetByEmail(email string) (*models.Counselor, error) {
	return f.byEmail[email], nil
}

func (f *fakeCounselorRepo) List(filter counselorRepo.ListFilter) ([]models.Counselor, error) {
	return f.list, nil
}

func (f *fakeCounselorRepo) Update(id string, fields bson.M) (*models.Counselor, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	f.updated = fields
	return c, nil
}

func (f *fakeCounselorRepo) SoftDelete(id string) (bool, error) {
	_, ok := f.byID[id]
	f.deleted = ok
	return ok, nil
}

type fakeStorage struct {
	uploads int
	lastArg string
}

func (f *fakeStorage) Upload(ctx context.Context, file, destFolder string) (*storage.UploadResult, error) {
	f.uploads++
	f.lastArg = file
	return &storage.UploadResult{URL: "https://cdn.example/img.jpg", PublicID: "img"}, nil
}

func (f *fakeStorage) Delete(ctx context.Context, publicID, resourceType string) error { return nil }

func fee(v float64) *float64 { return &v }

func validInput() CounselorInput {
	return CounselorInput{
		Name:        "Dr. Achieng",
		Email:       "achieng@example.com",
		Institution: "University of Nairobi",
		Specialties: []string{"Anxiety"},
		Languages:   []string{"English", "Swahili"},
		SessionFee:  fee(800),
	}
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CounselorInput)
		want   string
	}{
		{"missing name", func(in *CounselorInput) { in.Name = "" },
			"Missing required fields: name, email, or institution"},
		{"missing email", func(in *CounselorInput) { in.Email = "" },
			"Missing required fields: name, email, or institution"},
		{"missing institution", func(in *CounselorInput) { in.Institution = "" },
			"Missing required fields: name, email, or institution"},
		{"no specialties", func(in *CounselorInput) { in.Specialties = nil },
			"At least one specialty is required"},
		{"no languages", func(in *CounselorInput) { in.Languages = nil },
			"At least one language is required"},
		{"no fee", func(in *CounselorInput) { in.SessionFee = nil },
			"Session fee is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &DefaultCounselorService{Repo: newFakeRepo(), Storage: &fakeStorage{}}
			in := validInput()
			tt.mutate(&in)

			_, err := svc.Add(in)
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Message != tt.want {
				t.Errorf("message = %q, want %q", verr.Message, tt.want)
			}
		})
	}
}

func TestAddZeroFeeIsValid(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultCounselorService{Repo: repo, Storage: &fakeStorage{}}

	in := validInput()
	in.SessionFee = fee(0)
	created, err := svc.Add(in)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if created.SessionFee != 0 {
		t.Errorf("sessionFee = %v, want 0", created.SessionFee)
	}
	if !created.IsActive {
		t.Error("new counselor should be active")
	}
}

func TestAddDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	repo.byEmail["achieng@example.com"] = &models.Counselor{ID: "c1"}
	svc := &DefaultCounselorService{Repo: repo, Storage: &fakeStorage{}}

	_, err := svc.Add(validInput())
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if !strings.Contains(conflict.Message, "already exists") {
		t.Errorf("conflict message = %q", conflict.Message)
	}
}

func TestAddUploadsInlineProfilePic(t *testing.T) {
	repo := newFakeRepo()
	store := &fakeStorage{}
	svc := &DefaultCounselorService{Repo: repo, Storage: store}

	in := validInput()
	in.ProfilePic = "data:image/png;base64,AAAA"
	created, err := svc.Add(in)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if store.uploads != 1 {
		t.Fatalf("uploads = %d, want 1", store.uploads)
	}
	if created.ProfilePic != "https://cdn.example/img.jpg" {
		t.Errorf("profilePic = %q, want hosted URL", created.ProfilePic)
	}

	// Plain URLs pass through without an upload.
	in = validInput()
	in.Email = "other@example.com"
	in.ProfilePic = "https://elsewhere.example/pic.jpg"
	created, err = svc.Add(in)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if store.uploads != 1 {
		t.Errorf("uploads = %d, URL input should not upload", store.uploads)
	}
	if created.ProfilePic != "https://elsewhere.example/pic.jpg" {
		t.Errorf("profilePic = %q", created.ProfilePic)
	}
}

func TestUpdateBuildsPartialPatch(t *testing.T) {
	repo := newFakeRepo()
	repo.byID["c1"] = &models.Counselor{ID: "c1"}
	svc := &DefaultCounselorService{Repo: repo, Storage: &fakeStorage{}}

	bio := "Trauma-informed care"
	if _, err := svc.Update("c1", CounselorUpdate{Bio: &bio, SessionFee: fee(950)}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if len(repo.updated) != 2 {
		t.Fatalf("patched %d fields, want 2: %v", len(repo.updated), repo.updated)
	}
	if repo.updated["bio"] != bio || repo.updated["sessionFee"] != 950.0 {
		t.Errorf("patch = %v", repo.updated)
	}
}

func TestUpdateMissingCounselor(t *testing.T) {
	svc := &DefaultCounselorService{Repo: newFakeRepo(), Storage: &fakeStorage{}}
	name := "New Name"
	_, err := svc.Update("ghost", CounselorUpdate{Name: &name})
	var notFound NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if notFound.Error() != "Counselor not found" {
		t.Errorf("message = %q", notFound.Error())
	}
}

func TestDeleteIsSoft(t *testing.T) {
	repo := newFakeRepo()
	repo.byID["c1"] = &models.Counselor{ID: "c1", IsActive: true}
	svc := &DefaultCounselorService{Repo: repo, Storage: &fakeStorage{}}

	if err := svc.Delete("c1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !repo.deleted {
		t.Error("soft delete not invoked")
	}

	var notFound NotFoundError
	if err := svc.Delete("ghost"); !errors.As(err, &notFound) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestSpecialtiesDeduplicates(t *testing.T) {
	repo := newFakeRepo()
	repo.list = []models.Counselor{
		{Specialties: []string{"Anxiety", "Depression"}},
		{Specialties: []string{"Depression", "Addiction"}},
	}
	svc := &DefaultCounselorService{Repo: repo, Storage: &fakeStorage{}}

	got, err := svc.Specialties()
	if err != nil {
		t.Fatalf("Specialties returned error: %v", err)
	}
	want := []string{"Anxiety", "Depression", "Addiction"}
	if len(got) != len(want) {
		t.Fatalf("specialties = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("specialties[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
