package appointment

import (
	"errors"
	"testing"
	"time"

	appointmentRepo "mindcare/database/repository/appointment"
	counselorRepo "mindcare/database/repository/counselor"
	"mindcare/models"

	"go.mongodb.org/mongo-driver/bson"
)

type fakeApptRepo struct {
	appointments map[string]*models.Appointment
	createErr    error
	created      *models.Appointment
	activeSlot   *models.Appointment
	taken        []string
}

func newFakeApptRepo() *fakeApptRepo {
	return &fakeApptRepo{appointments: make(map[string]*models.Appointment)}
}

func (f *fakeApptRepo) Create(appt *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = appt
	f.appointments[appt.ID] = appt
	return nil
}

func (f *fakeApptRepo) FindActiveBySlot(counselorID string, date time.Time, slot string) (*models.Appointment, error) {
	return f.activeSlot, nil
}

func (f *fakeApptRepo) GetByID(id string) (*models.AppointmentDetail, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	return &models.AppointmentDetail{Appointment: *appt}, nil
}

func (f *fakeApptRepo) GetRaw(id string) (*models.Appointment, error) {
	return f.appointments[id], nil
}

func (f *fakeApptRepo) ListByUser(userID string) ([]models.AppointmentDetail, error) {
	var out []models.AppointmentDetail
	for _, appt := range f.appointments {
		if appt.UserID == userID {
			out = append(out, models.AppointmentDetail{Appointment: *appt})
		}
	}
	return out, nil
}

func (f *fakeApptRepo) ListByCounselor(counselorID string) ([]models.AppointmentDetail, error) {
	var out []models.AppointmentDetail
	for _, appt := range f.appointments {
		if appt.CounselorID == counselorID {
			out = append(out, models.AppointmentDetail{Appointment: *appt})
		}
	}
	return out, nil
}

func (f *fakeApptRepo) ListAll() ([]models.AppointmentDetail, error) {
	var out []models.AppointmentDetail
	for _, appt := range f.appointments {
		out = append(out, models.AppointmentDetail{Appointment: *appt})
	}
	return out, nil
}

func (f *fakeApptRepo) UpdateStatus(id, status, sessionNotes string) (*models.AppointmentDetail, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	appt.Status = status
	appt.SessionNotes = sessionNotes
	return &models.AppointmentDetail{Appointment: *appt}, nil
}

func (f *fakeApptRepo) SetStatus(id, status string) error {
	if appt, ok := f.appointments[id]; ok {
		appt.Status = status
	}
	return nil
}

func (f *fakeApptRepo) SetPaymentStatus(id, paymentStatus string) error {
	if appt, ok := f.appointments[id]; ok {
		appt.PaymentStatus = paymentStatus
	}
	return nil
}

func (f *fakeApptRepo) TakenSlots(counselorID string, date time.Time) ([]string, error) {
	return f.taken, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(u *models.User) error { return nil }
func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return f.users[id], nil
}
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) SetTokenHash(id, hash string) error            { return nil }

func newService(repo *fakeApptRepo, counselors map[string]*models.Counselor, users map[string]*models.User) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		Repo:          repo,
		CounselorRepo: &stubCounselorRepo{counselors: counselors},
		UserRepo:      &fakeUserRepo{users: users},
	}
}

// stubCounselorRepo satisfies the full repository interface.
type stubCounselorRepo struct {
	counselors map[string]*models.Counselor
}

func (s *stubCounselorRepo) Create(c *models.Counselor) error { return nil }
func (s *stubCounselorRepo) GetByID(id string) (*models.Counselor, error) {
	return s.counselors[id], nil
}
func (s *stubCounselorRepo) GetByEmail(email string) (*models.Counselor, error) { return nil, nil }
func (s *stubCounselorRepo) List(filter counselorRepo.ListFilter) ([]models.Counselor, error) {
	return nil, nil
}
func (s *stubCounselorRepo) SoftDelete(id string) (bool, error) { return false, nil }
func (s *stubCounselorRepo) Update(id string, fields bson.M) (*models.Counselor, error) {
	return nil, nil
}

func TestCreateFeeFallback(t *testing.T) {
	tests := []struct {
		name          string
		clientAmount  float64
		counselorFee  float64
		wantAmount    float64
		wantPayStatus string
	}{
		{"client amount wins", 750, 300, 750, models.PaymentPending},
		{"counselor fee applies", 0, 300, 300, models.PaymentPending},
		{"flat fallback", 0, 0, 500, models.PaymentPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeApptRepo()
			svc := newService(repo,
				map[string]*models.Counselor{"c1": {ID: "c1", SessionFee: tt.counselorFee}},
				map[string]*models.User{"u1": {ID: "u1", Institution: "UoN"}},
			)

			detail, err := svc.Create("u1", CreateInput{
				CounselorID:     "c1",
				AppointmentDate: time.Now().Add(72 * time.Hour),
				TimeSlot:        "9:00 AM",
				PaymentAmount:   tt.clientAmount,
			})
			if err != nil {
				t.Fatalf("Create returned error: %v", err)
			}
			if detail.PaymentAmount != tt.wantAmount {
				t.Errorf("paymentAmount = %v, want %v", detail.PaymentAmount, tt.wantAmount)
			}
			if detail.PaymentStatus != tt.wantPayStatus {
				t.Errorf("paymentStatus = %q, want %q", detail.PaymentStatus, tt.wantPayStatus)
			}
			if detail.IsFreeSession != (detail.PaymentAmount == 0) {
				t.Errorf("isFreeSession = %v inconsistent with amount %v", detail.IsFreeSession, detail.PaymentAmount)
			}
			if detail.Status != models.AppointmentPending {
				t.Errorf("status = %q, want pending", detail.Status)
			}
		})
	}
}

func TestCreateCopiesInstitution(t *testing.T) {
	tests := []struct {
		institution string
		want        string
	}{
		{"Kenyatta University", "Kenyatta University"},
		{"", "Unknown"},
	}
	for _, tt := range tests {
		repo := newFakeApptRepo()
		svc := newService(repo,
			map[string]*models.Counselor{"c1": {ID: "c1", SessionFee: 200}},
			map[string]*models.User{"u1": {ID: "u1", Institution: tt.institution}},
		)
		_, err := svc.Create("u1", CreateInput{
			CounselorID:     "c1",
			AppointmentDate: time.Now().Add(72 * time.Hour),
			TimeSlot:        "9:00 AM",
		})
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if repo.created.UserInstitution != tt.want {
			t.Errorf("userInstitution = %q, want %q", repo.created.UserInstitution, tt.want)
		}
	}
}

func TestCreateNormalizesDate(t *testing.T) {
	repo := newFakeApptRepo()
	svc := newService(repo,
		map[string]*models.Counselor{"c1": {ID: "c1", SessionFee: 200}},
		map[string]*models.User{"u1": {ID: "u1"}},
	)

	in := time.Date(2026, 9, 14, 16, 45, 12, 0, time.FixedZone("EAT", 3*3600))
	_, err := svc.Create("u1", CreateInput{
		CounselorID:     "c1",
		AppointmentDate: in,
		TimeSlot:        "9:00 AM",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	got := repo.created.AppointmentDate
	want := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("appointmentDate = %v, want %v", got, want)
	}
}

func TestCreateUnknownReferences(t *testing.T) {
	repo := newFakeApptRepo()
	svc := newService(repo,
		map[string]*models.Counselor{"c1": {ID: "c1"}},
		map[string]*models.User{"u1": {ID: "u1"}},
	)

	if _, err := svc.Create("u1", CreateInput{CounselorID: "nope", AppointmentDate: time.Now(), TimeSlot: "9:00 AM"}); err == nil || err.Error() != "Counselor not found" {
		t.Errorf("unknown counselor error = %v, want Counselor not found", err)
	}
	if _, err := svc.Create("ghost", CreateInput{CounselorID: "c1", AppointmentDate: time.Now(), TimeSlot: "9:00 AM"}); err == nil || err.Error() != "User not found" {
		t.Errorf("unknown user error = %v, want User not found", err)
	}
}

func TestCreateSlotConflict(t *testing.T) {
	repo := newFakeApptRepo()
	repo.activeSlot = &models.Appointment{ID: "held"}
	svc := newService(repo,
		map[string]*models.Counselor{"c1": {ID: "c1"}},
		map[string]*models.User{"u1": {ID: "u1"}},
	)

	_, err := svc.Create("u1", CreateInput{
		CounselorID:     "c1",
		AppointmentDate: time.Now().Add(72 * time.Hour),
		TimeSlot:        "9:00 AM",
	})
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Message != "This time slot is already booked" {
		t.Errorf("conflict message = %q", conflict.Message)
	}
}

func TestCreateDuplicateKeyRace(t *testing.T) {
	// The existence check can pass for two racing writers; the unique index
	// rejects the loser and the caller sees the same conflict.
	repo := newFakeApptRepo()
	repo.createErr = appointmentRepo.ErrSlotTaken
	svc := newService(repo,
		map[string]*models.Counselor{"c1": {ID: "c1"}},
		map[string]*models.User{"u1": {ID: "u1"}},
	)

	_, err := svc.Create("u1", CreateInput{
		CounselorID:     "c1",
		AppointmentDate: time.Now().Add(72 * time.Hour),
		TimeSlot:        "9:00 AM",
	})
	var conflict ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Message != "This time slot is already booked" {
		t.Errorf("conflict message = %q", conflict.Message)
	}
}

func TestGetByIDOwnerOnly(t *testing.T) {
	repo := newFakeApptRepo()
	repo.appointments["a1"] = &models.Appointment{ID: "a1", UserID: "u1"}
	svc := newService(repo, nil, nil)

	if _, err := svc.GetByID("a1", "u1"); err != nil {
		t.Errorf("owner read failed: %v", err)
	}

	_, err := svc.GetByID("a1", "someone-else")
	var denied AccessDeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("expected AccessDeniedError, got %v", err)
	}
	if denied.Message != "Unauthorized access" {
		t.Errorf("denied message = %q", denied.Message)
	}

	var notFound NotFoundError
	if _, err := svc.GetByID("missing", "u1"); !errors.As(err, &notFound) {
		t.Errorf("expected NotFoundError for missing id, got %v", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{models.AppointmentPending, models.AppointmentConfirmed, true},
		{models.AppointmentPending, models.AppointmentCancelled, true},
		{models.AppointmentConfirmed, models.AppointmentCompleted, true},
		{models.AppointmentCompleted, models.AppointmentConfirmed, false},
		{models.AppointmentCancelled, models.AppointmentPending, false},
		{models.AppointmentConfirmed, models.AppointmentConfirmed, true}, // no-op
	}

	for _, tt := range tests {
		repo := newFakeApptRepo()
		repo.appointments["a1"] = &models.Appointment{ID: "a1", Status: tt.from}
		svc := newService(repo, nil, nil)

		_, err := svc.UpdateStatus("a1", tt.to, "notes")
		if tt.allowed && err != nil {
			t.Errorf("%s -> %s: unexpected error %v", tt.from, tt.to, err)
		}
		if !tt.allowed {
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("%s -> %s: expected ValidationError, got %v", tt.from, tt.to, err)
			}
		}
	}
}

func TestUpdateStatusMissing(t *testing.T) {
	svc := newService(newFakeApptRepo(), nil, nil)
	var notFound NotFoundError
	if _, err := svc.UpdateStatus("missing", models.AppointmentConfirmed, ""); !errors.As(err, &notFound) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestCancelRules(t *testing.T) {
	tests := []struct {
		name    string
		lead    time.Duration
		status  string
		caller  string
		wantErr string
	}{
		{"owner far out", 72 * time.Hour, models.AppointmentConfirmed, "u1", ""},
		{"pending inside window", 2 * time.Hour, models.AppointmentPending, "u1", ""},
		{"confirmed inside window", 2 * time.Hour, models.AppointmentConfirmed, "u1",
			"Cannot cancel appointment less than 24 hours before scheduled time"},
		{"not the owner", 72 * time.Hour, models.AppointmentConfirmed, "intruder", "Unauthorized access"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeApptRepo()
			repo.appointments["a1"] = &models.Appointment{
				ID:              "a1",
				UserID:          "u1",
				Status:          tt.status,
				AppointmentDate: time.Now().Add(tt.lead),
			}
			svc := newService(repo, nil, nil)

			detail, err := svc.Cancel("a1", tt.caller)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Cancel returned error: %v", err)
				}
				if detail.Status != models.AppointmentCancelled {
					t.Errorf("status = %q, want cancelled", detail.Status)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Cancel error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestCancelIsNonDestructive(t *testing.T) {
	repo := newFakeApptRepo()
	repo.appointments["a1"] = &models.Appointment{
		ID:              "a1",
		UserID:          "u1",
		Status:          models.AppointmentPending,
		AppointmentDate: time.Now().Add(72 * time.Hour),
	}
	svc := newService(repo, nil, nil)

	if _, err := svc.Cancel("a1", "u1"); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}
	if repo.appointments["a1"] == nil {
		t.Fatal("cancelled appointment was deleted")
	}
	if repo.appointments["a1"].Status != models.AppointmentCancelled {
		t.Errorf("status = %q, want cancelled", repo.appointments["a1"].Status)
	}
}

func TestSlotAvailability(t *testing.T) {
	repo := newFakeApptRepo()
	repo.taken = []string{"10:00 AM", "2:00 PM"}
	svc := newService(repo,
		map[string]*models.Counselor{"c1": {ID: "c1"}},
		nil,
	)

	// Pick the next non-Sunday at least two days out.
	date := time.Now().AddDate(0, 0, 2)
	for date.Weekday() == time.Sunday {
		date = date.AddDate(0, 0, 1)
	}

	slots, err := svc.SlotAvailability("c1", date)
	if err != nil {
		t.Fatalf("SlotAvailability returned error: %v", err)
	}
	if len(slots) != len(DailySlots) {
		t.Fatalf("got %d slots, want %d", len(slots), len(DailySlots))
	}
	for _, slot := range slots {
		taken := slot.Time == "10:00 AM" || slot.Time == "2:00 PM"
		if slot.Available == taken {
			t.Errorf("slot %q available = %v, want %v", slot.Time, slot.Available, !taken)
		}
	}
}

func TestSlotAvailabilityRejectsPastAndSundays(t *testing.T) {
	svc := newService(newFakeApptRepo(),
		map[string]*models.Counselor{"c1": {ID: "c1"}}, nil)

	if _, err := svc.SlotAvailability("c1", time.Now().AddDate(0, 0, -1)); err == nil {
		t.Error("expected error for past date")
	}

	sunday := time.Now()
	for sunday.Weekday() != time.Sunday {
		sunday = sunday.AddDate(0, 0, 1)
	}
	_, err := svc.SlotAvailability("c1", sunday)
	if err == nil || err.Error() != "Appointments cannot be booked on Sundays" {
		t.Errorf("Sunday error = %v", err)
	}

	var notFound NotFoundError
	if _, err := svc.SlotAvailability("nope", time.Now().AddDate(0, 0, 2)); !errors.As(err, &notFound) {
		t.Errorf("expected NotFoundError for unknown counselor, got %v", err)
	}
}
