package scheduling

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	appointmentRepo "occlusa/database/repository/appointment"
	"occlusa/models"
)

// fakeAppointmentRepo is an in-memory AppointmentRepository. It emulates the
// unique active slot index: an insert matching an existing active record's
// (providerId, providerName, dateKey, timeSlot) fails with ErrDuplicateSlot.
type fakeAppointmentRepo struct {
	mu    sync.Mutex
	appts map[string]models.Appointment
	seq   int

	// afterListOverlapping, when set, runs after a conflict scan completes.
	// Tests use it to commit a competing booking between the service's
	// check and its write.
	afterListOverlapping func()
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]models.Appointment)}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *models.Appointment) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if appt.Status.Active() {
		for _, existing := range f.appts {
			if existing.Status.Active() &&
				existing.ProviderID == appt.ProviderID &&
				existing.ProviderName == appt.ProviderName &&
				existing.DateKey == appt.DateKey &&
				existing.TimeSlot == appt.TimeSlot {
				return "", appointmentRepo.ErrDuplicateSlot
			}
		}
	}

	f.seq++
	appt.ID = fmt.Sprintf("appt-%d", f.seq)
	appt.CreatedAt = time.Now().UTC()
	f.appts[appt.ID] = *appt
	return appt.ID, nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	appt, ok := f.appts[id]
	if !ok {
		return nil, appointmentRepo.ErrNotFound
	}
	return &appt, nil
}

func (f *fakeAppointmentRepo) ListByDate(_ context.Context, dateKey, providerName string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, appt := range f.appts {
		if appt.DateKey != dateKey {
			continue
		}
		if providerName != "" && appt.ProviderName != providerName {
			continue
		}
		out = append(out, appt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeAppointmentRepo) ListByDay(_ context.Context, dayStart, dayEnd time.Time, providerID string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, appt := range f.appts {
		if appt.StartTime.Before(dayStart) || appt.StartTime.After(dayEnd) {
			continue
		}
		if providerID != "" && appt.ProviderID != providerID {
			continue
		}
		out = append(out, appt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (f *fakeAppointmentRepo) ListOverlapping(_ context.Context, providerID string, start, end time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	var out []models.Appointment
	for _, appt := range f.appts {
		if appt.ProviderID != providerID || !appt.Status.Active() {
			continue
		}
		if appt.StartTime.Before(end) && appt.EndTime.After(start) {
			out = append(out, appt)
		}
	}
	f.mu.Unlock()

	if f.afterListOverlapping != nil {
		f.afterListOverlapping()
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListActiveBySlot(_ context.Context, providerName, dateKey, timeSlot string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []models.Appointment
	for _, appt := range f.appts {
		if appt.ProviderName == providerName && appt.DateKey == dateKey &&
			appt.TimeSlot == timeSlot && appt.Status.Active() {
			out = append(out, appt)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	appt, ok := f.appts[id]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "startTime":
			appt.StartTime = value.(time.Time)
		case "endTime":
			appt.EndTime = value.(time.Time)
		case "dateKey":
			appt.DateKey = value.(string)
		case "timeSlot":
			appt.TimeSlot = value.(string)
		case "reason":
			appt.Reason = value.(string)
		case "status":
			appt.Status = value.(models.AppointmentStatus)
		}
	}
	if appt.Status.Active() {
		for otherID, existing := range f.appts {
			if otherID != id && existing.Status.Active() &&
				existing.ProviderID == appt.ProviderID &&
				existing.ProviderName == appt.ProviderName &&
				existing.DateKey == appt.DateKey &&
				existing.TimeSlot == appt.TimeSlot {
				return appointmentRepo.ErrDuplicateSlot
			}
		}
	}
	f.appts[id] = appt
	return nil
}

func (f *fakeAppointmentRepo) SetStatus(_ context.Context, id string, status models.AppointmentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	appt, ok := f.appts[id]
	if !ok {
		return appointmentRepo.ErrNotFound
	}
	appt.Status = status
	f.appts[id] = appt
	return nil
}

func (f *fakeAppointmentRepo) EnsureIndexes() error { return nil }

// fakeProviderRepo is an in-memory ProviderRepository keyed by name.
type fakeProviderRepo struct {
	providers map[string]models.Provider
}

func newFakeProviderRepo(providers ...models.Provider) *fakeProviderRepo {
	f := &fakeProviderRepo{providers: make(map[string]models.Provider)}
	for _, p := range providers {
		f.providers[p.Name] = p
	}
	return f
}

func (f *fakeProviderRepo) GetByName(_ context.Context, name string) (*models.Provider, error) {
	p, ok := f.providers[name]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakeProviderRepo) GetByID(_ context.Context, id string) (*models.Provider, error) {
	for _, p := range f.providers {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("provider %s not found", id)
}

func (f *fakeProviderRepo) List(_ context.Context) ([]models.Provider, error) {
	var out []models.Provider
	for _, p := range f.providers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeProviderRepo) EnsureIndexes() error { return nil }

// fakeAuditRepo records appended entries.
type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []models.AuditLogEntry
}

func (f *fakeAuditRepo) Append(_ context.Context, entry *models.AuditLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entry.ID = fmt.Sprintf("audit-%d", len(f.entries)+1)
	entry.Timestamp = time.Now().UTC()
	f.entries = append(f.entries, *entry)
	return nil
}

func newTestService(providers ...models.Provider) (*DefaultSchedulingService, *fakeAppointmentRepo, *fakeAuditRepo) {
	appts := newFakeAppointmentRepo()
	audit := &fakeAuditRepo{}
	svc := &DefaultSchedulingService{
		Appointments: appts,
		Providers:    newFakeProviderRepo(providers...),
		Audit:        audit,
	}
	return svc, appts, audit
}
