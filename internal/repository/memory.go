package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/stemsi/school-registry/internal/model"
)

// MemoryStore keeps schools and students in process memory. It enforces
// the same constraints as the PostgreSQL schema: unique student email, an
// existing school per student, and profile removal with its student.
type MemoryStore struct {
	mu            sync.RWMutex
	schools       []model.School
	students      []model.Student
	nextSchoolID  int
	nextStudentID int
	nextProfileID int
	now           func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// MemorySchoolRepository is a SchoolRepository backed by a MemoryStore.
type MemorySchoolRepository struct {
	store *MemoryStore
}

// NewMemorySchoolRepository creates a new MemorySchoolRepository.
func NewMemorySchoolRepository(store *MemoryStore) *MemorySchoolRepository {
	return &MemorySchoolRepository{store: store}
}

// Save stores a new school and assigns its ID and creation time.
func (r *MemorySchoolRepository) Save(_ context.Context, s *model.School) error {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextSchoolID++
	s.ID = m.nextSchoolID
	s.CreatedAt = m.now().UTC()
	m.schools = append(m.schools, *s)
	return nil
}

// FindAll returns all schools in insertion order.
func (r *MemorySchoolRepository) FindAll(_ context.Context) ([]model.School, error) {
	m := r.store
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]model.School(nil), m.schools...), nil
}

// MemoryStudentRepository is a StudentRepository backed by a MemoryStore.
type MemoryStudentRepository struct {
	store *MemoryStore
}

// NewMemoryStudentRepository creates a new MemoryStudentRepository.
func NewMemoryStudentRepository(store *MemoryStore) *MemoryStudentRepository {
	return &MemoryStudentRepository{store: store}
}

// Save stores a new student and its optional profile.
func (r *MemoryStudentRepository) Save(_ context.Context, s *model.Student) error {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.schoolExists(s.School.ID) {
		return ErrSchoolNotFound
	}
	for _, existing := range m.students {
		if existing.Email == s.Email {
			return ErrDuplicateEmail
		}
	}

	// Postgres stores created_at as DATE.
	s.PrePersist(m.now().UTC().Truncate(24 * time.Hour))
	m.nextStudentID++
	s.ID = m.nextStudentID
	if s.Profile != nil {
		m.nextProfileID++
		s.Profile.ID = m.nextProfileID
		s.Profile.StudentID = s.ID
	}

	m.students = append(m.students, copyStudent(*s))
	return nil
}

// FindAll returns all students in insertion order.
func (r *MemoryStudentRepository) FindAll(_ context.Context) ([]model.Student, error) {
	m := r.store
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Student, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, copyStudent(s))
	}
	return out, nil
}

// FindByID returns the student with id; found is false when absent.
func (r *MemoryStudentRepository) FindByID(_ context.Context, id int) (*model.Student, bool, error) {
	m := r.store
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, s := range m.students {
		if s.ID == id {
			found := copyStudent(s)
			return &found, true, nil
		}
	}
	return nil, false, nil
}

// FindByField returns the students whose field equals value exactly.
func (r *MemoryStudentRepository) FindByField(_ context.Context, field, value string) ([]model.Student, error) {
	if _, ok := searchableColumns[field]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	m := r.store
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []model.Student
	for _, s := range m.students {
		if studentField(s, field) == value {
			out = append(out, copyStudent(s))
		}
	}
	return out, nil
}

// DeleteByID removes the student with id together with its profile.
func (r *MemoryStudentRepository) DeleteByID(_ context.Context, id int) error {
	m := r.store
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, s := range m.students {
		if s.ID == id {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MemoryStore) schoolExists(id int) bool {
	for _, s := range m.schools {
		if s.ID == id {
			return true
		}
	}
	return false
}

func studentField(s model.Student, field string) string {
	switch field {
	case "name":
		return s.Name
	case "lastname":
		return s.Lastname
	case "email":
		return s.Email
	}
	return ""
}

// copyStudent detaches the profile pointer so callers cannot mutate the store.
func copyStudent(s model.Student) model.Student {
	if s.Profile != nil {
		p := *s.Profile
		s.Profile = &p
	}
	return s
}
