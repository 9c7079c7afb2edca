package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stemsi/school-registry/internal/events"
	"github.com/stemsi/school-registry/internal/model"
	"github.com/stemsi/school-registry/internal/repository"
	"github.com/stretchr/testify/require"
)

// memRepos wires the services to the in-memory store, which enforces the
// same school reference and unique email rules as PostgreSQL.
type memRepos struct {
	schools  *repository.MemorySchoolRepository
	students *repository.MemoryStudentRepository
}

func newMemRepos() *memRepos {
	store := repository.NewMemoryStore()
	return &memRepos{
		schools:  repository.NewMemorySchoolRepository(store),
		students: repository.NewMemoryStudentRepository(store),
	}
}

// seedSchool stores a school and returns its ID.
func (m *memRepos) seedSchool(t *testing.T, name string) int {
	t.Helper()
	s := &model.School{Name: name}
	require.NoError(t, m.schools.Save(context.Background(), s))
	return s.ID
}

func (m *memRepos) allStudents(t *testing.T) []model.Student {
	t.Helper()
	all, err := m.students.FindAll(context.Background())
	require.NoError(t, err)
	return all
}

// failingSchoolRepo rejects every save.
type failingSchoolRepo struct {
	SchoolRepository
	err error
}

func (r failingSchoolRepo) Save(context.Context, *model.School) error {
	return r.err
}

// failingStudentRepo rejects every save.
type failingStudentRepo struct {
	StudentRepository
	err error
}

func (r failingStudentRepo) Save(context.Context, *model.Student) error {
	return r.err
}

// deleteRecorder records the IDs it is asked to delete before delegating.
type deleteRecorder struct {
	StudentRepository
	deleted []int
}

func (r *deleteRecorder) DeleteByID(ctx context.Context, id int) error {
	r.deleted = append(r.deleted, id)
	return r.StudentRepository.DeleteByID(ctx, id)
}

type published struct {
	channel string
	event   events.Event
}

// recordingPublisher captures published events and can be made to fail.
type recordingPublisher struct {
	mu     sync.Mutex
	events []published
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, channel string, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, published{channel: channel, event: e})
	return nil
}
