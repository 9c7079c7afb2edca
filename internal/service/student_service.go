package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-registry/internal/config"
	"github.com/stemsi/school-registry/internal/events"
	"github.com/stemsi/school-registry/internal/mapper"
	"github.com/stemsi/school-registry/internal/model"
)

// StudentService handles student use cases.
type StudentService struct {
	studentRepo StudentRepository
	mapper      *mapper.StudentMapper
	publisher   events.Publisher
	log         zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo StudentRepository, m *mapper.StudentMapper, publisher events.Publisher, log zerolog.Logger) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		mapper:      m,
		publisher:   publisher,
		log:         log.With().Str("component", "student_service").Logger(),
	}
}

// SaveStudent maps dto to a new student, persists it and returns its public view.
// A nil dto fails with mapper.ErrNilStudentDto.
func (s *StudentService) SaveStudent(ctx context.Context, dto *model.StudentDto) (*model.StudentResponseDto, error) {
	student, err := s.mapper.ToStudent(dto)
	if err != nil {
		return nil, err
	}

	if err := s.studentRepo.Save(ctx, student); err != nil {
		return nil, err
	}

	e := events.New(events.TypeStudentCreated, events.StudentData{ID: student.ID, SchoolID: student.School.ID})
	s.publish(ctx, config.ChannelKey.StudentEvents(), e)
	s.publish(ctx, config.ChannelKey.SchoolStudentEvents(student.School.ID), e)

	return s.mapper.ToStudentResponse(student), nil
}

// GetAllStudents lists all students in repository order.
func (s *StudentService) GetAllStudents(ctx context.Context) ([]model.StudentResponseDto, error) {
	students, err := s.studentRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponses(students), nil
}

// GetStudentByID returns the student with id. found is false, with a nil
// error, when there is no such student.
func (s *StudentService) GetStudentByID(ctx context.Context, id int) (*model.StudentResponseDto, bool, error) {
	student, found, err := s.studentRepo.FindByID(ctx, id)
	if err != nil || !found {
		return nil, false, err
	}
	return s.mapper.ToStudentResponse(student), true, nil
}

// GetStudentsByName returns the students whose name matches exactly.
func (s *StudentService) GetStudentsByName(ctx context.Context, name string) ([]model.StudentResponseDto, error) {
	students, err := s.studentRepo.FindByField(ctx, "name", name)
	if err != nil {
		return nil, err
	}
	return s.toResponses(students), nil
}

// DeleteStudent removes the student with id along with its profile.
func (s *StudentService) DeleteStudent(ctx context.Context, id int) error {
	if err := s.studentRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, config.ChannelKey.StudentEvents(), events.New(events.TypeStudentDeleted, events.StudentData{ID: id}))
	return nil
}

func (s *StudentService) toResponses(students []model.Student) []model.StudentResponseDto {
	out := make([]model.StudentResponseDto, 0, len(students))
	for i := range students {
		out = append(out, *s.mapper.ToStudentResponse(&students[i]))
	}
	return out
}

func (s *StudentService) publish(ctx context.Context, channel string, e events.Event) {
	if err := s.publisher.Publish(ctx, channel, e); err != nil {
		s.log.Warn().Err(err).Str("event", e.Type).Str("channel", channel).Msg("failed to publish event")
	}
}
