package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/stemsi/school-registry/internal/config"
	"github.com/stemsi/school-registry/internal/events"
	"github.com/stemsi/school-registry/internal/mapper"
	"github.com/stemsi/school-registry/internal/model"
)

// SchoolService handles school use cases.
type SchoolService struct {
	schoolRepo SchoolRepository
	mapper     *mapper.SchoolMapper
	publisher  events.Publisher
	log        zerolog.Logger
}

// NewSchoolService creates a new SchoolService.
func NewSchoolService(schoolRepo SchoolRepository, m *mapper.SchoolMapper, publisher events.Publisher, log zerolog.Logger) *SchoolService {
	return &SchoolService{
		schoolRepo: schoolRepo,
		mapper:     m,
		publisher:  publisher,
		log:        log.With().Str("component", "school_service").Logger(),
	}
}

// CreateSchool persists a school built from dto and returns dto as given.
// The returned value never carries server-assigned fields such as the ID.
func (s *SchoolService) CreateSchool(ctx context.Context, dto model.SchoolDto) (model.SchoolDto, error) {
	school := s.mapper.ToSchool(dto)
	if err := s.schoolRepo.Save(ctx, school); err != nil {
		return model.SchoolDto{}, err
	}

	s.publish(ctx, events.New(events.TypeSchoolCreated, events.SchoolData{ID: school.ID, Name: school.Name}))
	return dto, nil
}

// GetSchools lists all schools.
func (s *SchoolService) GetSchools(ctx context.Context) ([]model.SchoolDto, error) {
	schools, err := s.schoolRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.SchoolDto, 0, len(schools))
	for _, school := range schools {
		dtos = append(dtos, s.mapper.ToSchoolDto(school))
	}
	return dtos, nil
}

func (s *SchoolService) publish(ctx context.Context, e events.Event) {
	if err := s.publisher.Publish(ctx, config.ChannelKey.SchoolEvents(), e); err != nil {
		s.log.Warn().Err(err).Str("event", e.Type).Msg("failed to publish event")
	}
}
