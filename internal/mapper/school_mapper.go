package mapper

import "github.com/stemsi/school-registry/internal/model"

// SchoolMapper converts school DTOs to entities and back.
type SchoolMapper struct{}

// NewSchoolMapper creates a new SchoolMapper.
func NewSchoolMapper() *SchoolMapper {
	return &SchoolMapper{}
}

// ToSchool builds a new, unsaved School from dto.
func (m *SchoolMapper) ToSchool(dto model.SchoolDto) *model.School {
	return &model.School{Name: dto.Name}
}

// ToSchoolDto copies the externally visible fields of a school.
func (m *SchoolMapper) ToSchoolDto(school model.School) model.SchoolDto {
	return model.SchoolDto{Name: school.Name}
}
