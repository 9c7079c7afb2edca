// Package mapper translates between request/response DTOs and persisted entities.
// Mappers are stateless and safe for concurrent use.
package mapper

import (
	"errors"

	"github.com/stemsi/school-registry/internal/model"
)

// ErrNilStudentDto is returned by ToStudent when no DTO is supplied.
// The message is part of the API contract and is kept verbatim.
var ErrNilStudentDto = errors.New("The studentDto should not be null") //nolint:staticcheck // fixed contract message

// StudentMapper converts student DTOs to entities and back.
type StudentMapper struct{}

// NewStudentMapper creates a new StudentMapper.
func NewStudentMapper() *StudentMapper {
	return &StudentMapper{}
}

// ToStudent builds a new, unsaved Student from dto. The school is linked by
// ID only; whether that school exists is left to the database.
func (m *StudentMapper) ToStudent(dto *model.StudentDto) (*model.Student, error) {
	if dto == nil {
		return nil, ErrNilStudentDto
	}

	student := &model.Student{
		Name:     dto.Name,
		Lastname: dto.Lastname,
		Email:    dto.Email,
	}
	if dto.SchoolID != nil {
		student.School = model.SchoolRef{ID: *dto.SchoolID}
	}

	return student, nil
}

// ToStudentResponse projects a student onto its public fields.
// A nil student yields a nil response.
func (m *StudentMapper) ToStudentResponse(student *model.Student) *model.StudentResponseDto {
	if student == nil {
		return nil
	}
	return &model.StudentResponseDto{
		Name:     student.Name,
		Lastname: student.Lastname,
		Email:    student.Email,
	}
}
