package mapper

import (
	"testing"
	"time"

	"github.com/stemsi/school-registry/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestStudentMapper_ToStudent(t *testing.T) {
	m := NewStudentMapper()
	dto := &model.StudentDto{
		Name:     "John",
		Lastname: "Doe",
		Email:    "john@doe.com",
		SchoolID: intPtr(1),
	}

	student, err := m.ToStudent(dto)
	require.NoError(t, err)

	assert.Equal(t, "John", student.Name)
	assert.Equal(t, "Doe", student.Lastname)
	assert.Equal(t, "john@doe.com", student.Email)
	assert.Equal(t, 1, student.School.ID)

	// Server-assigned and source-less fields stay unset.
	assert.Zero(t, student.ID)
	assert.Zero(t, student.Age)
	assert.True(t, student.CreatedAt.IsZero())
	assert.Nil(t, student.Profile)
}

func TestStudentMapper_ToStudent_NilDto(t *testing.T) {
	m := NewStudentMapper()

	student, err := m.ToStudent(nil)

	assert.Nil(t, student)
	require.ErrorIs(t, err, ErrNilStudentDto)
	assert.EqualError(t, err, "The studentDto should not be null")
}

func TestStudentMapper_ToStudent_MissingSchoolID(t *testing.T) {
	m := NewStudentMapper()

	student, err := m.ToStudent(&model.StudentDto{Name: "Ana", Lastname: "Ruiz", Email: "ana@ruiz.com"})
	require.NoError(t, err)

	assert.Equal(t, model.SchoolRef{}, student.School)
}

func TestStudentMapper_ToStudent_DoesNotMutateDto(t *testing.T) {
	m := NewStudentMapper()
	dto := &model.StudentDto{Name: "John", Lastname: "Doe", Email: "john@doe.com", SchoolID: intPtr(7)}
	before := *dto

	student, err := m.ToStudent(dto)
	require.NoError(t, err)
	student.Name = "Changed"
	student.School.ID = 99

	assert.Equal(t, before.Name, dto.Name)
	assert.Equal(t, 7, *dto.SchoolID)
}

func TestStudentMapper_RoundTrip(t *testing.T) {
	m := NewStudentMapper()
	cases := []model.StudentDto{
		{Name: "John", Lastname: "Doe", Email: "john@doe.com", SchoolID: intPtr(1)},
		{Name: "Zoë", Lastname: "O'Neil", Email: "zoe+tag@example.org", SchoolID: intPtr(42)},
		{Name: " spaced ", Lastname: "x", Email: "e", SchoolID: nil},
	}

	for _, dto := range cases {
		t.Run(dto.Email, func(t *testing.T) {
			student, err := m.ToStudent(&dto)
			require.NoError(t, err)

			resp := m.ToStudentResponse(student)
			require.NotNil(t, resp)
			assert.Equal(t, model.StudentResponseDto{
				Name:     dto.Name,
				Lastname: dto.Lastname,
				Email:    dto.Email,
			}, *resp)
		})
	}
}

func TestStudentMapper_ToStudentResponse_OmitsInternalFields(t *testing.T) {
	m := NewStudentMapper()
	student := &model.Student{
		ID:        15,
		Name:      "John",
		Lastname:  "Doe",
		Email:     "john@doe.com",
		Age:       30,
		CreatedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		School:    model.SchoolRef{ID: 3},
		Profile:   &model.StudentProfile{ID: 1, Bio: "bio", StudentID: 15},
	}

	resp := m.ToStudentResponse(student)

	assert.Equal(t, &model.StudentResponseDto{Name: "John", Lastname: "Doe", Email: "john@doe.com"}, resp)
}

func TestStudentMapper_ToStudentResponse_Nil(t *testing.T) {
	m := NewStudentMapper()

	assert.Nil(t, m.ToStudentResponse(nil))
}
