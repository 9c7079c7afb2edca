package mapper

import (
	"testing"
	"time"

	"github.com/stemsi/school-registry/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSchoolMapper_ToSchool(t *testing.T) {
	m := NewSchoolMapper()

	school := m.ToSchool(model.SchoolDto{Name: "Acme"})

	assert.Equal(t, "Acme", school.Name)
	assert.Zero(t, school.ID)
	assert.True(t, school.CreatedAt.IsZero())
}

func TestSchoolMapper_ToSchoolDto(t *testing.T) {
	m := NewSchoolMapper()

	dto := m.ToSchoolDto(model.School{ID: 4, Name: "Acme", CreatedAt: time.Now()})

	assert.Equal(t, model.SchoolDto{Name: "Acme"}, dto)
}
