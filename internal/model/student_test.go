package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStudent_PrePersist_SetsOnce(t *testing.T) {
	first := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	later := first.AddDate(0, 1, 0)

	s := &Student{Name: "John"}
	s.PrePersist(first)
	s.PrePersist(later)

	assert.Equal(t, first, s.CreatedAt)
}
