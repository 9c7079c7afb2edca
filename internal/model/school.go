package model

import "time"

// School represents a school that students are enrolled in.
type School struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// SchoolRef is a reference to a school by ID only. It expresses the
// student→school foreign key without loading the school itself.
type SchoolRef struct {
	ID int `json:"id"`
}

// SchoolDto is the payload for creating a school and the shape returned
// when listing schools.
type SchoolDto struct {
	Name string `json:"name"`
}
