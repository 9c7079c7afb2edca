package config

import "fmt"

type ChannelKeyStruct struct{}

func NewChannelKeyStruct() *ChannelKeyStruct {
	return &ChannelKeyStruct{}
}

// SchoolEvents returns the Redis PubSub channel for school lifecycle events
func (r *ChannelKeyStruct) SchoolEvents() string {
	return "school:events"
}

// StudentEvents returns the Redis PubSub channel for student lifecycle events
func (r *ChannelKeyStruct) StudentEvents() string {
	return "student:events"
}

// SchoolStudentEvents returns the Redis PubSub channel for events about the students of one school
func (r *ChannelKeyStruct) SchoolStudentEvents(schoolID int) string {
	return fmt.Sprintf("school:%d:student_events", schoolID)
}

var ChannelKey = NewChannelKeyStruct()
