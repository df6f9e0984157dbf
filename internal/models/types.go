package models

import (
	"time"
)

// Answer is the solution of one part of a puzzle
type Answer struct {
	Year     int           `json:"year"`
	Day      int           `json:"day"`
	Part     int           `json:"part"`
	Title    string        `json:"title"`
	Value    int           `json:"value"`
	Duration time.Duration `json:"duration_ns"`
}
