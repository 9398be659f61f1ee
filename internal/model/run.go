package model

import (
	"time"

	"gorm.io/gorm"
)

type RunCommand string

const (
	RunSync  RunCommand = "SYNC"
	RunCheck RunCommand = "CHECK"
)

// Run is one recorded engine pass, persisted for the history command.
type Run struct {
	gorm.Model
	Config      string     `gorm:"not null"`
	Command     RunCommand `gorm:"not null"`
	Full        bool
	Found       int
	Added       int
	Changed     int
	Existed     int
	Deleted     int
	Interrupted bool
	Duration    time.Duration
	RanAt       time.Time `gorm:"not null"`
}
