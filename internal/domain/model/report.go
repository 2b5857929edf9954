package model

import "time"

// SyncReport summarizes one sync run.
type SyncReport struct {
	RunID    string
	Listed   int
	New      int
	Written  int
	Filtered int
	Failed   int
	Paths    []string
	Duration time.Duration
}
