package models

import (
	"time"
)

// ProjectStatus is the lifecycle state of a project
type ProjectStatus string

const (
	// StatusOpen is the initial state; the project accepts bids
	StatusOpen ProjectStatus = "open"

	// StatusInProgress means a bid was accepted and a freelancer is assigned
	StatusInProgress ProjectStatus = "in-progress"

	// StatusCompleted is terminal
	StatusCompleted ProjectStatus = "completed"

	// StatusCancelled is terminal
	StatusCancelled ProjectStatus = "cancelled"
)

// transitions is the full status state machine. Only open -> in-progress
// is driven by a store operation; the remaining edges exist for external
// collaborators such as progress reporting.
var transitions = map[ProjectStatus][]ProjectStatus{
	StatusOpen:       {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CanTransition reports whether the state machine permits moving to next
func (s ProjectStatus) CanTransition(next ProjectStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves this status
func (s ProjectStatus) Terminal() bool {
	return len(transitions[s]) == 0
}

// Project represents a posted job. FreelancerID is set only once the
// project leaves the open state.
type Project struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Skills       []string      `json:"skills"`
	Budget       float64       `json:"budget"`
	Deadline     time.Time     `json:"deadline"`
	Status       ProjectStatus `json:"status"`
	ClientID     string        `json:"client_id"`
	FreelancerID string        `json:"freelancer_id,omitempty"`
	Bids         []Bid         `json:"bids"`
	Progress     int           `json:"progress,omitempty"`
	LastUpdate   string        `json:"last_update,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Clone returns a deep copy of the project
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	out := *p
	out.Skills = append([]string(nil), p.Skills...)
	out.Bids = append([]Bid(nil), p.Bids...)
	return &out
}
