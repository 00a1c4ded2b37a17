package models

import "errors"

// Feasibility status of a search candidate
const (
	FeasibilityPending        = 0
	FeasibilityDatesAvailable = 1
	FeasibilityFeasible       = 2
	FeasibilityRejected       = 3
)

// Candidate is one accommodation going through the feasibility check
type Candidate struct {
	Index         int
	Accommodation Accommodation
	Status        int
	Reason        string
}

// FeasibilityState defines the transitions a candidate may take
type FeasibilityState interface {
	DatesAvailable(c *Candidate) error
	Accept(c *Candidate) error
	Reject(c *Candidate, reason string) error
}

// PendingState: nothing checked yet
type PendingState struct{}

func (s *PendingState) DatesAvailable(c *Candidate) error {
	c.Status = FeasibilityDatesAvailable
	return nil
}

// Accept from pending is allowed when no date filter applies
func (s *PendingState) Accept(c *Candidate) error {
	c.Status = FeasibilityFeasible
	return nil
}

func (s *PendingState) Reject(c *Candidate, reason string) error {
	c.Status = FeasibilityRejected
	c.Reason = reason
	return nil
}

// DatesAvailableState: the dates passed, prices may still be pending
type DatesAvailableState struct{}

func (s *DatesAvailableState) DatesAvailable(c *Candidate) error {
	return errors.New("dates already checked")
}

func (s *DatesAvailableState) Accept(c *Candidate) error {
	c.Status = FeasibilityFeasible
	return nil
}

func (s *DatesAvailableState) Reject(c *Candidate, reason string) error {
	c.Status = FeasibilityRejected
	c.Reason = reason
	return nil
}

type FeasibleState struct{}

func (s *FeasibleState) DatesAvailable(c *Candidate) error {
	return errors.New("candidate already feasible")
}

func (s *FeasibleState) Accept(c *Candidate) error {
	return errors.New("candidate already feasible")
}

func (s *FeasibleState) Reject(c *Candidate, reason string) error {
	return errors.New("cannot reject feasible candidate")
}

type RejectedState struct{}

func (s *RejectedState) DatesAvailable(c *Candidate) error {
	return errors.New("cannot check dates of rejected candidate")
}

func (s *RejectedState) Accept(c *Candidate) error {
	return errors.New("cannot accept rejected candidate")
}

func (s *RejectedState) Reject(c *Candidate, reason string) error {
	return errors.New("candidate already rejected")
}

// GetFeasibilityState returns the state for a candidate status
func GetFeasibilityState(status int) FeasibilityState {
	switch status {
	case FeasibilityPending:
		return &PendingState{}
	case FeasibilityDatesAvailable:
		return &DatesAvailableState{}
	case FeasibilityFeasible:
		return &FeasibleState{}
	case FeasibilityRejected:
		return &RejectedState{}
	default:
		return &PendingState{}
	}
}
