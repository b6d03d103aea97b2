package domain

import "github.com/nwongx/hatchways-assessment/internal/domain/student"

// RosterResponse is the wire shape returned by the roster endpoint.
type RosterResponse struct {
	Students []student.Raw `json:"students"`
}
