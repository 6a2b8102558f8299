package service

import (
	"farmops/pkg/readiness"
	"farmops/pkg/restrictions"
	"farmops/pkg/usage"
	"farmops/pkg/variance"
)

// PlanningService loads season snapshots and runs the calculation engines
// over them. Every method is a fresh read; nothing is cached between calls.
type PlanningService interface {
	Usage(seasonID uint) ([]usage.Requirement, error)
	Readiness(seasonID uint) (readiness.Result, error)
	ApplicationVariance(seasonID uint) (variance.AppResult, error)
	PassVariance(seasonID uint) (variance.PassResult, error)
	CheckRestrictions(seasonID uint, cand restrictions.Candidate) ([]restrictions.Violation, error)
}
