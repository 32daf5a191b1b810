// Package solver implements single-period merit-order unit commitment.
// Plants are ordered ascending by marginal cost, then a backtracking search
// assigns each plant a power level so the total matches the requested load
// exactly while every committed plant stays inside its effective range.
package solver
