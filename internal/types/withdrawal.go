package types

import "fmt"

type WithdrawalStatus string

const (
	WithdrawalPending WithdrawalStatus = "pending"
	WithdrawalReady   WithdrawalStatus = "ready"
	WithdrawalClaimed WithdrawalStatus = "claimed"
)

func (s WithdrawalStatus) ToString() string {
	return string(s)
}

func FromStringToWithdrawalStatus(s string) (WithdrawalStatus, error) {
	switch s {
	case "pending":
		return WithdrawalPending, nil
	case "ready":
		return WithdrawalReady, nil
	case "claimed":
		return WithdrawalClaimed, nil
	default:
		return "", fmt.Errorf("invalid withdrawal status: %s", s)
	}
}

// QualifiedStatusesToReady returns the statuses allowed to transition to "ready".
// Readiness is time-driven and monotonic, only pending entries qualify.
func QualifiedStatusesToReady() []WithdrawalStatus {
	return []WithdrawalStatus{WithdrawalPending}
}

// QualifiedStatusesToClaimed returns the statuses allowed to transition to "claimed".
func QualifiedStatusesToClaimed() []WithdrawalStatus {
	return []WithdrawalStatus{WithdrawalReady}
}
