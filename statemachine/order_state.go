package statemachine

import "errors"

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "PLACED"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCancelled      OrderStatus = "CANCELLED"
)

var ErrUnknownStatus = errors.New("unknown order status")

// Parse validates a raw status string against the enumerated set
func Parse(s string) (OrderStatus, error) {
	switch OrderStatus(s) {
	case StatusPlaced, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return OrderStatus(s), nil
	}
	return "", ErrUnknownStatus
}

// Transition defines a valid forward state change
type Transition struct {
	From OrderStatus
	To   OrderStatus
}

// validTransitions is the authoritative state machine definition.
// Transitions only move forward; DELIVERED and CANCELLED are terminal.
var validTransitions = []Transition{
	{From: StatusPlaced, To: StatusPreparing},
	{From: StatusPlaced, To: StatusCancelled},
	{From: StatusPreparing, To: StatusOutForDelivery},
	{From: StatusPreparing, To: StatusCancelled},
	{From: StatusOutForDelivery, To: StatusDelivered},
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status OrderStatus) []OrderStatus {
	var nexts []OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves the given state
func IsTerminal(status OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// CanTransition checks whether an order may move from one state to another
func CanTransition(from, to OrderStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
