package order

import (
	"errors"
	"fmt"
	"slices"
)

type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

var validTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:      {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:      {OrderStatusOutForDelivery},
	OrderStatusOutForDelivery: {OrderStatusDelivered},
	OrderStatusDelivered:      {},
	OrderStatusCancelled:      {},
}

// Statuses lists every known status in lifecycle order.
func Statuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusOutForDelivery,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

func (s OrderStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// NextAllowed returns the statuses an order in s may move to. Unknown
// statuses have none.
func NextAllowed(s OrderStatus) []OrderStatus {
	return slices.Clone(validTransitions[s])
}

func CanTransition(from, to OrderStatus) bool {
	return slices.Contains(validTransitions[from], to)
}

func IsTerminal(s OrderStatus) bool {
	next, ok := validTransitions[s]
	return ok && len(next) == 0
}

// ValidateTransition returns an error wrapping ErrInvalidTransition when the
// move is not permitted.
func ValidateTransition(from, to OrderStatus) error {
	if CanTransition(from, to) {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
