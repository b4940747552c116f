package domain

import "time"

// OrderKind distinguishes ride bookings from food orders
type OrderKind string

const (
	OrderRide OrderKind = "Ride"
	OrderFood OrderKind = "Food"
)

// OrderStatus is the delivery progress of an order. Status is fixed at
// creation; a later scheduler could advance it forward.
type OrderStatus string

const (
	StatusPreparing OrderStatus = "Preparing"
	StatusOnTheWay  OrderStatus = "On the way"
	StatusDelivered OrderStatus = "Delivered"
)

// Order is a record created when a booking or order flow completes.
// Only Status may ever change after creation.
type Order struct {
	ID       string
	OwnerID  int64
	Kind     OrderKind
	Status   OrderStatus
	ETALabel string

	// Ride fields
	Pickup      string
	Destination string
	Driver      string
	Vehicle     string

	// Food fields
	Restaurant string
	Item       string

	CreatedAt time.Time
}
