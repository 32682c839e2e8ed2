package models

import (
	"gorm.io/gorm"
)

const (
	OrderStatusOrdered    = "Ordered"
	OrderStatusInProgress = "InProgress"
	OrderStatusCompleted  = "Completed"
	OrderStatusCancelled  = "Cancelled"
	OrderStatusReached    = "Reached"
)

// FoodItem is the hotel's food catalog. Prices here are the live menu; orders
// snapshot the price at order time so later menu edits never rewrite history.
type FoodItem struct {
	gorm.Model

	Name  string  `json:"name" gorm:"size:120;uniqueIndex"`
	Price float64 `json:"price"`
}

type FoodOrder struct {
	gorm.Model

	BookingID    uint   `gorm:"column:booking_id;index" json:"bookingId"`
	SpecialNotes string `gorm:"column:special_notes;type:text" json:"specialNotes"`
	Status       string `gorm:"column:status;size:32;index" json:"status"`

	Items   []FoodOrderItem `gorm:"foreignKey:FoodOrderID" json:"items"`
	Booking Booking         `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
}

// FoodOrderItem carries the quantity and the unit price captured when the
// order was placed; it is a value snapshot, not a live catalog reference.
type FoodOrderItem struct {
	gorm.Model

	FoodOrderID uint    `gorm:"column:food_order_id;index" json:"foodOrderId"`
	FoodItemID  uint    `gorm:"column:food_item_id;index" json:"foodItemId"`
	Quantity    int     `gorm:"column:quantity" json:"quantity"`
	UnitPrice   float64 `gorm:"column:unit_price" json:"unitPrice"`
}

// ActiveOrderStatuses and HistoryOrderStatuses partition every reachable order
// status: an order is always in exactly one of the two listings.
var (
	ActiveOrderStatuses  = []string{OrderStatusOrdered, OrderStatusInProgress}
	HistoryOrderStatuses = []string{OrderStatusCancelled, OrderStatusCompleted, OrderStatusReached}
)

func OrderActive(status string) bool {
	return status == OrderStatusOrdered || status == OrderStatusInProgress
}

// OrderCancelable mirrors OrderActive: kitchen work past InProgress is not
// taken back.
func OrderCancelable(status string) bool {
	return OrderActive(status)
}

// nextOrderStatus is the forward kitchen progression; Cancelled is reachable
// only through cancellation, never through advancement.
var nextOrderStatus = map[string]string{
	OrderStatusOrdered:    OrderStatusInProgress,
	OrderStatusInProgress: OrderStatusCompleted,
	OrderStatusCompleted:  OrderStatusReached,
}

// CanAdvanceOrder reports whether from → to is a legal single step of the
// kitchen progression.
func CanAdvanceOrder(from, to string) bool {
	return nextOrderStatus[from] == to
}
