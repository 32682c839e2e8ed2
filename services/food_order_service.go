package services

import (
	"errors"
	"fmt"

	"hotel-ops-backend/apperrors"
	"hotel-ops-backend/models"
	"hotel-ops-backend/viewcache"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FoodOrderService owns food order creation and its status lifecycle, gated
// by the referenced booking's status.
type FoodOrderService struct {
	DB    *gorm.DB
	Views *viewcache.Coordinator
}

func NewFoodOrderService(db *gorm.DB, views *viewcache.Coordinator) *FoodOrderService {
	return &FoodOrderService{DB: db, Views: views}
}

// OrderItemInput is one requested line: a catalog item and a quantity.
type OrderItemInput struct {
	FoodItemID uint `json:"foodItemId"`
	Quantity   int  `json:"quantity"`
}

// GetFoodItems returns the live catalog in creation order.
func (s *FoodOrderService) GetFoodItems() ([]models.FoodItem, error) {
	var items []models.FoodItem
	if err := s.DB.Order("id ASC").Find(&items).Error; err != nil {
		return nil, apperrors.NewBackend("list food items", err)
	}
	return items, nil
}

// PlaceOrder creates an order against an active stay. Unit prices are
// snapshotted from the catalog inside the same transaction, so a later menu
// edit never changes what this order costs. The booking row is locked so the
// status gate cannot race a concurrent cancel/check-out.
func (s *FoodOrderService) PlaceOrder(customerID, bookingID uint, notes string, items []OrderItemInput) (*models.FoodOrder, error) {
	if len(items) == 0 {
		return nil, apperrors.NewValidation("items", "at least one item is required")
	}
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, apperrors.NewValidation("quantity",
				fmt.Sprintf("quantity for item %d must be positive", it.FoodItemID))
		}
		ids = append(ids, it.FoodItemID)
	}

	var order models.FoodOrder
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("booking", bookingID)
			}
			return apperrors.NewBackend("load booking", err)
		}
		if customerID != 0 && booking.CustomerID != customerID {
			// Not visible to this caller.
			return apperrors.NewNotFound("booking", bookingID)
		}
		if !models.StayActive(booking.Status) {
			return apperrors.NewStateConflict(
				fmt.Sprintf("cannot order food on a %s booking", booking.Status))
		}

		var catalog []models.FoodItem
		if err := tx.Where("id IN ?", ids).Find(&catalog).Error; err != nil {
			return apperrors.NewBackend("load food items", err)
		}
		priceByID := make(map[uint]float64, len(catalog))
		for _, f := range catalog {
			priceByID[f.ID] = f.Price
		}

		lines := make([]models.FoodOrderItem, 0, len(items))
		for _, it := range items {
			price, ok := priceByID[it.FoodItemID]
			if !ok {
				return apperrors.NewNotFound("food item", it.FoodItemID)
			}
			lines = append(lines, models.FoodOrderItem{
				FoodItemID: it.FoodItemID,
				Quantity:   it.Quantity,
				UnitPrice:  price,
			})
		}

		order = models.FoodOrder{
			BookingID:    bookingID,
			SpecialNotes: notes,
			Status:       models.OrderStatusOrdered,
			Items:        lines,
		}
		if err := tx.Create(&order).Error; err != nil {
			return apperrors.NewBackend("create food order", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	s.Views.Invalidate(viewcache.KindFoodOrder, 0)
	return &order, nil
}

// CancelOrder transitions Ordered/InProgress → Cancelled; anything further
// along is a conflict. customerID 0 is the staff path; a customer can only
// cancel orders on their own bookings, anyone else's reads as not found.
func (s *FoodOrderService) CancelOrder(customerID, orderID uint) error {
	return s.transition(customerID, orderID,
		func(from, to string) bool { return models.OrderCancelable(from) },
		models.OrderStatusCancelled,
		"order already completed, delivered or cancelled")
}

// AdvanceOrder is the staff-side kitchen progression:
// Ordered → InProgress → Completed → Reached, one step at a time.
func (s *FoodOrderService) AdvanceOrder(orderID uint, next string) error {
	switch next {
	case models.OrderStatusInProgress, models.OrderStatusCompleted, models.OrderStatusReached:
	default:
		return apperrors.NewValidation("status", fmt.Sprintf("unknown target status %q", next))
	}
	return s.transition(0, orderID, models.CanAdvanceOrder, next,
		fmt.Sprintf("order cannot move to %s from its current status", next))
}

func (s *FoodOrderService) transition(customerID, orderID uint, allowed func(from, to string) bool, next, conflictMsg string) error {
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var order models.FoodOrder
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NewNotFound("food order", orderID)
			}
			return apperrors.NewBackend("load food order", err)
		}
		if customerID != 0 {
			var booking models.Booking
			if err := tx.First(&booking, order.BookingID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.NewNotFound("food order", orderID)
				}
				return apperrors.NewBackend("load booking", err)
			}
			if booking.CustomerID != customerID {
				// Not visible to this caller.
				return apperrors.NewNotFound("food order", orderID)
			}
		}
		if !allowed(order.Status, next) {
			return apperrors.NewStateConflict(conflictMsg)
		}
		if err := tx.Model(&order).Update("status", next).Error; err != nil {
			return apperrors.NewBackend("update food order status", err)
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}

	s.Views.Invalidate(viewcache.KindFoodOrder, orderID)
	return nil
}

// GetActiveOrders lists the caller's Ordered/InProgress orders. Together with
// GetOrderHistory it partitions the caller's full order set.
func (s *FoodOrderService) GetActiveOrders(customerID uint) ([]models.FoodOrder, error) {
	return s.listByStatuses(customerID, models.ActiveOrderStatuses)
}

// GetOrderHistory lists the caller's Cancelled/Completed/Reached orders.
func (s *FoodOrderService) GetOrderHistory(customerID uint) ([]models.FoodOrder, error) {
	return s.listByStatuses(customerID, models.HistoryOrderStatuses)
}

func (s *FoodOrderService) listByStatuses(customerID uint, statuses []string) ([]models.FoodOrder, error) {
	var orders []models.FoodOrder
	q := s.DB.
		Preload("Items").
		Where("food_orders.status IN ?", statuses).
		Order("food_orders.created_at DESC")
	if customerID != 0 {
		q = q.
			Joins("JOIN bookings ON bookings.id = food_orders.booking_id").
			Where("bookings.customer_id = ?", customerID)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, apperrors.NewBackend("list food orders", err)
	}
	return orders, nil
}
