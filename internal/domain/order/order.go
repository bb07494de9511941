package order

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo enforces the order life-cycle: pending → processing →
// shipped → delivered, with cancellation allowed up until shipment.
// Delivered and cancelled are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusCancelled
	case StatusProcessing:
		return next == StatusShipped || next == StatusCancelled
	case StatusShipped:
		return next == StatusDelivered
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentCOD  PaymentMethod = "COD"
	PaymentCard PaymentMethod = "CARD"
)

func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCOD, PaymentCard:
		return true
	default:
		return false
	}
}

type Order struct {
	ID              int64
	OrderNo         string
	UserID          int64
	CustomerName    string
	Phone           string
	ShippingAddress string
	Status          Status
	PaymentMethod   PaymentMethod
	Subtotal        float64
	Shipping        float64
	Tax             float64
	Discount        float64
	TotalAmount     float64
	Items           []Item
	CreatedAt       time.Time
}

type Item struct {
	ID        int64
	OrderID   int64
	ProductID int64
	SellerID  int64
	Name      string
	UnitPrice float64
	Quantity  int64
}

func (i Item) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// FormatOrderNo derives the human-facing order number from the numeric id.
func FormatOrderNo(id int64) string {
	return fmt.Sprintf("ORD-%d", 1000+id)
}
