package models

import "time"

type OrderStatus string

const (
	// Order statuses (café counter flow)
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting the barista
	OrderStatusPreparing OrderStatus = "preparing" // Being prepared
	OrderStatusReady     OrderStatus = "ready"     // Ready for pickup/courier
	OrderStatusDelivered OrderStatus = "delivered" // Handed to the customer
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before preparation
)

type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `gorm:"index" json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type Order struct {
	ID           uint         `gorm:"primaryKey" json:"-"`
	OrderID      string       `gorm:"uniqueIndex;not null" json:"orderId"`
	Items        []OrderItem  `gorm:"foreignKey:OrderRowID;constraint:OnDelete:CASCADE" json:"items"`
	Total        int          `gorm:"not null" json:"total"`
	CustomerInfo CustomerInfo `gorm:"embedded;embeddedPrefix:customer_" json:"customerInfo"`
	Status       OrderStatus  `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// OrderItem is a snapshot of one cart line at checkout time. Prices stay
// as submitted even if the menu changes later.
type OrderItem struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	OrderRowID uint   `gorm:"index" json:"-"`
	ItemID     int    `json:"id"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	Quantity   int    `json:"quantity"`
}
