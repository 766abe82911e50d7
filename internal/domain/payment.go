package domain

import "time"

type Payment struct {
	ID            string    `json:"id" gorm:"column:id;primaryKey"`
	CustomerID    string    `json:"customer_id" gorm:"column:customer_id;index"`
	CustomerName  string    `json:"customer_name" gorm:"column:customer_name"`
	Amount        float64   `json:"amount" gorm:"column:amount"`
	PaymentMethod string    `json:"payment_method" gorm:"column:payment_method"`
	Reference     string    `json:"reference" gorm:"column:reference"`
	Description   string    `json:"description" gorm:"column:description"`
	PaymentDate   time.Time `json:"payment_date" gorm:"column:payment_date"`
	Status        string    `json:"status" gorm:"column:status"`
	BookingID     *string   `json:"booking_id,omitempty" gorm:"column:booking_id"`
}

func (Payment) TableName() string { return "payments" }
