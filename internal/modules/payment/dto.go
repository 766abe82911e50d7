package payment

type MakePaymentRequest struct {
	BookingID     string `json:"booking_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	Reference     string `json:"reference"`
}
