package request

type CreateReservationRequest struct {
	ScreeningID int64           `json:"screeningId" validate:"required,gt=0"`
	Seats       []SeatSelection `json:"seats" validate:"required,min=1,dive"`
}

type SeatSelection struct {
	SeatID     int64  `json:"seatId" validate:"required,gt=0"`
	TicketType string `json:"ticketType" validate:"required,oneof=NORMAL REDUCED STUDENT"`
}

type ProcessPaymentRequest struct {
	ReservationID int64  `json:"reservationId" validate:"required,gt=0"`
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=CREDIT_CARD DEBIT_CARD BLIK PAYPAL CASH MOCK"`

	// Card payments only
	CardNumber string `json:"cardNumber,omitempty" validate:"omitempty,len=16,numeric"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVV        string `json:"cvv,omitempty" validate:"omitempty,len=3,numeric"`

	// BLIK only
	BlikCode string `json:"blikCode,omitempty" validate:"omitempty,len=6,numeric"`

	// PayPal only
	PaypalEmail string `json:"paypalEmail,omitempty" validate:"omitempty,email"`
}
