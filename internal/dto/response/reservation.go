package response

type Reservation struct {
	ID                 int64             `json:"id"`
	UserID             int64             `json:"userId"`
	Username           string            `json:"username"`
	ScreeningID        int64             `json:"screeningId"`
	MovieTitle         string            `json:"movieTitle"`
	RoomNumber         string            `json:"roomNumber"`
	ScreeningStartTime DateTime          `json:"screeningStartTime"`
	CreatedAt          DateTime          `json:"createdAt"`
	Status             ReservationStatus `json:"status"`
	TotalPrice         float64           `json:"totalPrice"`
	Seats              []ReservationSeat `json:"seats"`
}

type ReservationSeat struct {
	ID         int64      `json:"id"`
	SeatID     int64      `json:"seatId"`
	RowNumber  int        `json:"rowNumber"`
	SeatNumber int        `json:"seatNumber"`
	TicketType TicketType `json:"ticketType"`
	Price      float64    `json:"price"`
}

type PaymentResult struct {
	ReservationID int64         `json:"reservationId"`
	Success       bool          `json:"success"`
	Message       string        `json:"message"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	TransactionID string        `json:"transactionId"`
	PaymentDate   DateTime      `json:"paymentDate"`
	Amount        float64       `json:"amount"`
}
