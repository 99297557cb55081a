package response

// SeatType is the pricing class of a physical seat
type SeatType string

const (
	SeatTypeStandard SeatType = "STANDARD"
	SeatTypeVIP      SeatType = "VIP"
)

// TicketType is the discount category applied per reserved seat
type TicketType string

const (
	TicketTypeNormal  TicketType = "NORMAL"
	TicketTypeReduced TicketType = "REDUCED"
	TicketTypeStudent TicketType = "STUDENT"
)

// Valid reports whether t is one of the known ticket types
func (t TicketType) Valid() bool {
	switch t {
	case TicketTypeNormal, TicketTypeReduced, TicketTypeStudent:
		return true
	}
	return false
}

// ReservationStatus of a reservation record
type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// PaymentMethod accepted by the payment endpoint
type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentMethodBlik       PaymentMethod = "BLIK"
	PaymentMethodPayPal     PaymentMethod = "PAYPAL"
	PaymentMethodCash       PaymentMethod = "CASH"
	PaymentMethodMock       PaymentMethod = "MOCK"
)

// UserRole as returned by the auth endpoints
type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)
