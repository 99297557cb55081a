package response

type Room struct {
	ID          int64  `json:"id"`
	RoomNumber  string `json:"roomNumber"`
	TotalRows   int    `json:"totalRows"`
	SeatsPerRow int    `json:"seatsPerRow"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	Seats       []Seat `json:"seats,omitempty"`
}

// Seat is a physical position in a room
type Seat struct {
	ID          int64    `json:"id"`
	RoomID      int64    `json:"roomId"`
	RowNumber   int      `json:"rowNumber"`
	SeatNumber  int      `json:"seatNumber"`
	SeatType    SeatType `json:"seatType"`
	IsAvailable bool     `json:"isAvailable"`
}

// SeatAvailability is a seat's state for one specific screening
type SeatAvailability struct {
	SeatID        int64    `json:"seatId"`
	RowNumber     int      `json:"rowNumber"`
	SeatNumber    int      `json:"seatNumber"`
	SeatType      SeatType `json:"seatType"`
	IsAvailable   bool     `json:"isAvailable"`
	IsSeatEnabled bool     `json:"isSeatEnabled"`
}

// Selectable reports whether the seat may enter a selection at all
func (s SeatAvailability) Selectable() bool {
	return s.IsAvailable && s.IsSeatEnabled
}
