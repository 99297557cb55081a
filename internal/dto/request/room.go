package request

type CreateRoomRequest struct {
	RoomNumber  string `json:"roomNumber" validate:"required"`
	TotalRows   int    `json:"totalRows" validate:"required,gt=0,max=100"`
	SeatsPerRow int    `json:"seatsPerRow" validate:"required,gt=0,max=100"`
	Description string `json:"description,omitempty"`
}

type UpdateRoomRequest struct {
	RoomNumber  string `json:"roomNumber" validate:"required"`
	TotalRows   int    `json:"totalRows" validate:"required,gt=0,max=100"`
	SeatsPerRow int    `json:"seatsPerRow" validate:"required,gt=0,max=100"`
	Description string `json:"description,omitempty"`
}

type DuplicateRoomRequest struct {
	NewRoomNumber string `json:"newRoomNumber" validate:"required"`
}

type BulkRoomsRequest struct {
	RoomNumberPrefix string `json:"roomNumberPrefix" validate:"required"`
	StartNumber      int    `json:"startNumber" validate:"required,gt=0"`
	Count            int    `json:"count" validate:"required,gt=0,max=50"`
	TotalRows        int    `json:"totalRows" validate:"required,gt=0,max=100"`
	SeatsPerRow      int    `json:"seatsPerRow" validate:"required,gt=0,max=100"`
	Description      string `json:"description,omitempty"`
}
