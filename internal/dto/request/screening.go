package request

type CreateScreeningRequest struct {
	MovieID   int64    `json:"movieId" validate:"required,gt=0"`
	RoomID    int64    `json:"roomId" validate:"required,gt=0"`
	StartTime string   `json:"startTime" validate:"required,datetime=2006-01-02T15:04:05"`
	BasePrice float64  `json:"basePrice" validate:"required,gt=0"`
	VIPPrice  *float64 `json:"vipPrice,omitempty" validate:"omitempty,gt=0"`
}

type UpdateScreeningRequest struct {
	MovieID   int64    `json:"movieId" validate:"required,gt=0"`
	RoomID    int64    `json:"roomId" validate:"required,gt=0"`
	StartTime string   `json:"startTime" validate:"required,datetime=2006-01-02T15:04:05"`
	BasePrice float64  `json:"basePrice" validate:"required,gt=0"`
	VIPPrice  *float64 `json:"vipPrice,omitempty" validate:"omitempty,gt=0"`
}

type CreateScheduleRequest struct {
	MovieID   int64    `json:"movieId" validate:"required,gt=0"`
	RoomID    int64    `json:"roomId" validate:"required,gt=0"`
	DayOfWeek string   `json:"dayOfWeek" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime string   `json:"startTime" validate:"required,datetime=15:04"`
	StartDate string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	BasePrice float64  `json:"basePrice" validate:"required,gt=0"`
	VIPPrice  *float64 `json:"vipPrice,omitempty" validate:"omitempty,gt=0"`
}

type UpdateScheduleRequest struct {
	MovieID   int64    `json:"movieId" validate:"required,gt=0"`
	RoomID    int64    `json:"roomId" validate:"required,gt=0"`
	DayOfWeek string   `json:"dayOfWeek" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime string   `json:"startTime" validate:"required,datetime=15:04"`
	StartDate string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string   `json:"endDate" validate:"required,datetime=2006-01-02"`
	BasePrice float64  `json:"basePrice" validate:"required,gt=0"`
	VIPPrice  *float64 `json:"vipPrice,omitempty" validate:"omitempty,gt=0"`
}
