package response

type Screening struct {
	ID                   int64    `json:"id"`
	MovieID              int64    `json:"movieId"`
	MovieTitle           string   `json:"movieTitle"`
	MovieDurationMinutes int      `json:"movieDurationMinutes"`
	RoomID               int64    `json:"roomId"`
	RoomNumber           string   `json:"roomNumber"`
	StartTime            DateTime `json:"startTime"`
	EndTime              DateTime `json:"endTime"`
	BasePrice            float64  `json:"basePrice"`
	VIPPrice             *float64 `json:"vipPrice"`
	ScheduleID           *int64   `json:"scheduleId"`
	AvailableSeats       int      `json:"availableSeats"`
	TotalSeats           int      `json:"totalSeats"`
}

type Schedule struct {
	ID                       int64    `json:"id"`
	MovieID                  int64    `json:"movieId"`
	MovieTitle               string   `json:"movieTitle"`
	RoomID                   int64    `json:"roomId"`
	RoomNumber               string   `json:"roomNumber"`
	DayOfWeek                string   `json:"dayOfWeek"`
	StartTime                string   `json:"startTime"`
	StartDate                Date     `json:"startDate"`
	EndDate                  Date     `json:"endDate"`
	BasePrice                float64  `json:"basePrice"`
	VIPPrice                 *float64 `json:"vipPrice"`
	GeneratedScreeningsCount int      `json:"generatedScreeningsCount"`
}

// Repertoire groups a movie with its screening times for one day
type Repertoire struct {
	MovieID              int64           `json:"movieId"`
	MovieTitle           string          `json:"movieTitle"`
	MoviePosterPath      string          `json:"moviePosterPath"`
	MovieGenre           string          `json:"movieGenre"`
	MovieDurationMinutes int             `json:"movieDurationMinutes"`
	Screenings           []ScreeningTime `json:"screenings"`
}

type ScreeningTime struct {
	ScreeningID    int64    `json:"screeningId"`
	StartTime      string   `json:"startTime"`
	RoomNumber     string   `json:"roomNumber"`
	BasePrice      float64  `json:"basePrice"`
	VIPPrice       *float64 `json:"vipPrice"`
	AvailableSeats int      `json:"availableSeats"`
	TotalSeats     int      `json:"totalSeats"`
}
