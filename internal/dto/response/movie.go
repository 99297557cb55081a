package response

type Movie struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Genre           string   `json:"genre"`
	Director        string   `json:"director"`
	DurationMinutes int      `json:"durationMinutes"`
	ReleaseDate     Date     `json:"releaseDate"`
	Year            int      `json:"year"`
	PosterPath      string   `json:"posterPath"`
	AverageRating   *float64 `json:"averageRating"`
	TotalRatings    int64    `json:"totalRatings"`
	UserRating      *int     `json:"userRating"`
}

type MovieRating struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"userId"`
	Username  string   `json:"username"`
	MovieID   int64    `json:"movieId"`
	Rating    int      `json:"rating"`
	CreatedAt DateTime `json:"createdAt"`
	UpdatedAt DateTime `json:"updatedAt"`
}

type Review struct {
	ID          int64    `json:"id"`
	UserID      int64    `json:"userId"`
	Username    string   `json:"username"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	MovieID     int64    `json:"movieId"`
	Content     string   `json:"content"`
	CreatedAt   DateTime `json:"createdAt"`
	UpdatedAt   DateTime `json:"updatedAt"`
	IsOwnReview bool     `json:"isOwnReview"`
}
