package request

type CreateMovieRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Genre           string `json:"genre" validate:"required"`
	Director        string `json:"director" validate:"required"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gt=0"`
	ReleaseDate     string `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Year            int    `json:"year" validate:"required,gt=1887"`
}

type UpdateMovieRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Genre           string `json:"genre" validate:"required"`
	Director        string `json:"director" validate:"required"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gt=0"`
	ReleaseDate     string `json:"releaseDate" validate:"required,datetime=2006-01-02"`
	Year            int    `json:"year" validate:"required,gt=1887"`
}

type RateMovieRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

type CreateReviewRequest struct {
	Content string `json:"content" validate:"required,min=3,max=2000"`
}
