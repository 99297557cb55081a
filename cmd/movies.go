package cmd

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"time"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/view"
	"cinema-client/internal/wire"
	"cinema-client/pkg/utils"
)

func parseID(args []string, what string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, fmt.Errorf("%s ID is required", what)
	}
	id := utils.ParseInt64(args[0])
	if id <= 0 {
		return 0, nil, fmt.Errorf("invalid %s ID %q", what, args[0])
	}
	return id, args[1:], nil
}

func runMovies(ctx context.Context, app *wire.App, args []string) error {
	flags := flag.NewFlagSet("movies", flag.ContinueOnError)
	page := flags.Int("page", 0, "page number (zero-based)")
	size := flags.Int("size", 20, "page size")
	if err := flags.Parse(args); err != nil {
		return err
	}

	movies, err := app.API.Movies.List(ctx, request.PageQuery{Page: *page, Size: *size, Sort: "title,asc"})
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}

	fmt.Print(view.MovieTable(movies.Content))
	if movies.TotalPages > 1 {
		fmt.Printf("Page %d of %d\n", movies.Number+1, movies.TotalPages)
	}
	return nil
}

func runMovie(ctx context.Context, app *wire.App, args []string) error {
	id, _, err := parseID(args, "movie")
	if err != nil {
		return err
	}

	movie, err := app.API.Movies.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Print(view.MovieDetail(movie))
	return nil
}

func runPopular(ctx context.Context, app *wire.App, args []string) error {
	flags := flag.NewFlagSet("popular", flag.ContinueOnError)
	limit := flags.Int("limit", 10, "number of movies")
	if err := flags.Parse(args); err != nil {
		return err
	}

	movies, err := app.API.Movies.Popular(ctx, *limit)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Print(view.MovieTable(movies))
	return nil
}

func runLatest(ctx context.Context, app *wire.App, args []string) error {
	flags := flag.NewFlagSet("latest", flag.ContinueOnError)
	limit := flags.Int("limit", 10, "number of movies")
	if err := flags.Parse(args); err != nil {
		return err
	}

	movies, err := app.API.Movies.Latest(ctx, *limit)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Print(view.MovieTable(movies))
	return nil
}

func runReviews(ctx context.Context, app *wire.App, args []string) error {
	id, rest, err := parseID(args, "movie")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("reviews", flag.ContinueOnError)
	page := flags.Int("page", 0, "page number (zero-based)")
	if err := flags.Parse(rest); err != nil {
		return err
	}

	reviews, err := app.API.Movies.Reviews(ctx, id, request.PageQuery{Page: *page, Size: 20, Sort: "createdAt,desc"})
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Print(view.ReviewList(reviews.Content))
	return nil
}

func runReview(ctx context.Context, app *wire.App, args []string) error {
	id, rest, err := parseID(args, "movie")
	if err != nil {
		return err
	}

	content := ""
	if len(rest) > 0 {
		content = rest[0]
	} else {
		content = prompt("Review")
	}

	req := &request.CreateReviewRequest{Content: content}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	review, err := app.API.Movies.CreateReview(ctx, id, req)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Review #%d posted.\n", review.ID)
	return nil
}

func runRate(ctx context.Context, app *wire.App, args []string) error {
	id, rest, err := parseID(args, "movie")
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return fmt.Errorf("rating (1-5) is required")
	}
	stars, err := strconv.Atoi(rest[0])
	if err != nil {
		return fmt.Errorf("invalid rating %q", rest[0])
	}

	req := &request.RateMovieRequest{Rating: stars}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	rating, err := app.API.Movies.Rate(ctx, id, req)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Rated movie %d with %d stars.\n", rating.MovieID, rating.Rating)
	return nil
}

// runRepertoire lists a day's screenings grouped per movie
func runRepertoire(ctx context.Context, app *wire.App, args []string) error {
	flags := flag.NewFlagSet("repertoire", flag.ContinueOnError)
	day := flags.String("date", time.Now().Format("2006-01-02"), "day to list (2006-01-02)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if _, err := time.Parse("2006-01-02", *day); err != nil {
		return fmt.Errorf("invalid date %q", *day)
	}

	repertoire, err := app.API.Screenings.Repertoire(ctx, *day)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}

	fmt.Printf("Repertoire for %s\n", *day)
	fmt.Print(view.RepertoireView(repertoire))
	return nil
}

// ==================== ADMIN METHODS ====================

func movieRequestFlags(flags *flag.FlagSet) *request.CreateMovieRequest {
	req := &request.CreateMovieRequest{}
	flags.StringVar(&req.Title, "title", "", "movie title")
	flags.StringVar(&req.Description, "desc", "", "description")
	flags.StringVar(&req.Genre, "genre", "", "genre")
	flags.StringVar(&req.Director, "director", "", "director")
	flags.IntVar(&req.DurationMinutes, "duration", 0, "duration in minutes")
	flags.StringVar(&req.ReleaseDate, "release", "", "release date (2006-01-02)")
	flags.IntVar(&req.Year, "year", 0, "production year")
	return req
}

func runMovieAdd(ctx context.Context, app *wire.App, args []string) error {
	flags := flag.NewFlagSet("movie-add", flag.ContinueOnError)
	req := movieRequestFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie, err := app.API.Movies.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Movie #%d %q created.\n", movie.ID, movie.Title)
	return nil
}

func runMovieUpdate(ctx context.Context, app *wire.App, args []string) error {
	id, rest, err := parseID(args, "movie")
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("movie-update", flag.ContinueOnError)
	req := movieRequestFlags(flags)
	if err := flags.Parse(rest); err != nil {
		return err
	}

	update := request.UpdateMovieRequest(*req)
	if errs := utils.ValidateStruct(&update); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movie, err := app.API.Movies.Update(ctx, id, &update)
	if err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Movie #%d %q updated.\n", movie.ID, movie.Title)
	return nil
}

func runMovieDelete(ctx context.Context, app *wire.App, args []string) error {
	id, _, err := parseID(args, "movie")
	if err != nil {
		return err
	}
	if err := app.API.Movies.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s", describe(err))
	}
	fmt.Printf("Movie #%d deleted.\n", id)
	return nil
}
