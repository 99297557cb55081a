package booking

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
	"cinema-client/pkg/utils"
)

// Local rejections: surfaced before any network call is made
var (
	ErrEmptySelection  = errors.New("select at least one seat")
	ErrScreeningNotSet = errors.New("screening data not loaded")
)

// ReservationAPI is the slice of the API client the flow needs
type ReservationAPI interface {
	Create(ctx context.Context, req *request.CreateReservationRequest) (*response.Reservation, error)
}

// Flow turns a Selection into one reservation request. No automatic
// retries: every failure goes back to the caller with the selection intact
// so the user can retry manually.
type Flow struct {
	api ReservationAPI
	log *zap.Logger
}

func NewFlow(api ReservationAPI, log *zap.Logger) *Flow {
	return &Flow{
		api: api,
		log: log.With(zap.String("component", "reservation-flow")),
	}
}

// Submit serializes the selection and issues the creation request. An empty
// selection or missing screening is rejected locally. On success the
// returned reservation carries the server's authoritative total price and
// the ID the payment hand-off needs.
func (f *Flow) Submit(ctx context.Context, selection *Selection) (*response.Reservation, error) {
	if selection == nil || selection.Empty() {
		return nil, ErrEmptySelection
	}
	if selection.Screening() == nil {
		return nil, ErrScreeningNotSet
	}

	seats := make([]request.SeatSelection, 0, selection.Count())
	for _, line := range selection.Items() {
		seats = append(seats, request.SeatSelection{
			SeatID:     line.SeatID,
			TicketType: string(line.TicketType),
		})
	}

	req := &request.CreateReservationRequest{
		ScreeningID: selection.Screening().ID,
		Seats:       seats,
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		f.log.Warn("Reservation payload validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reservation, err := f.api.Create(ctx, req)
	if err != nil {
		f.log.Warn("Create reservation failed",
			zap.Error(err),
			zap.Int64("screening_id", req.ScreeningID),
			zap.Int("seat_count", len(seats)),
		)
		return nil, err
	}

	f.log.Info("Reservation created",
		zap.Int64("reservation_id", reservation.ID),
		zap.Int64("screening_id", req.ScreeningID),
		zap.Int("seat_count", len(seats)),
		zap.Float64("advisory_total", selection.Total()),
		zap.Float64("server_total", reservation.TotalPrice),
	)

	return reservation, nil
}
