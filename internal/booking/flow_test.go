package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cinema-client/internal/dto/request"
	"cinema-client/internal/dto/response"
)

type stubReservationAPI struct {
	calls       int
	lastRequest *request.CreateReservationRequest
	reservation *response.Reservation
	err         error
}

func (s *stubReservationAPI) Create(_ context.Context, req *request.CreateReservationRequest) (*response.Reservation, error) {
	s.calls++
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.reservation, nil
}

func TestSubmitRejectsEmptySelectionLocally(t *testing.T) {
	stub := &stubReservationAPI{}
	flow := NewFlow(stub, zap.NewNop())

	_, err := flow.Submit(context.Background(), NewSelection(testScreening(20, nil), testGrid()))
	assert.ErrorIs(t, err, ErrEmptySelection)

	_, err = flow.Submit(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptySelection)

	assert.Zero(t, stub.calls, "no network call for a local rejection")
}

func TestSubmitRejectsMissingScreening(t *testing.T) {
	stub := &stubReservationAPI{}
	flow := NewFlow(stub, zap.NewNop())

	selection := NewSelection(nil, testGrid())
	selection.Toggle(1)

	_, err := flow.Submit(context.Background(), selection)
	assert.ErrorIs(t, err, ErrScreeningNotSet)
	assert.Zero(t, stub.calls)
}

func TestSubmitSendsSelectionInOrder(t *testing.T) {
	stub := &stubReservationAPI{
		reservation: &response.Reservation{ID: 99, TotalPrice: 34},
	}
	flow := NewFlow(stub, zap.NewNop())

	selection := NewSelection(testScreening(20, nil), testGrid())
	selection.Toggle(2)
	selection.Toggle(1)
	selection.SetTicketType(1, response.TicketTypeStudent)

	reservation, err := flow.Submit(context.Background(), selection)
	require.NoError(t, err)
	assert.Equal(t, int64(99), reservation.ID)

	require.NotNil(t, stub.lastRequest)
	assert.Equal(t, int64(7), stub.lastRequest.ScreeningID)
	require.Len(t, stub.lastRequest.Seats, 2)
	assert.Equal(t, request.SeatSelection{SeatID: 2, TicketType: "NORMAL"}, stub.lastRequest.Seats[0])
	assert.Equal(t, request.SeatSelection{SeatID: 1, TicketType: "STUDENT"}, stub.lastRequest.Seats[1])
}

func TestSubmitLeavesSelectionIntactOnFailure(t *testing.T) {
	stub := &stubReservationAPI{err: errors.New("seat no longer available")}
	flow := NewFlow(stub, zap.NewNop())

	selection := NewSelection(testScreening(20, nil), testGrid())
	selection.Toggle(1)
	selection.Toggle(2)

	_, err := flow.Submit(context.Background(), selection)
	require.Error(t, err)

	assert.Equal(t, 2, selection.Count(), "failed submit must not clear the selection")
	assert.Equal(t, 1, stub.calls, "no automatic retry")
}
