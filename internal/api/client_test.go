package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cinema-client/internal/dto/request"
	"cinema-client/pkg/httpclient"
	"cinema-client/pkg/utils"
)

// newTestClient wires a full client, cookie jar and transports included,
// against a fake API server
func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	httpClient, err := httpclient.New(utils.APIConfig{
		BaseURL:        server.URL + "/api",
		TimeoutSeconds: 5,
	}, zap.NewNop())
	require.NoError(t, err)

	return NewClient(server.URL+"/api", httpClient, zap.NewNop()), server
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestUnauthorizedBecomesSentinel(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/reservations/my", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Full authentication is required"})
	})

	client, _ := newTestClient(t, router)
	_, err := client.Reservations.My(context.Background())

	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.EqualError(t, err, "Full authentication is required")
}

func TestServerMessagePassthrough(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/reservations", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"message": "Seat 12 is already reserved"})
	})

	client, _ := newTestClient(t, router)
	_, err := client.Reservations.Create(context.Background(), &request.CreateReservationRequest{
		ScreeningID: 1,
		Seats:       []request.SeatSelection{{SeatID: 12, TicketType: "NORMAL"}},
	})

	require.Error(t, err)
	assert.True(t, IsConflict(err))
	assert.EqualError(t, err, "Seat 12 is already reserved")
}

func TestMissingBodyFallbackMessage(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/movies/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client, _ := newTestClient(t, router)
	_, err := client.Movies.Get(context.Background(), 3)

	require.Error(t, err)
	assert.EqualError(t, err, "HTTP error! status: 500")
}

func TestNoContentAndEmptyBodyAreAccepted(t *testing.T) {
	router := chi.NewRouter()
	router.Delete("/api/reservations/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	router.Post("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	client, _ := newTestClient(t, router)

	assert.NoError(t, client.Reservations.Cancel(context.Background(), 5))
	assert.NoError(t, client.Auth.Logout(context.Background()))
}

func TestSessionCookiePersistsAcrossRequests(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "abc123", Path: "/"})
		writeJSON(w, http.StatusOK, map[string]any{"id": 1, "username": "alice", "role": "USER"})
	})
	router.Get("/api/reservations/my", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("JSESSIONID")
		if err != nil || cookie.Value != "abc123" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "no session"})
			return
		}
		writeJSON(w, http.StatusOK, []any{})
	})

	client, _ := newTestClient(t, router)

	user, err := client.Auth.Login(context.Background(), &request.LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = client.Reservations.My(context.Background())
	assert.NoError(t, err, "the jar must replay the session cookie")
}

func TestRequestIDHeaderIsAttached(t *testing.T) {
	var seen string
	router := chi.NewRouter()
	router.Get("/api/rooms", func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-ID")
		writeJSON(w, http.StatusOK, []any{})
	})

	client, _ := newTestClient(t, router)
	_, err := client.Rooms.List(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, seen)
}

func TestSeatsForScreeningDecodesSnapshot(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/reservations/screenings/{id}/seats", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", chi.URLParam(r, "id"))
		writeJSON(w, http.StatusOK, []map[string]any{
			{"seatId": 1, "rowNumber": 1, "seatNumber": 1, "seatType": "STANDARD", "isAvailable": true, "isSeatEnabled": true},
			{"seatId": 2, "rowNumber": 1, "seatNumber": 2, "seatType": "VIP", "isAvailable": false, "isSeatEnabled": true},
		})
	})

	client, _ := newTestClient(t, router)
	seats, err := client.Reservations.SeatsForScreening(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, seats, 2)
	assert.True(t, seats[0].Selectable())
	assert.False(t, seats[1].Selectable())
}

func TestQRCodeReturnsRawBytes(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	router := chi.NewRouter()
	router.Get("/api/tickets/{id}/qr-code", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	})

	client, _ := newTestClient(t, router)
	data, err := client.Tickets.QRCode(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, png, data)
}

func TestVerifyTicketToken(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/tickets/verify", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"valid": true, "reservationId": 9, "token": r.URL.Query().Get("token"),
		})
	})

	client, _ := newTestClient(t, router)
	result, err := client.Tickets.Verify(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.Equal(t, true, result["valid"])
	assert.Equal(t, "tok-123", result["token"])
}

func TestPageNormalization(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/screenings", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"content":       []map[string]any{{"id": 1, "movieTitle": "Heat"}},
			"totalPages":    3,
			"totalElements": 41,
			"currentPage":   1,
			"pageSize":      20,
			"hasNext":       true,
			"hasPrevious":   true,
		})
	})
	router.Get("/api/screenings/upcoming", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 2, "movieTitle": "Alien"},
			{"id": 3, "movieTitle": "Brazil"},
		})
	})

	client, _ := newTestClient(t, router)

	envelope, err := client.Screenings.List(context.Background(), request.DefaultPageQuery())
	require.NoError(t, err)
	require.Len(t, envelope.Content, 1)
	assert.Equal(t, 3, envelope.TotalPages)
	assert.Equal(t, 1, envelope.Number)
	assert.Equal(t, 20, envelope.Size)
	assert.True(t, envelope.HasNext())

	bare, err := client.Screenings.Upcoming(context.Background(), request.DefaultPageQuery())
	require.NoError(t, err)
	require.Len(t, bare.Content, 2)
	assert.Equal(t, 1, bare.TotalPages)
	assert.False(t, bare.HasNext())
	assert.Equal(t, "Alien", bare.Content[0].MovieTitle)
}

func TestAuditLogsDecodeAndDefaults(t *testing.T) {
	var query url.Values
	router := chi.NewRouter()
	router.Get("/api/admin/audit/logs", func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		writeJSON(w, http.StatusOK, map[string]any{
			"content": []map[string]any{{
				"revisionId":   17,
				"timestamp":    "2026-03-14T12:00:00",
				"username":     "admin",
				"entityType":   "Movie",
				"entityId":     3,
				"revisionType": "MOD",
				"entityName":   "Heat",
			}},
			"totalElements": 1,
			"totalPages":    1,
			"currentPage":   0,
			"pageSize":      50,
			"hasNext":       false,
			"hasPrevious":   false,
		})
	})

	client, _ := newTestClient(t, router)
	logs, err := client.Admin.AuditLogs(context.Background(), 0, 0)

	require.NoError(t, err)
	assert.Equal(t, "50", query.Get("size"), "size falls back to the server default")
	require.Len(t, logs.Logs, 1)
	assert.Equal(t, int64(17), logs.Logs[0].RevisionID)
	assert.Equal(t, "admin", logs.Logs[0].Username)
	assert.Equal(t, 1, logs.TotalPages)
	assert.Equal(t, 0, logs.CurrentPage)
}

func TestUserRatingNullable(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/movies/{id}/rating", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") == "1" {
			writeJSON(w, http.StatusOK, map[string]any{"rating": 4})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"rating": nil})
	})

	client, _ := newTestClient(t, router)

	rated, err := client.Movies.UserRating(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, rated)
	assert.Equal(t, 4, *rated)

	unrated, err := client.Movies.UserRating(context.Background(), 2)
	require.NoError(t, err)
	assert.Nil(t, unrated)
}

func TestErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"not found", http.StatusNotFound, IsNotFound},
		{"conflict", http.StatusConflict, IsConflict},
		{"validation", http.StatusBadRequest, IsValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newError(tt.status, "")
			assert.True(t, tt.check(err))
			assert.False(t, IsUnauthorized(err))
		})
	}
}
