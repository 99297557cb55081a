package view

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"cinema-client/internal/dto/response"
)

func table(write func(w *tabwriter.Writer)) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	write(w)
	w.Flush()
	return b.String()
}

func MovieTable(movies []response.Movie) string {
	if len(movies) == 0 {
		return "No movies found.\n"
	}
	return table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tTITLE\tGENRE\tDURATION\tYEAR\tRATING")
		for _, m := range movies {
			rating := "-"
			if m.AverageRating != nil {
				rating = fmt.Sprintf("%.1f (%d)", *m.AverageRating, m.TotalRatings)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d min\t%d\t%s\n",
				m.ID, m.Title, m.Genre, m.DurationMinutes, m.Year, rating)
		}
	})
}

func MovieDetail(m *response.Movie) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d)\n", m.Title, m.Year)
	fmt.Fprintf(&b, "Genre: %s  Director: %s  Duration: %d min\n", m.Genre, m.Director, m.DurationMinutes)
	fmt.Fprintf(&b, "Release date: %s\n", m.ReleaseDate.Display())
	if m.AverageRating != nil {
		fmt.Fprintf(&b, "Rating: %.1f/5 from %d ratings\n", *m.AverageRating, m.TotalRatings)
	}
	if m.UserRating != nil {
		fmt.Fprintf(&b, "Your rating: %d/5\n", *m.UserRating)
	}
	fmt.Fprintf(&b, "\n%s\n", m.Description)
	return b.String()
}

func ScreeningTable(screenings []response.Screening) string {
	if len(screenings) == 0 {
		return "No screenings found.\n"
	}
	return table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tMOVIE\tROOM\tSTART\tBASE\tVIP\tSEATS")
		for _, s := range screenings {
			vip := "-"
			if s.VIPPrice != nil {
				vip = fmt.Sprintf("%.2f", *s.VIPPrice)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%s\t%d/%d\n",
				s.ID, s.MovieTitle, s.RoomNumber, s.StartTime.Display(),
				s.BasePrice, vip, s.AvailableSeats, s.TotalSeats)
		}
	})
}

// RepertoireView groups a day's screening times under each movie
func RepertoireView(repertoire []response.Repertoire) string {
	if len(repertoire) == 0 {
		return "No screenings on this day.\n"
	}
	var b strings.Builder
	for _, entry := range repertoire {
		fmt.Fprintf(&b, "%s (%s, %d min)\n", entry.MovieTitle, entry.MovieGenre, entry.MovieDurationMinutes)
		for _, s := range entry.Screenings {
			vip := ""
			if s.VIPPrice != nil {
				vip = fmt.Sprintf(" / VIP %.2f", *s.VIPPrice)
			}
			fmt.Fprintf(&b, "  #%d  %s  room %s  %.2f%s  %d/%d seats\n",
				s.ScreeningID, s.StartTime, s.RoomNumber, s.BasePrice, vip, s.AvailableSeats, s.TotalSeats)
		}
	}
	return b.String()
}

func RoomTable(rooms []response.Room) string {
	if len(rooms) == 0 {
		return "No rooms found.\n"
	}
	return table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tROOM\tROWS\tSEATS/ROW\tCAPACITY\tDESCRIPTION")
		for _, r := range rooms {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%s\n",
				r.ID, r.RoomNumber, r.TotalRows, r.SeatsPerRow, r.Capacity, r.Description)
		}
	})
}

func ScheduleTable(schedules []response.Schedule) string {
	if len(schedules) == 0 {
		return "No schedules found.\n"
	}
	return table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tMOVIE\tROOM\tDAY\tTIME\tFROM\tTO\tGENERATED")
		for _, s := range schedules {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
				s.ID, s.MovieTitle, s.RoomNumber, s.DayOfWeek, s.StartTime,
				s.StartDate.Display(), s.EndDate.Display(), s.GeneratedScreeningsCount)
		}
	})
}

func ReservationList(reservations []response.Reservation) string {
	if len(reservations) == 0 {
		return "No reservations found.\n"
	}
	var b strings.Builder
	for _, r := range reservations {
		b.WriteString(ReservationDetail(&r))
		b.WriteString("\n")
	}
	return b.String()
}

func ReservationDetail(r *response.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reservation #%d  %s\n", r.ID, r.Status)
	fmt.Fprintf(&b, "  %s, room %s, %s\n", r.MovieTitle, r.RoomNumber, r.ScreeningStartTime.Display())
	for _, seat := range r.Seats {
		fmt.Fprintf(&b, "  Row %d, Seat %d  %-8s %8.2f\n",
			seat.RowNumber, seat.SeatNumber, strings.ToLower(string(seat.TicketType)), seat.Price)
	}
	fmt.Fprintf(&b, "  Total: %.2f\n", r.TotalPrice)
	return b.String()
}

func PaymentSummary(p *response.PaymentResult) string {
	status := "FAILED"
	if p.Success {
		status = "PAID"
	}
	return fmt.Sprintf("Payment %s: reservation #%d, %.2f via %s (transaction %s)\n%s\n",
		status, p.ReservationID, p.Amount, p.PaymentMethod, p.TransactionID, p.Message)
}

func ReviewList(reviews []response.Review) string {
	if len(reviews) == 0 {
		return "No reviews yet.\n"
	}
	var b strings.Builder
	for _, r := range reviews {
		own := ""
		if r.IsOwnReview {
			own = " (you)"
		}
		fmt.Fprintf(&b, "%s %s%s, %s:\n  %s\n", r.FirstName, r.LastName, own, r.CreatedAt.Display(), r.Content)
	}
	return b.String()
}

func UserTable(users []response.User) string {
	if len(users) == 0 {
		return "No users found.\n"
	}
	return table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "ID\tUSERNAME\tNAME\tROLE")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s %s\t%s\n", u.ID, u.Username, u.FirstName, u.LastName, u.Role)
		}
	})
}

func AuditLogTable(page *response.AuditLogPage) string {
	if len(page.Logs) == 0 {
		return "No audit entries.\n"
	}
	out := table(func(w *tabwriter.Writer) {
		fmt.Fprintln(w, "REV\tWHEN\tUSER\tACTION\tENTITY\tNAME")
		for _, l := range page.Logs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s #%d\t%s\n",
				l.RevisionID, l.Timestamp.Display(), l.Username, l.RevisionType,
				l.EntityType, l.EntityID, l.EntityName)
		}
	})
	return out + fmt.Sprintf("Page %d of %d (%d entries)\n",
		page.CurrentPage+1, page.TotalPages, page.TotalElements)
}

func StatisticsReport(s *response.Statistics) string {
	var b strings.Builder
	b.WriteString("Statistics\n")
	fmt.Fprintf(&b, "  Total revenue:        %12.2f\n", s.TotalRevenue)
	fmt.Fprintf(&b, "  Total reservations:   %12d (paid: %d)\n", s.TotalReservations, s.PaidReservations)
	fmt.Fprintf(&b, "  Reserved seats:       %12d\n", s.TotalReservedSeats)
	fmt.Fprintf(&b, "  Revenue last 30 days: %12.2f (%d reservations)\n", s.RevenueLast30Days, s.ReservationsLast30Days)

	if len(s.DailyRevenueLast7Days) > 0 {
		b.WriteString("  Daily revenue, last 7 days:\n")
		for _, day := range sortedKeys(s.DailyRevenueLast7Days) {
			fmt.Fprintf(&b, "    %s  %10.2f  (%d reservations)\n",
				day, s.DailyRevenueLast7Days[day], s.DailyReservationsLast7Days[day])
		}
	}
	if len(s.RevenueByPaymentMethod) > 0 {
		b.WriteString("  Revenue by payment method:\n")
		for _, method := range sortedKeys(s.RevenueByPaymentMethod) {
			fmt.Fprintf(&b, "    %-12s %10.2f  (%d reservations)\n",
				method, s.RevenueByPaymentMethod[method], s.ReservationsByPaymentMethod[method])
		}
	}
	if len(s.MonthlyRevenue) > 0 {
		b.WriteString("  Monthly revenue:\n")
		for _, month := range sortedKeys(s.MonthlyRevenue) {
			fmt.Fprintf(&b, "    %s  %10.2f  (%d reservations)\n",
				month, s.MonthlyRevenue[month], s.MonthlyReservations[month])
		}
	}
	return b.String()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
