package response

type AuditLog struct {
	RevisionID   int64    `json:"revisionId"`
	Timestamp    DateTime `json:"timestamp"`
	UserID       *int64   `json:"userId"`
	Username     string   `json:"username"`
	IPAddress    string   `json:"ipAddress"`
	EntityType   string   `json:"entityType"`
	EntityID     int64    `json:"entityId"`
	RevisionType string   `json:"revisionType"` // ADD, MOD, DEL
	EntityName   string   `json:"entityName"`
	Changes      string   `json:"changes"`
}

// AuditLogPage is the envelope of GET /admin/audit/logs; entries land under
// the content key like every other paged endpoint
type AuditLogPage struct {
	Logs          []AuditLog `json:"content"`
	TotalPages    int        `json:"totalPages"`
	TotalElements int64      `json:"totalElements"`
	CurrentPage   int        `json:"currentPage"`
}

// Statistics is the admin dashboard payload. Breakdown maps are keyed by
// date (2006-01-02), month (2006-01) or payment method name.
type Statistics struct {
	TotalRevenue               float64            `json:"totalRevenue"`
	TotalReservations          int64              `json:"totalReservations"`
	PaidReservations           int64              `json:"paidReservations"`
	TotalReservedSeats         int64              `json:"totalReservedSeats"`
	RevenueLast30Days          float64            `json:"revenueLast30Days"`
	ReservationsLast30Days     int64              `json:"reservationsLast30Days"`
	DailyRevenueLast7Days      map[string]float64 `json:"dailyRevenueLast7Days"`
	DailyReservationsLast7Days map[string]int64   `json:"dailyReservationsLast7Days"`
	RevenueByPaymentMethod     map[string]float64 `json:"revenueByPaymentMethod"`
	ReservationsByPaymentMethod map[string]int64  `json:"reservationsByPaymentMethod"`
	MonthlyRevenue             map[string]float64 `json:"monthlyRevenue"`
	MonthlyReservations        map[string]int64   `json:"monthlyReservations"`
}
