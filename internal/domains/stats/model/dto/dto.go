package dto

import "hotel/internal/domains/stats/model"

type DashboardResponse struct {
	TotalBookings     int64 `json:"totalBookings"`
	RoomsAvailable    int64 `json:"roomsAvailable"`
	PendingComplaints int64 `json:"pendingComplaints"`
	ActiveStaff       int64 `json:"activeStaff"`
}

func (d *DashboardResponse) FromCounts(counts map[model.Metric]int64) {
	d.TotalBookings = counts[model.MetricTotalBookings]
	d.RoomsAvailable = counts[model.MetricRoomsAvailable]
	d.PendingComplaints = counts[model.MetricPendingComplaints]
	d.ActiveStaff = counts[model.MetricActiveStaff]
}
