package model

// Metric names one dashboard counter.
type Metric string

const (
	MetricTotalBookings     Metric = "totalBookings"
	MetricRoomsAvailable    Metric = "roomsAvailable"
	MetricPendingComplaints Metric = "pendingComplaints"
	MetricActiveStaff       Metric = "activeStaff"
)

var Metrics = []Metric{MetricTotalBookings, MetricRoomsAvailable, MetricPendingComplaints, MetricActiveStaff}
