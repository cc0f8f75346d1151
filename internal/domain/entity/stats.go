package entity

// BookingTotal is one row of the bookings-per-test aggregation.
type BookingTotal struct {
	TestID        string `bson:"_id" json:"_id"`
	TotalBookings int    `bson:"totalBookings" json:"totalBookings"`
	TestTitle     string `bson:"testTitle" json:"testTitle"`
}

// TopTest is one row of the top-tests aggregation, joined against the
// test catalog and flattened.
type TopTest struct {
	TestID        string  `bson:"_id" json:"_id"`
	TotalBookings int     `bson:"totalBookings" json:"totalBookings"`
	Title         string  `bson:"title" json:"title"`
	Date          string  `bson:"date" json:"date"`
	Cost          float64 `bson:"cost" json:"cost"`
	Image         string  `bson:"image" json:"image"`
}
