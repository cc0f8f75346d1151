package dto

// DeliveryStatusCount is one slice of the delivery-ratio breakdown.
type DeliveryStatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
