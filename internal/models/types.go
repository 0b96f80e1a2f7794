package models

// Status represents the resolved lifecycle state of a domain
type Status string

const (
	StatusActive    Status = "active"
	StatusParked    Status = "parked"
	StatusForSale   Status = "for_sale"
	StatusRedirect  Status = "redirect"
	StatusExpired   Status = "expired"
	StatusAvailable Status = "available"
	StatusError     Status = "error"
)

// AllStatuses lists every status in summary display order
var AllStatuses = []Status{
	StatusActive,
	StatusParked,
	StatusForSale,
	StatusRedirect,
	StatusExpired,
	StatusAvailable,
	StatusError,
}

// RunStatus represents the current state of a check run
type RunStatus string

const (
	RunPending  RunStatus = "pending"
	RunRunning  RunStatus = "running"
	RunComplete RunStatus = "complete"
	RunFailed   RunStatus = "failed"
)
