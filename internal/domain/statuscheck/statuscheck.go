package statuscheck

import "time"

// StatusCheck is one liveness ping recorded by a client against the ops
// store. Kept around for the uptime dashboard.
type StatusCheck struct {
	ID         string
	ClientName string
	Timestamp  time.Time
}
