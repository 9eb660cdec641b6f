package responses

import "time"

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type Welcome struct {
	Message string `json:"message"`
}
