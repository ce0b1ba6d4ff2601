package logging

import "github.com/google/uuid"

// GenerateRequestID generates a unique request ID for tagging a logger
// via WithRequestID.
func GenerateRequestID() string {
	return uuid.New().String()
}
