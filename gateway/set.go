package gateway

import (
	"time"

	"github.com/aurumchit/agent_end/models"
)

// Set holds one client per product line. The two lines run parallel
// backends with identical APIs but separate hosts.
type Set struct {
	chit *Client
	gold *Client
}

// NewSet builds clients for both product lines.
func NewSet(chitBaseURL, goldBaseURL string, timeout time.Duration) *Set {
	return &Set{
		chit: New(Config{BaseURL: chitBaseURL, Line: models.ProductLineChit, Timeout: timeout}),
		gold: New(Config{BaseURL: goldBaseURL, Line: models.ProductLineGold, Timeout: timeout}),
	}
}

// ForLine returns the client for the requested product line.
func (s *Set) ForLine(line models.ProductLine) *Client {
	if line == models.ProductLineGold {
		return s.gold
	}
	return s.chit
}
