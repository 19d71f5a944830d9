package models

// ProductLine distinguishes the two parallel product backends.
type ProductLine string

const (
	ProductLineChit ProductLine = "chit" // traditional chit fund
	ProductLineGold ProductLine = "gold" // gold-savings scheme
)

// ProductLineFrom maps a request value to a known product line,
// defaulting to chit.
func ProductLineFrom(value string) ProductLine {
	if ProductLine(value) == ProductLineGold {
		return ProductLineGold
	}
	return ProductLineChit
}

// Session is the backend-defined login identity.
type Session struct {
	UserID string `json:"userId"`
	Token  string `json:"token,omitempty"`
}

// Permissions is the per-agent permission set, populated once after session
// resolution and injected where needed.
type Permissions struct {
	ModifyPayment  bool `json:"modifyPayment"`
	EnrollCustomer bool `json:"enrollCustomer"`
	MarkAttendance bool `json:"markAttendance"`
}

// AgentInfo is the agent profile as served by the upstream backends.
type AgentInfo struct {
	ID            string      `json:"_id"`
	Name          string      `json:"name"`
	Phone         string      `json:"phone,omitempty"`
	DesignationID string      `json:"designation_id"`
	Permissions   Permissions `json:"permissions"`
}

// Request and response structures.
type (
	// LoginRequest is the mobile client's login payload.
	LoginRequest struct {
		Phone    string `json:"phone" binding:"required"`
		Password string `json:"password" binding:"required"`
		DeviceID string `json:"deviceId" binding:"required"`
	}

	// LoginResponse is returned to the mobile client after login.
	LoginResponse struct {
		Token     string    `json:"token"`
		User      Session   `json:"user"`
		AgentInfo AgentInfo `json:"agentInfo"`
	}

	// ResolveRequest carries the navigation-supplied session, when present.
	ResolveRequest struct {
		User      *Session   `json:"user,omitempty"`
		AgentInfo *AgentInfo `json:"agentInfo,omitempty"`
	}

	// UpstreamLoginRequest is the payload for /agent/login-agent.
	UpstreamLoginRequest struct {
		Phone    string `json:"phone"`
		Password string `json:"password"`
	}

	// UpstreamLoginResponse is the upstream login result.
	UpstreamLoginResponse struct {
		UserID string `json:"userId"`
		Token  string `json:"token,omitempty"`
	}
)
