package service

import (
	"context"
	"encoding/json"

	"github.com/aurumchit/agent_end/models"
	"github.com/aurumchit/agent_end/utils"
)

// LoginScreen is the redirect target when no session can be resolved.
const LoginScreen = "Login"

// SessionStore is the persisted session store the resolver reads.
type SessionStore interface {
	Get(ctx context.Context, deviceID, key string) (string, error)
	Put(ctx context.Context, deviceID, key, value string) error
	Delete(ctx context.Context, deviceID, key string) error
	Clear(ctx context.Context, deviceID string) error
}

// Store key names, mirrored by the mobile client.
const (
	storeKeyUser      = "user"
	storeKeyAgentInfo = "agentInfo"
)

// ResolutionOutcome says how (or whether) a session was resolved.
type ResolutionOutcome string

const (
	ResolvedFromParams ResolutionOutcome = "params"   // navigation-supplied session
	ResolvedFromStore  ResolutionOutcome = "store"    // rehydrated from the persisted store
	ResolutionRedirect ResolutionOutcome = "redirect" // no session, go to login
)

// Redirect instructs the client to navigate. Replace discards the current
// screen from history so back-navigation cannot return to a protected screen.
type Redirect struct {
	Target  string `json:"target"`
	Replace bool   `json:"replace"`
}

// Resolution is the outcome of a session resolution cycle. Exactly one of
// {resolved session, redirect} is populated.
type Resolution struct {
	Outcome   ResolutionOutcome `json:"outcome"`
	Session   *models.Session   `json:"session,omitempty"`
	AgentInfo *models.AgentInfo `json:"agentInfo,omitempty"`
	Redirect  *Redirect         `json:"redirect,omitempty"`
}

// Resolved reports whether a usable session came out of the cycle.
func (r Resolution) Resolved() bool {
	return r.Outcome != ResolutionRedirect
}

// Permissions returns the agent permissions, zero-valued when no agent
// profile was resolved.
func (r Resolution) Permissions() models.Permissions {
	if r.AgentInfo == nil {
		return models.Permissions{}
	}
	return r.AgentInfo.Permissions
}

// SessionResolver decides whether a valid session exists before any
// dependent fetch is issued.
type SessionResolver struct {
	store SessionStore
}

// NewSessionResolver creates a resolver over the given store.
func NewSessionResolver(store SessionStore) *SessionResolver {
	return &SessionResolver{store: store}
}

// Resolve produces a resolved session or a login redirect.
//
// A navigation-supplied user with a userId wins outright and the store is
// not touched. Otherwise both the user and agentInfo keys must rehydrate
// from the store; anything missing or malformed, including store read
// errors, fails closed into a single replace-redirect to the login screen.
func (r *SessionResolver) Resolve(ctx context.Context, deviceID string, provided models.ResolveRequest) Resolution {
	if provided.User != nil && provided.User.UserID != "" {
		return Resolution{
			Outcome:   ResolvedFromParams,
			Session:   provided.User,
			AgentInfo: provided.AgentInfo,
		}
	}

	rawUser, err := r.store.Get(ctx, deviceID, storeKeyUser)
	if err != nil {
		utils.Logger.Info().Err(err).Str("deviceId", deviceID).Msg("no stored session, redirecting to login")
		return loginRedirect()
	}

	rawAgent, err := r.store.Get(ctx, deviceID, storeKeyAgentInfo)
	if err != nil {
		utils.Logger.Info().Err(err).Str("deviceId", deviceID).Msg("no stored agent info, redirecting to login")
		return loginRedirect()
	}

	var session models.Session
	if err := json.Unmarshal([]byte(rawUser), &session); err != nil || session.UserID == "" {
		utils.Logger.Info().Err(err).Str("deviceId", deviceID).Msg("stored session unusable, redirecting to login")
		return loginRedirect()
	}

	var agent models.AgentInfo
	if err := json.Unmarshal([]byte(rawAgent), &agent); err != nil || agent.ID == "" {
		utils.Logger.Info().Err(err).Str("deviceId", deviceID).Msg("stored agent info unusable, redirecting to login")
		return loginRedirect()
	}

	return Resolution{
		Outcome:   ResolvedFromStore,
		Session:   &session,
		AgentInfo: &agent,
	}
}

func loginRedirect() Resolution {
	return Resolution{
		Outcome:  ResolutionRedirect,
		Redirect: &Redirect{Target: LoginScreen, Replace: true},
	}
}
