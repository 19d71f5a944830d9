package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aurumchit/agent_end/models"
	"github.com/aurumchit/agent_end/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	utils.InitLogger()
}

// fakeStore is an in-memory session store with read counters and error
// injection.
type fakeStore struct {
	data     map[string]string
	getCalls int
	getErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func (s *fakeStore) Get(_ context.Context, deviceID, key string) (string, error) {
	s.getCalls++
	if s.getErr != nil {
		return "", s.getErr
	}
	value, ok := s.data[deviceID+"/"+key]
	if !ok {
		return "", errors.New("key not found")
	}
	return value, nil
}

func (s *fakeStore) Put(_ context.Context, deviceID, key, value string) error {
	s.data[deviceID+"/"+key] = value
	return nil
}

func (s *fakeStore) Delete(_ context.Context, deviceID, key string) error {
	delete(s.data, deviceID+"/"+key)
	return nil
}

func (s *fakeStore) Clear(_ context.Context, deviceID string) error {
	for k := range s.data {
		delete(s.data, k)
	}
	return nil
}

func TestResolve_NavigationSessionSkipsStore(t *testing.T) {
	store := newFakeStore()
	resolver := NewSessionResolver(store)

	resolution := resolver.Resolve(context.Background(), "device-1", models.ResolveRequest{
		User: &models.Session{UserID: "A1"},
	})

	require.True(t, resolution.Resolved())
	assert.Equal(t, ResolvedFromParams, resolution.Outcome)
	assert.Equal(t, "A1", resolution.Session.UserID)
	assert.Nil(t, resolution.Redirect)
	assert.Equal(t, 0, store.getCalls, "store must not be read when navigation supplies the session")
}

func TestResolve_RehydratesFromStore(t *testing.T) {
	store := newFakeStore()
	store.data["device-1/user"] = `{"userId":"A1","token":"tok"}`
	store.data["device-1/agentInfo"] = `{"_id":"A1","name":"Ravi","designation_id":"D1","permissions":{"modifyPayment":true}}`

	resolver := NewSessionResolver(store)
	resolution := resolver.Resolve(context.Background(), "device-1", models.ResolveRequest{})

	require.True(t, resolution.Resolved())
	assert.Equal(t, ResolvedFromStore, resolution.Outcome)
	assert.Equal(t, "A1", resolution.Session.UserID)
	assert.Equal(t, "Ravi", resolution.AgentInfo.Name)
	assert.True(t, resolution.Permissions().ModifyPayment)
	assert.Nil(t, resolution.Redirect)
}

func TestResolve_EmptyStoreRedirectsToLogin(t *testing.T) {
	resolver := NewSessionResolver(newFakeStore())
	resolution := resolver.Resolve(context.Background(), "device-1", models.ResolveRequest{})

	require.False(t, resolution.Resolved())
	assert.Equal(t, ResolutionRedirect, resolution.Outcome)
	require.NotNil(t, resolution.Redirect)
	assert.Equal(t, LoginScreen, resolution.Redirect.Target)
	assert.True(t, resolution.Redirect.Replace, "redirect must replace, not push")
	assert.Nil(t, resolution.Session)
}

func TestResolve_MalformedStoreFailsClosed(t *testing.T) {
	cases := []struct {
		name      string
		user      string
		agentInfo string
	}{
		{"garbage user", "{not json", `{"_id":"A1"}`},
		{"user without id", `{"token":"tok"}`, `{"_id":"A1"}`},
		{"garbage agent info", `{"userId":"A1"}`, "oops"},
		{"agent info without id", `{"userId":"A1"}`, `{"name":"x"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			store.data["device-1/user"] = tc.user
			store.data["device-1/agentInfo"] = tc.agentInfo

			resolution := NewSessionResolver(store).Resolve(context.Background(), "device-1", models.ResolveRequest{})

			require.Equal(t, ResolutionRedirect, resolution.Outcome)
			assert.Equal(t, LoginScreen, resolution.Redirect.Target)
			assert.True(t, resolution.Redirect.Replace)
		})
	}
}

func TestResolve_StoreErrorTreatedAsNoSession(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("disk on fire")

	resolution := NewSessionResolver(store).Resolve(context.Background(), "device-1", models.ResolveRequest{})

	require.Equal(t, ResolutionRedirect, resolution.Outcome)
	assert.Equal(t, LoginScreen, resolution.Redirect.Target)
	assert.True(t, resolution.Redirect.Replace)
}

func TestResolve_EmptyUserIDInParamsFallsThrough(t *testing.T) {
	store := newFakeStore()
	store.data["device-1/user"] = `{"userId":"A2"}`
	store.data["device-1/agentInfo"] = `{"_id":"A2","name":"Meena"}`

	resolution := NewSessionResolver(store).Resolve(context.Background(), "device-1", models.ResolveRequest{
		User: &models.Session{UserID: ""},
	})

	require.True(t, resolution.Resolved())
	assert.Equal(t, ResolvedFromStore, resolution.Outcome)
	assert.Equal(t, "A2", resolution.Session.UserID)
	assert.Equal(t, 2, store.getCalls)
}
