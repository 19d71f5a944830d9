package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aurumchit/agent_end/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Keys the mobile client persists. Values are stored wholesale as opaque
// strings (JSON blobs or URIs) and never interpreted here.
const (
	KVKeyUser      = "user"
	KVKeyAgentInfo = "agentInfo"
)

// KVKeyProfileImage builds the per-user profile image key.
func KVKeyProfileImage(userID string) string {
	return "profile_image_" + userID
}

// ErrKeyNotFound is returned when a key has no stored value.
var ErrKeyNotFound = errors.New("key not found")

// kvEntry is the stored document shape.
type kvEntry struct {
	DeviceID  string    `bson:"deviceId"`
	Key       string    `bson:"key"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// KVStore is the persisted session store, a device-scoped key-value map over
// the agent_kv_store collection.
type KVStore struct{}

// NewKVStore returns the store backed by the shared MongoDB connection.
func NewKVStore() *KVStore {
	return &KVStore{}
}

// Get returns the stored value for (deviceID, key).
func (s *KVStore) Get(ctx context.Context, deviceID, key string) (string, error) {
	var entry kvEntry
	err := Collection(KVStoreCollection).
		FindOne(ctx, bson.M{"deviceId": deviceID, "key": key}).
		Decode(&entry)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", ErrKeyNotFound
		}
		return "", err
	}

	return entry.Value, nil
}

// Put stores the value wholesale, replacing any previous value.
func (s *KVStore) Put(ctx context.Context, deviceID, key, value string) error {
	_, err := Collection(KVStoreCollection).UpdateOne(
		ctx,
		bson.M{"deviceId": deviceID, "key": key},
		bson.M{"$set": bson.M{
			"value":     value,
			"updatedAt": time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// Delete removes a single key.
func (s *KVStore) Delete(ctx context.Context, deviceID, key string) error {
	_, err := Collection(KVStoreCollection).DeleteOne(
		ctx,
		bson.M{"deviceId": deviceID, "key": key},
	)
	return err
}

// Clear removes every key held for a device. Used at logout.
func (s *KVStore) Clear(ctx context.Context, deviceID string) error {
	result, err := Collection(KVStoreCollection).DeleteMany(
		ctx,
		bson.M{"deviceId": deviceID},
	)
	if err != nil {
		return err
	}

	utils.Logger.Info().
		Str("deviceId", deviceID).
		Int64("deleted", result.DeletedCount).
		Msg("device store cleared")
	return nil
}

// SweepStale deletes entries not touched within maxAge. Run by the daily
// maintenance job.
func (s *KVStore) SweepStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	result, err := Collection(KVStoreCollection).DeleteMany(
		ctx,
		bson.M{"updatedAt": bson.M{"$lt": cutoff}},
	)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
