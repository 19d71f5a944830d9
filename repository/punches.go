package repository

import (
	"context"

	"github.com/aurumchit/agent_end/models"
	"github.com/aurumchit/agent_end/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InsertPunchRecord stores the local audit copy of a submitted punch.
func InsertPunchRecord(ctx context.Context, record models.PunchRecord) error {
	_, err := ExecuteDbOperation(func() (interface{}, error) {
		return Collection(PunchesCollection).InsertOne(ctx, record)
	}, 3)
	if err != nil {
		return err
	}

	utils.LogDbOperation("insert", PunchesCollection, record.AgentID, record.ID)
	return nil
}

// ListPunchRecords returns the most recent punches for an agent.
func ListPunchRecords(ctx context.Context, agentID string, limit int64) ([]models.PunchRecord, error) {
	if limit <= 0 {
		limit = 30
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "punchedAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := Collection(PunchesCollection).Find(ctx, bson.M{"agentId": agentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.PunchRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
