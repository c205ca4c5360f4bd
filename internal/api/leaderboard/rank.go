package leaderboard

import (
	"context"

	"ecotrackapi/pkg/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// rankOf is the "my rank" computation: one plus the number of users inside
// scope with strictly more points than uid. Ties share a rank; no secondary
// ordering is applied.
func (h *Handler) rankOf(ctx context.Context, uid bson.ObjectID, scope bson.M) (int, error) {

	usersCollection := h.MongoDB.Collection("users")

	var me schemas.User
	if err := usersCollection.FindOne(ctx, bson.M{"_id": uid}).Decode(&me); err != nil {
		return 0, err
	}

	filter := bson.M{"totalPoints": bson.M{"$gt": me.TotalPoints}}
	for k, v := range scope {
		filter[k] = v
	}

	greater, err := usersCollection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, err
	}

	return int(greater) + 1, nil

}
