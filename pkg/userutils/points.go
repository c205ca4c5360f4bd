package userutils

import (
	"context"
	"time"

	"ecotrackapi/pkg/ecoscore"
	"ecotrackapi/pkg/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// levelSwitch rebuilds the level tier from the just-updated totalPoints inside
// the same update, so points and level can never be observed out of sync.
// Branches mirror ecoscore.ResolveLevel.
func levelSwitch() bson.M {
	return bson.M{"$switch": bson.M{
		"branches": bson.A{
			bson.M{"case": bson.M{"$gte": bson.A{"$totalPoints", 10000}}, "then": string(ecoscore.EarthHero)},
			bson.M{"case": bson.M{"$gte": bson.A{"$totalPoints", 5000}}, "then": string(ecoscore.PlanetGuardian)},
			bson.M{"case": bson.M{"$gte": bson.A{"$totalPoints", 2000}}, "then": string(ecoscore.GreenChampion)},
			bson.M{"case": bson.M{"$gte": bson.A{"$totalPoints", 500}}, "then": string(ecoscore.EcoWarrior)},
		},
		"default": string(ecoscore.Beginner),
	}}
}

// ApplyPointsDelta adds delta to a user's totalPoints (floored at 0) and
// recomputes the level, as one pipeline update on the user document. Returns
// the post-update user. Two concurrent calls serialize on the document; no
// read-modify-write window exists.
func ApplyPointsDelta(users *mongo.Collection, ctx context.Context, uid bson.ObjectID, delta int) (*schemas.User, error) {

	pipeline := bson.A{
		bson.M{"$set": bson.M{
			"totalPoints": bson.M{"$max": bson.A{0, bson.M{"$add": bson.A{"$totalPoints", delta}}}},
		}},
		bson.M{"$set": bson.M{"level": levelSwitch()}},
	}

	var user schemas.User
	err := users.FindOneAndUpdate(ctx,
		bson.M{"_id": uid},
		pipeline,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		return nil, err
	}

	return &user, nil

}

// GrantAchievements appends each badge unless a same-named one is already
// held. The filter guard keeps re-runs idempotent under concurrency. Returns
// the achievements actually written.
func GrantAchievements(users *mongo.Collection, ctx context.Context, uid bson.ObjectID, defs []ecoscore.AchievementDef) ([]schemas.Achievement, error) {

	granted := make([]schemas.Achievement, 0, len(defs))
	now := time.Now().UTC()

	for _, def := range defs {
		a := schemas.Achievement{
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			DateEarned:  now,
		}
		res, err := users.UpdateOne(ctx,
			bson.M{"_id": uid, "achievements.name": bson.M{"$ne": def.Name}},
			bson.M{"$push": bson.M{"achievements": a}},
		)
		if err != nil {
			return granted, err
		}
		if res.ModifiedCount > 0 {
			granted = append(granted, a)
		}
	}

	return granted, nil

}
