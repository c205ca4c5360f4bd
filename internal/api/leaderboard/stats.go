package leaderboard

import (
	"net/http"

	"ecotrackapi/internal/api"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type globalStats struct {
	TotalUsers    int     `bson:"totalUsers" json:"totalUsers"`
	TotalPoints   int     `bson:"totalPoints" json:"totalPoints"`
	AveragePoints float64 `bson:"averagePoints" json:"averagePoints"`
}

type levelCount struct {
	Level string `bson:"_id" json:"level"`
	Count int    `bson:"count" json:"count"`
}

type countryStats struct {
	Country     string `bson:"_id" json:"country"`
	Count       int    `bson:"count" json:"count"`
	TotalPoints int    `bson:"totalPoints" json:"totalPoints"`
}

// GetStats serves community-wide aggregates: totals, level distribution, and
// the top countries by participation.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	resParams := &api.ResParams{W: w, R: r}

	usersCollection := h.MongoDB.Collection("users")

	globalCursor, err := usersCollection.Aggregate(ctx, bson.A{
		bson.M{"$match": bson.M{"isActive": true}},
		bson.M{"$group": bson.M{
			"_id":           nil,
			"totalUsers":    bson.M{"$sum": 1},
			"totalPoints":   bson.M{"$sum": "$totalPoints"},
			"averagePoints": bson.M{"$avg": "$totalPoints"},
		}},
	})
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	var globalRows []globalStats
	if err := globalCursor.All(ctx, &globalRows); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	var global globalStats
	if len(globalRows) > 0 {
		global = globalRows[0]
	}

	levelCursor, err := usersCollection.Aggregate(ctx, bson.A{
		bson.M{"$match": bson.M{"isActive": true}},
		bson.M{"$group": bson.M{
			"_id":   "$level",
			"count": bson.M{"$sum": 1},
		}},
	})
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	levelDistribution := []levelCount{}
	if err := levelCursor.All(ctx, &levelDistribution); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	countryCursor, err := usersCollection.Aggregate(ctx, bson.A{
		bson.M{"$match": bson.M{
			"isActive":         true,
			"location.country": bson.M{"$exists": true, "$ne": ""},
		}},
		bson.M{"$group": bson.M{
			"_id":         "$location.country",
			"count":       bson.M{"$sum": 1},
			"totalPoints": bson.M{"$sum": "$totalPoints"},
		}},
		bson.M{"$sort": bson.M{"count": -1}},
		bson.M{"$limit": 10},
	})
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	topCountries := []countryStats{}
	if err := countryCursor.All(ctx, &topCountries); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	resParams.ResData = &struct {
		Global            globalStats    `json:"global"`
		LevelDistribution []levelCount   `json:"levelDistribution"`
		TopCountries      []countryStats `json:"topCountries"`
	}{
		Global:            global,
		LevelDistribution: levelDistribution,
		TopCountries:      topCountries,
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
