package leaderboard

import (
	"net/http"
	"time"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/config"
	"ecotrackapi/pkg/ecoscore"
	"ecotrackapi/pkg/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// GetMonthly ranks users by points from actions dated inside the current
// calendar month. The window derives from the request-time instant so the
// boundary logic stays in ecoscore and out of the wall clock.
func (h *Handler) GetMonthly(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	resParams := &api.ResParams{W: w, R: r}

	now := time.Now()
	start, end := ecoscore.MonthWindow(now)

	pipeline := bson.A{
		bson.M{"$match": bson.M{
			"date": bson.M{"$gte": start, "$lt": end},
		}},
		bson.M{"$group": bson.M{
			"_id":         "$user",
			"points":      bson.M{"$sum": "$points"},
			"actions":     bson.M{"$sum": 1},
			"totalImpact": impactSum,
		}},
		bson.M{"$sort": bson.M{"points": -1}},
		bson.M{"$lookup": bson.M{
			"from":         "users",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "user",
		}},
		bson.M{"$unwind": "$user"},
		bson.M{"$match": bson.M{"user.isActive": true}},
		bson.M{"$limit": config.MONTHLY_TOP_COUNT},
		bson.M{"$project": bson.M{
			"_id": 0,
			"user": bson.M{
				"_id":            "$user._id",
				"username":       "$user.username",
				"firstName":      "$user.firstName",
				"lastName":       "$user.lastName",
				"profilePicture": "$user.profilePicture",
				"totalPoints":    "$user.totalPoints",
				"level":          "$user.level",
				"location":       "$user.location",
				"joinDate":       "$user.joinDate",
			},
			"stats": bson.M{
				"points":      "$points",
				"actions":     "$actions",
				"totalImpact": "$totalImpact",
			},
		}},
	}

	cursor, err := h.MongoDB.Collection("actions").Aggregate(ctx, pipeline)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	entries := []schemas.LeaderboardEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	resParams.ResData = &struct {
		Leaderboard []schemas.LeaderboardEntry `json:"leaderboard"`
		Month       struct {
			Start time.Time `json:"start"`
			End   time.Time `json:"end"`
			Name  string    `json:"name"`
		} `json:"month"`
	}{
		Leaderboard: entries,
		Month: struct {
			Start time.Time `json:"start"`
			End   time.Time `json:"end"`
			Name  string    `json:"name"`
		}{
			Start: start,
			End:   end,
			Name:  now.Format("January 2006"),
		},
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
