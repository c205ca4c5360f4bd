package leaderboard

import (
	"net/http"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/config"
	"ecotrackapi/pkg/ecoscore"
	"ecotrackapi/pkg/schemas"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// impactSum adds the four physical impact fields (money excluded, it is not a
// physical quantity).
var impactSum = bson.M{"$sum": bson.M{"$add": bson.A{
	"$impact.co2Saved",
	"$impact.waterSaved",
	"$impact.energySaved",
	"$impact.wasteReduced",
}}}

// GetCategory ranks users by points earned from actions of one category.
// Scores aggregate over actions; owners must still be active.
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	resParams := &api.ResParams{W: w, R: r}

	categoryName := chi.URLParam(r, "type")
	if _, err := ecoscore.ParseActionType(categoryName); err != nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}

	page, limit := api.PageParams(r.URL.Query(), config.DEFAULT_PAGE_LIMIT)
	skip := (page - 1) * limit

	actionsCollection := h.MongoDB.Collection("actions")

	pipeline := bson.A{
		bson.M{"$match": bson.M{"type": categoryName}},
		bson.M{"$group": bson.M{
			"_id":         "$user",
			"actions":     bson.M{"$sum": 1},
			"points":      bson.M{"$sum": "$points"},
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
		bson.M{"$skip": skip},
		bson.M{"$limit": limit},
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

	cursor, err := actionsCollection.Aggregate(ctx, pipeline)
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
		entries[i].Rank = skip + i + 1
	}

	// distinct active participants for pagination
	countPipeline := bson.A{
		bson.M{"$match": bson.M{"type": categoryName}},
		bson.M{"$group": bson.M{"_id": "$user"}},
		bson.M{"$lookup": bson.M{
			"from":         "users",
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "user",
		}},
		bson.M{"$unwind": "$user"},
		bson.M{"$match": bson.M{"user.isActive": true}},
		bson.M{"$count": "total"},
	}
	countCursor, err := actionsCollection.Aggregate(ctx, countPipeline)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	var countRows []struct {
		Total int `bson:"total"`
	}
	if err := countCursor.All(ctx, &countRows); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	total := 0
	if len(countRows) > 0 {
		total = countRows[0].Total
	}

	resParams.ResData = &struct {
		Leaderboard []schemas.LeaderboardEntry `json:"leaderboard"`
		Category    string                     `json:"category"`
		Pagination  ecoscore.Pagination        `json:"pagination"`
	}{
		Leaderboard: entries,
		Category:    categoryName,
		Pagination:  ecoscore.Paginate(total, page, limit),
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
