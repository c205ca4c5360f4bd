package admin

import (
	"errors"
	"net/http"
	"regexp"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/ecoscore"
	"ecotrackapi/pkg/schemas"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ListUsers pages through all accounts with an optional text search and
// active/inactive filter.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	resParams := &api.ResParams{W: w, R: r}

	q := r.URL.Query()
	page, limit := api.PageParams(q, 20)

	query := bson.M{}
	if search := q.Get("search"); search != "" {
		escaped := regexp.QuoteMeta(search)
		query["$or"] = bson.A{
			bson.M{"username": bson.M{"$regex": escaped, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": escaped, "$options": "i"}},
			bson.M{"firstName": bson.M{"$regex": escaped, "$options": "i"}},
			bson.M{"lastName": bson.M{"$regex": escaped, "$options": "i"}},
		}
	}
	switch q.Get("status") {
	case "active":
		query["isActive"] = true
	case "inactive":
		query["isActive"] = false
	}

	usersCollection := h.MongoDB.Collection("users")

	count, err := usersCollection.CountDocuments(ctx, query)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "ctime", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := usersCollection.Find(ctx, query, findOpts)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	users := []schemas.User{}
	if err := cursor.All(ctx, &users); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	resParams.ResData = &struct {
		Users      []schemas.User      `json:"users"`
		Pagination ecoscore.Pagination `json:"pagination"`
	}{
		Users:      users,
		Pagination: ecoscore.Paginate(int(count), page, limit),
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}

// GetUserDetails returns one user plus an aggregate of their actions and the
// ten most recent ones.
func (h *Handler) GetUserDetails(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	resParams := &api.ResParams{W: w, R: r}

	userId, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}

	var user schemas.User
	err = h.MongoDB.Collection("users").FindOne(ctx, bson.M{"_id": userId}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			resParams.Code = http.StatusNotFound
		} else {
			resParams.Code = http.StatusInternalServerError
		}
		resParams.Err = err
		h.Res(resParams)
		return
	}

	actionsCollection := h.MongoDB.Collection("actions")

	statsCursor, err := actionsCollection.Aggregate(ctx, bson.A{
		bson.M{"$match": bson.M{"user": userId}},
		bson.M{"$group": bson.M{
			"_id":               nil,
			"totalActions":      bson.M{"$sum": 1},
			"totalPoints":       bson.M{"$sum": "$points"},
			"totalCO2Saved":     bson.M{"$sum": "$impact.co2Saved"},
			"totalMoneySaved":   bson.M{"$sum": "$impact.moneySaved"},
			"totalWaterSaved":   bson.M{"$sum": "$impact.waterSaved"},
			"totalEnergySaved":  bson.M{"$sum": "$impact.energySaved"},
			"totalWasteReduced": bson.M{"$sum": "$impact.wasteReduced"},
		}},
	})
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	var statsRows []bson.M
	if err := statsCursor.All(ctx, &statsRows); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	stats := bson.M{
		"totalActions":      0,
		"totalPoints":       0,
		"totalCO2Saved":     0,
		"totalMoneySaved":   0,
		"totalWaterSaved":   0,
		"totalEnergySaved":  0,
		"totalWasteReduced": 0,
	}
	if len(statsRows) > 0 {
		stats = statsRows[0]
		delete(stats, "_id")
	}

	recentOpts := options.Find().
		SetSort(bson.D{{Key: "ctime", Value: -1}}).
		SetLimit(10)
	recentCursor, err := actionsCollection.Find(ctx, bson.M{"user": userId}, recentOpts)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	recent := []schemas.Action{}
	if err := recentCursor.All(ctx, &recent); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	resParams.ResData = &struct {
		User          *schemas.User    `json:"user"`
		Stats         bson.M           `json:"stats"`
		RecentActions []schemas.Action `json:"recentActions"`
	}{
		User:          &user,
		Stats:         stats,
		RecentActions: recent,
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
