package leaderboard

import (
	"errors"
	"net/http"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/config"
	"ecotrackapi/pkg/ecoscore"
	"ecotrackapi/pkg/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// GetRegional ranks active users within a country and/or region. Without an
// explicit filter it falls back to the caller's own country.
func (h *Handler) GetRegional(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	uid := ctx.Value(api.CtxUid).(bson.ObjectID)
	resParams := &api.ResParams{W: w, R: r}

	q := r.URL.Query()
	page, limit := api.PageParams(q, config.DEFAULT_PAGE_LIMIT)
	country := q.Get("country")
	region := q.Get("region")

	usersCollection := h.MongoDB.Collection("users")

	if country == "" && region == "" {
		var me schemas.User
		err := usersCollection.FindOne(ctx, bson.M{"_id": uid}).Decode(&me)
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
		country = me.Location.Country
	}

	filter := bson.M{"isActive": true}
	if country != "" {
		filter["location.country"] = country
	}
	if region != "" {
		filter["location.region"] = region
	}

	count, err := usersCollection.CountDocuments(ctx, filter)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	total := int(count)

	skip := (page - 1) * limit
	findOpts := options.Find().
		SetProjection(publicUserProjection).
		SetSort(bson.D{{Key: "totalPoints", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := usersCollection.Find(ctx, filter, findOpts)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	users := []schemas.PublicUser{}
	if err := cursor.All(ctx, &users); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	entries := make([]rankedUser, len(users))
	for i, u := range users {
		entries[i] = rankedUser{Rank: skip + i + 1, User: u}
	}

	currentUserRank, err := h.rankOf(ctx, uid, filter)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	resParams.ResData = &struct {
		Leaderboard     []rankedUser        `json:"leaderboard"`
		CurrentUserRank int                 `json:"currentUserRank"`
		Location        schemas.Location    `json:"location"`
		Pagination      ecoscore.Pagination `json:"pagination"`
	}{
		Leaderboard:     entries,
		CurrentUserRank: currentUserRank,
		Location:        schemas.Location{Country: country, Region: region},
		Pagination:      ecoscore.Paginate(total, page, limit),
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
