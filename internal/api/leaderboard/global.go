package leaderboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/config"
	"ecotrackapi/pkg/ecoscore"
	"ecotrackapi/pkg/schemas"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"
)

var publicUserProjection = bson.M{
	"username":       1,
	"firstName":      1,
	"lastName":       1,
	"profilePicture": 1,
	"totalPoints":    1,
	"level":          1,
	"location":       1,
	"joinDate":       1,
}

// GetGlobal ranks all active users by lifetime points. The default first page
// is served from a short-lived redis snapshot; the caller's own rank is always
// computed fresh as count(strictly greater) + 1.
func (h *Handler) GetGlobal(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	uid := ctx.Value(api.CtxUid).(bson.ObjectID)
	resParams := &api.ResParams{W: w, R: r}

	page, limit := api.PageParams(r.URL.Query(), config.DEFAULT_PAGE_LIMIT)

	usersCollection := h.MongoDB.Collection("users")
	filter := bson.M{"isActive": true}

	cacheable := page == 1 && limit == config.DEFAULT_PAGE_LIMIT

	var entries []rankedUser
	var total int

	// try the cached snapshot for the common request
	if cacheable {
		if raw, err := h.RedisCli.Get(ctx, config.LEADERBOARD_CACHE_KEY).Result(); err == nil {
			var snapshot struct {
				Entries []rankedUser `json:"entries"`
				Total   int          `json:"total"`
			}
			if json.Unmarshal([]byte(raw), &snapshot) == nil {
				entries = snapshot.Entries
				total = snapshot.Total
			}
		} else if !errors.Is(err, redis.Nil) {
			h.Logger.Warn("leaderboard cache read failed", zap.Error(err))
		}
	}

	if entries == nil {

		count, err := usersCollection.CountDocuments(ctx, filter)
		if err != nil {
			resParams.Code = http.StatusInternalServerError
			resParams.Err = err
			h.Res(resParams)
			return
		}
		total = int(count)

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

		entries = make([]rankedUser, len(users))
		for i, u := range users {
			entries[i] = rankedUser{Rank: skip + i + 1, User: u}
		}

		if cacheable {
			snapshot, err := json.Marshal(&struct {
				Entries []rankedUser `json:"entries"`
				Total   int          `json:"total"`
			}{Entries: entries, Total: total})
			if err == nil {
				if err := h.RedisCli.Set(ctx, config.LEADERBOARD_CACHE_KEY, snapshot, time.Minute).Err(); err != nil {
					h.Logger.Warn("leaderboard cache write failed", zap.Error(err))
				}
			}
		}

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
		Pagination      ecoscore.Pagination `json:"pagination"`
	}{
		Leaderboard:     entries,
		CurrentUserRank: currentUserRank,
		Pagination:      ecoscore.Paginate(total, page, limit),
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
