package admin

import (
	"net/http"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/ecoscore"
	"ecotrackapi/pkg/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ListActions pages through all submitted actions with type and verification
// filters, for the moderation queue.
func (h *Handler) ListActions(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	resParams := &api.ResParams{W: w, R: r}

	q := r.URL.Query()
	page, limit := api.PageParams(q, 20)

	query := bson.M{}
	if typeFilter := q.Get("type"); typeFilter != "" && typeFilter != "all" {
		if _, err := ecoscore.ParseActionType(typeFilter); err != nil {
			resParams.Code = http.StatusBadRequest
			resParams.Err = err
			h.Res(resParams)
			return
		}
		query["type"] = typeFilter
	}
	switch q.Get("verified") {
	case "true":
		query["isVerified"] = true
	case "false":
		query["isVerified"] = false
	}

	actionsCollection := h.MongoDB.Collection("actions")

	count, err := actionsCollection.CountDocuments(ctx, query)
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

	cursor, err := actionsCollection.Find(ctx, query, findOpts)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	actions := []schemas.Action{}
	if err := cursor.All(ctx, &actions); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	resParams.ResData = &struct {
		Actions    []schemas.Action    `json:"actions"`
		Pagination ecoscore.Pagination `json:"pagination"`
	}{
		Actions:    actions,
		Pagination: ecoscore.Paginate(int(count), page, limit),
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
