package action

import (
	"net/http"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/ecoscore"
	"ecotrackapi/pkg/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var sortableFields = map[string]bool{
	"date":   true,
	"points": true,
	"type":   true,
	"title":  true,
}

// ListActions returns the caller's own actions, filtered by type and paged.
func (h *Handler) ListActions(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	uid := ctx.Value(api.CtxUid).(bson.ObjectID)
	resParams := &api.ResParams{W: w, R: r}

	q := r.URL.Query()
	page, limit := api.PageParams(q, 10)

	query := bson.M{"user": uid}
	if typeFilter := q.Get("type"); typeFilter != "" && typeFilter != "all" {
		if _, err := ecoscore.ParseActionType(typeFilter); err != nil {
			resParams.Code = http.StatusBadRequest
			resParams.Err = err
			h.Res(resParams)
			return
		}
		query["type"] = typeFilter
	}

	sortBy := q.Get("sortBy")
	if !sortableFields[sortBy] {
		sortBy = "date"
	}
	sortOrder := -1
	if q.Get("sortOrder") == "asc" {
		sortOrder = 1
	}

	actionsCollection := h.MongoDB.Collection("actions")

	total, err := actionsCollection.CountDocuments(ctx, query)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: sortBy, Value: sortOrder}}).
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
		Pagination: ecoscore.Paginate(int(total), page, limit),
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
