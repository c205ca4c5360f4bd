package action

import (
	"errors"
	"net/http"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/schemas"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// GetAction returns a single action. Only the owner or an admin may view it.
func (h *Handler) GetAction(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	uid := ctx.Value(api.CtxUid).(bson.ObjectID)
	resParams := &api.ResParams{W: w, R: r}

	actionId, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}

	var act schemas.Action
	err = h.MongoDB.Collection("actions").FindOne(ctx, bson.M{"_id": actionId}).Decode(&act)
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

	if act.User != uid {
		// non-owners need admin rights
		var requester schemas.User
		err := h.MongoDB.Collection("users").FindOne(ctx, bson.M{"_id": uid}).Decode(&requester)
		if err != nil || !requester.IsAdmin {
			resParams.Code = http.StatusForbidden
			resParams.Err = errNotOwner
			h.Res(resParams)
			return
		}
	}

	resParams.ResData = &act
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
