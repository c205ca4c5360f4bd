package admin

import (
	"errors"
	"net/http"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/ecoscore"
	"ecotrackapi/pkg/schemas"
	"ecotrackapi/pkg/userutils"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type deleteActionRes struct {
	OwnerLevel       ecoscore.Level `json:"ownerLevel"`
	OwnerTotalPoints int            `json:"ownerTotalPoints"`
}

// DeleteAction removes any user's action and debits the owner. Same floored
// atomic decrement as the owner-facing delete.
func (h *Handler) DeleteAction(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	resParams := &api.ResParams{W: w, R: r}

	actionId, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}

	var deleted schemas.Action
	err = h.MongoDB.Collection("actions").FindOneAndDelete(ctx, bson.M{"_id": actionId}).Decode(&deleted)
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

	user, err := userutils.ApplyPointsDelta(h.MongoDB.Collection("users"), ctx, deleted.User, -deleted.Points)
	if err != nil {
		// the owner may have been hard-removed; the action is gone either way
		if errors.Is(err, mongo.ErrNoDocuments) {
			resParams.ResData = &deleteActionRes{
				OwnerLevel:       ecoscore.Beginner,
				OwnerTotalPoints: 0,
			}
			resParams.Code = http.StatusOK
			h.Res(resParams)
			return
		}
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	resParams.ResData = &deleteActionRes{
		OwnerLevel:       user.Level,
		OwnerTotalPoints: user.TotalPoints,
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
