package action

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

// DeleteAction removes one of the caller's actions and debits the points it
// granted. The owner's total is floored at zero and the level re-resolved in
// the same atomic update. A missing action mutates nothing.
func (h *Handler) DeleteAction(w http.ResponseWriter, r *http.Request) {

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

	// deleting by owner filter makes ownership atomic with removal
	var deleted schemas.Action
	err = h.MongoDB.Collection("actions").FindOneAndDelete(ctx,
		bson.M{"_id": actionId, "user": uid},
	).Decode(&deleted)

	if errors.Is(err, mongo.ErrNoDocuments) {
		var existing schemas.Action
		lookupErr := h.MongoDB.Collection("actions").FindOne(ctx, bson.M{"_id": actionId}).Decode(&existing)
		switch {
		case errors.Is(lookupErr, mongo.ErrNoDocuments):
			resParams.Code = http.StatusNotFound
			resParams.Err = err
		case lookupErr != nil:
			resParams.Code = http.StatusInternalServerError
			resParams.Err = lookupErr
		default:
			resParams.Code = http.StatusForbidden
			resParams.Err = errNotOwner
		}
		h.Res(resParams)
		return
	} else if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	user, err := userutils.ApplyPointsDelta(h.MongoDB.Collection("users"), ctx, uid, -deleted.Points)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	resParams.ResData = &struct {
		Level       ecoscore.Level `json:"level"`
		TotalPoints int            `json:"totalPoints"`
	}{
		Level:       user.Level,
		TotalPoints: user.TotalPoints,
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
