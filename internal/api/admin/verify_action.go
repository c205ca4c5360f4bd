package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/schemas"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// VerifyAction sets or clears an action's verification. verifiedBy and
// verificationDate always move with the flag; points already credited are
// untouched either way.
func (h *Handler) VerifyAction(w http.ResponseWriter, r *http.Request) {

	defer r.Body.Close()
	ctx := r.Context()
	actingAdmin := ctx.Value(api.CtxAdmin).(*schemas.User)
	resParams := &api.ResParams{W: w, R: r}

	actionId, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}

	var reqData struct {
		IsVerified *bool `json:"isVerified"`
	}

	// validate request body
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&reqData); err != nil || reqData.IsVerified == nil {
		if err == nil {
			err = errors.New("isVerified is required")
		}
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}
	resParams.ReqData = reqData

	var update bson.M
	if *reqData.IsVerified {
		now := time.Now().UTC()
		update = bson.M{"$set": bson.M{
			"isVerified":       true,
			"verifiedBy":       actingAdmin.Id,
			"verificationDate": now,
			"mtime":            now,
		}}
	} else {
		update = bson.M{
			"$set":   bson.M{"isVerified": false, "mtime": time.Now().UTC()},
			"$unset": bson.M{"verifiedBy": "", "verificationDate": ""},
		}
	}

	var action schemas.Action
	err = h.MongoDB.Collection("actions").FindOneAndUpdate(ctx,
		bson.M{"_id": actionId},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&action)
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

	resParams.ResData = &action
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
