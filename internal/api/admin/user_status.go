package admin

import (
	"encoding/json"
	"errors"
	"net/http"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/schemas"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var errSelfDeactivate = errors.New("cannot deactivate your own account")

// UpdateUserStatus flips the active and/or admin flags on an account. An
// admin can never deactivate themselves.
func (h *Handler) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {

	defer r.Body.Close()
	ctx := r.Context()
	actingAdmin := ctx.Value(api.CtxAdmin).(*schemas.User)
	resParams := &api.ResParams{W: w, R: r}

	userId, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}

	var reqData struct {
		IsActive *bool `json:"isActive"`
		IsAdmin  *bool `json:"isAdmin"`
	}

	// validate request body
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&reqData); err != nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}
	resParams.ReqData = reqData

	if reqData.IsActive == nil && reqData.IsAdmin == nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = errors.New("no status fields in request")
		h.Res(resParams)
		return
	}

	if userId == actingAdmin.Id && reqData.IsActive != nil && !*reqData.IsActive {
		resParams.Code = http.StatusBadRequest
		resParams.Err = errSelfDeactivate
		h.Res(resParams)
		return
	}

	set := bson.M{}
	if reqData.IsActive != nil {
		set["isActive"] = *reqData.IsActive
	}
	if reqData.IsAdmin != nil {
		set["isAdmin"] = *reqData.IsAdmin
	}

	var user schemas.User
	err = h.MongoDB.Collection("users").FindOneAndUpdate(ctx,
		bson.M{"_id": userId},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
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

	resParams.ResData = &user
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
