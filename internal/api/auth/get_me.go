package auth

import (
	"errors"
	"net/http"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/schemas"
	"ecotrackapi/pkg/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	uid := ctx.Value(api.CtxUid).(bson.ObjectID)
	resParams := &api.ResParams{W: w, R: r}

	// middleware already validated the token; re-parse it here so a token
	// nearing expiry can be refreshed and re-issued with the response
	authToken, err := utils.ValidateAuthToken(r)
	if err != nil {
		resParams.Code = http.StatusUnauthorized
		resParams.Err = err
		h.Res(resParams)
		return
	}
	authToken.Refresh()
	token, err := authToken.Sign()
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	var user schemas.User
	err = h.MongoDB.Collection("users").FindOne(ctx, bson.M{"_id": uid}).Decode(&user)
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

	resParams.ResData = &struct {
		Token string        `json:"token"`
		User  *schemas.User `json:"user"`
	}{
		Token: token,
		User:  &user,
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
