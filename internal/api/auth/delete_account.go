package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"
)

// DeleteAccount deactivates the account after a password confirmation.
// Actions and points stay in place; an inactive user just disappears from
// leaderboards and can't log in.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {

	defer r.Body.Close()
	ctx := r.Context()
	uid := ctx.Value(api.CtxUid).(bson.ObjectID)
	resParams := &api.ResParams{W: w, R: r}

	var reqData struct {
		Password string `json:"password" validate:"required"`
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

	if err := h.Validate.Struct(&reqData); err != nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}

	usersCollection := h.MongoDB.Collection("users")

	var user schemas.User
	err := usersCollection.FindOne(ctx, bson.M{"_id": uid}).Decode(&user)
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

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(reqData.Password)); err != nil {
		resParams.ResData = &struct {
			CredentialError bool `json:"credentialError"`
		}{CredentialError: true}
		resParams.Code = http.StatusForbidden
		resParams.Err = err
		h.Res(resParams)
		return
	}

	if _, err := usersCollection.UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{"$set": bson.M{"isActive": false}},
	); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	resParams.ResData = &struct {
		Deactivated bool `json:"deactivated"`
	}{Deactivated: true}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
