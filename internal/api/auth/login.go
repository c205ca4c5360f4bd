package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/schemas"
	"ecotrackapi/pkg/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {

	defer r.Body.Close()
	ctx := r.Context()
	resParams := &api.ResParams{W: w, R: r}

	var reqData struct {
		Email    string `json:"email" validate:"required,email"`
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

	reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))

	if err := h.Validate.Struct(&reqData); err != nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}
	password := reqData.Password
	reqData.Password = ""
	resParams.ReqData = reqData

	usersCollection := h.MongoDB.Collection("users")

	// find user
	var user schemas.User
	err := usersCollection.FindOne(ctx, bson.M{"email": reqData.Email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && user.PassHash == "") {
		resParams.ResData = &struct {
			CredentialError bool `json:"credentialError"`
		}{CredentialError: true}
		resParams.Code = http.StatusForbidden
		resParams.Err = errors.New("credential error")
		h.Res(resParams)
		return
	} else if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	// check password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		resParams.ResData = &struct {
			CredentialError bool `json:"credentialError"`
		}{CredentialError: true}
		resParams.Code = http.StatusForbidden
		resParams.Err = err
		h.Res(resParams)
		return
	}

	// deactivated accounts can't log in
	if !user.IsActive {
		resParams.ResData = &struct {
			Deactivated bool `json:"deactivated"`
		}{Deactivated: true}
		resParams.Code = http.StatusForbidden
		resParams.Err = errors.New("account deactivated")
		h.Res(resParams)
		return
	}

	// record login time, best effort
	now := time.Now().UTC()
	if _, err := usersCollection.UpdateOne(ctx,
		bson.M{"_id": user.Id},
		bson.M{"$set": bson.M{"lastLogin": now}},
	); err == nil {
		user.LastLogin = now
	}

	// issue jwt
	authToken := utils.CreateNewAuthToken(user.Id)
	authTokenStr, err := authToken.Sign()
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	resParams.ResData = &struct {
		Token string        `json:"token"`
		User  *schemas.User `json:"user"`
	}{
		Token: authTokenStr,
		User:  &user,
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
