package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/ecoscore"
	"ecotrackapi/pkg/schemas"
	"ecotrackapi/pkg/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {

	defer r.Body.Close()
	ctx := r.Context()
	resParams := &api.ResParams{W: w, R: r}

	var reqData struct {
		Username  string           `json:"username" validate:"required,username"`
		Email     string           `json:"email" validate:"required,email"`
		Password  string           `json:"password" validate:"required,password"`
		FirstName string           `json:"firstName" validate:"required,max=50"`
		LastName  string           `json:"lastName" validate:"required,max=50"`
		Location  schemas.Location `json:"location" validate:"omitempty"`
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

	// normalize
	reqData.Username = strings.TrimSpace(reqData.Username)
	reqData.Email = strings.TrimSpace(strings.ToLower(reqData.Email))
	reqData.FirstName = strings.TrimSpace(reqData.FirstName)
	reqData.LastName = strings.TrimSpace(reqData.LastName)

	if err := h.Validate.Struct(&reqData); err != nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}
	password := reqData.Password
	reqData.Password = ""
	resParams.ReqData = reqData

	// hash password
	passHash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	now := time.Now().UTC()
	newUser := &schemas.User{
		Ctime:        now,
		Username:     reqData.Username,
		Email:        reqData.Email,
		PassHash:     string(passHash),
		FirstName:    reqData.FirstName,
		LastName:     reqData.LastName,
		TotalPoints:  0,
		Level:        ecoscore.Beginner,
		Achievements: []schemas.Achievement{},
		Location:     reqData.Location,
		Notifications: schemas.NotificationPrefs{
			Email:        true,
			Achievements: true,
			Leaderboard:  true,
		},
		JoinDate:  now,
		LastLogin: now,
		IsActive:  true,
	}

	// relies on unique indexes over username and email
	res, err := h.MongoDB.Collection("users").InsertOne(ctx, newUser)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			resParams.ResData = &struct {
				Conflict bool `json:"conflict"`
			}{Conflict: true}
			resParams.Code = http.StatusConflict
		} else {
			resParams.Code = http.StatusInternalServerError
		}
		resParams.Err = err
		h.Res(resParams)
		return
	}
	newUser.Id = res.InsertedID.(bson.ObjectID)

	// issue jwt
	authToken := utils.CreateNewAuthToken(newUser.Id)
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
		User:  newUser,
	}
	resParams.Code = http.StatusCreated
	h.Res(resParams)

}
