package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/schemas"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UpdateProfile changes name, location, and notification preferences. Points,
// level, and achievements are never writable here.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {

	defer r.Body.Close()
	ctx := r.Context()
	uid := ctx.Value(api.CtxUid).(bson.ObjectID)
	resParams := &api.ResParams{W: w, R: r}

	var reqData struct {
		FirstName     *string                    `json:"firstName" validate:"omitempty,min=1,max=50"`
		LastName      *string                    `json:"lastName" validate:"omitempty,min=1,max=50"`
		Location      *schemas.Location          `json:"location"`
		Notifications *schemas.NotificationPrefs `json:"notifications"`
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

	if err := h.Validate.Struct(&reqData); err != nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}

	set := bson.M{}
	if reqData.FirstName != nil {
		set["firstName"] = strings.TrimSpace(*reqData.FirstName)
	}
	if reqData.LastName != nil {
		set["lastName"] = strings.TrimSpace(*reqData.LastName)
	}
	if reqData.Location != nil {
		set["location"] = reqData.Location
	}
	if reqData.Notifications != nil {
		set["notifications"] = reqData.Notifications
	}
	if len(set) == 0 {
		resParams.Code = http.StatusBadRequest
		resParams.Err = errors.New("no updatable fields in request")
		h.Res(resParams)
		return
	}

	var user schemas.User
	err := h.MongoDB.Collection("users").FindOneAndUpdate(ctx,
		bson.M{"_id": uid},
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
