package action

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/schemas"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UpdateAction edits the mutable fields of an unverified action. Points,
// type, and impact are fixed at creation; once verified nothing is editable.
func (h *Handler) UpdateAction(w http.ResponseWriter, r *http.Request) {

	defer r.Body.Close()
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

	var reqData struct {
		Title       *string  `json:"title" validate:"omitempty,min=1,max=100"`
		Description *string  `json:"description" validate:"omitempty,min=1,max=500"`
		Location    *string  `json:"location" validate:"omitempty,max=200"`
		Tags        []string `json:"tags" validate:"omitempty,dive,max=50"`
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

	set := bson.M{"mtime": time.Now().UTC()}
	if reqData.Title != nil {
		set["title"] = strings.TrimSpace(*reqData.Title)
	}
	if reqData.Description != nil {
		set["description"] = strings.TrimSpace(*reqData.Description)
	}
	if reqData.Location != nil {
		set["location"] = *reqData.Location
	}
	if reqData.Tags != nil {
		set["tags"] = reqData.Tags
	}
	if len(set) == 1 {
		resParams.Code = http.StatusBadRequest
		resParams.Err = errors.New("no updatable fields in request")
		h.Res(resParams)
		return
	}

	// ownership and the unverified check live in the filter, so a verified
	// action or someone else's action can't slip through between read and
	// write
	var updated schemas.Action
	err = h.MongoDB.Collection("actions").FindOneAndUpdate(ctx,
		bson.M{"_id": actionId, "user": uid, "isVerified": false},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)

	if errors.Is(err, mongo.ErrNoDocuments) {
		// distinguish missing, foreign, and verified for the caller
		var existing schemas.Action
		lookupErr := h.MongoDB.Collection("actions").FindOne(ctx, bson.M{"_id": actionId}).Decode(&existing)
		switch {
		case errors.Is(lookupErr, mongo.ErrNoDocuments):
			resParams.Code = http.StatusNotFound
			resParams.Err = err
		case lookupErr != nil:
			resParams.Code = http.StatusInternalServerError
			resParams.Err = lookupErr
		case existing.User != uid:
			resParams.Code = http.StatusForbidden
			resParams.Err = errNotOwner
		default:
			resParams.Code = http.StatusBadRequest
			resParams.Err = errActionVerified
		}
		h.Res(resParams)
		return
	} else if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	resParams.ResData = &updated
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
