package auth

import (
	"errors"
	"net/http"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/config"
	"ecotrackapi/pkg/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UploadAvatar accepts a multipart image, stores it in the upload bucket, and
// records the object key on the user.
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {

	defer r.Body.Close()
	ctx := r.Context()
	uid := ctx.Value(api.CtxUid).(bson.ObjectID)
	resParams := &api.ResParams{W: w, R: r}

	if err := r.ParseMultipartForm(config.MAX_AVATAR_IMAGE_BYTES); err != nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}
	defer file.Close()

	if header.Size > config.MAX_AVATAR_IMAGE_BYTES {
		resParams.Code = http.StatusBadRequest
		resParams.Err = errors.New("avatar too large")
		h.Res(resParams)
		return
	}

	contentType := header.Header.Get("Content-Type")
	ext, ok := utils.ImageExt(contentType)
	if !ok {
		resParams.Code = http.StatusBadRequest
		resParams.Err = errors.New("unsupported avatar content type " + contentType)
		h.Res(resParams)
		return
	}

	key := utils.NewObjectKey("avatars", uid.Hex(), ext)
	if err := utils.PutObject(h.S3Cli, ctx, config.UPLOAD_BUCKET, key, file, contentType); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	if _, err := h.MongoDB.Collection("users").UpdateOne(ctx,
		bson.M{"_id": uid},
		bson.M{"$set": bson.M{"profilePicture": key}},
	); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	resParams.ResData = &struct {
		ProfilePicture string `json:"profilePicture"`
	}{ProfilePicture: key}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
