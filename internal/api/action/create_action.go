package action

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"ecotrackapi/internal/api"
	"ecotrackapi/internal/notify"
	"ecotrackapi/pkg/config"
	"ecotrackapi/pkg/ecoscore"
	"ecotrackapi/pkg/schemas"
	"ecotrackapi/pkg/userutils"
	"ecotrackapi/pkg/utils"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"
)

func (h *Handler) CreateAction(w http.ResponseWriter, r *http.Request) {

	defer r.Body.Close()
	ctx := r.Context()
	uid := ctx.Value(api.CtxUid).(bson.ObjectID)
	resParams := &api.ResParams{W: w, R: r}

	var reqData struct {
		Type        string           `json:"type" validate:"required,actiontype"`
		Title       string           `json:"title" validate:"required,max=100"`
		Description string           `json:"description" validate:"required,max=500"`
		Points      int              `json:"points" validate:"required,min=1,max=1000"`
		Quantity    int              `json:"quantity" validate:"omitempty,min=1"`
		Impact      *ecoscore.Impact `json:"impact"`
		Location    string           `json:"location" validate:"omitempty,max=200"`
		Tags        []string         `json:"tags" validate:"omitempty,dive,max=50"`
		ProofImage  string           `json:"proofImage" validate:"omitempty,base64"`
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
	reqData.Title = strings.TrimSpace(reqData.Title)
	reqData.Description = strings.TrimSpace(reqData.Description)

	proofImage := reqData.ProofImage
	reqData.ProofImage = "" // keep base64 out of logs
	resParams.ReqData = reqData

	if err := h.Validate.Struct(&reqData); err != nil {
		resParams.Code = http.StatusBadRequest
		resParams.Err = err
		h.Res(resParams)
		return
	}

	// actiontype validator already vetted this
	actionType, _ := ecoscore.ParseActionType(reqData.Type)

	if reqData.Quantity < 1 {
		reqData.Quantity = 1
	}

	// caller-supplied explicit impact wins, otherwise derive from the
	// per-type multiplier table
	var impact ecoscore.Impact
	if reqData.Impact != nil {
		impact = *reqData.Impact
		if impact.CO2Saved < 0 || impact.MoneySaved < 0 || impact.WaterSaved < 0 ||
			impact.EnergySaved < 0 || impact.WasteReduced < 0 {
			resParams.Code = http.StatusBadRequest
			resParams.Err = errImpactNegative
			h.Res(resParams)
			return
		}
	} else {
		impact = ecoscore.ComputeImpact(actionType, reqData.Quantity)
	}

	// upload proof image if attached
	var proofKey string
	if proofImage != "" {
		imgBytes, err := base64.StdEncoding.DecodeString(proofImage)
		if err != nil || len(imgBytes) > config.MAX_PROOF_IMAGE_BYTES {
			resParams.Code = http.StatusBadRequest
			resParams.Err = err
			h.Res(resParams)
			return
		}
		contentType := http.DetectContentType(imgBytes)
		ext, ok := utils.ImageExt(contentType)
		if !ok {
			resParams.Code = http.StatusBadRequest
			resParams.Err = errProofNotImage
			h.Res(resParams)
			return
		}
		proofKey = utils.NewObjectKey("proofs", uid.Hex(), ext)
		if err := utils.PutObject(h.S3Cli, ctx, config.UPLOAD_BUCKET, proofKey, bytes.NewReader(imgBytes), contentType); err != nil {
			resParams.Code = http.StatusInternalServerError
			resParams.Err = err
			h.Res(resParams)
			return
		}
	}

	now := time.Now().UTC()
	newAction := &schemas.Action{
		Ctime:       now,
		Mtime:       now,
		User:        uid,
		Type:        actionType.String(),
		Title:       reqData.Title,
		Description: reqData.Description,
		Points:      reqData.Points,
		Impact:      impact,
		ProofImage:  proofKey,
		Location:    reqData.Location,
		Tags:        reqData.Tags,
		Date:        now,
	}
	if newAction.Tags == nil {
		newAction.Tags = []string{}
	}

	actionsCollection := h.MongoDB.Collection("actions")
	res, err := actionsCollection.InsertOne(ctx, newAction)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	newAction.Id = res.InsertedID.(bson.ObjectID)

	// credit the owner: points and level move in one atomic update
	usersCollection := h.MongoDB.Collection("users")
	user, err := userutils.ApplyPointsDelta(usersCollection, ctx, uid, newAction.Points)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	// threshold achievements, idempotent under re-runs
	earned := ecoscore.EvaluateAchievements(user.TotalPoints, user.AchievementNames())
	newAchievements, err := userutils.GrantAchievements(usersCollection, ctx, uid, earned)
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	if len(newAchievements) > 0 && user.Notifications.Email && user.Notifications.Achievements {
		if err := notify.SendAchievementEmail(h.AWSSESCli, ctx, user, newAchievements); err != nil {
			// notification failure never fails the request
			h.Logger.Warn("achievement email failed", zap.Error(err))
		}
	}

	resParams.ResData = &struct {
		Action          *schemas.Action       `json:"action"`
		NewAchievements []schemas.Achievement `json:"newAchievements"`
		Level           ecoscore.Level        `json:"level"`
		TotalPoints     int                   `json:"totalPoints"`
	}{
		Action:          newAction,
		NewAchievements: newAchievements,
		Level:           user.Level,
		TotalPoints:     user.TotalPoints,
	}
	resParams.Code = http.StatusCreated
	h.Res(resParams)

}
