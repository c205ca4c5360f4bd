package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"ecotrackapi/pkg/schemas"
	"ecotrackapi/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Logger    *zap.Logger
	Validate  *validator.Validate
	MongoDB   *mongo.Database
	RedisCli  *redis.Client
	S3Cli     *s3.Client
	AWSSESCli *ses.Client
}

type ResParams struct {
	W       http.ResponseWriter
	R       *http.Request
	Code    int
	Err     error
	ReqData any // for logs
	ResData any
}

type ctxKey string

const (
	CtxUid   ctxKey = "uid"
	CtxAdmin ctxKey = "adminUser"
)

func (h *Handler) AuthMiddleware(f http.HandlerFunc) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {
		resParams := &ResParams{W: w, R: r}
		authToken, err := utils.ValidateAuthToken(r)
		if err != nil {
			resParams.Err = err
			resParams.Code = http.StatusUnauthorized
			h.Res(resParams)
			return
		}
		uid, err := authToken.GetUidObjectId()
		if err != nil {
			resParams.Err = err
			resParams.Code = http.StatusInternalServerError
			h.Res(resParams)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUid, uid)
		f(w, r.WithContext(ctx))
	}

}

// AdminMiddleware loads the acting user and gates on the admin flag. The
// loaded user rides along in context so admin handlers don't refetch it.
func (h *Handler) AdminMiddleware(f http.HandlerFunc) http.HandlerFunc {

	return h.AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		resParams := &ResParams{W: w, R: r}
		ctx := r.Context()
		uid := ctx.Value(CtxUid).(bson.ObjectID)

		var user schemas.User
		err := h.MongoDB.Collection("users").FindOne(ctx, bson.M{
			"_id":      uid,
			"isActive": true,
		}).Decode(&user)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				resParams.Code = http.StatusForbidden
			} else {
				resParams.Code = http.StatusInternalServerError
			}
			resParams.Err = err
			h.Res(resParams)
			return
		}
		if !user.IsAdmin {
			resParams.Err = errors.New("admin rights required")
			resParams.Code = http.StatusForbidden
			h.Res(resParams)
			return
		}

		ctx = context.WithValue(ctx, CtxAdmin, &user)
		f(w, r.WithContext(ctx))
	})

}

func (h *Handler) Res(params *ResParams) {

	if params.Err != nil && errors.Is(params.Err, context.Canceled) {
		return
	}

	pc, file, line, ok := runtime.Caller(1)
	var caller string
	if !ok {
		caller = "unknown"
	}
	fn := runtime.FuncForPC(pc)
	caller = fmt.Sprintf("%s:%d (%s)", file, line, fn.Name())

	// handle logging
	if params.Code >= 500 {
		h.Logger.Error("Error at "+caller,
			zap.Error(params.Err),
			zap.Any("request_data", params.ReqData),
		)
	} else if params.Code >= 400 {
		h.Logger.Warn("Warning at "+caller,
			zap.Error(params.Err),
			zap.Any("request_data", params.ReqData),
		)
	}

	render.Status(params.R, params.Code)
	render.JSON(params.W, params.R, params.ResData)

}
