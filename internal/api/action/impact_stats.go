package action

import (
	"net/http"

	"ecotrackapi/internal/api"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type impactTotals struct {
	TotalActions      int     `bson:"totalActions" json:"totalActions"`
	TotalPoints       int     `bson:"totalPoints" json:"totalPoints"`
	TotalCO2Saved     float64 `bson:"totalCO2Saved" json:"totalCO2Saved"`
	TotalMoneySaved   float64 `bson:"totalMoneySaved" json:"totalMoneySaved"`
	TotalWaterSaved   float64 `bson:"totalWaterSaved" json:"totalWaterSaved"`
	TotalEnergySaved  float64 `bson:"totalEnergySaved" json:"totalEnergySaved"`
	TotalWasteReduced float64 `bson:"totalWasteReduced" json:"totalWasteReduced"`
}

type typeBreakdown struct {
	Type   string `bson:"_id" json:"type"`
	Count  int    `bson:"count" json:"count"`
	Points int    `bson:"points" json:"points"`
}

type monthlyProgress struct {
	Period struct {
		Year  int `bson:"year" json:"year"`
		Month int `bson:"month" json:"month"`
	} `bson:"_id" json:"period"`
	Actions  int     `bson:"actions" json:"actions"`
	Points   int     `bson:"points" json:"points"`
	CO2Saved float64 `bson:"co2Saved" json:"co2Saved"`
}

// ImpactStats aggregates the caller's environmental impact: lifetime totals,
// a by-type breakdown, and the last twelve months of progress.
func (h *Handler) ImpactStats(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	uid := ctx.Value(api.CtxUid).(bson.ObjectID)
	resParams := &api.ResParams{W: w, R: r}

	actionsCollection := h.MongoDB.Collection("actions")

	// lifetime totals
	totalsCursor, err := actionsCollection.Aggregate(ctx, mongoPipeline(
		bson.M{"$match": bson.M{"user": uid}},
		bson.M{"$group": bson.M{
			"_id":               nil,
			"totalActions":      bson.M{"$sum": 1},
			"totalPoints":       bson.M{"$sum": "$points"},
			"totalCO2Saved":     bson.M{"$sum": "$impact.co2Saved"},
			"totalMoneySaved":   bson.M{"$sum": "$impact.moneySaved"},
			"totalWaterSaved":   bson.M{"$sum": "$impact.waterSaved"},
			"totalEnergySaved":  bson.M{"$sum": "$impact.energySaved"},
			"totalWasteReduced": bson.M{"$sum": "$impact.wasteReduced"},
		}},
	))
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	var totalsRows []impactTotals
	if err := totalsCursor.All(ctx, &totalsRows); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	var totals impactTotals
	if len(totalsRows) > 0 {
		totals = totalsRows[0]
	}

	// by-type breakdown
	typeCursor, err := actionsCollection.Aggregate(ctx, mongoPipeline(
		bson.M{"$match": bson.M{"user": uid}},
		bson.M{"$group": bson.M{
			"_id":    "$type",
			"count":  bson.M{"$sum": 1},
			"points": bson.M{"$sum": "$points"},
		}},
		bson.M{"$sort": bson.M{"points": -1}},
	))
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	byType := []typeBreakdown{}
	if err := typeCursor.All(ctx, &byType); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	// last 12 months, newest first from the query then reversed to
	// chronological for the chart
	monthlyCursor, err := actionsCollection.Aggregate(ctx, mongoPipeline(
		bson.M{"$match": bson.M{"user": uid}},
		bson.M{"$group": bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$date"},
				"month": bson.M{"$month": "$date"},
			},
			"actions":  bson.M{"$sum": 1},
			"points":   bson.M{"$sum": "$points"},
			"co2Saved": bson.M{"$sum": "$impact.co2Saved"},
		}},
		bson.M{"$sort": bson.M{"_id.year": -1, "_id.month": -1}},
		bson.M{"$limit": 12},
	))
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	monthly := []monthlyProgress{}
	if err := monthlyCursor.All(ctx, &monthly); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	for i, j := 0, len(monthly)-1; i < j; i, j = i+1, j-1 {
		monthly[i], monthly[j] = monthly[j], monthly[i]
	}

	resParams.ResData = &struct {
		TotalStats      impactTotals      `json:"totalStats"`
		ActionsByType   []typeBreakdown   `json:"actionsByType"`
		MonthlyProgress []monthlyProgress `json:"monthlyProgress"`
	}{
		TotalStats:      totals,
		ActionsByType:   byType,
		MonthlyProgress: monthly,
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}

func mongoPipeline(stages ...bson.M) bson.A {
	p := make(bson.A, len(stages))
	for i, s := range stages {
		p[i] = s
	}
	return p
}
