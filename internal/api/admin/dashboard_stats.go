package admin

import (
	"net/http"
	"time"

	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/ecoscore"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type facetCount []struct {
	Count int `bson:"count"`
}

func (f facetCount) value() int {
	if len(f) > 0 {
		return f[0].Count
	}
	return 0
}

type typeCount struct {
	Type  string `bson:"_id" json:"type"`
	Count int    `bson:"count" json:"count"`
}

type monthlyCount struct {
	Period struct {
		Year  int `bson:"year" json:"year"`
		Month int `bson:"month" json:"month"`
	} `bson:"_id" json:"period"`
	NewUsers int `bson:"newUsers" json:"newUsers"`
}

type userCounts struct {
	Total        int `json:"total"`
	Active       int `json:"active"`
	Inactive     int `json:"inactive"`
	Admins       int `json:"admins"`
	NewThisMonth int `json:"newThisMonth"`
}

type actionCounts struct {
	Total      int         `json:"total"`
	Verified   int         `json:"verified"`
	Unverified int         `json:"unverified"`
	ThisMonth  int         `json:"thisMonth"`
	ByType     []typeCount `json:"byType"`
}

type impactTotals struct {
	TotalCO2Saved     float64 `bson:"totalCO2Saved" json:"totalCO2Saved"`
	TotalMoneySaved   float64 `bson:"totalMoneySaved" json:"totalMoneySaved"`
	TotalWaterSaved   float64 `bson:"totalWaterSaved" json:"totalWaterSaved"`
	TotalEnergySaved  float64 `bson:"totalEnergySaved" json:"totalEnergySaved"`
	TotalWasteReduced float64 `bson:"totalWasteReduced" json:"totalWasteReduced"`
}

type dashboardStats struct {
	Users         userCounts     `json:"users"`
	Actions       actionCounts   `json:"actions"`
	Impact        impactTotals   `json:"impact"`
	MonthlyGrowth []monthlyCount `json:"monthlyGrowth"`
}

// DashboardStats backs the admin overview: user counts by status, action
// counts by verification state, community impact totals, and a 12-month
// signup growth series.
func (h *Handler) DashboardStats(w http.ResponseWriter, r *http.Request) {

	ctx := r.Context()
	resParams := &api.ResParams{W: w, R: r}

	monthStart, _ := ecoscore.MonthWindow(time.Now())

	usersCollection := h.MongoDB.Collection("users")
	actionsCollection := h.MongoDB.Collection("actions")

	// user counts in one $facet pass
	userCursor, err := usersCollection.Aggregate(ctx, bson.A{
		bson.M{"$facet": bson.M{
			"total":    bson.A{bson.M{"$count": "count"}},
			"active":   bson.A{bson.M{"$match": bson.M{"isActive": true}}, bson.M{"$count": "count"}},
			"inactive": bson.A{bson.M{"$match": bson.M{"isActive": false}}, bson.M{"$count": "count"}},
			"admins":   bson.A{bson.M{"$match": bson.M{"isAdmin": true}}, bson.M{"$count": "count"}},
			"newThisMonth": bson.A{
				bson.M{"$match": bson.M{"ctime": bson.M{"$gte": monthStart}}},
				bson.M{"$count": "count"},
			},
		}},
	})
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	var userFacets []struct {
		Total        facetCount `bson:"total"`
		Active       facetCount `bson:"active"`
		Inactive     facetCount `bson:"inactive"`
		Admins       facetCount `bson:"admins"`
		NewThisMonth facetCount `bson:"newThisMonth"`
	}
	if err := userCursor.All(ctx, &userFacets); err != nil || len(userFacets) == 0 {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	// action counts in one $facet pass
	actionCursor, err := actionsCollection.Aggregate(ctx, bson.A{
		bson.M{"$facet": bson.M{
			"total":      bson.A{bson.M{"$count": "count"}},
			"verified":   bson.A{bson.M{"$match": bson.M{"isVerified": true}}, bson.M{"$count": "count"}},
			"unverified": bson.A{bson.M{"$match": bson.M{"isVerified": false}}, bson.M{"$count": "count"}},
			"thisMonth": bson.A{
				bson.M{"$match": bson.M{"ctime": bson.M{"$gte": monthStart}}},
				bson.M{"$count": "count"},
			},
			"byType": bson.A{
				bson.M{"$group": bson.M{"_id": "$type", "count": bson.M{"$sum": 1}}},
			},
		}},
	})
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	var actionFacets []struct {
		Total      facetCount  `bson:"total"`
		Verified   facetCount  `bson:"verified"`
		Unverified facetCount  `bson:"unverified"`
		ThisMonth  facetCount  `bson:"thisMonth"`
		ByType     []typeCount `bson:"byType"`
	}
	if err := actionCursor.All(ctx, &actionFacets); err != nil || len(actionFacets) == 0 {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}

	// community-wide impact totals
	impactCursor, err := actionsCollection.Aggregate(ctx, bson.A{
		bson.M{"$group": bson.M{
			"_id":               nil,
			"totalCO2Saved":     bson.M{"$sum": "$impact.co2Saved"},
			"totalMoneySaved":   bson.M{"$sum": "$impact.moneySaved"},
			"totalWaterSaved":   bson.M{"$sum": "$impact.waterSaved"},
			"totalEnergySaved":  bson.M{"$sum": "$impact.energySaved"},
			"totalWasteReduced": bson.M{"$sum": "$impact.wasteReduced"},
		}},
	})
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	var impactRows []impactTotals
	if err := impactCursor.All(ctx, &impactRows); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	var impact impactTotals
	if len(impactRows) > 0 {
		impact = impactRows[0]
	}

	// signup growth, newest 12 months, returned chronologically
	growthCursor, err := usersCollection.Aggregate(ctx, bson.A{
		bson.M{"$group": bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$ctime"},
				"month": bson.M{"$month": "$ctime"},
			},
			"newUsers": bson.M{"$sum": 1},
		}},
		bson.M{"$sort": bson.M{"_id.year": -1, "_id.month": -1}},
		bson.M{"$limit": 12},
	})
	if err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	growth := []monthlyCount{}
	if err := growthCursor.All(ctx, &growth); err != nil {
		resParams.Code = http.StatusInternalServerError
		resParams.Err = err
		h.Res(resParams)
		return
	}
	for i, j := 0, len(growth)-1; i < j; i, j = i+1, j-1 {
		growth[i], growth[j] = growth[j], growth[i]
	}

	uf := userFacets[0]
	af := actionFacets[0]

	resParams.ResData = &dashboardStats{
		Users: userCounts{
			Total:        uf.Total.value(),
			Active:       uf.Active.value(),
			Inactive:     uf.Inactive.value(),
			Admins:       uf.Admins.value(),
			NewThisMonth: uf.NewThisMonth.value(),
		},
		Actions: actionCounts{
			Total:      af.Total.value(),
			Verified:   af.Verified.value(),
			Unverified: af.Unverified.value(),
			ThisMonth:  af.ThisMonth.value(),
			ByType:     af.ByType,
		},
		Impact:        impact,
		MonthlyGrowth: growth,
	}
	resParams.Code = http.StatusOK
	h.Res(resParams)

}
