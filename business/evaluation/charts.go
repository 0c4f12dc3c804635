package evaluation

import (
	"fmt"

	"knowingYou/domain"
)

// ChartKind identifies one dashboard chart. Each kind is bound to its title,
// trace names and point extractor once, at package init, instead of being
// re-dispatched per data point on a string key.
type ChartKind int

const (
	ChartVideosWatched ChartKind = iota
	ChartLikeRateBySource
	ChartDislikeRateBySource
	ChartLikeDislikeRate
	ChartInteractionRate
	ChartSubscriptions
)

// Trace is one bar series of a grouped comparison chart.
type Trace struct {
	X    []string  `json:"x"`
	Y    []float64 `json:"y"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

type Chart struct {
	Title  string  `json:"title"`
	Traces []Trace `json:"traces"`
}

// RMSETable feeds the per-user accuracy table. Users without watch-time
// samples have no score and are left out entirely rather than shown as zero.
type RMSETable struct {
	UserIDs []string  `json:"userIds"`
	Scores  []float64 `json:"scores"`
}

// Report is the full presentation payload: the six comparison charts plus
// the RMSE table.
type Report struct {
	Charts    []Chart   `json:"charts"`
	RMSETable RMSETable `json:"rmseTable"`
}

type chartDef struct {
	title  string
	names  []string
	points func(domain.EvaluationSummary) []float64
}

var chartDefs = map[ChartKind]chartDef{
	ChartVideosWatched: {
		title: "Source of the videos watched",
		names: []string{"YouTube Recommendations/Search/Other", "KnowingYou Recommendations"},
		points: func(s domain.EvaluationSummary) []float64 {
			return []float64{float64(s.NonKyRecommendations), float64(s.KyRecommendations)}
		},
	},
	ChartLikeRateBySource: {
		title: "Like rate by source",
		names: []string{"Other Source", "KnowingYou Recommendation"},
		points: func(s domain.EvaluationSummary) []float64 {
			return []float64{
				ratio(s.NonKyRecLikes, s.LikesDuringViewing),
				ratio(s.KyRecLikes, s.LikesDuringViewing),
			}
		},
	},
	ChartDislikeRateBySource: {
		title: "Dislike rate by source",
		names: []string{"Other Source", "KnowingYou Recommendation"},
		points: func(s domain.EvaluationSummary) []float64 {
			return []float64{
				ratio(s.NonKyRecDislikes, s.DislikesDuringViewing),
				ratio(s.KyRecDislikes, s.DislikesDuringViewing),
			}
		},
	},
	ChartLikeDislikeRate: {
		title: "Like/dislike rate per user",
		names: []string{"Like rate", "Dislike rate"},
		points: func(s domain.EvaluationSummary) []float64 {
			total := s.Likes + s.Dislikes
			return []float64{ratio(s.Likes, total), ratio(s.Dislikes, total)}
		},
	},
	ChartInteractionRate: {
		title: "Rate the user interacted with video using like/dislike",
		names: []string{""},
		points: func(s domain.EvaluationSummary) []float64 {
			return []float64{ratio(s.Likes+s.Dislikes, s.TotalVideosWatched)}
		},
	},
	ChartSubscriptions: {
		title: "Number of subscriptions while using the extension",
		names: []string{"Other Source Subscription", "KnowingYou Subscription"},
		points: func(s domain.EvaluationSummary) []float64 {
			return []float64{float64(s.NonKyRecSubscriptions), float64(s.KyRecSubscriptions)}
		},
	},
}

var allChartKinds = []ChartKind{
	ChartVideosWatched,
	ChartLikeRateBySource,
	ChartDislikeRateBySource,
	ChartLikeDislikeRate,
	ChartInteractionRate,
	ChartSubscriptions,
}

// BuildChart renders one chart over the summary list, with users labelled
// user1..userN in input order.
func BuildChart(kind ChartKind, summaries []domain.EvaluationSummary) Chart {
	def := chartDefs[kind]

	traces := make([]Trace, len(def.names))
	for i, name := range def.names {
		traces[i] = Trace{X: []string{}, Y: []float64{}, Name: name, Type: "bar"}
	}

	for n, summary := range summaries {
		label := fmt.Sprintf("user%d", n+1)
		values := def.points(summary)
		for i := range traces {
			traces[i].X = append(traces[i].X, label)
			traces[i].Y = append(traces[i].Y, values[i])
		}
	}

	return Chart{Title: def.title, Traces: traces}
}

// BuildRMSETable scores every user that produced at least one watch-time
// sample. Users with empty watch data are skipped, not reported as zero.
func BuildRMSETable(summaries []domain.EvaluationSummary) RMSETable {
	table := RMSETable{UserIDs: []string{}, Scores: []float64{}}

	for _, summary := range summaries {
		result := RMSE(summary.WatchData)
		if !result.Calculated {
			continue
		}

		table.UserIDs = append(table.UserIDs, summary.UserID)
		table.Scores = append(table.Scores, result.Value)
	}

	return table
}

// BuildReport assembles the full dashboard payload.
func BuildReport(summaries []domain.EvaluationSummary) Report {
	charts := make([]Chart, 0, len(allChartKinds))
	for _, kind := range allChartKinds {
		charts = append(charts, BuildChart(kind, summaries))
	}

	return Report{
		Charts:    charts,
		RMSETable: BuildRMSETable(summaries),
	}
}

func ratio(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0
	}

	return float64(numerator) / float64(denominator)
}
