package mcp

import (
	"encoding/json"

	"github.com/HazemIbrahim256/academyreport/fonts"
	"github.com/HazemIbrahim256/academyreport/report"
)

// RegisterDefaultResources adds the rendering status resources to the
// server.
func RegisterDefaultResources(s *Server) {
	s.AddResource(Resource{
		URI:         "fonts://status",
		Name:        "Font Status",
		Description: "The font the renderer resolved for this process: family, whether it is the built-in fallback, and whether Arabic rendering is degraded.",
		MIMEType:    "application/json",
		Handler:     handleFontStatusResource,
	})

	s.AddResource(Resource{
		URI:         "report://metrics",
		Name:        "Evaluation Metric Catalog",
		Description: "The fixed evaluation categories, their bilingual metric labels, and the 1-5 rating scale used in reports.",
		MIMEType:    "application/json",
		Handler:     handleMetricsResource,
	})
}

func handleFontStatusResource(uri string) ([]ResourceContent, error) {
	f := fonts.Resolve()
	info := map[string]interface{}{
		"family":   f.Family,
		"builtin":  f.Core(),
		"degraded": f.Degraded,
	}

	jsonBytes, _ := json.MarshalIndent(info, "", "  ")
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "application/json",
		Text:     string(jsonBytes),
	}}, nil
}

func handleMetricsResource(uri string) ([]ResourceContent, error) {
	categories := make([]map[string]interface{}, 0, len(report.Categories))
	for _, c := range report.Categories {
		metrics := make([]map[string]string, 0, len(c.Metrics))
		for _, m := range c.Metrics {
			metrics = append(metrics, map[string]string{
				"metric": string(m),
				"label":  report.BilingualLabel(m),
			})
		}
		categories = append(categories, map[string]interface{}{
			"name":    c.Name,
			"arabic":  c.Arabic,
			"metrics": metrics,
		})
	}

	ratings := make([]map[string]interface{}, 0, 5)
	for score := 1; score <= 5; score++ {
		ratings = append(ratings, map[string]interface{}{
			"score": score,
			"label": report.RatingLabel(score),
		})
	}

	info := map[string]interface{}{
		"categories": categories,
		"attendance": map[string]string{
			"metric": string(report.MetricAttendance),
			"label":  report.BilingualLabel(report.MetricAttendance),
		},
		"ratings": ratings,
	}

	jsonBytes, _ := json.MarshalIndent(info, "", "  ")
	return []ResourceContent{{
		URI:      uri,
		MIMEType: "application/json",
		Text:     string(jsonBytes),
	}}, nil
}
