package report

import "fmt"

// Metric identifies one evaluated skill. The set of metrics and their order
// inside each category is fixed; reports never reorder by input.
type Metric string

const (
	MetricBallControl   Metric = "Ball control"
	MetricPassing       Metric = "Passing"
	MetricDribbling     Metric = "Dribbling"
	MetricShooting      Metric = "Shooting"
	MetricUsingBothFeet Metric = "Using both feet"

	MetricSpeed     Metric = "Speed"
	MetricAgility   Metric = "Agility"
	MetricEndurance Metric = "Endurance"
	MetricStrength  Metric = "Strength"

	MetricPositioning    Metric = "Positioning"
	MetricDecisionMaking Metric = "Decision making"
	MetricGameAwareness  Metric = "Game awareness"
	MetricTeamwork       Metric = "Teamwork"

	MetricRespect       Metric = "Respect"
	MetricSportsmanship Metric = "Sportsmanship"
	MetricConfidence    Metric = "Confidence"
	MetricLeadership    Metric = "Leadership"

	MetricAttendance Metric = "Attendance and punctuality"
)

// Category groups metrics under a bilingual heading.
type Category struct {
	Name    string
	Arabic  string
	Metrics []Metric
}

// Categories is the fixed section order of a player report.
var Categories = []Category{
	{
		Name:   "Technical Skills",
		Arabic: "مهارات تقنية",
		Metrics: []Metric{
			MetricBallControl, MetricPassing, MetricDribbling,
			MetricShooting, MetricUsingBothFeet,
		},
	},
	{
		Name:   "Physical Abilities",
		Arabic: "القدرات البدنية",
		Metrics: []Metric{
			MetricSpeed, MetricAgility, MetricEndurance, MetricStrength,
		},
	},
	{
		Name:   "Technical Understanding",
		Arabic: "الفهم الفني",
		Metrics: []Metric{
			MetricPositioning, MetricDecisionMaking,
			MetricGameAwareness, MetricTeamwork,
		},
	},
	{
		Name:   "Psychological and Social",
		Arabic: "الجوانب النفسية والاجتماعية",
		Metrics: []Metric{
			MetricRespect, MetricSportsmanship,
			MetricConfidence, MetricLeadership,
		},
	},
}

// metricArabic holds the Arabic translation of each metric label.
var metricArabic = map[Metric]string{
	MetricBallControl:    "التحكم في الكرة",
	MetricPassing:        "التمرير",
	MetricDribbling:      "المراوغة",
	MetricShooting:       "التسديد",
	MetricUsingBothFeet:  "استخدام القدمين",
	MetricSpeed:          "السرعة",
	MetricAgility:        "الرشاقة",
	MetricEndurance:      "التحمل",
	MetricStrength:       "القوة",
	MetricPositioning:    "التمركز",
	MetricDecisionMaking: "اتخاذ القرار",
	MetricGameAwareness:  "الوعي بالمباراة",
	MetricTeamwork:       "العمل الجماعي",
	MetricRespect:        "الاحترام",
	MetricSportsmanship:  "الروح الرياضية",
	MetricConfidence:     "الثقة",
	MetricLeadership:     "القيادة",
	MetricAttendance:     "الانضباط والالتزام بالمواعيد",
}

// BilingualLabel returns "English (العربية)" for a metric.
func BilingualLabel(m Metric) string {
	if ar, ok := metricArabic[m]; ok {
		return fmt.Sprintf("%s (%s)", string(m), ar)
	}
	return string(m)
}

// BilingualHeading returns "English / العربية" for a section heading.
func BilingualHeading(name, arabic string) string {
	if arabic == "" {
		return name
	}
	return fmt.Sprintf("%s / %s", name, arabic)
}

// Rating labels for the 1-5 scale.
var ratingLabels = map[int]string{
	1: "Bad",
	2: "Not bad",
	3: "Good",
	4: "Very Good",
	5: "Excellent",
}

var ratingArabic = map[string]string{
	"Bad":       "سيئ",
	"Not bad":   "ليس سيئًا",
	"Good":      "جيد",
	"Very Good": "جيد جدًا",
	"Excellent": "ممتاز",
}

// notEvaluated is the placeholder shown for a metric with no recorded
// score. Placeholder rows are never omitted: group comparison tables rely
// on every section having the full metric row set.
const notEvaluated = "—"

// RatingLabel returns the bilingual label for a 1-5 score.
func RatingLabel(score int) string {
	label, ok := ratingLabels[score]
	if !ok {
		return notEvaluated
	}
	return fmt.Sprintf("%s / %s", label, ratingArabic[label])
}

// RatingFromAverage rounds an average to the nearest step, clamped to 1..5.
func RatingFromAverage(avg float64) string {
	if avg <= 0 {
		return notEvaluated
	}
	n := int(avg + 0.5)
	if n < 1 {
		n = 1
	}
	if n > 5 {
		n = 5
	}
	return RatingLabel(n)
}

// Average returns the mean of the recorded scores, or 0 when none exist.
// Only the fixed metric set participates, in its defined order, so the
// result does not depend on map iteration.
func Average(scores map[Metric]int) float64 {
	sum, n := 0, 0
	for _, c := range Categories {
		for _, m := range c.Metrics {
			if v, ok := scores[m]; ok {
				sum += v
				n++
			}
		}
	}
	if v, ok := scores[MetricAttendance]; ok {
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
