package report

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrInvalidInput reports malformed or missing required fields in a
// supplied record. Builders fail fast with it before any layout work.
var ErrInvalidInput = errors.New("report: invalid input")

// PlayerSort orders player subsections of a group report. The default is
// ascending codepoint order by name; Arabic collation differs from Latin
// and locale-aware sorting is intentionally not attempted.
type PlayerSort func(a, b Player) bool

// ByName is the default player ordering.
func ByName(a, b Player) bool { return a.Name < b.Name }

// BuildPlayerReport assembles the document tree for a single player from
// the player record and their recorded evaluations. The most recent
// evaluation (by EvaluatedAt, then UpdatedAt) is used; with none recorded
// the report carries placeholder rows and is marked preliminary.
func BuildPlayerReport(p Player, evals []Evaluation, generatedAt time.Time) (*Document, error) {
	if err := validateTimestamp(generatedAt); err != nil {
		return nil, err
	}
	if err := validatePlayer(p); err != nil {
		return nil, err
	}
	if err := validateEvaluations(evals); err != nil {
		return nil, err
	}

	ev := latestEvaluation(p.ID, evals)

	doc := &Document{
		Title:    NewTextRun("Player Report"),
		Subtitle: NewTextRun(p.Name),
		Meta: Meta{
			GeneratedAt: generatedAt,
			Reference:   fmt.Sprintf("academyreport:player:%d", p.ID),
			Preliminary: ev == nil,
			PhotoPath:   p.PhotoPath,
		},
	}

	doc.Details = append(doc.Details, NewTextRun("Name: "+p.Name))
	if p.GroupName != "" {
		doc.Details = append(doc.Details, NewTextRun("Group: "+p.GroupName))
	}
	if p.Age > 0 {
		doc.Details = append(doc.Details, NewTextRun(fmt.Sprintf("Age: %d", p.Age)))
	}
	if p.Phone != "" {
		doc.Details = append(doc.Details, NewTextRun("Phone: "+p.Phone))
	}

	var scores map[Metric]int
	if ev != nil {
		scores = ev.Scores
	}

	for _, c := range Categories {
		doc.Sections = append(doc.Sections, categorySection(c, scores))
	}
	doc.Sections = append(doc.Sections, overallSection(ev, scores))

	doc.Footnotes = []TextRun{
		NewTextRun("رأي المدرب"),
		NewTextRun("ما يحتاج اللاعب تطويره"),
	}

	return doc, nil
}

// BuildGroupReport assembles a group document with one subsection per
// player, ordered by the supplied sort (default ByName). Every subsection
// carries the full metric row set so rows align across players regardless
// of data completeness.
func BuildGroupReport(g Group, evals []Evaluation, generatedAt time.Time, less PlayerSort) (*Document, error) {
	if err := validateTimestamp(generatedAt); err != nil {
		return nil, err
	}
	if g.Name == "" {
		return nil, fmt.Errorf("group name is required: %w", ErrInvalidInput)
	}
	for _, p := range g.Players {
		if err := validatePlayer(p); err != nil {
			return nil, err
		}
	}
	if err := validateEvaluations(evals); err != nil {
		return nil, err
	}
	if less == nil {
		less = ByName
	}

	players := make([]Player, len(g.Players))
	copy(players, g.Players)
	sort.SliceStable(players, func(i, j int) bool { return less(players[i], players[j]) })

	doc := &Document{
		Title:    NewTextRun("Group Report: " + g.Name),
		Subtitle: NewTextRun("Coach: " + g.Coach),
		Meta: Meta{
			GeneratedAt: generatedAt,
			Reference:   fmt.Sprintf("academyreport:group:%d", g.ID),
		},
	}

	for _, p := range players {
		ev := latestEvaluation(p.ID, evals)
		var scores map[Metric]int
		if ev != nil {
			scores = ev.Scores
		}
		doc.Sections = append(doc.Sections, playerSubsection(p, scores))
	}

	return doc, nil
}

// categorySection builds the row set for one evaluation category. Missing
// scores render as explicit placeholders, never omitted.
func categorySection(c Category, scores map[Metric]int) Section {
	s := Section{Heading: NewTextRun(BilingualHeading(c.Name, c.Arabic))}
	for _, m := range c.Metrics {
		s.Rows = append(s.Rows, metricRow(m, scores))
	}
	return s
}

// overallSection builds the closing section of a player report.
func overallSection(ev *Evaluation, scores map[Metric]int) Section {
	s := Section{Heading: NewTextRun(BilingualHeading("Average Level", "المستوى العام"))}
	s.Rows = append(s.Rows, Row{
		Label: NewTextRun(BilingualHeading("Average Level", "المستوى العام")),
		Value: NewTextRun(RatingFromAverage(Average(scores))),
	})
	s.Rows = append(s.Rows, metricRow(MetricAttendance, scores))

	coach := notEvaluated
	if ev != nil && ev.Coach != "" {
		coach = ev.Coach
	}
	s.Rows = append(s.Rows, Row{
		Label: NewTextRun("Coach"),
		Value: NewTextRun(coach),
	})
	if ev != nil && ev.Notes != "" {
		s.Rows = append(s.Rows, Row{
			Label: NewTextRun("Notes"),
			Value: NewTextRun(ev.Notes),
		})
	}
	return s
}

// playerSubsection builds one player's block of a group report: the full
// metric set in category order, then average and phone.
func playerSubsection(p Player, scores map[Metric]int) Section {
	s := Section{Heading: NewTextRun(p.Name)}
	for _, c := range Categories {
		for _, m := range c.Metrics {
			s.Rows = append(s.Rows, metricRow(m, scores))
		}
	}
	s.Rows = append(s.Rows, metricRow(MetricAttendance, scores))
	s.Rows = append(s.Rows, Row{
		Label: NewTextRun(BilingualHeading("Average Level", "المستوى العام")),
		Value: NewTextRun(RatingFromAverage(Average(scores))),
	})
	phone := notEvaluated
	if p.Phone != "" {
		phone = p.Phone
	}
	s.Rows = append(s.Rows, Row{
		Label: NewTextRun("Phone"),
		Value: NewTextRun(phone),
	})
	return s
}

func metricRow(m Metric, scores map[Metric]int) Row {
	value := notEvaluated
	if v, ok := scores[m]; ok {
		value = RatingLabel(v)
	}
	return Row{
		Label: NewTextRun(BilingualLabel(m)),
		Value: NewTextRun(value),
	}
}

// latestEvaluation returns the most recent evaluation for a player, or nil.
func latestEvaluation(playerID int64, evals []Evaluation) *Evaluation {
	var best *Evaluation
	for i := range evals {
		ev := &evals[i]
		if ev.PlayerID != playerID {
			continue
		}
		if best == nil ||
			ev.EvaluatedAt.After(best.EvaluatedAt) ||
			(ev.EvaluatedAt.Equal(best.EvaluatedAt) && ev.UpdatedAt.After(best.UpdatedAt)) {
			best = ev
		}
	}
	return best
}

func validateTimestamp(generatedAt time.Time) error {
	if generatedAt.IsZero() {
		return fmt.Errorf("generation timestamp is required: %w", ErrInvalidInput)
	}
	return nil
}

func validatePlayer(p Player) error {
	if p.Name == "" {
		return fmt.Errorf("player name is required: %w", ErrInvalidInput)
	}
	return nil
}

func validateEvaluations(evals []Evaluation) error {
	for _, ev := range evals {
		for m, v := range ev.Scores {
			if v < 1 || v > 5 {
				return fmt.Errorf("score %d for %q is outside 1..5: %w", v, m, ErrInvalidInput)
			}
		}
	}
	return nil
}
