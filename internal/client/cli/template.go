package cli

import "text/template"

// gameView плоское представление раунда для шаблона
type gameView struct {
	GameID       string
	CourseName   string
	Hole         int
	QuarterValue int
	Finalized    bool
	PendingSync  bool
	Players      []playerView
}

type playerView struct {
	Name       string
	Strokes    int
	Quarters   int
	Settlement string
}

const gameTemplateText = `
=== Round Details ===

Course:  {{.CourseName}}
ID:      {{.GameID}}
Hole:    {{.Hole}}
Quarter: {{.QuarterValue}} cents
{{- if .Finalized}}
Status:  finalized
{{- else}}
Status:  in progress
{{- end}}

Players:
{{- range .Players}}
  {{printf "%-16s" .Name}} strokes {{printf "%3d" .Strokes}}   quarters {{printf "%+3d" .Quarters}}   {{.Settlement}}
{{- end}}
{{- if .PendingSync}}

Note: local changes are still waiting to sync.
{{- end}}
`

var gameTemplate = template.Must(template.New("game").Parse(gameTemplateText))

// newGameView собирает представление раунда из снапшота.
// Числа после JSON приходят как float64, toInt приводит оба варианта.
func newGameView(gameID string, state map[string]any, pendingSync bool) gameView {
	quarterValue := toInt(state["quarter_value"])

	view := gameView{
		GameID:       gameID,
		CourseName:   stringFromState(state, "course_name"),
		Hole:         toInt(state["hole"]),
		QuarterValue: quarterValue,
		PendingSync:  pendingSync,
	}
	if finalized, ok := state["finalized"].(bool); ok {
		view.Finalized = finalized
	}

	for _, player := range playersFromState(state) {
		name, _ := player["name"].(string)
		quarters := toInt(player["quarters"])
		view.Players = append(view.Players, playerView{
			Name:       name,
			Strokes:    toInt(player["strokes"]),
			Quarters:   quarters,
			Settlement: formatCents(quarters * quarterValue),
		})
	}

	return view
}
