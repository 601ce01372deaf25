package respond

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rcliao/gamebot/internal/model"
)

var funcs = template.FuncMap{
	"inc":       func(i int) int { return i + 1 },
	"title":     title,
	"rating":    formatRating,
	"platforms": joinPlatforms,
	"join":      func(s []string) string { return strings.Join(s, ", ") },
}

const itemBlock = `{{define "item"}}{{inc .Index}}. {{.Name}} ({{.Year}})
   📱 Platforms: {{platforms .Platforms}}
   ⭐ Rating: {{rating .Rating}}/10
   🎭 Genre: {{title .Category}}
   ⏱️ Playtime: {{title .Length}}
   📝 {{.Description}}

{{end}}`

const recommendationTmpl = `{{define "recommendation"}}🎮 Game Recommendations for You:

{{range .Items}}{{template "item" .}}{{end}}Would you like more details about any of these games or different recommendations? 🎮{{end}}`

const platformTmpl = `{{define "platform"}}🎮 Great {{.Platform}} Games:

{{range .Items}}{{template "item" .}}{{end}}{{.Platform}} is an excellent gaming platform! Would you like detailed info about any of these games? 🎮{{end}}`

const genreTmpl = `{{define "genre"}}🎮 {{title .Category}} Games You'll Love:

{{range .Items}}{{template "item" .}}{{end}}{{title .Category}} games offer amazing experiences! Want to know more about any specific game? 🎮{{end}}`

const cardTmpl = `{{define "card"}}🎮 {{.Name}} ({{.Year}})

📱 Platforms: {{platforms .Platforms}}
⭐ Rating: {{rating .Rating}}/10
🎭 Genre: {{title .Category}}
⏱️ Playtime: {{title .Length}}
🏷️ Features: {{join .Features}}

📝 Description: {{.Description}}

Would you like recommendations for similar games? 🎮{{end}}`

const reviewTmpl = `{{define "review"}}🎮 {{.Name}} Review:

⭐ Overall Rating: {{rating .Rating}}/10

{{.Verdict}}

📝 Description: {{.Description}}
🎭 Genre: {{title .Category}}
📱 Platforms: {{platforms .Platforms}}

Would you like recommendations for similar games? 🎮{{end}}`

var templates = template.Must(template.New("respond").Funcs(funcs).Parse(
	itemBlock + recommendationTmpl + platformTmpl + genreTmpl + cardTmpl + reviewTmpl,
))

// listItem is an entry with its position in a numbered list.
type listItem struct {
	model.Entry
	Index int
}

func numbered(entries []model.Entry) []listItem {
	out := make([]listItem, len(entries))
	for i, e := range entries {
		out[i] = listItem{Entry: e, Index: i}
	}
	return out
}

func render(name string, data any) string {
	var b strings.Builder
	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("template %s: %v", name, err)
	}
	return b.String()
}

func title(v any) string {
	return cases.Title(language.English).String(fmt.Sprint(v))
}

// formatRating prints the shortest exact form with at least one decimal: 9 -> "9.0".
func formatRating(r float64) string {
	s := strconv.FormatFloat(r, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func joinPlatforms(ps []model.Platform) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}
