package export

import (
	"html/template"
	"os"
	"sort"

	"github.com/rotisserie/eris"

	"github.com/sells-group/permit-leads/internal/model"
)

const dashboardRows = 50

var dashboardTmpl = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Contractor Leads</title>
<style>
body { font-family: -apple-system, Segoe UI, sans-serif; margin: 2rem; color: #222; }
.cards { display: flex; gap: 1rem; margin-bottom: 2rem; }
.card { background: #f4f6f8; border-radius: 8px; padding: 1rem 1.5rem; min-width: 10rem; }
.card .num { font-size: 2rem; font-weight: 700; }
.card .label { color: #667; font-size: 0.85rem; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.4rem 0.75rem; border-bottom: 1px solid #e0e4e8; }
th { background: #f4f6f8; }
.tier-very_active { color: #0a7d33; font-weight: 600; }
.tier-active { color: #2d8f5a; }
.tier-inactive, .tier-unknown { color: #999; }
</style>
</head>
<body>
<h1>Contractor Leads</h1>
<div class="cards">
  <div class="card"><div class="num">{{.Total}}</div><div class="label">Applicants</div></div>
  <div class="card"><div class="num">{{.Matched}}</div><div class="label">License Matched</div></div>
  <div class="card"><div class="num">{{.CallReady}}</div><div class="label">Call Ready</div></div>
  <div class="card"><div class="num">{{.VeryActive}}</div><div class="label">Very Active</div></div>
</div>
<table>
<thead>
<tr><th>Company</th><th>Contact</th><th>Phone</th><th>Email</th><th>Permits</th><th>Activity</th><th>Confidence</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr>
<td>{{.Company}}</td><td>{{.Person}}</td><td>{{.Phone}}</td><td>{{.Email}}</td>
<td>{{.Permits}}</td><td class="tier-{{.TierClass}}">{{.Tier}}</td><td>{{.Confidence}}</td>
</tr>
{{end}}</tbody>
</table>
</body>
</html>
`))

type dashboardData struct {
	Total      int
	Matched    int
	CallReady  int
	VeryActive int
	Rows       []dashboardRow
}

type dashboardRow struct {
	Company    string
	Person     string
	Phone      string
	Email      string
	Permits    int
	Tier       string
	TierClass  string
	Confidence string
}

// WriteDashboardHTML renders a standalone HTML dashboard with summary stat
// cards and the top applicants by permit volume.
func WriteDashboardHTML(applicants []model.EnrichedApplicant, outputPath string) error {
	data := dashboardData{Total: len(applicants)}
	for _, a := range applicants {
		if a.Match.Decision != model.MatchNone {
			data.Matched++
		}
		if a.Contact.Phone != "" && a.Contact.Email != "" {
			data.CallReady++
		}
		if a.Summary.Tier == model.TierVeryActive {
			data.VeryActive++
		}
	}

	top := make([]model.EnrichedApplicant, len(applicants))
	copy(top, applicants)
	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Summary.TotalPermits != top[j].Summary.TotalPermits {
			return top[i].Summary.TotalPermits > top[j].Summary.TotalPermits
		}
		return top[i].Summary.RawName < top[j].Summary.RawName
	})
	if len(top) > dashboardRows {
		top = top[:dashboardRows]
	}
	for _, a := range top {
		data.Rows = append(data.Rows, dashboardRow{
			Company:    a.Summary.RawName,
			Person:     a.Contact.ContactPerson,
			Phone:      a.Contact.Phone,
			Email:      a.Contact.Email,
			Permits:    a.Summary.TotalPermits,
			Tier:       a.Summary.Tier.Label(),
			TierClass:  string(a.Summary.Tier),
			Confidence: string(a.Contact.Confidence),
		})
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return eris.Wrap(err, "export: create dashboard")
	}
	defer f.Close()

	return eris.Wrap(dashboardTmpl.Execute(f, data), "export: render dashboard")
}
