package groq

import (
	"text/template"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday-predictor/internal/domain/prediction"
	"github.com/valyala/bytebufferpool"
)

var promptTemplate = template.Must(template.New("prediction").Parse(`Analyze the following football match and give a concise prediction with these key facts:

- **League**: {{.League}}
- **Teams**: {{.HomeTeam}} (Position {{.HomePosition}}) vs {{.AwayTeam}} (Position {{.AwayPosition}})

### Reply only with:
**Favourite team**: [Team name]
**Win probability**: [Percentage]%
**Both teams to score probability**: [Percentage]%
**Over 1.5 goals probability**: [Percentage]%
**Expected corners**: [Number]
**Recommended odds**: [Numeric value]

Reply strictly in this format, with no extra explanation or long analysis.
`))

func renderPrompt(fixture prediction.Fixture) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := promptTemplate.Execute(buf, fixture); err != nil {
		return "", crerr.Wrap(err, "render prediction prompt")
	}
	return buf.String(), nil
}
