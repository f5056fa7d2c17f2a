package prompt

import (
	"fmt"
	"strings"

	"github.com/xlhuang/ai-radar/internal/domain/profile"
)

// SystemPrompt pins the scoring rubric and the JSON schema of the reply.
// The response-format flag on the API call enforces JSON, but the schema and
// ranges still live here.
func SystemPrompt() string {
	return `You are a senior technical recruiter and career development advisor with extensive talent-assessment experience.
Analyze the user's answers along four dimensions: innovation, collaboration, leadership, tech acumen.

Scoring criteria:
- innovation: original thinking, problem solving, turning ideas into results
- collaboration: teamwork, communication, collective awareness
- leadership: decision making, ownership, influence
- tech_acumen: technical understanding, learning speed, foresight

Respond with exactly one JSON object in the following format and nothing else (no markdown, no commentary):
{
  "scores": {
    "innovation": <integer 1-100>,
    "collaboration": <integer 1-100>,
    "leadership": <integer 1-100>,
    "tech_acumen": <integer 1-100>
  },
  "analysis": "<100-150 characters of encouraging prose highlighting strengths>",
  "golden_sentence": "<one short slogan-style sentence summarizing the profile>"
}`
}

// UserPrompt embeds the nickname (optional) and the four answers verbatim.
func UserPrompt(nickname string, in profile.Inputs) string {
	var b strings.Builder
	b.WriteString("Analyze the following user:\n\n")
	if strings.TrimSpace(nickname) != "" {
		fmt.Fprintf(&b, "Nickname: %s\n\n", nickname)
	}
	fmt.Fprintf(&b, "Innovation answer:\n%s\n\n", in.Innovation)
	fmt.Fprintf(&b, "Collaboration answer:\n%s\n\n", in.Collaboration)
	fmt.Fprintf(&b, "Leadership answer:\n%s\n\n", in.Leadership)
	fmt.Fprintf(&b, "Tech acumen answer:\n%s\n\n", in.TechAcumen)
	b.WriteString("Analyze these answers and respond with the JSON per schema.")
	return b.String()
}
