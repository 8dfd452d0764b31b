package services

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// progressPersona is the fixed system role for every narrative generation
// call.
const progressPersona = "You are a pedagogical B1-exam expert. You assess spoken and written " +
	"dialog exercises of language learners preparing for the B1 level and you write concise, " +
	"encouraging progress summaries for their teachers."

// progressTemperature is the fixed sampling temperature for progress
// narratives.
const progressTemperature = 0.4

// buildInitialProgressPrompt asks for the first narrative of a
// (class, participant, topic) triple. No prior state exists, so there is no
// development section.
func buildInitialProgressPrompt(topicID, difficultyLevel string, scoreTotal, maxScore float64, analysisJSON []byte) string {
	return fmt.Sprintf(
		"A participant has completed their first B1 dialog exercise on the topic %q at difficulty %q.\n"+
			"They scored %s out of %s.\n\n"+
			"Detailed result analysis:\n%s\n\n"+
			"Write an initial progress summary for the teacher with the sections: strengths, "+
			"weaknesses, recommendations. Keep the whole summary under roughly 200 words.",
		topicID, difficultyLevel,
		formatScore(scoreTotal), formatScore(maxScore),
		prettyJSON(analysisJSON),
	)
}

// buildUpdateProgressPrompt embeds the prior narrative verbatim so the
// generator can carry the participant's history forward; the data layer only
// ever stores the rewritten result.
func buildUpdateProgressPrompt(topicID, difficultyLevel string, scoreTotal, maxScore float64, analysisJSON []byte, priorSummary string) string {
	return fmt.Sprintf(
		"A participant has completed another B1 dialog exercise on the topic %q at difficulty %q.\n"+
			"They scored %s out of %s.\n\n"+
			"Their progress summary so far:\n%s\n\n"+
			"Detailed result analysis of the new exercise:\n%s\n\n"+
			"Write an updated progress summary for the teacher with the sections: development, "+
			"strengths, weaknesses, recommendations. Keep the whole summary under roughly 200 words.",
		topicID, difficultyLevel,
		formatScore(scoreTotal), formatScore(maxScore),
		priorSummary,
		prettyJSON(analysisJSON),
	)
}

func formatScore(v float64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// prettyJSON re-indents the raw analysis payload; if the payload is not valid
// JSON it is embedded as-is.
func prettyJSON(raw []byte) string {
	if len(raw) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}
