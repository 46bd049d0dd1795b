package llm

import (
	"fmt"

	"github.com/George0Simion/BizzGenie/internal/domain"
	"github.com/George0Simion/BizzGenie/pkg/utils"
)

const financeSystemPrompt = `You are a senior restaurant business consultant.
You receive structured financial insights computed from the restaurant's own ledger.

Rules:
- Do NOT invent numbers. Use only the values present in the insights.
- Say clearly whether action is needed or not.
- Explain WHY the metric moved, pointing at the products or days that drove it.
- Suggest 3-5 concrete actions the owner can take this week.

Return a JSON object with exactly these keys:
{
  "summary_markdown": "short markdown summary for the owner",
  "actions": ["action 1", "action 2", "action 3"],
  "affected_metrics": ["profit", "revenue"]
}

RESPOND WITH A SINGLE VALID JSON OBJECT ONLY. NO markdown. NO ` + "```" + ` fences. NO extra commentary.`

func buildUserMessage(insights []*domain.Insight, question string) string {
	insightsJSON := utils.PrettyJson(insights)

	if question == "" {
		return fmt.Sprintf("Analyze these financial insights and tell the owner what is happening "+
			"and what to do next.\n\nINSIGHTS_JSON:\n%s", insightsJSON)
	}

	return fmt.Sprintf("The owner asked: %q\n\n"+
		"Answer the question explicitly using the data. If the data does not cover the question, say so.\n\n"+
		"INSIGHTS_JSON:\n%s", question, insightsJSON)
}
