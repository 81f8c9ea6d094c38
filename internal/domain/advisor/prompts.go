package advisor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ScopeMessage answers non-farming questions locally, before the
// collaborator is involved.
const ScopeMessage = `I'm a specialized AI assistant focused on helping Indian farmers with agricultural questions.

I can help you with:
- Crop planning and seasonal advice
- Expense analysis and cost optimization
- Farm equipment and machinery guidance
- Fertilizer, seed, and pesticide recommendations
- Weather and irrigation planning
- Market prices and government schemes
- Soil management and organic farming

Please ask me questions related to farming, agriculture, or your farm expenses for the best assistance!`

const adviceSystemPrompt = `You are an AI farming assistant specialized EXCLUSIVELY in Indian agriculture.

STRICT GUIDELINES:
- ONLY answer questions related to farming, agriculture, and farm management
- Focus on Indian farming conditions, climate, and practices
- Provide practical, actionable advice that Indian farmers can implement
- Use markdown formatting for better readability (lists, bold text, etc.)

CORE EXPERTISE AREAS:
- Indian climate and seasons (Kharif, Rabi, Zaid)
- Common Indian crops (rice, wheat, sugarcane, cotton, maize, etc.)
- Cost-effective farming practices and expense optimization
- Government schemes, subsidies, and support programs
- Sustainable and organic farming methods
- Soil management, irrigation, and water conservation
- Farm equipment, machinery, and technology
- Pest management and crop protection

RESPONSE FORMAT:
- Use clear headings and bullet points
- Provide specific, actionable steps
- Include approximate costs in Indian Rupees where relevant
- Mention regional variations when applicable`

func buildAdvicePrompt(question string, farm FarmContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User Question: %s\n", question)
	fmt.Fprintf(&b, "User Context:\n")
	fmt.Fprintf(&b, "User: %s\n", orNotSpecified(farm.UserName))
	fmt.Fprintf(&b, "Farm: %s\n", orNotSpecified(farm.FarmName))
	fmt.Fprintf(&b, "Location: %s\n", orNotSpecified(farm.Location))
	fmt.Fprintf(&b, "Total Expenses: ₹%.2f\n", farm.TotalExpenses)
	fmt.Fprintf(&b, "Fields: %d\n", farm.FieldCount)
	fmt.Fprintf(&b, "Suppliers: %d\n", farm.SupplierCount)
	return b.String()
}

func buildAnalysisPrompt(farm FarmContext) string {
	var b strings.Builder
	b.WriteString("Analyze this Indian farmer's expense data and provide actionable insights:\n\n")
	fmt.Fprintf(&b, "Total Expenses: ₹%.2f\n", farm.TotalExpenses)
	fmt.Fprintf(&b, "Total Farm Area: %.2f acres\n", farm.TotalAcres)
	fmt.Fprintf(&b, "Cost per Acre: ₹%.2f\n\n", farm.CostPerAcre)
	fmt.Fprintf(&b, "Category Breakdown:\n%s\n\n", toJSON(farm.CategoryBreakdown))
	fmt.Fprintf(&b, "Recent Expenses:\n%s\n\n", toJSON(farm.RecentExpenses))
	fmt.Fprintf(&b, "Farm Location: %s\n", orNotSpecified(farm.Location))
	fmt.Fprintf(&b, "Farm Name: %s\n\n", orNotSpecified(farm.FarmName))
	b.WriteString(`Provide specific, practical advice for Indian farming conditions. Focus on:
1. Cost optimization opportunities
2. Spending pattern insights
3. Seasonal recommendations
4. Input efficiency improvements`)
	return b.String()
}

func buildReportPrompt(report ReportData) string {
	var b strings.Builder
	b.WriteString("Generate a detailed expense report for this Indian farmer:\n\n")
	b.WriteString(toJSON(report))
	b.WriteString(`

Create a comprehensive report with:
1. Executive summary of spending
2. Category-wise analysis with insights
3. Monthly trends and patterns
4. Recommendations for cost optimization
5. Seasonal planning suggestions

Format as a structured report suitable for farmers.`)
	return b.String()
}

func buildForecastPrompt(season string, history map[string][]ExpenseSummary, totalAcres float64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on this farmer's historical expense data, predict upcoming seasonal expenses for %s:\n\n", season)
	fmt.Fprintf(&b, "Historical Seasonal Data:\n%s\n\n", toJSON(history))
	fmt.Fprintf(&b, "Current Season: %s\n", season)
	fmt.Fprintf(&b, "Farm Area: %.2f acres\n\n", totalAcres)
	b.WriteString(`Provide:
1. Expected expense categories for this season
2. Estimated budget requirements
3. Priority expenses to plan for
4. Cost-saving opportunities
5. Timing recommendations for key purchases`)
	return b.String()
}

func toJSON(value any) string {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(encoded)
}

func orNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return "Not specified"
	}
	return value
}
