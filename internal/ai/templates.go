package ai

import (
	"fmt"
	"slices"
	"strings"
)

// Category selects the domain-specific system prompt used to enhance a card
type Category string

// Known categories
const (
	CategoryGeneral          Category = "general"
	CategoryMarketing        Category = "marketing"
	CategoryArtisticCreative Category = "artistic-creative"
	CategoryCoding           Category = "coding"
	CategoryBusiness         Category = "business"
	CategoryLaw              Category = "law"
	CategoryMedicine         Category = "medicine"
	CategoryConstruction     Category = "construction"
	CategoryHospitality      Category = "hospitality"
	CategoryFinance          Category = "finance"
	CategoryPersonal         Category = "personal"
)

// template describes one category prompt
type template struct {
	role    string
	focus   []string
	example string
	avoid   string
	kind    string
}

var templates = map[Category]template{
	CategoryGeneral: {
		role: "You are an expert at improving task descriptions. Enhance the title and description to be clear, actionable, and well-structured.",
		focus: []string{
			"Making the title concise and descriptive (NOT a request to someone, but a direct task statement)",
			"Breaking down the description into clear steps or sections",
			"Adding relevant details and context",
			"Using professional but friendly tone",
		},
		kind: "tasks as direct action statements, not as requests", example: "Organize photos by date", avoid: "Can you help organize photos",
	},
	CategoryMarketing: {
		role: "You are a marketing expert. Enhance the title and description with marketing best practices.",
		focus: []string{
			"Compelling, action-oriented language (direct statements, not requests)",
			"Clear value propositions and benefits",
			"Target audience considerations",
			"Measurable goals and KPIs",
			"Brand voice consistency",
		},
		kind: "as direct action items", example: "Launch email campaign targeting millennials", avoid: "Can you help launch a campaign",
	},
	CategoryArtisticCreative: {
		role: "You are a creative director. Enhance the title and description with artistic and creative considerations.",
		focus: []string{
			"Vivid, inspiring language (direct creative direction, not requests)",
			"Creative vision and aesthetic goals",
			"Mood, tone, and style references",
			"Artistic techniques and mediums",
			"Visual and sensory details",
		},
		kind: "as direct creative briefs", example: "Design minimalist logo with earthy tones", avoid: "Help me design a logo",
	},
	CategoryCoding: {
		role: "You are a senior software engineer. Enhance the title and description with technical best practices.",
		focus: []string{
			"Clear technical requirements (direct implementation tasks, not requests to AI)",
			"Implementation approach and architecture",
			"Performance and scalability considerations",
			"Testing requirements",
			"Code quality standards",
		},
		kind: "as direct development tasks", example: "Implement user authentication with JWT", avoid: "Can you help implement authentication",
	},
	CategoryBusiness: {
		role: "You are a business consultant. Enhance the title and description with business strategy focus.",
		focus: []string{
			"Strategic objectives and ROI (direct business actions, not requests)",
			"Stakeholder considerations",
			"Risk assessment and mitigation",
			"Timeline and resource requirements",
			"Success metrics and KPIs",
		},
		kind: "as direct business initiatives", example: "Analyze Q4 sales data for growth opportunities", avoid: "Help analyze sales",
	},
	CategoryLaw: {
		role: "You are a legal professional. Enhance the title and description with legal considerations.",
		focus: []string{
			"Precise, unambiguous language (direct legal tasks, not requests)",
			"Compliance and regulatory requirements",
			"Risk factors and liabilities",
			"Documentation and evidence needs",
			"Deadlines and legal procedures",
		},
		kind: "as direct legal actions", example: "Review contract for liability clauses", avoid: "Can you review this contract",
	},
	CategoryMedicine: {
		role: "You are a medical professional. Enhance the title and description with healthcare best practices.",
		focus: []string{
			"Patient safety and care quality (direct medical tasks, not requests)",
			"Clinical protocols and standards",
			"Medical terminology accuracy",
			"Regulatory compliance (HIPAA, etc.)",
			"Evidence-based approaches",
		},
		kind: "as direct medical actions", example: "Update patient protocol for diabetes management", avoid: "Help update protocol",
	},
	CategoryConstruction: {
		role: "You are a construction project manager. Enhance the title and description with construction industry focus.",
		focus: []string{
			"Safety requirements and protocols (direct construction tasks, not requests)",
			"Materials and equipment needs",
			"Building codes and regulations",
			"Timeline and milestones",
			"Quality control measures",
		},
		kind: "as direct project tasks", example: "Install HVAC system per building code 2024", avoid: "Help install HVAC",
	},
	CategoryHospitality: {
		role: "You are a hospitality manager. Enhance the title and description with customer service excellence.",
		focus: []string{
			"Guest experience and satisfaction (direct service tasks, not requests)",
			"Service standards and quality",
			"Staff training and coordination",
			"Operational efficiency",
			"Health and safety compliance",
		},
		kind: "as direct operational tasks", example: "Train front desk staff on new check-in system", avoid: "Help train staff",
	},
	CategoryFinance: {
		role: "You are a financial analyst. Enhance the title and description with financial best practices.",
		focus: []string{
			"Financial metrics and analysis (direct financial tasks, not requests)",
			"Budget and cost considerations",
			"Compliance and regulations",
			"Risk management",
			"ROI and value creation",
		},
		kind: "as direct financial actions", example: "Prepare Q1 budget forecast with variance analysis", avoid: "Help prepare budget",
	},
	CategoryPersonal: {
		role: "You are a productivity coach. Enhance the title and description for personal task management.",
		focus: []string{
			"Clear, achievable goals (direct personal actions, not requests)",
			"Step-by-step action items",
			"Time management considerations",
			"Personal motivation and accountability",
			"Work-life balance",
		},
		kind: "as direct personal tasks", example: "Organize vacation photos by date and location", avoid: "Can you help organize photos",
	},
}

// Categories returns every known category, sorted
func Categories() []Category {
	out := make([]Category, 0, len(templates))
	for c := range templates {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Known reports whether c has its own template
func (c Category) Known() bool {
	_, ok := templates[c]
	return ok
}

// SystemPrompt returns the system prompt for a category; unknown categories
// use the general one
func SystemPrompt(c Category) string {
	tpl, ok := templates[c]
	if !ok {
		tpl = templates[CategoryGeneral]
	}

	var b strings.Builder
	b.WriteString(tpl.role)
	b.WriteString(" Focus on:\n")
	for _, f := range tpl.focus {
		b.WriteString("- ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "IMPORTANT: Write %s (e.g., %q not %q)", tpl.kind, tpl.example, tpl.avoid)
	return b.String()
}

// enhanceUserPrompt builds the user message asking for an improved card
func enhanceUserPrompt(title, description string) string {
	if strings.TrimSpace(description) == "" {
		description = "(No description provided)"
	}

	return fmt.Sprintf(`Enhance the following task card:

Title: %s
Description: %s

Please provide:
1. An improved, concise title (max 100 characters) - write as a DIRECT ACTION STATEMENT, not a request
2. An enhanced description that follows the template guidelines - use actionable, concrete language

CRITICAL: The output should be formatted as tasks/actions to DO, not requests for help.
- GOOD: "Organize vacation photos by date and location"
- BAD: "Can you help organize my vacation photos?"
- GOOD: "Implement user authentication with JWT"
- BAD: "Can you help implement authentication?"

Return ONLY a JSON object with this exact format:
{
  "title": "enhanced title here",
  "description": "enhanced description here"
}

Do not include any additional text, markdown formatting, or explanation outside the JSON object.`, title, description)
}

// promptContext lists the card fields that are set, one per line
func promptContext(req PromptRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Card Title: %s", req.Title)
	if req.Description != "" {
		fmt.Fprintf(&b, "\nCard Description: %s", req.Description)
	}
	if req.Priority != "" {
		fmt.Fprintf(&b, "\nPriority: %s", req.Priority)
	}
	if req.Attachments > 0 {
		fmt.Fprintf(&b, "\nAttachments: %d", req.Attachments)
	}
	if req.Comments > 0 {
		fmt.Fprintf(&b, "\nComments: %d", req.Comments)
	}
	if req.Assignee != "" {
		fmt.Fprintf(&b, "\nAssigned to: %s", req.Assignee)
	}
	return b.String()
}

// generateUserPrompt builds the user message asking for a coding-assistant prompt
func generateUserPrompt(req PromptRequest) string {
	return fmt.Sprintf(`You are a helpful assistant that converts task cards into clear, actionable prompts for developers using an AI coding assistant.

Based on the following card information, generate a simple, non-technical prompt that a developer could use to ask a coding assistant to build this feature. Keep it conversational and straightforward.

%s

Generate a prompt that:
1. Describes what needs to be built in simple terms
2. Includes key requirements from the card
3. Is actionable and clear
4. Is suitable for giving to a coding assistant

Just provide the prompt text, without any preamble or explanation.`, promptContext(req))
}
