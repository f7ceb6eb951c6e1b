package etcanvas

// SevenStepPitchFramework 七步法商业提案框架，作为所有画布生成提示词的锚定文本
const SevenStepPitchFramework = `
The 7-Step Pitch Framework structures a persuasive business case:

1. **Hook/Problem Statement**: Capture attention with a compelling problem or opportunity.
   - What is the pain point or opportunity?
   - Why does it matter now?

2. **Solution Overview**: Present your solution clearly and concisely.
   - What is your proposed solution?
   - How does it address the problem?

3. **Value Proposition**: Articulate the unique value and benefits.
   - What makes this solution unique?
   - What are the key benefits for stakeholders?

4. **Market Opportunity**: Demonstrate the market size and potential.
   - What is the total addressable market?
   - What is the growth trajectory?

5. **Business Model**: Explain how value translates to revenue.
   - How will this generate revenue?
   - What are the key financial metrics?

6. **Traction/Validation**: Show evidence of progress and validation.
   - What milestones have been achieved?
   - What proof points exist?

7. **Ask/Call to Action**: Clear request and next steps.
   - What resources are needed?
   - What are the specific asks?
`

// BuildingBlock 画布构建块定义（与七步法框架对齐）
type BuildingBlock struct {
	Name        string   `json:"name"`
	PitchStep   int      `json:"pitch_step"`
	Description string   `json:"description"`
	Prompts     []string `json:"prompts"`
}

// blockIDs 画布块的固定顺序（generate-all 按此顺序生成）
var blockIDs = []string{
	"problem_statement",
	"solution_overview",
	"value_proposition",
	"market_opportunity",
	"financial_projections",
	"risk_analysis",
	"implementation_plan",
	"traction_validation",
	"team_resources",
	"call_to_action",
	"executive_summary",
	"conclusion",
}

var buildingBlocks = map[string]BuildingBlock{
	"problem_statement": {
		Name:        "Problem Statement",
		PitchStep:   1,
		Description: "Define the problem or opportunity being addressed",
		Prompts: []string{
			"What specific problem are you solving?",
			"Who experiences this problem?",
			"What is the cost of inaction?",
		},
	},
	"solution_overview": {
		Name:        "Solution Overview",
		PitchStep:   2,
		Description: "Describe your proposed solution",
		Prompts: []string{
			"What is your solution?",
			"How does it work?",
			"What makes it effective?",
		},
	},
	"value_proposition": {
		Name:        "Value Proposition",
		PitchStep:   3,
		Description: "Articulate the unique value and benefits",
		Prompts: []string{
			"What are the key benefits?",
			"What differentiates this solution?",
			"What is the ROI potential?",
		},
	},
	"market_opportunity": {
		Name:        "Market Opportunity",
		PitchStep:   4,
		Description: "Define the market size and potential",
		Prompts: []string{
			"What is the market size?",
			"What are the growth trends?",
			"Who are the target customers?",
		},
	},
	"financial_projections": {
		Name:        "Financial Projections",
		PitchStep:   5,
		Description: "Present financial forecasts and metrics",
		Prompts: []string{
			"What are the revenue projections?",
			"What are the cost assumptions?",
			"What is the break-even timeline?",
		},
	},
	"risk_analysis": {
		Name:        "Risk Analysis",
		PitchStep:   5,
		Description: "Identify and assess key risks",
		Prompts: []string{
			"What are the main risks?",
			"How will risks be mitigated?",
			"What contingencies exist?",
		},
	},
	"implementation_plan": {
		Name:        "Implementation Plan",
		PitchStep:   6,
		Description: "Outline the execution roadmap",
		Prompts: []string{
			"What are the key milestones?",
			"What resources are needed?",
			"What is the timeline?",
		},
	},
	"traction_validation": {
		Name:        "Traction & Validation",
		PitchStep:   6,
		Description: "Show evidence and proof points",
		Prompts: []string{
			"What progress has been made?",
			"What validation exists?",
			"What are the key metrics?",
		},
	},
	"team_resources": {
		Name:        "Team & Resources",
		PitchStep:   7,
		Description: "Describe the team and resource requirements",
		Prompts: []string{
			"Who is on the team?",
			"What resources are needed?",
			"What expertise is required?",
		},
	},
	"call_to_action": {
		Name:        "Ask & Next Steps",
		PitchStep:   7,
		Description: "Define the specific request and next steps",
		Prompts: []string{
			"What is the specific ask?",
			"What are the next steps?",
			"What is the decision timeline?",
		},
	},
	"executive_summary": {
		Name:        "Executive Summary",
		PitchStep:   1,
		Description: "High-level overview of the business case",
		Prompts: []string{
			"What is the one-sentence summary?",
			"What are the key highlights?",
			"What is the bottom line?",
		},
	},
	"conclusion": {
		Name:        "Conclusion",
		PitchStep:   7,
		Description: "Summary and recommendations",
		Prompts: []string{
			"What are the key takeaways?",
			"What is the recommendation?",
			"What is the expected outcome?",
		},
	},
}

// BlockIDs 返回画布块 ID 的固定顺序副本
func BlockIDs() []string {
	ids := make([]string, len(blockIDs))
	copy(ids, blockIDs)
	return ids
}

// BlockByID 根据 ID 查找画布块定义
func BlockByID(blockID string) (BuildingBlock, bool) {
	block, ok := buildingBlocks[blockID]
	return block, ok
}

// Blocks 返回全部画布块定义（ID → 定义）
func Blocks() map[string]BuildingBlock {
	blocks := make(map[string]BuildingBlock, len(buildingBlocks))
	for id, block := range buildingBlocks {
		blocks[id] = block
	}
	return blocks
}
