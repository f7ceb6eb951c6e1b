package svcanvas

import (
	"fmt"
	"strconv"
	"strings"

	"bcp/bcmain/internal/app/domains/entity/etcanvas"
)

// 各操作的系统提示词
const (
	systemGenerate = "You are an expert business strategist creating compelling business case content."
	systemEnhance  = "You are an expert business writer improving content for maximum persuasiveness."
	systemSuggest  = "You are a strategic advisor providing actionable feedback on business cases."
	systemFeedback = "You are an expert business strategist revising content based on feedback."
)

// EnhancementTypeDefault 内容增强的默认类型
const EnhancementTypeDefault = "clarity"

// enhancementInstructions 增强类型 → 指令文本（未知类型回退 clarity）
var enhancementInstructions = map[string]string{
	"clarity":         "Make this content clearer and easier to understand while preserving the key message.",
	"impact":          "Make this content more impactful and persuasive for executive decision-makers.",
	"concise":         "Make this content more concise while retaining essential information.",
	"data_driven":     "Add more specific metrics, statistics, or quantifiable evidence.",
	"action_oriented": "Make this content more action-oriented with clear calls to action.",
}

// buildGenerationPrompt 组装画布块生成提示词（以七步法框架为锚定）
func buildGenerationPrompt(block etcanvas.BuildingBlock, caseContext map[string]interface{}, knowledgeContext string) string {
	projectName := contextString(caseContext, "project_name", "Business Initiative")
	projectDescription := contextString(caseContext, "description", "")
	financialSummary := financialSummaryFromContext(caseContext)

	knowledgeLine := ""
	if knowledgeContext != "" {
		knowledgeLine = "Additional Context from Knowledge Base: " + knowledgeContext
	}

	return fmt.Sprintf(`
You are a business case expert helping to create compelling canvas content for a business case presentation.

%s

Current Canvas Block: %s (Pitch Step %d)
Description: %s

Project: %s
Project Description: %s
%s

%s

Generate professional, persuasive content for this canvas block that:
1. Aligns with the 7-step pitch framework
2. Is clear, concise, and impactful
3. Uses specific data and metrics where available
4. Follows business best practices
5. Is formatted with bullet points for easy reading

Provide 3-5 key bullet points for this canvas block.
`, etcanvas.SevenStepPitchFramework, block.Name, block.PitchStep, block.Description,
		projectName, projectDescription, financialSummary, knowledgeLine)
}

// buildEnhancePrompt 组装内容增强提示词
func buildEnhancePrompt(content, enhancementType string) string {
	instruction, ok := enhancementInstructions[enhancementType]
	if !ok {
		instruction = enhancementInstructions[EnhancementTypeDefault]
	}

	return fmt.Sprintf(`
You are a business communication expert enhancing content for a business case presentation.

%s

Original Content:
%s

Enhancement Request: %s

Provide an enhanced version that:
1. Maintains the core message and facts
2. Is more compelling and professional
3. Uses strong, active language
4. Is suitable for executive presentations

Also provide 2-3 alternative phrasings for key sentences.
`, etcanvas.SevenStepPitchFramework, content, instruction)
}

// buildSuggestionsPrompt 组装建议/统计/质询问题提示词
func buildSuggestionsPrompt(blockID, currentContent string, caseContext map[string]interface{}) string {
	blockName := blockID
	pitchStep := 1
	if block, ok := etcanvas.BlockByID(blockID); ok {
		blockName = block.Name
		pitchStep = block.PitchStep
	}

	return fmt.Sprintf(`
You are a strategic advisor reviewing a business case canvas block.

%s

Canvas Block: %s
Current Content:
%s

Project: %s

Provide:

1. **Improvement Suggestions** (3-5 specific, actionable suggestions):
   - How can this content be strengthened?
   - What's missing that should be included?

2. **Relevant Statistics** (2-3 industry statistics or benchmarks):
   - What data points would strengthen this section?
   - What benchmarks should be referenced?

3. **Critical Questions** (3-5 questions a skeptical reviewer might ask):
   - What gaps exist in the reasoning?
   - What objections might arise?

4. **Pitch Framework Alignment** (Score 1-10):
   - How well does this align with Step %d of the pitch framework?
   - What would improve alignment?

Format each section clearly with bullet points.
`, etcanvas.SevenStepPitchFramework, blockName, currentContent,
		contextString(caseContext, "project_name", "Business Initiative"), pitchStep)
}

// buildFeedbackPrompt 组装反馈修订提示词
func buildFeedbackPrompt(blockID, currentContent, userFeedback string, caseContext map[string]interface{}) string {
	blockName := blockID
	pitchStep := 1
	if block, ok := etcanvas.BlockByID(blockID); ok {
		blockName = block.Name
		pitchStep = block.PitchStep
	}

	return fmt.Sprintf(`
You are a business case expert revising content based on user feedback.

%s

Canvas Block: %s (Pitch Step %d)

Current Content:
%s

User Feedback:
%s

Project Context:
- Name: %s
- Description: %s

Revise the content to address the user's feedback while:
1. Maintaining alignment with the 7-step pitch framework
2. Keeping the content professional and persuasive
3. Preserving any accurate data or facts from the original
4. Incorporating the requested changes naturally

Provide the revised content in a clean, formatted structure with bullet points.
`, etcanvas.SevenStepPitchFramework, blockName, pitchStep, currentContent, userFeedback,
		contextString(caseContext, "project_name", "Business Initiative"),
		contextString(caseContext, "description", ""))
}

// placeholderContent 未配置 AI 时的占位内容
func placeholderContent(block etcanvas.BuildingBlock, caseContext map[string]interface{}) string {
	projectName := contextString(caseContext, "project_name", "Your Project")

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", block.Name)
	fmt.Fprintf(&b, "Content for %s:\n\n", projectName)
	for _, prompt := range block.Prompts {
		fmt.Fprintf(&b, "• %s\n", prompt)
	}
	b.WriteString("\n[Configure an AI provider to generate AI-powered content]")
	return b.String()
}

// financialSummaryFromContext 从松散上下文提取财务摘要段落，无财务数据时返回空串
func financialSummaryFromContext(caseContext map[string]interface{}) string {
	records, ok := caseContext["financial_data"].([]interface{})
	if !ok || len(records) == 0 {
		return ""
	}

	var totalRevenue, totalNetIncome float64
	minYear, maxYear := 0, 0
	first := true
	for _, item := range records {
		record, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		year := int(contextNumber(record, "year"))
		if first || year < minYear {
			minYear = year
		}
		if first || year > maxYear {
			maxYear = year
		}
		first = false
		totalRevenue += contextNumber(record, "revenue")
		totalNetIncome += contextNumber(record, "net_income")
	}

	return fmt.Sprintf(`
Financial Data Summary:
- Projection Period: %d to %d
- Total Revenue: $%s
- Total Net Income: $%s
`, minYear, maxYear, formatAmount(totalRevenue), formatAmount(totalNetIncome))
}

func contextString(caseContext map[string]interface{}, key, fallback string) string {
	if v, ok := caseContext[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func contextNumber(record map[string]interface{}, key string) float64 {
	switch v := record[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// formatAmount 金额按千分位分组、舍入到整数
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteByte(s[i])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
