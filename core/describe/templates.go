// ABOUTME: Lens-specific prompt templates for description synthesis
// ABOUTME: Fixed enumeration dispatched through the typed Lens value

package describe

import (
	"fmt"
	"strings"

	"intent-builder-api/core/domain"
)

// lensTemplate carries the per-lens prompt pieces. The map is populated once
// at init and read-only afterwards.
type lensTemplate struct {
	// label names the subject line, e.g. "Topic" or "Brand".
	label string

	// naming is the lens-specific guidance for candidate names.
	naming string
}

var lensTemplates = map[domain.Lens]lensTemplate{
	domain.LensService: {
		label:  "Topic",
		naming: "Generate names that are readable and properly formatted with spaces between words. The description should use terminology specific to the service.",
	},
	domain.LensBrand: {
		label:  "Brand",
		naming: "Include enough keywords in each name to uniquely identify the brand compared to other common uses of the words in the brand name.",
	},
	domain.LensEvent: {
		label:  "Event",
		naming: "Include enough keywords in each name to uniquely identify the event compared to other common uses of the words in the event name.",
	},
	domain.LensProduct: {
		label:  "Product",
		naming: "Include enough keywords in each name to uniquely identify the product compared to other common uses of the words in the product name.",
	},
	domain.LensSolution: {
		label:  "Solution",
		naming: "Include enough keywords in each name to uniquely identify the solution compared to other common uses of the words in the solution name.",
	},
	domain.LensFunction: {
		label:  "Technical Concept",
		naming: "Include enough keywords in each name to specify a particular intent related to this concept, distinguishing it from other contexts or applications of the same function.",
	},
}

const promptRules = `VALIDATION RULES - Follow these exactly:
1. Produce EXACTLY two sentences.
2. The first sentence starts with "This intent represents interest in..." and explains what the subject is used for.
3. The second sentence starts with "It encompasses..." and lists specific implementation details, methodologies, and capabilities.
4. Use at least three keyphrases from the EXTRACTED KEYPHRASES list verbatim.
5. Do NOT include audience details, pricing, quality descriptors, or promotional language.

Return data in the following format:
NAME1: RECOMMENDED NAME
NAME2: RECOMMENDED NAME
NAME3: RECOMMENDED NAME
DESCRIPTION: RECOMMENDED DESCRIPTION`

// buildPrompt assembles the lens-conditioned prompt from the evidence
// snapshot. Templates are keyed by the typed lens, so an unknown lens cannot
// reach this point.
func buildPrompt(topic string, lens domain.Lens, category, subCategory string, content domain.AggregatedContent) string {
	tpl := lensTemplates[lens]

	var b strings.Builder
	b.WriteString("You are an expert marketer creating an audience using intent to target prospects.\n\n")
	fmt.Fprintf(&b, "%s: %s\n", tpl.label, topic)
	if category != "" {
		fmt.Fprintf(&b, "Category: %s\n", category)
	}
	if subCategory != "" {
		fmt.Fprintf(&b, "SubCategory: %s\n", subCategory)
	}

	b.WriteString("\nCONTENT ANALYSIS:\n")
	fmt.Fprintf(&b, "- Documents analyzed: %d\n", content.TotalDocs)
	fmt.Fprintf(&b, "- Total text length: %d characters\n", content.TotalTextLength)
	fmt.Fprintf(&b, "- Seed keywords: %s\n", strings.Join(content.Seeds, ", "))
	fmt.Fprintf(&b, "- EXTRACTED KEYPHRASES: %s\n", strings.Join(head(content.ExtractedKeyphrases, 15), "; "))
	fmt.Fprintf(&b, "- Top frequency terms: %s\n", strings.Join(head(content.TopTerms, 10), ", "))
	fmt.Fprintf(&b, "- Top frequency phrases: %s\n", strings.Join(head(content.TopPhrases, 8), "; "))

	b.WriteString("\nUse the related information to recommend three improved names that will be used by a large language classification model to analyze intent using URLs and domain traffic. ")
	b.WriteString(tpl.naming)
	b.WriteString("\nRecommend a two sentence description of the intent using related LSI keywords specific to the subject. Focus on technical and business aspects, not marketing language, and do not include details about the audience.\n\n")
	b.WriteString(promptRules)
	return b.String()
}

// adjustPrompt appends emphasis on the rules a previous attempt violated.
func adjustPrompt(prompt string, violations []string) string {
	var b strings.Builder
	b.WriteString(prompt)
	b.WriteString("\n\nYour previous answer violated these constraints. Fix them:\n")
	for _, v := range violations {
		fmt.Fprintf(&b, "- %s\n", v)
	}
	return b.String()
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
