// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package casework

import "strings"

// materialSeparator is the visual divider between material records in the
// assembled prompt.
const materialSeparator = "\n\n--- 材料分隔线 ---\n\n"

// BuildAnalysisPrompt assembles the dispute-focus analysis prompt from the
// case name, the pre-formatted material records, and the methodology text.
// Pure concatenation: no truncation and no token budgeting. Oversized
// prompts are the generation backend's error to surface.
func BuildAnalysisPrompt(caseName string, records []string, methodology string) string {
	var b strings.Builder
	b.WriteString("你是一名资深法律专家，请根据三层次争议焦点识别方法论，分析以下案件材料并识别争议焦点。\n\n")
	b.WriteString("案件名称：")
	b.WriteString(caseName)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(methodology))
	b.WriteString("\n\n以下是案件材料：\n")
	b.WriteString(strings.Join(records, materialSeparator))
	b.WriteString("\n\n请按照上述三层次争议焦点识别方法论的框架，根据材料识别并分析本案的争议焦点。\n")
	b.WriteString("回答格式请参照三层次争议焦点识别方法论的结构，解析应当全面、专业、准确。\n")
	return b.String()
}
