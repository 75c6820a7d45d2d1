// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package casework

import (
	"context"
	"fmt"
	"time"
)

// Generator is the external text-generation capability. Implementations
// receive the case name and the fully assembled prompt and return a complete
// markdown report. The real backend (gemini.go) and the offline fixed
// template sit behind this interface so they can be swapped without touching
// the pipeline.
type Generator interface {
	Generate(ctx context.Context, caseName, prompt string) (string, error)
}

// generateReport invokes the configured Generator and converts any failure
// into a fallback report. Generation never aborts the pipeline: a report
// document is always produced so the operator has an artifact to inspect.
func (o *Orchestrator) generateReport(ctx context.Context, caseName, prompt string) string {
	logf("正在使用AI分析案件材料 (promptLen=%d)", len(prompt))
	report, err := o.gen.Generate(ctx, caseName, prompt)
	if err != nil {
		logf("AI分析出错: %v", err)
		return fallbackReport(caseName, err, time.Now())
	}
	logf("AI分析完成")
	return report
}

// fallbackReport is the minimal document written when generation fails.
// It carries the case name, the date, and the error text, clearly marked
// as an analysis failure.
func fallbackReport(caseName string, cause error, now time.Time) string {
	return fmt.Sprintf(`# %s 争议焦点分析 (AI分析出错)

## 错误信息

%v

## 基本信息
- 案件名称：%s
- 分析日期：%s

请手动完成争议焦点分析。
`, caseName, cause, caseName, now.Format("2006-01-02"))
}

// TemplateGenerator is the offline backend: it returns a fixed example
// report following the three-tier structure. It never fails.
type TemplateGenerator struct{}

// Generate ignores the prompt and renders the fixed template for caseName.
func (TemplateGenerator) Generate(_ context.Context, caseName, _ string) (string, error) {
	return fmt.Sprintf(`# %s 争议焦点分析

## 基本信息
- 案件名称：%s
- 分析日期：%s

## 第一层：法律关系分析

请结合案件材料，确认当事人之间法律关系的性质、形成过程与关键时间节点，
并确定适用的法律规范体系。

## 第二层：请求权基础分解

请将原告的各项诉讼请求对应到具体法条，拆解构成要件，逐项对照已证明的
事实，并分配举证责任。

## 第三层：对抗性问题提炼

请对照原告主张与被告反驳，提炼双方在事实认定和法律适用上的实质分歧，
并标注各争议点对应的证据。

## 多方诉辩意见对照表

| 争议点 | 原告方主张 | 被告方主张 | 相关证据 |
|--------|------------|------------|----------|
|        |            |            |          |
|        |            |            |          |

## 争议焦点总结

请根据案件材料完成上述三个层次的分析，并在此总结核心争议焦点。
`, caseName, caseName, time.Now().Format("2006-01-02")), nil
}
