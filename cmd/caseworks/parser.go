// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import "strings"

// CommandKind tags the parsed form of one free-text instruction.
type CommandKind int

const (
	CmdUnknown CommandKind = iota
	CmdHelp
	CmdClear
	CmdQuit
	CmdServe
	CmdCreateCase
	CmdListCases
	CmdSelectCase
	CmdIdentifyDisputes
	CmdNotImplemented
)

// Command is the result of parsing a free-text instruction. Name carries
// the case-name argument; Verb carries the original verb for commands that
// are recognized but not implemented (分析案件材料, 起草…, …).
type Command struct {
	Kind CommandKind
	Name string
	Verb string
}

// notImplementedVerbs are original instructions that parse but have no
// implementation yet. Each maps its prefix (including the full-width colon)
// to the verb reported to the user.
var notImplementedVerbs = []string{
	"分析案件材料",
	"生成检索关键词",
	"启动律师角色",
	"生成诉讼策略",
}

// ParseCommand maps one line of user input to a tagged Command value.
// All dispatch decisions live here rather than in the REPL loop.
func ParseCommand(input string) Command {
	input = strings.TrimSpace(input)

	switch strings.ToLower(input) {
	case "退出", "exit", "quit", "q":
		return Command{Kind: CmdQuit}
	case "帮助", "help", "h", "?":
		return Command{Kind: CmdHelp}
	case "清屏", "clear", "cls":
		return Command{Kind: CmdClear}
	case "查看案件列表":
		return Command{Kind: CmdListCases}
	}

	if strings.HasPrefix(input, "启动服务器") {
		return Command{Kind: CmdServe}
	}
	if rest, ok := strings.CutPrefix(input, "新建案件"); ok {
		return Command{Kind: CmdCreateCase, Name: strings.TrimSpace(rest)}
	}
	if rest, ok := strings.CutPrefix(input, "选择案件："); ok {
		return Command{Kind: CmdSelectCase, Name: strings.TrimSpace(rest)}
	}
	if rest, ok := strings.CutPrefix(input, "识别争议焦点"); ok {
		return Command{Kind: CmdIdentifyDisputes, Name: strings.TrimSpace(rest)}
	}

	for _, verb := range notImplementedVerbs {
		if rest, ok := strings.CutPrefix(input, verb+"："); ok {
			return Command{Kind: CmdNotImplemented, Verb: verb, Name: strings.TrimSpace(rest)}
		}
	}

	// 起草<文书类型>：<案件名称>
	if rest, ok := strings.CutPrefix(input, "起草"); ok {
		if docType, name, found := strings.Cut(rest, "："); found {
			return Command{
				Kind: CmdNotImplemented,
				Verb: "起草" + strings.TrimSpace(docType),
				Name: strings.TrimSpace(name),
			}
		}
	}

	return Command{Kind: CmdUnknown, Name: input}
}
