// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mesh-intelligence/caseworks/pkg/casework"
)

func showCommands() {
	fmt.Println("法律工程系统 - 智能助手")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("可用指令:")
	fmt.Println("  新建案件<案件名称>")
	fmt.Println("  查看案件列表")
	fmt.Println("  选择案件：<案件名称>")
	fmt.Println("  识别争议焦点<案件名称>")
	fmt.Println("  分析案件材料：<案件名称>")
	fmt.Println("  生成检索关键词：<案件名称>")
	fmt.Println("  启动律师角色：<案件名称>")
	fmt.Println("  生成诉讼策略：<案件名称>")
	fmt.Println("  起草<文书类型>：<案件名称>  (如: 起草起诉状：合同纠纷案件)")
	fmt.Println("  启动服务器")
	fmt.Println("  清屏")
	fmt.Println("  退出")
	fmt.Println(strings.Repeat("=", 50))
}

func clearScreen() {
	fmt.Print("\033[2J\033[H")
}

// runREPL reads free-text instructions until 退出 or EOF.
func runREPL(o *casework.Orchestrator) error {
	clearScreen()
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("欢迎使用法律工程系统")
	fmt.Println(strings.Repeat("=", 50))
	showCommands()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n法律工程> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if done := dispatch(o, ParseCommand(line)); done {
			return nil
		}
	}
}

// dispatch executes one parsed command. Returns true when the REPL should
// exit. Command failures are printed, not returned: one bad instruction
// must not end the session.
func dispatch(o *casework.Orchestrator, cmd Command) bool {
	switch cmd.Kind {
	case CmdQuit:
		fmt.Println("感谢使用法律工程系统，再见！")
		return true

	case CmdHelp:
		showCommands()

	case CmdClear:
		clearScreen()
		showCommands()

	case CmdListCases:
		fmt.Println("执行: 查看案件列表")
		names, err := o.ListCases()
		if err != nil {
			fmt.Printf("错误: %v\n", err)
			return false
		}
		printCaseList(names)

	case CmdCreateCase:
		fmt.Printf("执行: 创建新案件 %q\n", cmd.Name)
		dir, err := o.CreateCase(cmd.Name)
		if err != nil {
			fmt.Printf("错误: %v\n", err)
			return false
		}
		fmt.Printf("案件路径: %s\n", dir)

	case CmdSelectCase:
		fmt.Printf("执行: 选择案件 %q\n", cmd.Name)
		dir, err := o.SelectCase(cmd.Name)
		if err != nil {
			fmt.Printf("错误: %v\n", err)
			return false
		}
		fmt.Printf("案件路径: %s\n请使用 cd %q 进入案件目录\n", dir, dir)

	case CmdIdentifyDisputes:
		fmt.Printf("执行: 识别争议焦点 %q\n", cmd.Name)
		path, err := o.IdentifyDisputes(context.Background(), cmd.Name)
		if err != nil {
			fmt.Printf("错误: %v\n", err)
			return false
		}
		fmt.Printf("争议焦点分析文件已创建: %s\n", path)
		fmt.Println("请按照三层次争议焦点识别方法论完成分析。")

	case CmdServe:
		fmt.Println("正在启动本地服务器...")
		if err := o.Serve(""); err != nil {
			fmt.Printf("启动服务器失败: %v\n", err)
		}

	case CmdNotImplemented:
		fmt.Printf("命令 %q 尚未实现\n", cmd.Verb)
		if cmd.Name != "" {
			fmt.Printf("案件: %q\n", cmd.Name)
		}

	default:
		fmt.Printf("无法识别的指令: %s\n", cmd.Name)
		fmt.Println("请查看上面的可用指令列表")
	}
	return false
}
