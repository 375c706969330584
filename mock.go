package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"MindEaseGo/services"

	"github.com/spf13/cobra"
)

// mockCmd 离线调用模拟回复引擎，便于调试关键词规则
var mockCmd = &cobra.Command{
	Use:   "mock [chat|check-in|erp|cbt] [text]",
	Short: "Print the offline companion response for a message",
	Example: `  mindease mock chat "I feel so anxious today"
  mindease mock check-in "I slept 6 hours and feel great"
  mindease mock erp spiders`,
	Args:      cobra.MinimumNArgs(2),
	ValidArgs: []string{"chat", "check-in", "erp", "cbt"},
	RunE:      runMock,
}

func runMock(cmd *cobra.Command, args []string) error {
	engine := services.NewMockEngine(nil)
	text := strings.Join(args[1:], " ")

	var out interface{}
	switch args[0] {
	case "chat":
		out = map[string]string{"reply": engine.Reply(text)}
	case "check-in":
		reply, analysis := engine.CheckIn(text)
		out = map[string]interface{}{"reply": reply, "analysis": analysis}
	case "erp":
		out = map[string]interface{}{"hierarchy": engine.Hierarchy(text)}
	case "cbt":
		out = engine.Deconstruction()
	default:
		return fmt.Errorf("unknown mock flow %q, expected chat, check-in, erp or cbt", args[0])
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
