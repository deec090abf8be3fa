package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/jewelrun/prefabs"
)

const DefaultCompletionMessage = "All Jewels Collected"

// RunCompletionScript runs a tengo script with the globals `collected` and
// `elapsed` defined and returns its `message` global.
func RunCompletionScript(src []byte, collected int, elapsed float64) (string, error) {
	script := tengo.NewScript(src)
	_ = script.Add("collected", collected)
	_ = script.Add("elapsed", elapsed)
	_ = script.Add("message", DefaultCompletionMessage)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return "", fmt.Errorf("jewels: run script: %w", err)
	}
	if !compiled.IsDefined("message") {
		return DefaultCompletionMessage, nil
	}
	msg := strings.TrimSpace(compiled.Get("message").String())
	if msg == "" {
		return DefaultCompletionMessage, nil
	}
	return msg, nil
}

func completionMessage(scriptPath string, collected int, elapsed float64) string {
	if strings.TrimSpace(scriptPath) == "" {
		return DefaultCompletionMessage
	}
	src, err := prefabs.LoadScript(scriptPath)
	if err != nil {
		fmt.Printf("jewels: load script %s: %v\n", scriptPath, err)
		return DefaultCompletionMessage
	}
	msg, err := RunCompletionScript(src, collected, elapsed)
	if err != nil {
		fmt.Printf("jewels: %s: %v\n", scriptPath, err)
		return DefaultCompletionMessage
	}
	return msg
}
