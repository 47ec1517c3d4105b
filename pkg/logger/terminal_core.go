// pkg/logger/terminal_core.go

package logger

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
)

// TerminalPromptPrefix marks log entries that are really user-facing
// terminal output. Entries carrying it are rendered as plain text on
// stdout instead of going through the structured encoders, and they
// bypass the console level threshold so quiet logging never swallows
// a generated password.
const TerminalPromptPrefix = "terminal prompt:"

// terminalCore wraps a zapcore.Core and renders terminal-prompt entries
// as plain text for human-friendly CLI output.
type terminalCore struct {
	base zapcore.Core
	out  io.Writer
}

func newTerminalCore(base zapcore.Core, out io.Writer) zapcore.Core {
	return &terminalCore{base: base, out: out}
}

// Enabled must admit Info even when every base core is quieter: prompt
// entries are logged at Info, and zap consults Enabled before Check ever
// sees the message. Ordinary entries are still filtered per core inside
// base.Check.
func (c *terminalCore) Enabled(level zapcore.Level) bool {
	return level >= zapcore.InfoLevel || c.base.Enabled(level)
}

func (c *terminalCore) With(fields []zapcore.Field) zapcore.Core {
	return &terminalCore{base: c.base.With(fields), out: c.out}
}

func (c *terminalCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if strings.HasPrefix(entry.Message, TerminalPromptPrefix) {
		return ce.AddCore(entry, c)
	}
	return c.base.Check(entry, ce)
}

func (c *terminalCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if !strings.HasPrefix(entry.Message, TerminalPromptPrefix) {
		return c.base.Write(entry, fields)
	}

	for _, line := range renderPrompt(entry.Message, fields) {
		fmt.Fprintln(c.out, line)
	}
	return nil
}

func (c *terminalCore) Sync() error {
	return c.base.Sync()
}

// renderPrompt flattens a terminal-prompt entry into output lines. The
// message text comes first, then the "output" field verbatim, then any
// remaining fields as "key: value" in stable order.
func renderPrompt(message string, fields []zapcore.Field) []string {
	var lines []string

	text := strings.TrimSpace(strings.TrimPrefix(message, TerminalPromptPrefix))
	if text != "" {
		lines = append(lines, strings.Split(text, "\n")...)
	}

	if len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, field := range fields {
			field.AddTo(enc)
		}

		if output, ok := enc.Fields["output"]; ok {
			lines = append(lines, strings.Split(fmt.Sprint(output), "\n")...)
			delete(enc.Fields, "output")
		}

		keys := make([]string, 0, len(enc.Fields))
		for key := range enc.Fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			lines = append(lines, fmt.Sprintf("%s: %v", key, enc.Fields[key]))
		}
	}

	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}
