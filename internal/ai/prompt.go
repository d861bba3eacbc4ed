package ai

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write keyboard macro scripts for a programmable gaming keyboard. Your task is to convert a natural language description into a macro script.

The script is line-oriented. Each line is one instruction:
- "name <text>": the macro's display name
- "defaultdelay <ms>": default delay in milliseconds, 1-999 (starts at 15)
- "delay [ms]": pause; without a value the default delay is used
- "nodelay": do not insert the automatic delay before the next key instruction
- "press <key> [ms]": tap a key, holding it for ms (default delay if omitted)
- "down <key>": press and hold a key
- "up <key>": release a held key
- "<key>": shorthand for "press <key>"

A delay of the default length is inserted automatically between key instructions unless a "delay" or "nodelay" line separates them.

Key names:
- single letters a-z and digits 0-9
- shift, lshift, rshift, ctrl, lctrl, rctrl, alt, lalt, ralt, altgr
- enter, esc, backspace, insert, delete, home, end, pgup, pgdn
- left, right, up, down, space, "." and ",", "~" for the tilde key
- Windows key names such as Tab, F1-F24, NumPad0-NumPad9, OemMinus, Oemplus, LWin, Apps

Guidelines:
- To type an uppercase letter or a symbol, hold shift around the key ("down shift", "a", "up shift")
- Always release every key you hold down
- Write "name" as the first line
- Keep the script minimal but complete
- Do not use loops, variables or any syntax other than the instructions above

Example output (copy and paste):
name Copy Paste
down ctrl
c
up ctrl
delay 100
down ctrl
v
up ctrl

Respond ONLY with the script, no explanation or markdown.`

const revisePrompt = `Your previous script produced compiler diagnostics. Fix the script so it compiles cleanly while still doing what was asked.

Original user request: %s

Previous script:
%s

Diagnostics:
%s

Respond ONLY with the corrected script, no explanation or markdown.`

func buildUserPrompt(userPrompt string) string {
	return "User request: " + userPrompt
}

func buildRevisePrompt(originalPrompt, previous, diagnostics string) string {
	return fmt.Sprintf(revisePrompt, originalPrompt, previous, diagnostics)
}

// extractScript strips markdown code fences and surrounding prose from a
// model response.
func extractScript(response string) (string, error) {
	response = strings.TrimSpace(response)
	if response == "" {
		return "", ErrEmptyResponse
	}

	start := strings.Index(response, "```")
	if start == -1 {
		return response + "\n", nil
	}

	// Skip the opening fence and its language tag
	body := response[start+3:]
	if nl := strings.IndexByte(body, '\n'); nl != -1 {
		body = body[nl+1:]
	} else {
		return "", fmt.Errorf("unterminated code fence")
	}

	if end := strings.Index(body, "```"); end != -1 {
		body = body[:end]
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return "", ErrEmptyResponse
	}
	return body + "\n", nil
}
