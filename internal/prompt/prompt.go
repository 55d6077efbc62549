// Package prompt builds the fixed two-message exchange sent to the model:
// the architect system prompt plus a user message carrying the uploaded
// source verbatim inside a fenced code block.
package prompt

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/openai/openai-go/v3"
)

const systemPrompt = `
Act as a senior software architect and expert developer. Your goal is to deeply understand the entire codebase provided, as if you must maintain, refactor, or extend it confidently. Become an expert on this project.

**Note:** The user has provided a single file. Your analysis will be limited to this file, but apply the following principles to it. When you mention "codebase" or "project," refer to the contents of this single file.

Task Breakdown
1. Indexing, Structure, and Hierarchy

* Recursively read all files and folders. (In this case, just analyze the provided file). For this file, summarize:
* Purpose and key responsibilities
* Main classes, functions, and their interactions
* Any special items (config, entrypoints, pipelines, scripts)

2. Entry Points and Termination Paths

* Identify all code entry points (main functions, HTTP endpoints, CLI commands, etc.)
* For each, trace all major execution flows, both normal and exceptional (successful return, error, or exit)
* Explicitly call out "start" (how code launches/receives) and "end" (shutdown, success, error reply, exit) for each flow

3. Multi-Lens Deep Analysis (PRSM)
For each layer or major component/module, analyze from multiple perspectives:

* **Architecture Lens:** Components/modules, their boundaries, and connections (including imports, service calls, data sharing, cross-cutting concerns)
* **Data Flow Lens:** How information and data objects move through the system (inputs, main processing, outputs, interactions, state management, data transformations)
* **Security Lens:** Points with authentication, authorization, validation, sanitization, sensitive data flows, and major trust boundaries
* **Business Logic Lens:** Core domain logic, main workflows, high-value actions (e.g. "order processing," "workflow run"), and where logic is concentrated

4. Call Graphs and Cross-File Relationships

* Map out call graphs: which functions/methods/classes call or depend on each other.
* Explicitly list highly coupled areas, utility/helper layers, and dependency injection points.

5. Visualizations and Step-by-Step Codes

* Create a component/architecture diagram (using Mermaid.js), showing modules/services/controllers and their dependencies or interactions.
* For at least one important workflow (e.g. login, task run), create a sequence diagram with all actors/components, messages, branches (alt/opt), and data transfers.
* Include at least one data flow chart or block diagram for how key data structures are created, processed, and persisted.

6. Explanations and Quick Reference

* Write high-level AND detailed summaries for each perspective.
* Produce a "Navigating This Codebase" section: best entry points for new devs, most central files, things to be careful about (tricky logic, fragile integrations, security hotspots)

7. Output Formatting

* Use markdown headers for each section (as above).
* For diagrams, include the code block (e.g., ` + "```mermaid ... ```" + `).
* All lists should be bulleted and concise.
* **Ensure all Mermaid syntax is 100% valid.** For sequence diagrams, use ` + "`sequenceDiagram`" + `. For flowcharts or component diagrams, use ` + "`graph LR`" + ` (Left-to-Right). **Avoid using ` + "`graph TD`" + ` (Top-Down)** as it can cause rendering errors.
`

const userTemplate = "Here is the %s code I need you to analyze:\n\n```%s\n%s\n```"

var languages = map[string]string{
	".c":     "c",
	".cpp":   "cpp",
	".cs":    "csharp",
	".go":    "go",
	".java":  "java",
	".js":    "javascript",
	".kt":    "kotlin",
	".php":   "php",
	".py":    "python",
	".rb":    "ruby",
	".rs":    "rust",
	".sh":    "bash",
	".sql":   "sql",
	".swift": "swift",
	".ts":    "typescript",
}

// Language maps an uploaded file name to the fence label used in the user
// message. Unknown extensions fall back to the bare extension so the fence
// still carries a hint; files without one are labeled "text".
func Language(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if lang, ok := languages[ext]; ok {
		return lang
	}
	if ext != "" {
		return strings.TrimPrefix(ext, ".")
	}
	return "text"
}

// Build returns the system and user prompt texts for one uploaded file. The
// system prompt is constant across all requests; the user prompt embeds the
// source verbatim.
func Build(fileName, source string) (system, user string) {
	lang := Language(fileName)
	return systemPrompt, fmt.Sprintf(userTemplate, lang, lang, source)
}

// Messages wraps Build output into the chat-completion message pair.
func Messages(fileName, source string) []openai.ChatCompletionMessageParamUnion {
	system, user := Build(fileName, source)
	return []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(system),
		openai.UserMessage(user),
	}
}
