package registry

// The registration tables below are the fixed vocabulary of the document
// set. Keys, paths, and descriptions change only when a document is added
// to or removed from the repository itself.

var coreStandards = []Entry{
	{
		Key:         "terminal-standards",
		Path:        "core/terminal-standards.md",
		Description: "Terminal and shell usage rules for agent sessions",
	},
	{
		Key:         "commit-standards",
		Path:        "core/commit-standards.md",
		Description: "Commit message and change hygiene conventions",
	},
	{
		Key:         "agent-rules",
		Path:        "core/agent-rules.md",
		Description: "Universal behavioral rules for AI coding agents",
	},
}

var workflowPatterns = []Entry{
	{
		Key:         "session-management",
		Path:        "workflows/session-management.md",
		Description: "Starting, suspending, and resuming agent work sessions",
	},
	{
		Key:         "branching-strategy",
		Path:        "workflows/branching-strategy.md",
		Description: "Branch naming and lifecycle for agent-driven changes",
	},
	{
		Key:         "task-planning",
		Path:        "workflows/task-planning.md",
		Description: "Breaking work into small, reviewable task units",
	},
	{
		Key:         "code-review",
		Path:        "workflows/code-review.md",
		Description: "Review checklist for agent-produced changes",
	},
	{
		Key:         "testing-discipline",
		Path:        "workflows/testing-discipline.md",
		Description: "Test-first expectations and coverage gates",
	},
	{
		Key:         "documentation",
		Path:        "workflows/documentation.md",
		Description: "Keeping documentation in lockstep with code changes",
	},
	{
		Key:         "release-process",
		Path:        "workflows/release-process.md",
		Description: "Tagging, changelogs, and release verification",
	},
}

var integrationGuides = []Entry{
	{
		Key:         "claude-code",
		Path:        "integrations/claude-code.md",
		Description: "Wiring the standards into Claude Code",
	},
	{
		Key:         "cursor",
		Path:        "integrations/cursor.md",
		Description: "Wiring the standards into Cursor",
	},
	{
		Key:         "github-copilot",
		Path:        "integrations/github-copilot.md",
		Description: "Wiring the standards into GitHub Copilot",
	},
	{
		Key:         "aider",
		Path:        "integrations/aider.md",
		Description: "Wiring the standards into Aider",
	},
	{
		Key:         "gemini-cli",
		Path:        "integrations/gemini-cli.md",
		Description: "Wiring the standards into Gemini CLI",
	},
	{
		Key:         "windsurf",
		Path:        "integrations/windsurf.md",
		Description: "Wiring the standards into Windsurf",
	},
	{
		Key:         "opencode",
		Path:        "integrations/opencode.md",
		Description: "Wiring the standards into OpenCode",
	},
}
