package commands

import (
	"embed"
	"io/fs"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Set up and maintain an autonomous multi-agent development team"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgInitShort       = "Initialize a new BMAD Swarm project"
	MsgUpdateShort     = "Regenerate all managed files from swarm.yaml"
	MsgStatusShort     = "Show configuration, phase, agents and drift of managed files"
	MsgEjectShort      = "Copy a package file to overrides/ for customization"
	MsgUnejectShort    = "Return an ejected file to the package version"
	MsgUnejectAgent    = "Remove an ejected agent and use the package version again"
	MsgConfigShort     = "Print the effective configuration"
	MsgRenderShort     = "Render a template file against the project data context"
	MsgStartShort      = "Launch Claude Code with the orchestrator system prompt"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"
	MsgTopicsShort     = "List help topics"
	MsgTopicsLong      = "List the guides available through `bmad-swarm help <topic>`"

	// Command groups
	MsgGroupCore = "COMMANDS:"
	MsgGroupMisc = "MISC:"

	// Progress output
	MsgDryRunNotice      = "DRY RUN MODE - No changes were made"
	MsgCreatingProject   = "Creating project structure..."
	MsgRegenerating      = "Regenerating from package + swarm.yaml..."
	MsgWroteFile         = "Generated %s"
	MsgSectionFormat     = "%s %s (%s)"
	MsgCreatedArtifacts  = "Created %s/ directory"
	MsgInitReady         = "Ready! Start Claude Code and tell the orchestrator what to build."
	MsgUpdateComplete    = "Update complete. User-owned files (swarm.yaml, overrides/, artifacts/) were not touched."
	MsgModifiedSkipped   = "Skipped %d hand-edited file(s); use --force to overwrite:"
	MsgEjectedUsing      = "Ejected (using local override): %s"
	MsgEjected           = "Ejected %s to %s"
	MsgEjectedHint       = "Edit this file to customize the agent. Run `bmad-swarm update` to apply."
	MsgUnejected         = "Removed override for %s; regenerated %s from the package"
	MsgUnresolvedWarning = "Unresolved placeholders: %s"

	// Status output
	MsgStatusProject   = "Project"
	MsgStatusAgents    = "Agents"
	MsgStatusFiles     = "Managed files"
	MsgStatusArtifacts = "Artifacts"
	MsgNoArtifacts     = "No artifacts yet"
	MsgNoAgents        = "No agents generated yet"
	MsgStatusModified  = "%d file(s) edited by hand; update leaves them alone unless --force is given:"

	// Version output
	MsgVersionFormat = "bmad-swarm version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrorPrefix    = "Error:"
	MsgErrNoCommand   = "no command specified"
	MsgErrHelpMissing = "help command not found"
	MsgErrUnknownKind = "unknown kind %q (only \"agent\" can be ejected)"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun      = "Preview changes without writing anything"
	MsgFlagForce       = "Overwrite managed files even if they were edited by hand"
	MsgFlagDir         = "Project directory (default: $BMAD_SWARM_ROOT or the current directory)"
	MsgFlagName        = "Project name"
	MsgFlagDescription = "Project description"
	MsgFlagType        = "Project type (web-app|api|cli|library|mobile|monorepo|other)"
	MsgFlagLanguage    = "Primary language"
	MsgFlagFramework   = "Framework"
	MsgFlagDatabase    = "Database"
	MsgFlagTesting     = "Test framework"
	MsgFlagAutonomy    = "Autonomy level (auto|guided|collaborative)"
	MsgFlagTemplate    = "Stack preset (next-app, express-api, react-app, node-cli, python-api)"
	MsgFlagFormat      = "Output format (yaml|toml)"
	MsgFlagDefaults    = "Print the built-in defaults instead of the project configuration"
	MsgFlagPretty      = "Render markdown output for the terminal"
	MsgFlagPrint       = "Print the claude command instead of running it"
	MsgFlagDangerous   = "Launch with --dangerously-skip-permissions (skips all permission prompts)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/update-long.txt
	msgUpdateLongRaw string
	MsgUpdateLong    = strings.TrimSpace(msgUpdateLongRaw)

	//go:embed msgs/update-example.txt
	msgUpdateExampleRaw string
	MsgUpdateExample    = strings.TrimRight(msgUpdateExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/eject-long.txt
	msgEjectLongRaw string
	MsgEjectLong    = strings.TrimSpace(msgEjectLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/start-long.txt
	msgStartLongRaw string
	MsgStartLong    = strings.TrimSpace(msgStartLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)

//go:embed help
var helpFS embed.FS

// HelpTopics returns the embedded help topic documents.
func HelpTopics() fs.FS {
	sub, err := fs.Sub(helpFS, "help")
	if err != nil {
		panic(err)
	}
	return sub
}
