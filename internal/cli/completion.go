package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long       string   // long flag name without "--" (e.g., "help")
	Short      string   // short flag without "-" (e.g., "h")
	Help       string   // description text
	Values     []string // suggested completion values (nil = boolean/no suggestions)
	ValueName  string   // label for the value in zsh (e.g., "number", "duration")
	IsFile     bool     // true if the flag takes a file path
	IsStrategy bool     // true if values come from the strategy list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Short: "a", Help: "First operand (decimal or 0x hex)", ValueName: "value"},
	{Short: "b", Help: "Second operand (decimal or 0x hex)", ValueName: "value"},
	{Long: "op", Help: "Operation to perform", Values: []string{"mul", "add", "shl", "shr"}, ValueName: "operation"},
	{Long: "shift", Help: "Shift amount in bits", ValueName: "bits"},
	{Long: "strategy", Help: "Multiplier strategy", IsStrategy: true, ValueName: "strategy"},
	{Long: "verify", Help: "Cross-verify the portable multiplier"},
	{Long: "random", Help: "Number of random verification cases", Values: []string{"1000", "10000", "100000", "1000000"}, ValueName: "count"},
	{Long: "seed", Help: "Verification corpus seed", ValueName: "seed"},
	{Long: "workers", Help: "Concurrent verification shards", Values: []string{"1", "2", "4", "8", "16"}, ValueName: "count"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"30s", "1m", "5m", "10m"}, ValueName: "duration"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "verbose", Short: "v", Help: "Enable debug logging"},
	{Long: "no-color", Help: "Disable color output"},
	{Long: "repl", Help: "Start interactive mode"},
	{Long: "tui", Help: "Start the verification dashboard"},
	{Long: "serve", Help: "Start the HTTP API on an address", ValueName: "address"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//   - strategies: List of available multiplier strategy names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, strategies []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, strategies)
	case "zsh":
		return generateZshCompletion(out, strategies)
	case "fish":
		return generateFishCompletion(out, strategies)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, strategies)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// formatStrategyList joins strategy names for inclusion in a script.
func formatStrategyList(strategies []string) string {
	return strings.Join(strategies, " ")
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, strategies []string) error {
	// Build opts string from registry
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	// Build case entries from registry: strategy flags, then static-value
	// flags, then file flags.
	type caseEntry struct {
		patterns []string
		body     string
	}
	var orderedCases []caseEntry

	for _, f := range flagRegistry {
		if f.IsStrategy {
			orderedCases = append(orderedCases, caseEntry{
				patterns: []string{"--" + f.Long},
				body:     `COMPREPLY=( $(compgen -W "${strategies}" -- "${cur}") )`,
			})
		}
	}

	for _, f := range flagRegistry {
		if !f.IsStrategy && !f.IsFile && len(f.Values) > 0 {
			orderedCases = append(orderedCases, caseEntry{
				patterns: []string{"--" + f.Long},
				body:     fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " ")),
			})
		}
	}

	var filePatterns []string
	for _, f := range flagRegistry {
		if f.IsFile {
			if f.Long != "" {
				filePatterns = append(filePatterns, "--"+f.Long)
			}
			if f.Short != "" {
				filePatterns = append(filePatterns, "-"+f.Short)
			}
		}
	}
	if len(filePatterns) > 0 {
		orderedCases = append(orderedCases, caseEntry{
			patterns: filePatterns,
			body: `# File/directory completion
            COMPREPLY=( $(compgen -f -- "${cur}") )`,
		})
	}

	// Format case entries
	var caseBody strings.Builder
	for _, c := range orderedCases {
		caseBody.WriteString("        ")
		caseBody.WriteString(strings.Join(c.patterns, "|"))
		caseBody.WriteString(")\n")
		caseBody.WriteString("            ")
		caseBody.WriteString(c.body)
		caseBody.WriteString("\n            return 0\n            ;;\n")
	}

	script := fmt.Sprintf(`# Bash completion script for u128calc
# Add this to your ~/.bashrc or ~/.bash_completion

_u128calc_completions() {
    local cur prev opts strategies
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="%s"

    # Available strategies
    strategies="auto %s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _u128calc_completions u128calc
`, strings.Join(opts, " "), formatStrategyList(strategies), caseBody.String())

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, strategies []string) error {
	// Build _arguments entries from registry
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef u128calc

# Zsh completion script for u128calc
# Add this to your ~/.zshrc or place in $fpath

_u128calc() {
    local -a strategies
    strategies=(auto %s)

    _arguments -s \
%s
}

_u128calc "$@"
`, formatStrategyList(strategies), strings.Join(args, " \\\n"))

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	// Build the value suffix
	valueSuffix := ""
	if f.IsFile {
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	} else if f.IsStrategy {
		valueSuffix = fmt.Sprintf(":%s:($strategies)", f.ValueName)
	} else if len(f.Values) > 0 {
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	} else if f.ValueName != "" {
		// Value-taking flag with no suggestions (e.g., -a)
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		// Has both short and long form
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
	}
	// Short only
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, strategies []string) error {
	var lines []string

	lines = append(lines, "# Fish completion script for u128calc")
	lines = append(lines, "# Add this to ~/.config/fish/completions/u128calc.fish")
	lines = append(lines, "")
	lines = append(lines, "# Disable file completion by default")
	lines = append(lines, "complete -c u128calc -f")
	lines = append(lines, "")

	// Group flags into sections for comments.
	type section struct {
		comment string
		flags   []FlagCompletion
	}

	sections := []section{
		{comment: "# Help and version", flags: filterFlags("help", "version")},
		{comment: "# Calculation", flags: filterFlags("a_short", "b_short", "op", "shift", "strategy")},
		{comment: "# Verification", flags: filterFlags("verify", "random", "seed", "workers", "timeout")},
		{comment: "# Output options", flags: filterFlags("output", "quiet", "verbose", "no-color")},
		{comment: "# Modes", flags: filterFlags("repl", "tui", "serve", "completion")},
	}

	strategyList := formatStrategyList(strategies)

	for _, sec := range sections {
		lines = append(lines, sec.comment)
		for _, f := range sec.flags {
			lines = append(lines, fishCompleteLine(f, strategyList))
		}
		lines = append(lines, "")
	}

	script := strings.Join(lines, "\n")

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// filterFlags returns flags from the registry matching the given identifiers.
// An identifier is a Long name, or "X_short" to match a flag by Short name only.
func filterFlags(ids ...string) []FlagCompletion {
	var result []FlagCompletion
	for _, id := range ids {
		if strings.HasSuffix(id, "_short") {
			short := strings.TrimSuffix(id, "_short")
			for _, f := range flagRegistry {
				if f.Short == short && f.Long == "" {
					result = append(result, f)
					break
				}
			}
		} else {
			for _, f := range flagRegistry {
				if f.Long == id {
					result = append(result, f)
					break
				}
			}
		}
	}
	return result
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, strategyList string) string {
	var parts []string
	parts = append(parts, "complete -c u128calc")

	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	if f.Long != "" {
		parts = append(parts, fmt.Sprintf("-l %s", f.Long))
	}

	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	if f.IsFile {
		parts = append(parts, "-rF")
	} else if f.IsStrategy {
		parts = append(parts, fmt.Sprintf("-xa 'auto %s'", strategyList))
	} else if len(f.Values) > 0 {
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	} else if f.ValueName != "" {
		// Takes a value but no suggestions (e.g., -a)
		parts = append(parts, "-x")
	}

	return strings.Join(parts, " ")
}

// generatePowerShellCompletion generates a PowerShell completion script.
func generatePowerShellCompletion(out io.Writer, strategies []string) error {
	// Build $options entries from registry
	var optionEntries []string
	for _, f := range flagRegistry {
		if f.Short != "" {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '-%s'; Description = '%s' }", f.Short, f.Help))
		}
		if f.Long != "" {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '--%s'; Description = '%s' }", f.Long, f.Help))
		}
	}

	// Build context-aware switch entries: strategy first, then flags with
	// static value suggestions.
	var switchEntries []string

	for _, f := range flagRegistry {
		if f.IsStrategy {
			switchEntries = append(switchEntries, fmt.Sprintf(`        '--%s' {
            $u128calcStrategies | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long))
		}
	}

	for _, f := range flagRegistry {
		if f.IsStrategy || f.IsFile || len(f.Values) == 0 {
			continue
		}
		var quotedVals []string
		for _, v := range f.Values {
			quotedVals = append(quotedVals, fmt.Sprintf("'%s'", v))
		}
		switchEntries = append(switchEntries, fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, strings.Join(quotedVals, ", ")))
	}

	// Format strategy list for PowerShell
	psStrategyList := "'auto'"
	for _, s := range strategies {
		psStrategyList += fmt.Sprintf(", '%s'", s)
	}

	script := fmt.Sprintf(`# PowerShell completion script for u128calc
# Add this to your $PROFILE

$u128calcStrategies = @(%s)

Register-ArgumentCompleter -CommandName 'u128calc' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $lastElement = if ($elements.Count -gt 1) { $elements[-1].ToString() } else { '' }
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    # Context-aware completions
    switch ($prevElement) {
%s
    }

    # Default: show options
    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, psStrategyList, strings.Join(optionEntries, "\n"), strings.Join(switchEntries, "\n"))

	_, err := fmt.Fprint(out, script)
	return err
}
