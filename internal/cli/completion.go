// Package cli provides shell completion script generation for various shells.
package cli

import (
	"fmt"
	"io"
)

// GenerateCompletion generates a shell completion script for the specified shell.
//
// Parameters:
//   - out: The writer to output the completion script.
//   - shell: The shell type ("bash", "zsh", "fish", "powershell").
//   - policies: List of available fraction-placement policy names.
//
// Returns:
//   - error: An error if the shell is not supported.
func GenerateCompletion(out io.Writer, shell string, policies []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, policies)
	case "zsh":
		return generateZshCompletion(out, policies)
	case "fish":
		return generateFishCompletion(out, policies)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, policies)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, policies []string) error {
	script := `# Bash completion script for wincalc
# Add this to your ~/.bashrc or ~/.bash_completion

_wincalc_completions() {
    local cur prev opts policies
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="--help -h --version -V -n -r --points --chebyshev --fractions-in --all-policies --precision --verify --form --timeout --json --server --port --no-color --output -o --quiet -q --completion"

    # Available policies
    policies="%s"

    case "${prev}" in
        --fractions-in)
            COMPREPLY=( $(compgen -W "${policies}" -- "${cur}") )
            return 0
            ;;
        --form)
            COMPREPLY=( $(compgen -W "filter convolution both" -- "${cur}") )
            return 0
            ;;
        --completion)
            COMPREPLY=( $(compgen -W "bash zsh fish powershell" -- "${cur}") )
            return 0
            ;;
        --output|-o)
            # File/directory completion
            COMPREPLY=( $(compgen -f -- "${cur}") )
            return 0
            ;;
        --port)
            COMPREPLY=( $(compgen -W "8080 3000 5000 9000" -- "${cur}") )
            return 0
            ;;
        --timeout)
            COMPREPLY=( $(compgen -W "30s 1m 5m 10m" -- "${cur}") )
            return 0
            ;;
        --points)
            COMPREPLY=( $(compgen -W "0,1,-1 0,1,-1,2,-2 0,1,-1,2,-2,1/2,-1/2" -- "${cur}") )
            return 0
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _wincalc_completions wincalc
`
	_, err := fmt.Fprintf(out, script, joinWith(policies, " "))
	return err
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, policies []string) error {
	script := `#compdef wincalc

# Zsh completion script for wincalc
# Add this to your ~/.zshrc or place in $fpath

_wincalc() {
    local -a policies
    policies=(%s)

    _arguments -s \
        '(-h --help)'{-h,--help}'[Show help message]' \
        '(-V --version)'{-V,--version}'[Show version information]' \
        '-n[Output tile size]:number:' \
        '-r[Filter size]:number:' \
        '--points[Interpolation points]:points:(0,1,-1 0,1,-1,2,-2 0,1,-1,2,-2,1/2,-1/2)' \
        '--chebyshev[Use Chebyshev interpolation points]' \
        '--fractions-in[Fraction-placement policy]:policy:($policies)' \
        '--all-policies[Derive under all policies]' \
        '--precision[Significant decimal digits]:digits:' \
        '--verify[Symbolically verify the transforms]' \
        '--form[Presentation form]:form:(filter convolution both)' \
        '--timeout[Maximum execution time]:duration:(30s 1m 5m 10m)' \
        '--json[Output in JSON format]' \
        '--server[Start HTTP server mode]' \
        '--port[Server port]:port:(8080 3000 5000 9000)' \
        '--no-color[Disable colored output]' \
        '(-o --output)'{-o,--output}'[Output file path]:file:_files' \
        '(-q --quiet)'{-q,--quiet}'[Quiet mode for scripts]' \
        '--completion[Generate completion script]:shell:(bash zsh fish powershell)'
}

_wincalc "$@"
`
	_, err := fmt.Fprintf(out, script, joinWith(policies, " "))
	return err
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, policies []string) error {
	script := `# Fish completion script for wincalc
# Add this to ~/.config/fish/completions/wincalc.fish

# Disable file completion by default
complete -c wincalc -f

# Help and version
complete -c wincalc -s h -l help -d 'Show help message'
complete -c wincalc -s V -l version -d 'Show version information'

# Transform selection
complete -c wincalc -s n -d 'Output tile size' -x
complete -c wincalc -s r -d 'Filter size' -x
complete -c wincalc -l points -d 'Interpolation points' -xa '0,1,-1 0,1,-1,2,-2 0,1,-1,2,-2,1/2,-1/2'
complete -c wincalc -l chebyshev -d 'Use Chebyshev interpolation points'
complete -c wincalc -l fractions-in -d 'Fraction-placement policy' -xa '%s'
complete -c wincalc -l all-policies -d 'Derive under all policies'
complete -c wincalc -l precision -d 'Significant decimal digits' -x
complete -c wincalc -l verify -d 'Symbolically verify the transforms'
complete -c wincalc -l form -d 'Presentation form' -xa 'filter convolution both'
complete -c wincalc -l timeout -d 'Maximum execution time' -xa '30s 1m 5m 10m'

# Output options
complete -c wincalc -l json -d 'Output in JSON format'
complete -c wincalc -s o -l output -d 'Output file path' -rF
complete -c wincalc -s q -l quiet -d 'Quiet mode for scripts'
complete -c wincalc -l no-color -d 'Disable colored output'

# Server mode
complete -c wincalc -l server -d 'Start HTTP server mode'
complete -c wincalc -l port -d 'Server port' -xa '8080 3000 5000 9000'

# Completion
complete -c wincalc -l completion -d 'Generate completion script' -xa 'bash zsh fish powershell'
`
	_, err := fmt.Fprintf(out, script, joinWith(policies, " "))
	return err
}

// generatePowerShellCompletion generates a PowerShell completion script.
func generatePowerShellCompletion(out io.Writer, policies []string) error {
	script := `# PowerShell completion script for wincalc
# Add this to your $PROFILE

$wincalcPolicies = @(%s)

Register-ArgumentCompleter -CommandName 'wincalc' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
        @{Name = '-h'; Description = 'Show help message' }
        @{Name = '--help'; Description = 'Show help message' }
        @{Name = '-V'; Description = 'Show version information' }
        @{Name = '--version'; Description = 'Show version information' }
        @{Name = '-n'; Description = 'Output tile size' }
        @{Name = '-r'; Description = 'Filter size' }
        @{Name = '--points'; Description = 'Interpolation points' }
        @{Name = '--chebyshev'; Description = 'Use Chebyshev interpolation points' }
        @{Name = '--fractions-in'; Description = 'Fraction-placement policy' }
        @{Name = '--all-policies'; Description = 'Derive under all policies' }
        @{Name = '--precision'; Description = 'Significant decimal digits' }
        @{Name = '--verify'; Description = 'Symbolically verify the transforms' }
        @{Name = '--form'; Description = 'Presentation form' }
        @{Name = '--timeout'; Description = 'Maximum execution time' }
        @{Name = '--json'; Description = 'Output in JSON format' }
        @{Name = '--server'; Description = 'Start HTTP server mode' }
        @{Name = '--port'; Description = 'Server port' }
        @{Name = '--no-color'; Description = 'Disable colored output' }
        @{Name = '-o'; Description = 'Output file path' }
        @{Name = '--output'; Description = 'Output file path' }
        @{Name = '-q'; Description = 'Quiet mode for scripts' }
        @{Name = '--quiet'; Description = 'Quiet mode for scripts' }
        @{Name = '--completion'; Description = 'Generate completion script' }
    )

    $elements = $commandAst.CommandElements
    $lastElement = if ($elements.Count -gt 1) { $elements[-1].ToString() } else { '' }
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    # Context-aware completions
    switch ($prevElement) {
        '--fractions-in' {
            $wincalcPolicies | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }
        '--form' {
            @('filter', 'convolution', 'both') | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }
        '--completion' {
            @('bash', 'zsh', 'fish', 'powershell') | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }
        '--timeout' {
            @('30s', '1m', '5m', '10m') | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }
        '--port' {
            @('8080', '3000', '5000', '9000') | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }
    }

    # Default: show options
    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`
	quoted := make([]string, len(policies))
	for i, p := range policies {
		quoted[i] = fmt.Sprintf("'%s'", p)
	}
	_, err := fmt.Fprintf(out, script, joinWith(quoted, ", "))
	return err
}

func joinWith(items []string, sep string) string {
	out := ""
	for i, item := range items {
		if i > 0 {
			out += sep
		}
		out += item
	}
	return out
}
