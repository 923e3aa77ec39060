// Interactive calculator session (Read-Eval-Print Loop) for 128-bit
// arithmetic and multiplier verification.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/u128calc/internal/format"
	"github.com/agbru/u128calc/internal/ui"
	"github.com/agbru/u128calc/internal/uint128"
	"github.com/agbru/u128calc/internal/verify"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// DefaultStrategy selects the multiplier used for products.
	DefaultStrategy string
	// RandomCases is the corpus size for the verify command.
	RandomCases int
	// Seed seeds the verify command's corpus generator.
	Seed int64
	// HexOutput displays results in hexadecimal format only.
	HexOutput bool
}

// REPL represents an interactive 128-bit calculator session.
type REPL struct {
	config          REPLConfig
	multipliers     map[string]uint128.Multiplier
	currentStrategy string
	in              io.Reader
	out             io.Writer
}

// NewREPL creates a new REPL instance.
//
// Parameters:
//   - config: REPL configuration.
//
// Returns:
//   - *REPL: A new REPL instance.
func NewREPL(config REPLConfig) *REPL {
	multipliers := make(map[string]uint128.Multiplier)
	for _, m := range uint128.Multipliers() {
		multipliers[m.Name()] = m
	}

	currentStrategy := config.DefaultStrategy
	if currentStrategy == "" || currentStrategy == "auto" {
		currentStrategy = uint128.DefaultMultiplier().Name()
	}
	if config.RandomCases <= 0 {
		config.RandomCases = verify.DefaultRandomCases
	}

	return &REPL{
		config:          config,
		multipliers:     multipliers,
		currentStrategy: currentStrategy,
		in:              os.Stdin,
		out:             os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"u128> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🔢 128-bit Calculator - Interactive Mode%s              %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %smul <a> <b>%s    - Multiply two values modulo 2^128\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sadd <a> <b>%s    - Add two values modulo 2^128\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sshl <v> <n>%s    - Shift a value left by n bits\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sshr <v> <n>%s    - Shift a value right by n bits\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstrategy <s>%s   - Change multiplier (%s)\n", ui.ColorYellow(), ui.ColorReset(), r.getStrategyList())
	fmt.Fprintf(r.out, "  %sverify [n]%s     - Cross-check the portable multiplier on n random cases\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shex%s            - Toggle hexadecimal-only display\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s         - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s           - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s   - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "Operands accept decimal or 0x-prefixed hexadecimal.\n")
}

// getStrategyList returns a comma-separated list of available multipliers.
func (r *REPL) getStrategyList() string {
	names := make([]string, 0, len(r.multipliers))
	for name := range r.multipliers {
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "mul", "m":
		r.cmdBinary("mul", args)
	case "add", "a":
		r.cmdBinary("add", args)
	case "shl":
		r.cmdShift("shl", args)
	case "shr":
		r.cmdShift("shr", args)
	case "strategy", "st":
		r.cmdStrategy(args)
	case "verify", "v":
		r.cmdVerify(args)
	case "hex":
		r.cmdHex()
	case "status":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
	}

	return true
}

// parseOperand reads a single 128-bit operand, reporting errors to the user.
func (r *REPL) parseOperand(s string) (uint128.Uint128, bool) {
	v, err := uint128.FromString(s)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), s, ui.ColorReset())
		return uint128.Zero, false
	}
	return v, true
}

// cmdBinary handles the "mul" and "add" commands.
func (r *REPL) cmdBinary(op string, args []string) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: %s <a> <b>%s\n", ui.ColorRed(), op, ui.ColorReset())
		return
	}

	a, ok := r.parseOperand(args[0])
	if !ok {
		return
	}
	b, ok := r.parseOperand(args[1])
	if !ok {
		return
	}

	start := time.Now()
	var result uint128.Uint128
	switch op {
	case "mul":
		result = r.multiply(a, b)
	case "add":
		result = a.Add(b)
	}
	r.displayValue(result, time.Since(start))
}

// multiply routes 64-bit operand pairs through the selected multiplier so the
// strategy command is observable; wider operands use the full 128-bit product.
func (r *REPL) multiply(a, b uint128.Uint128) uint128.Uint128 {
	if m, ok := r.multipliers[r.currentStrategy]; ok && a.Hi() == 0 && b.Hi() == 0 {
		return m.Product(a.Lo(), b.Lo())
	}
	return a.Mul(b)
}

// cmdShift handles the "shl" and "shr" commands.
func (r *REPL) cmdShift(op string, args []string) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: %s <value> <bits>%s\n", ui.ColorRed(), op, ui.ColorReset())
		return
	}

	v, ok := r.parseOperand(args[0])
	if !ok {
		return
	}
	n, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil || n > 127 {
		fmt.Fprintf(r.out, "%sShift amount must be between 0 and 127.%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	start := time.Now()
	var result uint128.Uint128
	switch op {
	case "shl":
		result = v.Lsh(uint(n))
	case "shr":
		result = v.Rsh(uint(n))
	}
	r.displayValue(result, time.Since(start))
}

// displayValue renders a computed value according to the display mode.
func (r *REPL) displayValue(v uint128.Uint128, duration time.Duration) {
	fmt.Fprintf(r.out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Time: %s%s%s\n",
		ui.ColorYellow(), format.FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(r.out, "  Hex:  %s%s%s\n", ui.ColorGreen(), v.Hex(), ui.ColorReset())
	if !r.config.HexOutput {
		fmt.Fprintf(r.out, "  Dec:  %s%d%s\n", ui.ColorGreen(), v, ui.ColorReset())
	}
	fmt.Fprintln(r.out)
}

// cmdStrategy handles the "strategy" command.
func (r *REPL) cmdStrategy(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: strategy <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available strategies: %s\n", r.getStrategyList())
		return
	}

	name := strings.ToLower(args[0])
	if _, ok := r.multipliers[name]; !ok {
		fmt.Fprintf(r.out, "%sUnknown strategy: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available strategies: %s\n", r.getStrategyList())
		return
	}

	r.currentStrategy = name
	fmt.Fprintf(r.out, "Strategy changed to: %s%s%s\n", ui.ColorGreen(), name, ui.ColorReset())
}

// cmdVerify handles the "verify" command.
func (r *REPL) cmdVerify(args []string) {
	cases := r.config.RandomCases
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			fmt.Fprintf(r.out, "%sInvalid case count: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
			return
		}
		cases = n
	}

	subject := uint128.PortableMultiplier{}
	reference := uint128.HardwareMultiplier{}

	fmt.Fprintf(r.out, "Verifying %s%s%s against %s%s%s on %s%d%s random cases...\n",
		ui.ColorCyan(), subject.Name(), ui.ColorReset(),
		ui.ColorCyan(), reference.Name(), ui.ColorReset(),
		ui.ColorMagenta(), cases, ui.ColorReset())

	start := time.Now()
	report := verify.Run(subject, reference, verify.Corpus(cases, r.config.Seed))
	duration := time.Since(start)

	CLIResultPresenter{}.PresentVerificationReport(report, duration, r.out)
	fmt.Fprintln(r.out)
}

// cmdHex toggles hexadecimal-only output mode.
func (r *REPL) cmdHex() {
	r.config.HexOutput = !r.config.HexOutput
	status := "disabled"
	if r.config.HexOutput {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Hexadecimal-only display: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Strategy:     %s%s%s\n", ui.ColorCyan(), r.currentStrategy, ui.ColorReset())
	fmt.Fprintf(r.out, "  Verify cases: %s%d%s\n", ui.ColorCyan(), r.config.RandomCases, ui.ColorReset())
	fmt.Fprintf(r.out, "  Verify seed:  %s%d%s\n", ui.ColorCyan(), r.config.Seed, ui.ColorReset())
	hexStatus := "no"
	if r.config.HexOutput {
		hexStatus = "yes"
	}
	fmt.Fprintf(r.out, "  Hex only:     %s%s%s\n", ui.ColorCyan(), hexStatus, ui.ColorReset())
	fmt.Fprintln(r.out)
}
