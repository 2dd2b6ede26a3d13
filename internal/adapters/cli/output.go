package cli

import (
	"fmt"
	"os"
)

// Output prints build progress to the terminal. Colors are disabled
// automatically when stdout is not a TTY.
type Output struct {
	enableColors bool
}

func NewOutput() *Output {
	return &Output{
		enableColors: isTerminal(),
	}
}

func (o *Output) DisableColors() {
	o.enableColors = false
}

func (o *Output) green(text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[32m" + text + "\033[0m"
}

func (o *Output) yellow(text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[33m" + text + "\033[0m"
}

func (o *Output) red(text string) string {
	if !o.enableColors {
		return text
	}
	return "\033[31m" + text + "\033[0m"
}

func (o *Output) PrintHeader(msg string) {
	fmt.Println(msg)
	fmt.Println()
}

func (o *Output) PrintStep(msg string, args ...any) {
	fmt.Printf("  "+msg+"\n", args...)
}

func (o *Output) PrintSuccess(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Printf("  "+o.green("✓ ")+"%s\n", formatted)
}

func (o *Output) PrintWarning(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Printf("  "+o.yellow("⚠ ")+"%s\n", formatted)
}

func (o *Output) PrintError(msg string, args ...any) {
	formatted := fmt.Sprintf(msg, args...)
	fmt.Fprintf(os.Stderr, "  "+o.red("✗ ")+"%s\n", formatted)
}

func (o *Output) PrintFile(path string) {
	fmt.Printf("    %s\n", path)
}

func (o *Output) PrintDone(msg string) {
	fmt.Println(msg)
}

func isTerminal() bool {
	stat, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == os.ModeCharDevice
}
