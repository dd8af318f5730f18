package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/go-drift/genui/pkg/protocol"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate an operation stream without applying it",
		Long: `Check decodes every operation in a stream file and reports structural
errors (missing required fields, unknown operation names) with line
numbers. Nothing is applied.`,
		Usage: "genui check <stream.jsonl>",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("check requires exactly one stream file")
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open stream: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	invalid := 0
	total := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		total++
		if _, err := protocol.DecodeOperation([]byte(text)); err != nil {
			invalid++
			fmt.Fprintf(os.Stderr, "line %d: %v\n", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stream: %w", err)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d operation(s) invalid", invalid, total)
	}
	fmt.Printf("%d operation(s) OK\n", total)
	return nil
}
