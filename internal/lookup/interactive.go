package lookup

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/mbdg/internal/model"
)

const (
	// Prompt is printed before each interactive query.
	Prompt = "> Please input a dictionary entry to look up [Q to quit]:"

	// QuitCommand ends the interactive loop. It is compared without trimming.
	QuitCommand = "Q"
)

// Decorator rewrites a formatted result before it is printed.
type Decorator func(result model.Result, formatted string) string

// Interactive prompts for queries on in and prints each result to out
// until QuitCommand is read or in is exhausted.
func (s *Service) Interactive(ctx context.Context, in io.Reader, out io.Writer, decorate Decorator) error {
	scanner := s.newScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, Prompt); err != nil {
			return err
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		input := strings.TrimSuffix(scanner.Text(), "\r")
		if input == QuitCommand {
			return nil
		}

		result := s.Resolve(ctx, input)
		line := FormatResult(result)
		if !strings.HasSuffix(line, "\n") {
			line += "\n"
		}
		if decorate != nil {
			line = decorate(result, line)
		}
		if _, err := io.WriteString(out, line); err != nil {
			return err
		}
	}
}
