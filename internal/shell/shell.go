// Package shell is the plain line-oriented front-end, used when stdin or
// stdout is not a terminal.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/vvka-141/bytecrawl/internal/command"
	"github.com/vvka-141/bytecrawl/internal/session"
)

// clearScreen homes the cursor and erases the display.
const clearScreen = "\033[H\033[2J"

// Run reads commands from in until exit, end of input or ctx is done.
// Prompts, command output and errors all go to out; s.Out should be out
// too so program output interleaves with prompts.
func Run(ctx context.Context, s *session.Session, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	fmt.Fprintln(out, command.Greeting(s))
	s.Logger.Verbose("line shell started")

	for {
		fmt.Fprintf(out, "%s> ", s.FS.Pwd())

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			fmt.Fprintln(out, command.Farewell)
			return nil
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				fmt.Fprintln(out, command.Farewell)
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("failed to read input: %w", err)
					}
				default:
				}
				return nil
			}
			line = l
		}

		outcome, err := command.Dispatch(s, line)
		if err != nil {
			fmt.Fprintln(out, err)
		}
		switch outcome {
		case command.Clear:
			fmt.Fprint(out, clearScreen)
		case command.Exit:
			fmt.Fprintln(out, command.Farewell)
			return nil
		}
	}
}
