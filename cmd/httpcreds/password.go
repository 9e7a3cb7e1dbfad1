package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// promptPassword is replaced in tests.
var promptPassword = readPassword

func isTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// readPassword prompts on w and reads a password from stdin,
// without echo when stdin is a terminal.
func readPassword(w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)

	// Use os.Stdin.Fd() cast to int for cross-platform compatibility
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		passBytes, err := term.ReadPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(passBytes), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(line), nil
}
