package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Prompts share one buffered reader per input source: piped stdin
// delivers every answer at once, and a reader created per prompt would
// buffer and discard the lines meant for the prompts after it.
var prompts struct {
	mu sync.Mutex
	in io.Reader
	br *bufio.Reader
}

func promptReader(in io.Reader) *bufio.Reader {
	prompts.mu.Lock()
	defer prompts.mu.Unlock()
	if prompts.in != in {
		prompts.in = in
		prompts.br = bufio.NewReader(in)
	}
	return prompts.br
}

// readLine prompts on the command's output and reads one line from its
// input.
func readLine(cmd *cobra.Command, label string) (string, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ", label)
	line, err := promptReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readSecret reads without echo when the input is a terminal; in
// scripts and tests it falls back to a plain line read.
func readSecret(cmd *cobra.Command, label string) (string, error) {
	in := cmd.InOrStdin()
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return readLine(cmd, label)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: ", label)
	raw, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", label, err)
	}
	return strings.TrimSpace(string(raw)), nil
}

// flagOrPrompt returns the flag value when set, else prompts for it.
func flagOrPrompt(cmd *cobra.Command, value, label string, secret bool) (string, error) {
	if value != "" {
		return value, nil
	}
	if secret {
		return readSecret(cmd, label)
	}
	return readLine(cmd, label)
}
