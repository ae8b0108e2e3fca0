package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/seedforge/seedforge/internal/config"
	"github.com/seedforge/seedforge/internal/core/application"
	"golang.org/x/term"
)

func getDeriverService() (*application.DeriverService, error) {
	return application.NewDeriverService(
		config.GetNetwork(), config.GetLanguages(),
	)
}

// readMnemonic returns the phrase passed via flag, or reads it from stdin:
// from the pipe when input is piped, with an interactive prompt otherwise.
func readMnemonic(flagValue string) ([]string, error) {
	if flagValue != "" {
		return strings.Fields(flagValue), nil
	}

	if isPiped(os.Stdin) {
		line, err := readLine(os.Stdin)
		if err != nil {
			return nil, err
		}
		return strings.Fields(line), nil
	}

	fmt.Fprint(os.Stderr, "enter mnemonic: ")
	line, err := readSecretLine()
	if err != nil {
		return nil, err
	}
	return strings.Fields(line), nil
}

// readPassphrase prompts for the optional passphrase without echoing it.
// When input is piped the passphrase must come from the flag.
func readPassphrase(flagValue string, prompt bool) (string, error) {
	if flagValue != "" || !prompt || isPiped(os.Stdin) {
		return flagValue, nil
	}

	fmt.Fprint(os.Stderr, "enter passphrase (empty for none): ")
	return readSecretLine()
}

// readStdinString reads one trimmed line from a pipe, used to chain
// commands like `seedforge xprv | seedforge derive --application hex`.
func readStdinString() (string, error) {
	if !isPiped(os.Stdin) {
		return "", fmt.Errorf("expected input on stdin")
	}
	return readLine(os.Stdin)
}

func isPiped(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

func readLine(f *os.File) (string, error) {
	reader := bufio.NewReader(f)
	line, err := reader.ReadString('\n')
	if err != nil && len(line) == 0 {
		return "", fmt.Errorf("failed to read input: %s", err)
	}
	return strings.TrimSpace(line), nil
}

func readSecretLine() (string, error) {
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %s", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

func splitWords(phrase string) []string {
	return strings.Fields(phrase)
}

func printErr(err error) {
	fmt.Fprintln(os.Stderr, err)
}
