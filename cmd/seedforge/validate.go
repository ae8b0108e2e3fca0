package main

import (
	"fmt"
	"strings"

	"github.com/seedforge/seedforge/internal/config"
	"github.com/seedforge/seedforge/pkg/derivation/bip39"
	"github.com/spf13/cobra"
)

var (
	validateMnemonic string
	validateLanguage string

	validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "validate a mnemonic",
		Long: "this command normalizes the given mnemonic, verifies its " +
			"checksum against the wordlist of the given language and prints " +
			"the normalized phrase",
		RunE: runValidate,
	}
)

func init() {
	validateCmd.Flags().StringVar(
		&validateMnemonic, "mnemonic", "", "space separated word list",
	)
	validateCmd.Flags().StringVar(
		&validateLanguage, "language", config.GetString(config.LanguageKey),
		"wordlist language",
	)
}

func runValidate(cmd *cobra.Command, args []string) error {
	svc, err := getDeriverService()
	if err != nil {
		return err
	}

	words, err := readMnemonic(validateMnemonic)
	if err != nil {
		return err
	}

	normalized, err := svc.ValidateMnemonic(words, bip39.Language(validateLanguage))
	if err != nil {
		printErr(err)
		return nil
	}

	fmt.Println(strings.Join(normalized, " "))
	return nil
}
