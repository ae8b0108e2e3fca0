package main

import (
	"fmt"
	"strings"

	"github.com/seedforge/seedforge/internal/config"
	"github.com/seedforge/seedforge/pkg/derivation/bip39"
	"github.com/spf13/cobra"
)

var (
	mnemonicLanguage  string
	mnemonicWordCount int

	mnemonicCmd = &cobra.Command{
		Use:   "mnemonic",
		Short: "generate a random mnemonic",
		Long: "this command lets you generate a new random checksummed " +
			"mnemonic in the given language",
		RunE: generateMnemonic,
	}
)

func init() {
	mnemonicCmd.Flags().StringVar(
		&mnemonicLanguage, "language", config.GetString(config.LanguageKey),
		"wordlist language",
	)
	mnemonicCmd.Flags().IntVar(
		&mnemonicWordCount, "words", config.GetInt(config.WordCountKey),
		"number of words (12, 15, 18, 21 or 24)",
	)
}

func generateMnemonic(cmd *cobra.Command, args []string) error {
	svc, err := getDeriverService()
	if err != nil {
		return err
	}

	words, err := svc.GenerateMnemonic(
		bip39.Language(mnemonicLanguage), mnemonicWordCount,
	)
	if err != nil {
		printErr(err)
		return nil
	}

	fmt.Println(strings.Join(words, " "))
	return nil
}
