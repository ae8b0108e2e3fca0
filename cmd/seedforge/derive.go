package main

import (
	"encoding/hex"
	"fmt"

	"github.com/seedforge/seedforge/internal/config"
	"github.com/seedforge/seedforge/internal/core/application"
	"github.com/seedforge/seedforge/internal/core/domain"
	"github.com/seedforge/seedforge/pkg/derivation/bip39"
	"github.com/seedforge/seedforge/pkg/derivation/bip85"
	"github.com/spf13/cobra"
)

var (
	deriveApplication string
	deriveMnemonic    string
	derivePassphrase  string
	deriveSeed        string
	deriveXprv        string
	deriveLanguage    string
	deriveWordCount   int
	deriveLength      int
	deriveSides       int
	deriveRolls       int
	deriveIndex       uint32

	deriveCmd = &cobra.Command{
		Use:   "derive",
		Short: "derive an application secret",
		Long: "this command derives a deterministic secret for the given " +
			"application (words, hex, base64, base85, wif, xprv, dice, raw, " +
			"drng) from a mnemonic, a raw seed or a master extended private " +
			"key piped from the xprv command",
		RunE: runDerive,
	}
)

func init() {
	deriveCmd.Flags().StringVar(
		&deriveApplication, "application", "", "application to derive for",
	)
	deriveCmd.Flags().StringVar(
		&deriveMnemonic, "mnemonic", "", "space separated word list as seed source",
	)
	deriveCmd.Flags().StringVar(
		&derivePassphrase, "passphrase", "", "optional mnemonic passphrase",
	)
	deriveCmd.Flags().StringVar(
		&deriveSeed, "seed", "", "raw seed in hex as seed source",
	)
	deriveCmd.Flags().StringVar(
		&deriveXprv, "xprv", "", "master extended private key as seed source",
	)
	deriveCmd.Flags().StringVar(
		&deriveLanguage, "language", config.GetString(config.LanguageKey),
		"wordlist language of derived mnemonics",
	)
	deriveCmd.Flags().IntVar(
		&deriveWordCount, "words", config.GetInt(config.WordCountKey),
		"number of words of derived mnemonics",
	)
	deriveCmd.Flags().IntVar(
		&deriveLength, "length", 24,
		"output length in bytes or characters, depending on the application",
	)
	deriveCmd.Flags().IntVar(&deriveSides, "sides", 6, "number of die sides")
	deriveCmd.Flags().IntVar(&deriveRolls, "rolls", 10, "number of die rolls")
	deriveCmd.Flags().Uint32Var(
		&deriveIndex, "index", 0, "child index of the derived secret",
	)
	deriveCmd.MarkFlagRequired("application")
}

func runDerive(cmd *cobra.Command, args []string) error {
	svc, err := getDeriverService()
	if err != nil {
		return err
	}

	spec := domain.ApplicationSpec{
		Application: bip85.Application(deriveApplication),
		Words:       deriveWordCount,
		Language:    bip39.Language(deriveLanguage),
		Length:      deriveLength,
		Sides:       deriveSides,
		Rolls:       deriveRolls,
		Index:       deriveIndex,
		Network:     config.GetNetwork(),
	}

	out, err := deriveOutput(svc, spec)
	if err != nil {
		printErr(err)
		return nil
	}

	fmt.Println(out.String())
	return nil
}

func deriveOutput(
	svc *application.DeriverService, spec domain.ApplicationSpec,
) (*domain.EncodedOutput, error) {
	if deriveXprv != "" {
		return svc.DeriveSecretFromExtendedKey(deriveXprv, spec)
	}
	if deriveSeed != "" {
		seed, err := hex.DecodeString(deriveSeed)
		if err != nil {
			return nil, fmt.Errorf("invalid seed hex: %s", err)
		}
		return svc.DeriveSecret(application.DeriveSecretRequest{
			Seed: seed, Spec: spec,
		})
	}
	if deriveMnemonic != "" {
		return svc.DeriveSecret(application.DeriveSecretRequest{
			Mnemonic:   splitWords(deriveMnemonic),
			Passphrase: derivePassphrase,
			Language:   bip39.Language(deriveLanguage),
			Spec:       spec,
		})
	}

	encodedKey, err := readStdinString()
	if err != nil {
		return nil, err
	}
	return svc.DeriveSecretFromExtendedKey(encodedKey, spec)
}
