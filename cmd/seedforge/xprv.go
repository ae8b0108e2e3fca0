package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	xprvMnemonic   string
	xprvPassphrase string

	xprvCmd = &cobra.Command{
		Use:   "xprv",
		Short: "export the master extended private key",
		Long: "this command stretches the given mnemonic and optional " +
			"passphrase into the root seed and prints the base58 master " +
			"extended private key, ready to be piped into the derive command",
		RunE: runXprv,
	}
)

func init() {
	xprvCmd.Flags().StringVar(
		&xprvMnemonic, "mnemonic", "", "space separated word list",
	)
	xprvCmd.Flags().StringVar(
		&xprvPassphrase, "passphrase", "", "optional mnemonic passphrase",
	)
}

func runXprv(cmd *cobra.Command, args []string) error {
	svc, err := getDeriverService()
	if err != nil {
		return err
	}

	words, err := readMnemonic(xprvMnemonic)
	if err != nil {
		return err
	}
	passphrase, err := readPassphrase(xprvPassphrase, xprvMnemonic == "")
	if err != nil {
		return err
	}

	encodedKey, err := svc.MasterKeyFromMnemonic(words, passphrase)
	if err != nil {
		printErr(err)
		return nil
	}

	fmt.Println(encodedKey)
	return nil
}
