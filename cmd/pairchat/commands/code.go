package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pairchat/internal/crypto"
)

// code exercises the crypto provider on its own: generate a key pair and a
// pairing code, print both the code and the key fingerprint.
func codeCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "code",
		Short: "Generate a pairing code and key fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			provider := crypto.New(length)
			defer provider.Reset()

			if err := provider.GenerateKeyPair(cmd.Context()); err != nil {
				return err
			}
			code, err := provider.GeneratePairingCode(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("code:        %s\n", code)
			fmt.Printf("fingerprint: %s\n", provider.Fingerprint())
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", crypto.DefaultCodeLength, "pairing code length")
	return cmd
}
