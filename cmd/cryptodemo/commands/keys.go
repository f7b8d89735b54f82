package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptodemo/internal/crypto"
)

func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the compiled-in key pair and its fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := appCtx.Params
			key, err := appCtx.Library.ImportPrivateKey(p.PrivateKey, p.Curve)
			if err != nil {
				return err
			}
			defer key.Free()
			x, y, err := key.PublicXY()
			if err != nil {
				return err
			}

			fmt.Printf("Curve: %v (%d-byte coordinates)\n", p.Curve, p.CoordSize)
			fmt.Printf("Private key d:\n%s", crypto.HexBlock(p.PrivateKey, "  "))
			fmt.Printf("Public key Qx:\n%s", crypto.HexBlock(x, "  "))
			fmt.Printf("Public key Qy:\n%s", crypto.HexBlock(y, "  "))
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(x, y))
			return nil
		},
	}
}
