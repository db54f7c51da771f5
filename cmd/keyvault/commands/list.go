package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print stored public keys for a role",
		RunE: func(cmd *cobra.Command, args []string) error {
			kt, err := keyType()
			if err != nil {
				return err
			}
			pubs, err := wire.Keys.PublicKeys(kt)
			if err != nil {
				return err
			}
			for _, pub := range pubs {
				fmt.Println(pub)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&keyTypeFlag, "keytype", "", "4-character role tag (babe, gran, ...)")
	return cmd
}
