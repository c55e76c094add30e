package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"pairchat/internal/domain"
)

// demo pairs two sessions in one process and relays a short scripted
// exchange between them, then prints both logs.
func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Pair two in-process sessions and exchange messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			host := appWire.NewSession()
			defer host.Close()
			guest := appWire.NewSession()
			defer guest.Close()

			code, err := host.GenerateCode(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("pairing code: %s\n\n", code)

			ok, err := guest.JoinChat(ctx, code)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("join with code %s rejected", code)
			}

			if err := host.SendMessage("hello from the host", domain.TextMessage); err != nil {
				return err
			}
			if err := guest.SendMessage("hello back", domain.TextMessage); err != nil {
				return err
			}

			printLog("host", host.Messages())
			printLog("guest", guest.Messages())
			return nil
		},
	}
}

func printLog(who string, msgs []domain.Message) {
	fmt.Printf("%s log:\n", who)
	for _, m := range msgs {
		fmt.Printf("  [%s] %-4s %s: %s\n",
			m.Timestamp.Format("15:04:05"), m.Sender, m.Type, m.Content)
	}
	fmt.Println()
}
