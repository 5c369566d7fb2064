package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	sessionx "github.com/tleroux/orderagent/agent/session"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the order agent from the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := wireApp(ctx)
			if err != nil {
				return err
			}
			sess := sessionx.New("")
			log.Info().Str("session_id", sess.ID).Msg("chat session started")

			fmt.Println("Bienvenue dans le chat. Entrez quit ou exit pour quitter le programme")
			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> : ")
				if !scanner.Scan() {
					break
				}
				text := strings.TrimSpace(scanner.Text())
				if text == "" {
					continue
				}
				if lowered := strings.ToLower(text); lowered == "quit" || lowered == "exit" {
					break
				}

				reply, err := sess.Turn(ctx, a.assistant, text)
				if err != nil {
					log.Error().Err(err).Msg("turn failed")
					fmt.Println("Une erreur est survenue pendant le traitement de votre message, veuillez réessayer.")
					continue
				}
				fmt.Println(reply)
			}
			return scanner.Err()
		},
	}
}
