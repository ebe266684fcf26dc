package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configFile  string
	walletPath  string
	backendName string
	mongoURI    string
)

func main() {
	root := &cobra.Command{
		Use:   "walletctl",
		Short: "Encrypted trading wallet management",
		Long: `walletctl creates and services the encrypted key vault used by the
trading bot. Key material only ever exists in memory behind a passphrase;
the persisted blob is Argon2id + AES-256-GCM sealed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to TOML config file")
	root.PersistentFlags().StringVar(&walletPath, "wallet", "", "wallet blob path (overrides config)")
	root.PersistentFlags().StringVar(&backendName, "backend", "", "curve backend: secp256k1 or ed25519")
	root.PersistentFlags().StringVar(&mongoURI, "mongo", "", "MongoDB URI for wallet storage (optional)")

	root.AddCommand(initCmd(), addressCmd(), unlockCmd(), importCmd(), inspectCmd())

	if err := root.Execute(); err != nil {
		os.Stderr.WriteString("error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
