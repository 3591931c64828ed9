package commands

import (
	"github.com/spf13/cobra"

	"roster/internal/app"
)

// cli carries flag values and the app built for the running command.
type cli struct {
	home        string
	passphrase  string
	store       string
	credentials string
	codec       string
	logLevel    string

	app *app.App
}

// Execute runs the root command against os.Args. The app is closed however
// the command ends; cobra skips post-run hooks when RunE fails.
func Execute() error {
	c := &cli{}
	defer c.close()
	return c.rootCmd().Execute()
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	return (&cli{}).rootCmd()
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "roster",
		Short:         "Keep several signed-in accounts and switch between them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.close()
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&c.home, "home", "", "config dir (default ~/.roster)")
	f.StringVarP(&c.passphrase, "passphrase", "p", "", "passphrase for the passphrase credential store")
	f.StringVar(&c.store, "store", "", "account store name (overrides config)")
	f.StringVar(&c.credentials, "credentials", "", "credential store: passthrough, passphrase or keychain")
	f.StringVar(&c.codec, "codec", "", "file codec: json or msgpack")
	f.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn or error")

	root.AddCommand(
		c.addCmd(),
		c.loginCmd(),
		c.listCmd(),
		c.currentCmd(),
		c.switchCmd(),
		c.renameCmd(),
		c.refreshCmd(),
		c.removeCmd(),
		c.tokenCmd(),
		c.historyCmd(),
	)
	return root
}

func (c *cli) setup(cmd *cobra.Command) error {
	if c.home == "" {
		home, err := app.DefaultHome()
		if err != nil {
			return err
		}
		c.home = home
	}
	cfg, err := app.LoadConfig(c.home)
	if err != nil {
		return err
	}
	cfg.Passphrase = c.passphrase
	override(&cfg.Store, c.store)
	override(&cfg.Credentials, c.credentials)
	override(&cfg.Codec, c.codec)
	override(&cfg.LogLevel, c.logLevel)

	logger, err := app.NewLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a, err := app.New(cfg, logger)
	if err != nil {
		return err
	}
	c.app = a
	return nil
}

// close releases the app. It is safe to call more than once.
func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

func override(dst *string, flag string) {
	if flag != "" {
		*dst = flag
	}
}
