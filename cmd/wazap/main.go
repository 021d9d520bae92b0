package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/wazap-ai/wazap-go/internal/cliconfig"
	"github.com/wazap-ai/wazap-go/pkg/log"
	"github.com/wazap-ai/wazap-go/pkg/wazap"
)

const longHelp = `Send WhatsApp messages through the Wazap API from your terminal.

Credentials and endpoint are read, in increasing precedence, from
$HOME/.wazap/config.toml, a .env file, WAZAP_* environment variables and flags.`

var exampleUsage = strings.TrimSpace(`
  wazap send --to 5511999999999 --message "hello"
  wazap send-media --to 5511999999999 --media-url https://cdn.example.com/a.pdf --file-name a.pdf
  wazap send-bulk --to 5511999999999 --to 5511888888888 --message "hi" --no-randomize
  wazap send-bulk --contacts-file contacts.json --message "hi"
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return wazap.Version
}

// app carries state shared by all subcommands.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	envPath string
	log     zerolog.Logger
	out     io.Writer
	client  *wazap.Client
}

func main() {
	a := &app{
		cfg: cliconfig.DefaultConfig(),
		log: cliconfig.Logger(false),
		out: os.Stdout,
	}

	root := newRootCmd(a)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		a.log.Error().Err(err).Msg("wazap")
		stop()
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "wazap",
		Short:         "Send messages through the Wazap API",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.wazap/config.toml)")
	pf.StringVar(&a.envPath, "env-file", ".env", "path to a .env file loaded into the environment")
	pf.StringVar(&a.cfg.CompanyToken, "company-token", a.cfg.CompanyToken, "company token (X-Company-Token)")
	pf.StringVar(&a.cfg.AccountToken, "account-token", a.cfg.AccountToken, "account token (X-Account-Token)")
	pf.StringVar(&a.cfg.BaseURL, "base-url", a.cfg.BaseURL, "API base URL")
	if err := pf.MarkHidden("base-url"); err != nil {
		a.log.Info().Err(err).Msg("failed to hide base-url flag")
	}
	pf.DurationVar(&a.cfg.Timeout, "timeout", a.cfg.Timeout, "per-request timeout")
	pf.BoolVarP(&a.cfg.Verbose, "verbose", "v", a.cfg.Verbose, "log requests and responses")

	root.AddCommand(newSendCmd(a), newSendMediaCmd(a), newSendBulkCmd(a))
	return root
}

// setup layers config file, .env, environment and flags, then builds the client.
func (a *app) setup(cmd *cobra.Command) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&a.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.LoadDotEnv(a.envPath); err != nil {
		return err
	}
	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return err
	}

	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.log = cliconfig.Logger(a.cfg.Verbose)
	a.log.Debug().Interface("config", a.cfg.Masked()).Msg("configuration")

	client, err := wazap.New(a.cfg.ClientConfig(),
		wazap.WithLogger(log.NewZerologAdapterWithLogger(a.log)),
	)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	a.client = client
	return nil
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newSendCmd(a *app) *cobra.Command {
	var req wazap.SendTextRequest

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a text message to one recipient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.Messages.Send(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.To, "to", "", "recipient phone, digits with country code")
	f.StringVarP(&req.Message, "message", "m", "", "message text")
	addContactFlags(f, &req.FullName, &req.Email, &req.Document)
	return cmd
}

func newSendMediaCmd(a *app) *cobra.Command {
	var req wazap.SendMediaRequest

	cmd := &cobra.Command{
		Use:   "send-media",
		Short: "Send a media attachment to one recipient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.Messages.SendMedia(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(res)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.To, "to", "", "recipient phone, digits with country code")
	f.StringVarP(&req.Message, "message", "m", "", "optional caption")
	f.StringVar(&req.MediaURL, "media-url", "", "public URL of the attachment")
	f.StringVar(&req.FileName, "file-name", "", "file name shown to the recipient")
	f.StringVar(&req.MimeType, "mime-type", "", "MIME type of the attachment")
	addContactFlags(f, &req.FullName, &req.Email, &req.Document)
	return cmd
}

func newSendBulkCmd(a *app) *cobra.Command {
	var (
		phones       []string
		contactsFile string
		message      string
		noRandomize  bool
	)

	cmd := &cobra.Command{
		Use:   "send-bulk",
		Short: "Send one message to up to 100 recipients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts := wazap.Phones(phones...)
			if contactsFile != "" {
				data, err := os.ReadFile(contactsFile)
				if err != nil {
					return fmt.Errorf("read contacts: %w", err)
				}
				fromFile, err := wazap.ParseContacts(data)
				if err != nil {
					return err
				}
				contacts = append(contacts, fromFile...)
			}

			req := wazap.BulkRequest{Contacts: contacts, Message: message}
			if cmd.Flags().Changed("no-randomize") {
				req.Randomize = wazap.Bool(!noRandomize)
			}

			res, err := a.client.Messages.SendBulk(cmd.Context(), req)
			if err != nil {
				return err
			}
			a.log.Info().
				Str("batch", res.Data.BatchUUID).
				Int("total", res.Data.Summary.Total).
				Int("success", res.Data.Summary.Success).
				Int("failed", res.Data.Summary.Failed).
				Int("invalid", res.Data.Summary.Invalid).
				Msg("bulk send accepted")
			return a.print(res)
		},
	}

	f := cmd.Flags()
	f.StringArrayVar(&phones, "to", nil, "recipient phone (repeatable)")
	f.StringVar(&contactsFile, "contacts-file", "", "JSON array of phones and/or contact objects")
	f.StringVarP(&message, "message", "m", "", "message text")
	f.BoolVar(&noRandomize, "no-randomize", false, "deliver in list order")
	return cmd
}

func addContactFlags(f *pflag.FlagSet, fullName, email, document *string) {
	f.StringVar(fullName, "full-name", "", "recipient full name")
	f.StringVar(email, "email", "", "recipient email")
	f.StringVar(document, "document", "", "recipient document number")
}
