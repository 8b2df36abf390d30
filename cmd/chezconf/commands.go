package chezconf

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/chezconf/internal/version"
	"github.com/arthur-debert/chezconf/pkg/config"
	"github.com/arthur-debert/chezconf/pkg/document"
	"github.com/arthur-debert/chezconf/pkg/errors"
	"github.com/arthur-debert/chezconf/pkg/filesystem"
	"github.com/arthur-debert/chezconf/pkg/logging"
	"github.com/arthur-debert/chezconf/pkg/sections"
	"github.com/arthur-debert/chezconf/pkg/session"
	"github.com/arthur-debert/chezconf/pkg/store"
	"github.com/arthur-debert/chezconf/pkg/ui/display"
	"github.com/arthur-debert/chezconf/pkg/ui/prompt"
)

// Output formats accepted by show
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTree = "tree"
)

type globalFlags struct {
	verbosity    int
	configFile   string
	templateFile string
	noColor      bool
}

// NewRootCmd creates the chezconf command tree.
func NewRootCmd() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:     "chezconf",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd, &flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderer := newRenderer(cfg, out)
			st := store.New(filesystem.NewOS(), cfg.ConfigFile, cfg.TemplateFile)
			p := prompt.NewConsole(cmd.InOrStdin(), out)

			return session.New(st, p, sections.Defaults(out, renderer), out).Run()
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&flags.templateFile, "template", "", MsgFlagTemplate)
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddCommand(newShowCmd(&flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// loadSettings resolves settings, passing on only the flags the user set.
func loadSettings(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	overrides := make(map[string]any)
	pf := cmd.Flags()
	if pf.Changed("config") {
		overrides[config.KeyConfigFile] = flags.configFile
	}
	if pf.Changed("template") {
		overrides[config.KeyTemplateFile] = flags.templateFile
	}
	if pf.Changed("no-color") {
		overrides[config.KeyNoColor] = flags.noColor
	}

	cfg, err := config.Load("", overrides)
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadSettings, err)
	}
	return cfg, nil
}

func newRenderer(cfg *config.Config, out io.Writer) *display.Renderer {
	f, ok := out.(*os.File)
	return display.NewRenderer(ok && !cfg.NoColor && display.DetectColor(f))
}

func newShowCmd(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "show",
		Short:   MsgShowShort,
		Long:    MsgShowLong,
		Example: MsgShowExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.show")

			cfg, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}

			st := store.New(filesystem.NewOS(), cfg.ConfigFile, cfg.TemplateFile)
			doc, source, err := st.Preview()
			if err != nil {
				return err
			}
			logger.Info().Str("source", source.String()).Str("format", format).Msg("Showing configuration")

			out := cmd.OutOrStdout()
			return writeDocument(out, doc, format, newRenderer(cfg, out))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatTOML, MsgFlagFormat)
	return cmd
}

func writeDocument(out io.Writer, doc *document.Table, format string, renderer *display.Renderer) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatTOML:
		data, err = document.Marshal(doc)
	case FormatYAML:
		data, err = yaml.Marshal(doc)
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	case FormatTree:
		data = []byte(renderer.Render(doc))
	default:
		return errors.Newf(errors.ErrInvalidInput, MsgErrUnknownFmt, format).
			WithDetail("format", format)
	}
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
