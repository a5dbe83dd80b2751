package genhooks

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/genhooks/internal/version"
	"github.com/arthur-debert/genhooks/pkg/config"
	"github.com/arthur-debert/genhooks/pkg/errors"
	"github.com/arthur-debert/genhooks/pkg/filesystem"
	"github.com/arthur-debert/genhooks/pkg/logging"
	"github.com/arthur-debert/genhooks/pkg/maven"
	"github.com/arthur-debert/genhooks/pkg/normalize"
	"github.com/arthur-debert/genhooks/pkg/ui"
	"github.com/arthur-debert/genhooks/pkg/validate"
	"github.com/arthur-debert/genhooks/pkg/variant"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// contextFlags are shared by the commands that read the template context
type contextFlags struct {
	contextFile string
	set         []string
}

func (f *contextFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.contextFile, "context", "c", "", MsgFlagContext)
	cmd.Flags().StringArrayVar(&f.set, "set", nil, MsgFlagSet)
}

func (f *contextFlags) load() (config.Context, error) {
	overrides, err := config.ParseOverrides(f.set)
	if err != nil {
		return nil, err
	}
	return config.Load(config.LoadOptions{
		ContextFile: f.contextFile,
		Overrides:   overrides,
	})
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		format    string
	)

	rootCmd := &cobra.Command{
		Use:     logging.AppName,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.SetupLogger(verbosity)
			logging.LogCommand(cmd.Name(), args)
			_, err := ui.ParseFormat(format)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&format, "format", ui.FormatAuto.String(), MsgFlagFormat)

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newVariantCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	installTopics(rootCmd)

	return rootCmd
}

// newPrinter builds a printer on the command's stdout honoring --format
func newPrinter(cmd *cobra.Command) (*ui.Printer, error) {
	value, _ := cmd.Root().PersistentFlags().GetString("format")
	format, err := ui.ParseFormat(value)
	if err != nil {
		return nil, err
	}
	return ui.NewPrinter(cmd.OutOrStdout(), format), nil
}

func newValidateCmd() *cobra.Command {
	var flags contextFlags

	cmd := &cobra.Command{
		Use:     "validate",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		Example: MsgValidateExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			ctx, err := flags.load()
			if err != nil {
				return err
			}
			return validate.Run(ctx, printer)
		},
	}
	flags.register(cmd)
	return cmd
}

func newNormalizeCmd() *cobra.Command {
	var (
		flags       contextFlags
		root        string
		variantFile string
	)

	cmd := &cobra.Command{
		Use:     "normalize",
		Short:   MsgNormalizeShort,
		Long:    MsgNormalizeLong,
		Example: MsgNormalizeExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printer, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			ctx, err := flags.load()
			if err != nil {
				return err
			}
			v, err := loadVariant(variantFile)
			if err != nil {
				return err
			}
			projectRoot, err := filepath.Abs(root)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, MsgErrResolveRoot, root)
			}

			log.Info().
				Str("root", projectRoot).
				Str("variant", v.Name).
				Str("package", ctx.JavaPackage()).
				Msg("Normalizing generated project")

			printer.Header(ui.MsgConfiguring)

			fs := filesystem.NewOS()
			n := normalize.New(fs, projectRoot, v, ctx, normalize.WithReporter(printer))
			if _, err := n.Run(); err != nil {
				return err
			}

			printer.Summary(ui.Summary{
				ProjectName: ctx.Get(config.KeyProjectName),
				Directory:   ctx.Get(config.KeyProjectSlug),
				Package:     ctx.JavaPackage(),
				Maven:       readCoordinates(fs, projectRoot),
			})
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&root, "root", "r", ".", MsgFlagRoot)
	cmd.Flags().StringVar(&variantFile, "variant", "", MsgFlagVariant)
	return cmd
}

func loadVariant(file string) (*variant.Variant, error) {
	if file == "" {
		return variant.Default(), nil
	}
	return variant.Load(file)
}

// readCoordinates returns nil when the project has no readable pom
func readCoordinates(fs afero.Fs, root string) *maven.Coordinates {
	pom := filepath.Join(root, maven.PomFile)
	if ok, _ := afero.Exists(fs, pom); !ok {
		return nil
	}
	coords, err := maven.ReadCoordinates(fs, pom)
	if err != nil {
		log.Warn().Err(err).Str("path", pom).Msg("Skipping Maven coordinates")
		return nil
	}
	return coords
}

func newVariantCmd() *cobra.Command {
	var variantFile string

	cmd := &cobra.Command{
		Use:   "variant",
		Short: MsgVariantShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadVariant(variantFile)
			if err != nil {
				return err
			}
			data, err := v.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&variantFile, "variant", "", MsgFlagVariant)
	return cmd
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
		Long:                  MsgCompletionLong,
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
