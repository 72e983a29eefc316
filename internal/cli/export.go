package cli

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdlive/internal/logging"
	"github.com/yaklabco/mdlive/pkg/config"
	"github.com/yaklabco/mdlive/pkg/export"
	"github.com/yaklabco/mdlive/pkg/fsutil"
)

type exportFlags struct {
	output     string
	flavor     string
	standalone bool
	title      string
}

func newExportCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Convert a Markdown file to HTML",
		Long: `Render a Markdown file to HTML with CommonMark or GitHub Flavored Markdown.

Output goes to stdout unless --output is given. --standalone wraps the body
in a complete page whose font size follows theme.text_size.`,
		Example: `  mdlive export README.md > readme.html
  mdlive export --flavor gfm --standalone -o site/index.html README.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write HTML to this file")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "", "markdown flavor: commonmark, gfm (default from config)")
	cmd.Flags().BoolVar(&flags.standalone, "standalone", false, "emit a complete HTML page")
	cmd.Flags().StringVar(&flags.title, "title", "", "page title for --standalone (default: file name)")

	return cmd
}

func runExport(cmd *cobra.Command, path string, flags *exportFlags) error {
	ctx := commandContext(cmd)

	cli := &config.Config{
		Export: config.ExportConfig{
			Flavor:     config.Flavor(flags.flavor),
			Standalone: flags.standalone,
		},
	}
	st, err := loadSettings(cmd, cli)
	if err != nil {
		return err
	}

	text, _, err := fsutil.ReadDocument(ctx, path)
	if err != nil {
		return err
	}

	var opts []export.Option
	if st.cfg.Export.Standalone {
		title := flags.title
		if title == "" {
			title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		opts = append(opts, export.WithStandalone(title), export.WithTextSize(st.cfg.Theme.TextSize))
	}

	exporter := export.New(string(st.cfg.Export.Flavor), opts...)

	var buf bytes.Buffer
	if err := exporter.Render(&buf, text); err != nil {
		return err
	}

	if flags.output == "" {
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	if err := fsutil.WriteAtomic(ctx, flags.output, buf.Bytes(), fsutil.DefaultFileMode); err != nil {
		return err
	}
	st.logger.Info("exported",
		logging.FieldInput, path,
		logging.FieldOutput, flags.output,
		logging.FieldFlavor, exporter.Flavor(),
	)
	return nil
}
