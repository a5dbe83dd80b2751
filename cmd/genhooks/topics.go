package genhooks

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/genhooks/pkg/cobrax/topics"
	"github.com/arthur-debert/genhooks/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

const topicWidth = 80

// installTopics adds the embedded help topics to root
func installTopics(root *cobra.Command) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}

	var renderer topics.Renderer = &topics.PlainRenderer{}
	if ui.Resolve(ui.FormatAuto, root.OutOrStdout()) == ui.FormatTerminal {
		renderer = topics.NewGlamourRenderer(topicWidth)
	}

	m, err := topics.Load(afero.FromIOFS{FS: sub}, ".", topics.Options{Renderer: renderer})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	topics.Install(root, m)
}
