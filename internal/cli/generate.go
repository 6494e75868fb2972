package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/kumo-ai/kumo-skills-catalog/internal/catalog"
	"github.com/kumo-ai/kumo-skills-catalog/internal/config"
	"github.com/kumo-ai/kumo-skills-catalog/internal/logging"
	"github.com/kumo-ai/kumo-skills-catalog/internal/model"
	"github.com/kumo-ai/kumo-skills-catalog/internal/readme"
	"github.com/kumo-ai/kumo-skills-catalog/internal/ui"
	"github.com/kumo-ai/kumo-skills-catalog/internal/util"
)

// ErrOutOfDate is returned in check mode when the README would change.
var ErrOutOfDate = errors.New("README is out of date")

func generateAction(ctx context.Context, cmd *cli.Command) error {
	root := util.ExpandPath(cmd.String("root"))
	return Generate(ctx, root, cmd.Bool("check"), cmd.Root().Writer)
}

// Generate scans root, renders the catalog document and, unless check is
// set, writes it when it differs from the file on disk. One status line is
// printed to w.
func Generate(ctx context.Context, root string, check bool, w io.Writer) error {
	logger := logging.WithContext(ctx)
	defer logging.Timer("generate")()

	cfg, records, err := loadCatalog(root)
	if err != nil {
		return err
	}

	content := readme.NewRenderer(cfg.Header()).Render(records)
	path := cfg.OutputPath(root)
	name := cfg.OutputName()

	var result readme.Result
	if check {
		result, err = readme.Compare(path, content)
	} else {
		result, err = readme.WriteIfChanged(path, content)
	}
	if err != nil {
		return err
	}

	logger.Info("catalog rendered",
		logging.Path(path),
		logging.Count(len(records)),
		slog.String("result", result.String()),
	)

	switch {
	case result == readme.UpToDate:
		_, _ = fmt.Fprintln(w, ui.Dim(name+" is already up to date."))
	case check:
		_, _ = fmt.Fprintln(w, ui.Warning(name+" is out of date."))
		return ErrOutOfDate
	default:
		_, _ = fmt.Fprintln(w, ui.Success(name+" updated."))
	}

	return nil
}

// loadCatalog reads the configuration under root and extracts every record.
func loadCatalog(root string) (*config.Config, []model.SkillRecord, error) {
	cfg, err := config.LoadFromDir(root)
	if err != nil {
		return nil, nil, err
	}

	records, err := catalog.New(root, cfg.SkillFile).Records()
	if err != nil {
		return nil, nil, err
	}

	return cfg, records, nil
}
