package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/iw2rmb/livemark/document"
	"github.com/iw2rmb/livemark/editor"
	"github.com/iw2rmb/livemark/internal/config"
	"github.com/iw2rmb/livemark/markup"
	"github.com/iw2rmb/livemark/preview"
)

var errNoSource = errors.New("expected exactly one source FILE")

func readSource(cmd *cli.Command) (string, string, error) {
	if cmd.Args().Len() != 1 {
		return "", "", errNoSource
	}
	path := cmd.Args().First()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("unable to read source '%s': %w", path, err)
	}
	return path, string(data), nil
}

func previewConfig(cfg *config.Config, path string, log *zap.Logger) preview.Config {
	return preview.Config{
		Render: cfg.Markup(),
		Images: cfg.ImageLoader(path),
		Logger: log,
	}
}

func runDecorations(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	path, text, err := readSource(cmd)
	if err != nil {
		return err
	}

	engine := preview.New(previewConfig(e.Cfg, path, e.Log))
	st := engine.State(text, document.Cursor(int(cmd.Int("cursor"))))
	set := engine.Decorations(st)
	e.Log.Debug("Computed decorations", zap.String("file", path), zap.Int("cursor", st.Selection.Head), zap.Int("count", len(set)))

	w := cmd.Root().Writer
	for _, d := range set {
		if _, err := fmt.Fprintf(w, "%s %d %d %q\n", d.Kind, d.From, d.To, d.Widget.Source()); err != nil {
			return fmt.Errorf("unable to write decorations: %w", err)
		}
	}
	return nil
}

func runRender(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	path, text, err := readSource(cmd)
	if err != nil {
		return err
	}

	out, err := markup.New(e.Cfg.Markup()).Render(text)
	if err != nil {
		return fmt.Errorf("unable to render '%s': %w", path, err)
	}
	if _, err := fmt.Fprintln(cmd.Root().Writer, out); err != nil {
		return fmt.Errorf("unable to write html: %w", err)
	}
	return nil
}

func runDumpConfig(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	data, err := config.Dump(e.Cfg)
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}
	if _, err := cmd.Root().Writer.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}

func runView(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)
	path, text, err := readSource(cmd)
	if err != nil {
		return err
	}

	m := viewer{editor: editor.New(editor.Config{
		Text:    text,
		Style:   editor.DefaultStyle(),
		Preview: previewConfig(e.Cfg, path, e.Log),
		Logger:  e.Log,
	})}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("unable to run preview: %w", err)
	}
	return nil
}

// viewer wraps the editor with quit keys.
type viewer struct {
	editor editor.Model
}

func (v viewer) Init() tea.Cmd { return v.editor.Init() }

func (v viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.editor = v.editor.SetSize(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return v, tea.Quit
		}
	}

	var cmd tea.Cmd
	v.editor, cmd = v.editor.Update(msg)
	return v, cmd
}

func (v viewer) View() string { return v.editor.View() }
