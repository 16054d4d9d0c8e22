package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-yamldoc"
)

type MainConfig struct {
	Write      bool `cli:"name=w desc='write result to the source file instead of stdout'"`
	List       bool `cli:"name=l desc='list files whose formatting differs'"`
	Diff       bool `cli:"name=d desc='display diffs instead of rewriting files'"`
	Color      bool `cli:"name=color desc='print with color'"`
	Verify     bool `cli:"name=verify desc='check that the formatted text decodes to the same data'"`
	Indent     int  `cli:"name=indent desc='spaces per indentation level (default 2)'"`
	NoComments bool `cli:"name=no-comments desc='drop comments'"`

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "yamlfmt").
		WithSynopsis("yamlfmt [opts] [files]").
		WithDescription("yamlfmt formats YAML documents, keeping their comments.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yamlfmtMain(cfg, cc, args)
		})
}

// options returns the formatting options for output written to w.
func (cfg *MainConfig) options(w io.Writer) []yamldoc.Option {
	var res []yamldoc.Option
	if cfg.Indent != 0 {
		res = append(res, yamldoc.Indent(cfg.Indent))
	}
	if cfg.NoComments {
		res = append(res, yamldoc.OmitComments())
	}
	if cfg.colors(w) {
		res = append(res, yamldoc.WithColors(yamldoc.DefaultColors()))
	}
	return res
}

// colors reports whether output to w is colored. An explicit -color
// decides; otherwise terminals get color.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
