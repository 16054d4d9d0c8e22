package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/token"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/scott-cotton/cli"

	"github.com/KimNorgaard/go-yamldoc"
)

const stdinName = "<standard input>"

func yamlfmtMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	return run(cfg, cc.Out, cc.In, args)
}

func run(cfg *MainConfig, out io.Writer, in io.Reader, files []string) error {
	if cfg.Write && cfg.Diff {
		return fmt.Errorf("%w: -w and -d cannot be combined", cli.ErrUsage)
	}
	if cfg.Indent < 0 {
		return fmt.Errorf("%w: -indent must not be negative", cli.ErrUsage)
	}
	if len(files) == 0 {
		if cfg.Write {
			return fmt.Errorf("%w: cannot use -w with standard input", cli.ErrUsage)
		}
		src, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("error reading %s: %w", stdinName, err)
		}
		return processSource(cfg, out, stdinName, src, nil)
	}
	for _, file := range files {
		if err := processFile(cfg, out, file); err != nil {
			return err
		}
	}
	return nil
}

func processFile(cfg *MainConfig, out io.Writer, file string) error {
	fi, err := os.Stat(file)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("%s is a directory", file)
	}
	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	return processSource(cfg, out, file, src, fi)
}

// processSource formats src and reports the result the way the flags ask:
// listing, diffing or rewriting the file fi, or printing the formatted
// text.
func processSource(cfg *MainConfig, out io.Writer, name string, src []byte, fi os.FileInfo) error {
	printing := !cfg.List && !cfg.Write && !cfg.Diff
	var w io.Writer = io.Discard
	if printing {
		w = out
	}
	res, err := formatSource(cfg, src, w)
	if err != nil {
		return fmt.Errorf("error formatting %s: %w", name, err)
	}
	if printing {
		_, err := out.Write(res)
		return err
	}

	if bytes.Equal(src, res) {
		return nil
	}
	if cfg.List {
		if _, err := fmt.Fprintln(out, name); err != nil {
			return err
		}
	}
	if cfg.Write {
		if err := os.WriteFile(name, res, fi.Mode().Perm()); err != nil {
			return err
		}
	}
	if cfg.Diff {
		d, err := unifiedDiff(name, src, res)
		if err != nil {
			return fmt.Errorf("error computing diff for %s: %w", name, err)
		}
		if _, err := io.WriteString(out, d); err != nil {
			return err
		}
	}
	return nil
}

// formatSource returns src in canonical form for output to w. With -verify
// the result must decode to the same data as src. With -verify or -w it
// must also keep every comment of src, unless comments are dropped on
// purpose.
func formatSource(cfg *MainConfig, src []byte, w io.Writer) ([]byte, error) {
	if cfg.Verify || cfg.Write {
		plain, err := yamldoc.Format(src, cfg.options(io.Discard)...)
		if err != nil {
			return nil, err
		}
		if !cfg.NoComments {
			if err := keepsComments(src, plain); err != nil {
				return nil, err
			}
		}
		if cfg.Verify {
			if err := verifyData(src, plain); err != nil {
				return nil, err
			}
		}
	}
	return yamldoc.Format(src, cfg.options(w)...)
}

// keepsComments checks that b carries at least as many comments as a.
func keepsComments(a, b []byte) error {
	want, got := countComments(a), countComments(b)
	if got < want {
		return fmt.Errorf("formatting would drop %d of %d comments", want-got, want)
	}
	return nil
}

func countComments(data []byte) int {
	n := 0
	for _, tk := range lexer.Tokenize(string(data)) {
		if tk.Type == token.CommentType {
			n++
		}
	}
	return n
}

func unifiedDiff(name string, a, b []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  3,
	})
}

// verifyData checks that a and b decode to the same documents with an
// independent YAML decoder.
func verifyData(a, b []byte) error {
	want, err := decodeAll(a)
	if err != nil {
		return fmt.Errorf("cannot verify source: %w", err)
	}
	got, err := decodeAll(b)
	if err != nil {
		return fmt.Errorf("cannot verify formatted text: %w", err)
	}
	if !reflect.DeepEqual(want, got) {
		return errors.New("formatted text does not decode to the source data")
	}
	return nil
}

func decodeAll(data []byte) ([]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var docs []any
	for {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, v)
	}
}
