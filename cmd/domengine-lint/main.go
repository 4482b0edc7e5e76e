package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/goliatone/go-domengine/pkg/dom"
	"github.com/goliatone/go-domengine/pkg/render"
	"github.com/goliatone/go-domengine/pkg/token"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint HTML templates for markers that will never be filled.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"templates"}
	}

	engine := render.New()

	var violations []violation
	for _, path := range paths {
		files, err := expand(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		for _, file := range files {
			linted, err := lintFile(engine, file)
			if err != nil {
				fmt.Fprintf(os.Stderr, "lint %s: %v\n", file, err)
				os.Exit(1)
			}
			violations = append(violations, linted...)
		}
	}

	if len(violations) > 0 {
		sort.SliceStable(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

func expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	var files []string
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".html") {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

func lintFile(engine *render.Engine, path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	fragment, err := engine.Compile(string(raw))
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return lintTree(path, fragment.Root), nil
}

func lintTree(file string, root *html.Node) []violation {
	var result []violation
	report := func(path []string, format string, args ...any) {
		result = append(result, violation{
			file:     file,
			location: formatLocation(path),
			message:  fmt.Sprintf(format, args...),
		})
	}

	var walk func(n *html.Node, path []string)
	walk = func(n *html.Node, path []string) {
		switch n.Type {
		case html.ElementNode:
			path = appendPath(path, n.Data)
			for _, attr := range n.Attr {
				for _, miss := range token.NearMisses(attr.Val) {
					report(appendPath(path, "@"+dom.AttrName(attr)), "%s is not a valid marker and renders literally", miss)
				}
			}
			if dom.IsRawText(n) {
				for _, miss := range token.NearMisses(dom.Text(n)) {
					report(path, "%s is not a valid marker and renders literally", miss)
				}
				return
			}
		case html.TextNode:
			for _, miss := range token.NearMisses(n.Data) {
				report(path, "%s is not a valid marker and renders literally", miss)
			}
		case html.CommentNode:
			for _, tok := range token.Identify(n.Data) {
				report(path, "%s sits inside a comment and is never filled", tok.Marker)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child, path)
		}
	}
	walk(root, nil)
	return result
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	next = append(next, segment)
	return next
}

func formatLocation(path []string) string {
	if len(path) == 0 {
		return "(root)"
	}
	return strings.Join(path, " > ")
}
