// Command rxgrep recursively searches a directory for lines that
// fully match a pattern compiled by rxdfa.
//
// Unlike grep, matching is whole-line: the core engine has no
// substring/partial-match capability (see SPEC_FULL.md's Non-goals),
// so a line either matches the pattern in its entirety or it doesn't.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"rxdfa"
)

var matchColor = color.New(color.FgGreen)

var cli struct {
	Pattern  string   `arg:"" name:"pattern" help:"Whole-line regex pattern to match." type:"string"`
	Paths    []string `arg:"" optional:"" name:"path" help:"Files or directories to search." type:"path"`
	PreIndex bool     `help:"Precompute the character column index before matching." default:"false"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("rxgrep"),
		kong.Description("Recursively searches for lines that fully match a pattern."),
		kong.UsageOnError(),
	)

	fz, err := rxdfa.Compile(cli.Pattern, rxdfa.CompileOptions{PreIndex: cli.PreIndex})
	if err != nil {
		log.Fatalf("failed to build pattern: %v", err)
	}

	if len(cli.Paths) == 0 {
		cli.Paths = []string{"."}
	}

	for _, path := range cli.Paths {
		info, err := os.Lstat(path)
		if err != nil {
			log.Fatalf("%s: %v", path, err)
		}
		if info.IsDir() {
			err = recursivelySearchDir(path, fz)
		} else {
			err = searchFile(path, fz)
		}
		if err != nil {
			log.Fatalf("%v", err)
		}
	}
}

func recursivelySearchDir(root string, fz *rxdfa.FixedDfa) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() {
			return nil
		}
		return searchFile(path, fz)
	})
}

func searchFile(path string, fz *rxdfa.FixedDfa) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	printedHeader := false
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Bytes()
		if !fz.Match(line) {
			continue
		}
		if !printedHeader {
			printedHeader = true
			fmt.Println(path + ":")
		}
		fmt.Printf("%d:%s\n", lineNo, matchColor.Sprint(string(line)))
	}
	if printedHeader {
		fmt.Println()
	}
	return scanner.Err()
}
