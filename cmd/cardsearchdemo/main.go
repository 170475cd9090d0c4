// Command cardsearchdemo is a small demo binary for the card-query
// engine: it builds a synthetic fixture corpus, evaluates one query
// against it, and prints the result.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	flags "github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"

	"github.com/cardquery/cardsearch"
	"github.com/cardquery/cardsearch/ast"
	"github.com/cardquery/cardsearch/rank"
)

type options struct {
	Config      string `short:"c" long:"config" description:"path to a YAML config file" value-name:"path"`
	Data        string `long:"data" description:"path to a bulk-data corpus file (unused by this demo; the builtin fixture is always used)" value-name:"path"`
	NoPrintings bool   `long:"no-printings" description:"evaluate without loading the printing index"`
	Seed        string `long:"seed" description:"seeded-sort seed string, overrides config"`
	Debug       bool   `long:"debug" description:"pretty-print the full result tree"`
}

func main() {
	opts, args := parseOptions(os.Args[1:])
	if len(args) == 0 {
		log.Fatal("usage: cardsearchdemo [options] <query>")
	}
	query := args[0]

	if opts.Data == "" {
		if path, err := xdg.SearchCacheFile(filepath.Join("cardsearchdemo", "corpus.json")); err == nil {
			log.Printf("no --data given, found cached corpus at %s (ignored; fixture used)\n", path)
		}
	}

	cfgPath := opts.Config
	if cfgPath == "" {
		if path, err := configPath(); err == nil {
			cfgPath = path
		}
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if opts.Seed != "" {
		cfg.Seed = opts.Seed
	}
	if opts.NoPrintings {
		cfg.UsePrintings = false
	}

	cards, printings, err := buildFixture()
	if err != nil {
		log.Fatalf("building fixture corpus: %v", err)
	}
	if !cfg.UsePrintings {
		printings = nil
	}

	cache := cardsearch.NewCache(cards, printings)

	root := cardsearch.Parse(query)
	out := cache.Evaluate(root)

	rank.SortFaceIndices(out.FaceIndices, cfg.Seed, cfg.SessionSalt, cards.CombinedNamesLower, ast.BareWords(root))

	fmt.Printf("query:       %s\n", query)
	fmt.Printf("canonical:   %s\n", cardsearch.Canonicalize(root))
	if out.ResultTree.Err != nil {
		fmt.Printf("error:       %s\n", out.ResultTree.Err)
	}
	fmt.Printf("match_count: %d\n", out.ResultTree.MatchCount)
	fmt.Printf("faces:       %v\n", namesOf(cards, out.FaceIndices))
	if out.PrintingIndices != nil {
		fmt.Printf("printings:   %v\n", out.PrintingIndices)
	}
	if out.PrintingsUnavailable {
		fmt.Println("note:        query touches printing data, but none is loaded")
	}

	if opts.Debug {
		pp.Println(out.ResultTree)
	}
}

func namesOf(cards *cardsearch.CardIndex, faceIndices []int) []string {
	names := make([]string, len(faceIndices))
	for i, idx := range faceIndices {
		names[i] = cards.Data.Name[idx]
	}
	return names
}

func parseOptions(args []string) (options, []string) {
	var opts options
	parser := flags.NewParser(&opts, flags.PassDoubleDash|flags.HelpFlag)
	parser.Usage = "[options] <query>"
	rest, err := parser.ParseArgs(args)
	if err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Fatal(err)
	}
	return opts, rest
}
