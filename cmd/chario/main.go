// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"iter"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/ezrec/chario/config"
	"github.com/ezrec/chario/internal"
	"github.com/ezrec/chario/reader"
)

// Settings is the merged runtime configuration: defaults, then the YAML
// file, then CHARIO_* environment variables, then flag overrides.
type Settings struct {
	Encoding  reader.Encoding `config:"encoding"`
	Strategy  reader.Strategy `config:"strategy"`
	Buffer    int             `config:"buffer"`
	Lines     bool            `config:"lines"`
	Positions bool            `config:"positions"`
	Verbose   bool            `config:"verbose"`
}

func main() {
	var configFile string
	var encoding string
	var mapped bool
	var buffer string
	var lines bool
	var positions bool
	var verbose bool

	flag.StringVar(&configFile, "c", "", "YAML configuration file")
	flag.StringVar(&encoding, "e", "", "Character encoding (utf-8, iso-8859-1)")
	flag.BoolVar(&mapped, "m", false, "Memory-mapped input windows")
	flag.StringVar(&buffer, "b", "", "Stream buffer size (humanized sizes accepted)")
	flag.BoolVar(&lines, "l", false, "Iterate lines instead of characters")
	flag.BoolVar(&positions, "p", false, "Prefix every item with its byte position in its file")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatalf("%v: Expected at least one input file", os.Args[0])
	}

	sources := []config.Source{
		config.FromMap(map[string]any{
			"encoding": "utf-8",
			"strategy": "stream",
		}),
	}

	if len(configFile) != 0 {
		cf, err := os.Open(configFile)
		if err != nil {
			log.Fatalf("%v: %v", configFile, err)
		}
		defer cf.Close()
		sources = append(sources, config.FromYaml(cf))
	}

	sources = append(sources, config.FromEnv("CHARIO_"))

	overrides := config.Map{}
	if len(encoding) != 0 {
		overrides.Set("encoding", encoding)
	}
	if mapped {
		overrides.Set("strategy", "mapped")
	}
	if len(buffer) != 0 {
		overrides.Set("buffer", buffer)
	}
	if lines {
		overrides.Set("lines", true)
	}
	if positions {
		overrides.Set("positions", true)
	}
	if verbose {
		overrides.Set("verbose", true)
	}
	sources = append(sources, overrides)

	cfg, err := config.Load(sources...)
	if err != nil {
		log.Fatal(err)
	}

	settings := Settings{}
	if err = cfg.Unmarshal(&settings); err != nil {
		log.Fatal(err)
	}

	var readers []*reader.Reader
	var size uint64
	for _, name := range flag.Args() {
		file, err := os.Open(name)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
		defer file.Close()

		rd, err := reader.New(file, reader.Options{
			Encoding:   settings.Encoding,
			Strategy:   settings.Strategy,
			BufferSize: settings.Buffer,
		})
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
		defer rd.Close()

		readers = append(readers, rd)
		size += uint64(rd.Size())
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	total := 0
	switch {
	case settings.Positions:
		// Positions need the byte offset ahead of each decode, so the
		// readers are walked explicitly.
		for n, rd := range readers {
			name := flag.Arg(n)
			for rd.More() {
				start := rd.Position()

				var text string
				if settings.Lines {
					text, err = rd.NextLine()
				} else {
					var ch rune
					ch, err = rd.Next()
					text = string(ch)
				}
				if err != nil {
					log.Fatalf("%v: %v", name, err)
				}
				fmt.Fprintf(out, "%d\t%s\n", start, text)
				total++
			}
		}
	case settings.Lines:
		seqs := make([]iter.Seq2[string, error], 0, len(readers))
		for _, rd := range readers {
			seqs = append(seqs, rd.Lines())
		}
		for line, err := range internal.IterSeq2Concat(seqs...) {
			if err != nil {
				log.Fatal(err)
			}
			fmt.Fprintln(out, line)
			total++
		}
	default:
		seqs := make([]iter.Seq2[rune, error], 0, len(readers))
		for _, rd := range readers {
			seqs = append(seqs, rd.Runes())
		}
		for ch, err := range internal.IterSeq2Concat(seqs...) {
			if err != nil {
				log.Fatal(err)
			}
			fmt.Fprintf(out, "%c", ch)
			total++
		}
	}

	if settings.Verbose {
		unit := "characters"
		if settings.Lines {
			unit = "lines"
		}
		log.Printf("%v %v from %v (%v, %v)", total, unit,
			humanize.IBytes(size), settings.Encoding, settings.Strategy)
	}
}
