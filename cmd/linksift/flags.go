package main

import (
	"flag"
	"fmt"
	"os"
)

type AppFlags struct {
	InputFile        string
	Format           string
	GlobalConfigFile string
	Mode             string
	ShowPreview      bool
}

func ParseFlags() AppFlags {
	inputFile := flag.String("input", "", "Path to the document to scan. Use '-' to read from stdin.")
	inputFileAlias := flag.String("i", "", "Alias for -input")

	formatFlag := flag.String("format", "", "Format tag of the input (html, markdown, css, javascript, typescript, json, yaml, xml, properties, env, toml, ini). Guessed from the file extension if not set.")
	formatFlagAlias := flag.String("f", "", "Alias for -format")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	modeFlag := flag.String("mode", "", "Mode to run the tool: extract, dedupe, sort, sortlen, or sessions")
	modeFlagAlias := flag.String("m", "", "Alias for -mode")

	showPreview := flag.Bool("preview", false, "For cleanup modes, print a patch of what changed instead of the cleaned text")

	flag.Parse()

	flags := AppFlags{ShowPreview: *showPreview}

	if *inputFile != "" {
		flags.InputFile = *inputFile
	} else if *inputFileAlias != "" {
		flags.InputFile = *inputFileAlias
	}

	if *formatFlag != "" {
		flags.Format = *formatFlag
	} else if *formatFlagAlias != "" {
		flags.Format = *formatFlagAlias
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if *modeFlag != "" {
		flags.Mode = *modeFlag
	} else if *modeFlagAlias != "" {
		flags.Mode = *modeFlagAlias
	}

	if flags.Mode == "" {
		fmt.Fprintln(os.Stderr, "[FATAL] --mode argument is required (extract, dedupe, sort, sortlen, or sessions)")
		os.Exit(1)
	}

	return flags
}
