// gltfinfo is a CLI utility for inspecting glTF and GLB asset files.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/gltfstream/internal/config"
	"github.com/Faultbox/gltfstream/internal/logger"
)

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagMax    = flag.Int("max", -1, "Maximum elements to dump (0 = all)")
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagMax >= 0 {
		cfg.Dump.MaxElements = *flagMax
	}

	logger.Init(logger.Options{
		Level:   cfg.Logging.Level,
		File:    logger.DefaultFileOptions(cfg.Logging.LogFile),
		Console: *flagDebug,
	})
	defer logger.Sync()

	command := args[0]
	args = args[1:]

	switch command {
	case "info":
		cmdInfo(args)
	case "accessors", "acc":
		cmdAccessors(args, cfg)
	case "dump":
		cmdDump(args, cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`gltfinfo - glTF/GLB asset inspection utility

Usage:
  gltfinfo [options] <command> [args]

Commands:
  info <file>             Show document information
  accessors <file>        List accessors with their layouts
  dump <file> <index>     Dump the elements of one accessor

Options:
  -config <path>          Explicit config file
  -debug                  Enable debug logging
  -max <n>                Maximum elements to dump (0 = all)

Examples:
  gltfinfo info model.glb
  gltfinfo accessors model.gltf
  gltfinfo -max 16 dump model.glb 2`)
}

// parseIndex parses a non-negative accessor index argument.
func parseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("invalid accessor index %q", arg)
	}
	return i, nil
}

func fatal(err error) {
	logger.Log.Error("command failed", zap.Error(err))
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
