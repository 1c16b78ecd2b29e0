package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/xyproto/env/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/jit-dispatch/artifact"
	"github.com/wippyai/jit-dispatch/cpu"
	"github.com/wippyai/jit-dispatch/features"
	"github.com/wippyai/jit-dispatch/process"
	"github.com/wippyai/jit-dispatch/target"
)

func main() {
	var (
		specStr     = flag.String("cpu", process.DefaultSpec(), "Target spec (e.g. \"rv64gc,+zba,-c;rv64gcv\")")
		llvmVer     = flag.String("llvm", "", "Backend version gating catalog features (e.g. 18.1.0)")
		dump        = flag.Bool("dump", false, "Print the detected host CPU and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if env.Bool("JIT_TARGET_DEBUG") {
		logger, err := zap.NewDevelopment()
		if err == nil {
			cpu.SetLogger(logger)
			artifact.SetLogger(logger)
			process.SetLogger(logger)
		}
	}

	be, err := backend(*llvmVer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *dump {
		dumpHost()
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*specStr, be); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*specStr, be); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func backend(llvmVer string) (target.Backend, error) {
	if llvmVer == "" {
		return target.GenericBackend, nil
	}
	v, err := semver.NewVersion(llvmVer)
	if err != nil {
		return nil, fmt.Errorf("parse -llvm version %q: %w", llvmVer, err)
	}
	return target.StaticBackend{Ver: v}, nil
}

func dumpHost() {
	id, set := cpu.Host()
	fmt.Printf("CPU: %s\n", cpu.NameOf(id))
	fmt.Printf("Features: %s\n", strings.Join(features.SetNames(set), ","))
}

func run(specStr string, be target.Backend) error {
	clones, err := artifact.CloneTargets(specStr, be)
	if err != nil {
		return err
	}

	fmt.Printf("Spec: %s\n\n", specStr)
	for i, c := range clones {
		role := "clone"
		if i == 0 {
			role = "primary"
		}
		fmt.Printf("[%d] %s (%s)\n", i, c.CPUName, role)
		if c.CPUFeatures != "" {
			fmt.Printf("    features: %s\n", c.CPUFeatures)
		}

		decoded, err := artifact.Decode(c.Data)
		if err != nil {
			return err
		}
		names := features.SetNames(decoded[0].Features)
		fmt.Printf("    resolved: %s\n", strings.Join(names, ","))
		if c.Flags != 0 {
			fmt.Printf("    flags:    %s\n", flagNames(c.Flags))
		}
		fmt.Printf("    blob:     %d bytes\n", len(c.Data))
	}
	return nil
}

func flagNames(flags uint32) string {
	var names []string
	if flags&target.FlagUnknownName != 0 {
		names = append(names, "unknown-name")
	}
	if flags&target.FlagCloneAll != 0 {
		names = append(names, "clone-all")
	}
	return strings.Join(names, ",")
}
