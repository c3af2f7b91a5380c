package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/peterkuimelis/arkhamrando/internal/cli"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "allocate":
		runAllocate(os.Args[2:])
	case "check":
		runCheck(os.Args[2:])
	case "rules":
		cli.RunRules(os.Stdout)
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  arkhamrando allocate [--options FILE] [--catalog FILE] [--seed N] [--state-out FILE] [--verbose]")
	fmt.Println("  arkhamrando check --state FILE [--options FILE] [--locations FILE] [--all]")
	fmt.Println("  arkhamrando rules")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  allocate  Draw starting investigators, cards and capabilities")
	fmt.Println("  check     Report playable investigators and reachable locations for a collection")
	fmt.Println("  rules     List the rules requirement expressions can call")
}

func runAllocate(args []string) {
	fs := flag.NewFlagSet("allocate", flag.ExitOnError)
	cfg, err := cli.ParseAllocateConfig(fs, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cli.RunAllocate(cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	cfg, err := cli.ParseCheckConfig(fs, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cli.RunCheck(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
