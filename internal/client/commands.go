// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-config-access/configuration"
	"github.com/MKhiriev/go-config-access/internal/utils"
	"github.com/MKhiriev/go-config-access/models"
)

type command struct {
	usage   string
	help    string
	minArgs int
	maxArgs int
	// backend is set for commands that need an open configuration.
	backend bool
	run     func(ctx context.Context, a *App, conf configuration.Configuration, args []string) error
}

// commands is filled in init: help refers back to the table.
var commands map[string]command

func init() {
	commands = map[string]command{
		"get":       {"PATH", "print the value at PATH", 1, 1, true, runGet(models.KindString)},
		"get-int":   {"PATH", "print the value at PATH as an integer", 1, 1, true, runGet(models.KindInt)},
		"get-float": {"PATH", "print the value at PATH as a float", 1, 1, true, runGet(models.KindFloat)},
		"put":       {"PATH VALUE", "store VALUE at PATH", 2, 2, true, runPut(models.KindString)},
		"put-int":   {"PATH N", "store the integer N at PATH", 2, 2, true, runPut(models.KindInt)},
		"put-float": {"PATH F", "store the float F at PATH", 2, 2, true, runPut(models.KindFloat)},
		"exists":    {"PATH", "print whether PATH holds a value", 1, 1, true, runExists},
		"tree":      {"[PATH]", "print the subtree below PATH", 0, 1, true, runTree},
		"dump":      {"[PATH]", "print every value below PATH as YAML", 0, 1, true, runDump},
		"token":     {"WRITER", "issue a write token for the config server", 1, 1, false, runToken},
		"version":   {"", "print build information", 0, 0, false, runVersion},
		"help":      {"", "print this text", 0, 0, false, runHelp},
	}
}

func optionalPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runGet(kind models.Kind) func(context.Context, *App, configuration.Configuration, []string) error {
	return func(ctx context.Context, a *App, conf configuration.Configuration, args []string) error {
		v, ok, err := configuration.GetValue(ctx, conf, args[0], kind)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrKeyNotFound, args[0])
		}
		_, err = fmt.Fprintln(a.out, v.String())
		return err
	}
}

func runPut(kind models.Kind) func(context.Context, *App, configuration.Configuration, []string) error {
	return func(ctx context.Context, a *App, conf configuration.Configuration, args []string) error {
		v, err := models.ParseValue(args[1], kind)
		if err != nil {
			return err
		}
		if err = configuration.PutValue(ctx, conf, args[0], v); err != nil {
			return err
		}
		a.logger.Info().Str("path", args[0]).Str("kind", kind.String()).Msg("value stored")
		return nil
	}
}

func runExists(ctx context.Context, a *App, conf configuration.Configuration, args []string) error {
	ok, err := conf.Exists(ctx, args[0])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, strconv.FormatBool(ok))
	return err
}

func runTree(ctx context.Context, a *App, conf configuration.Configuration, args []string) error {
	root, err := conf.GetRecursive(ctx, optionalPath(args))
	if err != nil {
		return err
	}

	var b strings.Builder
	if v, ok := root.Value(); ok {
		fmt.Fprintf(&b, "= %s\n", v)
	}
	writeTree(&b, root, 0)

	_, err = fmt.Fprint(a.out, b.String())
	return err
}

// writeTree prints the children of n, two spaces per level.
func writeTree(b *strings.Builder, n *models.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, name := range n.Children() {
		child, _ := n.Child(name)
		if v, ok := child.Value(); ok {
			fmt.Fprintf(b, "%s%s = %s\n", indent, name, v)
		} else {
			fmt.Fprintf(b, "%s%s\n", indent, name)
		}
		writeTree(b, child, depth+1)
	}
}

func runDump(ctx context.Context, a *App, conf configuration.Configuration, args []string) error {
	values, err := conf.GetRecursiveMap(ctx, optionalPath(args))
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}

	// yaml.v3 sorts map keys
	data, err := yaml.Marshal(map[string]string(values))
	if err != nil {
		return fmt.Errorf("error encoding values: %w", err)
	}
	_, err = a.out.Write(data)
	return err
}

func runToken(_ context.Context, a *App, _ configuration.Configuration, args []string) error {
	token, err := utils.GenerateJWTToken(a.tokens.Issuer, args[0], a.tokens.Duration, a.tokens.SignKey)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, token.String())
	return err
}

func runVersion(_ context.Context, a *App, _ configuration.Configuration, _ []string) error {
	_, err := fmt.Fprintf(a.out, "Build version: %s\nBuild date: %s\nBuild commit: %s\n",
		a.info.BuildVersion(), a.info.BuildDate(), a.info.BuildCommit())
	return err
}

func runHelp(_ context.Context, a *App, _ configuration.Configuration, _ []string) error {
	a.usage()
	return nil
}

func (a *App) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: confctl [flags] COMMAND [ARGS]")
	fmt.Fprintln(a.out)
	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(a.out, "  %-22s %s\n", strings.TrimSpace(name+" "+cmd.usage), cmd.help)
	}
}
