package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/jsonpp/cli/cmd"
	"github.com/ardnew/jsonpp/pkg"
)

// CLI is the top-level command-line interface for jsonpp.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Check   cmd.Check   `cmd:"" help:"Validate documents"`
	Get     cmd.Get     `cmd:"" help:"Print a value by member path"`
	Eval    cmd.Eval    `cmd:"" help:"Evaluate an expression over a document"`
	Bench   cmd.Bench   `cmd:"" help:"Measure parse time"`
	Repl    cmd.Repl    `cmd:"" help:"Evaluate expressions interactively"`
	Init    cmd.Init    `cmd:"" help:"Write the configuration file"`
	Version cmd.Version `cmd:"" help:"Print the version"`
}

// Run parses args and executes the selected command. Parse failures call
// exit with a non-zero code after printing usage.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	return run(ctx, exit, args)
}

// run is Run with additional kong options, such as output writers.
func run(
	ctx context.Context,
	exit func(code int),
	args []string,
	opts ...kong.Option,
) error {
	var cli CLI

	if err := mkdirAllRequired(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	configFilePath := configPath(baseConfig)

	vars := kong.Vars{
		cmd.ConfigIdentifier: configFilePath,
		cmd.CacheIdentifier:  cacheDir(),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars()).
		CloneWith(cmd.ParseFlags{}.Vars())

	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		append([]kong.Option{
			kong.Name(pkg.Name),
			kong.Description(pkg.Description),
			kong.UsageOnError(),
			kong.Exit(exit),
			kong.ExplicitGroups(
				[]kong.Group{cli.Log.group(), cli.Pprof.group()},
			),
			kong.BindSingletonProvider(func() context.Context {
				return ctx
			}),
			kong.ConfigureHelp(
				kong.HelpOptions{
					Compact:             true,
					Summary:             true,
					NoExpandSubcommands: true,
				}),
			kong.Configuration(resolveJSON(ctx, baseConfig), configFilePath+".json"),
			kong.Configuration(resolveYAML(ctx, baseConfig), configFilePath+".yaml"),
			vars,
		}, opts...)...,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)

	cli.Log.start(ctx)

	// no-op unless built with tag pprof and a mode is selected
	defer cli.Pprof.start(ctx)()

	return ktx.Run(&cli)
}
