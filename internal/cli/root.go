// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/deploymenttheory/go-api-sdk-mondo/httpclient"
	"github.com/deploymenttheory/go-api-sdk-mondo/mondo"
	"github.com/deploymenttheory/go-api-sdk-mondo/params"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const defaultOutputSpace = 2

// globalOptions are the flags shared by every command.
type globalOptions struct {
	properties  []string
	response    bool
	length      bool
	space       int
	verbose     int
	host        string
	completions bool
}

// runner builds the command tree and runs endpoint commands.
type runner struct {
	cfg       *Config
	commands  []Command
	out       io.Writer
	now       func() time.Time
	newClient func(httpclient.ClientConfig) (*mondo.Client, error)
	opts      globalOptions
}

func newRunner(cfg *Config, commands []Command, out io.Writer) *runner {
	return &runner{
		cfg:       cfg,
		commands:  commands,
		out:       out,
		now:       time.Now,
		newClient: mondo.NewClient,
	}
}

// NewRootCmd returns the mondo command with one sub command per entry of commands.
func NewRootCmd(cfg *Config, commands []Command, out io.Writer) *cobra.Command {
	return newRunner(cfg, commands, out).rootCmd()
}

// Execute loads the configuration and the endpoint schema, runs the command line described by
// args and returns the process exit code. Failures are printed to out as JSON.
func Execute(ctx context.Context, args []string, out io.Writer) int {
	cfg, err := LoadConfig()
	if err != nil {
		RenderError(out, err, defaultOutputSpace)
		return 1
	}

	commands, err := LoadSchema(mondo.Sources())
	if err != nil {
		RenderError(out, err, defaultOutputSpace)
		return 1
	}

	r := newRunner(cfg, commands, out)
	if err := r.execute(ctx, args); err != nil {
		RenderError(out, err, r.opts.space)
		return 1
	}
	return 0
}

func (r *runner) execute(ctx context.Context, args []string) error {
	root := r.rootCmd()
	root.SetArgs(r.expandDottedFlags(args))
	return root.ExecuteContext(ctx)
}

// expandDottedFlags rewrites --metadata.foo bar and --metadata.foo=bar into --metadata foo=bar for
// every object parameter and its aliases. A dotted flag without a value sets the key to true.
func (r *runner) expandDottedFlags(args []string) []string {
	objects := map[string]bool{}
	for _, c := range r.commands {
		for _, p := range c.Params {
			if p.Type == TypeObject {
				objects[p.Name] = true
			}
		}
		for alias, target := range c.Aliases {
			if p, ok := c.Param(target); ok && p.Type == TypeObject {
				objects[alias] = true
			}
		}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}
		name, key, dotted := strings.Cut(strings.TrimPrefix(arg, "--"), ".")
		if !strings.HasPrefix(arg, "--") || !dotted || !objects[name] || key == "" {
			out = append(out, arg)
			continue
		}

		key, value, hasValue := strings.Cut(key, "=")
		if !hasValue {
			value = "true"
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				value = args[i]
			}
		}
		out = append(out, "--"+name, key+"="+value)
	}
	return out
}

func (r *runner) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mondo <command>",
		Short:         "Command line client for the Mondo banking API",
		Long:          "Command line client for the Mondo banking API.\n\nDate parameters accept an ISO date or a period such as 7d, 2w or 3M, counted back from now.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if r.opts.completions {
				r.printCompletions(cmd, nil)
				return nil
			}
			return cmd.Help()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(r.out)

	space := defaultOutputSpace
	if v, ok := r.cfg.Default("", "output_space"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			space = n
		}
	}

	flags := root.PersistentFlags()
	flags.StringArrayVarP(&r.opts.properties, "property", "p", nil, "Property (or properties) to be returned")
	flags.BoolVar(&r.opts.response, "response", false, "Print the full response without unwrapping it")
	flags.BoolVar(&r.opts.length, "length", false, "Print the number of items returned")
	flags.IntVar(&r.opts.space, "output_space", space, "Number of spaces used to indent JSON results")
	flags.CountVarP(&r.opts.verbose, "verbose", "v", "Verbose debug output")
	flags.StringVar(&r.opts.host, "host", r.cfg.Host, "API host")
	flags.BoolVar(&r.opts.completions, "completions", false, "Print completion candidates")
	_ = flags.MarkHidden("completions")

	for _, c := range r.commands {
		root.AddCommand(r.commandCmd(c))
	}
	return root
}

func (r *runner) commandCmd(c Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   c.Name + " [options]",
		Short: c.Description,
		Args:  cobra.NoArgs,
	}

	aliasesOf := map[string][]string{}
	for alias, target := range c.Aliases {
		aliasesOf[target] = append(aliasesOf[target], alias)
	}

	defaulted := map[string]bool{}
	flags := cmd.Flags()
	for _, p := range c.Params {
		desc := p.Description
		if aliases := aliasesOf[p.Name]; len(aliases) > 0 {
			sort.Strings(aliases)
			desc = fmt.Sprintf("%s (alias: --%s)", desc, strings.Join(aliases, ", --"))
		}

		def, ok := r.cfg.Default(c.Name, p.Name)
		defaulted[p.Name] = ok

		switch p.Type {
		case TypeInt:
			n, err := strconv.Atoi(def)
			if err != nil {
				defaulted[p.Name] = false
			}
			flags.Int(p.Name, n, desc)
		case TypeBool:
			b, err := strconv.ParseBool(def)
			if err != nil {
				defaulted[p.Name] = false
			}
			flags.Bool(p.Name, b, desc)
		case TypeObject:
			flags.StringToString(p.Name, parseObject(def), desc)
		default:
			flags.String(p.Name, def, desc)
		}
	}
	if len(c.Aliases) > 0 {
		flags.SetNormalizeFunc(aliasNormalizer(c.Aliases))
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if r.opts.completions {
			r.printCompletions(cmd, &c)
			return nil
		}

		p, err := r.collect(cmd.Flags(), c, defaulted)
		if err != nil {
			return err
		}
		return r.run(cmd.Context(), c, p)
	}
	return cmd
}

// aliasNormalizer maps alias flag names onto the parameter they stand for.
func aliasNormalizer(aliases map[string]string) func(*pflag.FlagSet, string) pflag.NormalizedName {
	return func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if target, ok := aliases[name]; ok {
			name = target
		}
		return pflag.NormalizedName(name)
	}
}

// collect turns the flags that were set or defaulted into endpoint parameters.
func (r *runner) collect(flags *pflag.FlagSet, c Command, defaulted map[string]bool) (params.Params, error) {
	p := params.Params{}
	for _, prm := range c.Params {
		f := flags.Lookup(prm.Name)
		if f == nil || (!f.Changed && !defaulted[prm.Name]) {
			continue
		}

		switch prm.Type {
		case TypeInt:
			n, err := flags.GetInt(prm.Name)
			if err != nil {
				return nil, err
			}
			p[prm.Name] = n
		case TypeBool:
			b, err := flags.GetBool(prm.Name)
			if err != nil {
				return nil, err
			}
			p[prm.Name] = b
		case TypeObject:
			m, err := flags.GetStringToString(prm.Name)
			if err != nil {
				return nil, err
			}
			if len(m) > 0 {
				p[prm.Name] = m
			}
		case TypeDate:
			s, err := flags.GetString(prm.Name)
			if err != nil {
				return nil, err
			}
			if s == "" {
				continue
			}
			t, err := params.ParseDate(s, r.now())
			if err != nil {
				return nil, fmt.Errorf("--%s: %w", prm.Name, err)
			}
			p[prm.Name] = t
		default:
			s, err := flags.GetString(prm.Name)
			if err != nil {
				return nil, err
			}
			if s != "" {
				p[prm.Name] = s
			}
		}
	}

	var missing []string
	for _, prm := range c.Params {
		if !prm.Optional && !p.Has(prm.Name) {
			missing = append(missing, "--"+prm.Name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing required flag(s): %s", c.Name, strings.Join(missing, ", "))
	}
	return p, nil
}

func (r *runner) run(ctx context.Context, c Command, p params.Params) error {
	httpConfig := r.cfg.HTTP
	if r.opts.verbose > 0 {
		httpConfig.LogLevel = "LogLevelDebug"
	}

	client, err := r.newClient(httpConfig)
	if err != nil {
		return err
	}
	if r.opts.host != "" {
		client.SetHost(r.opts.host)
	}

	client.Logger().Debug("Running command",
		zap.String("command", c.Name),
		zap.String("host", client.Host()),
		zap.Strings("params", sortedParamNames(p)),
	)

	raw, err := client.Call(ctx, c.Name, p)
	if err != nil {
		return err
	}

	v, err := Shape(raw, OutputOptions{
		Properties: r.opts.properties,
		Response:   r.opts.response,
		Length:     r.opts.length,
		Space:      r.opts.space,
	})
	if err != nil {
		return fmt.Errorf("%s: decoding response: %w", c.Name, err)
	}
	return Render(r.out, v, r.opts.space)
}

// printCompletions prints the command names, or the flags of c when c is set.
func (r *runner) printCompletions(cmd *cobra.Command, c *Command) {
	var candidates []string
	if c == nil {
		for _, command := range r.commands {
			candidates = append(candidates, command.Name)
		}
	} else {
		for _, p := range c.Params {
			candidates = append(candidates, "--"+p.Name)
		}
	}

	cmd.Root().PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if !f.Hidden {
			candidates = append(candidates, "--"+f.Name)
		}
	})
	candidates = append(candidates, "--help")

	fmt.Fprintln(r.out, strings.Join(candidates, "\n"))
}

func parseObject(s string) map[string]string {
	if s == "" {
		return nil
	}
	out := map[string]string{}
	for _, pair := range strings.Split(s, ",") {
		key, value, _ := strings.Cut(pair, "=")
		if key = strings.TrimSpace(key); key != "" {
			out[key] = value
		}
	}
	return out
}

func sortedParamNames(p params.Params) []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
