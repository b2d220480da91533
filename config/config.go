package config

import (
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/omniscale/polysplit/log"
	"github.com/omniscale/polysplit/split"
	"github.com/omniscale/polysplit/writer"
)

// Config is the content of the -config file. The file is YAML, JSON
// files are read as well.
type Config struct {
	InputLayer  string `yaml:"input_layer"`
	OutputLayer string `yaml:"output_layer"`
	Driver      string `yaml:"driver"`
	IDField     string `yaml:"idfield"`
	MaxVertices int    `yaml:"maxvertices"`
	MaxDepth    int    `yaml:"maxdepth"`
	Schema      string `yaml:"dbschema"`
	Srid        int    `yaml:"srid"`
}

const defaultMaxVertices = 250
const defaultSchema = "public"
const defaultSrid = 4326

type Options struct {
	Input       string
	Output      string
	InputLayer  string
	OutputLayer string
	Driver      string
	IDField     string
	MaxVertices int
	MaxDepth    int
	Schema      string
	Srid        int
	ConfigFile  string
	Httpprofile string
	Verbose     bool
	Quiet       bool
}

func newFlagSet(opts *Options) *flag.FlagSet {
	flags := flag.NewFlagSet("split", flag.ContinueOnError)
	flags.StringVar(&opts.InputLayer, "i", "", "input layer (first layer if empty)")
	flags.StringVar(&opts.OutputLayer, "o", "", "output layer (output name if empty)")
	flags.StringVar(&opts.Driver, "f", writer.DefaultDriver, "output driver: OGR driver name, geojson or postgis")
	flags.StringVar(&opts.IDField, "n", "", "integer ID field of the input (feature id if empty)")
	flags.IntVar(&opts.MaxVertices, "m", defaultMaxVertices, "max vertices per polygon")
	flags.IntVar(&opts.MaxDepth, "maxdepth", split.DefaultMaxDepth, "max recursion depth")
	flags.StringVar(&opts.Schema, "dbschema", defaultSchema, "db schema for postgis output")
	flags.IntVar(&opts.Srid, "srid", defaultSrid, "srid of postgis output")
	flags.StringVar(&opts.ConfigFile, "config", "", "config (yaml or json)")
	flags.StringVar(&opts.Httpprofile, "httpprofile", "", "bind address for profile server")
	flags.BoolVar(&opts.Verbose, "v", false, "verbose log output")
	flags.BoolVar(&opts.Quiet, "quiet", false, "quiet log output")
	return flags
}

func (o *Options) updateFromConfig() error {
	if o.ConfigFile == "" {
		return nil
	}
	data, err := ioutil.ReadFile(o.ConfigFile)
	if err != nil {
		return err
	}
	conf := &Config{}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return fmt.Errorf("parsing %s: %s", o.ConfigFile, err)
	}

	if o.InputLayer == "" {
		o.InputLayer = conf.InputLayer
	}
	if o.OutputLayer == "" {
		o.OutputLayer = conf.OutputLayer
	}
	if conf.Driver != "" && o.Driver == writer.DefaultDriver {
		o.Driver = conf.Driver
	}
	if o.IDField == "" {
		o.IDField = conf.IDField
	}
	if conf.MaxVertices != 0 && o.MaxVertices == defaultMaxVertices {
		o.MaxVertices = conf.MaxVertices
	}
	if conf.MaxDepth != 0 && o.MaxDepth == split.DefaultMaxDepth {
		o.MaxDepth = conf.MaxDepth
	}
	if conf.Schema != "" && o.Schema == defaultSchema {
		o.Schema = conf.Schema
	}
	if conf.Srid != 0 && o.Srid == defaultSrid {
		o.Srid = conf.Srid
	}
	return nil
}

func (o *Options) check() []error {
	errs := []error{}
	if o.Input == "" || o.Output == "" {
		errs = append(errs, errors.New("missing input or output"))
	}
	if o.MaxVertices <= 5 {
		errs = append(errs, errors.New("-m needs to be larger than 5"))
	}
	if o.MaxDepth < 1 {
		errs = append(errs, errors.New("-maxdepth needs to be at least 1"))
	}
	if o.Srid < 0 {
		errs = append(errs, errors.New("-srid needs to be positive"))
	}
	if o.Verbose && o.Quiet {
		errs = append(errs, errors.New("-v and -quiet are exclusive"))
	}
	return errs
}

// LogLevel returns the min log level for the -v and -quiet flags.
func (o *Options) LogLevel() log.Level {
	if o.Verbose {
		return log.LDebug
	}
	if o.Quiet {
		return log.LWarn
	}
	return log.LProgress
}

// Parse parses the arguments of the split command and returns all errors
// of the options.
func Parse(args []string) (*Options, []error) {
	opts := &Options{}
	flags := newFlagSet(opts)
	flags.SetOutput(ioutil.Discard)
	if err := flags.Parse(args); err != nil {
		return nil, []error{err}
	}
	if flags.NArg() > 2 {
		return nil, []error{fmt.Errorf("unexpected arguments %v", flags.Args()[2:])}
	}
	opts.Input = flags.Arg(0)
	opts.Output = flags.Arg(1)

	if err := opts.updateFromConfig(); err != nil {
		return nil, []error{err}
	}
	if errs := opts.check(); len(errs) != 0 {
		return nil, errs
	}
	return opts, nil
}

func UsageSplit() {
	fmt.Fprintf(os.Stderr, "Usage: %s split [args] <input> <output>\n\n", os.Args[0])
	flags := newFlagSet(&Options{})
	flags.SetOutput(os.Stderr)
	flags.PrintDefaults()
	os.Exit(2)
}

// ParseSplit parses the arguments of the split command. It prints all
// errors and the usage and exits on invalid arguments.
func ParseSplit(args []string) *Options {
	if len(args) == 0 {
		UsageSplit()
	}
	opts, errs := Parse(args)
	if len(errs) != 0 {
		reportErrors(errs)
		UsageSplit()
	}
	return opts
}

func reportErrors(errs []error) {
	fmt.Fprintln(os.Stderr, "errors in config/options:")
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "\t%s\n", err)
	}
}
