package cmd

import "github.com/timescale/examplecheck/internal/examplecheck/config"

// outputFlag holds a parsed -o/--output value. It implements
// [github.com/spf13/pflag.Value], so bad formats fail at flag parsing.
type outputFlag struct {
	format config.OutputFormat
}

func (o *outputFlag) Set(val string) error {
	format, err := config.ParseOutputFormat(val)
	if err != nil {
		return err
	}
	o.format = format
	return nil
}

func (o *outputFlag) String() string {
	return string(o.format)
}

func (o *outputFlag) Type() string {
	return "format"
}
