package eventcli

import (
	"strconv"
	"time"
)

// argBuilder assembles the helper's flat argument vector. Every vector
// begins with "--action <name>"; optional flags are appended only when
// their value is present — an absent field is omitted entirely, never
// passed as an empty string.
type argBuilder struct {
	args []string
}

func newArgs(action string) *argBuilder {
	return &argBuilder{args: []string{"--action", action}}
}

// flag appends "--name value" when value is non-empty.
func (b *argBuilder) flag(name, value string) *argBuilder {
	if value != "" {
		b.args = append(b.args, "--"+name, value)
	}
	return b
}

// setFlag appends "--name value" unconditionally, empty value included.
// Update actions use the explicit empty value to clear a field.
func (b *argBuilder) setFlag(name, value string) *argBuilder {
	b.args = append(b.args, "--"+name, value)
	return b
}

// boolFlag appends "--name true" when v is set.
func (b *argBuilder) boolFlag(name string, v bool) *argBuilder {
	if v {
		b.args = append(b.args, "--"+name, "true")
	}
	return b
}

// timeFlag appends "--name <RFC3339>" when t is non-zero.
func (b *argBuilder) timeFlag(name string, t time.Time) *argBuilder {
	if !t.IsZero() {
		b.args = append(b.args, "--"+name, t.Format(cliTimeLayout))
	}
	return b
}

// durationFlag appends "--name <whole hours>" when d is positive.
func (b *argBuilder) durationFlag(name string, d time.Duration) *argBuilder {
	if d > 0 {
		b.args = append(b.args, "--"+name, strconv.Itoa(int(d.Hours())))
	}
	return b
}

func (b *argBuilder) build() []string {
	return b.args
}
