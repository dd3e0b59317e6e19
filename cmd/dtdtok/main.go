// Command dtdtok reads a DTD subset from a file or stdin and prints its
// token sequence, one token per line. It is a thin ambient-stack exerciser
// over the root dtdtok package (SPEC_FULL.md §10.7): the standard library
// flag package (plus a flag.Value for the repeatable -param/-entity pairs)
// covers this CLI's surface with no need for a third-party flag library,
// matching the teacher's own CLI-free, zero-config footprint.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/adobrowolski/dtdtok"
	"github.com/adobrowolski/dtdtok/internal/container"
	"github.com/adobrowolski/dtdtok/internal/source"
	"github.com/adobrowolski/dtdtok/internal/xtrace"
)

// nameValueList is a repeatable "-flag name=value" collector, the
// flag.Value idiom the standard flag package expects for multi-valued
// flags (it has no built-in repeatable-flag type).
type nameValueList []string

func (l *nameValueList) String() string { return strings.Join(*l, ",") }

func (l *nameValueList) Set(s string) error {
	if !strings.Contains(s, "=") {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	*l = append(*l, s)
	return nil
}

func main() {
	file := flag.String("file", "", "path to a DTD subset (default: read stdin)")
	internal := flag.Bool("internal", false, "tokenize as an internal DTD subset rather than external")
	trace := flag.Bool("trace", false, "enable scanner trace output on stderr")
	var params, entities nameValueList
	flag.Var(&params, "param", "seed a parameter entity as name=value (repeatable)")
	flag.Var(&entities, "entity", "seed a general entity as name=value (repeatable)")
	flag.Parse()

	if *trace {
		xtrace.Enabled = true
		runID := uuid.New()
		xtrace.Printf("run %s starting", runID)
		defer xtrace.Printf("run %s done", runID)
	}

	if err := run(*file, *internal, params, entities, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "dtdtok:", err)
		os.Exit(1)
	}
}

func run(path string, isInternal bool, params, entities nameValueList, stdin io.Reader, stdout io.Writer) error {
	var data []byte
	var err error
	if path == "" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	c := container.NewMap()
	if err := seedContainer(c, params, entities); err != nil {
		return err
	}
	cur := source.NewStringCursor(string(data))
	tok := dtdtok.New(c, cur,
		dtdtok.WithExternalSubset(!isInternal),
		dtdtok.WithErrorSink(func(e error) {
			fmt.Fprintln(os.Stderr, "dtdtok: recoverable:", e)
		}),
	)

	for {
		t, err := tok.Get()
		if err != nil {
			return fmt.Errorf("tokenizing: %w", err)
		}
		fmt.Fprintf(stdout, "%s %+v\n", t.Kind, t)
		if t.Kind == dtdtok.KindEOF {
			return nil
		}
	}
}

// seedContainer registers every "-param"/"-entity" name=value pair into c,
// so the tokenizer can expand %name;/&name; references found in the input.
func seedContainer(c *container.Map, params, entities nameValueList) error {
	for _, kv := range params {
		name, value, _ := strings.Cut(kv, "=")
		if name == "" {
			return fmt.Errorf("-param: empty name in %q", kv)
		}
		c.SetParameter(name, value)
	}
	for _, kv := range entities {
		name, value, _ := strings.Cut(kv, "=")
		if name == "" {
			return fmt.Errorf("-entity: empty name in %q", kv)
		}
		c.SetEntity(name, value)
	}
	return nil
}
