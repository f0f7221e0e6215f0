// Command cellctl loads a schema document and builds a message from it on
// the command line or in an interactive editor.
//
//	cellctl -schema shop.yaml -list
//	cellctl -schema shop.yaml -message Item -set id=7 -set detail.size=3
//	cellctl -schema shop.yaml -message Item -i
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/protocell/dynamic"
	"github.com/wippyai/protocell/errors"
	"github.com/wippyai/protocell/schema"
)

// multiFlag collects every occurrence of a repeated flag in order.
type multiFlag []string

func (f *multiFlag) String() string {
	return strings.Join(*f, ",")
}

func (f *multiFlag) Set(v string) error {
	*f = append(*f, v)
	return nil
}

func main() {
	var (
		sets   multiFlag
		clears multiFlag
	)
	var (
		schemaFile  = flag.String("schema", "", "Path to schema document (.yaml, .yml or .toml)")
		msgName     = flag.String("message", "", "Message type to build")
		list        = flag.Bool("list", false, "List message and enum types and exit")
		verbose     = flag.Bool("v", false, "Log schema loading and field changes to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Var(&sets, "set", "Set a field: path=value (repeatable, applied in order)")
	flag.Var(&clears, "clear", "Clear a field by path (repeatable, applied after -set)")
	flag.Parse()

	if *schemaFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: cellctl -schema <file> -list")
		fmt.Fprintln(os.Stderr, "       cellctl -schema <file> -message <name> [-set path=value ...] [-clear path ...]")
		fmt.Fprintln(os.Stderr, "       cellctl -schema <file> -message <name> -i  (interactive mode)")
		os.Exit(1)
	}

	opts := options{
		schemaFile:  *schemaFile,
		msgName:     *msgName,
		sets:        sets,
		clears:      clears,
		list:        *list,
		verbose:     *verbose,
		interactive: *interactive,
	}
	if err := execute(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	schemaFile  string
	msgName     string
	sets        []string
	clears      []string
	list        bool
	verbose     bool
	interactive bool
}

// execute runs one cellctl invocation. The verbose logger is flushed before
// it returns, whether or not the command failed.
func execute(opts options) error {
	if opts.verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		schema.SetLogger(log.Named("schema"))
		dynamic.SetLogger(log.Named("dynamic"))
	}

	file, err := schema.LoadFile(opts.schemaFile)
	if err != nil {
		return err
	}

	if opts.list || opts.msgName == "" {
		listTypes(os.Stdout, file)
		return nil
	}
	if opts.interactive {
		return runInteractive(file, opts.msgName)
	}
	return run(os.Stdout, file, opts.msgName, opts.sets, opts.clears)
}

func run(w io.Writer, file *schema.File, msgName string, sets, clears []string) error {
	desc := file.Message(msgName)
	if desc == nil {
		return errors.NotFound(errors.PhaseAccess, "message", msgName)
	}
	msg := dynamic.New(desc)

	for _, s := range sets {
		path, value, ok := strings.Cut(s, "=")
		if !ok {
			return errors.InvalidInput(errors.PhaseAccess, fmt.Sprintf("-set %q: want path=value", s))
		}
		if err := setPath(msg, path, value); err != nil {
			return err
		}
	}
	for _, path := range clears {
		if err := clearPath(msg, path); err != nil {
			return err
		}
	}

	describe(w, msg)
	return nil
}

// resolvePath walks the dotted path down message fields, creating nested
// messages on the way, and returns the message holding the last element.
func resolvePath(msg *dynamic.Message, path string) (*dynamic.Message, string, error) {
	parts := strings.Split(path, ".")
	for _, p := range parts[:len(parts)-1] {
		next, err := msg.Mutable(p)
		if err != nil {
			return nil, "", err
		}
		msg = next
	}
	return msg, parts[len(parts)-1], nil
}

func setPath(msg *dynamic.Message, path, value string) error {
	m, field, err := resolvePath(msg, path)
	if err != nil {
		return err
	}
	return m.SetText(field, value)
}

// clearPath clears the field at path without creating anything on the way:
// when a message along the path is unset there is nothing to clear.
func clearPath(msg *dynamic.Message, path string) error {
	parts := strings.Split(path, ".")
	for _, p := range parts[:len(parts)-1] {
		v, err := msg.Get(p)
		if err != nil {
			return err
		}
		if v.Kind() != schema.KindMessage {
			f := msg.Descriptor().Field(p)
			return errors.TypeMismatch(errors.PhaseAccess, []string{msg.Descriptor().Name, p}, "*dynamic.Message", f.TypeString())
		}
		if msg = v.Message(); msg == nil {
			return nil
		}
	}
	return msg.Clear(parts[len(parts)-1])
}

func listTypes(w io.Writer, file *schema.File) {
	if file.Package != "" {
		fmt.Fprintf(w, "Package: %s\n", file.Package)
	}
	fmt.Fprintf(w, "Messages: %d\n", len(file.Messages))
	for _, m := range file.Messages {
		fmt.Fprintf(w, "  %s (%d fields", m.Name, len(m.Fields))
		if len(m.Oneofs) > 0 {
			fmt.Fprintf(w, ", %d oneofs", len(m.Oneofs))
		}
		fmt.Fprintln(w, ")")
	}
	fmt.Fprintf(w, "Enums: %d\n", len(file.Enums))
	for _, e := range file.Enums {
		names := make([]string, 0, len(e.Values))
		for _, v := range e.Values {
			names = append(names, fmt.Sprintf("%s=%d", v.Name, v.Number))
		}
		fmt.Fprintf(w, "  %s {%s}\n", e.Name, strings.Join(names, ", "))
	}
}

// describe prints every field of msg with its kind, presence and value,
// followed by the active oneof members and the text rendering.
func describe(w io.Writer, msg *dynamic.Message) {
	desc := msg.Descriptor()
	fmt.Fprintf(w, "Message: %s\n\n", desc.Name)

	width := 0
	for _, f := range desc.Fields {
		width = max(width, len(f.Name))
	}
	for _, f := range desc.Fields {
		fmt.Fprintf(w, "  %5d  %-*s  %-10s  %-8s  %s\n",
			f.Number, width, f.Name, f.TypeString(), f.Presence(), fieldValue(msg, f))
	}

	for _, o := range desc.Oneofs {
		active := "not set"
		if f, err := msg.WhichOneof(o.Name); err == nil && f != nil {
			active = f.Name
		}
		fmt.Fprintf(w, "\n  oneof %s: %s", o.Name, active)
	}
	if len(desc.Oneofs) > 0 {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "\nText: %s\n", msg.String())
}

// fieldValue renders a field for display. Fields with presence show whether
// they are set; implicit fields show just their value.
func fieldValue(msg *dynamic.Message, f *schema.Field) string {
	if !f.HasPresence() {
		v, err := msg.Get(f.Name)
		if err != nil {
			return err.Error()
		}
		return dynamic.FormatValue(f, v)
	}
	opt, err := msg.Opt(f.Name)
	if err != nil {
		return err.Error()
	}
	if opt.IsSet() {
		return "Set(" + dynamic.FormatValue(f, opt.Value()) + ")"
	}
	return "Unset(" + dynamic.FormatValue(f, opt.Value()) + ")"
}
