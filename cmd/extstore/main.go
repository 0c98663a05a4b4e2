// Command extstore inspects and edits an application's external storage
// directory from the command line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/input-output-hk/catalyst-forge-libs/extstore"
)

const mainUsage = `The extstore command reads and writes an application's external storage.

Usage:

	extstore [flags] <command> [path]

Commands:

	root         print the external storage directory
	ls PATH      list the entries of directory PATH
	cat PATH     copy file PATH to standard output
	put PATH     write standard input to file PATH
	stat PATH    print the size and detected content type of file PATH

Paths starting with /external/ are resolved against the external storage
directory; any other path is used as-is.

Flags:

`

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "extstore: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("extstore", flag.ContinueOnError)
	flags.SetOutput(stderr)
	appID := flags.String("app", "", "application identity used to locate external storage (default: executable name)")
	rootDir := flags.String("root", "", "external storage directory; overrides -app")
	verbose := flags.Bool("v", false, "log debug output to standard error")
	flags.Usage = func() {
		fmt.Fprint(stderr, mainUsage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	cmd := flags.Arg(0)
	if cmd == "" {
		flags.Usage()
		return errors.New("specify a command")
	}

	root, err := openRoot(*rootDir, *appID)
	if err != nil {
		return err
	}
	var opts []extstore.Option
	if *verbose {
		opts = append(opts, extstore.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}
	store, err := extstore.New(root, opts...)
	if err != nil {
		return err
	}

	if cmd == "root" {
		_, err := fmt.Fprintln(stdout, store.ExternalStoragePath())
		return err
	}

	path := flags.Arg(1)
	if path == "" {
		return fmt.Errorf("%s: specify a path", cmd)
	}
	switch cmd {
	case "ls":
		return list(store, path, stdout)
	case "cat":
		return cat(store, path, stdout)
	case "put":
		return put(store, path, stdin)
	case "stat":
		return stat(store, path, stdout)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func openRoot(dir, appID string) (extstore.Root, error) {
	if dir != "" {
		return extstore.NewRoot(dir)
	}
	var opts []extstore.RootOption
	if appID != "" {
		opts = append(opts, extstore.WithAppID(appID))
	}
	return extstore.ResolveRoot(opts...)
}

func list(store *extstore.Store, path string, w io.Writer) error {
	names, err := store.ListDir(path)
	if err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func cat(store *extstore.Store, path string, w io.Writer) error {
	return store.WithFile(path, extstore.ModeRead, func(f *extstore.File) error {
		_, err := io.Copy(w, f)
		return err
	})
}

func put(store *extstore.Store, path string, r io.Reader) error {
	return store.WithFile(path, extstore.ModeWrite, func(f *extstore.File) error {
		if _, err := io.Copy(f, r); err != nil {
			return err
		}
		return f.Flush()
	})
}

func stat(store *extstore.Store, path string, w io.Writer) error {
	return store.WithFile(path, extstore.ModeRead, func(f *extstore.File) error {
		// Only the header is sniffed, so the size is counted separately.
		counter := &countingReader{r: f}
		mtype, err := mimetype.DetectReader(counter)
		if err != nil {
			return err
		}
		if _, err := io.Copy(io.Discard, counter); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\t%d\t%s\n", path, counter.n, mtype.String())
		return err
	})
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
