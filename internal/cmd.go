package spacefill

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spacefill/spacefill/internal/curve"
	_ "github.com/spacefill/spacefill/internal/features"
	"github.com/spacefill/spacefill/internal/schemas"
)

func Usage() {
	fmt.Fprintf(os.Stderr, "spacefill <subcommand>\n")
}

func Cmd() {
	if len(os.Args) < 2 {
		Usage()
		os.Exit(1)
	}

	initSentry()
	defer sentry.Flush(2 * time.Second)

	ctx := context.Background()

	serve := func(args []string) int {
		fs := flag.NewFlagSet("serve", flag.ExitOnError)
		port := fs.Uint("port", 8080, "port to listen on")
		memcached := fs.String("memcached", "", "memcached address, e.g. localhost:11211")
		if err := fs.Parse(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			return 1
		}
		DoServe(ctx, *port, *memcached)
		return 0
	}

	path := func(args []string) int {
		fs := flag.NewFlagSet("path", flag.ExitOnError)
		kind := fs.String("kind", "hilbert", "curve kind (hilbert or morton)")
		order := fs.Int("order", 3, "curve order, grid side is 2^order")
		if err := fs.Parse(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			return 1
		}
		return DoPath(ctx, *kind, *order)
	}

	schemasCmd := func(args []string) int {
		fs := flag.NewFlagSet("schemas", flag.ExitOnError)
		if err := fs.Parse(args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err)
			return 1
		}
		DoSchemas(ctx)
		return 0
	}

	main := func(args []string) int {
		cmd := args[1]
		subArgs := args[2:]
		switch cmd {
		case "serve":
			return serve(subArgs)
		case "path":
			return path(subArgs)
		case "schemas":
			return schemasCmd(subArgs)
		default:
			fmt.Fprintf(os.Stderr, "Unknown subcommand '%s'\n", cmd)
			Usage()
			return 1
		}
	}

	os.Exit(main(os.Args))
}

// DoPath writes a full traversal to stdout, one "index x y" line per cell.
func DoPath(ctx context.Context, kind string, order int) int {
	ix, err := curve.New(curve.Kind(kind), order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		return 1
	}

	w := bufio.NewWriter(os.Stdout)
	for i, p := range curve.Points(ix) {
		fmt.Fprintf(w, "%d\t%d\t%d\n", i, p.X, p.Y)
	}
	w.Flush()
	return 0
}

func DoSchemas(ctx context.Context) {
	fmt.Printf("%s", schemas.ToZodSchema())
}

func initSentry() {
	dsn := os.Getenv("SENTRY_DSN")
	if dsn == "" {
		log.Println("SENTRY_DSN not set, Sentry disabled")
		return
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      GetEnvironment(),
		TracesSampleRate: 1.0,
		Debug:            os.Getenv("SENTRY_DEBUG") == "true",
	})
	if err != nil {
		log.Printf("sentry.Init: %s", err)
	} else {
		log.Println("Sentry initialized")
	}
}

func GetEnvironment() string {
	if env := os.Getenv("ENVIRONMENT"); env != "" {
		return env
	}
	if env := os.Getenv("GO_ENV"); env != "" {
		return env
	}
	return "development"
}
