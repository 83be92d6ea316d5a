package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/wdm0006/parquetry/pkg/convert"
)

var (
	version = "0.1.0-dev"
)

func main() {
	input := flag.String("input", "", "Root directory to scan (prompted for when omitted)")
	output := flag.String("output", "", "Output root for Parquet files (default <input>/_parquet_out)")
	autoDelete := flag.Bool("delete", false, "Delete source files after successful conversion, without asking")
	configPath := flag.String("config", "", "Path to run config (TOML, YAML, or JSON)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("parquetry", version)
		return
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	in := *input
	if in == "" {
		in = promptDirectory()
	}
	if in == "" {
		fmt.Fprintln(os.Stderr, "no input directory given; try --input <dir>")
		os.Exit(2)
	}
	in, err := filepath.Abs(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	out := *output
	if out == "" {
		out = filepath.Join(in, "_parquet_out")
	}

	files, err := convert.Walk(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Println("no csv/xlsx/dta files found under", in)
		return
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "output root %q: %v\n", out, err)
		os.Exit(1)
	}

	runner := convert.NewRunner(convert.Options{
		OutputRoot:     out,
		ChunkThreshold: cfg.ChunkThresholdMB << 20,
		ChunkRows:      cfg.ChunkRows,
		Sheet:          cfg.Sheet,
		NoHeader:       cfg.NoHeader,
	})

	p := mpb.New(mpb.WithWidth(80))
	bar := p.AddBar(int64(len(files)),
		mpb.PrependDecorators(
			decor.Name("Converting: "),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.OnComplete(decor.AverageETA(decor.ET_STYLE_GO), "done"),
		),
	)
	runner.OnFile = func(res convert.Result) {
		bar.Increment()
		if res.Err != nil && !convert.IsFatal(res.Err) {
			fmt.Fprintf(os.Stderr, "conversion failed: %s: %v\n", res.Source.Path, res.Err)
		}
	}

	results, runErr := runner.Run(files)
	if runErr != nil {
		bar.Abort(true)
	}
	p.Wait()
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}

	sum := convert.Summarize(results)
	fmt.Printf("converted %d file(s), %d failed, output: %s\n", sum.Succeeded, sum.Failed, out)
	for _, path := range sum.FailedPaths {
		fmt.Printf("  failed: %s\n", path)
	}

	if sum.Succeeded == 0 {
		return
	}
	if *autoDelete || confirmDelete(sum.Succeeded) {
		for _, derr := range convert.DeleteSources(results) {
			fmt.Fprintln(os.Stderr, derr)
		}
		fmt.Println("original files removed")
	} else {
		fmt.Println("original files kept")
	}
}
