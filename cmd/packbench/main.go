// Command packbench compresses and decompresses files through a chunked,
// length-prefixed container over interchangeable compression algorithms, and
// benchmarks algorithm/level combinations against each other.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/packbench/packbench/bench"
	"github.com/packbench/packbench/codec"
	"github.com/packbench/packbench/frame"
	"github.com/packbench/packbench/pkg/logger"
)

const (
	defaultDictLen    = 16 * 1024
	defaultAlgorithms = "lz4,s2,snappy,zstd,brotli"
	writeBufferSize   = 64 * 1024
)

func main() {
	log := logger.New("packbench")
	defer log.Sync()

	if err := run(os.Args[1:], log); err != nil {
		log.Errorw("operation failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, log *zap.SugaredLogger) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "compress":
		return runCompress(args[1:], log)
	case "decompress":
		return runDecompress(args[1:], log)
	case "benchmark":
		return runBenchmark(args[1:], log)
	case "benchmark-many":
		return runBenchmarkMany(args[1:], log)
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: packbench <command> [flags] <file>

commands:
  compress        compress a file
  decompress      decompress a file
  benchmark       benchmark compression+decompression of a single file
  benchmark-many  run multiple benchmarks

run "packbench <command> -h" for the flags of each command`)
}

// dictFlags carries the dictionary options shared by every command.
type dictFlags struct {
	path   string
	maxLen int64
}

func (f *dictFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.path, "d", "", "path to a dictionary file")
	fs.Int64Var(&f.maxLen, "dict-len", defaultDictLen, "length of the dictionary prefix to use")
}

func (f *dictFlags) load(log *zap.SugaredLogger) (*codec.Dictionary, error) {
	if f.path == "" {
		return nil, nil
	}

	dict, err := codec.LoadDictionary(f.path, f.maxLen)
	if err != nil {
		return nil, err
	}
	log.Infow("loaded dictionary",
		"path", f.path,
		"bytes", dict.Len(),
		"id", fmt.Sprintf("%016x", dict.ID()),
	)

	return dict, nil
}

// inputFile returns the single positional argument of a command.
func inputFile(fs *flag.FlagSet) (string, error) {
	if fs.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one input file, got %d arguments", fs.NArg())
	}

	return fs.Arg(0), nil
}

func runCompress(args []string, log *zap.SugaredLogger) error {
	fs := flag.NewFlagSet("compress", flag.ExitOnError)
	var dictf dictFlags
	dictf.register(fs)
	algoName := fs.String("a", "zstd", "compression algorithm")
	level := fs.Int("c", 1, "compression level")
	chunkSize := fs.Int("b", frame.DefaultChunkSize, "chunk size in bytes; each chunk is compressed independently")
	fs.Parse(args)

	path, err := inputFile(fs)
	if err != nil {
		return err
	}
	algo, err := codec.ParseAlgorithm(*algoName)
	if err != nil {
		return err
	}
	dict, err := dictf.load(log)
	if err != nil {
		return err
	}

	enc, err := codec.NewEncoder(algo, *level, dict)
	if err != nil {
		return err
	}
	defer enc.Close()

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	outPath := compressedPath(path, algo)
	dst, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}

	cin := bench.NewCountingReader(src)
	cout := bench.NewCountingWriter(dst)
	buffered := bufio.NewWriterSize(cout, writeBufferSize)
	m, err := bench.Measure(cin, cout, func() error {
		if err := frame.Compress(buffered, cin, *chunkSize, enc); err != nil {
			return err
		}

		return buffered.Flush()
	})
	if err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outPath, err)
	}

	log.Infow("compressed",
		"output", outPath,
		"result", m.String(),
		"speed", fmt.Sprintf("%.1f MB/s", m.InputThroughput()/1e6),
	)

	return nil
}

func runDecompress(args []string, log *zap.SugaredLogger) error {
	fs := flag.NewFlagSet("decompress", flag.ExitOnError)
	var dictf dictFlags
	dictf.register(fs)
	algoName := fs.String("a", "", "compression algorithm; determined from the file extension when empty")
	fs.Parse(args)

	path, err := inputFile(fs)
	if err != nil {
		return err
	}
	algo, err := resolveAlgorithm(*algoName, path)
	if err != nil {
		return err
	}
	dict, err := dictf.load(log)
	if err != nil {
		return err
	}

	dec, err := codec.NewDecoder(algo, dict)
	if err != nil {
		return err
	}
	defer dec.Close()

	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer src.Close()

	outPath := decompressedPath(path)
	dst, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}

	cin := bench.NewCountingReader(src)
	cout := bench.NewCountingWriter(dst)
	buffered := bufio.NewWriterSize(cout, writeBufferSize)
	m, err := bench.Measure(cin, cout, func() error {
		if err := frame.Decompress(buffered, cin, dec); err != nil {
			return err
		}

		return buffered.Flush()
	})
	if err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outPath, err)
	}

	log.Infow("decompressed",
		"output", outPath,
		"result", m.String(),
		"speed", fmt.Sprintf("%.1f MB/s", m.OutputThroughput()/1e6),
	)

	return nil
}

func runBenchmark(args []string, log *zap.SugaredLogger) error {
	fs := flag.NewFlagSet("benchmark", flag.ExitOnError)
	var dictf dictFlags
	dictf.register(fs)
	algoName := fs.String("a", "zstd", "compression algorithm")
	level := fs.Int("c", 1, "compression level")
	chunkSize := fs.Int("b", frame.DefaultChunkSize, "chunk size in bytes; each chunk is compressed independently")
	fs.Parse(args)

	path, err := inputFile(fs)
	if err != nil {
		return err
	}
	algo, err := codec.ParseAlgorithm(*algoName)
	if err != nil {
		return err
	}
	dict, err := dictf.load(log)
	if err != nil {
		return err
	}

	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	res, err := bench.Run(input, bench.Config{
		Algorithm:  algo,
		Level:      *level,
		ChunkSize:  *chunkSize,
		Dictionary: dict,
	})
	if err != nil {
		return err
	}
	fmt.Println(res)

	return nil
}

func runBenchmarkMany(args []string, log *zap.SugaredLogger) error {
	fs := flag.NewFlagSet("benchmark-many", flag.ExitOnError)
	var dictf dictFlags
	dictf.register(fs)
	algoList := fs.String("a", defaultAlgorithms, "comma-separated list of algorithms to benchmark")
	chunkSize := fs.Int("b", frame.DefaultChunkSize, "chunk size in bytes; each chunk is compressed independently")
	report := fs.String("report", "", "save benchmark results to a CSV file")
	skipDiminishing := fs.Bool("skip-diminishing", false, "skip further levels once one more level improves the output by less than 0.1%")
	fs.Parse(args)

	path, err := inputFile(fs)
	if err != nil {
		return err
	}
	algorithms, err := parseAlgorithmList(*algoList)
	if err != nil {
		return err
	}
	dict, err := dictf.load(log)
	if err != nil {
		return err
	}

	input, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	opts := []bench.Option{
		bench.WithChunkSize(*chunkSize),
		bench.WithDictionary(dict),
		bench.WithProgress(func(r bench.Result) { fmt.Println(r) }),
	}
	if *skipDiminishing {
		opts = append(opts, bench.WithStopThreshold(0.001))
	}

	results, err := bench.RunMany(input, algorithms, opts...)
	if err != nil {
		return err
	}

	if *report != "" {
		if err := writeReport(*report, results); err != nil {
			return err
		}
		log.Infow("saved report", "path", *report, "rows", len(results))
	}

	return nil
}

func parseAlgorithmList(list string) ([]codec.Algorithm, error) {
	var algorithms []codec.Algorithm
	for _, name := range strings.Split(list, ",") {
		algo, err := codec.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algorithms = append(algorithms, algo)
	}

	return algorithms, nil
}
