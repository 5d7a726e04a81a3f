// sstf-sim drives the sstf elevator with a synthetic workload and
// reports the seek distance saved over FIFO issue order.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/fatih/color"
	"github.com/infinivision/sstf"
	"github.com/infinivision/sstf/constant"
	"github.com/infinivision/sstf/request"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	path     string
	trace    bool
	indexed  bool
	seed     int64
	sectors  uint64
	requests int
	batch    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sstf-sim",
		Short: "drive the sstf elevator with a synthetic request workload",
		RunE:  run,
	}
	rootCmd.Flags().StringVar(&path, "path", "", "backing file (default: a temp file)")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "print add/dsp trace records")
	rootCmd.Flags().BoolVar(&indexed, "indexed", false, "use the position-indexed pending queue")
	rootCmd.Flags().Int64Var(&seed, "seed", 1, "workload seed")
	rootCmd.Flags().Uint64Var(&sectors, "sectors", constant.DefaultSectors, "disk size in sectors")
	rootCmd.Flags().IntVar(&requests, "requests", 10000, "requests to generate")
	rootCmd.Flags().IntVar(&batch, "batch", constant.DefaultQueueDepth, "requests queued per dispatch round")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if sectors < 16 {
		return fmt.Errorf("--sectors %d is too small", sectors)
	}
	if path == "" {
		fp, err := os.CreateTemp("", "sstf-sim-*.img")
		if err != nil {
			return err
		}
		fp.Close()
		path = fp.Name()
		defer os.Remove(path)
	}
	cfg := sstf.DefaultConfig()
	cfg.Path = path
	cfg.Sectors = sectors
	cfg.Indexed = indexed
	if trace {
		cfg.TraceWriter = os.Stdout
	}
	dq, err := sstf.Attach(cfg)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(requests,
		progressbar.OptionSetDescription("dispatching"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
	r := rand.New(rand.NewSource(seed))
	var seek, fifo, prev, head uint64
	dispatched := 0
	for done := 0; done < requests; {
		n := batch
		if requests-done < n {
			n = requests - done
		}
		for i := 0; i < n; i++ {
			dir := request.Read
			if r.Intn(2) == 1 {
				dir = request.Write
			}
			sector := uint64(r.Int63n(int64(sectors - 8)))
			fifo += distance(prev, sector)
			prev = sector
			if err := dq.Add(request.New(dir, sector, uint64(1+r.Intn(8)))); err != nil {
				return err
			}
		}
		for dq.Dispatch() {
			dispatched++
			seek += distance(head, dq.Head())
			head = dq.Head()
		}
		done += n
		bar.Add(n)
	}
	if err := dq.Close(); err != nil {
		return err
	}
	bar.Finish()

	bold := color.New(color.Bold)
	color.New(color.FgCyan, color.Bold).Println("SSTF")
	fmt.Printf("  %s %d\n", bold.Sprint("requests:  "), requests)
	fmt.Printf("  %s %d\n", bold.Sprint("dispatched:"), dispatched)
	fmt.Printf("  %s %d\n", bold.Sprint("merged:    "), requests-dispatched)
	fmt.Printf("  %s %d\n", bold.Sprint("seek:      "), seek)
	fmt.Printf("  %s %d\n", bold.Sprint("fifo seek: "), fifo)
	if fifo > 0 {
		saved := 100 - float64(seek)*100/float64(fifo)
		color.New(color.FgGreen).Printf("  saved %.1f%% of FIFO seek distance\n", saved)
	}
	return nil
}

func distance(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
