package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/valyala/fastrand"
	"k8s.io/klog/v2"

	"github.com/metailurini/skipset"
	"github.com/metailurini/skipset/cmd/skipset-demo/app/options"
)

func newFillCommand(opts *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "fill",
		Short: "insert random keys and report the container's metrics",
		RunE: func(*cobra.Command, []string) error {
			return runFill(opts)
		},
	}
}

func runFill(opts *options.Options) error {
	monitor := skipset.NewMonitor("demo")
	registry := prometheus.NewRegistry()
	if err := registry.Register(monitor); err != nil {
		klog.ErrorS(err, "monitor registration failed")
		return err
	}

	set := skipset.NewOrdered[int](
		skipset.WithSeed(opts.Seed),
		skipset.WithCapacity(opts.Count),
		skipset.WithMonitor(monitor),
	)
	for i := 0; i < opts.Count; i++ {
		set.Insert(int(fastrand.Uint32n(uint32(opts.KeyRange))))
	}
	fmt.Printf("%s inserted %d keys drawn from [0, %d), container holds %d\n",
		progressMessage, opts.Count, opts.KeyRange, set.Len())

	families, err := registry.Gather()
	if err != nil {
		klog.ErrorS(err, "gathering metrics failed")
		return err
	}

	table := uitable.New()
	table.Separator = " "
	table.MaxColWidth = 80
	table.RightAlign(0)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				table.AddRow(fmt.Sprintf("%s:", family.GetName()), metric.GetCounter().GetValue())
			case metric.GetHistogram() != nil:
				histogram := metric.GetHistogram()
				table.AddRow(fmt.Sprintf("%s_count:", family.GetName()), histogram.GetSampleCount())
				var prev uint64
				for _, bucket := range histogram.GetBucket() {
					if c := bucket.GetCumulativeCount(); c > prev {
						table.AddRow(fmt.Sprintf("%s[height=%.0f]:", family.GetName(), bucket.GetUpperBound()), c-prev)
						prev = c
					}
				}
			}
		}
	}
	fmt.Printf("%s %s\n%s\n", progressMessage, color.CyanString("metrics"), table)
	return nil
}
