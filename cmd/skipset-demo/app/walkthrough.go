package app

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/metailurini/skipset"
	"github.com/metailurini/skipset/cmd/skipset-demo/app/options"
)

var progressMessage = color.GreenString("==>")

func newWalkthroughCommand(opts *options.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "walkthrough",
		Short: "replay the classic insert/find/erase/clone/swap demo",
		RunE: func(*cobra.Command, []string) error {
			return runWalkthrough(opts)
		},
	}
}

func runWalkthrough(opts *options.Options) error {
	set := skipset.NewOrdered[int](skipset.WithSeed(opts.Seed))
	for _, id := range []int{1, 3, 2} {
		set.Insert(id)
	}
	fmt.Printf("%s inserted 1, 3, 2\n", progressMessage)
	printSet("initial order", set)

	it := set.Find(2)
	key, err := it.Key()
	if err != nil {
		klog.ErrorS(err, "find failed", "key", 2)
		return err
	}
	fmt.Printf("%s found %s\n", progressMessage, color.CyanString("%d", key))

	next, err := set.Erase(it)
	if err != nil {
		klog.ErrorS(err, "erase failed", "key", key)
		return err
	}
	nextKey, err := next.Key()
	if err != nil {
		klog.ErrorS(err, "dereferencing the successor failed")
		return err
	}
	fmt.Printf("%s erased %d, next element is %d\n", progressMessage, key, nextKey)
	printSet("after erase", set)

	last, err := set.At(set.Len() - 1)
	if err != nil {
		klog.ErrorS(err, "indexed access failed")
		return err
	}
	fmt.Printf("%s size %d, last element %d\n", progressMessage, set.Len(), last)

	clone := set.Clone()
	clone.Insert(4)
	fmt.Printf("%s cloned the set and inserted 4 into the clone\n", progressMessage)
	printSet("clone", clone)
	printSet("original", set)

	descending := skipset.New[int](func(a, b int) bool { return a > b },
		skipset.WithSeed(opts.Seed))
	for _, id := range []int{1, 3, 2} {
		descending.Insert(id)
	}
	printSet("descending comparator", descending)

	set.Swap(clone)
	fmt.Printf("%s swapped original and clone\n", progressMessage)
	printSet("original", set)
	printSet("clone", clone)
	return nil
}

func printSet(name string, set *skipset.SkipSet[int]) {
	table := uitable.New()
	table.Separator = " "
	table.RightAlign(0)
	i := 0
	for it := set.Begin(); it.Valid(); i++ {
		key, err := it.Key()
		if err != nil {
			klog.ErrorS(err, "iteration failed", "position", i)
			return
		}
		table.AddRow(fmt.Sprintf("%d:", i), key)
		if err := it.Next(); err != nil {
			klog.ErrorS(err, "iteration failed", "position", i)
			return
		}
	}
	fmt.Printf("%s %s (%d elements)\n%s\n", progressMessage, color.CyanString(name), set.Len(), table)
}
