package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/delaneyj/morphparty/dom"
	"github.com/delaneyj/morphparty/morph"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

func main() {
	log.Print("Starting reconcile benchmark, please wait...")
	defer log.Print("Finished reconcile benchmark")

	sizes := []int{10, 100, 1_000}
	iterations := 100
	rng := rand.New(rand.NewSource(1))

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"rows", "iters", "avg", "moves/iter", "minimal moves", "created", "removed"})

	for _, n := range sizes {
		var totalMoves, minimalMoves, created, removed int
		var elapsed time.Duration

		parent := dom.El("tbody")
		rows := make([]dom.Node, n)
		for i := range rows {
			rows[i] = row(i)
		}
		parent.AppendChild(rows...)

		for it := 0; it < iterations; it++ {
			from := parent.Children()
			perm := rng.Perm(n)
			to := make([]dom.Node, n)
			for ti, fi := range perm {
				to[ti] = row(fi)
			}

			start := time.Now()
			stats := morph.Reconcile(parent, from, to)
			elapsed += time.Since(start)

			totalMoves += stats.Moved
			minimalMoves += n - lisLen(perm)
			created += stats.Created
			removed += stats.Removed
		}

		tbl.Append([]string{
			humanize.Comma(int64(n)),
			humanize.Comma(int64(iterations)),
			fmt.Sprint(elapsed / time.Duration(iterations)),
			humanize.Comma(int64(totalMoves / iterations)),
			humanize.Comma(int64(minimalMoves / iterations)),
			humanize.Comma(int64(created)),
			humanize.Comma(int64(removed)),
		})
	}

	tbl.Render()
}

func row(i int) *dom.Element {
	return dom.ElAttrs("tr", map[string]string{"id": fmt.Sprintf("row-%d", i)},
		dom.El("td", dom.Txt(fmt.Sprintf("cell %d", i))),
	)
}

// reference O(n^2) LIS length over a permutation, kept honest against the
// reconciler's O(n log n) internal version
func lisLen(seq []int) int {
	best := make([]int, len(seq))
	max := 0
	for i := range seq {
		best[i] = 1
		for j := 0; j < i; j++ {
			if seq[j] < seq[i] && best[j]+1 > best[i] {
				best[i] = best[j] + 1
			}
		}
		if best[i] > max {
			max = best[i]
		}
	}
	return max
}
