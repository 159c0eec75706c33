package main

import (
	"flag"
	"log"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/MarcFBergevin/rat-pac/spectrum"
)

var (
	depth     = flag.Float64("depth", 400, "overburden in m.w.e.")
	threshold = flag.Float64("threshold", 10, "energy threshold in MeV")
)

// Draws the attenuated Mei-Hime density and its normalized cumulative
// table for a given depth and threshold.
func main() {
	flag.Parse()

	tab, err := spectrum.Build(spectrum.MeiHime{}, *depth, *threshold)
	if err != nil {
		log.Fatal(err.Error())
	}

	n := tab.Len()
	es, cums := make([]float64, n+1), make([]float64, n+1)
	for i := 0; i <= n; i++ {
		es[i], cums[i] = tab.Edges(i)
	}

	sh := spectrum.MeiHime{}
	dens := make([]float64, n+1)
	for i, e := range es {
		dens[i] = sh.Density(e, *depth)
	}
	max := dens[0]
	for _, d := range dens {
		if d > max {
			max = d
		}
	}
	for i := range dens {
		dens[i] /= max
	}

	plt.Reset()
	plt.Plot(es, dens, "r", plt.LW(2))
	plt.Plot(es, cums, "b", plt.LW(2))
	plt.Show()
}
