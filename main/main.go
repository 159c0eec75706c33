package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"go-hep.org/x/hep/fmom"

	"github.com/MarcFBergevin/rat-pac/io"
	"github.com/MarcFBergevin/rat-pac/spectrum"
	"github.com/MarcFBergevin/rat-pac/vertex"
)

func main() {
	var (
		config        string
		exampleConfig bool
	)

	flag.StringVar(
		&config, "FastNeutron", "",
		"Configuration file for [FastNeutron] mode.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleFastNeutronFile)
		return
	}
	if config == "" {
		log.Fatal("No configuration file given. Run with -ExampleConfig " +
			"to see the expected format.")
	}

	con, err := io.ReadFastNeutronConfig(config)
	if err != nil {
		log.Fatal(err.Error())
	}

	store := spectrum.NewStore()
	if con.SpectrumFile != "" {
		err := store.LoadTable(con.Spectrum, con.SpectrumFile)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	gen := vertex.NewFastNeutron(store, rand.NewSource(con.Seed))
	gen.SetDepth(con.Depth)
	gen.SetEnThreshold(con.EnThreshold)
	err = gen.SetState(con.Particle + " " + con.Spectrum)
	if err != nil {
		log.Fatal(err.Error())
	}

	ev := &vertex.Event{}
	for i := 0; i < con.Events; i++ {
		// Position and time offsets come from upstream generators in a
		// full simulation; the standalone driver pins them to zero.
		err := gen.Generate(ev, fmom.Vec3{0, 0, 0}, 0)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	err = io.WriteEvents(con.Output, ev.Primaries)
	if err != nil {
		log.Fatal(err.Error())
	}

	fmt.Fprintf(os.Stdout, "Wrote %d primaries to %s\n",
		len(ev.Primaries), con.Output)
}
