package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/MarcFBergevin/rat-pac/vertex"
)

// WriteEvents writes the generated primaries to file as a whitespace
// separated text table, one primary per row, with a commented header
// line. Columns are the PDG code, the four momentum in MeV, the
// position offset, and the time offset.
func WriteEvents(file string, primaries []vertex.Primary) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "# pdg px py pz e x y z t\n")
	for _, p := range primaries {
		_, err := fmt.Fprintf(w, "%d %g %g %g %g %g %g %g %g\n",
			p.PDG,
			p.P.Px(), p.P.Py(), p.P.Pz(), p.P.E(),
			p.Pos[0], p.Pos[1], p.Pos[2], p.Time,
		)
		if err != nil {
			return err
		}
	}
	return w.Flush()
}
