package spectrum

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreLookup(t *testing.T) {
	s := NewStore()

	sh, err := s.Lookup("fastneutron")
	assert.NoError(t, err)
	assert.NotNil(t, sh)

	_, err = s.Lookup("thermalneutron")
	assert.True(t, errors.Is(err, ErrUnknownSpectrum))
}

func TestStoreRegister(t *testing.T) {
	s := NewStore()
	tb, err := NewTabulated([]float64{1, 10, 100}, []float64{1, 0.1, 0.01})
	assert.NoError(t, err)
	s.Register("flat", tb)

	sh, err := s.Lookup("flat")
	assert.NoError(t, err)
	assert.Equal(t, tb, sh)
	assert.Equal(t, []string{"fastneutron", "flat"}, s.Names())
}

func TestStoreLoadTable(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "flux.dat")
	body := "# energy flux\n1 1.0\n10 0.5\n100 0.05\n1000 0.001\n"
	err := os.WriteFile(file, []byte(body), 0666)
	assert.NoError(t, err)

	s := NewStore()
	err = s.LoadTable("measured", file)
	assert.NoError(t, err)

	sh, err := s.Lookup("measured")
	assert.NoError(t, err)
	lo, hi := sh.Domain()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 1000.0, hi)

	tab, err := Build(sh, 400, 10)
	assert.NoError(t, err)
	e, _, err := tab.Sample(0.5)
	assert.NoError(t, err)
	assert.True(t, e >= 10 && e <= 1000)
}

func TestTabulatedValidation(t *testing.T) {
	_, err := NewTabulated([]float64{1, 2}, []float64{1})
	assert.Error(t, err, "length mismatch")

	_, err = NewTabulated([]float64{1}, []float64{1})
	assert.Error(t, err, "too short")

	_, err = NewTabulated([]float64{1, 1, 2}, []float64{1, 1, 1})
	assert.Error(t, err, "not strictly increasing")
}

func TestTabulatedDensity(t *testing.T) {
	tb, err := NewTabulated([]float64{0, 10, 20}, []float64{0, 1, 0})
	assert.NoError(t, err)

	atten := MuonInducedFlux(400)
	assert.InDelta(t, 1*atten, tb.Density(10, 400), 1e-15, "on a table point")
	assert.InDelta(t, 0.5*atten, tb.Density(5, 400), 1e-15, "interpolated")
	assert.InDelta(t, 0.5*atten, tb.Density(15, 400), 1e-15, "interpolated")
	assert.Equal(t, 0.0, tb.Density(-1, 400), "below range")
	assert.Equal(t, 0.0, tb.Density(21, 400), "above range")
}
