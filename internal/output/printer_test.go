// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterPlain(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinterWithWriters(&out, &errOut, false)

	p.Info("fetching %d journals", 3)
	p.Success("fetched %d articles", 12)
	p.Warning("%s fetch failed: %s", "Econometrica", "HTTP 503")
	p.Error("bad input")
	p.Progress(1, 3, "Econometrica", true)
	p.Progress(2, 3, "Journal of Finance", false)

	assert.Empty(t, out.String(), "status lines never go to primary output")
	assert.Equal(t, "fetching 3 journals\n"+
		"[OK] fetched 12 articles\n"+
		"warning: Econometrica fetch failed: HTTP 503\n"+
		"error: bad input\n"+
		"Econometrica failed (1/3)\n"+
		"Journal of Finance done (2/3)\n", errOut.String())
	assert.Same(t, &out, p.Out())
}

func TestPrinterColors(t *testing.T) {
	var errOut bytes.Buffer
	p := NewPrinterWithWriters(&bytes.Buffer{}, &errOut, true)
	p.Warning("careful")
	assert.Contains(t, errOut.String(), "\x1b[")
	assert.Contains(t, errOut.String(), "warning: careful")
}

func TestResolveColors(t *testing.T) {
	assert.False(t, ResolveColors(true))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ResolveColors(false))
}
