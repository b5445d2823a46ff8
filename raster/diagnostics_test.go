package raster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/rasterkit/pkg/types"
)

func TestCollectorNilSafe(t *testing.T) {
	var c *Collector
	c.Record(types.Diagnostic{Severity: types.SevWarning, Issue: "dropped"})
	require.Nil(t, c.Report())
}

func TestCollectorReport(t *testing.T) {
	c := NewCollector()
	c.Record(types.Diagnostic{Severity: types.SevWarning, Band: 0, Offset: 0x3D, Issue: "off-database band unsupported"})
	c.Record(types.Diagnostic{Severity: types.SevWarning, Band: 2, Offset: 0x41, Issue: "nodata value differs from first band", Expected: uint8(7), Actual: uint8(9)})

	rep := c.Report()
	require.True(t, rep.HasAnyIssues())
	require.Equal(t, 2, rep.Summary.Warnings)
	require.Equal(t, 0, rep.Summary.Info)
	require.Len(t, rep.ByBand[0], 1)
	require.Len(t, rep.ByBand[2], 1)
}

func TestReportFormatText(t *testing.T) {
	c := NewCollector()
	c.Record(types.Diagnostic{Severity: types.SevWarning, Band: 1, Offset: 0x3F, Issue: "band pixel type unsupported", Expected: "8BSI or 8BUI", Actual: "32BF"})

	text := c.Report().FormatText()
	require.Contains(t, text, "band 1")
	require.Contains(t, text, "pixel type unsupported")
	require.Contains(t, text, "32BF")
	require.Contains(t, text, "0x003F")

	empty := types.NewReport().FormatText()
	require.True(t, strings.HasPrefix(empty, "No issues found"))
}

func TestReportFormatJSON(t *testing.T) {
	c := NewCollector()
	c.Record(types.Diagnostic{Severity: types.SevWarning, Band: 0, Issue: "off-database band unsupported"})

	out, err := c.Report().FormatJSON()
	require.NoError(t, err)
	require.Contains(t, out, `"warnings": 1`)
	require.Contains(t, out, `"off-database band unsupported"`)
}
