package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolverGlossary(t *testing.T) *Glossary {
	t.Helper()
	return Build([]string{
		`"Business Day" means a day other than a Saturday or Sunday on which banks are open in London.`,
		`"Liability" means any loss, damage, cost, charge or expense of any kind.`,
		`"Clawback Amount" has the meaning set out in clause 9.2.`,
		`"Permitted Transferee" has the meaning given in clause 14.3.`,
		`The General Partner shall recover from each Limited Partner the amount by which aggregate contributions exceed aggregate distributions (the "Clawback Amount") on demand.`,
	})
}

func TestResolveDirect(t *testing.T) {
	g := resolverGlossary(t)

	res := Resolve(g, `  "BUSINESS DAY" `)
	assert.Equal(t, StatusDirect, res.Status)
	assert.Equal(t, `  "BUSINESS DAY" `, res.Term)
	assert.Equal(t, "business day", res.Key)
	assert.Contains(t, res.Definition, "banks are open in London")
	assert.Contains(t, res.Message(), "defined in the document")
}

func TestResolvePluralProbe(t *testing.T) {
	g := resolverGlossary(t)

	// The table holds the singular; the plural selection resolves through
	// its singular candidate.
	res := Resolve(g, "Liabilities")
	require.Equal(t, StatusDirect, res.Status)
	assert.Equal(t, "liability", res.Key)
	assert.Equal(t, res.Definition, g.Direct["liability"])
}

func TestResolveEmbedded(t *testing.T) {
	g := resolverGlossary(t)

	res := Resolve(g, "Clawback Amount")
	require.Equal(t, StatusEmbedded, res.Status)
	assert.Equal(t, "9.2", res.ClauseRef)
	assert.Contains(t, res.Definition, "contributions exceed aggregate distributions")
	assert.Contains(t, res.Message(), "clause 9.2")
}

func TestResolveClauseOnly(t *testing.T) {
	g := resolverGlossary(t)

	res := Resolve(g, "Permitted Transferee")
	require.Equal(t, StatusClauseOnly, res.Status)
	assert.Equal(t, "14.3", res.ClauseRef)
	assert.Empty(t, res.Definition)
	assert.Contains(t, res.Message(), "clause 14.3")
}

func TestResolveNotFound(t *testing.T) {
	g := resolverGlossary(t)

	res := Resolve(g, "Force Majeure")
	assert.Equal(t, StatusNotFound, res.Status)
	assert.Equal(t, "no definition found", res.Message())
}

func TestResolveNoSelection(t *testing.T) {
	g := resolverGlossary(t)

	for _, raw := range []string{"", "   ", `"..."`, "‘’"} {
		res := Resolve(g, raw)
		assert.Equal(t, StatusNoSelection, res.Status, "raw %q", raw)
		assert.Equal(t, "no term selected", res.Message())
	}
}

func TestResolveDirectBeforeCrossRef(t *testing.T) {
	g := Build([]string{
		`"Margin" has the meaning given in clause 8.1.`,
		`"Margins" means the percentage rates set out in the pricing grid.`,
	})

	// "margin" sits in the cross-reference table and "margins" in the direct
	// table; the plural selection probes both candidates against the direct
	// table before touching the cross-reference table.
	res := Resolve(g, "Margins")
	assert.Equal(t, StatusDirect, res.Status)
	assert.Equal(t, "margins", res.Key)
}
