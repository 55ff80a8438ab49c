package widgets

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_DefaultsIDToEndpoint(t *testing.T) {
	d, err := NewDescriptor("/prices").Name("Prices").Build()
	require.NoError(t, err)
	assert.Equal(t, "/prices", d.WidgetID)
	assert.Equal(t, "table", d.Type)
	assert.NotNil(t, d.Params)
}

func TestBuild_Rejects(t *testing.T) {
	cases := map[string]*Builder{
		"relative endpoint": NewDescriptor("prices").Name("x"),
		"missing name":      NewDescriptor("/prices"),
		"unnamed param":     NewDescriptor("/p").Name("x").Param(ParamSpec{Type: ParamText}),
		"duplicate param": NewDescriptor("/p").Name("x").
			Param(ParamSpec{ParamName: "a", Type: ParamText, Value: "1"}).
			Param(ParamSpec{ParamName: "a", Type: ParamText, Value: "2"}),
		"bad type":     NewDescriptor("/p").Name("x").Param(ParamSpec{ParamName: "a", Type: "slider"}),
		"bool default": NewDescriptor("/p").Name("x").Param(ParamSpec{ParamName: "a", Type: ParamBoolean, Value: "false"}),
		"text default": NewDescriptor("/p").Name("x").Param(ParamSpec{ParamName: "a", Type: ParamText, Value: 3}),
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := b.Build()
			assert.Error(t, err)
		})
	}
}

func TestBuild_DoesNotAliasBuilder(t *testing.T) {
	b := NewDescriptor("/p").Name("x").Param(ParamSpec{ParamName: "a", Type: ParamText, Value: "1"})
	d := b.MustBuild()
	b.Param(ParamSpec{ParamName: "b", Type: ParamText, Value: "2"})
	assert.Len(t, d.Params, 1)
}

func TestMonteCarloDescriptor(t *testing.T) {
	d := MonteCarloDescriptor()

	assert.Equal(t, "monte_carlo_simulation", d.WidgetID)
	assert.Equal(t, "/monte_carlo_simulation", d.Endpoint)
	assert.Equal(t, "chart", d.Type)
	assert.Equal(t, GridData{W: 40, H: 15}, d.GridData)
	assert.True(t, d.RunButton)
	assert.True(t, d.Raw)

	require.Len(t, d.Params, 3)
	assert.Equal(t, "ticker", d.Params[0].ParamName)
	assert.Equal(t, "AAPL", d.Params[0].Value)
	assert.Equal(t, ParamDate, d.Params[1].Type)
	assert.Equal(t, "2023-01-01", d.Params[1].Value)
	assert.Equal(t, false, d.Params[2].Value)
}

func TestMonteCarloDescriptor_JSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(MonteCarloDescriptor())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	for _, key := range []string{"widgetId", "name", "description", "category", "subCategory", "type", "endpoint", "gridData", "runButton", "raw", "params"} {
		assert.Contains(t, doc, key)
	}
	param := doc["params"].([]any)[2].(map[string]any)
	assert.Equal(t, "use_volatility_adjustment", param["paramName"])
	assert.Equal(t, false, param["value"])
	assert.Equal(t, true, param["show"])
}

func TestRegistry(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Len())
	assert.Equal(t, []string{MonteCarloID}, reg.IDs())

	d, ok := reg.Get(MonteCarloID)
	require.True(t, ok)
	assert.Equal(t, "Monte Carlo Stock Simulation", d.Name)

	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_IsReadOnly(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)

	all := reg.All()
	d := all[MonteCarloID]
	d.Params[0].Value = "MSFT"
	delete(all, MonteCarloID)

	again, ok := reg.Get(MonteCarloID)
	require.True(t, ok)
	assert.Equal(t, "AAPL", again.Params[0].Value)
	assert.Len(t, reg.All(), 1)
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	a := NewDescriptor("/a").ID("w").Name("A").MustBuild()
	b := NewDescriptor("/b").ID("w").Name("B").MustBuild()
	_, err := NewRegistry(a, b)
	assert.ErrorContains(t, err, "duplicate widget id")

	c := NewDescriptor("/a").ID("other").Name("C").MustBuild()
	_, err = NewRegistry(a, c)
	assert.ErrorContains(t, err, "share endpoint")
}
