package widgets

// MonteCarloID is the widget id and route name of the simulation widget.
const MonteCarloID = "monte_carlo_simulation"

// MonteCarloDescriptor describes the Monte Carlo stock simulation widget.
func MonteCarloDescriptor() Descriptor {
	return NewDescriptor("/" + MonteCarloID).
		ID(MonteCarloID).
		Name("Monte Carlo Stock Simulation").
		Description("Monte Carlo simulation for stock price forecasting").
		Category("Finance", "Analysis").
		Type("chart").
		Grid(40, 15).
		RunButton(true).
		Raw(true).
		Param(ParamSpec{
			ParamName:   "ticker",
			Label:       "Stock Ticker",
			Type:        ParamText,
			Description: "Stock symbol (e.g., AAPL, MSFT)",
			Value:       "AAPL",
			Show:        true,
		}).
		Param(ParamSpec{
			ParamName:   "start_date",
			Label:       "Start Date",
			Type:        ParamDate,
			Description: "Historical data start date",
			Value:       "2023-01-01",
			Show:        true,
		}).
		Param(ParamSpec{
			ParamName:   "use_volatility_adjustment",
			Label:       "Volatility Adjustment",
			Type:        ParamBoolean,
			Description: "Apply volatility adjustment to simulation",
			Value:       false,
			Show:        true,
		}).
		MustBuild()
}

// Default returns the registry served by the widget server.
func Default() (*Registry, error) {
	return NewRegistry(MonteCarloDescriptor())
}
