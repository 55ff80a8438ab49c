package docs

// sourceBase is the raw GitHub prefix every catalog document lives under.
const sourceBase = "https://raw.githubusercontent.com/OpenBB-finance/openbb-docs/major-refactor/content/workspace/developers/"

// catalog is the fixed set of documents exposed as tools, in registration order.
var catalog = []Entry{
	{Name: "data-integration", Description: "Documentation for integrating data sources into the OpenBB platform", SourceURL: sourceBase + "data-integration.md"},
	{Name: "ai-agents_ai-agents", Description: "Documentation about AI agents in OpenBB", SourceURL: sourceBase + "ai-agents/ai-agents.md"},
	{Name: "apps_apps", Description: "Documentation about OpenBB applications", SourceURL: sourceBase + "apps/apps.md"},
	{Name: "json-specs_agents-json-reference", Description: "JSON reference documentation for agents configuration", SourceURL: sourceBase + "json-specs/agents-json-reference.md"},
	{Name: "json-specs_apps-json-reference", Description: "JSON reference documentation for apps configuration", SourceURL: sourceBase + "json-specs/apps-json-reference.md"},
	{Name: "json-specs_widgets-json-reference", Description: "JSON reference documentation for widgets configuration", SourceURL: sourceBase + "json-specs/widgets-json-reference.md"},
	{Name: "widget-configuration_category-subcategory", Description: "Documentation for widget category and subcategory configuration", SourceURL: sourceBase + "widget-configuration/category-subcategory.md"},
	{Name: "widget-configuration_error-handling", Description: "Documentation for widget error handling", SourceURL: sourceBase + "widget-configuration/error-handling.md"},
	{Name: "widget-configuration_grid-size", Description: "Documentation for widget grid size configuration", SourceURL: sourceBase + "widget-configuration/grid-size.md"},
	{Name: "widget-configuration_refetch-interval", Description: "Documentation for widget refetch interval configuration", SourceURL: sourceBase + "widget-configuration/refetch-interval.md"},
	{Name: "widget-configuration_render-functions", Description: "Documentation for widget render functions", SourceURL: sourceBase + "widget-configuration/render-functions.md"},
	{Name: "widget-configuration_run-button", Description: "Documentation for widget run button configuration", SourceURL: sourceBase + "widget-configuration/run-button.md"},
	{Name: "widget-configuration_stale-time", Description: "Documentation for widget stale time configuration", SourceURL: sourceBase + "widget-configuration/stale-time.md"},
	{Name: "widget-parameters_advanced-dropdown", Description: "Documentation for advanced dropdown widget parameters", SourceURL: sourceBase + "widget-parameters/advanced-dropdown.md"},
	{Name: "widget-parameters_boolean-toggle", Description: "Documentation for boolean toggle widget parameters", SourceURL: sourceBase + "widget-parameters/boolean-toggle.md"},
	{Name: "widget-parameters_cell-click-grouping", Description: "Documentation for cell click grouping in widgets", SourceURL: sourceBase + "widget-parameters/cell-click-grouping.md"},
	{Name: "widget-parameters_date-picker", Description: "Documentation for date picker widget parameters", SourceURL: sourceBase + "widget-parameters/date-picker.md"},
	{Name: "widget-parameters_dependent-dropdown", Description: "Documentation for dependent dropdown widget parameters", SourceURL: sourceBase + "widget-parameters/dependent-dropdown.md"},
	{Name: "widget-parameters_dropdown", Description: "Documentation for dropdown widget parameters", SourceURL: sourceBase + "widget-parameters/dropdown.md"},
	{Name: "widget-parameters_input-form", Description: "Documentation for input form widget parameters", SourceURL: sourceBase + "widget-parameters/input-form.md"},
	{Name: "widget-parameters_number-input", Description: "Documentation for number input widget parameters", SourceURL: sourceBase + "widget-parameters/number-input.md"},
	{Name: "widget-parameters_parameter-grouping", Description: "Documentation for parameter grouping in widgets", SourceURL: sourceBase + "widget-parameters/parameter-grouping.md"},
	{Name: "widget-parameters_parameter-positioning", Description: "Documentation for parameter positioning in widgets", SourceURL: sourceBase + "widget-parameters/parameter-positioning.md"},
	{Name: "widget-parameters_text-input", Description: "Documentation for text input widget parameters", SourceURL: sourceBase + "widget-parameters/text-input.md"},
	{Name: "widget-types_aggrid-table-charts", Description: "Documentation for AgGrid table charts widget type", SourceURL: sourceBase + "widget-types/aggrid-table-charts.md"},
	{Name: "widget-types_file-viewer", Description: "Documentation for file viewer widget type", SourceURL: sourceBase + "widget-types/file-viewer.md"},
	{Name: "widget-types_highcharts", Description: "Documentation for Highcharts widget type", SourceURL: sourceBase + "widget-types/highcharts.md"},
	{Name: "widget-types_html", Description: "Documentation for HTML widget type", SourceURL: sourceBase + "widget-types/html.md"},
	{Name: "widget-types_live-grid", Description: "Documentation for live grid widget type", SourceURL: sourceBase + "widget-types/live-grid.md"},
	{Name: "widget-types_markdown", Description: "Documentation for markdown widget type", SourceURL: sourceBase + "widget-types/markdown.md"},
	{Name: "widget-types_metric", Description: "Documentation for metric widget type", SourceURL: sourceBase + "widget-types/metric.md"},
	{Name: "widget-types_newsfeed", Description: "Documentation for newsfeed widget type", SourceURL: sourceBase + "widget-types/newsfeed.md"},
	{Name: "widget-types_omni", Description: "Documentation for omni widget type", SourceURL: sourceBase + "widget-types/omni.md"},
	{Name: "widget-types_plotly-charts", Description: "Documentation for Plotly charts widget type", SourceURL: sourceBase + "widget-types/plotly-charts.md"},
	{Name: "widget-types_ssrm-mode", Description: "Documentation for SSRM mode in widgets", SourceURL: sourceBase + "widget-types/ssrm_mode.md"},
	{Name: "widget-types_tradingview-charts", Description: "Documentation for TradingView charts widget type", SourceURL: sourceBase + "widget-types/tradingview-charts.md"},
}
