package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/elC0mpa/aws-costpilot/cmd/mcp/response"
	"github.com/elC0mpa/aws-costpilot/service/analyzer"
	awsconfig "github.com/elC0mpa/aws-costpilot/service/aws/config"
	awscostexplorer "github.com/elC0mpa/aws-costpilot/service/aws/costexplorer"
	awssts "github.com/elC0mpa/aws-costpilot/service/aws/sts"
	"github.com/elC0mpa/aws-costpilot/service/catalog"
	"github.com/elC0mpa/aws-costpilot/service/resolver"
	"github.com/elC0mpa/aws-costpilot/utils"
)

// Config carries the environment configuration the AWS tools need
type Config struct {
	Region           string
	Profile          string
	CatalogCachePath string
	CatalogTTL       time.Duration
	AnomalyThreshold float64
}

// RegisterAWSTools registers all AWS cost analysis tools with the MCP server
func RegisterAWSTools(s *server.MCPServer, cfg Config) {
	// Account info
	s.AddTool(
		mcp.NewTool("aws_get_account_info",
			mcp.WithDescription("Get AWS account identity information including account ID and ARN"),
		),
		makeAccountInfoHandler(cfg),
	)

	// Top services ranking
	s.AddTool(
		mcp.NewTool("aws_get_top_services",
			mcp.WithDescription("Get the most expensive AWS services for a date range, ranked by total cost"),
			mcp.WithString("start_date", mcp.Description("Start date (YYYY-MM-DD, default 30 days ago)")),
			mcp.WithString("end_date", mcp.Description("End date (YYYY-MM-DD, default today)")),
			mcp.WithNumber("top", mcp.Description("Number of services to return (default 5)")),
		),
		makeTopServicesHandler(cfg),
	)

	// Per-service usage type breakdown
	s.AddTool(
		mcp.NewTool("aws_get_service_details",
			mcp.WithDescription("Get the cost of one AWS service broken down by usage type. Accepts informal names like 'ec2' or 's3'."),
			mcp.WithString("service_name", mcp.Required(), mcp.Description("Service name, informal names accepted")),
			mcp.WithString("start_date", mcp.Description("Start date (YYYY-MM-DD, default 30 days ago)")),
			mcp.WithString("end_date", mcp.Description("End date (YYYY-MM-DD, default today)")),
		),
		makeServiceDetailsHandler(cfg),
	)

	// Cost by tag
	s.AddTool(
		mcp.NewTool("aws_get_cost_by_tag",
			mcp.WithDescription("Break AWS costs down by the values of a cost allocation tag key, including an untagged bucket"),
			mcp.WithString("tag_key", mcp.Required(), mcp.Description("Cost allocation tag key, for example 'Environment'")),
			mcp.WithString("start_date", mcp.Description("Start date (YYYY-MM-DD, default 30 days ago)")),
			mcp.WithString("end_date", mcp.Description("End date (YYYY-MM-DD, default today)")),
		),
		makeCostByTagHandler(cfg),
	)

	// Tag overview
	s.AddTool(
		mcp.NewTool("aws_get_tag_overview",
			mcp.WithDescription("Get a cost breakdown for every active cost allocation tag key in the account"),
			mcp.WithString("start_date", mcp.Description("Start date (YYYY-MM-DD, default 30 days ago)")),
			mcp.WithString("end_date", mcp.Description("End date (YYYY-MM-DD, default today)")),
		),
		makeTagOverviewHandler(cfg),
	)

	// Cost trend
	s.AddTool(
		mcp.NewTool("aws_get_cost_trend",
			mcp.WithDescription("Get month-over-month AWS cost movement with percent changes and summary statistics"),
			mcp.WithNumber("months", mcp.Description("Number of months to analyze (default 6, max 13)")),
		),
		makeCostTrendHandler(cfg),
	)

	// Anomalies
	s.AddTool(
		mcp.NewTool("aws_get_cost_anomalies",
			mcp.WithDescription("Detect months whose cost jumped more than a threshold percentage over the previous month"),
			mcp.WithNumber("months", mcp.Description("Number of months to analyze (default 6)")),
			mcp.WithNumber("threshold", mcp.Description("Percent change that counts as an anomaly (default 20)")),
		),
		makeAnomaliesHandler(cfg),
	)

	// Forecast
	s.AddTool(
		mcp.NewTool("aws_get_cost_forecast",
			mcp.WithDescription("Forecast AWS cost for the upcoming period based on historical usage"),
			mcp.WithNumber("days", mcp.Description("Number of days to forecast (default 30)")),
		),
		makeForecastHandler(cfg),
	)

	// Service name resolution
	s.AddTool(
		mcp.NewTool("aws_resolve_service_name",
			mcp.WithDescription("Resolve an informal service name like 'ec2' or 'dynamo' to its canonical Cost Explorer name"),
			mcp.WithString("query", mcp.Required(), mcp.Description("Service name to resolve")),
		),
		makeResolveServiceHandler(cfg),
	)

	// Partial name suggestions
	s.AddTool(
		mcp.NewTool("aws_suggest_services",
			mcp.WithDescription("Suggest AWS service names matching a partial input, ranked by relevance"),
			mcp.WithString("partial", mcp.Required(), mcp.Description("Partial service name")),
			mcp.WithNumber("limit", mcp.Description("Maximum number of suggestions (default 5)")),
		),
		makeSuggestServicesHandler(cfg),
	)

	// Catalog listing
	s.AddTool(
		mcp.NewTool("aws_list_services",
			mcp.WithDescription("List every service name known to this account's billing data"),
		),
		makeListServicesHandler(cfg),
	)

	// Catalog refresh
	s.AddTool(
		mcp.NewTool("aws_refresh_service_catalog",
			mcp.WithDescription("Invalidate the cached service catalog and rediscover it from Cost Explorer"),
		),
		makeRefreshCatalogHandler(cfg),
	)
}

// awsDeps bundles the services a tool call needs, built per request the
// same way the CLI builds them at startup
type awsDeps struct {
	identity awssts.STSService
	cost     awscostexplorer.CostService
	analyzer analyzer.AnalyzerService
	resolver resolver.ResolverService
	catalog  catalog.CatalogService
}

func buildAWSDeps(ctx context.Context, cfg Config) (*awsDeps, error) {
	configSvc := awsconfig.NewService()
	awsCfg, err := configSvc.GetAWSCfg(ctx, cfg.Region, cfg.Profile)
	if err != nil {
		return nil, err
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	costSvc := awscostexplorer.NewService(awsCfg, logger)
	catalogSvc := catalog.NewService(
		catalog.NewFileStore(cfg.CatalogCachePath),
		cfg.CatalogTTL,
		costSvc,
		resolver.AliasCanonicalNames(),
		logger,
	)

	return &awsDeps{
		identity: awssts.NewService(awsCfg),
		cost:     costSvc,
		analyzer: analyzer.NewService(costSvc, logger),
		resolver: resolver.NewService(catalogSvc, logger),
		catalog:  catalogSvc,
	}, nil
}

func makeAccountInfoHandler(cfg Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deps, err := buildAWSDeps(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		info, err := deps.identity.GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get account info: %v", err)), nil
		}

		return jsonResult(response.ConvertAccountInfo(info)), nil
	}
}

func makeTopServicesHandler(cfg Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deps, err := buildAWSDeps(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		window, err := utils.ValidateDateWindow(request.GetString("start_date", ""), request.GetString("end_date", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid date range: %v", err)), nil
		}

		summaries, err := deps.analyzer.TopServices(ctx, window, request.GetInt("top", 5))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get costs: %v", err)), nil
		}

		return jsonResult(response.ConvertCostReport(window, summaries)), nil
	}
}

func makeServiceDetailsHandler(cfg Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		serviceName, err := request.RequireString("service_name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		deps, err := buildAWSDeps(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		window, err := utils.ValidateDateWindow(request.GetString("start_date", ""), request.GetString("end_date", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid date range: %v", err)), nil
		}

		resolution, err := deps.resolver.Resolve(ctx, serviceName)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve service name: %v", err)), nil
		}
		if !resolution.AutoApply(resolver.AutoApplyThreshold) {
			return jsonResult(response.ConvertResolution(resolution, resolver.AutoApplyThreshold)), nil
		}

		summaries, err := deps.analyzer.ServiceDetails(ctx, resolution.ResolvedName, window)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get service details: %v", err)), nil
		}

		return jsonResult(response.ConvertCostReport(window, summaries)), nil
	}
}

func makeCostByTagHandler(cfg Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tagKey, err := request.RequireString("tag_key")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		deps, err := buildAWSDeps(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		window, err := utils.ValidateDateWindow(request.GetString("start_date", ""), request.GetString("end_date", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid date range: %v", err)), nil
		}

		summary, err := deps.analyzer.CostByTag(ctx, tagKey, window)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get tag costs: %v", err)), nil
		}

		return jsonResult(response.ConvertTagBreakdown(summary)), nil
	}
}

func makeTagOverviewHandler(cfg Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deps, err := buildAWSDeps(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		window, err := utils.ValidateDateWindow(request.GetString("start_date", ""), request.GetString("end_date", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid date range: %v", err)), nil
		}

		summaries, err := deps.analyzer.TagOverview(ctx, window)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get tag overview: %v", err)), nil
		}

		breakdowns := make([]*response.TagBreakdown, 0, len(summaries))
		for i := range summaries {
			breakdowns = append(breakdowns, response.ConvertTagBreakdown(&summaries[i]))
		}

		return jsonResult(breakdowns), nil
	}
}

func makeCostTrendHandler(cfg Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deps, err := buildAWSDeps(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		trend, err := deps.analyzer.Trend(ctx, request.GetInt("months", 6))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get cost trend: %v", err)), nil
		}

		return jsonResult(response.ConvertTrend(trend)), nil
	}
}

func makeAnomaliesHandler(cfg Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deps, err := buildAWSDeps(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		threshold := request.GetFloat("threshold", cfg.AnomalyThreshold)
		anomalies, err := deps.analyzer.Anomalies(ctx, threshold, request.GetInt("months", 6))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to detect anomalies: %v", err)), nil
		}

		return jsonResult(response.ConvertAnomalies(anomalies)), nil
	}
}

func makeForecastHandler(cfg Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deps, err := buildAWSDeps(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		forecast, err := deps.cost.GetCostForecast(ctx, request.GetInt("days", 30))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get cost forecast: %v", err)), nil
		}

		return jsonResult(response.ConvertForecast(forecast)), nil
	}
}

func makeResolveServiceHandler(cfg Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		deps, err := buildAWSDeps(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		result, err := deps.resolver.Resolve(ctx, query)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve service name: %v", err)), nil
		}

		return jsonResult(response.ConvertResolution(result, resolver.AutoApplyThreshold)), nil
	}
}

func makeSuggestServicesHandler(cfg Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		partial, err := request.RequireString("partial")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		deps, err := buildAWSDeps(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		suggestions, err := deps.resolver.Suggest(ctx, partial, request.GetInt("limit", 5))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to suggest services: %v", err)), nil
		}

		return jsonResult(response.ConvertSuggestions(suggestions)), nil
	}
}

func makeListServicesHandler(cfg Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deps, err := buildAWSDeps(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		services, err := deps.resolver.AllServices(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list services: %v", err)), nil
		}

		return jsonResult(response.ConvertCatalog(services)), nil
	}
}

func makeRefreshCatalogHandler(cfg Config) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deps, err := buildAWSDeps(ctx, cfg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		if err := deps.catalog.Invalidate(); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to invalidate catalog: %v", err)), nil
		}

		services, err := deps.catalog.Get(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to rediscover services: %v", err)), nil
		}

		return jsonResult(response.ConvertCatalog(services)), nil
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	data, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(data))
}
